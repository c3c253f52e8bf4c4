package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
)

// Allocation is a contiguous range [Start, Start+Size) owned by PID.
type Allocation struct {
	PID   string `json:"pid"`
	Start int    `json:"start"`
	Size  int    `json:"size"`
}

// End is the first unit past the allocation.
func (a Allocation) End() int {
	return a.Start + a.Size
}

// Usage summarizes occupied and free units.
type Usage struct {
	Capacity    int     `json:"capacity"`
	Used        int     `json:"used"`
	Free        int     `json:"free"`
	UsedPercent float64 `json:"used_percent"`
}

// Layout is a consistent view of a memory space taken under one lock.
type Layout struct {
	Usage         Usage
	Allocations   []Allocation
	FreeRegions   []Region
	Fragmentation FragmentationSnapshot
}

// Allocator owns one linear memory space. All operations are serialized,
// so two allocation attempts never interleave on the same space.
type Allocator struct {
	mu          sync.Mutex
	units       []bool // true = occupied
	allocations map[string]Allocation
}

// New returns an empty memory space of capacity units.
func New(capacity int) (*Allocator, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	return &Allocator{
		units:       make([]bool, capacity),
		allocations: make(map[string]Allocation),
	}, nil
}

func (a *Allocator) Capacity() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.units)
}

// Allocate places size units for pid using strategy.
func (a *Allocator) Allocate(pid string, size int, strategy Strategy) (Allocation, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if pid == "" {
		return Allocation{}, ErrEmptyPID
	}
	if _, exists := a.allocations[pid]; exists {
		return Allocation{}, fmt.Errorf("%w: %s", ErrDuplicateProcess, pid)
	}
	if size <= 0 {
		return Allocation{}, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if size > len(a.units) {
		return Allocation{}, fmt.Errorf("%w: %d > %d", ErrSizeExceedsCapacity, size, len(a.units))
	}
	place, ok := placements[strategy]
	if !ok {
		return Allocation{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}

	region, ok := place(freeRegions(a.units), size)
	if !ok {
		return Allocation{}, fmt.Errorf("%w: no free region of %d units", ErrInsufficientContiguousSpace, size)
	}

	allocation := Allocation{PID: pid, Start: region.Start, Size: size}
	a.mark(allocation, true)
	a.allocations[pid] = allocation
	logrus.Debugf("pid: %s allocated [%d, %d) with %s", pid, allocation.Start, allocation.End(), strategy)
	return allocation, nil
}

// Deallocate releases pid's allocation and returns it.
func (a *Allocator) Deallocate(pid string) (Allocation, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	allocation, exists := a.allocations[pid]
	if !exists {
		return Allocation{}, fmt.Errorf("%w: %s", ErrProcessNotAllocated, pid)
	}
	a.mark(allocation, false)
	delete(a.allocations, pid)
	logrus.Debugf("pid: %s released [%d, %d)", pid, allocation.Start, allocation.End())
	return allocation, nil
}

// Reinitialize resets the space to an empty one of the given capacity,
// releasing every allocation. It refuses capacities below the units
// currently allocated.
func (a *Allocator) Reinitialize(capacity int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if capacity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	if used := a.used(); capacity < used {
		return fmt.Errorf("%w: %d units in use, requested %d", ErrCannotShrinkBelowUsedMemory, used, capacity)
	}

	logrus.Debugf("memory reinitialized from %d to %d units", len(a.units), capacity)
	a.units = make([]bool, capacity)
	a.allocations = make(map[string]Allocation)
	return nil
}

// Lookup returns pid's allocation if it has one.
func (a *Allocator) Lookup(pid string) (Allocation, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	allocation, ok := a.allocations[pid]
	return allocation, ok
}

// Allocations returns active allocations ordered by address.
func (a *Allocator) Allocations() []Allocation {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sortedAllocations()
}

func (a *Allocator) FreeRegions() []Region {
	a.mu.Lock()
	defer a.mu.Unlock()
	return freeRegions(a.units)
}

func (a *Allocator) Usage() Usage {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.usage()
}

// Fragmentation classifies the current free space.
func (a *Allocator) Fragmentation() FragmentationSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return snapshotOf(freeRegions(a.units))
}

func (a *Allocator) Layout() Layout {
	a.mu.Lock()
	defer a.mu.Unlock()
	regions := freeRegions(a.units)
	return Layout{
		Usage:         a.usage(),
		Allocations:   a.sortedAllocations(),
		FreeRegions:   regions,
		Fragmentation: snapshotOf(regions),
	}
}

func (a *Allocator) mark(allocation Allocation, occupied bool) {
	for i := allocation.Start; i < allocation.End(); i++ {
		a.units[i] = occupied
	}
}

func (a *Allocator) used() int {
	used := 0
	for _, allocation := range a.allocations {
		used += allocation.Size
	}
	return used
}

func (a *Allocator) usage() Usage {
	used := a.used()
	return Usage{
		Capacity:    len(a.units),
		Used:        used,
		Free:        len(a.units) - used,
		UsedPercent: float64(used) / float64(len(a.units)) * 100,
	}
}

func (a *Allocator) sortedAllocations() []Allocation {
	out := make([]Allocation, 0, len(a.allocations))
	for _, allocation := range a.allocations {
		out = append(out, allocation)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	return out
}
