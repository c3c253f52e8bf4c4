package workload

import (
	"errors"
	"fmt"
	"io"
	"os"

	"os-simulator/internal/memory"
)

// Memory script operations.
const (
	OpAllocate     = "allocate"
	OpDeallocate   = "deallocate"
	OpReinitialize = "reinitialize"
)

// MemoryOperation is one step of a memory script. Which fields are read
// depends on Op.
type MemoryOperation struct {
	Op       string `yaml:"op"`
	PID      string `yaml:"pid"`
	Size     int    `yaml:"size"`
	Strategy string `yaml:"strategy"`
	Capacity int    `yaml:"capacity"`
}

func (o MemoryOperation) String() string {
	switch o.Op {
	case OpAllocate:
		return fmt.Sprintf("allocate %s size=%d", o.PID, o.Size)
	case OpDeallocate:
		return fmt.Sprintf("deallocate %s", o.PID)
	case OpReinitialize:
		return fmt.Sprintf("reinitialize capacity=%d", o.Capacity)
	}
	return o.Op
}

// MemoryScript replays allocator operations against a fresh memory space.
// Strategy applies to allocations that do not name their own.
type MemoryScript struct {
	Capacity   int               `yaml:"capacity"`
	Strategy   string            `yaml:"strategy"`
	Operations []MemoryOperation `yaml:"operations"`
}

// OperationOutcome records what one operation did. Err is nil on success.
type OperationOutcome struct {
	Operation  MemoryOperation
	Strategy   memory.Strategy
	Allocation memory.Allocation
	Err        error
}

func LoadMemoryScript(path string) (*MemoryScript, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open memory script: %w", err)
	}
	defer f.Close()
	return DecodeMemoryScript(f)
}

// DecodeMemoryScript parses and validates a script. Operation names and
// strategy names are checked up front; allocator failures are not, they are
// part of what a script demonstrates.
func DecodeMemoryScript(r io.Reader) (*MemoryScript, error) {
	var s MemoryScript
	if err := decodeStrict(r, &s); err != nil {
		return nil, fmt.Errorf("parse memory script: %w", err)
	}
	if len(s.Operations) == 0 {
		return nil, errors.New("parse memory script: no operations")
	}
	if s.Strategy != "" {
		if _, err := memory.ParseStrategy(s.Strategy); err != nil {
			return nil, fmt.Errorf("parse memory script: %w", err)
		}
	}
	for i, op := range s.Operations {
		switch op.Op {
		case OpAllocate:
			if op.Strategy == "" {
				continue
			}
			if _, err := memory.ParseStrategy(op.Strategy); err != nil {
				return nil, fmt.Errorf("parse memory script: operation #%d: %w", i+1, err)
			}
		case OpDeallocate, OpReinitialize:
		default:
			return nil, fmt.Errorf("parse memory script: operation #%d: unknown op %q", i+1, op.Op)
		}
	}
	return &s, nil
}

// Replay applies every operation in order and reports each outcome.
// Failed operations leave the allocator unchanged and do not stop the replay.
func (s *MemoryScript) Replay(allocator *memory.Allocator, defaultStrategy memory.Strategy) []OperationOutcome {
	scriptStrategy := defaultStrategy
	if s.Strategy != "" {
		scriptStrategy, _ = memory.ParseStrategy(s.Strategy)
	}

	outcomes := make([]OperationOutcome, 0, len(s.Operations))
	for _, op := range s.Operations {
		outcome := OperationOutcome{Operation: op}
		switch op.Op {
		case OpAllocate:
			outcome.Strategy = scriptStrategy
			if op.Strategy != "" {
				outcome.Strategy, _ = memory.ParseStrategy(op.Strategy)
			}
			outcome.Allocation, outcome.Err = allocator.Allocate(op.PID, op.Size, outcome.Strategy)
		case OpDeallocate:
			outcome.Allocation, outcome.Err = allocator.Deallocate(op.PID)
		case OpReinitialize:
			outcome.Err = allocator.Reinitialize(op.Capacity)
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}
