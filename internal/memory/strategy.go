package memory

import (
	"fmt"
	"strings"
)

// Strategy picks which free region receives an allocation.
type Strategy string

const (
	FirstFit Strategy = "first-fit"
	BestFit  Strategy = "best-fit"
	WorstFit Strategy = "worst-fit"
)

var strategyAliases = map[string]Strategy{
	"first-fit": FirstFit,
	"first":     FirstFit,
	"best-fit":  BestFit,
	"best":      BestFit,
	"worst-fit": WorstFit,
	"worst":     WorstFit,
}

// ParseStrategy resolves a strategy name (case-insensitive, "first"/"best"/"worst" accepted).
func ParseStrategy(name string) (Strategy, error) {
	if s, ok := strategyAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Region is a maximal run of free units.
type Region struct {
	Start int `json:"start"`
	Size  int `json:"size"`
}

// End is the first unit past the region.
func (r Region) End() int {
	return r.Start + r.Size
}

// placement chooses a region of at least size units from regions, which are
// ordered by address.
type placement func(regions []Region, size int) (Region, bool)

var placements = map[Strategy]placement{
	FirstFit: firstFit,
	BestFit:  bestFit,
	WorstFit: worstFit,
}

func firstFit(regions []Region, size int) (Region, bool) {
	for _, r := range regions {
		if r.Size >= size {
			return r, true
		}
	}
	return Region{}, false
}

// bestFit picks the smallest sufficient region; the leftmost wins ties.
func bestFit(regions []Region, size int) (Region, bool) {
	var best Region
	found := false
	for _, r := range regions {
		if r.Size >= size && (!found || r.Size < best.Size) {
			best, found = r, true
		}
	}
	return best, found
}

// worstFit picks the largest sufficient region; the leftmost wins ties.
func worstFit(regions []Region, size int) (Region, bool) {
	var worst Region
	found := false
	for _, r := range regions {
		if r.Size >= size && (!found || r.Size > worst.Size) {
			worst, found = r, true
		}
	}
	return worst, found
}

// freeRegions scans units left to right. The end of the slice closes a
// trailing run.
func freeRegions(units []bool) []Region {
	regions := make([]Region, 0)
	start := -1
	for i := 0; i <= len(units); i++ {
		if i < len(units) && !units[i] {
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			regions = append(regions, Region{Start: start, Size: i - start})
			start = -1
		}
	}
	return regions
}
