package memory

import "math"

// FragmentationStatus is the displayed external fragmentation label.
type FragmentationStatus string

const (
	NoFreeMemory            FragmentationStatus = "no free memory"
	NoExternalFragmentation FragmentationStatus = "no external fragmentation"
	LightFragmentation      FragmentationStatus = "light fragmentation"
	ModerateFragmentation   FragmentationStatus = "moderate fragmentation"
	HeavyFragmentation      FragmentationStatus = "heavy fragmentation"
)

// FragmentationLevel is the severity tier shown next to the status.
type FragmentationLevel string

const (
	LevelLow      FragmentationLevel = "low"
	LevelMedium   FragmentationLevel = "medium"
	LevelHigh     FragmentationLevel = "high"
	LevelVeryHigh FragmentationLevel = "very high"
)

// FragmentationSnapshot describes the free space of a memory space.
type FragmentationSnapshot struct {
	FreeBlocks       int                 `json:"free_blocks"`
	FreeUnits        int                 `json:"free_units"`
	LargestFreeBlock int                 `json:"largest_free_block"`
	Status           FragmentationStatus `json:"status"`
	Level            FragmentationLevel  `json:"level"`
	Percentage       float64             `json:"percentage"`
}

// Classify maps a free block count to its status label and severity.
func Classify(freeBlocks int) (FragmentationStatus, FragmentationLevel) {
	switch {
	case freeBlocks <= 0:
		return NoFreeMemory, LevelLow
	case freeBlocks == 1:
		return NoExternalFragmentation, LevelLow
	case freeBlocks <= 3:
		return LightFragmentation, LevelMedium
	case freeBlocks <= 6:
		return ModerateFragmentation, LevelHigh
	default:
		return HeavyFragmentation, LevelVeryHigh
	}
}

// FragmentationPercentage is min(100, (freeBlocks-1)/10*100), or 0 for at
// most one free block.
func FragmentationPercentage(freeBlocks int) float64 {
	if freeBlocks <= 1 {
		return 0
	}
	return math.Min(100, float64(freeBlocks-1)/10*100)
}

func snapshotOf(regions []Region) FragmentationSnapshot {
	snapshot := FragmentationSnapshot{FreeBlocks: len(regions)}
	for _, r := range regions {
		snapshot.FreeUnits += r.Size
		if r.Size > snapshot.LargestFreeBlock {
			snapshot.LargestFreeBlock = r.Size
		}
	}
	snapshot.Status, snapshot.Level = Classify(snapshot.FreeBlocks)
	snapshot.Percentage = FragmentationPercentage(snapshot.FreeBlocks)
	return snapshot
}
