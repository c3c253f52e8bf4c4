package memory

import "errors"

// Failure kinds. Every failing operation leaves the memory space unchanged
// and wraps exactly one of these.
var (
	ErrDuplicateProcess            = errors.New("process already has an allocation")
	ErrSizeExceedsCapacity         = errors.New("requested size exceeds total memory")
	ErrInsufficientContiguousSpace = errors.New("insufficient contiguous free memory")
	ErrProcessNotAllocated         = errors.New("process has no allocation")
	ErrCannotShrinkBelowUsedMemory = errors.New("cannot shrink memory below used size")
	ErrInvalidSize                 = errors.New("allocation size must be positive")
	ErrInvalidCapacity             = errors.New("memory capacity must be positive")
	ErrUnknownStrategy             = errors.New("unknown placement strategy")
	ErrEmptyPID                    = errors.New("pid must not be empty")
)
