package emu

import (
	"errors"
	"fmt"
)

var (
	// ErrMemoryFault is matched by every *MemoryFault.
	ErrMemoryFault = errors.New("memory access out of bounds")
	// ErrImageTooLarge means an image does not fit in memory.
	ErrImageTooLarge = errors.New("image exceeds memory capacity")
	// ErrMaxInstructions means the instruction limit was hit before a halt.
	ErrMaxInstructions = errors.New("max instructions reached")
	// ErrNoImage means Step or Run was called before LoadImage.
	ErrNoImage = errors.New("no image loaded")
)

// MemoryFault describes an access that does not fit in memory.
type MemoryFault struct {
	Addr     uint64
	Width    uint64
	Capacity uint64
}

func (f *MemoryFault) Error() string {
	return fmt.Sprintf("%v: %d bytes at 0x%X (capacity 0x%X)",
		ErrMemoryFault, f.Width, f.Addr, f.Capacity)
}

// Is reports whether target is ErrMemoryFault.
func (f *MemoryFault) Is(target error) bool {
	return target == ErrMemoryFault
}
