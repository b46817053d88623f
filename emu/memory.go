package emu

import (
	"encoding/binary"
	"fmt"

	"github.com/sarchlab/akita/v4/mem/mem"
)

// WordSize is the width of an instruction and of a memory word in bytes.
const WordSize = 4

// DefaultMemorySize is the default memory capacity in bytes.
const DefaultMemorySize = 4096

// Memory is a fixed-capacity, byte-addressable, zero-initialized memory
// backed by an akita storage. Words are little-endian and need not be aligned.
type Memory struct {
	storage  *mem.Storage
	capacity uint64
}

// NewMemory creates a memory of DefaultMemorySize bytes.
func NewMemory() *Memory {
	return NewMemoryWithSize(DefaultMemorySize)
}

// NewMemoryWithSize creates a memory of the given capacity in bytes.
func NewMemoryWithSize(capacity uint64) *Memory {
	return &Memory{
		storage:  mem.NewStorage(capacity),
		capacity: capacity,
	}
}

// Capacity returns the memory size in bytes.
func (m *Memory) Capacity() uint64 {
	return m.capacity
}

// Load copies an image into memory starting at address 0. An image larger
// than the capacity is rejected and nothing is copied.
func (m *Memory) Load(image []byte) error {
	if uint64(len(image)) > m.capacity {
		return fmt.Errorf("%w: %d bytes, capacity %d",
			ErrImageTooLarge, len(image), m.capacity)
	}
	if len(image) == 0 {
		return nil
	}

	if err := m.storage.Write(0, image); err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	return nil
}

// ReadBytes reads n bytes starting at addr.
func (m *Memory) ReadBytes(addr, n uint64) ([]byte, error) {
	if err := m.check(addr, n); err != nil {
		return nil, err
	}

	data, err := m.storage.Read(addr, n)
	if err != nil {
		return nil, fmt.Errorf("read 0x%X: %w", addr, err)
	}
	return data, nil
}

// ReadWord reads a little-endian word at addr.
func (m *Memory) ReadWord(addr uint64) (uint32, error) {
	data, err := m.ReadBytes(addr, WordSize)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(data), nil
}

// WriteWord writes a little-endian word at addr.
func (m *Memory) WriteWord(addr uint64, value uint32) error {
	if err := m.check(addr, WordSize); err != nil {
		return err
	}

	var buf [WordSize]byte
	binary.LittleEndian.PutUint32(buf[:], value)
	if err := m.storage.Write(addr, buf[:]); err != nil {
		return fmt.Errorf("write 0x%X: %w", addr, err)
	}
	return nil
}

func (m *Memory) check(addr, width uint64) error {
	if addr > m.capacity || width > m.capacity-addr {
		return &MemoryFault{Addr: addr, Width: width, Capacity: m.capacity}
	}
	return nil
}
