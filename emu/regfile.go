// Package emu provides functional R32 emulation.
package emu

import "fmt"

// Register conventions.
const (
	// NumRegs is the number of general-purpose registers.
	NumRegs = 16
	// RegLR is the link register written by BL.
	RegLR uint8 = 14
	// RegPC is the program counter. It is also an ordinary general register.
	RegPC uint8 = 15
)

// RegFile represents the R32 register file.
// It contains 16 general-purpose 32-bit registers (R0-R15), where R15 is the
// program counter and R14 the link register, and the condition flags.
type RegFile struct {
	// R holds general-purpose registers R0-R15.
	R [NumRegs]uint32

	// Flags holds the condition flags.
	Flags Flags
}

// Flags represents the condition flags.
type Flags struct {
	// N is the negative flag.
	N bool
	// Z is the zero flag.
	Z bool
	// C is the carry flag. No instruction computes it.
	C bool
	// V is the overflow flag. No instruction computes it.
	V bool
}

// RegisterFault is the panic value for an out-of-range register index.
type RegisterFault struct {
	Index uint8
}

func (f *RegisterFault) Error() string {
	return fmt.Sprintf("register index %d out of range (0-%d)", f.Index, NumRegs-1)
}

// Get reads a register. Indexes above 15 panic with *RegisterFault.
func (r *RegFile) Get(reg uint8) uint32 {
	if reg >= NumRegs {
		panic(&RegisterFault{Index: reg})
	}
	return r.R[reg]
}

// Set writes a register. Values are 32 bits wide by type, so arithmetic that
// produced them has already wrapped. Indexes above 15 panic with *RegisterFault.
func (r *RegFile) Set(reg uint8, value uint32) {
	if reg >= NumRegs {
		panic(&RegisterFault{Index: reg})
	}
	r.R[reg] = value
}

// PC reads the program counter (R15).
func (r *RegFile) PC() uint32 {
	return r.Get(RegPC)
}

// SetPC writes the program counter (R15).
func (r *RegFile) SetPC(pc uint32) {
	r.Set(RegPC, pc)
}

// LR reads the link register (R14).
func (r *RegFile) LR() uint32 {
	return r.Get(RegLR)
}

// UpdateFlags sets Z and N from a result. C and V are left alone.
func (r *RegFile) UpdateFlags(result uint32) {
	r.Flags.Z = result == 0
	r.Flags.N = (result>>31)&1 == 1
}

// Snapshot returns a copy of the register file.
func (r *RegFile) Snapshot() RegFile {
	return *r
}

// String formats the flags as 0/1 values.
func (f Flags) String() string {
	return fmt.Sprintf("N=%d Z=%d C=%d V=%d", b2i(f.N), b2i(f.Z), b2i(f.C), b2i(f.V))
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
