package emu

// BranchUnit implements R32 branch operations.
//
// The driving loop adds WordSize to R15 after every instruction, branches
// included. Both branches therefore subtract WordSize so that the net change
// of the program counter is exactly the offset.
type BranchUnit struct {
	regFile *RegFile
}

// NewBranchUnit creates a new BranchUnit connected to the given register file.
func NewBranchUnit(regFile *RegFile) *BranchUnit {
	return &BranchUnit{regFile: regFile}
}

// B performs a forward branch: PC = PC + offset - 4.
func (b *BranchUnit) B(offset uint32) {
	b.regFile.SetPC(b.regFile.PC() + offset - WordSize)
}

// BL performs a branch with link (for function calls).
// Saves the return address (PC + 4) to R14, then branches like B.
func (b *BranchUnit) BL(offset uint32) {
	pc := b.regFile.PC()
	b.regFile.Set(RegLR, pc+WordSize)
	b.regFile.SetPC(pc + offset - WordSize)
}
