package emu

// ALU implements the R32 arithmetic, logic and shift operations.
// Every operation here is flag-setting: N and Z follow the 32-bit result.
type ALU struct {
	regFile *RegFile
}

// NewALU creates a new ALU connected to the given register file.
func NewALU(regFile *RegFile) *ALU {
	return &ALU{regFile: regFile}
}

// MOV performs Rd = imm
func (a *ALU) MOV(rd uint8, imm uint32) {
	a.writeResult(rd, imm)
}

// ADD performs Rd = Rn + imm
func (a *ALU) ADD(rd, rn uint8, imm uint32) {
	a.writeResult(rd, a.regFile.Get(rn)+imm)
}

// SUB performs Rd = Rn - imm
func (a *ALU) SUB(rd, rn uint8, imm uint32) {
	a.writeResult(rd, a.regFile.Get(rn)-imm)
}

// CMP computes Rn - imm for the flags only.
func (a *ALU) CMP(rn uint8, imm uint32) {
	a.regFile.UpdateFlags(a.regFile.Get(rn) - imm)
}

// AND performs Rd = Rn & imm
func (a *ALU) AND(rd, rn uint8, imm uint32) {
	a.writeResult(rd, a.regFile.Get(rn)&imm)
}

// OR performs Rd = Rn | imm
func (a *ALU) OR(rd, rn uint8, imm uint32) {
	a.writeResult(rd, a.regFile.Get(rn)|imm)
}

// XOR performs Rd = Rn ^ imm
func (a *ALU) XOR(rd, rn uint8, imm uint32) {
	a.writeResult(rd, a.regFile.Get(rn)^imm)
}

// MUL performs Rd = Rn * imm, keeping the low 32 bits.
func (a *ALU) MUL(rd, rn uint8, imm uint32) {
	a.writeResult(rd, a.regFile.Get(rn)*imm)
}

// MVN performs Rd = ^imm
func (a *ALU) MVN(rd uint8, imm uint32) {
	a.writeResult(rd, ^imm)
}

// TST computes Rn & imm for the flags only.
func (a *ALU) TST(rn uint8, imm uint32) {
	a.regFile.UpdateFlags(a.regFile.Get(rn) & imm)
}

// LSL performs Rd = Rn << shift. Shifts of 32 or more yield 0.
func (a *ALU) LSL(rd, rn uint8, shift uint32) {
	a.writeResult(rd, a.regFile.Get(rn)<<shift)
}

// LSR performs Rd = Rn >> shift (logical). Shifts of 32 or more yield 0.
func (a *ALU) LSR(rd, rn uint8, shift uint32) {
	a.writeResult(rd, a.regFile.Get(rn)>>shift)
}

func (a *ALU) writeResult(rd uint8, result uint32) {
	a.regFile.Set(rd, result)
	a.regFile.UpdateFlags(result)
}
