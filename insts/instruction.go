package insts

import "fmt"

// Instruction is a decoded R32 instruction. The set of implementations is
// closed: one struct per mnemonic, each carrying only the operand fields the
// operation needs.
type Instruction interface {
	fmt.Stringer

	// Op returns the opcode of the instruction.
	Op() Op

	isInstruction()
}

// MOV moves an immediate into Rd.
type MOV struct {
	Rd  uint8
	Imm uint32
}

// ADD adds an immediate to Rn and writes Rd.
type ADD struct {
	Rd, Rn uint8
	Imm    uint32
}

// SUB subtracts an immediate from Rn and writes Rd.
type SUB struct {
	Rd, Rn uint8
	Imm    uint32
}

// CMP subtracts an immediate from Rn and only updates flags.
type CMP struct {
	Rn  uint8
	Imm uint32
}

// AND is a bitwise AND of Rn and an immediate.
type AND struct {
	Rd, Rn uint8
	Imm    uint32
}

// OR is a bitwise OR of Rn and an immediate.
type OR struct {
	Rd, Rn uint8
	Imm    uint32
}

// XOR is a bitwise exclusive OR of Rn and an immediate.
type XOR struct {
	Rd, Rn uint8
	Imm    uint32
}

// MUL multiplies Rn by an immediate.
type MUL struct {
	Rd, Rn uint8
	Imm    uint32
}

// MVN moves the bitwise complement of an immediate into Rd.
type MVN struct {
	Rd  uint8
	Imm uint32
}

// TST ANDs Rn with an immediate and only updates flags.
type TST struct {
	Rn  uint8
	Imm uint32
}

// LSL shifts Rn left by Shift bits.
type LSL struct {
	Rd, Rn uint8
	Shift  uint32
}

// LSR shifts Rn right (logical) by Shift bits.
type LSR struct {
	Rd, Rn uint8
	Shift  uint32
}

// LDR loads the word at Rn + Offset into Rd.
type LDR struct {
	Rd, Rn uint8
	Offset uint32
}

// STR stores Rd to the word at Rn + Offset.
type STR struct {
	Rd, Rn uint8
	Offset uint32
}

// B branches forward by Offset bytes.
// Offsets are unsigned; backward branches cannot be expressed.
type B struct {
	Offset uint32
}

// BL branches forward by Offset bytes and writes the return address to LR.
type BL struct {
	Offset uint32
}

// Unknown is any word that matches no encoding. It halts execution.
type Unknown struct{}

func (MOV) Op() Op { return OpMOV }
func (ADD) Op() Op { return OpADD }
func (SUB) Op() Op { return OpSUB }
func (CMP) Op() Op { return OpCMP }
func (AND) Op() Op { return OpAND }
func (OR) Op() Op { return OpOR }
func (XOR) Op() Op { return OpXOR }
func (MUL) Op() Op { return OpMUL }
func (MVN) Op() Op { return OpMVN }
func (TST) Op() Op { return OpTST }
func (LSL) Op() Op { return OpLSL }
func (LSR) Op() Op { return OpLSR }
func (LDR) Op() Op { return OpLDR }
func (STR) Op() Op { return OpSTR }
func (B) Op() Op { return OpB }
func (BL) Op() Op { return OpBL }
func (Unknown) Op() Op { return OpUnknown }

func (MOV) isInstruction() {}
func (ADD) isInstruction() {}
func (SUB) isInstruction() {}
func (CMP) isInstruction() {}
func (AND) isInstruction() {}
func (OR) isInstruction() {}
func (XOR) isInstruction() {}
func (MUL) isInstruction() {}
func (MVN) isInstruction() {}
func (TST) isInstruction() {}
func (LSL) isInstruction() {}
func (LSR) isInstruction() {}
func (LDR) isInstruction() {}
func (STR) isInstruction() {}
func (B) isInstruction() {}
func (BL) isInstruction() {}
func (Unknown) isInstruction() {}

func (i MOV) String() string { return fmt.Sprintf("MOV R%d, #%d", i.Rd, i.Imm) }
func (i ADD) String() string { return fmt.Sprintf("ADD R%d, R%d, #%d", i.Rd, i.Rn, i.Imm) }
func (i SUB) String() string { return fmt.Sprintf("SUB R%d, R%d, #%d", i.Rd, i.Rn, i.Imm) }
func (i CMP) String() string { return fmt.Sprintf("CMP R%d, #%d", i.Rn, i.Imm) }
func (i AND) String() string { return fmt.Sprintf("AND R%d, R%d, #%d", i.Rd, i.Rn, i.Imm) }
func (i OR) String() string { return fmt.Sprintf("OR R%d, R%d, #%d", i.Rd, i.Rn, i.Imm) }
func (i XOR) String() string { return fmt.Sprintf("XOR R%d, R%d, #%d", i.Rd, i.Rn, i.Imm) }
func (i MUL) String() string { return fmt.Sprintf("MUL R%d, R%d, #%d", i.Rd, i.Rn, i.Imm) }
func (i MVN) String() string { return fmt.Sprintf("MVN R%d, #%d", i.Rd, i.Imm) }
func (i TST) String() string { return fmt.Sprintf("TST R%d, #%d", i.Rn, i.Imm) }
func (i LSL) String() string { return fmt.Sprintf("LSL R%d, R%d, #%d", i.Rd, i.Rn, i.Shift) }
func (i LSR) String() string { return fmt.Sprintf("LSR R%d, R%d, #%d", i.Rd, i.Rn, i.Shift) }

func (i LDR) String() string {
	return fmt.Sprintf("LDR R%d, [R%d, #%d]", i.Rd, i.Rn, i.Offset)
}

func (i STR) String() string {
	return fmt.Sprintf("STR R%d, [R%d, #%d]", i.Rd, i.Rn, i.Offset)
}

func (i B) String() string { return fmt.Sprintf("B #%d", i.Offset) }
func (i BL) String() string { return fmt.Sprintf("BL #%d", i.Offset) }
func (Unknown) String() string { return "UNKNOWN" }
