package insts

// Immediate-group opcodes, bits [24:21].
const (
	opcodeAND   = 0b0000
	opcodeXOR   = 0b0001
	opcodeSUB   = 0b0010
	opcodeShift = 0b0011
	opcodeADD   = 0b0100
	opcodeMUL   = 0b0110
	opcodeTST   = 0b1000
	opcodeCMP   = 0b1010
	opcodeOR    = 0b1100
	opcodeMOV   = 0b1101
	opcodeMVN   = 0b1111
)

// ShiftType selects the direction of a shift-group instruction.
type ShiftType uint8

// Shift types, bits [6:5]. Types 10 and 11 have no mnemonic.
const (
	ShiftLSL ShiftType = 0b00 // Logical shift left
	ShiftLSR ShiftType = 0b01 // Logical shift right
)

// Decoder decodes R32 machine words into instructions.
type Decoder struct{}

// NewDecoder creates a new R32 instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes a 32-bit instruction word.
//
// The classes are checked in a fixed order and the first match wins:
// immediate group (bit 25), load/store ([27:26] == 01), B ([27:24] == 1010),
// BL ([27:24] == 1011). A word whose bits [27:24] are 1010 or 1011 always has
// bit 25 set, so the immediate group claims it first and B/BL are never
// produced here.
func (d *Decoder) Decode(word uint32) Instruction {
	switch {
	case d.isImmediate(word):
		return d.decodeImmediate(word)
	case d.isLoadStore(word):
		return d.decodeLoadStore(word)
	case d.isBranch(word):
		return B{Offset: d.branchOffset(word)}
	case d.isBranchLink(word):
		return BL{Offset: d.branchOffset(word)}
	default:
		return Unknown{}
	}
}

// isImmediate checks the I bit (bit 25).
func (d *Decoder) isImmediate(word uint32) bool {
	return (word>>25)&0x1 == 1
}

// decodeImmediate decodes the data processing and shift group.
// Format: cond | 00 | I=1 | opcode | S | Rn | Rd | imm8
func (d *Decoder) decodeImmediate(word uint32) Instruction {
	opcode := (word >> 21) & 0xF // bits [24:21]
	rn := uint8((word >> 16) & 0xF)
	rd := uint8((word >> 12) & 0xF)
	imm := word & 0xFF // bits [7:0]

	switch opcode {
	case opcodeMOV:
		return MOV{Rd: rd, Imm: imm}
	case opcodeADD:
		return ADD{Rd: rd, Rn: rn, Imm: imm}
	case opcodeSUB:
		return SUB{Rd: rd, Rn: rn, Imm: imm}
	case opcodeCMP:
		return CMP{Rn: rn, Imm: imm}
	case opcodeAND:
		return AND{Rd: rd, Rn: rn, Imm: imm}
	case opcodeOR:
		return OR{Rd: rd, Rn: rn, Imm: imm}
	case opcodeXOR:
		return XOR{Rd: rd, Rn: rn, Imm: imm}
	case opcodeMUL:
		return MUL{Rd: rd, Rn: rn, Imm: imm}
	case opcodeMVN:
		return MVN{Rd: rd, Imm: imm}
	case opcodeTST:
		return TST{Rn: rn, Imm: imm}
	case opcodeShift:
		return d.decodeShift(word, rd, rn)
	default:
		return Unknown{}
	}
}

// decodeShift decodes LSL and LSR.
// Format: ... | Rn | Rd | shift_amount[11:7] | shift_type[6:5] | x[4:0]
func (d *Decoder) decodeShift(word uint32, rd, rn uint8) Instruction {
	amount := (word >> 7) & 0x1F
	shiftType := ShiftType((word >> 5) & 0x3)

	switch shiftType {
	case ShiftLSL:
		return LSL{Rd: rd, Rn: rn, Shift: amount}
	case ShiftLSR:
		return LSR{Rd: rd, Rn: rn, Shift: amount}
	default:
		return Unknown{}
	}
}

// isLoadStore checks for the single data transfer class: bits [27:26] == 01.
func (d *Decoder) isLoadStore(word uint32) bool {
	return (word>>26)&0x3 == 0b01
}

// decodeLoadStore decodes LDR and STR.
// Format: cond | 01 | I | P | U | B | W | L | Rn | Rd | offset12
func (d *Decoder) decodeLoadStore(word uint32) Instruction {
	rd := uint8((word >> 12) & 0xF)
	rn := uint8((word >> 16) & 0xF)
	lBit := (word >> 20) & 0x1
	offset := word & 0xFFF // unsigned, U bit ignored

	if lBit == 1 {
		return LDR{Rd: rd, Rn: rn, Offset: offset}
	}
	return STR{Rd: rd, Rn: rn, Offset: offset}
}

// isBranch checks for B: bits [27:24] == 1010.
func (d *Decoder) isBranch(word uint32) bool {
	return (word>>24)&0xF == 0b1010
}

// isBranchLink checks for BL: bits [27:24] == 1011.
func (d *Decoder) isBranchLink(word uint32) bool {
	return (word>>24)&0xF == 0b1011
}

// branchOffset extracts imm24 and scales it to bytes. No sign extension.
func (d *Decoder) branchOffset(word uint32) uint32 {
	return (word & 0xFFFFFF) << 2
}
