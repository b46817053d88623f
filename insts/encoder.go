package insts

// condAlways is placed in bits [31:28] of every encoded word. The decoder
// ignores it; it keeps encoded programs byte-compatible with existing images.
const condAlways = 0xE << 28

// Field limits for encoding.
const (
	MaxRegister = 15
	MaxImm      = 0xFF
	MaxOffset   = 0xFFF
	MaxShift    = 0x1F
)

// Instruction encoding helpers. Out-of-range fields are masked to their width.

func encodeImmediate(opcode uint32, rd, rn uint8, imm uint32) uint32 {
	var inst uint32 = condAlways
	inst |= 1 << 25 // I = 1
	inst |= (opcode & 0xF) << 21
	inst |= uint32(rn&0xF) << 16
	inst |= uint32(rd&0xF) << 12
	inst |= imm & MaxImm
	return inst
}

// EncodeMOV encodes MOV Rd, #imm8.
func EncodeMOV(rd uint8, imm uint32) uint32 {
	return encodeImmediate(opcodeMOV, rd, 0, imm)
}

// EncodeADD encodes ADD Rd, Rn, #imm8.
func EncodeADD(rd, rn uint8, imm uint32) uint32 {
	return encodeImmediate(opcodeADD, rd, rn, imm)
}

// EncodeSUB encodes SUB Rd, Rn, #imm8.
func EncodeSUB(rd, rn uint8, imm uint32) uint32 {
	return encodeImmediate(opcodeSUB, rd, rn, imm)
}

// EncodeCMP encodes CMP Rn, #imm8.
func EncodeCMP(rn uint8, imm uint32) uint32 {
	return encodeImmediate(opcodeCMP, 0, rn, imm)
}

// EncodeAND encodes AND Rd, Rn, #imm8.
func EncodeAND(rd, rn uint8, imm uint32) uint32 {
	return encodeImmediate(opcodeAND, rd, rn, imm)
}

// EncodeOR encodes OR Rd, Rn, #imm8.
func EncodeOR(rd, rn uint8, imm uint32) uint32 {
	return encodeImmediate(opcodeOR, rd, rn, imm)
}

// EncodeXOR encodes XOR Rd, Rn, #imm8.
func EncodeXOR(rd, rn uint8, imm uint32) uint32 {
	return encodeImmediate(opcodeXOR, rd, rn, imm)
}

// EncodeMUL encodes MUL Rd, Rn, #imm8.
func EncodeMUL(rd, rn uint8, imm uint32) uint32 {
	return encodeImmediate(opcodeMUL, rd, rn, imm)
}

// EncodeMVN encodes MVN Rd, #imm8.
func EncodeMVN(rd uint8, imm uint32) uint32 {
	return encodeImmediate(opcodeMVN, rd, 0, imm)
}

// EncodeTST encodes TST Rn, #imm8.
func EncodeTST(rn uint8, imm uint32) uint32 {
	return encodeImmediate(opcodeTST, 0, rn, imm)
}

func encodeShift(rd, rn uint8, shift uint32, shiftType ShiftType) uint32 {
	inst := encodeImmediate(opcodeShift, rd, rn, 0)
	inst |= (shift & MaxShift) << 7
	inst |= uint32(shiftType&0x3) << 5
	return inst
}

// EncodeLSL encodes LSL Rd, Rn, #shift5.
func EncodeLSL(rd, rn uint8, shift uint32) uint32 {
	return encodeShift(rd, rn, shift, ShiftLSL)
}

// EncodeLSR encodes LSR Rd, Rn, #shift5.
func EncodeLSR(rd, rn uint8, shift uint32) uint32 {
	return encodeShift(rd, rn, shift, ShiftLSR)
}

func encodeLoadStore(load bool, rd, rn uint8, offset uint32) uint32 {
	var inst uint32 = condAlways
	inst |= 0b01 << 26
	inst |= 1 << 24 // P = 1 (pre-indexed)
	inst |= 1 << 23 // U = 1 (add offset)
	if load {
		inst |= 1 << 20
	}
	inst |= uint32(rn&0xF) << 16
	inst |= uint32(rd&0xF) << 12
	inst |= offset & MaxOffset
	return inst
}

// EncodeLDR encodes LDR Rd, [Rn, #offset12].
func EncodeLDR(rd, rn uint8, offset uint32) uint32 {
	return encodeLoadStore(true, rd, rn, offset)
}

// EncodeSTR encodes STR Rd, [Rn, #offset12].
func EncodeSTR(rd, rn uint8, offset uint32) uint32 {
	return encodeLoadStore(false, rd, rn, offset)
}
