package insts

// Op represents an R32 opcode.
type Op uint8

// R32 opcodes.
const (
	OpUnknown Op = iota
	OpMOV
	OpADD
	OpSUB
	OpCMP
	OpAND
	OpOR
	OpXOR
	OpMUL
	OpMVN
	OpTST
	OpLSL
	OpLSR
	OpLDR
	OpSTR
	OpB
	OpBL
)

var opNames = [...]string{
	OpUnknown: "UNKNOWN",
	OpMOV:     "MOV",
	OpADD:     "ADD",
	OpSUB:     "SUB",
	OpCMP:     "CMP",
	OpAND:     "AND",
	OpOR:      "OR",
	OpXOR:     "XOR",
	OpMUL:     "MUL",
	OpMVN:     "MVN",
	OpTST:     "TST",
	OpLSL:     "LSL",
	OpLSR:     "LSR",
	OpLDR:     "LDR",
	OpSTR:     "STR",
	OpB:       "B",
	OpBL:      "BL",
}

// String returns the mnemonic of the opcode.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "UNKNOWN"
}

// SetsFlags reports whether executing the opcode recomputes the N and Z flags.
func (op Op) SetsFlags() bool {
	switch op {
	case OpMOV, OpADD, OpSUB, OpCMP, OpAND, OpOR, OpXOR,
		OpMUL, OpMVN, OpTST, OpLSL, OpLSR:
		return true
	default:
		return false
	}
}
