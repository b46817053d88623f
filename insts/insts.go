// Package insts provides instruction definitions and decoding for the R32
// fixed-width instruction encoding.
//
// This package implements decoding of 32-bit machine words into structured
// instruction values. It supports:
//   - Data Processing (Immediate): MOV, ADD, SUB, CMP, AND, OR, XOR, MUL, MVN, TST
//   - Shift (Immediate): LSL, LSR
//   - Load/Store: LDR, STR with an unsigned 12-bit offset
//   - Branch: B, BL with an unsigned 24-bit word offset
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.Decode(0xE2812003) // ADD R2, R1, #3
//	if add, ok := inst.(insts.ADD); ok {
//		fmt.Printf("Rd: %d, Rn: %d, Imm: %d\n", add.Rd, add.Rn, add.Imm)
//	}
package insts
