package emu

import (
	"fmt"

	"github.com/sarchlab/r32sim/insts"
)

// Executor applies decoded instructions to a register file and memory.
type Executor struct {
	alu        *ALU
	lsu        *LoadStoreUnit
	branchUnit *BranchUnit
}

// NewExecutor creates an Executor with its own execution units.
func NewExecutor(regFile *RegFile, memory *Memory) *Executor {
	return &Executor{
		alu:        NewALU(regFile),
		lsu:        NewLoadStoreUnit(regFile, memory),
		branchUnit: NewBranchUnit(regFile),
	}
}

// Execute runs one instruction. The caller must add WordSize to R15
// afterwards; branches are written assuming it will.
//
// Unknown changes nothing and returns nil. The only errors are memory faults
// from LDR and STR.
func (x *Executor) Execute(inst insts.Instruction) error {
	switch i := inst.(type) {
	case insts.MOV:
		x.alu.MOV(i.Rd, i.Imm)
	case insts.ADD:
		x.alu.ADD(i.Rd, i.Rn, i.Imm)
	case insts.SUB:
		x.alu.SUB(i.Rd, i.Rn, i.Imm)
	case insts.CMP:
		x.alu.CMP(i.Rn, i.Imm)
	case insts.AND:
		x.alu.AND(i.Rd, i.Rn, i.Imm)
	case insts.OR:
		x.alu.OR(i.Rd, i.Rn, i.Imm)
	case insts.XOR:
		x.alu.XOR(i.Rd, i.Rn, i.Imm)
	case insts.MUL:
		x.alu.MUL(i.Rd, i.Rn, i.Imm)
	case insts.MVN:
		x.alu.MVN(i.Rd, i.Imm)
	case insts.TST:
		x.alu.TST(i.Rn, i.Imm)
	case insts.LSL:
		x.alu.LSL(i.Rd, i.Rn, i.Shift)
	case insts.LSR:
		x.alu.LSR(i.Rd, i.Rn, i.Shift)
	case insts.LDR:
		return x.lsu.LDR(i.Rd, i.Rn, i.Offset)
	case insts.STR:
		return x.lsu.STR(i.Rd, i.Rn, i.Offset)
	case insts.B:
		x.branchUnit.B(i.Offset)
	case insts.BL:
		x.branchUnit.BL(i.Offset)
	case insts.Unknown:
	default:
		panic(fmt.Sprintf("unhandled instruction type %T", inst))
	}

	return nil
}

// Execute runs one instruction against the given state with a throwaway
// Executor.
func Execute(inst insts.Instruction, regFile *RegFile, memory *Memory) error {
	return NewExecutor(regFile, memory).Execute(inst)
}
