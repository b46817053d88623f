package emu

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/r32sim/insts"
)

// HookPosStep is invoked once per executed instruction, after execution and
// before the program counter advances. The hook item is a StepRecord.
var HookPosStep = &sim.HookPos{Name: "Step"}

// StepRecord is what a step hook observes: the fetch address, the raw word
// and its decoded instruction.
type StepRecord struct {
	Addr uint64
	Word uint32
	Inst insts.Instruction
}

// StepRecorder is a hook that collects every StepRecord.
type StepRecorder struct {
	Steps []StepRecord
}

// NewStepRecorder creates an empty StepRecorder.
func NewStepRecorder() *StepRecorder {
	return &StepRecorder{}
}

// Func implements sim.Hook.
func (r *StepRecorder) Func(ctx sim.HookCtx) {
	if ctx.Pos != HookPosStep {
		return
	}

	record, ok := ctx.Item.(StepRecord)
	if !ok {
		return
	}
	r.Steps = append(r.Steps, record)
}
