// Package report renders emulator runs for humans.
package report

import (
	"fmt"
	"io"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/r32sim/emu"
	"github.com/sarchlab/r32sim/insts"
)

// Tracer is a step hook that prints one line per executed instruction.
type Tracer struct {
	w io.Writer
}

// NewTracer creates a Tracer writing to w.
func NewTracer(w io.Writer) *Tracer {
	return &Tracer{w: w}
}

// Func implements sim.Hook.
func (t *Tracer) Func(ctx sim.HookCtx) {
	if ctx.Pos != emu.HookPosStep {
		return
	}

	record, ok := ctx.Item.(emu.StepRecord)
	if !ok {
		return
	}

	fmt.Fprintf(t.w, "[0x%x] Executing: %s\n", record.Addr, record.Inst)
	if record.Inst.Op() == insts.OpUnknown {
		fmt.Fprintf(t.w, "Unknown instruction: %s\n", record.Inst)
	}
}
