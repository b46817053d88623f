package emu

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/r32sim/insts"
)

// HaltReason tells whether and why the driving loop stopped.
type HaltReason uint8

// Halt reasons. Both halts are expected terminations, not errors.
const (
	Running HaltReason = iota
	HaltEndOfImage
	HaltUnknownInstruction
)

func (h HaltReason) String() string {
	switch h {
	case Running:
		return "running"
	case HaltEndOfImage:
		return "end of image"
	case HaltUnknownInstruction:
		return "unknown instruction"
	default:
		return fmt.Sprintf("HaltReason(%d)", uint8(h))
	}
}

// StepResult represents the result of executing a single instruction.
type StepResult struct {
	// Record describes the instruction that was executed.
	Record StepRecord

	// Halt is Running unless this step ended the run.
	Halt HaltReason

	// Err is set if a fault aborted the step.
	Err error
}

// Result is the terminal state of a run.
type Result struct {
	// Regs is a snapshot of the register file and flags.
	Regs RegFile

	// Halt is why the run stopped. Running if a fault aborted it.
	Halt HaltReason

	// InstructionCount is the number of instructions executed.
	InstructionCount uint64

	// Steps holds every executed step in order, when recorded.
	Steps []StepRecord
}

// Emulator runs the fetch/decode/execute loop over a flat image.
type Emulator struct {
	*sim.HookableBase

	regFile  *RegFile
	memory   *Memory
	decoder  *insts.Decoder
	executor *Executor

	log logr.Logger

	memorySize uint64

	// Execution state
	loaded           bool
	imageSize        uint64
	pc               uint64
	halt             HaltReason
	instructionCount uint64
	maxInstructions  uint64 // 0 means no limit
}

// EmulatorOption is a functional option for configuring the Emulator.
type EmulatorOption func(*Emulator)

// WithMemorySize sets the memory capacity in bytes.
func WithMemorySize(size uint64) EmulatorOption {
	return func(e *Emulator) {
		e.memorySize = size
	}
}

// WithMaxInstructions sets the maximum number of instructions to execute.
// A value of 0 means no limit.
func WithMaxInstructions(max uint64) EmulatorOption {
	return func(e *Emulator) {
		e.maxInstructions = max
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log logr.Logger) EmulatorOption {
	return func(e *Emulator) {
		e.log = log
	}
}

// WithHook registers a hook that is invoked at HookPosStep.
func WithHook(hook sim.Hook) EmulatorOption {
	return func(e *Emulator) {
		e.AcceptHook(hook)
	}
}

// NewEmulator creates a new R32 emulator.
func NewEmulator(opts ...EmulatorOption) *Emulator {
	e := &Emulator{
		HookableBase: sim.NewHookableBase(),
		decoder:      insts.NewDecoder(),
		log:          logr.Discard(),
		memorySize:   DefaultMemorySize,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.Reset()

	return e
}

// RegFile returns the emulator's register file.
func (e *Emulator) RegFile() *RegFile {
	return e.regFile
}

// Memory returns the emulator's memory.
func (e *Emulator) Memory() *Memory {
	return e.memory
}

// InstructionCount returns the number of instructions executed.
func (e *Emulator) InstructionCount() uint64 {
	return e.instructionCount
}

// Halt returns the current halt state.
func (e *Emulator) Halt() HaltReason {
	return e.halt
}

// NextPC returns the address of the next fetch.
func (e *Emulator) NextPC() uint64 {
	return e.pc
}

// Reset clears registers, flags and memory. Hooks stay registered.
func (e *Emulator) Reset() {
	e.regFile = &RegFile{}
	e.memory = NewMemoryWithSize(e.memorySize)
	e.executor = NewExecutor(e.regFile, e.memory)

	e.loaded = false
	e.imageSize = 0
	e.pc = 0
	e.halt = Running
	e.instructionCount = 0
}

// LoadImage resets the emulator and loads a flat image at address 0.
// Execution starts at PC = 0. An empty image is halted immediately.
func (e *Emulator) LoadImage(image []byte) error {
	e.Reset()

	if err := e.memory.Load(image); err != nil {
		return err
	}

	e.loaded = true
	e.imageSize = uint64(len(image))
	if e.imageSize == 0 {
		e.halt = HaltEndOfImage
	}

	e.log.V(1).Info("image loaded", "bytes", e.imageSize, "capacity", e.memory.Capacity())

	return nil
}

// Step executes a single instruction.
// Returns a StepResult indicating whether execution should continue.
func (e *Emulator) Step() StepResult {
	if !e.loaded {
		return StepResult{Err: ErrNoImage}
	}
	if e.halt != Running {
		return StepResult{Halt: e.halt}
	}

	// Check instruction limit before executing
	if e.maxInstructions > 0 && e.instructionCount >= e.maxInstructions {
		return StepResult{
			Err: fmt.Errorf("%w (%d)", ErrMaxInstructions, e.maxInstructions),
		}
	}

	pc := e.pc

	// 1. Fetch: Read 4 bytes at PC
	word, err := e.memory.ReadWord(pc)
	if err != nil {
		return StepResult{Err: fmt.Errorf("fetch at PC=0x%X: %w", pc, err)}
	}
	e.regFile.SetPC(uint32(pc))

	// 2. Decode
	inst := e.decoder.Decode(word)
	record := StepRecord{Addr: pc, Word: word, Inst: inst}

	// 3. Execute
	err = e.executor.Execute(inst)

	e.InvokeHook(sim.HookCtx{
		Domain: e,
		Pos:    HookPosStep,
		Item:   record,
	})

	if err != nil {
		return StepResult{
			Record: record,
			Err:    fmt.Errorf("%v at PC=0x%X: %w", inst, pc, err),
		}
	}

	e.instructionCount++

	e.log.V(2).Info("step", "pc", pc, "word", fmt.Sprintf("0x%08X", word), "inst", inst.String())

	// 4. Advance. Computed in 64 bits so R15 near 2^32 ends the run rather
	// than wrapping to 0.
	e.pc = uint64(e.regFile.PC()) + WordSize

	switch {
	case inst.Op() == insts.OpUnknown:
		e.halt = HaltUnknownInstruction
	case e.pc >= e.imageSize:
		e.halt = HaltEndOfImage
	}

	if e.halt != Running {
		e.log.V(1).Info("halted",
			"reason", e.halt.String(),
			"pc", pc,
			"instructions", e.instructionCount)
	}

	return StepResult{Record: record, Halt: e.halt}
}

// Run executes instructions until the loop halts or a fault occurs.
// The returned Result is valid in both cases.
func (e *Emulator) Run() (*Result, error) {
	for {
		result := e.Step()
		if result.Err != nil {
			e.log.Error(result.Err, "emulation fault")
			return e.result(), result.Err
		}
		if result.Halt != Running {
			return e.result(), nil
		}
	}
}

func (e *Emulator) result() *Result {
	return &Result{
		Regs:             e.regFile.Snapshot(),
		Halt:             e.halt,
		InstructionCount: e.instructionCount,
	}
}

// Run loads an image into a fresh emulator, runs it to a halt and returns the
// final state together with every executed step.
func Run(image []byte, opts ...EmulatorOption) (*Result, error) {
	recorder := NewStepRecorder()

	allOpts := make([]EmulatorOption, 0, len(opts)+1)
	allOpts = append(allOpts, opts...)
	allOpts = append(allOpts, WithHook(recorder))

	e := NewEmulator(allOpts...)
	if err := e.LoadImage(image); err != nil {
		return nil, err
	}

	result, err := e.Run()
	result.Steps = recorder.Steps

	return result, err
}
