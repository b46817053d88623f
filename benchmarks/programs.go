package benchmarks

import (
	"github.com/sarchlab/r32sim/emu"
	"github.com/sarchlab/r32sim/insts"
	"github.com/sarchlab/r32sim/loader"
)

// GetPrograms returns the built-in R32 programs. Each one exercises a
// specific group of instructions and carries its expected final state.
func GetPrograms() []Benchmark {
	return []Benchmark{
		sampleSequence(),
		arithmeticChain(),
		logicOps(),
		shifts(),
		memoryCopy(),
		compareTest(),
		pcWrite(),
		unknownHalt(),
	}
}

// GetCorePrograms returns a minimal set for quick validation.
func GetCorePrograms() []Benchmark {
	return []Benchmark{
		sampleSequence(),
		memoryCopy(),
		unknownHalt(),
	}
}

// GetProgram returns the built-in program with the given name.
func GetProgram(name string) (Benchmark, bool) {
	for _, b := range GetPrograms() {
		if b.Name == name {
			return b, true
		}
	}
	return Benchmark{}, false
}

// 1. Sample Sequence - the reference image written by r32img's default script
func sampleSequence() Benchmark {
	return Benchmark{
		Name:        "sample_sequence",
		Description: "MOV, ADD, STR, LDR through one base register",
		Program: loader.BuildImage(
			0xE3A01004, // MOV R1, #4
			0xE2812003, // ADD R2, R1, #3
			0xE5812004, // STR R2, [R1, #4]
			0xE5913004, // LDR R3, [R1, #4]
		),
		ExpectedRegs:         map[uint8]uint32{1: 4, 2: 7, 3: 7, 15: 0xC},
		ExpectedHalt:         emu.HaltEndOfImage,
		ExpectedInstructions: 4,
	}
}

// 2. Arithmetic Chain - dependent arithmetic including wrap-around
func arithmeticChain() Benchmark {
	return Benchmark{
		Name:        "arithmetic_chain",
		Description: "Dependent ADD, SUB, MUL with 32-bit wrap",
		Program: loader.BuildImage(
			insts.EncodeMOV(0, 10),
			insts.EncodeADD(0, 0, 5),
			insts.EncodeSUB(1, 0, 3),
			insts.EncodeMUL(2, 1, 3),
			insts.EncodeSUB(3, 3, 1),
		),
		ExpectedRegs:         map[uint8]uint32{0: 15, 1: 12, 2: 36, 3: 0xFFFFFFFF},
		ExpectedFlags:        &emu.Flags{N: true},
		ExpectedHalt:         emu.HaltEndOfImage,
		ExpectedInstructions: 5,
	}
}

// 3. Logic Ops - bitwise immediates and MVN
func logicOps() Benchmark {
	return Benchmark{
		Name:        "logic_ops",
		Description: "AND, OR, XOR, MVN on a fixed pattern",
		Program: loader.BuildImage(
			insts.EncodeMOV(0, 0xF0),
			insts.EncodeAND(1, 0, 0x3C),
			insts.EncodeOR(2, 0, 0x0F),
			insts.EncodeXOR(3, 0, 0xFF),
			insts.EncodeMVN(4, 0),
		),
		ExpectedRegs: map[uint8]uint32{
			0: 0xF0, 1: 0x30, 2: 0xFF, 3: 0x0F, 4: 0xFFFFFFFF,
		},
		ExpectedHalt:         emu.HaltEndOfImage,
		ExpectedInstructions: 5,
	}
}

// 4. Shifts - logical shifts across the word
func shifts() Benchmark {
	return Benchmark{
		Name:        "shifts",
		Description: "LSL and LSR to the word edges",
		Program: loader.BuildImage(
			insts.EncodeMOV(0, 1),
			insts.EncodeLSL(1, 0, 31),
			insts.EncodeLSR(2, 1, 28),
			insts.EncodeLSL(3, 0, 0),
			insts.EncodeMOV(4, 0xFF),
			insts.EncodeLSL(5, 4, 24),
		),
		ExpectedRegs: map[uint8]uint32{
			1: 0x80000000, 2: 8, 3: 1, 5: 0xFF000000,
		},
		ExpectedFlags:        &emu.Flags{N: true},
		ExpectedHalt:         emu.HaltEndOfImage,
		ExpectedInstructions: 6,
	}
}

// 5. Memory Copy - store, load and store again past the image
func memoryCopy() Benchmark {
	return Benchmark{
		Name:        "memory_copy",
		Description: "Copy a word between two data slots with STR and LDR",
		Program: loader.BuildImage(
			insts.EncodeMOV(1, 0x40),
			insts.EncodeMOV(2, 0xAB),
			insts.EncodeSTR(2, 1, 0),
			insts.EncodeLDR(3, 1, 0),
			insts.EncodeSTR(3, 1, 4),
			insts.EncodeLDR(4, 1, 4),
		),
		ExpectedRegs:         map[uint8]uint32{1: 0x40, 3: 0xAB, 4: 0xAB},
		ExpectedHalt:         emu.HaltEndOfImage,
		ExpectedInstructions: 6,
	}
}

// 6. Compare Test - flag-only instructions leave registers alone
func compareTest() Benchmark {
	return Benchmark{
		Name:        "compare_test",
		Description: "CMP and TST update flags without writing registers",
		Program: loader.BuildImage(
			insts.EncodeMOV(0, 5),
			insts.EncodeCMP(0, 6),
			insts.EncodeTST(0, 2),
		),
		ExpectedRegs:         map[uint8]uint32{0: 5},
		ExpectedFlags:        &emu.Flags{Z: true},
		ExpectedHalt:         emu.HaltEndOfImage,
		ExpectedInstructions: 3,
	}
}

// 7. PC Write - a data-processing write to R15 acts as a jump
func pcWrite() Benchmark {
	return Benchmark{
		Name:        "pc_write",
		Description: "MOV R15 skips the next instruction",
		Program: loader.BuildImage(
			insts.EncodeMOV(0, 1),
			insts.EncodeMOV(15, 8),
			insts.EncodeMOV(0, 2),
			insts.EncodeMOV(1, 3),
		),
		ExpectedRegs:         map[uint8]uint32{0: 1, 1: 3, 15: 12},
		ExpectedHalt:         emu.HaltEndOfImage,
		ExpectedInstructions: 3,
	}
}

// 8. Unknown Halt - execution stops at the first unknown word
func unknownHalt() Benchmark {
	return Benchmark{
		Name:        "unknown_halt",
		Description: "An undecodable word ends the run",
		Program: loader.BuildImage(
			insts.EncodeMOV(0, 1),
			0x00000000,
			insts.EncodeMOV(0, 2),
		),
		ExpectedRegs:         map[uint8]uint32{0: 1, 15: 4},
		ExpectedHalt:         emu.HaltUnknownInstruction,
		ExpectedInstructions: 2,
	}
}
