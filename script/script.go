// Package script evaluates Starlark image scripts into R32 instruction words.
//
// A script binds the global `program` to a list of 32-bit integers. Encoder
// builtins are predeclared so programs can be written symbolically:
//
//	program = [
//	    mov(R1, 4),
//	    add(R2, R1, 3),
//	    str_(R2, R1, 4),
//	    ldr(R3, R1, 4),
//	]
//
// Raw words are plain integers, e.g. 0xE3A01004.
package script

import (
	"errors"
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/sarchlab/r32sim/insts"
)

// ProgramVar is the global every script must bind.
const ProgramVar = "program"

var (
	// ErrNoProgram means the script did not bind ProgramVar.
	ErrNoProgram = errors.New("script does not define " + ProgramVar)
	// ErrNotWordList means ProgramVar is not a list or tuple.
	ErrNotWordList = errors.New(ProgramVar + " must be a list of ints")
)

// ErrWord reports a program element that is not a 32-bit unsigned integer.
type ErrWord struct {
	Index int
	Value string
}

func (err ErrWord) Error() string {
	return fmt.Sprintf("%s[%d] = %s is not a 32-bit word", ProgramVar, err.Index, err.Value)
}

// Eval runs a script and returns the words bound to `program`.
// src may be a string, []byte or io.Reader; nil reads filename.
func Eval(filename string, src interface{}) ([]uint32, error) {
	thread := &starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, Predeclared())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	value, ok := globals[ProgramVar]
	if !ok {
		return nil, fmt.Errorf("%s: %w", filename, ErrNoProgram)
	}

	seq, ok := value.(starlark.Indexable)
	if !ok {
		return nil, fmt.Errorf("%s: %w (got %s)", filename, ErrNotWordList, value.Type())
	}

	words := make([]uint32, 0, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		w, ok := toWord(seq.Index(i))
		if !ok {
			return nil, fmt.Errorf("%s: %w", filename, ErrWord{Index: i, Value: seq.Index(i).String()})
		}
		words = append(words, w)
	}

	return words, nil
}

func toWord(v starlark.Value) (uint32, bool) {
	i, ok := v.(starlark.Int)
	if !ok {
		return 0, false
	}
	u, ok := i.Uint64()
	if !ok || u > 0xFFFFFFFF {
		return 0, false
	}
	return uint32(u), true
}

// Predeclared returns the builtins and constants visible to scripts.
func Predeclared() starlark.StringDict {
	dict := starlark.StringDict{
		"mov":  regImm("mov", insts.EncodeMOV, insts.MaxImm),
		"mvn":  regImm("mvn", insts.EncodeMVN, insts.MaxImm),
		"cmp":  regImm("cmp", insts.EncodeCMP, insts.MaxImm),
		"tst":  regImm("tst", insts.EncodeTST, insts.MaxImm),
		"add":  regRegImm("add", insts.EncodeADD, insts.MaxImm),
		"sub":  regRegImm("sub", insts.EncodeSUB, insts.MaxImm),
		"and_": regRegImm("and_", insts.EncodeAND, insts.MaxImm),
		"or_":  regRegImm("or_", insts.EncodeOR, insts.MaxImm),
		"xor":  regRegImm("xor", insts.EncodeXOR, insts.MaxImm),
		"mul":  regRegImm("mul", insts.EncodeMUL, insts.MaxImm),
		"lsl":  regRegImm("lsl", insts.EncodeLSL, insts.MaxShift),
		"lsr":  regRegImm("lsr", insts.EncodeLSR, insts.MaxShift),
		"ldr":  regRegImm("ldr", insts.EncodeLDR, insts.MaxOffset),
		"str_": regRegImm("str_", insts.EncodeSTR, insts.MaxOffset),
		"word": starlark.NewBuiltin("word", word),
		"LR":   starlark.MakeInt(14),
		"PC":   starlark.MakeInt(15),
	}

	for i := 0; i <= insts.MaxRegister; i++ {
		dict[fmt.Sprintf("R%d", i)] = starlark.MakeInt(i)
	}

	return dict
}

func word(_ *starlark.Thread, b *starlark.Builtin,
	args starlark.Tuple, kwargs []starlark.Tuple,
) (starlark.Value, error) {
	var v starlark.Int
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &v); err != nil {
		return nil, err
	}

	w, ok := toWord(v)
	if !ok {
		return nil, fmt.Errorf("%s: %v is not a 32-bit word", b.Name(), v)
	}
	return starlark.MakeUint64(uint64(w)), nil
}

func regImm(name string, encode func(uint8, uint32) uint32, maxImm int) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(_ *starlark.Thread, b *starlark.Builtin,
		args starlark.Tuple, kwargs []starlark.Tuple,
	) (starlark.Value, error) {
		var reg, imm int
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &reg, &imm); err != nil {
			return nil, err
		}
		if err := checkReg(b.Name(), reg); err != nil {
			return nil, err
		}
		if err := checkField(b.Name(), imm, maxImm); err != nil {
			return nil, err
		}

		return starlark.MakeUint64(uint64(encode(uint8(reg), uint32(imm)))), nil
	})
}

func regRegImm(name string, encode func(uint8, uint8, uint32) uint32, maxImm int) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(_ *starlark.Thread, b *starlark.Builtin,
		args starlark.Tuple, kwargs []starlark.Tuple,
	) (starlark.Value, error) {
		var rd, rn, imm int
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 3, &rd, &rn, &imm); err != nil {
			return nil, err
		}
		if err := checkReg(b.Name(), rd); err != nil {
			return nil, err
		}
		if err := checkReg(b.Name(), rn); err != nil {
			return nil, err
		}
		if err := checkField(b.Name(), imm, maxImm); err != nil {
			return nil, err
		}

		return starlark.MakeUint64(uint64(encode(uint8(rd), uint8(rn), uint32(imm)))), nil
	})
}

func checkReg(name string, reg int) error {
	if reg < 0 || reg > insts.MaxRegister {
		return fmt.Errorf("%s: register %d out of range (0-%d)", name, reg, insts.MaxRegister)
	}
	return nil
}

func checkField(name string, v, max int) error {
	if v < 0 || v > max {
		return fmt.Errorf("%s: operand %d out of range (0-%d)", name, v, max)
	}
	return nil
}
