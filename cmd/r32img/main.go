// Package main provides the r32img command, which builds a flat R32 image
// from a Starlark program script.
//
// Usage:
//
//	r32img [-o out.bin] [-list] [script.star]
//
// Without a script the built-in sample sequence is written.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/r32sim/insts"
	"github.com/sarchlab/r32sim/loader"
	"github.com/sarchlab/r32sim/script"
)

// SampleProgram is written when no script is given.
var SampleProgram = []uint32{
	0xE3A01004, // MOV R1, #4
	0xE2812003, // ADD R2, R1, #3
	0xE5812004, // STR R2, [R1, #4]
	0xE5913004, // LDR R3, [R1, #4]
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("r32img", flag.ContinueOnError)
	fs.SetOutput(stderr)

	output := fs.String("o", "test.bin", "Output image path")
	list := fs.Bool("list", false, "Print the decoded program")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: r32img [options] [script.star]\n")
		fmt.Fprintf(stderr, "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}

	words := SampleProgram
	if fs.NArg() > 0 {
		var err error
		words, err = script.Eval(fs.Arg(0), nil)
		if err != nil {
			fmt.Fprintf(stderr, "Error evaluating script: %v\n", err)
			return 1
		}
	}

	if err := loader.Save(*output, words); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if *list {
		decoder := insts.NewDecoder()
		for i, w := range words {
			fmt.Fprintf(stdout, "0x%04x: %08X  %s\n", i*loader.WordSize, w, decoder.Decode(w))
		}
	}

	fmt.Fprintf(stdout, "Wrote %d instructions to %s\n", len(words), *output)

	return 0
}
