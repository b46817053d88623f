// Package main provides the r32sim command, which runs a flat R32 image and
// prints the final CPU state.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"

	"github.com/sarchlab/r32sim/config"
	"github.com/sarchlab/r32sim/emu"
	"github.com/sarchlab/r32sim/loader"
	"github.com/sarchlab/r32sim/report"
)

// DefaultImage is run when no image path is given.
const DefaultImage = "test.bin"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("r32sim", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Path to simulation configuration JSON file")
	trace := fs.Bool("trace", true, "Print each executed instruction")
	maxInsts := fs.Uint64("max", 0, "Stop after this many instructions (0 = no limit)")
	memSize := fs.Uint64("mem", emu.DefaultMemorySize, "Memory size in bytes")
	verbosity := fs.Int("v", 0, "Log verbosity")
	dump := fs.Bool("dump", false, "Dump the final result structure")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: r32sim [options] [image.bin]\n")
		fmt.Fprintf(stderr, "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg := config.DefaultSimConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading config: %v\n", err)
			return 1
		}
	}

	// Flags given on the command line override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trace":
			cfg.Trace = *trace
		case "max":
			cfg.MaxInstructions = *maxInsts
		case "mem":
			cfg.MemorySize = *memSize
		case "v":
			cfg.Verbosity = *verbosity
		}
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid config: %v\n", err)
		return 1
	}

	imagePath := DefaultImage
	if fs.NArg() > 0 {
		imagePath = fs.Arg(0)
	}

	img, err := loader.Load(imagePath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading image: %v\n", err)
		return 1
	}

	log := newLogger(stderr, cfg.Verbosity)

	opts := cfg.Options()
	opts = append(opts, emu.WithLogger(log.WithValues("image", imagePath)))
	if cfg.Trace {
		opts = append(opts, emu.WithHook(report.NewTracer(stdout)))
	}

	result, runErr := emu.Run(img.Data, opts...)
	if result == nil {
		fmt.Fprintf(stderr, "Error loading image: %v\n", runErr)
		return 1
	}

	reporter := report.NewReporter(stdout)
	reporter.FinalState(result)
	if *dump {
		report.Dump(stdout, result)
	}

	if runErr != nil {
		reporter.Fault(runErr)
		return 1
	}

	return 0
}

func newLogger(w io.Writer, verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{Verbosity: verbosity})
}
