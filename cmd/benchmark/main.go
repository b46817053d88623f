// Command benchmark runs the built-in R32 programs and validates their final
// state.
//
// Usage:
//
//	go run ./cmd/benchmark [flags]
//
// Flags:
//
//	-csv    Output results in CSV format (default: human-readable)
//	-json   Output results in JSON format
//	-core   Run only the core programs
//	-max    Instruction limit per program
//
// Example:
//
//	# Output CSV for spreadsheet comparison
//	go run ./cmd/benchmark -csv > results.csv
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/r32sim/benchmarks"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("benchmark", flag.ContinueOnError)
	fs.SetOutput(stderr)

	csvOutput := fs.Bool("csv", false, "Output results in CSV format")
	jsonOutput := fs.Bool("json", false, "Output results in JSON format")
	core := fs.Bool("core", false, "Run only the core programs")
	maxInsts := fs.Uint64("max", 10000, "Instruction limit per program")
	verbose := fs.Bool("v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	config := benchmarks.DefaultConfig()
	config.MaxInstructions = *maxInsts
	config.Output = stdout
	config.Verbose = *verbose

	harness := benchmarks.NewHarness(config)
	if *core {
		harness.AddBenchmarks(benchmarks.GetCorePrograms())
	} else {
		harness.AddBenchmarks(benchmarks.GetPrograms())
	}

	results := harness.RunAll()

	switch {
	case *jsonOutput:
		if err := harness.PrintJSON(results); err != nil {
			fmt.Fprintf(stderr, "Error writing JSON: %v\n", err)
			return 1
		}
	case *csvOutput:
		harness.PrintCSV(results)
	default:
		harness.PrintResults(results)

		summary := benchmarks.Summarize(results)
		fmt.Fprintln(stdout, "=== Summary ===")
		fmt.Fprintf(stdout, "Passed: %d/%d\n", summary.Passed, summary.TotalBenchmarks)
		fmt.Fprintf(stdout, "Instructions: %d\n", summary.TotalInstructions)
	}

	if benchmarks.Summarize(results).Passed != len(results) {
		return 1
	}
	return 0
}
