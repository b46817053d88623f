// Package benchmarks provides built-in R32 programs and a harness that runs
// and validates them.
package benchmarks

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/go-logr/logr"

	"github.com/sarchlab/r32sim/emu"
)

// BenchmarkResult holds the results of a single benchmark run.
type BenchmarkResult struct {
	// Name identifies the benchmark
	Name string `json:"name"`

	// Description explains what the benchmark exercises
	Description string `json:"description"`

	// Instructions is the number of executed instructions
	Instructions uint64 `json:"instructions"`

	// Halt is why the run stopped
	Halt string `json:"halt"`

	// Passed is true when the final state matched every expectation
	Passed bool `json:"passed"`

	// Mismatches lists the expectations that failed
	Mismatches []string `json:"mismatches,omitempty"`

	// Error is the fault that aborted the run, if any
	Error string `json:"error,omitempty"`

	// WallTime is the actual time taken to run the emulation
	WallTime time.Duration `json:"wall_time_ns"`
}

// Benchmark defines a single benchmark program.
type Benchmark struct {
	// Name identifies the benchmark
	Name string

	// Description explains what the benchmark exercises
	Description string

	// Program is the flat R32 image, loaded at address 0
	Program []byte

	// ExpectedRegs maps register indices to their final values
	ExpectedRegs map[uint8]uint32

	// ExpectedFlags, if set, must equal the final flags
	ExpectedFlags *emu.Flags

	// ExpectedHalt is the expected halt reason
	ExpectedHalt emu.HaltReason

	// ExpectedInstructions, if non-zero, is the expected instruction count
	ExpectedInstructions uint64
}

// HarnessConfig configures the benchmark harness.
type HarnessConfig struct {
	// MemorySize is the memory capacity of every run
	MemorySize uint64

	// MaxInstructions bounds every run. 0 means no limit.
	MaxInstructions uint64

	// Output is where to write results (default: os.Stdout)
	Output io.Writer

	// Logger receives emulator logs
	Logger logr.Logger

	// Verbose enables detailed output
	Verbose bool
}

// DefaultConfig returns a default harness configuration.
func DefaultConfig() HarnessConfig {
	return HarnessConfig{
		MemorySize:      emu.DefaultMemorySize,
		MaxInstructions: 10000,
		Output:          os.Stdout,
		Logger:          logr.Discard(),
		Verbose:         false,
	}
}

// Harness runs benchmarks and reports results.
type Harness struct {
	config     HarnessConfig
	benchmarks []Benchmark
}

// NewHarness creates a new benchmark harness.
func NewHarness(config HarnessConfig) *Harness {
	if config.Output == nil {
		config.Output = os.Stdout
	}
	if config.Logger.GetSink() == nil {
		config.Logger = logr.Discard()
	}
	return &Harness{
		config:     config,
		benchmarks: []Benchmark{},
	}
}

// AddBenchmark adds a benchmark to the harness.
func (h *Harness) AddBenchmark(b Benchmark) {
	h.benchmarks = append(h.benchmarks, b)
}

// AddBenchmarks adds multiple benchmarks to the harness.
func (h *Harness) AddBenchmarks(benchmarks []Benchmark) {
	h.benchmarks = append(h.benchmarks, benchmarks...)
}

// RunAll executes all benchmarks and returns results.
func (h *Harness) RunAll() []BenchmarkResult {
	results := make([]BenchmarkResult, 0, len(h.benchmarks))

	for _, bench := range h.benchmarks {
		results = append(results, h.runBenchmark(bench))
	}

	return results
}

func (h *Harness) runBenchmark(bench Benchmark) BenchmarkResult {
	log := h.config.Logger.WithValues("benchmark", bench.Name)

	start := time.Now()
	final, err := emu.Run(bench.Program,
		emu.WithMemorySize(h.config.MemorySize),
		emu.WithMaxInstructions(h.config.MaxInstructions),
		emu.WithLogger(log),
	)
	wallTime := time.Since(start)

	result := BenchmarkResult{
		Name:        bench.Name,
		Description: bench.Description,
		WallTime:    wallTime,
	}

	if err != nil {
		result.Error = err.Error()
	}
	if final == nil {
		return result
	}

	result.Instructions = final.InstructionCount
	result.Halt = final.Halt.String()
	result.Mismatches = Check(bench, final)
	result.Passed = err == nil && len(result.Mismatches) == 0

	return result
}

// Check compares a final state with the benchmark's expectations and returns
// one message per mismatch.
func Check(bench Benchmark, final *emu.Result) []string {
	var mismatches []string

	regs := make([]int, 0, len(bench.ExpectedRegs))
	for r := range bench.ExpectedRegs {
		regs = append(regs, int(r))
	}
	sort.Ints(regs)

	for _, r := range regs {
		want := bench.ExpectedRegs[uint8(r)]
		if r >= emu.NumRegs {
			mismatches = append(mismatches, fmt.Sprintf("R%d: no such register", r))
			continue
		}
		if got := final.Regs.R[r]; got != want {
			mismatches = append(mismatches,
				fmt.Sprintf("R%d: got 0x%x, want 0x%x", r, got, want))
		}
	}

	if bench.ExpectedFlags != nil && final.Regs.Flags != *bench.ExpectedFlags {
		mismatches = append(mismatches,
			fmt.Sprintf("flags: got %s, want %s", final.Regs.Flags, *bench.ExpectedFlags))
	}

	if final.Halt != bench.ExpectedHalt {
		mismatches = append(mismatches,
			fmt.Sprintf("halt: got %s, want %s", final.Halt, bench.ExpectedHalt))
	}

	if bench.ExpectedInstructions != 0 && final.InstructionCount != bench.ExpectedInstructions {
		mismatches = append(mismatches,
			fmt.Sprintf("instructions: got %d, want %d",
				final.InstructionCount, bench.ExpectedInstructions))
	}

	return mismatches
}

// PrintResults outputs benchmark results in human-readable form.
func (h *Harness) PrintResults(results []BenchmarkResult) {
	_, _ = fmt.Fprintln(h.config.Output, "=== R32Sim Benchmark Results ===")
	_, _ = fmt.Fprintln(h.config.Output, "")

	for _, r := range results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}

		_, _ = fmt.Fprintf(h.config.Output, "Benchmark: %s [%s]\n", r.Name, status)
		_, _ = fmt.Fprintf(h.config.Output, "  Description:  %s\n", r.Description)
		_, _ = fmt.Fprintf(h.config.Output, "  Instructions: %d\n", r.Instructions)
		_, _ = fmt.Fprintf(h.config.Output, "  Halt:         %s\n", r.Halt)
		if r.Error != "" {
			_, _ = fmt.Fprintf(h.config.Output, "  Error:        %s\n", r.Error)
		}
		for _, m := range r.Mismatches {
			_, _ = fmt.Fprintf(h.config.Output, "  Mismatch:     %s\n", m)
		}
		if h.config.Verbose {
			_, _ = fmt.Fprintf(h.config.Output, "  Wall Time:    %v\n", r.WallTime)
		}
		_, _ = fmt.Fprintln(h.config.Output, "")
	}
}

// PrintCSV outputs benchmark results as CSV.
func (h *Harness) PrintCSV(results []BenchmarkResult) {
	_, _ = fmt.Fprintln(h.config.Output, "name,instructions,halt,passed,wall_time_ns")

	for _, r := range results {
		_, _ = fmt.Fprintf(h.config.Output, "%s,%d,%s,%t,%d\n",
			r.Name,
			r.Instructions,
			r.Halt,
			r.Passed,
			r.WallTime.Nanoseconds(),
		)
	}
}

// BenchmarkReport is the complete output format for benchmark results.
type BenchmarkReport struct {
	// Metadata about the benchmark run
	Metadata ReportMetadata `json:"metadata"`

	// Results is the list of individual benchmark results
	Results []BenchmarkResult `json:"results"`

	// Summary contains aggregate statistics
	Summary ReportSummary `json:"summary"`
}

// ReportMetadata contains information about the benchmark run.
type ReportMetadata struct {
	Timestamp       string `json:"timestamp"`
	MemorySize      uint64 `json:"memory_size"`
	MaxInstructions uint64 `json:"max_instructions"`
}

// ReportSummary contains aggregate statistics across all benchmarks.
type ReportSummary struct {
	TotalBenchmarks   int           `json:"total_benchmarks"`
	Passed            int           `json:"passed"`
	TotalInstructions uint64        `json:"total_instructions"`
	TotalWallTime     time.Duration `json:"total_wall_time_ns"`
}

// Summarize aggregates results.
func Summarize(results []BenchmarkResult) ReportSummary {
	summary := ReportSummary{TotalBenchmarks: len(results)}
	for _, r := range results {
		if r.Passed {
			summary.Passed++
		}
		summary.TotalInstructions += r.Instructions
		summary.TotalWallTime += r.WallTime
	}
	return summary
}

// PrintJSON outputs benchmark results in JSON format for automated comparison.
func (h *Harness) PrintJSON(results []BenchmarkResult) error {
	report := BenchmarkReport{
		Metadata: ReportMetadata{
			Timestamp:       time.Now().UTC().Format(time.RFC3339),
			MemorySize:      h.config.MemorySize,
			MaxInstructions: h.config.MaxInstructions,
		},
		Results: results,
		Summary: Summarize(results),
	}

	encoder := json.NewEncoder(h.config.Output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
