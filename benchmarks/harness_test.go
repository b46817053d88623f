package benchmarks_test

import (
	"bytes"
	"encoding/json"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/r32sim/benchmarks"
	"github.com/sarchlab/r32sim/emu"
	"github.com/sarchlab/r32sim/insts"
	"github.com/sarchlab/r32sim/loader"
)

var _ = Describe("Harness", func() {
	var (
		output  *bytes.Buffer
		harness *benchmarks.Harness
	)

	BeforeEach(func() {
		output = &bytes.Buffer{}
		config := benchmarks.DefaultConfig()
		config.Output = output
		config.Logger = GinkgoLogr
		harness = benchmarks.NewHarness(config)
	})

	Describe("built-in programs", func() {
		for _, bench := range benchmarks.GetPrograms() {
			bench := bench
			It("should pass "+bench.Name, func() {
				harness.AddBenchmark(bench)
				results := harness.RunAll()

				Expect(results).To(HaveLen(1))
				Expect(results[0].Error).To(BeEmpty())
				Expect(results[0].Mismatches).To(BeEmpty())
				Expect(results[0].Passed).To(BeTrue())
			})
		}
	})

	It("should have unique names and a core subset", func() {
		names := map[string]bool{}
		for _, b := range benchmarks.GetPrograms() {
			Expect(names).NotTo(HaveKey(b.Name))
			names[b.Name] = true
		}
		for _, b := range benchmarks.GetCorePrograms() {
			Expect(names).To(HaveKey(b.Name))
		}

		_, ok := benchmarks.GetProgram("memory_copy")
		Expect(ok).To(BeTrue())
		_, ok = benchmarks.GetProgram("nope")
		Expect(ok).To(BeFalse())
	})

	It("should report mismatches", func() {
		harness.AddBenchmark(benchmarks.Benchmark{
			Name:         "wrong",
			Program:      loader.BuildImage(insts.EncodeMOV(0, 1)),
			ExpectedRegs: map[uint8]uint32{0: 2},
			ExpectedHalt: emu.HaltUnknownInstruction,
		})

		results := harness.RunAll()

		Expect(results[0].Passed).To(BeFalse())
		Expect(results[0].Mismatches).To(ConsistOf(
			"R0: got 0x1, want 0x2",
			"halt: got end of image, want unknown instruction",
		))
	})

	It("should report a fault", func() {
		harness.AddBenchmark(benchmarks.Benchmark{
			Name:    "fault",
			Program: loader.BuildImage(insts.EncodeMVN(1, 0), insts.EncodeLDR(2, 1, 0)),
		})

		results := harness.RunAll()

		Expect(results[0].Passed).To(BeFalse())
		Expect(results[0].Error).To(ContainSubstring("LDR R2, [R1, #0]"))
		Expect(results[0].Instructions).To(Equal(uint64(1)))
	})

	It("should stop a runaway program", func() {
		harness.AddBenchmark(benchmarks.Benchmark{
			Name:    "loop",
			Program: loader.BuildImage(insts.EncodeMOV(0, 0), insts.EncodeMOV(15, 0)),
		})

		results := harness.RunAll()

		Expect(results[0].Passed).To(BeFalse())
		Expect(results[0].Error).To(ContainSubstring("max instructions reached"))
	})

	Describe("output", func() {
		var results []benchmarks.BenchmarkResult

		BeforeEach(func() {
			harness.AddBenchmarks(benchmarks.GetCorePrograms())
			results = harness.RunAll()
		})

		It("should print human-readable results", func() {
			harness.PrintResults(results)

			Expect(output.String()).To(ContainSubstring("=== R32Sim Benchmark Results ==="))
			Expect(output.String()).To(ContainSubstring("Benchmark: sample_sequence [PASS]"))
		})

		It("should print CSV", func() {
			harness.PrintCSV(results)

			lines := strings.Split(strings.TrimSpace(output.String()), "\n")
			Expect(lines).To(HaveLen(4))
			Expect(lines[0]).To(Equal("name,instructions,halt,passed,wall_time_ns"))
			Expect(lines[1]).To(HavePrefix("sample_sequence,4,end of image,true,"))
		})

		It("should print JSON", func() {
			Expect(harness.PrintJSON(results)).To(Succeed())

			var report benchmarks.BenchmarkReport
			Expect(json.Unmarshal(output.Bytes(), &report)).To(Succeed())
			Expect(report.Results).To(HaveLen(3))
			Expect(report.Summary.TotalBenchmarks).To(Equal(3))
			Expect(report.Summary.Passed).To(Equal(3))
			Expect(report.Metadata.MemorySize).To(Equal(uint64(4096)))
		})
	})
})
