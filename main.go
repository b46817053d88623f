// Package main provides the entry point for R32Sim.
// R32Sim is a functional simulator for the R32 instruction set.
//
// For the full CLI, use: go run ./cmd/r32sim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("R32Sim - R32 Instruction Set Simulator")
	fmt.Println("Built on Akita simulation framework")
	fmt.Println("")
	fmt.Println("Usage: r32sim [options] [image.bin]")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -config    Path to simulation configuration JSON file")
	fmt.Println("  -trace     Print each executed instruction (default true)")
	fmt.Println("  -max       Stop after this many instructions")
	fmt.Println("  -mem       Memory size in bytes (default 4096)")
	fmt.Println("  -v         Log verbosity")
	fmt.Println("  -dump      Dump the final result structure")
	fmt.Println("")
	fmt.Println("Build images with 'go run ./cmd/r32img'.")
	fmt.Println("Run 'go run ./cmd/r32sim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/r32sim' instead.")
	}
}
