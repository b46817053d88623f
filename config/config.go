// Package config provides the JSON simulation configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sarchlab/r32sim/emu"
)

// MaxMemorySize is the largest memory the 32-bit program counter can address.
const MaxMemorySize = 1 << 32

// SimConfig holds the settings of a simulation run.
type SimConfig struct {
	// MemorySize is the memory capacity in bytes. It must be a multiple of
	// the word size. Default: 4096.
	MemorySize uint64 `json:"memory_size"`

	// MaxInstructions stops a run that has not halted after this many
	// instructions. Default: 0 (no limit).
	MaxInstructions uint64 `json:"max_instructions"`

	// Trace prints one line per executed instruction. Default: true.
	Trace bool `json:"trace"`

	// Verbosity is the log verbosity: 0 errors only, 1 run events,
	// 2 every step. Default: 0.
	Verbosity int `json:"verbosity"`
}

// DefaultSimConfig returns a SimConfig with default values.
func DefaultSimConfig() *SimConfig {
	return &SimConfig{
		MemorySize:      emu.DefaultMemorySize,
		MaxInstructions: 0,
		Trace:           true,
		Verbosity:       0,
	}
}

// LoadConfig loads a SimConfig from a JSON file. Fields missing from the file
// keep their defaults.
func LoadConfig(path string) (*SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultSimConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// SaveConfig writes a SimConfig to a JSON file.
func (c *SimConfig) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that all values are usable.
func (c *SimConfig) Validate() error {
	if c.MemorySize < emu.WordSize {
		return fmt.Errorf("memory_size must be >= %d", emu.WordSize)
	}
	if c.MemorySize%emu.WordSize != 0 {
		return fmt.Errorf("memory_size must be a multiple of %d", emu.WordSize)
	}
	if c.MemorySize > MaxMemorySize {
		return fmt.Errorf("memory_size must be <= %d", uint64(MaxMemorySize))
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity must be >= 0")
	}
	return nil
}

// Clone returns a deep copy of the SimConfig.
func (c *SimConfig) Clone() *SimConfig {
	return &SimConfig{
		MemorySize:      c.MemorySize,
		MaxInstructions: c.MaxInstructions,
		Trace:           c.Trace,
		Verbosity:       c.Verbosity,
	}
}

// Options converts the configuration into emulator options.
func (c *SimConfig) Options() []emu.EmulatorOption {
	return []emu.EmulatorOption{
		emu.WithMemorySize(c.MemorySize),
		emu.WithMaxInstructions(c.MaxInstructions),
	}
}
