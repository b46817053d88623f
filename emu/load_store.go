package emu

// LoadStoreUnit implements R32 load and store operations.
type LoadStoreUnit struct {
	regFile *RegFile
	memory  *Memory
}

// NewLoadStoreUnit creates a new LoadStoreUnit connected to the given
// register file and memory.
func NewLoadStoreUnit(regFile *RegFile, memory *Memory) *LoadStoreUnit {
	return &LoadStoreUnit{
		regFile: regFile,
		memory:  memory,
	}
}

// EffectiveAddress returns Rn + offset. The sum does not wrap at 32 bits, so
// a base near the top of the address space faults instead of aliasing low
// memory.
func (lsu *LoadStoreUnit) EffectiveAddress(rn uint8, offset uint32) uint64 {
	return uint64(lsu.regFile.Get(rn)) + uint64(offset)
}

// LDR performs a word load: Rd = mem[Rn + offset]
func (lsu *LoadStoreUnit) LDR(rd, rn uint8, offset uint32) error {
	value, err := lsu.memory.ReadWord(lsu.EffectiveAddress(rn, offset))
	if err != nil {
		return err
	}
	lsu.regFile.Set(rd, value)
	return nil
}

// STR performs a word store: mem[Rn + offset] = Rd
func (lsu *LoadStoreUnit) STR(rd, rn uint8, offset uint32) error {
	addr := lsu.EffectiveAddress(rn, offset)
	return lsu.memory.WriteWord(addr, lsu.regFile.Get(rd))
}
