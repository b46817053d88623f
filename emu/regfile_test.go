package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/r32sim/emu"
)

var _ = Describe("RegFile", func() {
	var regFile *emu.RegFile

	BeforeEach(func() {
		regFile = &emu.RegFile{}
	})

	It("should start with all registers and flags zero", func() {
		for i := uint8(0); i < emu.NumRegs; i++ {
			Expect(regFile.Get(i)).To(Equal(uint32(0)))
		}
		Expect(regFile.Flags).To(Equal(emu.Flags{}))
	})

	It("should read back every written value unchanged", func() {
		values := []uint32{0, 1, 0x7FFFFFFF, 0x80000000, 0xFFFFFFFF, 0xDEADBEEF}
		for i := uint8(0); i < emu.NumRegs; i++ {
			for _, v := range values {
				regFile.Set(i, v)
				Expect(regFile.Get(i)).To(Equal(v))
			}
		}
	})

	It("should treat R15 as the program counter", func() {
		regFile.Set(15, 0x40)
		Expect(regFile.PC()).To(Equal(uint32(0x40)))

		regFile.SetPC(0x80)
		Expect(regFile.R[15]).To(Equal(uint32(0x80)))
	})

	It("should treat R14 as the link register", func() {
		regFile.Set(emu.RegLR, 0x1234)
		Expect(regFile.LR()).To(Equal(uint32(0x1234)))
	})

	It("should panic on an out-of-range index", func() {
		Expect(func() { regFile.Get(16) }).To(PanicWith(&emu.RegisterFault{Index: 16}))
		Expect(func() { regFile.Set(200, 1) }).To(PanicWith(&emu.RegisterFault{Index: 200}))
	})

	Describe("UpdateFlags", func() {
		It("should set Z for zero", func() {
			regFile.UpdateFlags(0)
			Expect(regFile.Flags.Z).To(BeTrue())
			Expect(regFile.Flags.N).To(BeFalse())
		})

		It("should set N from bit 31", func() {
			regFile.UpdateFlags(0x80000000)
			Expect(regFile.Flags.Z).To(BeFalse())
			Expect(regFile.Flags.N).To(BeTrue())
		})

		It("should clear both for a small positive value", func() {
			regFile.Flags.N = true
			regFile.Flags.Z = true
			regFile.UpdateFlags(5)
			Expect(regFile.Flags.Z).To(BeFalse())
			Expect(regFile.Flags.N).To(BeFalse())
		})

		It("should never touch C or V", func() {
			regFile.Flags.C = true
			regFile.Flags.V = true
			for _, r := range []uint32{0, 1, 0x80000000, 0xFFFFFFFF} {
				regFile.UpdateFlags(r)
				Expect(regFile.Flags.C).To(BeTrue())
				Expect(regFile.Flags.V).To(BeTrue())
			}
		})
	})

	It("should snapshot by value", func() {
		regFile.Set(3, 9)
		snap := regFile.Snapshot()
		regFile.Set(3, 10)

		Expect(snap.R[3]).To(Equal(uint32(9)))
	})

	It("should format flags as bits", func() {
		Expect(emu.Flags{N: true, V: true}.String()).To(Equal("N=1 Z=0 C=0 V=1"))
	})
})
