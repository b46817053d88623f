package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/r32sim/insts"
)

var _ = Describe("Encoder", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	It("should reproduce the sample program words", func() {
		Expect(insts.EncodeMOV(1, 4)).To(Equal(uint32(0xE3A01004)))
		Expect(insts.EncodeADD(2, 1, 3)).To(Equal(uint32(0xE2812003)))
		Expect(insts.EncodeSTR(2, 1, 4)).To(Equal(uint32(0xE5812004)))
		Expect(insts.EncodeLDR(3, 1, 4)).To(Equal(uint32(0xE5913004)))
	})

	DescribeTable("encoded words decode to the intended instruction",
		func(word uint32, expected insts.Instruction) {
			Expect(decoder.Decode(word)).To(Equal(expected))
		},
		Entry("MOV", insts.EncodeMOV(9, 200), insts.MOV{Rd: 9, Imm: 200}),
		Entry("ADD", insts.EncodeADD(2, 3, 7), insts.ADD{Rd: 2, Rn: 3, Imm: 7}),
		Entry("SUB", insts.EncodeSUB(4, 5, 1), insts.SUB{Rd: 4, Rn: 5, Imm: 1}),
		Entry("CMP", insts.EncodeCMP(6, 9), insts.CMP{Rn: 6, Imm: 9}),
		Entry("AND", insts.EncodeAND(1, 1, 0x0F), insts.AND{Rd: 1, Rn: 1, Imm: 0x0F}),
		Entry("OR", insts.EncodeOR(1, 2, 0x80), insts.OR{Rd: 1, Rn: 2, Imm: 0x80}),
		Entry("XOR", insts.EncodeXOR(3, 3, 0xFF), insts.XOR{Rd: 3, Rn: 3, Imm: 0xFF}),
		Entry("MUL", insts.EncodeMUL(5, 6, 10), insts.MUL{Rd: 5, Rn: 6, Imm: 10}),
		Entry("MVN", insts.EncodeMVN(7, 0x55), insts.MVN{Rd: 7, Imm: 0x55}),
		Entry("TST", insts.EncodeTST(8, 0x10), insts.TST{Rn: 8, Imm: 0x10}),
		Entry("LSL", insts.EncodeLSL(1, 2, 31), insts.LSL{Rd: 1, Rn: 2, Shift: 31}),
		Entry("LSR", insts.EncodeLSR(1, 2, 0), insts.LSR{Rd: 1, Rn: 2, Shift: 0}),
		Entry("LDR", insts.EncodeLDR(14, 13, 0xFFF), insts.LDR{Rd: 14, Rn: 13, Offset: 0xFFF}),
		Entry("STR", insts.EncodeSTR(0, 15, 8), insts.STR{Rd: 0, Rn: 15, Offset: 8}),
	)

	It("should mask fields wider than their encoding", func() {
		Expect(decoder.Decode(insts.EncodeMOV(1, 0x1FF))).To(Equal(insts.MOV{Rd: 1, Imm: 0xFF}))
		Expect(decoder.Decode(insts.EncodeLSL(1, 1, 33))).To(Equal(insts.LSL{Rd: 1, Rn: 1, Shift: 1}))
	})
})
