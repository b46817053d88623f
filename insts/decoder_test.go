package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/r32sim/insts"
)

var _ = Describe("Decoder", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	Describe("Data Processing (Immediate)", func() {
		// MOV R1, #4 -> 0xE3A01004
		// Encoding: cond=1110, 00, I=1, opcode=1101, S=0, Rn=0, Rd=1, imm8=4
		It("should decode MOV R1, #4", func() {
			inst := decoder.Decode(0xE3A01004)

			Expect(inst).To(Equal(insts.MOV{Rd: 1, Imm: 4}))
			Expect(inst.Op()).To(Equal(insts.OpMOV))
			Expect(inst.String()).To(Equal("MOV R1, #4"))
		})

		// ADD R2, R1, #3 -> 0xE2812003
		It("should decode ADD R2, R1, #3", func() {
			inst := decoder.Decode(0xE2812003)

			Expect(inst).To(Equal(insts.ADD{Rd: 2, Rn: 1, Imm: 3}))
		})

		// SUB R5, R6, #20 -> 0xE2465014
		It("should decode SUB R5, R6, #20", func() {
			Expect(decoder.Decode(0xE2465014)).To(Equal(insts.SUB{Rd: 5, Rn: 6, Imm: 20}))
		})

		// CMP R3, #10 -> 0xE343000A
		It("should decode CMP R3, #10 without a destination", func() {
			Expect(decoder.Decode(0xE343000A)).To(Equal(insts.CMP{Rn: 3, Imm: 10}))
		})

		It("should decode AND R0, R1, #255", func() {
			Expect(decoder.Decode(0xE20100FF)).To(Equal(insts.AND{Rd: 0, Rn: 1, Imm: 0xFF}))
		})

		It("should decode OR R2, R2, #1", func() {
			Expect(decoder.Decode(0xE3822001)).To(Equal(insts.OR{Rd: 2, Rn: 2, Imm: 1}))
		})

		It("should decode XOR R4, R4, #240", func() {
			Expect(decoder.Decode(0xE22440F0)).To(Equal(insts.XOR{Rd: 4, Rn: 4, Imm: 0xF0}))
		})

		It("should decode MUL R7, R1, #3", func() {
			Expect(decoder.Decode(0xE2C17003)).To(Equal(insts.MUL{Rd: 7, Rn: 1, Imm: 3}))
		})

		It("should decode MVN R0, #0", func() {
			Expect(decoder.Decode(0xE3E00000)).To(Equal(insts.MVN{Rd: 0, Imm: 0}))
		})

		It("should decode TST R1, #4", func() {
			Expect(decoder.Decode(0xE3010004)).To(Equal(insts.TST{Rn: 1, Imm: 4}))
		})

		It("should decode all ones as MVN R15, #255", func() {
			Expect(decoder.Decode(0xFFFFFFFF)).To(Equal(insts.MVN{Rd: 15, Imm: 0xFF}))
		})

		DescribeTable("opcodes with no mnemonic",
			func(word uint32) {
				Expect(decoder.Decode(word)).To(Equal(insts.Unknown{}))
			},
			Entry("0101", uint32(0xE2A00000)),
			Entry("0111", uint32(0xE2E00000)),
			Entry("1001", uint32(0xE3200000)),
			Entry("1011", uint32(0xE3600000)),
			Entry("1110", uint32(0xE3C00000)),
		)
	})

	Describe("Shift (Immediate)", func() {
		// LSL R2, R1, #3 -> shift_amount=3 in [11:7], shift_type=00
		It("should decode LSL R2, R1, #3", func() {
			Expect(decoder.Decode(0xE2612180)).To(Equal(insts.LSL{Rd: 2, Rn: 1, Shift: 3}))
		})

		It("should decode LSR R2, R1, #4", func() {
			Expect(decoder.Decode(0xE2612220)).To(Equal(insts.LSR{Rd: 2, Rn: 1, Shift: 4}))
		})

		It("should decode the maximum shift amount", func() {
			Expect(decoder.Decode(0xE2612F80)).To(Equal(insts.LSL{Rd: 2, Rn: 1, Shift: 31}))
		})

		It("should treat shift type 10 as unknown", func() {
			Expect(decoder.Decode(0xE2612240)).To(Equal(insts.Unknown{}))
		})

		It("should treat shift type 11 as unknown", func() {
			Expect(decoder.Decode(0xE2612260)).To(Equal(insts.Unknown{}))
		})
	})

	Describe("Load/Store", func() {
		// STR R2, [R1, #4] -> 0xE5812004
		It("should decode STR R2, [R1, #4]", func() {
			inst := decoder.Decode(0xE5812004)

			Expect(inst).To(Equal(insts.STR{Rd: 2, Rn: 1, Offset: 4}))
			Expect(inst.String()).To(Equal("STR R2, [R1, #4]"))
		})

		// LDR R3, [R1, #4] -> 0xE5913004
		It("should decode LDR R3, [R1, #4]", func() {
			Expect(decoder.Decode(0xE5913004)).To(Equal(insts.LDR{Rd: 3, Rn: 1, Offset: 4}))
		})

		It("should ignore the U bit and keep the offset unsigned", func() {
			Expect(decoder.Decode(0xE5113004)).To(Equal(insts.LDR{Rd: 3, Rn: 1, Offset: 4}))
		})

		It("should decode the full 12-bit offset", func() {
			Expect(decoder.Decode(0xE5913FFF)).To(Equal(insts.LDR{Rd: 3, Rn: 1, Offset: 0xFFF}))
		})

		It("should let the immediate group claim words with bit 25 set", func() {
			// bits [27:26] == 01 but I == 1: opcode 1100 wins
			Expect(decoder.Decode(0xE7913004)).To(Equal(insts.OR{Rd: 3, Rn: 1, Imm: 4}))
		})
	})

	Describe("Branch", func() {
		It("should decode an ARM-style B word through the immediate group", func() {
			// [27:24] == 1010 implies bit 25 == 1, opcode 0000 -> AND
			Expect(decoder.Decode(0xEA000001)).To(Equal(insts.AND{Rd: 0, Rn: 0, Imm: 1}))
		})

		It("should decode an ARM-style BL word through the immediate group", func() {
			// [27:24] == 1011, opcode 1000 -> TST
			Expect(decoder.Decode(0xEB000002)).To(Equal(insts.TST{Rn: 0, Imm: 2}))
		})

		It("should never produce B or BL", func() {
			for hi := uint32(0); hi < 0x10; hi++ {
				for _, class := range []uint32{0xA, 0xB} {
					for low := uint32(0); low < 0x1000000; low += 0x10101 {
						word := hi<<28 | class<<24 | low
						op := decoder.Decode(word).Op()
						Expect(op).NotTo(Equal(insts.OpB))
						Expect(op).NotTo(Equal(insts.OpBL))
					}
				}
			}
		})
	})

	Describe("Unknown", func() {
		DescribeTable("words outside every class",
			func(word uint32) {
				inst := decoder.Decode(word)
				Expect(inst).To(Equal(insts.Unknown{}))
				Expect(inst.String()).To(Equal("UNKNOWN"))
			},
			Entry("zero word", uint32(0x00000000)),
			Entry("register data processing", uint32(0xE1A00000)),
			Entry("block transfer class", uint32(0xE8000000)),
			Entry("coprocessor class", uint32(0xEC000000)),
		)
	})

	It("should be deterministic", func() {
		words := []uint32{0xE3A01004, 0xE5913004, 0x00000000, 0xE2612180}
		for _, w := range words {
			Expect(decoder.Decode(w)).To(Equal(decoder.Decode(w)))
			Expect(insts.NewDecoder().Decode(w)).To(Equal(decoder.Decode(w)))
		}
	})
})
