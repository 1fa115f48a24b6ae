package rv32

import "encoding/binary"

// Nop is addi zero, zero, 0.
func Nop() uint32 { return Addi(Zero, Zero, 0) }

// Li loads a 12-bit sign-extended immediate: addi rd, zero, imm.
func Li(rd uint8, imm uint16) uint32 { return Addi(rd, Zero, imm) }

// Li32 loads an arbitrary 32-bit constant with lui+addi. The upper part is
// rounded so that the sign-extended low 12 bits land on imm.
func Li32(rd uint8, imm uint32) [2]uint32 {
	hi := (imm + 0x800) >> 12
	return [2]uint32{
		Lui(rd, hi),
		Addi(rd, rd, uint16(imm&0xFFF)),
	}
}

// Li64 loads a 64-bit constant through rd using lui, addi and slli only:
//
//	lui  rd, hi
//	addi rd, rd, s0
//	slli rd, rd, 12
//	addi rd, rd, s1
//	slli rd, rd, 12
//	addi rd, rd, s2
//	slli rd, rd, 8
//	addi rd, rd, c0
//
// On an RV64 hart rd ends up holding imm. On RV32 the shifts discard the
// high word and rd holds the low 32 bits of imm.
func Li64(rd uint8, imm uint64) [8]uint32 {
	c0 := int64(imm & 0xFF)
	x3 := int64(imm >> 8)
	s2 := sext12(x3)
	x2 := (x3 - s2) >> 12
	s1 := sext12(x2)
	x1 := (x2 - s1) >> 12
	s0 := sext12(x1)
	hi := uint32((x1-s0)>>12) & 0xFFFFF
	return [8]uint32{
		Lui(rd, hi),
		Addi(rd, rd, uint16(s0)),
		Slli(rd, rd, 12),
		Addi(rd, rd, uint16(s1)),
		Slli(rd, rd, 12),
		Addi(rd, rd, uint16(s2)),
		Slli(rd, rd, 8),
		Addi(rd, rd, uint16(c0)),
	}
}

func sext12(v int64) int64 {
	v &= 0xFFF
	if v&0x800 != 0 {
		v -= 0x1000
	}
	return v
}

// La loads the address pc+off with auipc+addi.
func La(rd uint8, off uint32) [2]uint32 {
	return [2]uint32{
		Auipc(rd, (off+0x800)>>12),
		Addi(rd, rd, uint16(off&0xFFF)),
	}
}

func Mv(rd, rs uint8) uint32   { return Addi(rd, rs, 0) }
func Not(rd, rs uint8) uint32  { return Xori(rd, rs, 0xFFF) }
func Neg(rd, rs uint8) uint32  { return Sub(rd, Zero, rs) }
func Seqz(rd, rs uint8) uint32 { return Sltiu(rd, rs, 1) }
func Snez(rd, rs uint8) uint32 { return Sltu(rd, Zero, rs) }
func Sltz(rd, rs uint8) uint32 { return Slt(rd, rs, Zero) }
func Sgtz(rd, rs uint8) uint32 { return Slt(rd, Zero, rs) }

// Branch aliases. off is the byte offset from the branch.

func Beqz(rs uint8, off uint16) uint32     { return Beq(rs, Zero, off) }
func Bnez(rs uint8, off uint16) uint32     { return Bne(rs, Zero, off) }
func Bltz(rs uint8, off uint16) uint32     { return Blt(rs, Zero, off) }
func Bgez(rs uint8, off uint16) uint32     { return Bge(rs, Zero, off) }
func Blez(rs uint8, off uint16) uint32     { return Bge(Zero, rs, off) }
func Bgtz(rs uint8, off uint16) uint32     { return Blt(Zero, rs, off) }
func Bgt(rs, rt uint8, off uint16) uint32  { return Blt(rt, rs, off) }
func Ble(rs, rt uint8, off uint16) uint32  { return Bge(rt, rs, off) }
func Bgtu(rs, rt uint8, off uint16) uint32 { return Bltu(rt, rs, off) }
func Bleu(rs, rt uint8, off uint16) uint32 { return Bgeu(rt, rs, off) }

// J jumps by off without linking.
func J(off uint32) uint32 { return Jal(Zero, off) }

// Jr jumps to the address in rs.
func Jr(rs uint8) uint32 { return Jalr(Zero, rs, 0) }

// Ret returns through the link register: jalr zero, ra, 0.
func Ret() uint32 { return Jalr(Zero, RA, 0) }

const opcodeSystem = 0b1110011

func Ecall() uint32  { return encodeI(0b000, opcodeSystem, Zero, Zero, 0) }
func Ebreak() uint32 { return encodeI(0b000, opcodeSystem, Zero, Zero, 1) }

// Bytes serializes instruction words in little-endian order, ready to be
// copied into executable memory.
func Bytes(words ...uint32) []byte {
	out := make([]byte, 0, 4*len(words))
	for _, w := range words {
		out = binary.LittleEndian.AppendUint32(out, w)
	}
	return out
}
