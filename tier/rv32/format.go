// Package rv32 encodes RV32I and RV32M instruction words.
//
// The base encoders are generated from the catalog package. Immediates are
// passed as raw bit patterns: each encoder masks its immediate to the format
// width, so a negative offset is written as its two's complement
// (uint16(int16(-8)) for a branch, for example).
package rv32

// Field packers, one per instruction word layout. Every field is masked to
// its width before it is shifted into place.

func encodeR(funct7, funct3, opcode uint32, rd, rs1, rs2 uint8) uint32 {
	return (funct7&0x7F)<<25 | reg(rs2)<<20 | reg(rs1)<<15 | (funct3&0x7)<<12 | reg(rd)<<7 | opcode&0x7F
}

// encodeI packs imm[11:0] into bits 31:20.
func encodeI(funct3, opcode uint32, rd, rs1 uint8, imm uint16) uint32 {
	return (uint32(imm)&0xFFF)<<20 | reg(rs1)<<15 | (funct3&0x7)<<12 | reg(rd)<<7 | opcode&0x7F
}

// encodeIShift is the I layout of the immediate shifts: funct7 occupies
// imm[11:5] and the 5-bit shift amount imm[4:0].
func encodeIShift(funct7, funct3, opcode uint32, rd, rs1, shamt uint8) uint32 {
	return (funct7&0x7F)<<25 | (uint32(shamt)&0x1F)<<20 | reg(rs1)<<15 | (funct3&0x7)<<12 | reg(rd)<<7 | opcode&0x7F
}

// encodeS splits imm[11:5] into bits 31:25 and imm[4:0] into bits 11:7.
func encodeS(funct3, opcode uint32, rs1, rs2 uint8, imm uint16) uint32 {
	i := uint32(imm)
	return (i>>5&0x7F)<<25 | reg(rs2)<<20 | reg(rs1)<<15 | (funct3&0x7)<<12 | (i&0x1F)<<7 | opcode&0x7F
}

// encodeB scatters a 13-bit even offset as imm[12|10:5] in bits 31:25 and
// imm[4:1|11] in bits 11:7.
func encodeB(funct3, opcode uint32, rs1, rs2 uint8, imm uint16) uint32 {
	i := uint32(imm)
	return (i>>12&0x1)<<31 | (i>>5&0x3F)<<25 | reg(rs2)<<20 | reg(rs1)<<15 | (funct3&0x7)<<12 |
		(i>>1&0xF)<<8 | (i>>11&0x1)<<7 | opcode&0x7F
}

// encodeU places a 20-bit upper immediate in bits 31:12.
func encodeU(opcode uint32, rd uint8, imm uint32) uint32 {
	return (imm&0xFFFFF)<<12 | reg(rd)<<7 | opcode&0x7F
}

// encodeJ scatters a 21-bit even offset as imm[20|10:1|11|19:12].
func encodeJ(opcode uint32, rd uint8, imm uint32) uint32 {
	return (imm>>20&0x1)<<31 | (imm>>1&0x3FF)<<21 | (imm>>11&0x1)<<20 | (imm>>12&0xFF)<<12 |
		reg(rd)<<7 | opcode&0x7F
}

func reg(r uint8) uint32 {
	return uint32(r) & 0x1F
}
