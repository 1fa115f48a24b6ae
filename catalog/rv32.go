package catalog

// RVFormat is a RISC-V instruction word layout.
type RVFormat uint8

const (
	FormatR RVFormat = iota
	FormatI
	FormatIShift // I-type with funct7 in imm[11:5] and a 5-bit shift amount
	FormatS
	FormatB
	FormatU
	FormatJ
)

func (f RVFormat) String() string {
	switch f {
	case FormatR:
		return "R"
	case FormatI, FormatIShift:
		return "I"
	case FormatS:
		return "S"
	case FormatB:
		return "B"
	case FormatU:
		return "U"
	case FormatJ:
		return "J"
	}
	return "?"
}

// RVDescriptor is one row of the RV32 table. Funct3 and Funct7 are ignored by
// formats that do not carry them.
type RVDescriptor struct {
	Name   string
	Format RVFormat
	Funct3 uint8
	Funct7 uint8
	Opcode uint8
}

// RVOperands feeds RVDescriptor.Encode. Imm is the raw immediate: the 12-bit
// value for I/S, the shift amount for shifts, the byte offset for B/J and the
// 20-bit upper value for U.
type RVOperands struct {
	Rd  uint8
	Rs1 uint8
	Rs2 uint8
	Imm uint32
}

// GoName is the exported Go identifier generated for the descriptor.
func (d RVDescriptor) GoName() string {
	return exportName(d.Name)
}

// Syntax is the operand list of the generated function.
func (d RVDescriptor) Syntax() string {
	switch d.Format {
	case FormatR:
		return "rd, rs1, rs2"
	case FormatI:
		return "rd, rs1, imm"
	case FormatIShift:
		return "rd, rs1, shamt"
	case FormatS:
		return "rs1, rs2, imm"
	case FormatB:
		return "rs1, rs2, offset"
	case FormatU:
		return "rd, imm"
	case FormatJ:
		return "rd, offset"
	}
	return ""
}

// Encode is the reference model for the generated RV32 encoders.
func (d RVDescriptor) Encode(o RVOperands) uint32 {
	op := uint32(d.Opcode) & 0x7F
	f3 := uint32(d.Funct3) & 0x7 << 12
	f7 := uint32(d.Funct7) & 0x7F << 25
	rd := uint32(o.Rd) & 0x1F << 7
	rs1 := uint32(o.Rs1) & 0x1F << 15
	rs2 := uint32(o.Rs2) & 0x1F << 20
	imm := o.Imm
	switch d.Format {
	case FormatR:
		return f7 | rs2 | rs1 | f3 | rd | op
	case FormatI:
		return (imm&0xFFF)<<20 | rs1 | f3 | rd | op
	case FormatIShift:
		return f7 | (imm&0x1F)<<20 | rs1 | f3 | rd | op
	case FormatS:
		return (imm>>5&0x7F)<<25 | rs2 | rs1 | f3 | (imm&0x1F)<<7 | op
	case FormatB:
		return (imm>>12&1)<<31 | (imm>>5&0x3F)<<25 | rs2 | rs1 | f3 |
			(imm>>1&0xF)<<8 | (imm>>11&1)<<7 | op
	case FormatU:
		return (imm&0xFFFFF)<<12 | rd | op
	case FormatJ:
		return (imm>>20&1)<<31 | (imm>>1&0x3FF)<<21 | (imm>>11&1)<<20 |
			(imm>>12&0xFF)<<12 | rd | op
	}
	return 0
}

// Major opcodes.
const (
	RV_OPCODE_LOAD   = 0b0000011
	RV_OPCODE_OP_IMM = 0b0010011
	RV_OPCODE_AUIPC  = 0b0010111
	RV_OPCODE_STORE  = 0b0100011
	RV_OPCODE_OP     = 0b0110011
	RV_OPCODE_LUI    = 0b0110111
	RV_OPCODE_BRANCH = 0b1100011
	RV_OPCODE_JALR   = 0b1100111
	RV_OPCODE_JAL    = 0b1101111
)

const (
	rvFunct7Base = 0b0000000
	rvFunct7Alt  = 0b0100000 // SUB, SRA, SRAI
	rvFunct7Mul  = 0b0000001 // RV32M
)

var rv32Table = []RVDescriptor{
	{"add", FormatR, 0b000, rvFunct7Base, RV_OPCODE_OP},
	{"sub", FormatR, 0b000, rvFunct7Alt, RV_OPCODE_OP},
	{"sll", FormatR, 0b001, rvFunct7Base, RV_OPCODE_OP},
	{"slt", FormatR, 0b010, rvFunct7Base, RV_OPCODE_OP},
	{"sltu", FormatR, 0b011, rvFunct7Base, RV_OPCODE_OP},
	{"xor", FormatR, 0b100, rvFunct7Base, RV_OPCODE_OP},
	{"srl", FormatR, 0b101, rvFunct7Base, RV_OPCODE_OP},
	{"sra", FormatR, 0b101, rvFunct7Alt, RV_OPCODE_OP},
	{"or", FormatR, 0b110, rvFunct7Base, RV_OPCODE_OP},
	{"and", FormatR, 0b111, rvFunct7Base, RV_OPCODE_OP},

	{"mul", FormatR, 0b000, rvFunct7Mul, RV_OPCODE_OP},
	{"mulh", FormatR, 0b001, rvFunct7Mul, RV_OPCODE_OP},
	{"mulhsu", FormatR, 0b010, rvFunct7Mul, RV_OPCODE_OP},
	{"mulhu", FormatR, 0b011, rvFunct7Mul, RV_OPCODE_OP},
	{"div", FormatR, 0b100, rvFunct7Mul, RV_OPCODE_OP},
	{"divu", FormatR, 0b101, rvFunct7Mul, RV_OPCODE_OP},
	{"rem", FormatR, 0b110, rvFunct7Mul, RV_OPCODE_OP},
	{"remu", FormatR, 0b111, rvFunct7Mul, RV_OPCODE_OP},

	{"lb", FormatI, 0b000, 0, RV_OPCODE_LOAD},
	{"lh", FormatI, 0b001, 0, RV_OPCODE_LOAD},
	{"lw", FormatI, 0b010, 0, RV_OPCODE_LOAD},
	{"lbu", FormatI, 0b100, 0, RV_OPCODE_LOAD},
	{"lhu", FormatI, 0b101, 0, RV_OPCODE_LOAD},
	{"addi", FormatI, 0b000, 0, RV_OPCODE_OP_IMM},
	{"slti", FormatI, 0b010, 0, RV_OPCODE_OP_IMM},
	{"sltiu", FormatI, 0b011, 0, RV_OPCODE_OP_IMM},
	{"xori", FormatI, 0b100, 0, RV_OPCODE_OP_IMM},
	{"ori", FormatI, 0b110, 0, RV_OPCODE_OP_IMM},
	{"andi", FormatI, 0b111, 0, RV_OPCODE_OP_IMM},
	{"jalr", FormatI, 0b000, 0, RV_OPCODE_JALR},

	{"slli", FormatIShift, 0b001, rvFunct7Base, RV_OPCODE_OP_IMM},
	{"srli", FormatIShift, 0b101, rvFunct7Base, RV_OPCODE_OP_IMM},
	{"srai", FormatIShift, 0b101, rvFunct7Alt, RV_OPCODE_OP_IMM},

	{"sb", FormatS, 0b000, 0, RV_OPCODE_STORE},
	{"sh", FormatS, 0b001, 0, RV_OPCODE_STORE},
	{"sw", FormatS, 0b010, 0, RV_OPCODE_STORE},

	{"beq", FormatB, 0b000, 0, RV_OPCODE_BRANCH},
	{"bne", FormatB, 0b001, 0, RV_OPCODE_BRANCH},
	{"blt", FormatB, 0b100, 0, RV_OPCODE_BRANCH},
	{"bge", FormatB, 0b101, 0, RV_OPCODE_BRANCH},
	{"bltu", FormatB, 0b110, 0, RV_OPCODE_BRANCH},
	{"bgeu", FormatB, 0b111, 0, RV_OPCODE_BRANCH},

	{"lui", FormatU, 0, 0, RV_OPCODE_LUI},
	{"auipc", FormatU, 0, 0, RV_OPCODE_AUIPC},

	{"jal", FormatJ, 0, 0, RV_OPCODE_JAL},
}

// RV32Table returns a copy of the RV32I and RV32M descriptors in generation
// order.
func RV32Table() []RVDescriptor {
	return append([]RVDescriptor(nil), rv32Table...)
}
