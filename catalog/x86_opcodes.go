package catalog

// ================================================================================================
// X86 Instruction Constants
// ================================================================================================

// Prefixes
const (
	X86_PREFIX_66    = 0x66 // Operand-size override prefix
	X86_PREFIX_0F    = 0x0F // Two-byte opcode escape
	X86_REX_BASE     = 0x40 // Base value for REX prefix
	X86_REX_W        = 0x08 // REX.W - 64-bit operand size
	X86_REX_W_PREFIX = X86_REX_BASE | X86_REX_W
)

// Primary Opcodes
const (
	X86_OP_ADD_R8_RM8      = 0x02 // ADD r8, r/m8
	X86_OP_ADD_R_RM        = 0x03 // ADD r, r/m
	X86_OP_OR_R8_RM8       = 0x0A // OR r8, r/m8
	X86_OP_OR_R_RM         = 0x0B // OR r, r/m
	X86_OP_AND_R8_RM8      = 0x22 // AND r8, r/m8
	X86_OP_AND_R_RM        = 0x23 // AND r, r/m
	X86_OP_SUB_R8_RM8      = 0x2A // SUB r8, r/m8
	X86_OP_SUB_R_RM        = 0x2B // SUB r, r/m
	X86_OP_XOR_R8_RM8      = 0x32 // XOR r8, r/m8
	X86_OP_XOR_R_RM        = 0x33 // XOR r, r/m
	X86_OP_CMP_R8_RM8      = 0x3A // CMP r8, r/m8
	X86_OP_CMP_R_RM        = 0x3B // CMP r, r/m
	X86_OP_PUSH_R          = 0x50 // PUSH r (+ reg)
	X86_OP_POP_R           = 0x58 // POP r (+ reg)
	X86_OP_PUSHAD          = 0x60 // PUSHA/PUSHAD (legacy only)
	X86_OP_POPAD           = 0x61 // POPA/POPAD (legacy only)
	X86_OP_MOVSXD          = 0x63 // MOVSXD r64, r/m32
	X86_OP_PUSH_IMM32      = 0x68 // PUSH imm16/imm32
	X86_OP_PUSH_IMM8       = 0x6A // PUSH imm8
	X86_OP_GROUP1_RM8_IMM8 = 0x80 // Group 1 operations on r/m8 with imm8
	X86_OP_GROUP1_RM_IMM32 = 0x81 // Group 1 operations with imm16/imm32
	X86_OP_GROUP1_RM_IMM8  = 0x83 // Group 1 operations with sign-extended imm8
	X86_OP_TEST_RM8_R8     = 0x84 // TEST r/m8, r8
	X86_OP_TEST_RM_R       = 0x85 // TEST r/m, r
	X86_OP_MOV_R8_RM8      = 0x8A // MOV r8, r/m8
	X86_OP_MOV_R_RM        = 0x8B // MOV r, r/m
	X86_OP_MOV_R8_IMM8     = 0xB0 // MOV r8, imm8 (+ reg)
	X86_OP_MOV_R_IMM       = 0xB8 // MOV r, imm (+ reg)
	X86_OP_GROUP2_RM_IMM8  = 0xC1 // Group 2 shift operations with imm8
	X86_OP_RET_IMM16       = 0xC2 // RET imm16
	X86_OP_INT             = 0xCD // INT imm8
	X86_OP_CALL_REL32      = 0xE8 // CALL rel32
	X86_OP_JMP_REL32       = 0xE9 // JMP rel32
	X86_OP_JMP_REL8        = 0xEB // JMP rel8
	X86_OP_GROUP3_RM8      = 0xF6 // Group 3 unary operations on r/m8
	X86_OP_GROUP3_RM       = 0xF7 // Group 3 unary operations
	X86_OP_GROUP4_RM8      = 0xFE // Group 4 operations on r/m8 (INC, DEC)
	X86_OP_GROUP5_RM       = 0xFF // Group 5 operations (INC, DEC, CALL, JMP, PUSH)
)

// Two-byte Opcodes (0x0F prefix)
const (
	X86_OP2_SYSCALL      = 0x05 // SYSCALL
	X86_OP2_UD2          = 0x0B // UD2
	X86_OP2_IMUL_R_RM    = 0xAF // IMUL r, r/m
	X86_OP2_MOVZX_R_RM8  = 0xB6 // MOVZX r, r/m8
	X86_OP2_MOVZX_R_RM16 = 0xB7 // MOVZX r, r/m16
	X86_OP2_BSWAP        = 0xC8 // BSWAP r32/r64 (+ reg)
)

// ModRM reg field constants for opcodes with sub-operations
const (
	X86_REG_ADD = 0 // ADD (for 0x80/0x81/0x83 opcode)
	X86_REG_OR  = 1 // OR  (for 0x80/0x81/0x83 opcode)
	X86_REG_AND = 4 // AND (for 0x80/0x81/0x83 opcode)
	X86_REG_SUB = 5 // SUB (for 0x80/0x81/0x83 opcode)
	X86_REG_XOR = 6 // XOR (for 0x80/0x81/0x83 opcode)
	X86_REG_CMP = 7 // CMP (for 0x80/0x81/0x83 opcode)
)

// Unary operation reg field constants (for 0xF6/0xF7 opcode)
const (
	X86_REG_NOT = 2 // NOT
	X86_REG_NEG = 3 // NEG
	X86_REG_MUL = 4 // MUL
	X86_REG_DIV = 6 // DIV
)

// Shift operation reg field constants (for 0xC1 opcode)
const (
	X86_REG_ROL = 0 // ROL
	X86_REG_ROR = 1 // ROR
	X86_REG_SHL = 4 // SHL/SAL
	X86_REG_SHR = 5 // SHR
	X86_REG_SAR = 7 // SAR
)

// Group 5 reg field constants (for 0xFF opcode)
const (
	X86_REG_INC     = 0 // INC r/m
	X86_REG_DEC     = 1 // DEC r/m
	X86_REG_CALL_RM = 2 // CALL r/m
	X86_REG_JMP_RM  = 4 // JMP r/m
)

// Single-byte instructions
const (
	X86_INST_NOP   = 0x90 // NOP
	X86_INST_CDQ   = 0x99 // CDQ, CQO with REX.W
	X86_INST_RET   = 0xC3 // RET
	X86_INST_LEAVE = 0xC9 // LEAVE
	X86_INST_INT3  = 0xCC // INT3
	X86_INST_INTO  = 0xCE // INTO (legacy only)
)
