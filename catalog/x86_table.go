package catalog

const both = TierX86 | TierAMD64

var (
	noPrefix = Seq{}
	p66      = seq(X86_PREFIX_66)
	rexW     = seq(X86_REX_W_PREFIX)
)

func op1(b byte) Seq { return seq(b) }
func op2(b byte) Seq { return seq(X86_PREFIX_0F, b) }

func zeroOp(op string, t Tier, prefix, opcode Seq) Descriptor {
	return Descriptor{Op: op, Shape: ZO, Prefix: prefix, Opcode: opcode, Tiers: t}
}

func opImm(op string, t Tier, prefix, opcode Seq, dst, src Size) Descriptor {
	return Descriptor{Op: op, Shape: OI, Prefix: prefix, Opcode: opcode, Dst: dst, Src: src, Tiers: t}
}

func modImm(op string, t Tier, prefix, opcode Seq, code uint8, dst, src Size) Descriptor {
	return Descriptor{Op: op, Shape: MI, Prefix: prefix, Opcode: opcode, Code: code, Dst: dst, Src: src, Tiers: t}
}

func regReg(op string, t Tier, prefix, opcode Seq, dst, src Size) Descriptor {
	return Descriptor{Op: op, Shape: RM, Prefix: prefix, Opcode: opcode, Dst: dst, Src: src, Tiers: t}
}

func modReg(op string, t Tier, prefix, opcode Seq, code uint8, dst Size) Descriptor {
	return Descriptor{Op: op, Shape: M, Prefix: prefix, Opcode: opcode, Code: code, Dst: dst, Tiers: t}
}

func immOnly(op string, t Tier, prefix, opcode Seq, src Size) Descriptor {
	return Descriptor{Op: op, Shape: I, Prefix: prefix, Opcode: opcode, Src: src, Tiers: t}
}

func relOnly(op string, t Tier, opcode Seq, src Size) Descriptor {
	return Descriptor{Op: op, Shape: D, Opcode: opcode, Src: src, Tiers: t}
}

func opReg(op string, t Tier, prefix, opcode Seq, dst Size) Descriptor {
	return Descriptor{Op: op, Shape: O, Prefix: prefix, Opcode: opcode, Dst: dst, Tiers: t}
}

// aluOp is a group 1 binary operation: its ModRM sub-op and the "r, r/m"
// opcodes used for the register-register forms.
type aluOp struct {
	name   string
	code   uint8
	rm8    byte
	rmFull byte
}

var aluOps = []aluOp{
	{"add", X86_REG_ADD, X86_OP_ADD_R8_RM8, X86_OP_ADD_R_RM},
	{"sub", X86_REG_SUB, X86_OP_SUB_R8_RM8, X86_OP_SUB_R_RM},
	{"and", X86_REG_AND, X86_OP_AND_R8_RM8, X86_OP_AND_R_RM},
	{"or", X86_REG_OR, X86_OP_OR_R8_RM8, X86_OP_OR_R_RM},
	{"xor", X86_REG_XOR, X86_OP_XOR_R8_RM8, X86_OP_XOR_R_RM},
	{"cmp", X86_REG_CMP, X86_OP_CMP_R8_RM8, X86_OP_CMP_R_RM},
}

type subOp struct {
	name string
	code uint8
}

var unaryOps = []subOp{
	{"not", X86_REG_NOT},
	{"neg", X86_REG_NEG},
	{"mul", X86_REG_MUL},
	{"div", X86_REG_DIV},
}

var incDecOps = []subOp{
	{"inc", X86_REG_INC},
	{"dec", X86_REG_DEC},
}

var shiftOps = []subOp{
	{"shl", X86_REG_SHL},
	{"shr", X86_REG_SHR},
	{"sar", X86_REG_SAR},
	{"rol", X86_REG_ROL},
	{"ror", X86_REG_ROR},
}

var x86Table = buildX86Table()

// X86Table returns a copy of every x86 descriptor, shared and tier-specific,
// in generation order.
func X86Table() []Descriptor {
	return append([]Descriptor(nil), x86Table...)
}

func buildX86Table() []Descriptor {
	t := []Descriptor{
		zeroOp("nop", both, noPrefix, op1(X86_INST_NOP)),
		zeroOp("ret", both, noPrefix, op1(X86_INST_RET)),
		zeroOp("leave", both, noPrefix, op1(X86_INST_LEAVE)),
		zeroOp("int3", both, noPrefix, op1(X86_INST_INT3)),
		zeroOp("cdq", both, noPrefix, op1(X86_INST_CDQ)),
		zeroOp("ud2", both, noPrefix, op2(X86_OP2_UD2)),

		immOnly("push", both, noPrefix, op1(X86_OP_PUSH_IMM8), S8),
		immOnly("push", both, p66, op1(X86_OP_PUSH_IMM32), S16),
		immOnly("push", both, noPrefix, op1(X86_OP_PUSH_IMM32), S32),
		immOnly("int", both, noPrefix, op1(X86_OP_INT), S8),
		immOnly("ret", both, noPrefix, op1(X86_OP_RET_IMM16), S16),

		relOnly("call", both, op1(X86_OP_CALL_REL32), S32),
		relOnly("jmp", both, op1(X86_OP_JMP_REL32), S32),
		relOnly("jmp", both, op1(X86_OP_JMP_REL8), S8),

		opReg("push", both, p66, op1(X86_OP_PUSH_R), S16),
		opReg("pop", both, p66, op1(X86_OP_POP_R), S16),
		opReg("bswap", both, noPrefix, op2(X86_OP2_BSWAP), S32),

		opImm("mov", both, noPrefix, op1(X86_OP_MOV_R8_IMM8), S8, S8),
		opImm("mov", both, p66, op1(X86_OP_MOV_R_IMM), S16, S16),
		opImm("mov", both, noPrefix, op1(X86_OP_MOV_R_IMM), S32, S32),
	}

	for _, u := range unaryOps {
		t = append(t,
			modReg(u.name, both, noPrefix, op1(X86_OP_GROUP3_RM8), u.code, S8),
			modReg(u.name, both, p66, op1(X86_OP_GROUP3_RM), u.code, S16),
			modReg(u.name, both, noPrefix, op1(X86_OP_GROUP3_RM), u.code, S32),
		)
	}
	for _, u := range incDecOps {
		t = append(t,
			modReg(u.name, both, noPrefix, op1(X86_OP_GROUP4_RM8), u.code, S8),
			modReg(u.name, both, p66, op1(X86_OP_GROUP5_RM), u.code, S16),
			modReg(u.name, both, noPrefix, op1(X86_OP_GROUP5_RM), u.code, S32),
		)
	}

	for _, a := range aluOps {
		t = append(t,
			regReg(a.name, both, noPrefix, op1(a.rm8), S8, S8),
			regReg(a.name, both, p66, op1(a.rmFull), S16, S16),
			regReg(a.name, both, noPrefix, op1(a.rmFull), S32, S32),
		)
	}
	t = append(t,
		regReg("mov", both, noPrefix, op1(X86_OP_MOV_R8_RM8), S8, S8),
		regReg("mov", both, p66, op1(X86_OP_MOV_R_RM), S16, S16),
		regReg("mov", both, noPrefix, op1(X86_OP_MOV_R_RM), S32, S32),
		regReg("test", both, noPrefix, op1(X86_OP_TEST_RM8_R8), S8, S8),
		regReg("test", both, p66, op1(X86_OP_TEST_RM_R), S16, S16),
		regReg("test", both, noPrefix, op1(X86_OP_TEST_RM_R), S32, S32),
		regReg("imul", both, p66, op2(X86_OP2_IMUL_R_RM), S16, S16),
		regReg("imul", both, noPrefix, op2(X86_OP2_IMUL_R_RM), S32, S32),
		regReg("movzx", both, noPrefix, op2(X86_OP2_MOVZX_R_RM8), S32, S8),
		regReg("movzx", both, noPrefix, op2(X86_OP2_MOVZX_R_RM16), S32, S16),
	)

	for _, a := range aluOps {
		t = append(t,
			modImm(a.name, both, noPrefix, op1(X86_OP_GROUP1_RM8_IMM8), a.code, S8, S8),
			modImm(a.name, both, p66, op1(X86_OP_GROUP1_RM_IMM32), a.code, S16, S16),
			modImm(a.name, both, noPrefix, op1(X86_OP_GROUP1_RM_IMM32), a.code, S32, S32),
			modImm(a.name, both, noPrefix, op1(X86_OP_GROUP1_RM_IMM8), a.code, S32, S8),
		)
	}
	for _, s := range shiftOps {
		t = append(t, modImm(s.name, both, noPrefix, op1(X86_OP_GROUP2_RM_IMM8), s.code, S32, S8))
	}

	// Legacy 32-bit forms. Their opcodes are either invalid in long mode or
	// mean a 64-bit operation there.
	t = append(t,
		zeroOp("into", TierX86, noPrefix, op1(X86_INST_INTO)),
		zeroOp("pusha", TierX86, noPrefix, op1(X86_OP_PUSHAD)),
		zeroOp("popa", TierX86, noPrefix, op1(X86_OP_POPAD)),
		opReg("push", TierX86, noPrefix, op1(X86_OP_PUSH_R), S32),
		opReg("pop", TierX86, noPrefix, op1(X86_OP_POP_R), S32),
		modReg("call", TierX86, noPrefix, op1(X86_OP_GROUP5_RM), X86_REG_CALL_RM, S32),
		modReg("jmp", TierX86, noPrefix, op1(X86_OP_GROUP5_RM), X86_REG_JMP_RM, S32),
	)

	// Long mode forms.
	t = append(t,
		zeroOp("syscall", TierAMD64, noPrefix, op2(X86_OP2_SYSCALL)),
		zeroOp("cqo", TierAMD64, rexW, op1(X86_INST_CDQ)),
		opReg("push", TierAMD64, noPrefix, op1(X86_OP_PUSH_R), S64),
		opReg("pop", TierAMD64, noPrefix, op1(X86_OP_POP_R), S64),
		opReg("bswap", TierAMD64, rexW, op2(X86_OP2_BSWAP), S64),
		opImm("mov", TierAMD64, rexW, op1(X86_OP_MOV_R_IMM), S64, S64),
		modReg("call", TierAMD64, noPrefix, op1(X86_OP_GROUP5_RM), X86_REG_CALL_RM, S64),
		modReg("jmp", TierAMD64, noPrefix, op1(X86_OP_GROUP5_RM), X86_REG_JMP_RM, S64),
	)
	for _, u := range unaryOps {
		t = append(t, modReg(u.name, TierAMD64, rexW, op1(X86_OP_GROUP3_RM), u.code, S64))
	}
	for _, u := range incDecOps {
		t = append(t, modReg(u.name, TierAMD64, rexW, op1(X86_OP_GROUP5_RM), u.code, S64))
	}
	for _, a := range aluOps {
		t = append(t, regReg(a.name, TierAMD64, rexW, op1(a.rmFull), S64, S64))
	}
	t = append(t,
		regReg("mov", TierAMD64, rexW, op1(X86_OP_MOV_R_RM), S64, S64),
		regReg("test", TierAMD64, rexW, op1(X86_OP_TEST_RM_R), S64, S64),
		regReg("imul", TierAMD64, rexW, op2(X86_OP2_IMUL_R_RM), S64, S64),
		regReg("movsxd", TierAMD64, rexW, op1(X86_OP_MOVSXD), S64, S32),
		regReg("movzx", TierAMD64, rexW, op2(X86_OP2_MOVZX_R_RM8), S64, S8),
		regReg("movzx", TierAMD64, rexW, op2(X86_OP2_MOVZX_R_RM16), S64, S16),
	)
	for _, a := range aluOps {
		t = append(t,
			modImm(a.name, TierAMD64, rexW, op1(X86_OP_GROUP1_RM_IMM32), a.code, S64, S32),
			modImm(a.name, TierAMD64, rexW, op1(X86_OP_GROUP1_RM_IMM8), a.code, S64, S8),
		)
	}
	for _, s := range shiftOps {
		t = append(t, modImm(s.name, TierAMD64, rexW, op1(X86_OP_GROUP2_RM_IMM8), s.code, S64, S8))
	}
	return t
}
