package amd64

import (
	"testing"

	"github.com/colorfulnotion/dasm/tier/x86"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/arch/x86/x86asm"
)

func TestMovR64R64(t *testing.T) {
	assert.Equal(t, [3]byte{0x48, 0x8B, 0xC0}, MovR64R64(RAX, RAX))
	assert.Equal(t, [3]byte{0x48, 0x8B, 0xC3}, MovR64R64(RAX, RBX))
}

func TestShared16BitForms(t *testing.T) {
	assert.Equal(t, [3]byte{Compat16, 0x8B, 0xC1}, MovR16R16(RAX, RCX))
	assert.Equal(t, x86.MovR16I16(RDX, 0xBEEF), MovR16I16(RDX, 0xBEEF))
	assert.Equal(t, x86.AddR32R32(RAX, RBX), AddR32R32(RAX, RBX))
}

func TestDecodeProgram(t *testing.T) {
	var code []byte
	code = x86.Append(code, PushR64(RBP))
	code = x86.Append(code, MovR64I64(RAX, 0x1122334455667788))
	code = x86.Append(code, AddR64R64(RAX, RBX))
	code = x86.Append(code, SubR64I8(RSP, 0x10))
	code = x86.Append(code, MovsxdR64R32(RCX, RDX))
	code = x86.Append(code, ShrR64I8(RAX, 3))
	code = x86.Append(code, PopR64(RBP))
	code = x86.Append(code, Ret())

	type want struct {
		op   x86asm.Op
		args []x86asm.Arg
	}
	wants := []want{
		{x86asm.PUSH, []x86asm.Arg{x86asm.RBP}},
		{x86asm.MOV, []x86asm.Arg{x86asm.RAX, x86asm.Imm(0x1122334455667788)}},
		{x86asm.ADD, []x86asm.Arg{x86asm.RAX, x86asm.RBX}},
		{x86asm.SUB, []x86asm.Arg{x86asm.RSP, x86asm.Imm(0x10)}},
		{x86asm.MOVSXD, []x86asm.Arg{x86asm.RCX, x86asm.EDX}},
		{x86asm.SHR, []x86asm.Arg{x86asm.RAX, x86asm.Imm(3)}},
		{x86asm.POP, []x86asm.Arg{x86asm.RBP}},
		{x86asm.RET, nil},
	}

	off := 0
	for i, w := range wants {
		inst, err := x86asm.Decode(code[off:], 64)
		require.NoError(t, err, "instruction %d", i)
		assert.Equal(t, w.op, inst.Op, "instruction %d", i)
		for j, a := range w.args {
			assert.Equal(t, a, inst.Args[j], "instruction %d arg %d", i, j)
		}
		off += inst.Len
	}
	assert.Equal(t, len(code), off)
}

func TestLongModeOnlyForms(t *testing.T) {
	assert.Equal(t, [1]byte{0x50}, PushR64(RAX))
	assert.Equal(t, [2]byte{0xFF, 0xD0}, CallR64(RAX))
	assert.Equal(t, [2]byte{0xFF, 0xE1}, JmpR64(RCX))
	assert.Equal(t, [2]byte{0x0F, 0x05}, Syscall())
	assert.Equal(t, [2]byte{REXW, 0x99}, Cqo())
	assert.Equal(t, [3]byte{REXW, 0x0F, 0xCB}, BswapR64(RBX))
}
