package catalog

import (
	"go/format"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablesValidate(t *testing.T) {
	require.NoError(t, Validate())
}

func TestLengthInvariant(t *testing.T) {
	operands := []Operands{
		{},
		{Dst: 7, Src: 7, Imm: ^uint64(0)},
		{Dst: 3, Src: 6, Imm: 0x12345678},
	}
	for _, tier := range []Tier{TierX86, TierAMD64} {
		for _, d := range Tiered(tier) {
			want := d.Prefix.Len() + d.Opcode.Len()
			if d.Shape == MI || d.Shape == RM || d.Shape == M {
				want++
			}
			switch d.Shape {
			case OI, MI, I, D:
				want += int(d.Src) / 8
			}
			assert.Equal(t, want, d.Len(), "%s %s", tier, d.Name())
			for _, o := range operands {
				assert.Len(t, d.Encode(o), want, "%s %s", tier, d.Name())
			}
		}
	}
}

func TestKnownEncodings(t *testing.T) {
	cases := []struct {
		tier Tier
		name string
		ops  Operands
		want []byte
	}{
		{TierAMD64, "MovR64R64", Operands{}, []byte{0x48, 0x8B, 0xC0}},
		{TierAMD64, "AddR64R64", Operands{Dst: 0, Src: 3}, []byte{0x48, 0x03, 0xC3}},
		{TierAMD64, "MovR64I64", Operands{Dst: 1, Imm: 0x1122334455667788}, []byte{0x48, 0xB9, 0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11}},
		{TierAMD64, "SubR64I32", Operands{Dst: 4, Imm: 0x10}, []byte{0x48, 0x81, 0xEC, 0x10, 0x00, 0x00, 0x00}},
		{TierAMD64, "PopR64", Operands{Dst: 5}, []byte{0x5D}},
		{TierAMD64, "Syscall", Operands{}, []byte{0x0F, 0x05}},
		{TierAMD64, "MovR16R16", Operands{Dst: 2, Src: 1}, []byte{0x66, 0x8B, 0xD1}},
		{TierX86, "MovR32I32", Operands{Dst: 0, Imm: 11}, []byte{0xB8, 0x0B, 0x00, 0x00, 0x00}},
		{TierX86, "AddR32R32", Operands{Dst: 0, Src: 1}, []byte{0x03, 0xC1}},
		{TierX86, "XorR32R32", Operands{Dst: 0, Src: 0}, []byte{0x33, 0xC0}},
		{TierX86, "OrR8R8", Operands{Dst: 1, Src: 2}, []byte{0x0A, 0xCA}},
		{TierX86, "AddR32I8", Operands{Dst: 3, Imm: 0x7F}, []byte{0x83, 0xC3, 0x7F}},
		{TierX86, "NegR32", Operands{Dst: 1}, []byte{0xF7, 0xD9}},
		{TierX86, "ShlR32I8", Operands{Dst: 0, Imm: 4}, []byte{0xC1, 0xE0, 0x04}},
		{TierX86, "PushI8", Operands{Imm: 0x12}, []byte{0x6A, 0x12}},
		{TierX86, "PushI16", Operands{Imm: 0x1234}, []byte{0x66, 0x68, 0x34, 0x12}},
		{TierX86, "CallD32", Operands{Imm: 0xFFFFFFFB}, []byte{0xE8, 0xFB, 0xFF, 0xFF, 0xFF}},
		{TierX86, "PushR32", Operands{Dst: 5}, []byte{0x55}},
		{TierX86, "CallR32", Operands{Dst: 0}, []byte{0xFF, 0xD0}},
		{TierX86, "Ret", Operands{}, []byte{0xC3}},
		{TierX86, "Ud2", Operands{}, []byte{0x0F, 0x0B}},
	}
	for _, c := range cases {
		t.Run(c.tier.String()+"/"+c.name, func(t *testing.T) {
			d, ok := Lookup(c.tier, c.name)
			require.True(t, ok)
			assert.Equal(t, c.want, d.Encode(c.ops))
		})
	}
}

func TestNotation(t *testing.T) {
	cases := map[string]string{
		"MovR64R64": "REX.W 8B /r",
		"AddR64I32": "REX.W 81 /0 id",
		"MovR64I64": "REX.W B8+r io",
		"MovR16I16": "66 B8+r iw",
		"CallD32":   "E8 cd",
		"BswapR64":  "REX.W 0F C8+r",
		"Cqo":       "REX.W 99",
	}
	for name, want := range cases {
		d, ok := Lookup(TierAMD64, name)
		require.True(t, ok, name)
		assert.Equal(t, want, d.Notation(), name)
	}
}

func TestTierMembership(t *testing.T) {
	for _, name := range []string{"MovR64R64", "PushR64", "Syscall", "Cqo"} {
		_, ok := Lookup(TierX86, name)
		assert.False(t, ok, name)
	}
	for _, name := range []string{"PushR32", "Pusha", "Into", "CallR32"} {
		_, ok := Lookup(TierAMD64, name)
		assert.False(t, ok, name)
	}
	// Size-invariant and 16-bit forms are shared.
	for _, name := range []string{"Ret", "MovR32I32", "AddR16R16", "PushI16", "JmpD8"} {
		_, ok := Lookup(TierX86, name)
		assert.True(t, ok, name)
		_, ok = Lookup(TierAMD64, name)
		assert.True(t, ok, name)
	}
}

func TestValidateRejects(t *testing.T) {
	add := regReg("add", TierX86, noPrefix, op1(X86_OP_ADD_R_RM), S32, S32)

	err := validateX86(TierX86, []Descriptor{add, add})
	assert.ErrorIs(t, err, ErrDuplicateName)

	bad := modReg("not", TierX86, noPrefix, op1(X86_OP_GROUP3_RM), 8, S32)
	assert.ErrorIs(t, validateX86(TierX86, []Descriptor{bad}), ErrFieldRange)

	noSize := modImm("add", TierX86, noPrefix, op1(X86_OP_GROUP1_RM_IMM32), X86_REG_ADD, S32, 24)
	assert.ErrorIs(t, validateX86(TierX86, []Descriptor{noSize}), ErrFieldRange)

	rvCases := []RVDescriptor{
		{"wide3", FormatR, 0b1000, 0, RV_OPCODE_OP},
		{"wide7", FormatR, 0, 0b10000000, RV_OPCODE_OP},
		{"wideop", FormatI, 0, 0, 0b10010011},
		{"compressed", FormatI, 0, 0, 0b0010001},
	}
	for _, d := range rvCases {
		assert.ErrorIs(t, validateRV32([]RVDescriptor{d}), ErrFieldRange, d.Name)
	}
	dup := rv32Table[0]
	assert.ErrorIs(t, validateRV32([]RVDescriptor{dup, dup}), ErrDuplicateName)
}

func TestCrossCheck(t *testing.T) {
	require.NoError(t, CrossCheck(TierX86))
	require.NoError(t, CrossCheck(TierAMD64))
}

func TestRVEncode(t *testing.T) {
	cases := []struct {
		name string
		ops  RVOperands
		want uint32
	}{
		{"addi", RVOperands{Rd: 10, Rs1: 10, Imm: 55}, 0x03750513},
		{"add", RVOperands{Rd: 10, Rs1: 11, Rs2: 12}, 0x00C58533},
		{"sub", RVOperands{Rd: 5, Rs1: 6, Rs2: 7}, 0x407302B3},
		{"srai", RVOperands{Rd: 5, Rs1: 6, Imm: 3}, 0x40335293},
		{"sw", RVOperands{Rs1: 2, Rs2: 6, Imm: 8}, 0x00612423},
		{"beq", RVOperands{Rs1: 1, Rs2: 2, Imm: 8}, 0x00208463},
		{"lui", RVOperands{Rd: 5, Imm: 0xABCDE}, 0xABCDE2B7},
		{"jal", RVOperands{Rd: 1, Imm: 0x800}, 0x001000EF},
		{"jalr", RVOperands{Rd: 0, Rs1: 1}, 0x00008067},
		{"mul", RVOperands{Rd: 10, Rs1: 10, Rs2: 11}, 0x02B50533},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, ok := LookupRV32(exportName(c.name))
			require.True(t, ok)
			assert.Equal(t, c.want, d.Encode(c.ops), "got %#08x", d.Encode(c.ops))
		})
	}
}

// TestGeneratedUpToDate fails when a committed generated file differs from
// what the tables produce. Run `go generate ./catalog` to refresh.
func TestGeneratedUpToDate(t *testing.T) {
	for _, f := range Files() {
		t.Run(f.Path, func(t *testing.T) {
			want, err := f.Generate()
			require.NoError(t, err)
			committed, err := os.ReadFile(filepath.Join("..", filepath.FromSlash(f.Path)))
			require.NoError(t, err)
			got, err := format.Source(committed)
			require.NoError(t, err)
			assert.Equal(t, string(want), string(got))
		})
	}
}
