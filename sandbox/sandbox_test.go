//go:build unicorn

package sandbox

import (
	"testing"

	"github.com/colorfulnotion/dasm/tier/rv32"
	"github.com/colorfulnotion/dasm/tier/x86"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRV32LoadImmediate(t *testing.T) {
	got, err := RunRV32(rv32.Bytes(
		rv32.Li(rv32.A0, 0),
		rv32.Addi(rv32.A0, rv32.A0, 55),
		rv32.Ret(),
	))
	require.NoError(t, err)
	assert.Equal(t, uint32(55), got)
}

func TestRV32Arguments(t *testing.T) {
	code := rv32.Bytes(
		rv32.Mul(rv32.A0, rv32.A0, rv32.A1),
		rv32.Sub(rv32.A0, rv32.A0, rv32.A2),
		rv32.Ret(),
	)
	got, err := RunRV32(code, 6, 7, 2)
	require.NoError(t, err)
	assert.Equal(t, uint32(40), got)
}

func TestRV32Loop(t *testing.T) {
	// a0 = sum of 1..a0
	code := rv32.Bytes(
		rv32.Mv(rv32.T0, rv32.A0),
		rv32.Li(rv32.A0, 0),
		rv32.Beqz(rv32.T0, 16),
		rv32.Add(rv32.A0, rv32.A0, rv32.T0),
		rv32.Addi(rv32.T0, rv32.T0, 0xFFF), // -1
		rv32.J(0xFFFFFFF4),                 // back to beqz
		rv32.Ret(),
	)
	got, err := RunRV32(code, 10)
	require.NoError(t, err)
	assert.Equal(t, uint32(55), got)
}

func TestRV32Li32(t *testing.T) {
	for _, v := range []uint32{0, 0x7FF, 0x800, 0xDEADBEEF, 0xFFFFF800, 0x80000000} {
		li := rv32.Li32(rv32.A0, v)
		got, err := RunRV32(rv32.Bytes(li[0], li[1], rv32.Ret()))
		require.NoError(t, err)
		assert.Equal(t, v, got, "%#x", v)
	}
}

func TestRV64Li64(t *testing.T) {
	for _, v := range []uint64{0, 0x123456789ABCDEF0, 0xFFFFFFFFFFFFFFFF, 0x8000000000000000, 0x00000000FFFFF800} {
		li := rv32.Li64(rv32.A0, v)
		got, err := RunRV64(rv32.Bytes(append(li[:], rv32.Ret())...))
		require.NoError(t, err)
		assert.Equal(t, v, got, "%#x", v)
	}
}

func TestRV32Budget(t *testing.T) {
	spin := rv32.Bytes(rv32.J(0))
	_, err := Options{MaxInstructions: 100}.RunRV32(spin)
	assert.ErrorIs(t, err, ErrBudget)
}

func TestRV32TooManyArgs(t *testing.T) {
	_, err := RunRV32(rv32.Bytes(rv32.Ret()), 1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.ErrorIs(t, err, ErrTooManyArgs)
}

func TestX86AddImmediates(t *testing.T) {
	var code []byte
	code = x86.Append(code, x86.MovR32I32(x86.EAX, 11))
	code = x86.Append(code, x86.MovR32I32(x86.ECX, 22))
	code = x86.Append(code, x86.AddR32R32(x86.EAX, x86.ECX))
	code = x86.Append(code, x86.Ret())

	got, err := RunX86(code)
	require.NoError(t, err)
	assert.Equal(t, uint32(33), got)
}

func TestX86Cdecl(t *testing.T) {
	// Load both stacked arguments with pop: return address, a, b.
	var code []byte
	code = x86.Append(code, x86.PopR32(x86.EDX)) // return address
	code = x86.Append(code, x86.PopR32(x86.EAX))
	code = x86.Append(code, x86.PopR32(x86.ECX))
	code = x86.Append(code, x86.SubR32R32(x86.EAX, x86.ECX))
	code = x86.Append(code, x86.PushR32(x86.ECX))
	code = x86.Append(code, x86.PushR32(x86.ECX))
	code = x86.Append(code, x86.PushR32(x86.EDX))
	code = x86.Append(code, x86.Ret())

	got, err := RunX86(code, 50, 8)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), got)
}

func TestX86LegacyForms(t *testing.T) {
	var code []byte
	code = x86.Append(code, x86.MovR32I32(x86.EBX, 5))
	code = x86.Append(code, x86.Pusha())
	code = x86.Append(code, x86.MovR32I32(x86.EBX, 9))
	code = x86.Append(code, x86.Popa())
	code = x86.Append(code, x86.MovR32R32(x86.EAX, x86.EBX))
	code = x86.Append(code, x86.Ret())

	got, err := RunX86(code)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), got)
}
