// Package amd64 encodes 64-bit x86 instructions with register-direct operands.
//
// It carries every size-invariant and 16-bit form of package x86 alongside
// the REX.W forms that only exist in long mode. Register indices 8-15 need a
// REX.B/R bit and are not expressible here.
package amd64

import "github.com/colorfulnotion/dasm/tier/x86"

// Prefixes.
const (
	REX      = 0x40
	REXW     = REX | 0x08 // 64-bit operand size
	Compat16 = x86.Compat16
)

// 64-bit general purpose registers, numbered as in ModRM.
const (
	RAX uint8 = iota // return value, first integer argument under ABIInternal
	RCX
	RDX
	RBX // second integer argument under ABIInternal
	RSP
	RBP
	RSI
	RDI
)
