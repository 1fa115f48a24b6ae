package catalog

import (
	"strconv"
	"strings"
)

// Size is an operand width in bits.
type Size uint8

const (
	S8  Size = 8
	S16 Size = 16
	S32 Size = 32
	S64 Size = 64
)

// Bytes is the number of little-endian bytes an immediate of this size takes.
func (s Size) Bytes() int {
	return int(s) / 8
}

func (s Size) String() string {
	return strconv.Itoa(int(s))
}

func (s Size) valid() bool {
	switch s {
	case S8, S16, S32, S64:
		return true
	}
	return false
}

// Shape is the byte layout of an x86 instruction form.
type Shape uint8

const (
	ZO Shape = iota // opcode only
	OI              // opcode+reg, immediate
	MI              // opcode, ModRM(sub-op, reg), immediate
	RM              // opcode, ModRM(dst, src)
	M               // opcode, ModRM(sub-op, reg)
	I               // opcode, immediate
	D               // opcode, relative displacement
	O               // opcode+reg
)

var shapeNames = [...]string{"ZO", "OI", "MI", "RM", "M", "I", "D", "O"}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "Shape(" + strconv.Itoa(int(s)) + ")"
}

func (s Shape) hasModRM() bool {
	return s == MI || s == RM || s == M
}

func (s Shape) hasImm() bool {
	return s == OI || s == MI || s == I || s == D
}

func (s Shape) foldsRegister() bool {
	return s == OI || s == O
}

// Tier is a set of instruction-set tiers a descriptor is valid for.
type Tier uint8

const (
	TierX86 Tier = 1 << iota
	TierAMD64
)

func (t Tier) String() string {
	var parts []string
	if t&TierX86 != 0 {
		parts = append(parts, "x86")
	}
	if t&TierAMD64 != 0 {
		parts = append(parts, "amd64")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Mode is the x86asm decoder mode matching the tier.
func (t Tier) Mode() int {
	if t == TierAMD64 {
		return 64
	}
	return 32
}

// Seq is a fixed-capacity sequence of at most two bytes, used for mandatory
// prefixes and opcode bytes.
type Seq struct {
	n uint8
	b [2]byte
}

func seq(bs ...byte) Seq {
	var s Seq
	if len(bs) > len(s.b) {
		panic("catalog: byte sequence longer than 2")
	}
	s.n = uint8(copy(s.b[:], bs))
	return s
}

func (s Seq) Len() int {
	return int(s.n)
}

// Bytes returns a copy of the sequence.
func (s Seq) Bytes() []byte {
	return append([]byte(nil), s.b[:s.n]...)
}
