package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

const (
	modDirect = 0b11
)

// Descriptor is one row of the x86 instruction table.
type Descriptor struct {
	Op     string
	Shape  Shape
	Prefix Seq
	Opcode Seq
	Code   uint8 // ModRM reg field for MI and M
	Dst    Size
	Src    Size
	Tiers  Tier
}

// Operands feeds Descriptor.Encode. Fields a shape does not use are ignored.
type Operands struct {
	Dst uint8
	Src uint8
	Imm uint64
}

// Name is the exported Go identifier generated for the descriptor.
func (d Descriptor) Name() string {
	op := exportName(d.Op)
	switch d.Shape {
	case OI, MI:
		return fmt.Sprintf("%sR%sI%s", op, d.Dst, d.Src)
	case RM:
		return fmt.Sprintf("%sR%sR%s", op, d.Dst, d.Src)
	case M, O:
		return fmt.Sprintf("%sR%s", op, d.Dst)
	case I:
		return fmt.Sprintf("%sI%s", op, d.Src)
	case D:
		return fmt.Sprintf("%sD%s", op, d.Src)
	}
	return op
}

// Len is the encoded length: prefixes, opcode bytes, the ModRM byte when the
// shape has one, and the immediate bytes.
func (d Descriptor) Len() int {
	n := d.Prefix.Len() + d.Opcode.Len()
	if d.Shape.hasModRM() {
		n++
	}
	if d.Shape.hasImm() {
		n += d.Src.Bytes()
	}
	return n
}

// Encode is the reference encoder for the descriptor. Generated functions
// must produce exactly these bytes.
func (d Descriptor) Encode(o Operands) []byte {
	out := make([]byte, 0, d.Len())
	out = append(out, d.Prefix.Bytes()...)
	op := d.Opcode.Bytes()
	if d.Shape.foldsRegister() && len(op) > 0 {
		op[len(op)-1] += o.Dst & 0b111
	}
	out = append(out, op...)
	switch d.Shape {
	case MI, M:
		out = append(out, modRM(modDirect, d.Code, o.Dst))
	case RM:
		out = append(out, modRM(modDirect, o.Dst, o.Src))
	}
	if d.Shape.hasImm() {
		out = appendLE(out, o.Imm, d.Src.Bytes())
	}
	return out
}

// Syntax is the Intel-style operand list, e.g. "r64, imm32".
func (d Descriptor) Syntax() string {
	switch d.Shape {
	case OI, MI:
		return fmt.Sprintf("r%s, imm%s", d.Dst, d.Src)
	case RM:
		return fmt.Sprintf("r%s, r%s", d.Dst, d.Src)
	case M, O:
		return fmt.Sprintf("r%s", d.Dst)
	case I:
		return fmt.Sprintf("imm%s", d.Src)
	case D:
		return fmt.Sprintf("rel%s", d.Src)
	}
	return ""
}

// Notation is the opcode column as written in the Intel manual, e.g.
// "REX.W 81 /0 id".
func (d Descriptor) Notation() string {
	var parts []string
	for _, p := range d.Prefix.Bytes() {
		if p == X86_REX_W_PREFIX {
			parts = append(parts, "REX.W")
		} else {
			parts = append(parts, fmt.Sprintf("%02X", p))
		}
	}
	op := d.Opcode.Bytes()
	for i, b := range op {
		s := fmt.Sprintf("%02X", b)
		if i == len(op)-1 && d.Shape.foldsRegister() {
			s += "+r"
		}
		parts = append(parts, s)
	}
	switch d.Shape {
	case RM:
		parts = append(parts, "/r")
	case MI, M:
		parts = append(parts, fmt.Sprintf("/%d", d.Code))
	}
	if d.Shape.hasImm() {
		parts = append(parts, immNotation(d.Shape, d.Src))
	}
	return strings.Join(parts, " ")
}

func immNotation(shape Shape, s Size) string {
	kind := "i"
	if shape == D {
		kind = "c"
	}
	switch s {
	case S8:
		return kind + "b"
	case S16:
		return kind + "w"
	case S32:
		return kind + "d"
	}
	return kind + "o"
}

func modRM(mode, reg, rm uint8) byte {
	return mode<<6 | (reg&0b111)<<3 | rm&0b111
}

func appendLE[T constraints.Unsigned](b []byte, v T, n int) []byte {
	for i := 0; i < n; i++ {
		b = append(b, byte(v>>(8*i)))
	}
	return b
}

func exportName(op string) string {
	if op == "" {
		return ""
	}
	return strings.ToUpper(op[:1]) + op[1:]
}
