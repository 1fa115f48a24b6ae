// Package x86 encodes 32-bit x86 instructions with register-direct operands.
//
// Every encoder is generated from the catalog package and returns a fixed
// length array, so callers know an instruction's size at compile time.
// Register indices are not range checked: values above 7 are masked into the
// ModRM fields and must not be passed to register-folding encoders.
package x86

// ModRM mode field values.
const (
	ModIndirect = 0b00
	ModDirect   = 0b11
)

// Compat16 is the operand-size override prefix selecting 16-bit operands.
const Compat16 = 0x66

// ModRM packs a ModRM byte from a 2-bit mode, 3-bit reg (or sub-op) and
// 3-bit r/m field.
func ModRM(mode, reg, rm uint8) byte {
	return (mode&0b11)<<6 | (reg&0b111)<<3 | rm&0b111
}

// Encoding is the result type of every generated encoder.
type Encoding interface {
	~[1]byte | ~[2]byte | ~[3]byte | ~[4]byte | ~[5]byte |
		~[6]byte | ~[7]byte | ~[8]byte | ~[9]byte | ~[10]byte
}

// Append appends the bytes of enc to buf and returns the extended buffer.
func Append[E Encoding](buf []byte, enc E) []byte {
	for i := 0; i < len(enc); i++ {
		buf = append(buf, enc[i])
	}
	return buf
}
