package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateName = errors.New("duplicate generated name")
	ErrLength        = errors.New("declared length mismatch")
	ErrFieldRange    = errors.New("field out of range")
	ErrDecode        = errors.New("decoder disagrees with encoding")
)

// ValidateX86 checks every descriptor of tier t: generated names are unique,
// sizes fit the shape, the ModRM sub-op fits 3 bits and the declared length
// matches both the reference encoding and the emitted byte expressions.
func ValidateX86(t Tier) error {
	return validateX86(t, Tiered(t))
}

func validateX86(t Tier, rows []Descriptor) error {
	var errs []error
	seen := make(map[string]int)
	for i, d := range rows {
		name := d.Name()
		if j, ok := seen[name]; ok {
			errs = append(errs, fmt.Errorf("%w: %s %s (rows %d and %d)", ErrDuplicateName, t, name, j, i))
		}
		seen[name] = i
		if err := d.validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s %s: %w", t, name, err))
		}
	}
	return errors.Join(errs...)
}

func (d Descriptor) validate() error {
	if d.Opcode.Len() == 0 {
		return fmt.Errorf("%w: empty opcode", ErrFieldRange)
	}
	if d.Tiers == 0 {
		return fmt.Errorf("%w: no tier", ErrFieldRange)
	}
	if d.Code > 0b111 {
		return fmt.Errorf("%w: ModRM sub-op %d does not fit 3 bits", ErrFieldRange, d.Code)
	}
	switch d.Shape {
	case OI, MI, RM:
		if !d.Dst.valid() || !d.Src.valid() {
			return fmt.Errorf("%w: operand sizes %d/%d", ErrFieldRange, d.Dst, d.Src)
		}
	case M, O:
		if !d.Dst.valid() {
			return fmt.Errorf("%w: operand size %d", ErrFieldRange, d.Dst)
		}
	case I, D:
		if !d.Src.valid() {
			return fmt.Errorf("%w: immediate size %d", ErrFieldRange, d.Src)
		}
	case ZO:
	default:
		return fmt.Errorf("%w: shape %s", ErrFieldRange, d.Shape)
	}
	if n := len(d.Encode(sampleOperands(d))); n != d.Len() {
		return fmt.Errorf("%w: Len() = %d, reference encoding has %d bytes", ErrLength, d.Len(), n)
	}
	if n := len(d.byteExprs("")); n != d.Len() {
		return fmt.Errorf("%w: Len() = %d, generated body has %d bytes", ErrLength, d.Len(), n)
	}
	return nil
}

// ValidateRV32 checks that names are unique and that every funct3, funct7 and
// opcode constant fits its field.
func ValidateRV32() error {
	return validateRV32(RV32Table())
}

func validateRV32(rows []RVDescriptor) error {
	var errs []error
	seen := make(map[string]bool)
	for _, d := range rows {
		if seen[d.Name] {
			errs = append(errs, fmt.Errorf("%w: rv32 %s", ErrDuplicateName, d.Name))
		}
		seen[d.Name] = true
		if err := d.validate(); err != nil {
			errs = append(errs, fmt.Errorf("rv32 %s: %w", d.Name, err))
		}
	}
	return errors.Join(errs...)
}

func (d RVDescriptor) validate() error {
	if d.Funct3 >= 1<<3 {
		return fmt.Errorf("%w: funct3 %#b does not fit 3 bits", ErrFieldRange, d.Funct3)
	}
	if d.Funct7 >= 1<<7 {
		return fmt.Errorf("%w: funct7 %#b does not fit 7 bits", ErrFieldRange, d.Funct7)
	}
	if d.Opcode >= 1<<7 {
		return fmt.Errorf("%w: opcode %#b does not fit 7 bits", ErrFieldRange, d.Opcode)
	}
	if d.Opcode&0b11 != 0b11 {
		return fmt.Errorf("%w: opcode %#b is not a 32-bit encoding", ErrFieldRange, d.Opcode)
	}
	if d.Format > FormatJ {
		return fmt.Errorf("%w: format %d", ErrFieldRange, d.Format)
	}
	return nil
}

// Validate runs every table check.
func Validate() error {
	return errors.Join(ValidateX86(TierX86), ValidateX86(TierAMD64), ValidateRV32())
}

// sampleOperands are the operand values the generated tests and the decoder
// cross-check use for d.
func sampleOperands(d Descriptor) Operands {
	var o Operands
	switch d.Shape {
	case OI, MI, M, O:
		o.Dst = sampleDst
	case RM:
		o.Dst, o.Src = sampleDst, sampleSrc
	}
	if d.Shape.hasImm() {
		o.Imm = sampleImm(d.Src)
	}
	return o
}

const (
	sampleDst = 3
	sampleSrc = 6
)

func sampleImm(s Size) uint64 {
	switch s {
	case S8:
		return 0x12
	case S16:
		return 0x1234
	case S32:
		return 0x12345678
	}
	return 0x123456789ABCDEF0
}
