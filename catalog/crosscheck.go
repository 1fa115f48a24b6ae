package catalog

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/arch/x86/x86asm"
)

// Rows whose x86asm mnemonic does not follow the table's operation name.
var mnemonicUnchecked = map[string]bool{
	"int3":  true, // decoded as INT 3
	"pusha": true, // PUSHAD under a 32-bit operand size
	"popa":  true,
}

// CrossCheck decodes the sample encoding of every tier t descriptor with
// x86asm in the tier's mode and reports rows whose decoded length or
// mnemonic disagrees with the table.
func CrossCheck(t Tier) error {
	var errs []error
	for _, d := range Tiered(t) {
		if err := crossCheck(d, t.Mode()); err != nil {
			errs = append(errs, fmt.Errorf("%s %s: %w", t, d.Name(), err))
		}
	}
	return errors.Join(errs...)
}

func crossCheck(d Descriptor, mode int) error {
	code := d.Encode(sampleOperands(d))
	inst, err := x86asm.Decode(code, mode)
	if err != nil {
		return fmt.Errorf("%w: % x: %v", ErrDecode, code, err)
	}
	if inst.Len != d.Len() {
		return fmt.Errorf("%w: % x decodes as %d-byte %s, want %d bytes", ErrDecode, code, inst.Len, inst, d.Len())
	}
	if mnemonicUnchecked[d.Op] {
		return nil
	}
	if got, want := inst.Op.String(), strings.ToUpper(d.Op); got != want {
		return fmt.Errorf("%w: % x decodes as %s, want %s", ErrDecode, code, got, want)
	}
	return nil
}
