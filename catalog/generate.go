package catalog

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
)

// ModulePath is the import path prefix of the generated packages.
const ModulePath = "github.com/colorfulnotion/dasm"

const generatedHeader = "// Code generated by gencatalog; DO NOT EDIT.\n\n"

// PackageName is the Go package the tier's encoders are generated into.
func (t Tier) PackageName() string {
	if t == TierAMD64 {
		return "amd64"
	}
	return "x86"
}

// qualifier prefixes identifiers owned by tier/x86 when emitting code for
// another tier.
func (t Tier) qualifier() string {
	if t == TierX86 {
		return ""
	}
	return "x86."
}

// GenerateX86 emits the encoder source for tier t.
func GenerateX86(t Tier) ([]byte, error) {
	if err := ValidateX86(t); err != nil {
		return nil, err
	}
	q := t.qualifier()
	var b bytes.Buffer
	b.WriteString(generatedHeader)
	fmt.Fprintf(&b, "package %s\n\n", t.PackageName())
	if q != "" {
		fmt.Fprintf(&b, "import %q\n\n", ModulePath+"/tier/x86")
	}
	for _, d := range Tiered(t) {
		fmt.Fprintf(&b, "// %s encodes %s (%s).\n", d.Name(), d.mnemonic(), d.Notation())
		fmt.Fprintf(&b, "func %s(%s) [%d]byte {\n", d.Name(), d.params(), d.Len())
		fmt.Fprintf(&b, "\treturn [...]byte{%s}\n}\n\n", strings.Join(d.byteExprs(q), ", "))
	}
	return formatSource(b.Bytes())
}

// GenerateX86Test emits the test checking tier t's generated encoders against
// Descriptor.Encode.
func GenerateX86Test(t Tier) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(generatedHeader)
	fmt.Fprintf(&b, "package %s\n\n", t.PackageName())
	writeTestImports(&b)
	b.WriteString("func TestGeneratedMatchesCatalog(t *testing.T) {\n")
	b.WriteString("\tcases := []struct {\n\t\tname string\n\t\tenc  func() []byte\n\t\tops  catalog.Operands\n\t}{\n")
	for _, d := range Tiered(t) {
		o := sampleOperands(d)
		fmt.Fprintf(&b, "\t\t{%q, func() []byte { b := %s(%s); return b[:] }, %s},\n",
			d.Name(), d.Name(), d.sampleArgs(o), d.operandsLiteral(o))
	}
	b.WriteString("\t}\n")
	b.WriteString("\tfor _, c := range cases {\n")
	fmt.Fprintf(&b, "\t\td, ok := catalog.Lookup(catalog.%s, c.name)\n", t.constName())
	b.WriteString("\t\trequire.True(t, ok, c.name)\n")
	b.WriteString("\t\tgot := c.enc()\n")
	b.WriteString("\t\tassert.Len(t, got, d.Len(), c.name)\n")
	b.WriteString("\t\tassert.Equal(t, d.Encode(c.ops), got, c.name)\n")
	b.WriteString("\t}\n}\n")
	return formatSource(b.Bytes())
}

// GenerateRV32 emits the RV32 base encoders along with a compile-time guard
// on every field constant.
func GenerateRV32() ([]byte, error) {
	if err := ValidateRV32(); err != nil {
		return nil, err
	}
	var b bytes.Buffer
	b.WriteString(generatedHeader)
	b.WriteString("package rv32\n\n")
	b.WriteString("func _() {\n")
	b.WriteString("\t// An \"invalid array index\" compiler error signifies that a funct3, funct7\n")
	b.WriteString("\t// or opcode constant no longer fits its field. Re-run gencatalog.\n")
	b.WriteString("\tvar funct3 [1 << 3]struct{}\n")
	b.WriteString("\tvar funct7, opcode [1 << 7]struct{}\n")
	for _, d := range RV32Table() {
		fmt.Fprintf(&b, "\t_ = opcode[%s]\n", bin(d.Opcode, 7))
		if d.Format.hasFunct3() {
			fmt.Fprintf(&b, "\t_ = funct3[%s]\n", bin(d.Funct3, 3))
		}
		if d.Format.hasFunct7() {
			fmt.Fprintf(&b, "\t_ = funct7[%s]\n", bin(d.Funct7, 7))
		}
	}
	b.WriteString("}\n\n")
	for _, d := range RV32Table() {
		fmt.Fprintf(&b, "// %s encodes %s %s (%s-type).\n", d.GoName(), strings.ToUpper(d.Name), d.Syntax(), d.Format)
		fmt.Fprintf(&b, "func %s(%s) uint32 {\n", d.GoName(), d.Format.params())
		fmt.Fprintf(&b, "\treturn %s\n}\n\n", d.call())
	}
	return formatSource(b.Bytes())
}

// GenerateRV32Test emits the test checking the generated RV32 encoders against
// RVDescriptor.Encode.
func GenerateRV32Test() ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(generatedHeader)
	b.WriteString("package rv32\n\n")
	writeTestImports(&b)
	b.WriteString("func TestGeneratedMatchesCatalog(t *testing.T) {\n")
	b.WriteString("\tcases := []struct {\n\t\tname string\n\t\tgot  uint32\n\t\tops  catalog.RVOperands\n\t}{\n")
	for _, d := range RV32Table() {
		o := rvSampleOperands(d.Format)
		fmt.Fprintf(&b, "\t\t{%q, %s(%s), %s},\n", d.GoName(), d.GoName(), rvSampleArgs(d.Format, o), rvOperandsLiteral(o))
	}
	b.WriteString("\t}\n")
	b.WriteString("\tfor _, c := range cases {\n")
	b.WriteString("\t\td, ok := catalog.LookupRV32(c.name)\n")
	b.WriteString("\t\trequire.True(t, ok, c.name)\n")
	b.WriteString("\t\tassert.Equal(t, d.Encode(c.ops), c.got, c.name)\n")
	b.WriteString("\t}\n}\n")
	return formatSource(b.Bytes())
}

func writeTestImports(b *bytes.Buffer) {
	b.WriteString("import (\n\t\"testing\"\n\n")
	fmt.Fprintf(b, "\t%q\n", ModulePath+"/catalog")
	b.WriteString("\t\"github.com/stretchr/testify/assert\"\n")
	b.WriteString("\t\"github.com/stretchr/testify/require\"\n)\n\n")
}

func formatSource(src []byte) ([]byte, error) {
	out, err := format.Source(src)
	if err != nil {
		return nil, fmt.Errorf("gofmt generated source: %w", err)
	}
	return out, nil
}

func (t Tier) constName() string {
	if t == TierAMD64 {
		return "TierAMD64"
	}
	return "TierX86"
}

func (d Descriptor) mnemonic() string {
	m := strings.ToUpper(d.Op)
	if s := d.Syntax(); s != "" {
		m += " " + s
	}
	return m
}

func (d Descriptor) params() string {
	switch d.Shape {
	case OI, MI:
		if d.Src == S8 {
			return "dst, src uint8"
		}
		return fmt.Sprintf("dst uint8, src uint%s", d.Src)
	case RM:
		return "dst, src uint8"
	case M, O:
		return "dst uint8"
	case I, D:
		return fmt.Sprintf("src uint%s", d.Src)
	}
	return ""
}

// byteExprs is the element list of the generated array literal, one
// expression per output byte. q qualifies tier/x86 identifiers.
func (d Descriptor) byteExprs(q string) []string {
	var out []string
	for _, p := range d.Prefix.Bytes() {
		switch p {
		case X86_REX_W_PREFIX:
			out = append(out, "REXW")
		case X86_PREFIX_66:
			out = append(out, "Compat16")
		default:
			out = append(out, fmt.Sprintf("0x%02X", p))
		}
	}
	op := d.Opcode.Bytes()
	for i, b := range op {
		e := fmt.Sprintf("0x%02X", b)
		if i == len(op)-1 && d.Shape.foldsRegister() {
			e += " + dst&7"
		}
		out = append(out, e)
	}
	switch d.Shape {
	case MI, M:
		out = append(out, fmt.Sprintf("%sModRM(%sModDirect, %d, dst)", q, q, d.Code))
	case RM:
		out = append(out, fmt.Sprintf("%sModRM(%sModDirect, dst, src)", q, q))
	}
	if d.Shape.hasImm() {
		if d.Src == S8 {
			out = append(out, "src")
		} else {
			for i := 0; i < d.Src.Bytes(); i++ {
				if i == 0 {
					out = append(out, "byte(src)")
				} else {
					out = append(out, fmt.Sprintf("byte(src >> %d)", 8*i))
				}
			}
		}
	}
	return out
}

func (d Descriptor) sampleArgs(o Operands) string {
	imm := fmt.Sprintf("%#x", o.Imm)
	switch d.Shape {
	case OI, MI:
		return fmt.Sprintf("%d, %s", o.Dst, imm)
	case RM:
		return fmt.Sprintf("%d, %d", o.Dst, o.Src)
	case M, O:
		return fmt.Sprintf("%d", o.Dst)
	case I, D:
		return imm
	}
	return ""
}

func (d Descriptor) operandsLiteral(o Operands) string {
	var fields []string
	switch d.Shape {
	case OI, MI, M, O:
		fields = append(fields, fmt.Sprintf("Dst: %d", o.Dst))
	case RM:
		fields = append(fields, fmt.Sprintf("Dst: %d", o.Dst), fmt.Sprintf("Src: %d", o.Src))
	}
	if d.Shape.hasImm() {
		fields = append(fields, fmt.Sprintf("Imm: %#x", o.Imm))
	}
	return "catalog.Operands{" + strings.Join(fields, ", ") + "}"
}

func (f RVFormat) hasFunct3() bool {
	return f != FormatU && f != FormatJ
}

func (f RVFormat) hasFunct7() bool {
	return f == FormatR || f == FormatIShift
}

func (f RVFormat) params() string {
	switch f {
	case FormatR:
		return "rd, rs1, rs2 uint8"
	case FormatI:
		return "rd, rs1 uint8, imm uint16"
	case FormatIShift:
		return "rd, rs1, shamt uint8"
	case FormatS, FormatB:
		return "rs1, rs2 uint8, imm uint16"
	case FormatU, FormatJ:
		return "rd uint8, imm uint32"
	}
	return ""
}

func (d RVDescriptor) call() string {
	f3, f7, op := bin(d.Funct3, 3), bin(d.Funct7, 7), bin(d.Opcode, 7)
	switch d.Format {
	case FormatR:
		return fmt.Sprintf("encodeR(%s, %s, %s, rd, rs1, rs2)", f7, f3, op)
	case FormatI:
		return fmt.Sprintf("encodeI(%s, %s, rd, rs1, imm)", f3, op)
	case FormatIShift:
		return fmt.Sprintf("encodeIShift(%s, %s, %s, rd, rs1, shamt)", f7, f3, op)
	case FormatS:
		return fmt.Sprintf("encodeS(%s, %s, rs1, rs2, imm)", f3, op)
	case FormatB:
		return fmt.Sprintf("encodeB(%s, %s, rs1, rs2, imm)", f3, op)
	case FormatU:
		return fmt.Sprintf("encodeU(%s, rd, imm)", op)
	case FormatJ:
		return fmt.Sprintf("encodeJ(%s, rd, imm)", op)
	}
	return "0"
}

func bin(v uint8, width int) string {
	return fmt.Sprintf("0b%0*b", width, v)
}

func rvSampleOperands(f RVFormat) RVOperands {
	o := RVOperands{Rd: 5, Rs1: 10, Rs2: 31}
	switch f {
	case FormatI, FormatS:
		o.Imm = 0x7A5
	case FormatIShift:
		o.Imm = 0x1B
	case FormatB:
		o.Imm = 0x1A5C
	case FormatU:
		o.Imm = 0xABCDE
	case FormatJ:
		o.Imm = 0x1A5A5C
	}
	return o
}

func rvSampleArgs(f RVFormat, o RVOperands) string {
	switch f {
	case FormatR:
		return fmt.Sprintf("%d, %d, %d", o.Rd, o.Rs1, o.Rs2)
	case FormatI, FormatIShift:
		return fmt.Sprintf("%d, %d, %#x", o.Rd, o.Rs1, o.Imm)
	case FormatS, FormatB:
		return fmt.Sprintf("%d, %d, %#x", o.Rs1, o.Rs2, o.Imm)
	}
	return fmt.Sprintf("%d, %#x", o.Rd, o.Imm)
}

func rvOperandsLiteral(o RVOperands) string {
	return fmt.Sprintf("catalog.RVOperands{Rd: %d, Rs1: %d, Rs2: %d, Imm: %#x}", o.Rd, o.Rs1, o.Rs2, o.Imm)
}
