// Package catalog holds the instruction descriptor tables for the x86, amd64
// and rv32 encoder tiers, validates them, and emits the Go source of the
// generated encoders.
//
// The tables are the single source of truth: tier/x86, tier/amd64 and
// tier/rv32 contain generated copies that must be refreshed with
// `go generate ./catalog` after any change here.
package catalog

//go:generate go run ../cmd/gencatalog gen --out ..

// File is one generated source file, relative to the module root.
type File struct {
	Path     string
	Generate func() ([]byte, error)
}

// Files lists every generated file in a fixed order.
func Files() []File {
	return []File{
		{"tier/x86/x86_gen.go", func() ([]byte, error) { return GenerateX86(TierX86) }},
		{"tier/x86/x86_gen_test.go", func() ([]byte, error) { return GenerateX86Test(TierX86) }},
		{"tier/amd64/amd64_gen.go", func() ([]byte, error) { return GenerateX86(TierAMD64) }},
		{"tier/amd64/amd64_gen_test.go", func() ([]byte, error) { return GenerateX86Test(TierAMD64) }},
		{"tier/rv32/rv32_gen.go", GenerateRV32},
		{"tier/rv32/rv32_gen_test.go", GenerateRV32Test},
	}
}

// Tiered returns the rows of the x86 table that are valid for tier t, in
// table order.
func Tiered(t Tier) []Descriptor {
	var out []Descriptor
	for _, d := range X86Table() {
		if d.Tiers&t != 0 {
			out = append(out, d)
		}
	}
	return out
}

// Lookup finds the descriptor generating the function called name in tier t.
func Lookup(t Tier, name string) (Descriptor, bool) {
	for _, d := range Tiered(t) {
		if d.Name() == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

// LookupRV32 finds the RV32 descriptor generating the function called name.
func LookupRV32(name string) (RVDescriptor, bool) {
	for _, d := range RV32Table() {
		if d.GoName() == name {
			return d, true
		}
	}
	return RVDescriptor{}, false
}
