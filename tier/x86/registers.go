package x86

// 32-bit general purpose registers.
const (
	EAX uint8 = iota // return value
	ECX
	EDX // high half of mul/div results
	EBX
	ESP
	EBP
	ESI
	EDI
)

// 16-bit registers share the 32-bit numbering.
const (
	AX = EAX
	CX = ECX
	DX = EDX
	BX = EBX
	SP = ESP
	BP = EBP
	SI = ESI
	DI = EDI
)

// 8-bit registers. Without a REX prefix indices 4-7 select the high bytes.
const (
	AL uint8 = iota
	CL
	DL
	BL
	AH
	CH
	DH
	BH
)

var regNames = [...][8]string{
	{"al", "cl", "dl", "bl", "ah", "ch", "dh", "bh"},
	{"ax", "cx", "dx", "bx", "sp", "bp", "si", "di"},
	{"eax", "ecx", "edx", "ebx", "esp", "ebp", "esi", "edi"},
}

// RegName returns the assembler name of register r at the given width in
// bits (8, 16 or 32), or "" when the width is not one of those.
func RegName(bits int, r uint8) string {
	var i int
	switch bits {
	case 8:
		i = 0
	case 16:
		i = 1
	case 32:
		i = 2
	default:
		return ""
	}
	return regNames[i][r&0b111]
}
