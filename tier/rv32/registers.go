package rv32

// Integer registers by ABI name.
const (
	Zero uint8 = iota // hard-wired zero
	RA                // return address
	SP                // stack pointer
	GP                // global pointer
	TP                // thread pointer
	T0
	T1
	T2
	S0 // frame pointer
	S1
	A0 // first argument, return value
	A1
	A2
	A3
	A4
	A5
	A6
	A7
	S2
	S3
	S4
	S5
	S6
	S7
	S8
	S9
	S10
	S11
	T3
	T4
	T5
	T6
)

const FP = S0

var abiNames = [32]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// RegName returns the ABI name of register r.
func RegName(r uint8) string {
	return abiNames[r&0x1F]
}
