//go:build unicorn

package sandbox

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/colorfulnotion/dasm/log"
	uc "github.com/unicorn-engine/unicorn/bindings/go/unicorn"
)

const (
	pageSize  = uint64(0x1000)
	codeBase  = uint64(0x10000)
	stackBase = uint64(0x800000)
	stackSize = uint64(0x10000)
	stackTop  = stackBase + stackSize - 16
)

var (
	// ErrBudget is returned when the code runs out of its instruction budget
	// before returning.
	ErrBudget = errors.New("sandbox: instruction budget exhausted")
	// ErrTooManyArgs is returned when a run is given more arguments than the
	// calling convention passes in registers.
	ErrTooManyArgs = errors.New("sandbox: too many arguments")
)

// Options bounds a run.
type Options struct {
	// MaxInstructions stops the emulator after this many instructions.
	// Zero means DefaultMaxInstructions.
	MaxInstructions uint64
}

const DefaultMaxInstructions = 1 << 20

func (o Options) budget() uint64 {
	if o.MaxInstructions == 0 {
		return DefaultMaxInstructions
	}
	return o.MaxInstructions
}

// RunRV32 runs code as an RV32 function with DefaultMaxInstructions.
func RunRV32(code []byte, args ...uint32) (uint32, error) {
	return Options{}.RunRV32(code, args...)
}

// RunRV64 runs code as an RV64 function with DefaultMaxInstructions.
func RunRV64(code []byte, args ...uint64) (uint64, error) {
	return Options{}.RunRV64(code, args...)
}

// RunX86 runs code as a 32-bit cdecl function with DefaultMaxInstructions.
func RunX86(code []byte, args ...uint32) (uint32, error) {
	return Options{}.RunX86(code, args...)
}

// RunRV32 runs code as an RV32 function: arguments in a0-a7, the result read
// from a0 once the code returns through ra.
func (o Options) RunRV32(code []byte, args ...uint32) (uint32, error) {
	wide := make([]uint64, len(args))
	for i, a := range args {
		wide[i] = uint64(a)
	}
	ret, err := o.runRV(uc.MODE_RISCV32, code, wide)
	return uint32(ret), err
}

// RunRV64 is RunRV32 on an RV64 hart.
func (o Options) RunRV64(code []byte, args ...uint64) (uint64, error) {
	return o.runRV(uc.MODE_RISCV64, code, args)
}

var rvArgRegs = []int{
	uc.RISCV_REG_A0, uc.RISCV_REG_A1, uc.RISCV_REG_A2, uc.RISCV_REG_A3,
	uc.RISCV_REG_A4, uc.RISCV_REG_A5, uc.RISCV_REG_A6, uc.RISCV_REG_A7,
}

func (o Options) runRV(mode int, code []byte, args []uint64) (uint64, error) {
	if len(args) > len(rvArgRegs) {
		return 0, fmt.Errorf("%w: %d > %d", ErrTooManyArgs, len(args), len(rvArgRegs))
	}
	mu, exit, err := load(uc.ARCH_RISCV, mode, code)
	if err != nil {
		return 0, err
	}
	defer mu.Close()

	regs := map[int]uint64{
		uc.RISCV_REG_RA: exit,
		uc.RISCV_REG_SP: stackTop,
	}
	for i, a := range args {
		regs[rvArgRegs[i]] = a
	}
	if err := writeRegs(mu, regs); err != nil {
		return 0, err
	}
	if err := o.start(mu, "riscv", uc.RISCV_REG_PC, exit); err != nil {
		return 0, err
	}
	ret, err := mu.RegRead(uc.RISCV_REG_A0)
	if err != nil {
		return 0, fmt.Errorf("read a0: %w", err)
	}
	return ret, nil
}

// RunX86 runs code in 32-bit protected mode. Arguments are pushed right to
// left followed by a return address, and the result is read from EAX.
func (o Options) RunX86(code []byte, args ...uint32) (uint32, error) {
	mu, exit, err := load(uc.ARCH_X86, uc.MODE_32, code)
	if err != nil {
		return 0, err
	}
	defer mu.Close()

	frame := make([]byte, 0, 4*(len(args)+1))
	frame = binary.LittleEndian.AppendUint32(frame, uint32(exit))
	for _, a := range args {
		frame = binary.LittleEndian.AppendUint32(frame, a)
	}
	sp := stackTop - uint64(len(frame))
	if err := mu.MemWrite(sp, frame); err != nil {
		return 0, fmt.Errorf("write stack frame: %w", err)
	}
	if err := writeRegs(mu, map[int]uint64{uc.X86_REG_ESP: sp}); err != nil {
		return 0, err
	}
	if err := o.start(mu, "x86", uc.X86_REG_EIP, exit); err != nil {
		return 0, err
	}
	eax, err := mu.RegRead(uc.X86_REG_EAX)
	if err != nil {
		return 0, fmt.Errorf("read eax: %w", err)
	}
	return uint32(eax), nil
}

// load maps code at codeBase followed by a 4-byte exit slot, and a stack. The
// returned exit address is where the code must return to.
func load(arch, mode int, code []byte) (uc.Unicorn, uint64, error) {
	if len(code) == 0 {
		return nil, 0, errors.New("sandbox: empty code")
	}
	mu, err := uc.NewUnicorn(arch, mode)
	if err != nil {
		return nil, 0, fmt.Errorf("create unicorn: %w", err)
	}
	exit := codeBase + (uint64(len(code))+3)&^3
	codeSize := (exit + 4 - codeBase + pageSize - 1) &^ (pageSize - 1)
	if err := mu.MemMap(codeBase, codeSize); err != nil {
		mu.Close()
		return nil, 0, fmt.Errorf("map code: %w", err)
	}
	if err := mu.MemWrite(codeBase, code); err != nil {
		mu.Close()
		return nil, 0, fmt.Errorf("write code: %w", err)
	}
	if err := mu.MemMap(stackBase, stackSize); err != nil {
		mu.Close()
		return nil, 0, fmt.Errorf("map stack: %w", err)
	}
	return mu, exit, nil
}

func writeRegs(mu uc.Unicorn, regs map[int]uint64) error {
	for reg, v := range regs {
		if err := mu.RegWrite(reg, v); err != nil {
			return fmt.Errorf("write register %d: %w", reg, err)
		}
	}
	return nil
}

func (o Options) start(mu uc.Unicorn, arch string, pcReg int, exit uint64) error {
	log.Debug(log.Sandbox, "start", "arch", arch, "entry", fmt.Sprintf("%#x", codeBase), "exit", fmt.Sprintf("%#x", exit), "budget", o.budget())
	if err := mu.StartWithOptions(codeBase, exit, &uc.UcOptions{Count: o.budget()}); err != nil {
		pc, _ := mu.RegRead(pcReg)
		return fmt.Errorf("sandbox: %s run stopped at %#x: %w", arch, pc, err)
	}
	pc, err := mu.RegRead(pcReg)
	if err != nil {
		return fmt.Errorf("read pc: %w", err)
	}
	if pc != exit {
		log.Debug(log.Sandbox, "budget exhausted", "arch", arch, "pc", fmt.Sprintf("%#x", pc))
		return fmt.Errorf("%w after %d instructions at %#x", ErrBudget, o.budget(), pc)
	}
	return nil
}

