package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/mos6502/memory"
)

const (
	RESET_VECTOR = uint16(0xfffc) // Location of the reset vector.
	PROGRAM_BASE = uint16(0x0600) // Default program load address.
)

var _cpu_defines = map[string]string{
	"RESET_VECTOR": fmt.Sprintf("0x%04x", RESET_VECTOR),
	"STACK_PAGE":   fmt.Sprintf("0x%04x", STACK_PAGE),
}

// StepHook is called once per instruction, before the instruction is
// fetched. A non-nil error stops the run, and is returned to the caller.
type StepHook func(cpu *Cpu) error

// Cpu is the simulation context for a 6502.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Table  *Table          // Opcode lookup table.
	Memory *memory.Memory // Address space.

	A      uint8  // Accumulator.
	X      uint8  // X index register.
	Y      uint8  // Y index register.
	Status Flags  // Processor status.
	Stack  Stack  // Hardware stack.
	Pc     uint16 // Program counter.

	Base        uint16   // Load address used by LoadAndRun.
	LogicTarget Register // Destination of AND, ORA and EOR results.

	Halted bool // Set once BRK has executed.
	Ticks  int  // Instructions executed since reset.
	Cycles int  // Base cycles consumed since reset.

	jumped bool // Set by a handler that changed Pc.
}

// NewCpu creates a new CPU, with its own memory, using an opcode table.
func NewCpu(table *Table) (cpu *Cpu) {
	mem := &memory.Memory{}
	cpu = &Cpu{
		Table:       table,
		Memory:      mem,
		Status:      FLAGS_RESET,
		Stack:       Stack{Memory: mem},
		Base:        PROGRAM_BASE,
		LogicTarget: REGISTER_A,
	}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{"pc", "a", "x", "y", "sp", "flags", "ticks", "cycles"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%04X", cpu.Pc)
		case "a":
			strval = fmt.Sprintf("%02X", cpu.A)
		case "x":
			strval = fmt.Sprintf("%02X", cpu.X)
		case "y":
			strval = fmt.Sprintf("%02X", cpu.Y)
		case "sp":
			strval = fmt.Sprintf("%02X", cpu.Stack.Pointer)
		case "flags":
			strval = cpu.Status.String()
		case "ticks":
			strval = fmt.Sprintf("%d", cpu.Ticks)
		case "cycles":
			strval = fmt.Sprintf("%d", cpu.Cycles)
		}
		text += fmt.Sprintf("% 6s: %v\n", reg, strval)
	}

	return
}

// Reset the CPU state.
// - Clears the registers.
// - Sets the status to FLAGS_RESET, and the stack pointer to STACK_RESET.
// - Zeros statistics counters.
// - Loads the program counter from the reset vector.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.A = 0
	cpu.X = 0
	cpu.Y = 0
	cpu.Status = FLAGS_RESET
	cpu.Stack.Reset()
	cpu.Pc = cpu.Memory.ReadWord(RESET_VECTOR)
	cpu.Halted = false
	cpu.Ticks = 0
	cpu.Cycles = 0

	if cpu.Verbose {
		log.Printf("cpu: start at $%04x", cpu.Pc)
	}
}

// Load copies a program to the load address, and points the reset
// vector at it.
func (cpu *Cpu) Load(program []byte) (err error) {
	err = cpu.Memory.Load(cpu.Base, program)
	if err != nil {
		return
	}

	cpu.Memory.WriteWord(RESET_VECTOR, cpu.Base)

	return
}

// LoadAndRun loads a program, resets the CPU and runs until BRK.
func (cpu *Cpu) LoadAndRun(program []byte) (err error) {
	err = cpu.Load(program)
	if err != nil {
		return
	}

	cpu.Reset()

	return cpu.Run()
}

// Run executes instructions until BRK, or an error.
func (cpu *Cpu) Run() (err error) {
	return cpu.RunWithHook(nil)
}

// RunWithHook executes instructions until BRK, calling hook before each one.
func (cpu *Cpu) RunWithHook(hook StepHook) (err error) {
	for !cpu.Halted {
		if hook != nil {
			err = hook(cpu)
			if err != nil {
				return
			}
		}

		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Tick executes a single instruction.
// On error the program counter is left at the faulting opcode.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	pc := cpu.Pc
	code := cpu.Memory.Read(pc)
	op := cpu.Table.Lookup(code)
	if op == nil {
		err = ErrOpcode(code)
		return
	}

	if cpu.Verbose {
		text, _ := Disassemble(cpu.Table, cpu.Memory, pc)
		log.Printf("%04x: %v", pc, text)
	}

	cpu.Pc++
	cpu.jumped = false

	err = handlers[op.Instruction](cpu, op.Mode)
	if err != nil {
		cpu.Pc = pc
		return
	}

	if !cpu.jumped {
		cpu.Pc += uint16(op.OperandLength())
	}

	cpu.Ticks++
	cpu.Cycles += int(op.Cycles)

	return
}

// jump transfers control; the operand bytes are not skipped.
func (cpu *Cpu) jump(addr uint16) {
	cpu.Pc = addr
	cpu.jumped = true
}

// updateZeroNegative sets the zero and negative flags from a result.
func (cpu *Cpu) updateZeroNegative(result uint8) {
	cpu.Status.Set(FLAG_ZERO, result == 0)
	cpu.Status.Set(FLAG_NEGATIVE, result&0x80 != 0)
}

// setRegister stores a value in a register, and updates zero and negative.
func (cpu *Cpu) setRegister(reg Register, value uint8) {
	switch reg {
	case REGISTER_X:
		cpu.X = value
	case REGISTER_Y:
		cpu.Y = value
	default:
		cpu.A = value
	}
	cpu.updateZeroNegative(value)
}
