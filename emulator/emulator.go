// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/ezrec/mos6502/cpu"
	"github.com/ezrec/mos6502/internal"
	"github.com/ezrec/mos6502/keypad"
)

// Config selects the variant of the machine being emulated.
type Config struct {
	LoadAddress uint16       // Program load address, and assembler origin; zero is a valid address.
	LogicTarget cpu.Register // Destination of AND, ORA and EOR.
	TickLimit   int          // Maximum instructions per reset; 0 is unlimited.
	Verbose     bool         // If set, enables verbose logging.
}

// DefaultConfig returns the configuration of a standard 6502.
func DefaultConfig() Config {
	return Config{
		LoadAddress: cpu.PROGRAM_BASE,
		LogicTarget: cpu.REGISTER_A,
	}
}

// Emulator state. CPU + program listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.
	Config   Config       // Configuration used to create the emulator.
}

// NewEmulator creates a new emulator.
func NewEmulator(config Config) (emu *Emulator) {
	emu = &Emulator{
		Verbose: config.Verbose,
		Cpu:     cpu.NewCpu(cpu.DefaultTable()),
		Program: cpu.ProgramOf(config.LoadAddress, nil),
		Config:  config,
	}

	emu.Cpu.Base = config.LoadAddress
	emu.Cpu.LogicTarget = config.LogicTarget

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	defines := map[string]string{
		"LOAD_ADDRESS": fmt.Sprintf("0x%04x", emu.Config.LoadAddress),
		"KEY_ADDRESS":  fmt.Sprintf("0x%04x", keypad.ADDRESS),
	}
	return internal.Concat2(maps.All(defines), emu.Cpu.Defines())
}

// Assemble parses source text, and makes it the current program.
func (emu *Emulator) Assemble(input io.Reader) (err error) {
	asm := &cpu.Assembler{
		Verbose:   emu.Verbose,
		Table:     emu.Cpu.Table,
		Origin:    emu.Config.LoadAddress,
		OriginSet: true,
	}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}

	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	emu.Program = prog

	return
}

// Reset clears memory, loads the program, and resets the CPU.
// The reset vector points at the program origin, unless the program
// supplies its own.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	mem := emu.Cpu.Memory
	mem.Reset()

	err = mem.Load(emu.Program.Origin, emu.Program.Binary())
	if err != nil {
		return
	}

	if emu.Program.Debug(cpu.RESET_VECTOR).Statement == nil {
		mem.WriteWord(cpu.RESET_VECTOR, emu.Program.Origin)
	}

	emu.Cpu.Reset()

	return
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Statement == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if emu.Cpu.Halted {
		done = true
		return
	}

	pc := emu.Cpu.Pc
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Address: pc, LineNo: lineno, Err: err}
		}
	}()

	if emu.Config.TickLimit > 0 && emu.Cpu.Ticks >= emu.Config.TickLimit {
		err = ErrTickLimit
		return
	}

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.Halted

	return
}

// Run ticks until BRK, or an error. The hook, if not nil, is called
// before each tick; its errors are returned unwrapped.
func (emu *Emulator) Run(hook cpu.StepHook) (err error) {
	for {
		if hook != nil {
			err = hook(emu.Cpu)
			if err != nil {
				return
			}
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}
}

// LoadAndRun loads a binary at the configured load address, then runs it.
func (emu *Emulator) LoadAndRun(program []byte) (err error) {
	emu.Program = cpu.ProgramOf(emu.Config.LoadAddress, program)

	err = emu.Reset()
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: running %d bytes at $%04x", len(program), emu.Config.LoadAddress)
	}

	return emu.Run(nil)
}

// Listing writes the disassembly of the program loaded by Reset.
func (emu *Emulator) Listing(w io.Writer) (err error) {
	mem := emu.Cpu.Memory
	end := emu.Program.End()

	for addr := int(emu.Program.Origin); addr < end; {
		text, length := cpu.Disassemble(emu.Cpu.Table, mem, uint16(addr))

		var code []string
		for _, b := range mem.Slice(uint16(addr), length) {
			code = append(code, fmt.Sprintf("%02x", b))
		}

		line := ""
		dbg := emu.Program.Debug(uint16(addr))
		if dbg.Statement != nil && dbg.LineNo > 0 {
			line = fmt.Sprintf(" ; line %d", dbg.LineNo)
		}

		_, err = fmt.Fprintf(w, "%04x: %-8s  %v%v\n", addr, strings.Join(code, " "), text, line)
		if err != nil {
			return
		}

		addr += length
	}

	return
}

// Hooks chains step hooks; each is called in order until one fails.
func Hooks(hooks ...cpu.StepHook) cpu.StepHook {
	return func(c *cpu.Cpu) (err error) {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			err = hook(c)
			if err != nil {
				return
			}
		}
		return
	}
}
