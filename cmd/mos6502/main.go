// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"golang.org/x/term"

	"github.com/ezrec/mos6502/cpu"
	"github.com/ezrec/mos6502/emulator"
	"github.com/ezrec/mos6502/internal"
	"github.com/ezrec/mos6502/keypad"
	"github.com/ezrec/mos6502/script"
)

func main() {
	var compile string
	var binary string
	var load string
	var legacy bool
	var limit int
	var keys bool
	var delay time.Duration
	var lua string
	var disasm bool
	var equates bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".s file to assemble and run")
	flag.StringVar(&binary, "b", "", ".bin file to run")
	flag.StringVar(&load, "l", "0x0600", "Load address")
	flag.BoolVar(&legacy, "x", false, "Legacy mode: AND, ORA and EOR write to X")
	flag.IntVar(&limit, "n", 0, "Tick limit (0 for none)")
	flag.BoolVar(&keys, "k", false, "Keypad input from the terminal")
	flag.DurationVar(&delay, "t", 0, "Delay between steps")
	flag.StringVar(&lua, "s", "", ".lua step hook script")
	flag.BoolVar(&disasm, "d", false, "Disassemble, do not execute")
	flag.BoolVar(&equates, "e", false, "List predefined equates, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	address, err := strconv.ParseUint(load, 0, 16)
	if err != nil {
		log.Fatalf("-l %v: %v", load, err)
	}

	config := emulator.DefaultConfig()
	config.LoadAddress = uint16(address)
	config.TickLimit = limit
	config.Verbose = verbose
	if legacy {
		config.LogicTarget = cpu.REGISTER_X
	}

	emu := emulator.NewEmulator(config)

	if equates {
		for key, value := range internal.Sorted2(emu.Defines()) {
			fmt.Printf("%v = %v\n", key, value)
		}
		return
	}

	switch {
	case len(compile) != 0 && len(binary) != 0:
		log.Fatalf("%v: -c and -b are exclusive", os.Args[0])
	case len(compile) != 0:
		// Assemble a new program.
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		err = emu.Assemble(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	case len(binary) != 0:
		data, err := os.ReadFile(binary)
		if err != nil {
			log.Fatalf("%v: %v", binary, err)
		}
		emu.Program = cpu.ProgramOf(config.LoadAddress, data)
	default:
		log.Fatalf("%v: one of -c or -b is required", os.Args[0])
	}

	err = emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	if disasm {
		err = emu.Listing(os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	err = run(emu, lua, keys, delay)
	switch {
	case err == nil:
	case errors.Is(err, keypad.ErrQuit), errors.Is(err, cpu.ErrStopped):
		log.Printf("stopped at $%04x", emu.Cpu.Pc)
	default:
		fmt.Print(emu.Cpu.String())
		log.Fatal(err)
	}

	fmt.Print(emu.Cpu.String())
}

// run executes the loaded program, with the requested step hooks.
func run(emu *emulator.Emulator, lua string, keys bool, delay time.Duration) (err error) {
	var hooks []cpu.StepHook

	if len(lua) != 0 {
		inf, err := os.Open(lua)
		if err != nil {
			return err
		}
		sc := script.NewScript()
		sc.Verbose = emu.Verbose
		defer sc.Close()
		err = sc.Load(lua, inf)
		inf.Close()
		if err != nil {
			return err
		}
		hooks = append(hooks, sc.Hook)
	}

	if keys {
		restore, err := rawMode(os.Stdin)
		if err != nil {
			return err
		}
		defer restore()

		kp := keypad.NewKeypad()
		kp.Verbose = emu.Verbose
		kp.Start(os.Stdin)
		defer kp.Stop()
		hooks = append(hooks, kp.Hook)
	}

	if delay > 0 {
		hooks = append(hooks, func(c *cpu.Cpu) error {
			time.Sleep(delay)
			return nil
		})
	}

	return emu.Run(emulator.Hooks(hooks...))
}

// rawMode puts a terminal input into raw mode, so keys are delivered
// without line buffering. Inputs that are not terminals are left as is.
func rawMode(input *os.File) (restore func(), err error) {
	fd := int(input.Fd())
	restore = func() {}

	if !term.IsTerminal(fd) {
		return
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return
	}

	restore = func() {
		_ = term.Restore(fd, state)
	}

	return
}
