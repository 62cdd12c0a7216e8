// Package script runs Lua step hooks against a 6502 CPU.
//
// A script may define a global function step(), called before each
// instruction. The functions below are available to the script:
//
//	peek(addr)          - read a byte of memory
//	poke(addr, value)   - write a byte of memory
//	reg(name)           - read a register: a, x, y, pc, sp or p
//	setreg(name, value) - write a register
//	disasm(addr)        - disassemble, returning the text and length
//	stop()              - stop the run after the current step() returns
//
// Returning false from step() also stops the run.
package script

import (
	"errors"
	"io"
	"log"

	lua "github.com/yuin/gopher-lua"

	"github.com/ezrec/mos6502/cpu"
)

// Script is a Lua state bound to the CPU it is hooked to.
type Script struct {
	Verbose bool // If set, logs script loads and stops.

	state   *lua.LState
	cpu     *cpu.Cpu
	stopped bool
}

// NewScript creates a Lua state with the CPU access functions defined.
func NewScript() (sc *Script) {
	sc = &Script{
		state: lua.NewState(),
	}

	for name, fn := range map[string]lua.LGFunction{
		"peek":   sc.peek,
		"poke":   sc.poke,
		"reg":    sc.reg,
		"setreg": sc.setreg,
		"disasm": sc.disasm,
		"stop":   sc.stop,
	} {
		sc.state.SetGlobal(name, sc.state.NewFunction(fn))
	}

	return
}

// Close releases the Lua state.
func (sc *Script) Close() {
	sc.state.Close()
}

// Load runs a chunk of Lua source, typically defining step().
func (sc *Script) Load(name string, input io.Reader) (err error) {
	if sc.Verbose {
		log.Printf("script: load %v", name)
	}

	fn, err := sc.state.Load(input, name)
	if err != nil {
		err = errors.Join(ErrScript, err)
		return
	}

	sc.state.Push(fn)
	err = sc.state.PCall(0, lua.MultRet, nil)
	if err != nil {
		err = errors.Join(ErrScript, err)
		return
	}

	return
}

// Hook calls step() once per CPU step.
func (sc *Script) Hook(c *cpu.Cpu) (err error) {
	sc.cpu = c

	step, ok := sc.state.GetGlobal("step").(*lua.LFunction)
	if !ok {
		return
	}

	err = sc.state.CallByParam(lua.P{Fn: step, NRet: 1, Protect: true})
	if err != nil {
		err = errors.Join(ErrScript, err)
		return
	}

	rc := sc.state.Get(-1)
	sc.state.Pop(1)

	if rc == lua.LFalse || sc.stopped {
		if sc.Verbose {
			log.Printf("script: stop at $%04x", c.Pc)
		}
		sc.stopped = false
		err = cpu.ErrStopped
	}

	return
}

// checkCpu raises a Lua error when no CPU is bound yet.
func (sc *Script) checkCpu(L *lua.LState) *cpu.Cpu {
	if sc.cpu == nil {
		L.RaiseError("%v", f("no cpu"))
	}
	return sc.cpu
}

func (sc *Script) peek(L *lua.LState) int {
	addr := L.CheckInt(1)
	c := sc.checkCpu(L)
	L.Push(lua.LNumber(c.Memory.Read(uint16(addr))))
	return 1
}

func (sc *Script) poke(L *lua.LState) int {
	addr := L.CheckInt(1)
	value := L.CheckInt(2)
	c := sc.checkCpu(L)
	c.Memory.Write(uint16(addr), byte(value))
	return 0
}

func (sc *Script) reg(L *lua.LState) int {
	name := L.CheckString(1)
	c := sc.checkCpu(L)

	var value int
	switch name {
	case "a":
		value = int(c.A)
	case "x":
		value = int(c.X)
	case "y":
		value = int(c.Y)
	case "pc":
		value = int(c.Pc)
	case "sp":
		value = int(c.Stack.Pointer)
	case "p":
		value = int(c.Status)
	default:
		L.ArgError(1, ErrRegister.Error())
	}

	L.Push(lua.LNumber(value))
	return 1
}

func (sc *Script) setreg(L *lua.LState) int {
	name := L.CheckString(1)
	value := L.CheckInt(2)
	c := sc.checkCpu(L)

	switch name {
	case "a":
		c.A = uint8(value)
	case "x":
		c.X = uint8(value)
	case "y":
		c.Y = uint8(value)
	case "pc":
		c.Pc = uint16(value)
	case "sp":
		c.Stack.Pointer = uint8(value)
	case "p":
		c.Status = cpu.Flags(value)
	default:
		L.ArgError(1, ErrRegister.Error())
	}

	return 0
}

func (sc *Script) disasm(L *lua.LState) int {
	addr := L.CheckInt(1)
	c := sc.checkCpu(L)

	text, length := cpu.Disassemble(c.Table, c.Memory, uint16(addr))
	L.Push(lua.LString(text))
	L.Push(lua.LNumber(length))
	return 2
}

func (sc *Script) stop(L *lua.LState) int {
	sc.stopped = true
	return 0
}
