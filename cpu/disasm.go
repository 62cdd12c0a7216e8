package cpu

import (
	"fmt"

	"github.com/ezrec/mos6502/memory"
)

// Disassemble formats the instruction at addr in assembler syntax, and
// returns its length in bytes. Bytes that are not opcodes are shown as
// data.
func Disassemble(table *Table, mem *memory.Memory, addr uint16) (text string, length int) {
	code := mem.Read(addr)
	op := table.Lookup(code)
	if op == nil {
		text = fmt.Sprintf(".byte $%02x", code)
		length = 1
		return
	}

	length = int(op.Length)
	name := op.Mnemonic()
	b := mem.Read(addr + 1)
	w := mem.ReadWord(addr + 1)

	switch op.Mode {
	case IMMEDIATE:
		text = fmt.Sprintf("%v #$%02x", name, b)
	case ZERO_PAGE:
		text = fmt.Sprintf("%v $%02x", name, b)
	case ZERO_PAGE_X:
		text = fmt.Sprintf("%v $%02x,X", name, b)
	case ZERO_PAGE_Y:
		text = fmt.Sprintf("%v $%02x,Y", name, b)
	case ABSOLUTE:
		if op.Instruction == JMP_INDIRECT {
			text = fmt.Sprintf("%v ($%04x)", name, w)
		} else {
			text = fmt.Sprintf("%v $%04x", name, w)
		}
	case ABSOLUTE_X:
		text = fmt.Sprintf("%v $%04x,X", name, w)
	case ABSOLUTE_Y:
		text = fmt.Sprintf("%v $%04x,Y", name, w)
	case INDIRECT_X:
		text = fmt.Sprintf("%v ($%02x,X)", name, b)
	case INDIRECT_Y:
		text = fmt.Sprintf("%v ($%02x),Y", name, b)
	default:
		switch {
		case op.Instruction.Branch():
			target := addr + 2 + uint16(int8(b))
			text = fmt.Sprintf("%v $%04x", name, target)
		case op.Length == 1 && accumulatorForm(op.Instruction):
			text = fmt.Sprintf("%v A", name)
		default:
			text = name
		}
	}

	return
}

// accumulatorForm returns true for the shifts and rotates, whose
// NONE_ADDRESSING form operates on the accumulator.
func accumulatorForm(ins Instruction) bool {
	switch ins {
	case ASL, LSR, ROL, ROR:
		return true
	}
	return false
}
