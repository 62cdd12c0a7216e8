package cpu

// OperandAddress returns the effective address of the operand of the
// current instruction. The program counter must point at the first
// operand byte, and is not modified.
//
// Zero page and indirect pointer arithmetic wraps within page zero;
// absolute indexed arithmetic wraps at the top of memory.
func (cpu *Cpu) OperandAddress(mode AddressingMode) (addr uint16, err error) {
	mem := cpu.Memory
	pc := cpu.Pc

	switch mode {
	case IMMEDIATE:
		addr = pc
	case ZERO_PAGE:
		addr = uint16(mem.Read(pc))
	case ZERO_PAGE_X:
		addr = uint16(mem.Read(pc) + cpu.X)
	case ZERO_PAGE_Y:
		addr = uint16(mem.Read(pc) + cpu.Y)
	case ABSOLUTE:
		addr = mem.ReadWord(pc)
	case ABSOLUTE_X:
		addr = mem.ReadWord(pc) + uint16(cpu.X)
	case ABSOLUTE_Y:
		addr = mem.ReadWord(pc) + uint16(cpu.Y)
	case INDIRECT_X:
		addr = cpu.zeroPageWord(mem.Read(pc) + cpu.X)
	case INDIRECT_Y:
		addr = cpu.zeroPageWord(mem.Read(pc)) + uint16(cpu.Y)
	default:
		err = &ErrAddressingMode{Mode: mode}
	}

	return
}

// zeroPageWord reads a little endian pointer from page zero. The high
// byte is fetched from ptr+1, wrapping within page zero.
func (cpu *Cpu) zeroPageWord(ptr byte) uint16 {
	lo := uint16(cpu.Memory.Read(uint16(ptr)))
	hi := uint16(cpu.Memory.Read(uint16(ptr + 1)))
	return (hi << 8) | lo
}
