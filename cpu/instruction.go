package cpu

import (
	"log"
)

// handler executes one instruction. On entry the program counter points
// at the first operand byte.
type handler func(cpu *Cpu, mode AddressingMode) error

var handlers = [INSTRUCTION_COUNT]handler{
	ADC:          (*Cpu).adc,
	AND:          (*Cpu).and,
	ASL:          (*Cpu).asl,
	BCC:          (*Cpu).bcc,
	BCS:          (*Cpu).bcs,
	BEQ:          (*Cpu).beq,
	BIT:          (*Cpu).bit,
	BMI:          (*Cpu).bmi,
	BNE:          (*Cpu).bne,
	BPL:          (*Cpu).bpl,
	BRK:          (*Cpu).brk,
	BVC:          (*Cpu).bvc,
	BVS:          (*Cpu).bvs,
	CLC:          (*Cpu).clc,
	CLD:          (*Cpu).cld,
	CLI:          (*Cpu).cli,
	CLV:          (*Cpu).clv,
	CMP:          (*Cpu).cmp,
	CPX:          (*Cpu).cpx,
	CPY:          (*Cpu).cpy,
	DEC:          (*Cpu).dec,
	DEX:          (*Cpu).dex,
	DEY:          (*Cpu).dey,
	EOR:          (*Cpu).eor,
	INC:          (*Cpu).inc,
	INX:          (*Cpu).inx,
	INY:          (*Cpu).iny,
	JMP:          (*Cpu).jmp,
	JMP_INDIRECT: (*Cpu).jmpIndirect,
	JSR:          (*Cpu).jsr,
	LDA:          (*Cpu).lda,
	LDX:          (*Cpu).ldx,
	LDY:          (*Cpu).ldy,
	LSR:          (*Cpu).lsr,
	NOP:          (*Cpu).nop,
	ORA:          (*Cpu).ora,
	PHA:          (*Cpu).pha,
	PHP:          (*Cpu).php,
	PLA:          (*Cpu).pla,
	PLP:          (*Cpu).plp,
	ROL:          (*Cpu).rol,
	ROR:          (*Cpu).ror,
	RTI:          (*Cpu).rti,
	RTS:          (*Cpu).rts,
	SBC:          (*Cpu).sbc,
	SEC:          (*Cpu).sec,
	SED:          (*Cpu).sed,
	SEI:          (*Cpu).sei,
	STA:          (*Cpu).sta,
	STX:          (*Cpu).stx,
	STY:          (*Cpu).sty,
	TAX:          (*Cpu).tax,
	TAY:          (*Cpu).tay,
	TSX:          (*Cpu).tsx,
	TXA:          (*Cpu).txa,
	TXS:          (*Cpu).txs,
	TYA:          (*Cpu).tya,
}

// operand reads the byte the addressing mode refers to.
func (cpu *Cpu) operand(mode AddressingMode) (value uint8, err error) {
	addr, err := cpu.OperandAddress(mode)
	if err != nil {
		return
	}
	value = cpu.Memory.Read(addr)
	return
}

// load

func (cpu *Cpu) load(reg Register, mode AddressingMode) (err error) {
	value, err := cpu.operand(mode)
	if err != nil {
		return
	}
	cpu.setRegister(reg, value)
	return
}

func (cpu *Cpu) lda(mode AddressingMode) error { return cpu.load(REGISTER_A, mode) }
func (cpu *Cpu) ldx(mode AddressingMode) error { return cpu.load(REGISTER_X, mode) }
func (cpu *Cpu) ldy(mode AddressingMode) error { return cpu.load(REGISTER_Y, mode) }

// store

func (cpu *Cpu) store(value uint8, mode AddressingMode) (err error) {
	addr, err := cpu.OperandAddress(mode)
	if err != nil {
		return
	}
	cpu.Memory.Write(addr, value)
	return
}

func (cpu *Cpu) sta(mode AddressingMode) error { return cpu.store(cpu.A, mode) }
func (cpu *Cpu) stx(mode AddressingMode) error { return cpu.store(cpu.X, mode) }
func (cpu *Cpu) sty(mode AddressingMode) error { return cpu.store(cpu.Y, mode) }

// register transfers

func (cpu *Cpu) tax(mode AddressingMode) error { cpu.setRegister(REGISTER_X, cpu.A); return nil }
func (cpu *Cpu) tay(mode AddressingMode) error { cpu.setRegister(REGISTER_Y, cpu.A); return nil }
func (cpu *Cpu) txa(mode AddressingMode) error { cpu.setRegister(REGISTER_A, cpu.X); return nil }
func (cpu *Cpu) tya(mode AddressingMode) error { cpu.setRegister(REGISTER_A, cpu.Y); return nil }

func (cpu *Cpu) tsx(mode AddressingMode) error {
	cpu.setRegister(REGISTER_X, cpu.Stack.Pointer)
	return nil
}

// txs does not affect the flags.
func (cpu *Cpu) txs(mode AddressingMode) error {
	cpu.Stack.Pointer = cpu.X
	return nil
}

// increment and decrement

func (cpu *Cpu) inx(mode AddressingMode) error { cpu.setRegister(REGISTER_X, cpu.X+1); return nil }
func (cpu *Cpu) iny(mode AddressingMode) error { cpu.setRegister(REGISTER_Y, cpu.Y+1); return nil }
func (cpu *Cpu) dex(mode AddressingMode) error { cpu.setRegister(REGISTER_X, cpu.X-1); return nil }
func (cpu *Cpu) dey(mode AddressingMode) error { cpu.setRegister(REGISTER_Y, cpu.Y-1); return nil }

// modify applies op to the byte at the operand address, writes it back
// and updates zero and negative from the result.
func (cpu *Cpu) modify(mode AddressingMode, op func(value uint8) uint8) (err error) {
	addr, err := cpu.OperandAddress(mode)
	if err != nil {
		return
	}
	result := op(cpu.Memory.Read(addr))
	cpu.Memory.Write(addr, result)
	cpu.updateZeroNegative(result)
	return
}

func (cpu *Cpu) inc(mode AddressingMode) error {
	return cpu.modify(mode, func(value uint8) uint8 { return value + 1 })
}

func (cpu *Cpu) dec(mode AddressingMode) error {
	return cpu.modify(mode, func(value uint8) uint8 { return value - 1 })
}

// logical

func (cpu *Cpu) logic(mode AddressingMode, op func(a, value uint8) uint8) (err error) {
	value, err := cpu.operand(mode)
	if err != nil {
		return
	}
	cpu.setRegister(cpu.LogicTarget, op(cpu.A, value))
	return
}

func (cpu *Cpu) and(mode AddressingMode) error {
	return cpu.logic(mode, func(a, value uint8) uint8 { return a & value })
}

func (cpu *Cpu) ora(mode AddressingMode) error {
	return cpu.logic(mode, func(a, value uint8) uint8 { return a | value })
}

func (cpu *Cpu) eor(mode AddressingMode) error {
	return cpu.logic(mode, func(a, value uint8) uint8 { return a ^ value })
}

func (cpu *Cpu) bit(mode AddressingMode) (err error) {
	value, err := cpu.operand(mode)
	if err != nil {
		return
	}
	cpu.Status.Set(FLAG_ZERO, cpu.A&value == 0)
	cpu.Status.Set(FLAG_OVERFLOW, value&0x40 != 0)
	cpu.Status.Set(FLAG_NEGATIVE, value&0x80 != 0)
	return
}

// arithmetic

// addToA adds value and the carry to the accumulator. Decimal mode is
// not supported.
func (cpu *Cpu) addToA(value uint8) {
	a := cpu.A
	sum := uint16(a) + uint16(value)
	if cpu.Status.Has(FLAG_CARRY) {
		sum++
	}
	result := uint8(sum)

	cpu.Status.Set(FLAG_CARRY, sum > 0xff)
	cpu.Status.Set(FLAG_OVERFLOW, (value^result)&(result^a)&0x80 != 0)
	cpu.setRegister(REGISTER_A, result)
}

func (cpu *Cpu) adc(mode AddressingMode) (err error) {
	value, err := cpu.operand(mode)
	if err != nil {
		return
	}
	cpu.addToA(value)
	return
}

// sbc uses A - M - (1 - C) == A + ^M + C.
func (cpu *Cpu) sbc(mode AddressingMode) (err error) {
	value, err := cpu.operand(mode)
	if err != nil {
		return
	}
	cpu.addToA(^value)
	return
}

func (cpu *Cpu) compare(reg uint8, mode AddressingMode) (err error) {
	value, err := cpu.operand(mode)
	if err != nil {
		return
	}
	cpu.Status.Set(FLAG_CARRY, reg >= value)
	cpu.updateZeroNegative(reg - value)
	return
}

func (cpu *Cpu) cmp(mode AddressingMode) error { return cpu.compare(cpu.A, mode) }
func (cpu *Cpu) cpx(mode AddressingMode) error { return cpu.compare(cpu.X, mode) }
func (cpu *Cpu) cpy(mode AddressingMode) error { return cpu.compare(cpu.Y, mode) }

// shift and rotate

// shift applies op to the accumulator for NONE_ADDRESSING, or to memory
// otherwise. op returns the result and the new carry.
func (cpu *Cpu) shift(mode AddressingMode, op func(value uint8, carry bool) (uint8, bool)) (err error) {
	carry := cpu.Status.Has(FLAG_CARRY)

	if mode == NONE_ADDRESSING {
		var result uint8
		result, carry = op(cpu.A, carry)
		cpu.Status.Set(FLAG_CARRY, carry)
		cpu.setRegister(REGISTER_A, result)
		return
	}

	return cpu.modify(mode, func(value uint8) (result uint8) {
		result, carry = op(value, carry)
		cpu.Status.Set(FLAG_CARRY, carry)
		return
	})
}

func (cpu *Cpu) asl(mode AddressingMode) error {
	return cpu.shift(mode, func(value uint8, _ bool) (uint8, bool) {
		return value << 1, value&0x80 != 0
	})
}

func (cpu *Cpu) lsr(mode AddressingMode) error {
	return cpu.shift(mode, func(value uint8, _ bool) (uint8, bool) {
		return value >> 1, value&0x01 != 0
	})
}

func (cpu *Cpu) rol(mode AddressingMode) error {
	return cpu.shift(mode, func(value uint8, carry bool) (uint8, bool) {
		result := value << 1
		if carry {
			result |= 0x01
		}
		return result, value&0x80 != 0
	})
}

func (cpu *Cpu) ror(mode AddressingMode) error {
	return cpu.shift(mode, func(value uint8, carry bool) (uint8, bool) {
		result := value >> 1
		if carry {
			result |= 0x80
		}
		return result, value&0x01 != 0
	})
}

// branches

// branch reads a signed offset, relative to the next instruction.
func (cpu *Cpu) branch(taken bool) error {
	if taken {
		offset := int8(cpu.Memory.Read(cpu.Pc))
		cpu.jump(cpu.Pc + 1 + uint16(offset))
	}
	return nil
}

func (cpu *Cpu) bcc(mode AddressingMode) error { return cpu.branch(!cpu.Status.Has(FLAG_CARRY)) }
func (cpu *Cpu) bcs(mode AddressingMode) error { return cpu.branch(cpu.Status.Has(FLAG_CARRY)) }
func (cpu *Cpu) bne(mode AddressingMode) error { return cpu.branch(!cpu.Status.Has(FLAG_ZERO)) }
func (cpu *Cpu) beq(mode AddressingMode) error { return cpu.branch(cpu.Status.Has(FLAG_ZERO)) }
func (cpu *Cpu) bpl(mode AddressingMode) error { return cpu.branch(!cpu.Status.Has(FLAG_NEGATIVE)) }
func (cpu *Cpu) bmi(mode AddressingMode) error { return cpu.branch(cpu.Status.Has(FLAG_NEGATIVE)) }
func (cpu *Cpu) bvc(mode AddressingMode) error { return cpu.branch(!cpu.Status.Has(FLAG_OVERFLOW)) }
func (cpu *Cpu) bvs(mode AddressingMode) error { return cpu.branch(cpu.Status.Has(FLAG_OVERFLOW)) }

// jumps and subroutines

func (cpu *Cpu) jmp(mode AddressingMode) (err error) {
	addr, err := cpu.OperandAddress(mode)
	if err != nil {
		return
	}
	cpu.jump(addr)
	return
}

// jmpIndirect reproduces the page wrap of the pointer high byte fetch:
// JMP ($10FF) reads the high byte from $1000.
func (cpu *Cpu) jmpIndirect(mode AddressingMode) (err error) {
	ptr, err := cpu.OperandAddress(mode)
	if err != nil {
		return
	}
	lo := uint16(cpu.Memory.Read(ptr))
	hi := uint16(cpu.Memory.Read((ptr & 0xff00) | uint16(uint8(ptr)+1)))
	cpu.jump((hi << 8) | lo)
	return
}

// jsr pushes the address of its own last byte.
func (cpu *Cpu) jsr(mode AddressingMode) (err error) {
	addr, err := cpu.OperandAddress(mode)
	if err != nil {
		return
	}
	cpu.Stack.Push16(cpu.Pc + 1)
	cpu.jump(addr)
	return
}

func (cpu *Cpu) rts(mode AddressingMode) error {
	cpu.jump(cpu.Stack.Pop16() + 1)
	return nil
}

func (cpu *Cpu) rti(mode AddressingMode) error {
	cpu.pullStatus()
	cpu.jump(cpu.Stack.Pop16())
	return nil
}

// stack

func (cpu *Cpu) pha(mode AddressingMode) error {
	cpu.Stack.Push(cpu.A)
	return nil
}

// php always pushes with both break bits set.
func (cpu *Cpu) php(mode AddressingMode) error {
	cpu.Stack.Push(uint8(cpu.Status | FLAG_BREAK | FLAG_BREAK2))
	return nil
}

func (cpu *Cpu) pla(mode AddressingMode) error {
	cpu.setRegister(REGISTER_A, cpu.Stack.Pop())
	return nil
}

func (cpu *Cpu) plp(mode AddressingMode) error {
	cpu.pullStatus()
	return nil
}

func (cpu *Cpu) pullStatus() {
	cpu.Status = (Flags(cpu.Stack.Pop()) &^ FLAG_BREAK) | FLAG_BREAK2
}

// flags

func (cpu *Cpu) clc(mode AddressingMode) error { cpu.Status.Set(FLAG_CARRY, false); return nil }
func (cpu *Cpu) sec(mode AddressingMode) error { cpu.Status.Set(FLAG_CARRY, true); return nil }
func (cpu *Cpu) cld(mode AddressingMode) error { cpu.Status.Set(FLAG_DECIMAL_MODE, false); return nil }
func (cpu *Cpu) sed(mode AddressingMode) error { cpu.Status.Set(FLAG_DECIMAL_MODE, true); return nil }
func (cpu *Cpu) cli(mode AddressingMode) error {
	cpu.Status.Set(FLAG_INTERRUPT_DISABLE, false)
	return nil
}
func (cpu *Cpu) sei(mode AddressingMode) error {
	cpu.Status.Set(FLAG_INTERRUPT_DISABLE, true)
	return nil
}
func (cpu *Cpu) clv(mode AddressingMode) error { cpu.Status.Set(FLAG_OVERFLOW, false); return nil }

// misc

func (cpu *Cpu) nop(mode AddressingMode) error { return nil }

// brk halts the processor; interrupts are not emulated.
func (cpu *Cpu) brk(mode AddressingMode) error {
	cpu.Halted = true
	if cpu.Verbose {
		log.Printf("cpu: halted at $%04x", cpu.Pc-1)
	}
	return nil
}
