package cpu

import (
	"fmt"
	"iter"
)

// Instruction identifies the handler that executes an opcode.
type Instruction int

//go:generate go tool stringer -linecomment -type=Instruction
const (
	ADC = Instruction(iota) // ADC
	AND                     // AND
	ASL                     // ASL
	BCC                     // BCC
	BCS                     // BCS
	BEQ                     // BEQ
	BIT                     // BIT
	BMI                     // BMI
	BNE                     // BNE
	BPL                     // BPL
	BRK                     // BRK
	BVC                     // BVC
	BVS                     // BVS
	CLC                     // CLC
	CLD                     // CLD
	CLI                     // CLI
	CLV                     // CLV
	CMP                     // CMP
	CPX                     // CPX
	CPY                     // CPY
	DEC                     // DEC
	DEX                     // DEX
	DEY                     // DEY
	EOR                     // EOR
	INC                     // INC
	INX                     // INX
	INY                     // INY
	JMP                     // JMP
	JMP_INDIRECT            // JMP
	JSR                     // JSR
	LDA                     // LDA
	LDX                     // LDX
	LDY                     // LDY
	LSR                     // LSR
	NOP                     // NOP
	ORA                     // ORA
	PHA                     // PHA
	PHP                     // PHP
	PLA                     // PLA
	PLP                     // PLP
	ROL                     // ROL
	ROR                     // ROR
	RTI                     // RTI
	RTS                     // RTS
	SBC                     // SBC
	SEC                     // SEC
	SED                     // SED
	SEI                     // SEI
	STA                     // STA
	STX                     // STX
	STY                     // STY
	TAX                     // TAX
	TAY                     // TAY
	TSX                     // TSX
	TXA                     // TXA
	TXS                     // TXS
	TYA                     // TYA

	INSTRUCTION_COUNT = int(iota)
)

// Branch returns true for the conditional relative branches.
func (ins Instruction) Branch() bool {
	switch ins {
	case BCC, BCS, BEQ, BMI, BNE, BPL, BVC, BVS:
		return true
	}
	return false
}

// Opcode describes a single opcode byte.
type Opcode struct {
	Code        byte           // Opcode byte.
	Instruction Instruction    // Handler for the opcode.
	Length      byte           // Instruction length, including the opcode byte.
	Cycles      byte           // Base cycle count; page crossing penalties are not included.
	Mode        AddressingMode // Operand addressing mode.
}

// Mnemonic returns the assembler mnemonic.
func (op *Opcode) Mnemonic() string {
	return op.Instruction.String()
}

// OperandLength returns the number of operand bytes following the opcode.
func (op *Opcode) OperandLength() byte {
	return op.Length - 1
}

func (op *Opcode) String() string {
	return fmt.Sprintf("$%02x %v %v", op.Code, op.Mnemonic(), op.Mode)
}

// Opcodes is the documented 6502 instruction set.
var Opcodes = []Opcode{
	{0x69, ADC, 2, 2, IMMEDIATE},
	{0x65, ADC, 2, 3, ZERO_PAGE},
	{0x75, ADC, 2, 4, ZERO_PAGE_X},
	{0x6d, ADC, 3, 4, ABSOLUTE},
	{0x7d, ADC, 3, 4, ABSOLUTE_X}, // +1 if page crossed
	{0x79, ADC, 3, 4, ABSOLUTE_Y}, // +1 if page crossed
	{0x61, ADC, 2, 6, INDIRECT_X},
	{0x71, ADC, 2, 5, INDIRECT_Y}, // +1 if page crossed

	{0x29, AND, 2, 2, IMMEDIATE},
	{0x25, AND, 2, 3, ZERO_PAGE},
	{0x35, AND, 2, 4, ZERO_PAGE_X},
	{0x2d, AND, 3, 4, ABSOLUTE},
	{0x3d, AND, 3, 4, ABSOLUTE_X}, // +1 if page crossed
	{0x39, AND, 3, 4, ABSOLUTE_Y}, // +1 if page crossed
	{0x21, AND, 2, 6, INDIRECT_X},
	{0x31, AND, 2, 5, INDIRECT_Y}, // +1 if page crossed

	{0x0a, ASL, 1, 2, NONE_ADDRESSING},
	{0x06, ASL, 2, 5, ZERO_PAGE},
	{0x16, ASL, 2, 6, ZERO_PAGE_X},
	{0x0e, ASL, 3, 6, ABSOLUTE},
	{0x1e, ASL, 3, 7, ABSOLUTE_X},

	// Branches: +1 if taken, +2 if taken to another page.
	{0x90, BCC, 2, 2, NONE_ADDRESSING},
	{0xb0, BCS, 2, 2, NONE_ADDRESSING},
	{0xf0, BEQ, 2, 2, NONE_ADDRESSING},
	{0x30, BMI, 2, 2, NONE_ADDRESSING},
	{0xd0, BNE, 2, 2, NONE_ADDRESSING},
	{0x10, BPL, 2, 2, NONE_ADDRESSING},
	{0x50, BVC, 2, 2, NONE_ADDRESSING},
	{0x70, BVS, 2, 2, NONE_ADDRESSING},

	{0x24, BIT, 2, 3, ZERO_PAGE},
	{0x2c, BIT, 3, 4, ABSOLUTE},

	{0x00, BRK, 1, 7, NONE_ADDRESSING},

	{0x18, CLC, 1, 2, NONE_ADDRESSING},
	{0xd8, CLD, 1, 2, NONE_ADDRESSING},
	{0x58, CLI, 1, 2, NONE_ADDRESSING},
	{0xb8, CLV, 1, 2, NONE_ADDRESSING},

	{0xc9, CMP, 2, 2, IMMEDIATE},
	{0xc5, CMP, 2, 3, ZERO_PAGE},
	{0xd5, CMP, 2, 4, ZERO_PAGE_X},
	{0xcd, CMP, 3, 4, ABSOLUTE},
	{0xdd, CMP, 3, 4, ABSOLUTE_X}, // +1 if page crossed
	{0xd9, CMP, 3, 4, ABSOLUTE_Y}, // +1 if page crossed
	{0xc1, CMP, 2, 6, INDIRECT_X},
	{0xd1, CMP, 2, 5, INDIRECT_Y}, // +1 if page crossed

	{0xe0, CPX, 2, 2, IMMEDIATE},
	{0xe4, CPX, 2, 3, ZERO_PAGE},
	{0xec, CPX, 3, 4, ABSOLUTE},

	{0xc0, CPY, 2, 2, IMMEDIATE},
	{0xc4, CPY, 2, 3, ZERO_PAGE},
	{0xcc, CPY, 3, 4, ABSOLUTE},

	{0xc6, DEC, 2, 5, ZERO_PAGE},
	{0xd6, DEC, 2, 6, ZERO_PAGE_X},
	{0xce, DEC, 3, 6, ABSOLUTE},
	{0xde, DEC, 3, 7, ABSOLUTE_X},

	{0xca, DEX, 1, 2, NONE_ADDRESSING},
	{0x88, DEY, 1, 2, NONE_ADDRESSING},

	{0x49, EOR, 2, 2, IMMEDIATE},
	{0x45, EOR, 2, 3, ZERO_PAGE},
	{0x55, EOR, 2, 4, ZERO_PAGE_X},
	{0x4d, EOR, 3, 4, ABSOLUTE},
	{0x5d, EOR, 3, 4, ABSOLUTE_X}, // +1 if page crossed
	{0x59, EOR, 3, 4, ABSOLUTE_Y}, // +1 if page crossed
	{0x41, EOR, 2, 6, INDIRECT_X},
	{0x51, EOR, 2, 5, INDIRECT_Y}, // +1 if page crossed

	{0xe6, INC, 2, 5, ZERO_PAGE},
	{0xf6, INC, 2, 6, ZERO_PAGE_X},
	{0xee, INC, 3, 6, ABSOLUTE},
	{0xfe, INC, 3, 7, ABSOLUTE_X},

	{0xe8, INX, 1, 2, NONE_ADDRESSING},
	{0xc8, INY, 1, 2, NONE_ADDRESSING},

	{0x4c, JMP, 3, 3, ABSOLUTE},
	{0x6c, JMP_INDIRECT, 3, 5, ABSOLUTE},
	{0x20, JSR, 3, 6, ABSOLUTE},

	{0xa9, LDA, 2, 2, IMMEDIATE},
	{0xa5, LDA, 2, 3, ZERO_PAGE},
	{0xb5, LDA, 2, 4, ZERO_PAGE_X},
	{0xad, LDA, 3, 4, ABSOLUTE},
	{0xbd, LDA, 3, 4, ABSOLUTE_X}, // +1 if page crossed
	{0xb9, LDA, 3, 4, ABSOLUTE_Y}, // +1 if page crossed
	{0xa1, LDA, 2, 6, INDIRECT_X},
	{0xb1, LDA, 2, 5, INDIRECT_Y}, // +1 if page crossed

	{0xa2, LDX, 2, 2, IMMEDIATE},
	{0xa6, LDX, 2, 3, ZERO_PAGE},
	{0xb6, LDX, 2, 4, ZERO_PAGE_Y},
	{0xae, LDX, 3, 4, ABSOLUTE},
	{0xbe, LDX, 3, 4, ABSOLUTE_Y}, // +1 if page crossed

	{0xa0, LDY, 2, 2, IMMEDIATE},
	{0xa4, LDY, 2, 3, ZERO_PAGE},
	{0xb4, LDY, 2, 4, ZERO_PAGE_X},
	{0xac, LDY, 3, 4, ABSOLUTE},
	{0xbc, LDY, 3, 4, ABSOLUTE_X}, // +1 if page crossed

	{0x4a, LSR, 1, 2, NONE_ADDRESSING},
	{0x46, LSR, 2, 5, ZERO_PAGE},
	{0x56, LSR, 2, 6, ZERO_PAGE_X},
	{0x4e, LSR, 3, 6, ABSOLUTE},
	{0x5e, LSR, 3, 7, ABSOLUTE_X},

	{0xea, NOP, 1, 2, NONE_ADDRESSING},

	{0x09, ORA, 2, 2, IMMEDIATE},
	{0x05, ORA, 2, 3, ZERO_PAGE},
	{0x15, ORA, 2, 4, ZERO_PAGE_X},
	{0x0d, ORA, 3, 4, ABSOLUTE},
	{0x1d, ORA, 3, 4, ABSOLUTE_X}, // +1 if page crossed
	{0x19, ORA, 3, 4, ABSOLUTE_Y}, // +1 if page crossed
	{0x01, ORA, 2, 6, INDIRECT_X},
	{0x11, ORA, 2, 5, INDIRECT_Y}, // +1 if page crossed

	{0x48, PHA, 1, 3, NONE_ADDRESSING},
	{0x08, PHP, 1, 3, NONE_ADDRESSING},
	{0x68, PLA, 1, 4, NONE_ADDRESSING},
	{0x28, PLP, 1, 4, NONE_ADDRESSING},

	{0x2a, ROL, 1, 2, NONE_ADDRESSING},
	{0x26, ROL, 2, 5, ZERO_PAGE},
	{0x36, ROL, 2, 6, ZERO_PAGE_X},
	{0x2e, ROL, 3, 6, ABSOLUTE},
	{0x3e, ROL, 3, 7, ABSOLUTE_X},

	{0x6a, ROR, 1, 2, NONE_ADDRESSING},
	{0x66, ROR, 2, 5, ZERO_PAGE},
	{0x76, ROR, 2, 6, ZERO_PAGE_X},
	{0x6e, ROR, 3, 6, ABSOLUTE},
	{0x7e, ROR, 3, 7, ABSOLUTE_X},

	{0x40, RTI, 1, 6, NONE_ADDRESSING},
	{0x60, RTS, 1, 6, NONE_ADDRESSING},

	{0xe9, SBC, 2, 2, IMMEDIATE},
	{0xe5, SBC, 2, 3, ZERO_PAGE},
	{0xf5, SBC, 2, 4, ZERO_PAGE_X},
	{0xed, SBC, 3, 4, ABSOLUTE},
	{0xfd, SBC, 3, 4, ABSOLUTE_X}, // +1 if page crossed
	{0xf9, SBC, 3, 4, ABSOLUTE_Y}, // +1 if page crossed
	{0xe1, SBC, 2, 6, INDIRECT_X},
	{0xf1, SBC, 2, 5, INDIRECT_Y}, // +1 if page crossed

	{0x38, SEC, 1, 2, NONE_ADDRESSING},
	{0xf8, SED, 1, 2, NONE_ADDRESSING},
	{0x78, SEI, 1, 2, NONE_ADDRESSING},

	{0x85, STA, 2, 3, ZERO_PAGE},
	{0x95, STA, 2, 4, ZERO_PAGE_X},
	{0x8d, STA, 3, 4, ABSOLUTE},
	{0x9d, STA, 3, 5, ABSOLUTE_X},
	{0x99, STA, 3, 5, ABSOLUTE_Y},
	{0x81, STA, 2, 6, INDIRECT_X},
	{0x91, STA, 2, 6, INDIRECT_Y},

	{0x86, STX, 2, 3, ZERO_PAGE},
	{0x96, STX, 2, 4, ZERO_PAGE_Y},
	{0x8e, STX, 3, 4, ABSOLUTE},

	{0x84, STY, 2, 3, ZERO_PAGE},
	{0x94, STY, 2, 4, ZERO_PAGE_X},
	{0x8c, STY, 3, 4, ABSOLUTE},

	{0xaa, TAX, 1, 2, NONE_ADDRESSING},
	{0xa8, TAY, 1, 2, NONE_ADDRESSING},
	{0xba, TSX, 1, 2, NONE_ADDRESSING},
	{0x8a, TXA, 1, 2, NONE_ADDRESSING},
	{0x9a, TXS, 1, 2, NONE_ADDRESSING},
	{0x98, TYA, 1, 2, NONE_ADDRESSING},
}

// Table is an opcode lookup table indexed by opcode byte.
type Table struct {
	opcode [256]*Opcode
}

// NewTable builds a lookup table from a list of opcodes.
func NewTable(opcodes []Opcode) (table *Table, err error) {
	table = &Table{}

	for _, op := range opcodes {
		if table.opcode[op.Code] != nil {
			err = fmt.Errorf("%w: %v", ErrOpcodeDuplicate, &op)
			table = nil
			return
		}
		if op.Length < 1 || op.Length > 3 || int(op.Instruction) >= INSTRUCTION_COUNT {
			err = fmt.Errorf("%w: %v", ErrOpcodeInvalid, &op)
			table = nil
			return
		}
		table.opcode[op.Code] = &op
	}

	return
}

// DefaultTable builds the table of the documented instruction set.
func DefaultTable() *Table {
	table, err := NewTable(Opcodes)
	if err != nil {
		panic(err)
	}
	return table
}

// Lookup returns the opcode for a byte, or nil if the byte is not an opcode.
func (table *Table) Lookup(code byte) *Opcode {
	return table.opcode[code]
}

// Find returns the opcode implementing an instruction in a mode, or nil.
func (table *Table) Find(ins Instruction, mode AddressingMode) *Opcode {
	for op := range table.All() {
		if op.Instruction == ins && op.Mode == mode {
			return op
		}
	}
	return nil
}

// All iterates over the opcodes in the table, in opcode byte order.
func (table *Table) All() iter.Seq[*Opcode] {
	return func(yield func(op *Opcode) bool) {
		for _, op := range table.opcode {
			if op == nil {
				continue
			}
			if !yield(op) {
				return
			}
		}
	}
}
