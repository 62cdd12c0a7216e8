package cpu

// AddressingMode selects how an instruction locates its operand.
type AddressingMode int

//go:generate go tool stringer -linecomment -type=AddressingMode
const (
	IMMEDIATE       = AddressingMode(0) // Immediate
	ZERO_PAGE       = AddressingMode(1) // ZeroPage
	ZERO_PAGE_X     = AddressingMode(2) // ZeroPage_X
	ZERO_PAGE_Y     = AddressingMode(3) // ZeroPage_Y
	ABSOLUTE        = AddressingMode(4) // Absolute
	ABSOLUTE_X      = AddressingMode(5) // Absolute_X
	ABSOLUTE_Y      = AddressingMode(6) // Absolute_Y
	INDIRECT_X      = AddressingMode(7) // Indirect_X
	INDIRECT_Y      = AddressingMode(8) // Indirect_Y
	NONE_ADDRESSING = AddressingMode(9) // NoneAddressing
)

// ZeroPage returns true if the mode addresses a single byte operand
// in page zero.
func (mode AddressingMode) ZeroPage() bool {
	switch mode {
	case ZERO_PAGE, ZERO_PAGE_X, ZERO_PAGE_Y, INDIRECT_X, INDIRECT_Y:
		return true
	}
	return false
}

// Register names a CPU data register.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REGISTER_A = Register(0) // a
	REGISTER_X = Register(1) // x
	REGISTER_Y = Register(2) // y
)
