package cpu

import (
	"errors"

	"github.com/ezrec/mos6502/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted             = errors.New(f("cpu halted"))
	ErrStopped            = errors.New(f("cpu stopped"))
	ErrUnrecognizedOpcode = errors.New(f("unrecognized opcode"))

	// Opcode table errors
	ErrOpcodeDuplicate = errors.New(f("opcode duplicated"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrOrgSyntax          = errors.New(f(".org syntax"))
	ErrOrgBackwards       = errors.New(f(".org moves backwards"))
	ErrDataSyntax         = errors.New(f("data syntax"))
	ErrDirectiveInvalid   = errors.New(f("directive invalid"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelInvalid       = errors.New(f("label invalid"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrOperandMissing     = errors.New(f("operand missing"))
	ErrOperandExtra       = errors.New(f("excessive operand"))
	ErrOperandInvalid     = errors.New(f("operand invalid"))
	ErrOperandRange       = errors.New(f("operand out of range"))
	ErrBranchRange        = errors.New(f("branch out of range"))
	ErrAddressOverflow    = errors.New(f("program exceeds address space"))
)

// ErrOpcode is returned when an opcode byte has no table entry.
type ErrOpcode byte

func (eo ErrOpcode) Error() string {
	return f("unrecognized opcode $%02x", byte(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	if err == ErrUnrecognizedOpcode {
		return true
	}
	_, ok = err.(ErrOpcode)
	return
}

// ErrAddressingMode is returned when an operand address is requested
// for a mode that has none.
type ErrAddressingMode struct {
	Mode AddressingMode
}

func (err *ErrAddressingMode) Error() string {
	return f("invalid addressing mode %v", err.Mode)
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrAddressing is returned by the assembler when an instruction has
// no encoding for the requested addressing mode.
type ErrAddressing struct {
	Mnemonic string
	Mode     AddressingMode
}

func (err ErrAddressing) Error() string {
	return f("%v has no %v mode", err.Mnemonic, err.Mode)
}
