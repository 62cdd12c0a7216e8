package memory

import (
	"github.com/ezrec/mos6502/translate"
)

var f = translate.From

// ErrProgramTooLarge is returned when a program does not fit in the
// address space above its load address.
type ErrProgramTooLarge struct {
	Base uint16
	Len  int
}

func (err *ErrProgramTooLarge) Error() string {
	return f("program of %v bytes does not fit at $%04x", err.Len, err.Base)
}
