package keypad

import (
	"errors"

	"github.com/ezrec/mos6502/translate"
)

var f = translate.From

var (
	ErrQuit = errors.New(f("keypad quit"))
)
