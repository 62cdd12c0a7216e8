package script

import (
	"errors"

	"github.com/ezrec/mos6502/translate"
)

var f = translate.From

var (
	ErrScript   = errors.New(f("script error"))
	ErrRegister = errors.New(f("register invalid"))
)
