// Package translate formats user visible messages for the emulator in the
// language of the current locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("mos6502: locale: %v", err)
	}

	tag := language.AmericanEnglish
	for _, name := range locales {
		parsed, err := language.Parse(name)
		if err == nil {
			tag = parsed
			break
		}
	}

	printer = message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
