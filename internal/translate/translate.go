// Package translate renders user facing messages for the detected locale.
package translate

import (
	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/message"
)

var printer = newPrinter()

func newPrinter() *message.Printer {
	locales, err := locale.GetLocales()
	if err != nil || len(locales) == 0 {
		locales = []string{"en-US"}
	}
	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From formats an en-US Sprintf() style key for the current locale.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
