package misc

import (
	"github.com/BrugadaSyndrome/bslogger"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Verbosity applies to every logger made by NewLogger. The cli lowers it when stdout carries image data.
var Verbosity = bslogger.Normal

func NewLogger(name string) bslogger.Logger {
	return bslogger.NewLogger(name, Verbosity, nil)
}

var printer = message.NewPrinter(language.English)

// Count formats n with digit grouping for log lines, e.g. 2073600 -> "2,073,600".
func Count(n int) string {
	return printer.Sprintf("%d", n)
}
