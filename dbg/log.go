package dbg

import (
	"io"
	"log"
	"sync/atomic"

	"github.com/logrusorgru/aurora"
)

// Diagnostic output is off unless something calls Enable. Call sites should check
// Enabled before building expensive arguments (names in particular).

var logger atomic.Pointer[log.Logger]

func Enable(w io.Writer) {
	logger.Store(log.New(w, aurora.Magenta("[facefinder] ").String(), log.Ltime|log.Lmicroseconds))
}

func Disable() {
	logger.Store(nil)
}

func Enabled() bool {
	return logger.Load() != nil
}

func Logf(format string, args ...interface{}) {
	if l := logger.Load(); l != nil {
		l.Printf(format, args...)
	}
}

// Colour helpers for names in diagnostic lines

func Good(name string) string {
	return aurora.Green(name).String()
}

func Bad(name string) string {
	return aurora.Red(name).String()
}

func Note(name string) string {
	return aurora.Cyan(name).String()
}
