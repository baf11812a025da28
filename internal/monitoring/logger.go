// Package monitoring holds the diagnostic logger shared by the lut2png packages.
package monitoring

import (
	"io"
	"log"
)

// Logf is the package-level diagnostic logger. It defaults to log.Printf but may
// be replaced by SetLogger. Tests or production code can redirect or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// NewLogger returns a Logf-compatible function writing bare lines to w,
// without the date prefix of the standard logger.
func NewLogger(w io.Writer) func(format string, v ...interface{}) {
	return log.New(w, "", 0).Printf
}

// Warnf logs a diagnostic that does not stop processing.
func Warnf(format string, v ...interface{}) {
	Logf("Warning: "+format, v...)
}
