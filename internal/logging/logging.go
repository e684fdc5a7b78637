// Package logging builds the CLI's stderr logger.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Options controls how New configures the logger.
type Options struct {
	// Verbose enables debug output. Otherwise only warnings and errors are
	// written.
	Verbose bool
	// JSON switches to one JSON object per line, for --json mode.
	JSON bool
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	level := log.WarnLevel
	if opts.Verbose {
		level = log.DebugLevel
	}
	formatter := log.TextFormatter
	if opts.JSON {
		formatter = log.JSONFormatter
	}
	return log.NewWithOptions(w, log.Options{
		Level:     level,
		Prefix:    "names",
		Formatter: formatter,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
