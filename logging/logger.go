// Package logging provides the colored prefix loggers used across the
// service. Each subsystem gets its own prefix and color so interleaved
// output stays readable.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/config"
)

// Logger writes leveled, colored log lines with a fixed subsystem prefix.
// Implements i.Logger.
type Logger struct {
	out *log.Logger
}

// New creates a logger writing to out with the given subsystem prefix and
// ANSI color.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if out == nil {
		return nil, errors.New("logging: nil writer")
	}
	tag := fmt.Sprintf("%s[%s]%s ", color, prefix, config.ColorReset)
	return &Logger{
		out: log.New(out, tag, log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.out.Printf("%s[INFO]%s %s", config.LogInfoColor, config.ColorReset, msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.out.Printf("%s[ERROR]%s %s", config.LogErrorColor, config.ColorReset, msg)
}
