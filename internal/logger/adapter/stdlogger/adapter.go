// Package stdlogger adapts the global zerolog logger to printf style logging
// interfaces such as the gorm logger writer.
package stdlogger

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger forwards printf style calls to the global zerolog logger.
type Logger struct {
	component string
	level     zerolog.Level // level used by Printf
}

// New creates a Logger. Printf calls are logged at info level.
func New() *Logger {
	return &Logger{level: zerolog.InfoLevel}
}

// Component returns a copy tagging every line with the given component name.
func (l *Logger) Component(name string) *Logger {
	out := *l
	out.component = name

	return &out
}

// WithPrintfLevel returns a copy logging Printf calls at level.
func (l *Logger) WithPrintfLevel(level zerolog.Level) *Logger {
	out := *l
	out.level = level

	return &out
}

func (l *Logger) send(level zerolog.Level, format string, args ...any) {
	e := log.WithLevel(level)
	if l.component != "" {
		e = e.Str("component", l.component)
	}

	e.Msgf(strings.TrimSpace(format), args...)
}

// Printf implements gorm's logger.Writer.
func (l *Logger) Printf(format string, args ...any) {
	l.send(l.level, format, args...)
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...any) {
	l.send(zerolog.DebugLevel, format, args...)
}

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...any) {
	l.send(zerolog.InfoLevel, format, args...)
}

// Warningf logs at warn level.
func (l *Logger) Warningf(format string, args ...any) {
	l.send(zerolog.WarnLevel, format, args...)
}

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...any) {
	l.send(zerolog.ErrorLevel, format, args...)
}
