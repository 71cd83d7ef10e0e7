// Package logz sets up zerolog loggers for the CLI and the scenario runner.
package logz

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New creates a console logger writing to stderr at the given level.
func New(level zerolog.Level) zerolog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a console logger writing to w at the given level.
func NewWithWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// FromDebugLevel maps the HTTP_DEBUG_LEVEL convention onto a logger:
// zero keeps the transport quiet at info level, anything above enables
// debug output of request and response bodies.
func FromDebugLevel(debugLevel int) zerolog.Logger {
	if debugLevel > 0 {
		return New(zerolog.DebugLevel)
	}
	return New(zerolog.InfoLevel)
}
