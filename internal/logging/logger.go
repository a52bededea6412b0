// Package logging provides zerolog construction helpers for the traversal
// engine and its adapters.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New creates a console logger writing to w (stderr when w is nil). Intended
// for examples and debugging sessions; callers normally inject their own
// logger through Options.
func New(w io.Writer) *zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).
		With().
		Timestamp().
		Logger()

	return &logger
}

var nop = zerolog.Nop()

// Nop returns a logger that discards everything. Used as the default when no
// logger is configured.
func Nop() *zerolog.Logger {
	return &nop
}
