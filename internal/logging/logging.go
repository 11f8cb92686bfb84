// Package logging wires up the structured logger used across chesscore,
// replacing the bespoke buffered file logger teacher repos in this domain
// tend to hand-roll with a single zerolog.Logger configuration point.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options configures the global logger.
type Options struct {
	// Level is one of zerolog's level strings ("debug", "info", "warn",
	// "error"). Empty defaults to "info".
	Level string
	// Pretty switches to zerolog's human-readable console writer; false
	// emits newline-delimited JSON, suitable for shipping to a log
	// aggregator.
	Pretty bool
	// Output overrides the destination; nil defaults to stderr.
	Output io.Writer
}

// New builds a zerolog.Logger from Options and also installs it as
// zerolog/log's global logger, so engine.NewEngine's default progress sink
// (which logs via log.Info()) picks it up without explicit wiring.
func New(opts Options) zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(opts.Level); err == nil && opts.Level != "" {
		level = parsed
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out}
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	log.Logger = logger
	return logger
}
