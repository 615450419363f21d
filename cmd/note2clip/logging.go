package main

import (
	"io"

	"github.com/rs/zerolog"
)

// newLogger returns a console logger on w. Verbose enables debug
// output; the default level keeps the tool quiet except for the final
// confirmation and errors.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}
