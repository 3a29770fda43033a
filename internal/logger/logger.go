// Package logger builds the zerolog logger and attaches outcome failures to
// log events.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/Kotrecon/result-pattern/outcome"
)

// New builds a console logger writing to out. The level defaults to warn;
// verbose lowers it to info and debug lowers it to debug.
func New(out io.Writer, debug, verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}

	return zerolog.New(output).Level(Level(debug, verbose)).With().Timestamp().Logger()
}

// Level maps the debug and verbose switches to a zerolog level.
func Level(debug, verbose bool) zerolog.Level {
	switch {
	case debug:
		return zerolog.DebugLevel
	case verbose:
		return zerolog.InfoLevel
	default:
		return zerolog.WarnLevel
	}
}

// Failure attaches the fields of err to ev.
func Failure(ev *zerolog.Event, err outcome.Error) *zerolog.Event {
	if err == nil {
		return ev
	}

	ev = ev.Str("error_code", err.Code()).
		Int("status_code", err.StatusCode()).
		Str("error_message", err.Message())

	if details, ok := outcome.DetailsOf(err); ok && len(details) > 0 {
		ev = ev.Strs("details", details)
	}

	return ev
}

// Failures attaches the fields of the first error and the total error count.
func Failures(ev *zerolog.Event, errs []outcome.Error) *zerolog.Event {
	if len(errs) == 0 {
		return ev
	}

	return Failure(ev, errs[0]).Int("error_count", len(errs))
}
