// Package logger defines the minimal structured-logging surface used across
// the module, with a zerolog-backed default implementation.
package logger

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Logger accepts a message and alternating key/value pairs. It carries no
// behavioral contract beyond "record this"; implementations must never panic
// on malformed pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// New returns a Logger emitting timestamped JSON lines to w.
func New(w io.Writer) Logger {
	return &zeroLogger{logger: zerolog.New(w).With().Timestamp().Logger()}
}

// FromZerolog wraps an existing zerolog.Logger, so applications that already
// configured one can route the guard's output through it.
func FromZerolog(l zerolog.Logger) Logger {
	return &zeroLogger{logger: l}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return &zeroLogger{logger: zerolog.Nop()}
}

type zeroLogger struct {
	logger zerolog.Logger
}

func (z *zeroLogger) Debug(msg string, args ...any) { z.emit(z.logger.Debug(), msg, args) }
func (z *zeroLogger) Info(msg string, args ...any)  { z.emit(z.logger.Info(), msg, args) }
func (z *zeroLogger) Warn(msg string, args ...any)  { z.emit(z.logger.Warn(), msg, args) }
func (z *zeroLogger) Error(msg string, args ...any) { z.emit(z.logger.Error(), msg, args) }

func (z *zeroLogger) emit(ev *zerolog.Event, msg string, args []any) {
	ev.Fields(fields(args)).Msg(msg)
}

// fields converts alternating key/value pairs into a zerolog field map.
// Non-string keys are stringified and a dangling trailing value is kept
// visible rather than dropped.
func fields(args []any) map[string]any {
	if len(args) == 0 {
		return nil
	}

	m := make(map[string]any, len(args)/2+1)
	for i := 0; i+1 < len(args); i += 2 {
		k, ok := args[i].(string)
		if !ok {
			k = fmt.Sprint(args[i])
		}
		m[k] = args[i+1]
	}
	if len(args)%2 != 0 {
		m["arg"] = args[len(args)-1]
	}

	return m
}
