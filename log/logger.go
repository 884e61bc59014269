// Package log provides leveled, structured logging for the DAG cache
// engine and its callers, in the style of go-ethereum's log package:
// a small interface over log/slog rather than a bespoke logger.
package log

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Level mirrors slog's levels under names the rest of the module uses.
type Level int

const (
	LevelTrace Level = -8
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
	LevelCrit  Level = 12
)

func (l Level) slog() slog.Level {
	return slog.Level(l)
}

// Logger is the interface used throughout this module instead of
// reaching for fmt.Println or the stdlib log package directly.
type Logger interface {
	Trace(msg string, ctx ...any)
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Warn(msg string, ctx ...any)
	Error(msg string, ctx ...any)
	Crit(msg string, ctx ...any)
	With(ctx ...any) Logger
}

type logger struct {
	inner *slog.Logger
}

// New wraps an *slog.Logger as a Logger.
func New(inner *slog.Logger) Logger {
	return &logger{inner: inner}
}

func (l *logger) write(level slog.Level, msg string, ctx []any) {
	l.inner.Log(context.Background(), level, msg, ctx...)
}

func (l *logger) Trace(msg string, ctx ...any) { l.write(LevelTrace.slog(), msg, ctx) }
func (l *logger) Debug(msg string, ctx ...any) { l.write(LevelDebug.slog(), msg, ctx) }
func (l *logger) Info(msg string, ctx ...any)  { l.write(LevelInfo.slog(), msg, ctx) }
func (l *logger) Warn(msg string, ctx ...any)  { l.write(LevelWarn.slog(), msg, ctx) }
func (l *logger) Error(msg string, ctx ...any) { l.write(LevelError.slog(), msg, ctx) }
func (l *logger) Crit(msg string, ctx ...any)  { l.write(LevelCrit.slog(), msg, ctx) }

func (l *logger) With(ctx ...any) Logger {
	return &logger{inner: l.inner.With(ctx...)}
}

// NewTerminalHandlerWithLevel builds a slog.Handler that writes
// "time level msg key=val ..." lines, filtered at the given level.
func NewTerminalHandlerWithLevel(w *os.File, lvl Level, _ bool) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl.slog(),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Value = slog.StringValue(a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	})
}

// JSONHandler builds a slog.Handler emitting one JSON object per line.
func JSONHandler(w *os.File) slog.Handler {
	return slog.NewJSONHandler(w, nil)
}
