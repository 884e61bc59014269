package log

import (
	"log/slog"
	"os"
	"sync/atomic"
)

var root atomic.Pointer[Logger]

func init() {
	l := New(slog.New(NewTerminalHandlerWithLevel(os.Stderr, LevelInfo, false)))
	root.Store(&l)
}

// Root returns the module's default logger.
func Root() Logger {
	return *root.Load()
}

// SetDefault replaces the module's default logger, e.g. for tests that
// want to capture output or silence it entirely.
func SetDefault(l Logger) {
	root.Store(&l)
}

func Trace(msg string, ctx ...any) { Root().Trace(msg, ctx...) }
func Debug(msg string, ctx ...any) { Root().Debug(msg, ctx...) }
func Info(msg string, ctx ...any)  { Root().Info(msg, ctx...) }
func Warn(msg string, ctx ...any)  { Root().Warn(msg, ctx...) }
func Error(msg string, ctx ...any) { Root().Error(msg, ctx...) }
func Crit(msg string, ctx ...any)  { Root().Crit(msg, ctx...) }
