// Package log provides structured logging for blobkzg. It wraps log/slog and
// hands out per-module child loggers so the kzg engine, the guest driver and
// the CLI can be told apart in a single stream.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// Logger wraps slog.Logger with module context.
type Logger struct {
	inner *slog.Logger
}

// defaultLogger is the process-wide logger used by the package-level
// convenience functions. Swapped atomically because the kzg engine may log
// from many goroutines while the CLI reconfigures verbosity at startup.
var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New(slog.LevelInfo))
}

// New creates a Logger that writes JSON to stderr at the given level.
func New(level slog.Level) *Logger {
	return NewWithWriter(os.Stderr, "json", level)
}

// NewWithWriter creates a Logger writing to w. format is "json" or "text";
// anything else falls back to json.
func NewWithWriter(w io.Writer, format string, level slog.Level) *Logger {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if strings.EqualFold(format, "text") {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	return &Logger{inner: slog.New(h)}
}

// NewWithHandler creates a Logger backed by the supplied slog.Handler.
func NewWithHandler(h slog.Handler) *Logger {
	return &Logger{inner: slog.New(h)}
}

// SetDefault replaces the package-level default logger. nil is ignored.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

// Default returns the current package-level default logger.
func Default() *Logger {
	return defaultLogger.Load()
}

// Module returns a child logger with an additional "module" attribute.
func (l *Logger) Module(name string) *Logger {
	return &Logger{inner: l.inner.With("module", name)}
}

// With returns a child logger with additional key-value context.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{inner: l.inner.With(args...)}
}

// Enabled reports whether the logger emits records at level.
func (l *Logger) Enabled(level slog.Level) bool {
	return l.inner.Enabled(context.Background(), level)
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }

// Info logs at LevelInfo.
func (l *Logger) Info(msg string, args ...any) { l.inner.Info(msg, args...) }

// Warn logs at LevelWarn.
func (l *Logger) Warn(msg string, args ...any) { l.inner.Warn(msg, args...) }

// Error logs at LevelError.
func (l *Logger) Error(msg string, args ...any) { l.inner.Error(msg, args...) }

// ---------------------------------------------------------------------------
// Package-level convenience functions -- delegate to the default logger.
// ---------------------------------------------------------------------------

// Debug logs at LevelDebug using the default logger.
func Debug(msg string, args ...any) { Default().Debug(msg, args...) }

// Info logs at LevelInfo using the default logger.
func Info(msg string, args ...any) { Default().Info(msg, args...) }

// Warn logs at LevelWarn using the default logger.
func Warn(msg string, args ...any) { Default().Warn(msg, args...) }

// Error logs at LevelError using the default logger.
func Error(msg string, args ...any) { Default().Error(msg, args...) }

// ---------------------------------------------------------------------------
// Levels
// ---------------------------------------------------------------------------

// LevelFromString parses a level name. The match is case-insensitive;
// unrecognised strings return LevelInfo.
func LevelFromString(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG", "TRACE":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR", "CRIT", "FATAL":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// VerbosityToLevel maps a geth-style numeric verbosity (0=silent .. 5=trace)
// onto a slog level. Values at or below 1 only let errors through.
func VerbosityToLevel(v int) slog.Level {
	switch {
	case v <= 1:
		return slog.LevelError
	case v == 2:
		return slog.LevelWarn
	case v == 3:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
