// Package log provides structured diagnostic logging for pvlocate.
//
// Resolution itself is silent: results go to stdout through the CLI, and
// this package only carries diagnostics to stderr. Packages that do work
// worth tracing (platform detection, directory scans) take a Logger through
// a functional option and fall back to Default when none is given.
//
// Verbosity levels:
//   - ERROR (--quiet): failures only
//   - WARN (default): configuration fallbacks and other surprises
//   - INFO (--verbose): which identity and layout were used
//   - DEBUG (--debug): every rule evaluated and every entry scanned
package log

import (
	"io"
	"log/slog"
	"sync"
)

// Logger is the logging surface used across pvlocate.
// Method signatures mirror slog so the slog-backed implementation is a thin shim.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With returns a Logger that adds the given key-value pairs to every entry.
	With(args ...any) Logger
}

type slogLogger struct {
	l *slog.Logger
}

// New creates a Logger backed by slog with the given handler.
func New(h slog.Handler) Logger {
	return &slogLogger{l: slog.New(h)}
}

// NewText creates a Logger writing slog text records at or above level to w.
func NewText(w io.Writer, level slog.Level) Logger {
	return New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewCLI is NewText without the time attribute, for stderr diagnostics.
func NewCLI(w io.Writer, level slog.Level) Logger {
	return New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// ComponentKey names the attribute Component adds.
const ComponentKey = "component"

// Component tags every entry of l with the subsystem that wrote it, such as
// "platform" or "resource". A nil l means Default.
func Component(l Logger, name string) Logger {
	if l == nil {
		l = Default()
	}
	return l.With(ComponentKey, name)
}

func (s *slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *slogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

func (s *slogLogger) With(args ...any) Logger {
	return &slogLogger{l: s.l.With(args...)}
}

type noopLogger struct{}

// NewNoop returns a logger that discards all output.
func NewNoop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) With(...any) Logger   { return noopLogger{} }

var (
	defaultLogger Logger = noopLogger{}
	defaultMu     sync.RWMutex
)

// Default returns the process logger, or a noop logger if SetDefault was
// never called.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault installs l as the process logger. main calls it once after
// the verbosity flags are parsed. A nil l restores the noop logger.
func SetDefault(l Logger) {
	if l == nil {
		l = noopLogger{}
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}
