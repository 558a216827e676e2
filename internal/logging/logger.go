// Package logging defines the leveled logger used across the service and
// its go-logger backed provider.
package logging

import "context"

// Logger mirrors the leveled interface exposed by go-logger
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// Provider hands out named loggers ("server", "catalog", ...)
type Provider interface {
	GetLogger(name string) Logger
}

// NoOp returns a logger that discards everything
func NoOp() Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithContext(context.Context) Logger {
	return n
}

// OrNoOp returns l, or a no-op logger when l is nil
func OrNoOp(l Logger) Logger {
	if l == nil {
		return NoOp()
	}
	return l
}
