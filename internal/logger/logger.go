// Package logger defines the logging interface injected into library code.
//
// The guard in internal/scoped reports teardown problems through this
// interface instead of returning panics or writing to a global, so embedders
// decide where diagnostics go. The CLI hands in the process-wide slog logger
// configured by internal/logging; tests hand in a recorder or the no-op.
package logger

import "log/slog"

// LoggerInterface defines the logging methods library code may call
type LoggerInterface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogLogger adapts a *slog.Logger to LoggerInterface
type SlogLogger struct {
	log *slog.Logger
}

// FromSlog wraps an existing slog logger. A nil logger falls back to
// slog.Default().
func FromSlog(log *slog.Logger) *SlogLogger {
	if log == nil {
		log = slog.Default()
	}

	return &SlogLogger{log: log}
}

func (s *SlogLogger) Debug(msg string, args ...any) { s.log.Debug(msg, args...) }
func (s *SlogLogger) Info(msg string, args ...any)  { s.log.Info(msg, args...) }
func (s *SlogLogger) Warn(msg string, args ...any)  { s.log.Warn(msg, args...) }
func (s *SlogLogger) Error(msg string, args ...any) { s.log.Error(msg, args...) }

// NopLogger discards everything. It is the default for guards constructed
// without injected dependencies.
type NopLogger struct{}

func Nop() *NopLogger {
	return &NopLogger{}
}

func (n *NopLogger) Debug(msg string, args ...any) {}
func (n *NopLogger) Info(msg string, args ...any)  {}
func (n *NopLogger) Warn(msg string, args ...any)  {}
func (n *NopLogger) Error(msg string, args ...any) {}
