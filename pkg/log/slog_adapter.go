package log

import (
	"log/slog"
)

// SlogDiagnostics writes diagnostics to an slog.Logger.
type SlogDiagnostics struct {
	logger *slog.Logger
}

// NewSlogDiagnostics creates a SlogDiagnostics writing to logger.
// A nil logger selects slog.Default().
func NewSlogDiagnostics(logger *slog.Logger) *SlogDiagnostics {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogDiagnostics{logger: logger}
}

// Info logs at slog.LevelInfo.
func (a *SlogDiagnostics) Info(msg string, args ...any) {
	a.logger.Info(msg, args...)
}

// Warn logs at slog.LevelWarn.
func (a *SlogDiagnostics) Warn(msg string, args ...any) {
	a.logger.Warn(msg, args...)
}

// Error logs at slog.LevelError.
func (a *SlogDiagnostics) Error(msg string, args ...any) {
	a.logger.Error(msg, args...)
}

// With returns a SlogDiagnostics whose records carry the given attributes.
func (a *SlogDiagnostics) With(args ...any) *SlogDiagnostics {
	return &SlogDiagnostics{logger: a.logger.With(args...)}
}

// Compile-time interface satisfaction check.
var _ Diagnostics = (*SlogDiagnostics)(nil)
