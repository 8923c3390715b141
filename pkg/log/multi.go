package log

// MultiDiagnostics sends every message to several sinks.
// Useful when you want console output (via SlogDiagnostics)
// and a recorded trace (via Recorder) simultaneously.
type MultiDiagnostics struct {
	sinks []Diagnostics
}

// NewMultiDiagnostics creates a MultiDiagnostics. Nil sinks are skipped.
func NewMultiDiagnostics(sinks ...Diagnostics) *MultiDiagnostics {
	m := &MultiDiagnostics{}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

// Info forwards to all sinks.
func (m *MultiDiagnostics) Info(msg string, args ...any) {
	for _, s := range m.sinks {
		s.Info(msg, args...)
	}
}

// Warn forwards to all sinks.
func (m *MultiDiagnostics) Warn(msg string, args ...any) {
	for _, s := range m.sinks {
		s.Warn(msg, args...)
	}
}

// Error forwards to all sinks.
func (m *MultiDiagnostics) Error(msg string, args ...any) {
	for _, s := range m.sinks {
		s.Error(msg, args...)
	}
}

// Compile-time interface satisfaction check.
var _ Diagnostics = (*MultiDiagnostics)(nil)
