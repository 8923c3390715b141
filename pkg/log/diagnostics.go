package log

// Diagnostics receives human-readable diagnostic messages from the
// connection core. Arguments after msg are alternating key/value pairs,
// following the log/slog convention.
//
// Implementations must be safe for concurrent use.
type Diagnostics interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Nop discards all diagnostics. Usable as a zero value.
type Nop struct{}

// Info discards the message.
func (Nop) Info(string, ...any) {}

// Warn discards the message.
func (Nop) Warn(string, ...any) {}

// Error discards the message.
func (Nop) Error(string, ...any) {}

// OrNop returns d, or Nop if d is nil.
func OrNop(d Diagnostics) Diagnostics {
	if d == nil {
		return Nop{}
	}
	return d
}

// Compile-time interface satisfaction check.
var _ Diagnostics = Nop{}
