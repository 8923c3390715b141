package log

import (
	"fmt"
	"time"
)

// Event is one recorded diagnostic message.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ConnectionID identifies the client connection (UUID).
	ConnectionID string `cbor:"2,keyasint"`

	// Level is the severity.
	Level Level `cbor:"3,keyasint"`

	// Message is the human-readable text.
	Message string `cbor:"4,keyasint"`

	// Attrs holds the key/value arguments, formatted as strings.
	Attrs map[string]string `cbor:"5,keyasint,omitempty"`
}

// Level is the severity of an event.
type Level uint8

const (
	// LevelInfo is informational.
	LevelInfo Level = 0
	// LevelWarn indicates a recoverable problem.
	LevelWarn Level = 1
	// LevelError indicates a failure.
	LevelError Level = 2
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// attrsFromArgs turns slog-style alternating key/value args into a map.
// A trailing key without value is stored under "!BADKEY", like slog does.
func attrsFromArgs(args []any) map[string]string {
	if len(args) == 0 {
		return nil
	}
	attrs := make(map[string]string, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok || i+1 >= len(args) {
			attrs["!BADKEY"] = fmt.Sprint(args[i])
			continue
		}
		attrs[key] = fmt.Sprint(args[i+1])
	}
	return attrs
}
