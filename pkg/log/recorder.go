package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Recorder writes diagnostics as CBOR events to an io.Writer.
// It is safe for concurrent use from multiple goroutines.
type Recorder struct {
	connID  string
	now     func() time.Time
	closer  io.Closer
	encoder *cbor.Encoder

	mu     sync.Mutex
	closed bool
}

// NewRecorder creates a Recorder writing to w. Every event is tagged with connID.
func NewRecorder(w io.Writer, connID string) *Recorder {
	return &Recorder{
		connID:  connID,
		now:     time.Now,
		encoder: NewEncoder(w),
	}
}

// NewFileRecorder creates a Recorder that appends to the file at path.
// The file is created with permissions 0644 if it doesn't exist.
func NewFileRecorder(path, connID string) (*Recorder, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	r := NewRecorder(f, connID)
	r.closer = f
	return r, nil
}

// Info records an informational event.
func (r *Recorder) Info(msg string, args ...any) { r.record(LevelInfo, msg, args) }

// Warn records a warning event.
func (r *Recorder) Warn(msg string, args ...any) { r.record(LevelWarn, msg, args) }

// Error records an error event.
func (r *Recorder) Error(msg string, args ...any) { r.record(LevelError, msg, args) }

func (r *Recorder) record(level Level, msg string, args []any) {
	event := Event{
		Timestamp:    r.now(),
		ConnectionID: r.connID,
		Level:        level,
		Message:      msg,
		Attrs:        attrsFromArgs(args),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	// Recording must not disrupt the connection; encoding errors are dropped.
	_ = r.encoder.Encode(event)
}

// Close closes the underlying file, if the Recorder owns one.
// It is safe to call Close multiple times. Later events are ignored.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// Compile-time interface satisfaction check.
var _ Diagnostics = (*Recorder)(nil)
