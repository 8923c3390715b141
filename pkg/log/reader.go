package log

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Reader iterates over events produced by a Recorder.
type Reader struct {
	decoder *cbor.Decoder
	minimum Level
}

// NewReader creates a Reader over r returning every event.
func NewReader(r io.Reader) *Reader {
	return &Reader{decoder: NewDecoder(r)}
}

// NewLevelReader creates a Reader that skips events below minimum.
func NewLevelReader(r io.Reader, minimum Level) *Reader {
	return &Reader{decoder: NewDecoder(r), minimum: minimum}
}

// Next returns the next matching event.
// Returns io.EOF when no more events are available.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		if err := r.decoder.Decode(&event); err != nil {
			return Event{}, err
		}
		if event.Level >= r.minimum {
			return event, nil
		}
	}
}
