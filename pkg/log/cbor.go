package log

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Recordings are a plain sequence of CBOR events. Timestamps keep
// nanoseconds so events from one connection sort in the order they happened.
var (
	eventEncMode = mustEncMode(cbor.EncOptions{
		Sort:        cbor.SortCoreDeterministic,
		IndefLength: cbor.IndefLengthForbidden,
		Time:        cbor.TimeRFC3339Nano,
	})
	eventDecMode = mustDecMode(cbor.DecOptions{
		DupMapKey:       cbor.DupMapKeyQuiet,
		MaxNestedLevels: 16,
	})
)

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	em, err := opts.EncMode()
	if err != nil {
		panic("log: invalid CBOR encoder options: " + err.Error())
	}
	return em
}

func mustDecMode(opts cbor.DecOptions) cbor.DecMode {
	dm, err := opts.DecMode()
	if err != nil {
		panic("log: invalid CBOR decoder options: " + err.Error())
	}
	return dm
}

// NewEncoder returns an encoder that writes events to w in the format read
// by NewReader.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return eventEncMode.NewEncoder(w)
}

// NewDecoder returns a decoder for events written by a Recorder.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return eventDecMode.NewDecoder(r)
}
