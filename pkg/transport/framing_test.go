package transport

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"testing"
)

// bufferRW adapts a bytes.Buffer into an io.ReadWriter for framer tests.
type bufferRW struct {
	*bytes.Buffer
}

func newBufferRW() *bufferRW {
	return &bufferRW{Buffer: new(bytes.Buffer)}
}

func TestFramerRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
	}{
		{name: "small message", payload: []byte("hello")},
		{name: "medium message", payload: bytes.Repeat([]byte("x"), 1000)},
		{name: "max size message", payload: bytes.Repeat([]byte("y"), DefaultMaxMessageSize)},
		{name: "single byte", payload: []byte{0x42}},
		{name: "binary data", payload: []byte{0x00, 0xFF, 0x7F, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := newBufferRW()
			f := NewFramer(buf)

			if err := f.WriteFrame(tt.payload); err != nil {
				t.Fatalf("WriteFrame failed: %v", err)
			}
			if buf.Len() != FrameSize(len(tt.payload)) {
				t.Errorf("frame size = %d, want %d", buf.Len(), FrameSize(len(tt.payload)))
			}

			got, err := f.ReadFrame()
			if err != nil {
				t.Fatalf("ReadFrame failed: %v", err)
			}
			if !bytes.Equal(got, tt.payload) {
				t.Errorf("payload mismatch: got %d bytes, want %d bytes", len(got), len(tt.payload))
			}
		})
	}
}

func TestFramerWriteErrors(t *testing.T) {
	f := NewFramerWithMaxSize(newBufferRW(), 100)

	if err := f.WriteFrame(nil); !errors.Is(err, ErrMessageEmpty) {
		t.Errorf("expected ErrMessageEmpty, got %v", err)
	}
	if err := f.WriteFrame(bytes.Repeat([]byte("x"), 101)); !errors.Is(err, ErrMessageTooLarge) {
		t.Errorf("expected ErrMessageTooLarge, got %v", err)
	}
}

func TestFramerReadErrors(t *testing.T) {
	lengthPrefix := func(n uint32) []byte {
		var b [LengthPrefixSize]byte
		binary.BigEndian.PutUint32(b[:], n)
		return b[:]
	}

	tests := []struct {
		name    string
		input   []byte
		maxSize uint32
		wantErr error
	}{
		{name: "eof", input: nil, maxSize: 100, wantErr: io.EOF},
		{name: "zero length", input: lengthPrefix(0), maxSize: 100, wantErr: ErrMessageEmpty},
		{name: "too large", input: append(lengthPrefix(1000), make([]byte, 1000)...), maxSize: 100, wantErr: ErrMessageTooLarge},
		{name: "truncated length", input: []byte{0x00, 0x01}, maxSize: 100, wantErr: ErrFrameTruncated},
		{name: "truncated payload", input: append(lengthPrefix(100), make([]byte, 50)...), maxSize: 100, wantErr: ErrFrameTruncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := newBufferRW()
			buf.Write(tt.input)
			_, err := NewFramerWithMaxSize(buf, tt.maxSize).ReadFrame()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ReadFrame error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFramerMultipleFrames(t *testing.T) {
	buf := newBufferRW()
	f := NewFramer(buf)

	messages := [][]byte{[]byte("first"), []byte("second"), []byte("third")}
	for _, msg := range messages {
		if err := f.WriteFrame(msg); err != nil {
			t.Fatalf("WriteFrame failed: %v", err)
		}
	}
	for i, want := range messages {
		got, err := f.ReadFrame()
		if err != nil {
			t.Fatalf("ReadFrame %d failed: %v", i, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("message %d mismatch: got %q, want %q", i, got, want)
		}
	}
	if _, err := f.ReadFrame(); err != io.EOF {
		t.Errorf("expected EOF after all messages, got %v", err)
	}
}

// stutterReader returns scripted chunks, with a deadline error between them.
type stutterReader struct {
	chunks [][]byte
	stall  bool
}

func (s *stutterReader) Read(p []byte) (int, error) {
	if s.stall {
		s.stall = false
		return 0, os.ErrDeadlineExceeded
	}
	if len(s.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, s.chunks[0])
	s.chunks[0] = s.chunks[0][n:]
	if len(s.chunks[0]) == 0 {
		s.chunks = s.chunks[1:]
		s.stall = true
	}
	return n, nil
}

func (s *stutterReader) Write(p []byte) (int, error) { return len(p), nil }

func TestFramerResumesAfterDeadline(t *testing.T) {
	var frame bytes.Buffer
	w := NewFramer(&bufferRW{Buffer: &frame})
	if err := w.WriteFrame([]byte("resumable")); err != nil {
		t.Fatalf("WriteFrame failed: %v", err)
	}
	raw := frame.Bytes()

	// Split inside the length prefix and inside the payload.
	r := NewFramer(&stutterReader{chunks: [][]byte{raw[:2], raw[2:7], raw[7:]}})

	var got []byte
	var timeouts int
	for got == nil {
		data, err := r.ReadFrame()
		if errors.Is(err, os.ErrDeadlineExceeded) {
			timeouts++
			continue
		}
		if err != nil {
			t.Fatalf("ReadFrame failed: %v", err)
		}
		got = data
	}

	if string(got) != "resumable" {
		t.Errorf("payload = %q, want %q", got, "resumable")
	}
	if timeouts != 2 {
		t.Errorf("timeouts = %d, want 2", timeouts)
	}
}

func TestFrameSize(t *testing.T) {
	if got := FrameSize(100); got != 104 {
		t.Errorf("FrameSize(100) = %d, want 104", got)
	}
}
