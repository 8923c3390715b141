package transport

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"
)

// Framing constants.
const (
	// LengthPrefixSize is the size of the length prefix in bytes.
	LengthPrefixSize = 4

	// DefaultMaxMessageSize is the default maximum message size (256 KB).
	DefaultMaxMessageSize = 256 * 1024
)

// Framing errors.
var (
	// ErrMessageTooLarge indicates the message exceeds the maximum size.
	ErrMessageTooLarge = errors.New("message too large")

	// ErrMessageEmpty indicates an empty message.
	ErrMessageEmpty = errors.New("message is empty")

	// ErrFrameTruncated indicates the frame was truncated.
	ErrFrameTruncated = errors.New("frame truncated")
)

// Framer reads and writes length-prefixed frames.
// WriteFrame is safe for concurrent use; ReadFrame must be called from a
// single goroutine.
//
// ReadFrame keeps partial progress across calls, so a read deadline that
// fires in the middle of a frame does not desynchronize the stream: the next
// call continues where the previous one stopped.
type Framer struct {
	rw             io.ReadWriter
	maxMessageSize uint32
	writeMu        sync.Mutex

	// Partial read state
	lengthBuf [LengthPrefixSize]byte
	lengthN   int
	payload   []byte
	payloadN  int
}

// NewFramer creates a framer with DefaultMaxMessageSize.
func NewFramer(rw io.ReadWriter) *Framer {
	return NewFramerWithMaxSize(rw, DefaultMaxMessageSize)
}

// NewFramerWithMaxSize creates a framer with a custom max message size.
func NewFramerWithMaxSize(rw io.ReadWriter, maxSize uint32) *Framer {
	return &Framer{rw: rw, maxMessageSize: maxSize}
}

// WriteFrame writes data behind a 4-byte big-endian length prefix.
func (f *Framer) WriteFrame(data []byte) error {
	if len(data) == 0 {
		return ErrMessageEmpty
	}
	if uint32(len(data)) > f.maxMessageSize {
		return fmt.Errorf("%w: %d > %d", ErrMessageTooLarge, len(data), f.maxMessageSize)
	}

	frame := make([]byte, LengthPrefixSize+len(data))
	binary.BigEndian.PutUint32(frame, uint32(len(data)))
	copy(frame[LengthPrefixSize:], data)

	f.writeMu.Lock()
	defer f.writeMu.Unlock()
	if _, err := f.rw.Write(frame); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

// ReadFrame reads one frame and returns its payload.
// io.EOF is returned unwrapped when the stream ends on a frame boundary.
// Other read errors are wrapped, so timeouts stay detectable with errors.Is
// and os.ErrDeadlineExceeded.
func (f *Framer) ReadFrame() ([]byte, error) {
	for f.lengthN < LengthPrefixSize {
		n, err := f.rw.Read(f.lengthBuf[f.lengthN:])
		f.lengthN += n
		if f.lengthN == LengthPrefixSize {
			break
		}
		if err != nil {
			if err == io.EOF {
				if f.lengthN == 0 {
					return nil, io.EOF
				}
				f.reset()
				return nil, ErrFrameTruncated
			}
			return nil, fmt.Errorf("failed to read length prefix: %w", err)
		}
	}

	if f.payload == nil {
		length := binary.BigEndian.Uint32(f.lengthBuf[:])
		if length == 0 {
			f.reset()
			return nil, ErrMessageEmpty
		}
		if length > f.maxMessageSize {
			f.reset()
			return nil, fmt.Errorf("%w: %d > %d", ErrMessageTooLarge, length, f.maxMessageSize)
		}
		f.payload = make([]byte, length)
	}

	for f.payloadN < len(f.payload) {
		n, err := f.rw.Read(f.payload[f.payloadN:])
		f.payloadN += n
		if f.payloadN == len(f.payload) {
			break
		}
		if err != nil {
			if err == io.EOF {
				f.reset()
				return nil, ErrFrameTruncated
			}
			return nil, fmt.Errorf("failed to read payload: %w", err)
		}
	}

	payload := f.payload
	f.reset()
	return payload, nil
}

func (f *Framer) reset() {
	f.lengthN = 0
	f.payload = nil
	f.payloadN = 0
}

// FrameSize returns the total frame size including the length prefix.
func FrameSize(payloadSize int) int {
	return LengthPrefixSize + payloadSize
}
