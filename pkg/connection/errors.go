package connection

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is against these; *Error matches the sentinel
// of its Kind.
var (
	ErrConfiguration    = errors.New("configuration error")
	ErrTransport        = errors.New("transport error")
	ErrHandshakeTimeout = errors.New("handshake timeout")
	ErrTLSConfig        = errors.New("TLS configuration error")

	// ErrConnectionFailed is returned by a fresh Connect whose handshake
	// was not acknowledged in time.
	ErrConnectionFailed = ErrHandshakeTimeout

	// ErrAlreadyConnected is returned by Connect while a handshake is in
	// flight or the connection is established.
	ErrAlreadyConnected = errors.New("already connected")

	// ErrReconnectExhausted is returned when the reconnect attempt limit is hit.
	ErrReconnectExhausted = errors.New("reconnect attempts exhausted")
)

// ErrorKind classifies an Error.
type ErrorKind uint8

const (
	// KindConfiguration is an invalid endpoint or missing collaborator.
	KindConfiguration ErrorKind = iota + 1

	// KindTransport is a failure to open or upgrade the stream.
	KindTransport

	// KindHandshakeTimeout is a CONNECT that was not acknowledged in time.
	KindHandshakeTimeout

	// KindTLSConfig is TLS requested without a TLS configuration.
	KindTLSConfig
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindTransport:
		return "transport"
	case KindHandshakeTimeout:
		return "handshake timeout"
	case KindTLSConfig:
		return "tls configuration"
	default:
		return "unknown"
	}
}

// Error is the tagged error returned by Manager operations.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("connection: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("connection: %s: %s: %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel for e.Kind. A TLS configuration error is also a
// configuration error.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrConfiguration:
		return e.Kind == KindConfiguration || e.Kind == KindTLSConfig
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrHandshakeTimeout:
		return e.Kind == KindHandshakeTimeout
	case ErrTLSConfig:
		return e.Kind == KindTLSConfig
	}
	return false
}

func configError(op string, format string, args ...any) *Error {
	return &Error{Kind: KindConfiguration, Op: op, Err: fmt.Errorf(format, args...)}
}
