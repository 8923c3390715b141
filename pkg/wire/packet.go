package wire

import (
	"errors"
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Wire errors.
var (
	ErrUnknownPacketType = errors.New("unknown packet type")
	ErrUnexpectedType    = errors.New("unexpected packet type")
	ErrInvalidClientID   = errors.New("client id required for persistent session")
	ErrInvalidQoS        = errors.New("invalid QoS")
	ErrEmptyTopic        = errors.New("empty topic")
)

// ProtocolName and ProtocolLevel identify the protocol in CONNECT.
const (
	ProtocolName  = "MQTT"
	ProtocolLevel = 4
)

// MaxKeepAlive is the largest keep-alive interval a CONNECT can carry.
const MaxKeepAlive = 65535 * time.Second

// PacketType identifies a packet.
type PacketType uint8

const (
	TypeConnect    PacketType = 1
	TypeConnAck    PacketType = 2
	TypePublish    PacketType = 3
	TypePubAck     PacketType = 4
	TypePingReq    PacketType = 12
	TypePingResp   PacketType = 13
	TypeDisconnect PacketType = 14
)

// String returns the packet type name.
func (t PacketType) String() string {
	switch t {
	case TypeConnect:
		return "CONNECT"
	case TypeConnAck:
		return "CONNACK"
	case TypePublish:
		return "PUBLISH"
	case TypePubAck:
		return "PUBACK"
	case TypePingReq:
		return "PINGREQ"
	case TypePingResp:
		return "PINGRESP"
	case TypeDisconnect:
		return "DISCONNECT"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether t is a known packet type.
func (t PacketType) Valid() bool {
	return t.String() != "UNKNOWN"
}

// Packet is the envelope sent over the stream.
type Packet struct {
	Type PacketType `cbor:"1,keyasint"`

	// ID is the packet identifier for PUBLISH (QoS 1) and PUBACK.
	ID uint16 `cbor:"2,keyasint,omitempty"`

	// Body is the CBOR-encoded type-specific payload.
	Body cbor.RawMessage `cbor:"3,keyasint,omitempty"`
}

// SessionParams are the caller-supplied parameters of a session.
type SessionParams struct {
	ClientID     string
	Username     string
	Password     string
	CleanSession bool

	// KeepAlive is rounded up to whole seconds on the wire.
	KeepAlive time.Duration

	// Will is published by the broker if the connection is lost.
	Will *Message
}

// Message is an application message.
type Message struct {
	Topic   string `cbor:"1,keyasint"`
	Payload []byte `cbor:"2,keyasint,omitempty"`
	QoS     uint8  `cbor:"3,keyasint,omitempty"`
	Retain  bool   `cbor:"4,keyasint,omitempty"`
}

// Validate checks topic and QoS.
func (m *Message) Validate() error {
	if m.Topic == "" {
		return ErrEmptyTopic
	}
	if m.QoS > 1 {
		return fmt.Errorf("%w: %d", ErrInvalidQoS, m.QoS)
	}
	return nil
}

// Connect is the body of a CONNECT packet.
type Connect struct {
	ProtocolName  string   `cbor:"1,keyasint"`
	ProtocolLevel uint8    `cbor:"2,keyasint"`
	ClientID      string   `cbor:"3,keyasint"`
	Username      string   `cbor:"4,keyasint,omitempty"`
	Password      string   `cbor:"5,keyasint,omitempty"`
	CleanSession  bool     `cbor:"6,keyasint,omitempty"`
	KeepAlive     uint16   `cbor:"7,keyasint"`
	Will          *Message `cbor:"8,keyasint,omitempty"`
}

// ReturnCode is the CONNACK result.
type ReturnCode uint8

const (
	Accepted                   ReturnCode = 0
	RefusedProtocolVersion     ReturnCode = 1
	RefusedIdentifierRejected  ReturnCode = 2
	RefusedServerUnavailable   ReturnCode = 3
	RefusedBadUsernamePassword ReturnCode = 4
	RefusedNotAuthorized       ReturnCode = 5
)

// String returns a human-readable description.
func (c ReturnCode) String() string {
	switch c {
	case Accepted:
		return "accepted"
	case RefusedProtocolVersion:
		return "unacceptable protocol version"
	case RefusedIdentifierRejected:
		return "identifier rejected"
	case RefusedServerUnavailable:
		return "server unavailable"
	case RefusedBadUsernamePassword:
		return "bad user name or password"
	case RefusedNotAuthorized:
		return "not authorized"
	default:
		return "unknown"
	}
}

// ConnAck is the body of a CONNACK packet.
type ConnAck struct {
	SessionPresent bool       `cbor:"1,keyasint,omitempty"`
	ReturnCode     ReturnCode `cbor:"2,keyasint"`
}

// KeepAliveSeconds converts d to the on-wire keep-alive value,
// rounding up and clamping to MaxKeepAlive.
func KeepAliveSeconds(d time.Duration) uint16 {
	if d <= 0 {
		return 0
	}
	if d >= MaxKeepAlive {
		return 65535
	}
	return uint16((d + time.Second - 1) / time.Second)
}
