package wire

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder mode for packets.
// Configured for deterministic encoding with integer keys.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for packets.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Lenient for forward compatibility
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Marshal encodes a packet to CBOR bytes.
func Marshal(p *Packet) ([]byte, error) {
	if !p.Type.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPacketType, p.Type)
	}
	return encMode.Marshal(p)
}

// Unmarshal decodes CBOR bytes into a packet.
func Unmarshal(data []byte) (*Packet, error) {
	var p Packet
	if err := decMode.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode packet: %w", err)
	}
	if !p.Type.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPacketType, p.Type)
	}
	return &p, nil
}

// Codec builds and parses packets.
// The zero value is ready to use.
type Codec struct{}

// EncodeConnect builds a CONNECT packet from session parameters.
func (Codec) EncodeConnect(params SessionParams) (*Packet, error) {
	if params.ClientID == "" && !params.CleanSession {
		return nil, ErrInvalidClientID
	}
	if params.Will != nil {
		if err := params.Will.Validate(); err != nil {
			return nil, fmt.Errorf("invalid will: %w", err)
		}
	}
	return withBody(TypeConnect, 0, &Connect{
		ProtocolName:  ProtocolName,
		ProtocolLevel: ProtocolLevel,
		ClientID:      params.ClientID,
		Username:      params.Username,
		Password:      params.Password,
		CleanSession:  params.CleanSession,
		KeepAlive:     KeepAliveSeconds(params.KeepAlive),
		Will:          params.Will,
	})
}

// EncodeDisconnect builds a DISCONNECT packet.
func (Codec) EncodeDisconnect() *Packet {
	return &Packet{Type: TypeDisconnect}
}

// EncodePingReq builds a PINGREQ packet.
func (Codec) EncodePingReq() *Packet {
	return &Packet{Type: TypePingReq}
}

// EncodePingResp builds a PINGRESP packet.
func (Codec) EncodePingResp() *Packet {
	return &Packet{Type: TypePingResp}
}

// EncodeConnAck builds a CONNACK packet.
func (Codec) EncodeConnAck(ack ConnAck) (*Packet, error) {
	return withBody(TypeConnAck, 0, &ack)
}

// EncodePublish builds a PUBLISH packet. id is ignored for QoS 0.
func (Codec) EncodePublish(id uint16, msg Message) (*Packet, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	if msg.QoS == 0 {
		id = 0
	}
	return withBody(TypePublish, id, &msg)
}

// EncodePubAck builds a PUBACK packet for id.
func (Codec) EncodePubAck(id uint16) *Packet {
	return &Packet{Type: TypePubAck, ID: id}
}

// DecodeConnect extracts the CONNECT body.
func (Codec) DecodeConnect(p *Packet) (*Connect, error) {
	var c Connect
	if err := decodeBody(p, TypeConnect, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// DecodeConnAck extracts the CONNACK body.
func (Codec) DecodeConnAck(p *Packet) (*ConnAck, error) {
	var ack ConnAck
	if err := decodeBody(p, TypeConnAck, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// DecodePublish extracts the PUBLISH body.
func (Codec) DecodePublish(p *Packet) (*Message, error) {
	var msg Message
	if err := decodeBody(p, TypePublish, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func withBody(t PacketType, id uint16, body any) (*Packet, error) {
	raw, err := encMode.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s body: %w", t, err)
	}
	return &Packet{Type: t, ID: id, Body: raw}, nil
}

func decodeBody(p *Packet, want PacketType, v any) error {
	if p.Type != want {
		return fmt.Errorf("%w: got %s, want %s", ErrUnexpectedType, p.Type, want)
	}
	if err := decMode.Unmarshal(p.Body, v); err != nil {
		return fmt.Errorf("failed to decode %s body: %w", want, err)
	}
	return nil
}
