package connection

import (
	"context"
	"crypto/tls"
	"net"
	"time"

	"github.com/mqttlink/mqttlink-go/pkg/wire"
)

// Transport opens streams. Implemented by transport.Dialer.
type Transport interface {
	// OpenStream dials a TCP stream to host:port.
	OpenStream(ctx context.Context, host string, port int) (net.Conn, error)

	// WrapTLS upgrades conn to TLS. It fails if cfg is nil.
	WrapTLS(ctx context.Context, conn net.Conn, serverName string, cfg *tls.Config) (net.Conn, error)
}

// OutboundSender transmits packets and tracks outbound activity.
// Implemented by session.Sender.
type OutboundSender interface {
	// AttachSocket hands the current stream to the sender. The sender
	// shares it but never closes it.
	AttachSocket(conn net.Conn)

	// Send transmits a packet.
	Send(p *wire.Packet) error

	// SendProbeRequest transmits a keep-alive probe (no payload).
	SendProbeRequest() error

	// DiscardPendingAcks drops packets awaiting acknowledgment.
	// With retry they are retransmitted instead.
	DiscardPendingAcks(retry bool)

	// LastSentAt is when any packet was last sent.
	LastSentAt() time.Time

	// LastProbeSentAt is when a probe was last sent (zero if never).
	LastProbeSentAt() time.Time
}

// InboundHandler receives and dispatches packets and tracks inbound activity.
// Implemented by session.Handler.
type InboundHandler interface {
	// AttachSocket hands the current stream (possibly nil) to the handler.
	AttachSocket(conn net.Conn)

	// PollNext processes at most one pending inbound event and reports the
	// resulting status. It must return by the ctx deadline.
	PollNext(ctx context.Context) Status

	// LastReceivedAt is when any packet was last received.
	LastReceivedAt() time.Time

	// LastProbeResponseAt is when a probe response was last received
	// (zero if never).
	LastProbeResponseAt() time.Time

	// SetCleanSession records the clean-session flag of the current CONNECT.
	SetCleanSession(clean bool)
}

// Publisher holds outgoing application messages.
// Implemented by session.Publisher.
type Publisher interface {
	// Flush drops pending messages without sending them.
	Flush()
}

// PacketCodec builds CONNECT and DISCONNECT packets.
// Implemented by wire.Codec.
type PacketCodec interface {
	EncodeConnect(params wire.SessionParams) (*wire.Packet, error)
	EncodeDisconnect() *wire.Packet
}

// BackgroundTask is a cancellable background activity, typically the
// KeepAliveTask.
type BackgroundTask interface {
	// Alive reports whether the task is still running.
	Alive() bool

	// Cancel asks the task to stop. It does not wait.
	Cancel()
}

// Compile-time interface satisfaction check.
var _ BackgroundTask = (*KeepAliveTask)(nil)
