package session

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/mqttlink/mqttlink-go/pkg/connection"
	"github.com/mqttlink/mqttlink-go/pkg/log"
	"github.com/mqttlink/mqttlink-go/pkg/transport"
	"github.com/mqttlink/mqttlink-go/pkg/wire"
)

// DefaultPollSlice bounds the wait of a single PollNext.
const DefaultPollSlice = 10 * time.Millisecond

// HandlerConfig configures a Handler.
type HandlerConfig struct {
	// Clock is the time source for activity timestamps (default: wall clock).
	Clock clock.Clock

	// Diagnostics receives log messages (default: discard).
	Diagnostics log.Diagnostics

	// PollSlice bounds the wait of a single PollNext (default: 10ms).
	PollSlice time.Duration

	// MaxMessageSize limits frame payloads (default: transport.DefaultMaxMessageSize).
	MaxMessageSize uint32

	// OnMessage receives inbound application messages. It runs on the
	// polling goroutine.
	OnMessage func(msg wire.Message)
}

// Handler reads and dispatches inbound packets.
// PollNext and Serve must not be called concurrently.
type Handler struct {
	sender    *Sender
	codec     wire.Codec
	clock     clock.Clock
	diag      log.Diagnostics
	pollSlice time.Duration
	maxSize   uint32
	onMessage func(wire.Message)

	mu             sync.Mutex
	conn           net.Conn
	framer         *transport.Framer
	status         connection.Status
	cleanSession   bool
	sessionPresent bool
	lastReceived   time.Time
	lastProbeResp  time.Time
}

// NewHandler creates a Handler that answers through sender.
func NewHandler(sender *Sender, cfg HandlerConfig) *Handler {
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.PollSlice <= 0 {
		cfg.PollSlice = DefaultPollSlice
	}
	if cfg.MaxMessageSize == 0 {
		cfg.MaxMessageSize = transport.DefaultMaxMessageSize
	}
	return &Handler{
		sender:    sender,
		clock:     cfg.Clock,
		diag:      log.OrNop(cfg.Diagnostics),
		pollSlice: cfg.PollSlice,
		maxSize:   cfg.MaxMessageSize,
		onMessage: cfg.OnMessage,
		status:    connection.StatusDisconnected,
	}
}

// AttachSocket implements connection.InboundHandler. A nil conn leaves the
// handler DISCONNECTED; otherwise it starts a new handshake in NEW.
func (h *Handler) AttachSocket(conn net.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conn = conn
	h.framer = nil
	h.sessionPresent = false
	h.lastProbeResp = time.Time{}
	h.status = connection.StatusDisconnected
	if conn != nil {
		h.framer = transport.NewFramerWithMaxSize(conn, h.maxSize)
		h.status = connection.StatusNew
	}
}

// SetCleanSession implements connection.InboundHandler.
func (h *Handler) SetCleanSession(clean bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cleanSession = clean
}

// CleanSession returns the flag of the current CONNECT.
func (h *Handler) CleanSession() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cleanSession
}

// SessionPresent reports whether the broker resumed a stored session.
func (h *Handler) SessionPresent() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sessionPresent
}

// Status returns the status last observed on the inbound path.
func (h *Handler) Status() connection.Status {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.status
}

// LastReceivedAt implements connection.InboundHandler.
func (h *Handler) LastReceivedAt() time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastReceived
}

// LastProbeResponseAt implements connection.InboundHandler.
func (h *Handler) LastProbeResponseAt() time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastProbeResp
}

func (h *Handler) setStatus(s connection.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status = s
}

// PollNext implements connection.InboundHandler. It waits at most the poll
// slice, or until the ctx deadline if that is earlier, for one frame.
func (h *Handler) PollNext(ctx context.Context) connection.Status {
	h.mu.Lock()
	conn, framer, status := h.conn, h.framer, h.status
	h.mu.Unlock()

	if framer == nil || ctx.Err() != nil {
		return status
	}

	deadline := time.Now().Add(h.pollSlice)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetReadDeadline(deadline); err != nil {
		h.diag.Warn("failed to set read deadline", "error", err)
		h.setStatus(connection.StatusDisconnected)
		return connection.StatusDisconnected
	}

	data, err := framer.ReadFrame()
	if err != nil {
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			return h.Status()
		}
		if status != connection.StatusDisconnected {
			h.diag.Warn("connection lost while reading", "error", err)
		}
		h.setStatus(connection.StatusDisconnected)
		return connection.StatusDisconnected
	}

	p, err := wire.Unmarshal(data)
	if err != nil {
		h.diag.Warn("dropping malformed packet", "error", err)
		return h.Status()
	}

	h.mu.Lock()
	h.lastReceived = h.clock.Now()
	h.mu.Unlock()

	h.dispatch(p)
	return h.Status()
}

func (h *Handler) dispatch(p *wire.Packet) {
	switch p.Type {
	case wire.TypeConnAck:
		ack, err := h.codec.DecodeConnAck(p)
		if err != nil {
			h.diag.Warn("dropping malformed CONNACK", "error", err)
			return
		}
		if ack.ReturnCode != wire.Accepted {
			h.diag.Error("connection refused", "reason", ack.ReturnCode.String())
			h.setStatus(connection.StatusDisconnected)
			return
		}
		h.mu.Lock()
		h.sessionPresent = ack.SessionPresent
		h.status = connection.StatusConnected
		h.mu.Unlock()

	case wire.TypePingResp:
		h.mu.Lock()
		h.lastProbeResp = h.clock.Now()
		h.mu.Unlock()

	case wire.TypePingReq:
		if err := h.sender.Send(h.codec.EncodePingResp()); err != nil {
			h.diag.Warn("failed to answer PINGREQ", "error", err)
		}

	case wire.TypePubAck:
		if !h.sender.Ack(p.ID) {
			h.diag.Warn("PUBACK for unknown packet", "id", p.ID)
		}

	case wire.TypePublish:
		msg, err := h.codec.DecodePublish(p)
		if err != nil {
			h.diag.Warn("dropping malformed PUBLISH", "error", err)
			return
		}
		if msg.QoS > 0 {
			if err := h.sender.Send(h.codec.EncodePubAck(p.ID)); err != nil {
				h.diag.Warn("failed to acknowledge PUBLISH", "id", p.ID, "error", err)
			}
		}
		if h.onMessage != nil {
			h.onMessage(*msg)
		}

	case wire.TypeDisconnect:
		h.diag.Info("server closed the session")
		h.setStatus(connection.StatusDisconnected)

	default:
		h.diag.Warn("unexpected packet", "type", p.Type.String())
	}
}

// Serve polls until ctx is done or the connection is lost, calling report
// on every status change. It returns the last status.
func (h *Handler) Serve(ctx context.Context, report func(connection.Status)) connection.Status {
	last := h.Status()
	for ctx.Err() == nil {
		st := h.PollNext(ctx)
		if st != last {
			last = st
			if report != nil {
				report(st)
			}
		}
		if st == connection.StatusDisconnected {
			break
		}
	}
	return last
}

var _ connection.InboundHandler = (*Handler)(nil)
