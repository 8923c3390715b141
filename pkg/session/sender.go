package session

import (
	"errors"
	"fmt"
	"net"
	"sort"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/mqttlink/mqttlink-go/pkg/connection"
	"github.com/mqttlink/mqttlink-go/pkg/log"
	"github.com/mqttlink/mqttlink-go/pkg/transport"
	"github.com/mqttlink/mqttlink-go/pkg/wire"
)

// Session errors.
var (
	ErrNotAttached = errors.New("no socket attached")
	ErrQueueFull   = errors.New("publish queue full")
)

// DefaultWriteTimeout bounds a single frame write.
const DefaultWriteTimeout = 5 * time.Second

// SenderConfig configures a Sender.
type SenderConfig struct {
	// Clock is the time source for activity timestamps (default: wall clock).
	Clock clock.Clock

	// Diagnostics receives log messages (default: discard).
	Diagnostics log.Diagnostics

	// WriteTimeout bounds each frame write (default: 5s).
	WriteTimeout time.Duration

	// MaxMessageSize limits frame payloads (default: transport.DefaultMaxMessageSize).
	MaxMessageSize uint32
}

// Sender writes packets to the attached socket.
type Sender struct {
	codec        wire.Codec
	clock        clock.Clock
	diag         log.Diagnostics
	writeTimeout time.Duration
	maxSize      uint32

	mu            sync.Mutex
	conn          net.Conn
	framer        *transport.Framer
	lastSent      time.Time
	lastProbeSent time.Time
	nextID        uint16
	pending       map[uint16]*wire.Packet
}

// NewSender creates a Sender with no socket attached.
func NewSender(cfg SenderConfig) *Sender {
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.MaxMessageSize == 0 {
		cfg.MaxMessageSize = transport.DefaultMaxMessageSize
	}
	return &Sender{
		clock:        cfg.Clock,
		diag:         log.OrNop(cfg.Diagnostics),
		writeTimeout: cfg.WriteTimeout,
		maxSize:      cfg.MaxMessageSize,
		pending:      make(map[uint16]*wire.Packet),
	}
}

// AttachSocket implements connection.OutboundSender.
func (s *Sender) AttachSocket(conn net.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn = conn
	s.framer = nil
	// A probe left unanswered on the previous socket is not outstanding here.
	s.lastProbeSent = time.Time{}
	if conn != nil {
		s.framer = transport.NewFramerWithMaxSize(conn, s.maxSize)
	}
}

// Send implements connection.OutboundSender.
func (s *Sender) Send(p *wire.Packet) error {
	data, err := wire.Marshal(p)
	if err != nil {
		return err
	}

	s.mu.Lock()
	conn, framer := s.conn, s.framer
	s.mu.Unlock()
	if framer == nil {
		return fmt.Errorf("send %s: %w", p.Type, ErrNotAttached)
	}

	if err := conn.SetWriteDeadline(time.Now().Add(s.writeTimeout)); err != nil {
		return fmt.Errorf("send %s: %w", p.Type, err)
	}
	if err := framer.WriteFrame(data); err != nil {
		return fmt.Errorf("send %s: %w", p.Type, err)
	}

	s.mu.Lock()
	s.lastSent = s.clock.Now()
	if p.Type == wire.TypePingReq {
		s.lastProbeSent = s.lastSent
	}
	s.mu.Unlock()
	return nil
}

// SendProbeRequest implements connection.OutboundSender.
func (s *Sender) SendProbeRequest() error {
	return s.Send(s.codec.EncodePingReq())
}

// Publish sends msg. A QoS 1 message gets a packet identifier and is kept
// until Ack is called with it. The identifier is returned (0 for QoS 0).
func (s *Sender) Publish(msg wire.Message) (uint16, error) {
	var id uint16
	if msg.QoS > 0 {
		id = s.allocateID()
	}

	p, err := s.codec.EncodePublish(id, msg)
	if err != nil {
		return 0, err
	}

	if id != 0 {
		s.mu.Lock()
		s.pending[id] = p
		s.mu.Unlock()
	}

	if err := s.Send(p); err != nil {
		return id, err
	}
	return id, nil
}

// allocateID returns the next free non-zero packet identifier.
func (s *Sender) allocateID() uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		s.nextID++
		if s.nextID == 0 {
			s.nextID = 1
		}
		if _, used := s.pending[s.nextID]; !used {
			return s.nextID
		}
	}
}

// Ack releases the pending packet id. It reports whether id was pending.
func (s *Sender) Ack(id uint16) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pending[id]; !ok {
		return false
	}
	delete(s.pending, id)
	return true
}

// PendingAcks returns the number of packets awaiting acknowledgment.
func (s *Sender) PendingAcks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// DiscardPendingAcks implements connection.OutboundSender.
// With retry the pending packets are resent in identifier order and stay
// pending; without it they are dropped.
func (s *Sender) DiscardPendingAcks(retry bool) {
	s.mu.Lock()
	if !retry {
		n := len(s.pending)
		clear(s.pending)
		s.mu.Unlock()
		if n > 0 {
			s.diag.Warn("dropping unacknowledged packets", "count", n)
		}
		return
	}
	ids := make([]uint16, 0, len(s.pending))
	for id := range s.pending {
		ids = append(ids, id)
	}
	packets := make([]*wire.Packet, 0, len(ids))
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		packets = append(packets, s.pending[id])
	}
	s.mu.Unlock()

	for _, p := range packets {
		if err := s.Send(p); err != nil {
			s.diag.Warn("failed to resend packet", "id", p.ID, "error", err)
		}
	}
}

// LastSentAt implements connection.OutboundSender.
func (s *Sender) LastSentAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSent
}

// LastProbeSentAt implements connection.OutboundSender.
func (s *Sender) LastProbeSentAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastProbeSent
}

var _ connection.OutboundSender = (*Sender)(nil)
