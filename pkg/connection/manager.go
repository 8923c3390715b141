package connection

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/mqttlink/mqttlink-go/pkg/log"
	"github.com/mqttlink/mqttlink-go/pkg/transport"
	"github.com/mqttlink/mqttlink-go/pkg/wire"
)

// Defaults.
const (
	// DefaultHandshakeTimeout bounds the CONNECT → CONNACK wait.
	DefaultHandshakeTimeout = 5 * time.Second

	// DefaultPollInterval is the pause between handshake polls.
	DefaultPollInterval = 10 * time.Millisecond
)

// Config configures a Manager.
type Config struct {
	// Host and Port of the broker. Host must be non-empty and Port positive.
	Host string
	Port int

	// UseTLS upgrades the TCP stream with TLSConfig, which is then required.
	UseTLS    bool
	TLSConfig *tls.Config

	// HandshakeTimeout bounds the CONNECT → CONNACK wait (default: 5s).
	HandshakeTimeout time.Duration

	// PollInterval is the pause between handshake polls (default: 10ms).
	PollInterval time.Duration

	// Transport opens streams (default: transport.Dialer).
	Transport Transport

	// Clock is the time source (default: wall clock).
	Clock clock.Clock

	// Diagnostics receives log messages (default: discard).
	Diagnostics log.Diagnostics
}

// Manager owns the transport of one logical connection and drives its
// handshake, keep-alive and shutdown.
type Manager struct {
	sender  OutboundSender
	handler InboundHandler
	codec   PacketCodec

	useTLS           bool
	tlsConfig        *tls.Config
	handshakeTimeout time.Duration
	pollInterval     time.Duration
	transport        Transport
	clock            clock.Clock
	diag             log.Diagnostics

	mu     sync.RWMutex
	host   string
	port   int
	status Status
	socket net.Conn
}

// NewManager creates a Manager in StatusDisconnected.
func NewManager(cfg Config, sender OutboundSender, handler InboundHandler, codec PacketCodec) (*Manager, error) {
	if sender == nil || handler == nil || codec == nil {
		return nil, configError("new manager", "sender, handler and codec are required")
	}
	if cfg.HandshakeTimeout < 0 {
		return nil, configError("new manager", "negative handshake timeout %v", cfg.HandshakeTimeout)
	}
	if cfg.HandshakeTimeout == 0 {
		cfg.HandshakeTimeout = DefaultHandshakeTimeout
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.Transport == nil {
		cfg.Transport = transport.NewDialer(cfg.HandshakeTimeout)
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}

	m := &Manager{
		sender:           sender,
		handler:          handler,
		codec:            codec,
		useTLS:           cfg.UseTLS,
		tlsConfig:        cfg.TLSConfig,
		handshakeTimeout: cfg.HandshakeTimeout,
		pollInterval:     cfg.PollInterval,
		transport:        cfg.Transport,
		clock:            cfg.Clock,
		diag:             log.OrNop(cfg.Diagnostics),
		status:           StatusDisconnected,
	}
	if err := m.SetEndpoint(cfg.Host, cfg.Port); err != nil {
		return nil, err
	}
	return m, nil
}

// SetEndpoint validates and sets the broker endpoint.
// On error the previous endpoint is kept.
func (m *Manager) SetEndpoint(host string, port int) error {
	if host == "" {
		m.diag.Error("host is empty, cannot set up the connection")
		return configError("set endpoint", "host must not be empty")
	}
	if port <= 0 {
		m.diag.Error("port is invalid, cannot set up the connection", "port", port)
		return configError("set endpoint", "port must be positive, got %d", port)
	}

	m.mu.Lock()
	m.host = host
	m.port = port
	m.mu.Unlock()
	return nil
}

// Endpoint returns the configured host and port.
func (m *Manager) Endpoint() (string, int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.host, m.port
}

// Status returns the current status.
func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// IsConnected returns true if the handshake has been acknowledged.
func (m *Manager) IsConnected() bool {
	return m.Status() == StatusConnected
}

// ReportStatus applies a status observed by the inbound path (for example a
// reader goroutine that saw the CONNACK or lost the stream). Invalid
// transitions are ignored. It returns the resulting status.
func (m *Manager) ReportStatus(s Status) Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setStatusLocked(s)
	return m.status
}

// setStatusLocked applies from → to if valid. Caller holds m.mu.
func (m *Manager) setStatusLocked(to Status) bool {
	if !canTransition(m.status, to) {
		return false
	}
	m.status = to
	return true
}

func (m *Manager) setStatus(to Status) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setStatusLocked(to)
}

// establishTransport replaces the held stream with a fresh one and returns
// it. The returned conn is nil if no stream could be established.
//
// Failures to open the TCP stream or to complete the TLS handshake are
// logged and leave the socket absent; they surface later as a handshake
// timeout. Only configuration problems are returned.
func (m *Manager) establishTransport(ctx context.Context) (net.Conn, error) {
	m.mu.Lock()
	host, port := m.host, m.port
	old := m.socket
	m.socket = nil
	m.mu.Unlock()

	if old != nil {
		old.Close()
	}
	if host == "" || port <= 0 {
		return nil, configError("establish transport", "invalid endpoint %q:%d", host, port)
	}

	m.diag.Info("attempting to connect", "host", host, "port", port, "tls", m.useTLS)

	conn, err := m.transport.OpenStream(ctx, host, port)
	if err != nil {
		m.diag.Warn("could not open a socket", "host", host, "port", port,
			"error", &Error{Kind: KindTransport, Op: "open stream", Err: err})
		return nil, nil
	}

	if m.useTLS {
		if m.tlsConfig == nil {
			conn.Close()
			m.diag.Error("TLS requested but no TLS configuration was provided", "host", host)
			return nil, &Error{Kind: KindTLSConfig, Op: "establish transport", Err: transport.ErrTLSConfigRequired}
		}
		secure, err := m.transport.WrapTLS(ctx, conn, host, m.tlsConfig)
		if err != nil {
			conn.Close()
			if errors.Is(err, transport.ErrTLSConfigRequired) {
				return nil, &Error{Kind: KindTLSConfig, Op: "establish transport", Err: err}
			}
			m.diag.Warn("could not establish a TLS session", "host", host, "port", port,
				"error", &Error{Kind: KindTransport, Op: "wrap tls", Err: err})
			return nil, nil
		}
		conn = secure
	}

	m.mu.Lock()
	m.socket = conn
	m.mu.Unlock()
	return conn, nil
}

// Connect (re)establishes the transport, sends CONNECT and waits for the
// acknowledgment until the handshake timeout.
//
// If the handshake times out, a fresh attempt (reconnect false) returns an
// error matching ErrConnectionFailed; a reconnect attempt returns
// StatusDisconnected and a nil error so the caller can retry. Connect on a
// Manager that is NEW or CONNECTED returns ErrAlreadyConnected.
//
// Connect blocks until the handshake completes or times out.
func (m *Manager) Connect(ctx context.Context, params wire.SessionParams, reconnect bool) (Status, error) {
	m.mu.Lock()
	if m.status != StatusDisconnected {
		st := m.status
		m.mu.Unlock()
		return st, ErrAlreadyConnected
	}
	m.setStatusLocked(StatusNew)
	m.mu.Unlock()

	conn, err := m.establishTransport(ctx)
	// Both collaborators follow the socket, including when it is absent.
	m.sender.AttachSocket(conn)
	m.handler.AttachSocket(conn)
	if err != nil {
		m.setStatus(StatusDisconnected)
		return StatusDisconnected, err
	}

	packet, err := m.codec.EncodeConnect(params)
	if err != nil {
		m.setStatus(StatusDisconnected)
		return StatusDisconnected, &Error{Kind: KindConfiguration, Op: "connect", Err: err}
	}
	m.handler.SetCleanSession(params.CleanSession)

	if err := m.sender.Send(packet); err != nil {
		// Not fatal here: the missing CONNACK turns into a handshake timeout.
		m.diag.Warn("failed to send connect packet", "error", err)
	}

	return m.awaitAck(ctx, reconnect)
}

// awaitAck polls the inbound handler until CONNECTED or the deadline.
func (m *Manager) awaitAck(ctx context.Context, reconnect bool) (Status, error) {
	deadline := m.clock.Now().Add(m.handshakeTimeout)
	pollCtx, cancel := m.clock.WithDeadline(ctx, deadline)
	defer cancel()

	for {
		if m.handler.PollNext(pollCtx) == StatusConnected {
			m.setStatus(StatusConnected)
		}
		if m.IsConnected() {
			return StatusConnected, nil
		}
		if !m.clock.Now().Before(deadline) {
			break
		}
		if err := ctx.Err(); err != nil {
			m.setStatus(StatusDisconnected)
			return StatusDisconnected, err
		}

		select {
		case <-pollCtx.Done():
		case <-m.clock.After(m.pollInterval):
		}
	}

	m.setStatus(StatusDisconnected)
	host, _ := m.Endpoint()
	m.diag.Error("connection failed, no acknowledgment received", "host", host, "timeout", m.handshakeTimeout)
	if reconnect {
		return StatusDisconnected, nil
	}
	return StatusDisconnected, &Error{
		Kind: KindHandshakeTimeout,
		Op:   "connect",
		Err:  fmt.Errorf("no acknowledgment from %s within %v", host, m.handshakeTimeout),
	}
}

// Disconnect closes the connection.
//
// With explicit set it performs a graceful shutdown first, in this order:
// pending acknowledgments are discarded without retry, a DISCONNECT packet
// is sent, task is cancelled if alive, and publisher is flushed. The socket
// is then closed, and both collaborators are detached from it, in every
// case. publisher and task may be nil.
//
// Disconnect is idempotent.
func (m *Manager) Disconnect(publisher Publisher, explicit bool, task BackgroundTask) {
	host, _ := m.Endpoint()
	m.diag.Info("disconnecting", "host", host, "explicit", explicit)

	if explicit {
		m.sender.DiscardPendingAcks(false)
		if err := m.sender.Send(m.codec.EncodeDisconnect()); err != nil {
			m.diag.Warn("failed to send disconnect packet", "error", err)
		}
		if task != nil && task.Alive() {
			task.Cancel()
		}
		if publisher != nil {
			publisher.Flush()
		}
	}

	m.mu.Lock()
	conn := m.socket
	m.socket = nil
	m.setStatusLocked(StatusDisconnected)
	m.mu.Unlock()

	if conn != nil {
		if err := conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			m.diag.Warn("error closing socket", "error", err)
		}
	}
	m.sender.AttachSocket(nil)
	m.handler.AttachSocket(nil)
}
