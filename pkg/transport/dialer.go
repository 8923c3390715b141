package transport

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"
)

// DefaultDialTimeout bounds both the TCP dial and the TLS handshake.
const DefaultDialTimeout = 10 * time.Second

// Transport errors.
var (
	ErrTLSConfigRequired = errors.New("TLS requested without a TLS configuration")
	ErrInvalidEndpoint   = errors.New("invalid endpoint")
)

// Dialer opens TCP streams and upgrades them to TLS.
// The zero value uses DefaultDialTimeout.
type Dialer struct {
	// Timeout bounds each dial and each TLS handshake.
	Timeout time.Duration

	// KeepAlive is the TCP keep-alive period (0 = OS default, <0 = disabled).
	KeepAlive time.Duration
}

// NewDialer creates a Dialer with the given timeout.
func NewDialer(timeout time.Duration) *Dialer {
	return &Dialer{Timeout: timeout}
}

func (d *Dialer) timeout() time.Duration {
	if d == nil || d.Timeout <= 0 {
		return DefaultDialTimeout
	}
	return d.Timeout
}

// OpenStream dials a TCP connection to host:port.
func (d *Dialer) OpenStream(ctx context.Context, host string, port int) (net.Conn, error) {
	if host == "" || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("%w: %q:%d", ErrInvalidEndpoint, host, port)
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout())
	defer cancel()

	nd := &net.Dialer{}
	if d != nil {
		nd.KeepAlive = d.KeepAlive
	}
	conn, err := nd.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return nil, fmt.Errorf("dial failed: %w", err)
	}
	return conn, nil
}

// WrapTLS performs a client TLS handshake over conn.
// serverName is used for SNI and verification when cfg.ServerName is empty.
// On handshake failure conn is closed.
func (d *Dialer) WrapTLS(ctx context.Context, conn net.Conn, serverName string, cfg *tls.Config) (net.Conn, error) {
	if cfg == nil {
		return nil, ErrTLSConfigRequired
	}

	conf := cfg.Clone()
	if conf.ServerName == "" {
		conf.ServerName = serverName
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout())
	defer cancel()

	tlsConn := tls.Client(conn, conf)
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("TLS handshake failed: %w", err)
	}
	return tlsConn, nil
}
