package transport

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
)

// ALPNProtocol is offered when TLSConfig.UseALPN is set.
const ALPNProtocol = "mqtt"

// DefaultTLSPort is the conventional port for TLS connections.
const DefaultTLSPort = 8883

// DefaultPort is the conventional port for plain TCP connections.
const DefaultPort = 1883

// TLSConfig holds client TLS material.
type TLSConfig struct {
	// Certificate is the optional client certificate for mutual TLS.
	Certificate *tls.Certificate

	// RootCAs is the pool of trusted CA certificates.
	// Nil uses the system pool.
	RootCAs *x509.CertPool

	// ServerName overrides the name used for SNI and verification.
	ServerName string

	// UseALPN offers ALPNProtocol during the handshake.
	UseALPN bool

	// InsecureSkipVerify disables certificate verification.
	// Only for testing - never use in production!
	InsecureSkipVerify bool
}

// NewClientTLSConfig creates a crypto/tls client configuration.
func NewClientTLSConfig(cfg *TLSConfig) (*tls.Config, error) {
	if cfg == nil {
		return nil, ErrTLSConfigRequired
	}
	if cfg.Certificate != nil && len(cfg.Certificate.Certificate) == 0 {
		return nil, errors.New("client certificate is empty")
	}

	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
		RootCAs:    cfg.RootCAs,
		ServerName: cfg.ServerName,

		// For testing only
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	}
	if cfg.Certificate != nil {
		tlsConfig.Certificates = []tls.Certificate{*cfg.Certificate}
	}
	if cfg.UseALPN {
		tlsConfig.NextProtos = []string{ALPNProtocol}
	}
	return tlsConfig, nil
}

// LoadCertPool reads PEM-encoded CA certificates from path.
func LoadCertPool(path string) (*x509.CertPool, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read CA file: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("no certificates found in %s", path)
	}
	return pool, nil
}

// LoadKeyPair reads a PEM certificate and key.
func LoadKeyPair(certFile, keyFile string) (*tls.Certificate, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, fmt.Errorf("load key pair: %w", err)
	}
	return &cert, nil
}
