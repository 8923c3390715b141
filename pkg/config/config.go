package config

import (
	"bytes"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/mqttlink/mqttlink-go/pkg/connection"
	"github.com/mqttlink/mqttlink-go/pkg/transport"
	"github.com/mqttlink/mqttlink-go/pkg/wire"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the complete client configuration.
type Config struct {
	Broker           BrokerConfig    `yaml:"broker"`
	TLS              TLSConfig       `yaml:"tls"`
	Session          SessionConfig   `yaml:"session"`
	HandshakeTimeout time.Duration   `yaml:"handshake_timeout"`
	PollInterval     time.Duration   `yaml:"poll_interval"`
	Reconnect        ReconnectConfig `yaml:"reconnect"`
	Log              LogConfig       `yaml:"log"`

	generatedClientID bool
}

// BrokerConfig is the broker endpoint.
type BrokerConfig struct {
	Host string `yaml:"host"`

	// Port 0 selects 8883 with TLS and 1883 without.
	Port int `yaml:"port"`
}

// TLSConfig selects TLS and its material.
type TLSConfig struct {
	Enabled            bool   `yaml:"enabled"`
	CAFile             string `yaml:"ca_file"`
	CertFile           string `yaml:"cert_file"`
	KeyFile            string `yaml:"key_file"`
	ServerName         string `yaml:"server_name"`
	ALPN               bool   `yaml:"alpn"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify"`
}

// SessionConfig holds the CONNECT parameters.
type SessionConfig struct {
	ClientID     string        `yaml:"client_id"`
	Username     string        `yaml:"username"`
	Password     string        `yaml:"password"`
	CleanSession bool          `yaml:"clean_session"`
	KeepAlive    time.Duration `yaml:"keep_alive"`

	// Persistent enables keep-alive probing.
	Persistent bool `yaml:"persistent"`

	// StateFile, if set, keeps a generated client_id stable across runs.
	StateFile string `yaml:"state_file"`
}

// ReconnectConfig controls automatic reconnection.
type ReconnectConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Initial     time.Duration `yaml:"initial"`
	Max         time.Duration `yaml:"max"`
	Multiplier  float64       `yaml:"multiplier"`
	Jitter      float64       `yaml:"jitter"`
	MaxAttempts int           `yaml:"max_attempts"`
}

// LogConfig controls diagnostics output.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// RecordFile, if set, receives a CBOR recording of all diagnostics.
	RecordFile string `yaml:"record_file"`
}

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Broker: BrokerConfig{Host: "localhost"},
		Session: SessionConfig{
			CleanSession: true,
			KeepAlive:    60 * time.Second,
			Persistent:   true,
		},
		HandshakeTimeout: connection.DefaultHandshakeTimeout,
		PollInterval:     connection.DefaultPollInterval,
		Reconnect: ReconnectConfig{
			Enabled:    true,
			Initial:    connection.InitialBackoff,
			Max:        connection.MaxBackoff,
			Multiplier: connection.BackoffMultiplier,
			Jitter:     connection.JitterFactor,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Parse decodes YAML over Defaults and validates the result.
// Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Defaults()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills the fields whose default depends on other fields.
func (c *Config) applyDefaults() {
	if c.Broker.Port == 0 {
		c.Broker.Port = transport.DefaultPort
		if c.TLS.Enabled {
			c.Broker.Port = transport.DefaultTLSPort
		}
	}
	if c.Session.ClientID == "" {
		c.Session.ClientID = uuid.NewString()
		c.generatedClientID = true
	}
}

// ClientIDGenerated reports whether Session.ClientID was generated because
// the configuration left it empty.
func (c *Config) ClientIDGenerated() bool {
	return c.generatedClientID
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Broker.Host == "" {
		fail("broker.host is required")
	}
	if c.Broker.Port <= 0 || c.Broker.Port > 65535 {
		fail("broker.port %d out of range", c.Broker.Port)
	}
	if (c.TLS.CertFile == "") != (c.TLS.KeyFile == "") {
		fail("tls.cert_file and tls.key_file must be set together")
	}
	if c.Session.KeepAlive < 0 || c.Session.KeepAlive > wire.MaxKeepAlive {
		fail("session.keep_alive %v out of range", c.Session.KeepAlive)
	}
	if c.HandshakeTimeout <= 0 {
		fail("handshake_timeout must be positive")
	}
	if c.PollInterval <= 0 {
		fail("poll_interval must be positive")
	}
	if c.Reconnect.MaxAttempts < 0 {
		fail("reconnect.max_attempts must not be negative")
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		fail("%v", err)
	}
	return errors.Join(errs...)
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.Log.Level)
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// ClientTLS builds the TLS client configuration. It returns nil when TLS
// is disabled.
func (c *Config) ClientTLS() (*tls.Config, error) {
	if !c.TLS.Enabled {
		return nil, nil
	}

	tc := &transport.TLSConfig{
		ServerName:         c.TLS.ServerName,
		UseALPN:            c.TLS.ALPN,
		InsecureSkipVerify: c.TLS.InsecureSkipVerify,
	}
	if c.TLS.CAFile != "" {
		pool, err := transport.LoadCertPool(c.TLS.CAFile)
		if err != nil {
			return nil, err
		}
		tc.RootCAs = pool
	}
	if c.TLS.CertFile != "" {
		cert, err := transport.LoadKeyPair(c.TLS.CertFile, c.TLS.KeyFile)
		if err != nil {
			return nil, err
		}
		tc.Certificate = cert
	}
	return transport.NewClientTLSConfig(tc)
}

// ConnectionConfig returns the Manager configuration. Clock, Transport and
// Diagnostics are left for the caller.
func (c *Config) ConnectionConfig() (connection.Config, error) {
	tlsConfig, err := c.ClientTLS()
	if err != nil {
		return connection.Config{}, err
	}
	return connection.Config{
		Host:             c.Broker.Host,
		Port:             c.Broker.Port,
		UseTLS:           c.TLS.Enabled,
		TLSConfig:        tlsConfig,
		HandshakeTimeout: c.HandshakeTimeout,
		PollInterval:     c.PollInterval,
	}, nil
}

// SessionParams returns the CONNECT parameters.
func (c *Config) SessionParams() wire.SessionParams {
	return wire.SessionParams{
		ClientID:     c.Session.ClientID,
		Username:     c.Session.Username,
		Password:     c.Session.Password,
		CleanSession: c.Session.CleanSession,
		KeepAlive:    c.Session.KeepAlive,
	}
}

// ReconnectConfig returns the Reconnector configuration.
func (c *Config) ReconnectConfig() connection.ReconnectConfig {
	return connection.ReconnectConfig{
		Backoff: connection.BackoffConfig{
			Initial:    c.Reconnect.Initial,
			Max:        c.Reconnect.Max,
			Multiplier: c.Reconnect.Multiplier,
			Jitter:     c.Reconnect.Jitter,
		},
		MaxAttempts: c.Reconnect.MaxAttempts,
	}
}
