package config

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"log/slog"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mqttlink/mqttlink-go/pkg/connection"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Broker.Host)
	assert.Equal(t, 1883, cfg.Broker.Port)
	assert.Equal(t, 60*time.Second, cfg.Session.KeepAlive)
	assert.True(t, cfg.Session.CleanSession)
	assert.True(t, cfg.Session.Persistent)
	assert.Equal(t, connection.DefaultHandshakeTimeout, cfg.HandshakeTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())

	if _, err := uuid.Parse(cfg.Session.ClientID); err != nil {
		t.Errorf("generated client id %q is not a UUID: %v", cfg.Session.ClientID, err)
	}
	assert.True(t, cfg.ClientIDGenerated())
}

func TestParse(t *testing.T) {
	data := []byte(`
broker:
  host: broker.example.com
  port: 1884
session:
  client_id: meter-7
  username: user
  password: secret
  clean_session: false
  keep_alive: 30s
  persistent: false
  state_file: /var/lib/mqttlink/state.json
handshake_timeout: 2s
poll_interval: 5ms
reconnect:
  initial: 500ms
  max: 10s
  multiplier: 3
  jitter: 0.1
  max_attempts: 4
log:
  level: debug
  record_file: /tmp/mqttlink.cbor
`)

	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "broker.example.com", cfg.Broker.Host)
	assert.Equal(t, 1884, cfg.Broker.Port)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, "/tmp/mqttlink.cbor", cfg.Log.RecordFile)

	params := cfg.SessionParams()
	assert.Equal(t, "meter-7", params.ClientID)
	assert.False(t, cfg.ClientIDGenerated())
	assert.Equal(t, "/var/lib/mqttlink/state.json", cfg.Session.StateFile)
	assert.Equal(t, "user", params.Username)
	assert.Equal(t, "secret", params.Password)
	assert.False(t, params.CleanSession)
	assert.Equal(t, 30*time.Second, params.KeepAlive)
	assert.False(t, cfg.Session.Persistent)

	cc, err := cfg.ConnectionConfig()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cc.HandshakeTimeout)
	assert.Equal(t, 5*time.Millisecond, cc.PollInterval)
	assert.False(t, cc.UseTLS)
	assert.Nil(t, cc.TLSConfig)

	rc := cfg.ReconnectConfig()
	assert.Equal(t, 500*time.Millisecond, rc.Backoff.Initial)
	assert.Equal(t, 10*time.Second, rc.Backoff.Max)
	assert.Equal(t, 3.0, rc.Backoff.Multiplier)
	assert.Equal(t, 0.1, rc.Backoff.Jitter)
	assert.Equal(t, 4, rc.MaxAttempts)
}

func TestParseTLSDefaultPort(t *testing.T) {
	cfg, err := Parse([]byte("tls:\n  enabled: true\n  insecure_skip_verify: true\n"))
	require.NoError(t, err)
	assert.Equal(t, 8883, cfg.Broker.Port)

	cfg, err = Parse([]byte("broker:\n  port: 9000\ntls:\n  enabled: true\n"))
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Broker.Port)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown field", "brokr:\n  host: x\n"},
		{"bad duration", "handshake_timeout: soon\n"},
		{"empty host", "broker:\n  host: \"\"\n"},
		{"port out of range", "broker:\n  port: 70000\n"},
		{"negative port", "broker:\n  port: -1\n"},
		{"cert without key", "tls:\n  cert_file: c.pem\n"},
		{"keep alive too large", "session:\n  keep_alive: 100000s\n"},
		{"zero handshake timeout", "handshake_timeout: 0s\n"},
		{"negative attempts", "reconnect:\n  max_attempts: -1\n"},
		{"unknown level", "log:\n  level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Parse() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Defaults()
	cfg.Broker.Host = ""
	cfg.PollInterval = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker.host")
	assert.Contains(t, err.Error(), "broker.port")
	assert.Contains(t, err.Error(), "poll_interval")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.yaml")
	require.NoError(t, os.WriteFile(path, []byte("broker:\n  host: file.example\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file.example", cfg.Broker.Host)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLevels(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		cfg := Defaults()
		cfg.Log.Level = tt.in
		if got := cfg.SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// writeTestPKI writes a self-signed certificate and its key as PEM files.
func writeTestPKI(t *testing.T) (certFile, keyFile string) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "mqttlink test"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth},
		BasicConstraintsValid: true,
		IsCA:                  true,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)
	keyDER, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)

	dir := t.TempDir()
	certFile = filepath.Join(dir, "cert.pem")
	keyFile = filepath.Join(dir, "key.pem")
	require.NoError(t, os.WriteFile(certFile, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))
	require.NoError(t, os.WriteFile(keyFile, pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER}), 0o600))
	return certFile, keyFile
}

func TestClientTLS(t *testing.T) {
	certFile, keyFile := writeTestPKI(t)

	cfg := Defaults()
	cfg.TLS = TLSConfig{
		Enabled:    true,
		CAFile:     certFile,
		CertFile:   certFile,
		KeyFile:    keyFile,
		ServerName: "broker.internal",
		ALPN:       true,
	}

	tc, err := cfg.ClientTLS()
	require.NoError(t, err)
	require.NotNil(t, tc)
	assert.Equal(t, uint16(tls.VersionTLS12), tc.MinVersion)
	assert.Equal(t, "broker.internal", tc.ServerName)
	assert.NotNil(t, tc.RootCAs)
	assert.Len(t, tc.Certificates, 1)
	assert.Equal(t, []string{"mqtt"}, tc.NextProtos)

	cc, err := cfg.ConnectionConfig()
	require.NoError(t, err)
	assert.True(t, cc.UseTLS)
	require.NotNil(t, cc.TLSConfig)
	assert.NotNil(t, cc.TLSConfig.RootCAs)
}

func TestClientTLSErrors(t *testing.T) {
	cfg := Defaults()
	tc, err := cfg.ClientTLS()
	assert.NoError(t, err)
	assert.Nil(t, tc, "TLS disabled")

	cfg.TLS = TLSConfig{Enabled: true, CAFile: filepath.Join(t.TempDir(), "missing.pem")}
	_, err = cfg.ClientTLS()
	assert.Error(t, err)

	_, err = cfg.ConnectionConfig()
	assert.Error(t, err)
}
