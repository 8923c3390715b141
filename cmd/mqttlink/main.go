// Command mqttlink connects to a broker, keeps the connection alive and
// reconnects when it is lost.
//
// Usage:
//
//	mqttlink [flags]
//
// Flags:
//
//	-config string     Configuration file path
//	-host string       Broker host (overrides config)
//	-port int          Broker port (overrides config)
//	-log-level string  Log level: debug, info, warn, error
//	-topic string      Publish -message to this topic once connected
//	-message string    Payload for -topic
//	-qos int           QoS for -topic (0 or 1)
//
// Examples:
//
//	# Connect with defaults (localhost:1883)
//	mqttlink
//
//	# Connect with a config file and publish one message
//	mqttlink -config /etc/mqttlink/client.yaml -topic meters/7 -message 42
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/mqttlink/mqttlink-go/pkg/config"
	"github.com/mqttlink/mqttlink-go/pkg/connection"
	"github.com/mqttlink/mqttlink-go/pkg/log"
	"github.com/mqttlink/mqttlink-go/pkg/persistence"
	"github.com/mqttlink/mqttlink-go/pkg/session"
	"github.com/mqttlink/mqttlink-go/pkg/wire"
)

// Flags holds the command line.
type Flags struct {
	ConfigFile string
	Host       string
	Port       int
	LogLevel   string
	Topic      string
	Message    string
	QoS        int
}

var flags Flags

func init() {
	flag.StringVar(&flags.ConfigFile, "config", "", "Configuration file path")
	flag.StringVar(&flags.Host, "host", "", "Broker host (overrides config)")
	flag.IntVar(&flags.Port, "port", 0, "Broker port (overrides config)")
	flag.StringVar(&flags.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.StringVar(&flags.Topic, "topic", "", "Publish -message to this topic once connected")
	flag.StringVar(&flags.Message, "message", "", "Payload for -topic")
	flag.IntVar(&flags.QoS, "qos", 0, "QoS for -topic (0 or 1)")
}

func main() {
	flag.Parse()

	cfg, err := loadConfig(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, flags, logger); err != nil {
		logger.Error("client stopped", "error", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file (if any) and applies flag overrides.
func loadConfig(f Flags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.ConfigFile != "" {
		cfg, err = config.Load(f.ConfigFile)
	} else {
		cfg, err = config.Parse(nil)
	}
	if err != nil {
		return nil, err
	}

	if f.Host != "" {
		cfg.Broker.Host = f.Host
	}
	if f.Port != 0 {
		cfg.Broker.Port = f.Port
	}
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run connects and serves until ctx is cancelled or reconnection gives up.
func run(ctx context.Context, cfg *config.Config, f Flags, logger *slog.Logger) error {
	connID := uuid.NewString()
	var diag log.Diagnostics = log.NewSlogDiagnostics(logger).With("conn", connID[:8])
	if cfg.Log.RecordFile != "" {
		rec, err := log.NewFileRecorder(cfg.Log.RecordFile, connID)
		if err != nil {
			return fmt.Errorf("open record file: %w", err)
		}
		defer rec.Close()
		diag = log.NewMultiDiagnostics(diag, rec)
	}

	var store *persistence.ClientStateStore
	if cfg.Session.StateFile != "" {
		store = persistence.NewClientStateStore(cfg.Session.StateFile)
		restoreClientID(cfg, store, diag)
	}

	cc, err := cfg.ConnectionConfig()
	if err != nil {
		return err
	}
	cc.Diagnostics = diag

	sender := session.NewSender(session.SenderConfig{Diagnostics: diag})
	handler := session.NewHandler(sender, session.HandlerConfig{
		Diagnostics: diag,
		OnMessage: func(msg wire.Message) {
			diag.Info("message received", "topic", msg.Topic, "bytes", len(msg.Payload))
		},
	})
	publisher := session.NewPublisher(0, diag)

	m, err := connection.NewManager(cc, sender, handler, wire.Codec{})
	if err != nil {
		return err
	}

	if f.Topic != "" {
		msg := wire.Message{Topic: f.Topic, Payload: []byte(f.Message), QoS: uint8(f.QoS)}
		if err := publisher.Publish(msg); err != nil {
			return fmt.Errorf("queue message: %w", err)
		}
	}

	c := &client{
		cfg:       cfg,
		diag:      diag,
		manager:   m,
		sender:    sender,
		handler:   handler,
		publisher: publisher,
		store:     store,
	}
	return c.run(ctx)
}

// restoreClientID replaces a generated client id with the one saved by a
// previous run so the broker can resume its session.
func restoreClientID(cfg *config.Config, store *persistence.ClientStateStore, diag log.Diagnostics) {
	if !cfg.ClientIDGenerated() {
		return
	}
	state, err := store.Load()
	if err != nil {
		diag.Warn("failed to load client state", "path", store.Path(), "error", err)
		return
	}
	if state == nil || state.ClientID == "" {
		return
	}
	cfg.Session.ClientID = state.ClientID
	diag.Info("restored client id", "client_id", state.ClientID)
}

var errConnectionLost = errors.New("connection lost")

// client drives one Manager through connect, serve and reconnect cycles.
type client struct {
	cfg       *config.Config
	diag      log.Diagnostics
	manager   *connection.Manager
	sender    *session.Sender
	handler   *session.Handler
	publisher *session.Publisher
	store     *persistence.ClientStateStore
}

func (c *client) run(ctx context.Context) error {
	params := c.cfg.SessionParams()

	status, err := c.manager.Connect(ctx, params, false)
	if ctx.Err() != nil {
		return nil
	}
	if err != nil && !errors.Is(err, connection.ErrHandshakeTimeout) {
		return err
	}

	for {
		if status != connection.StatusConnected {
			if !c.cfg.Reconnect.Enabled {
				if err == nil {
					err = errConnectionLost
				}
				return err
			}
			status, err = c.reconnect(ctx, params)
			if ctx.Err() != nil {
				return nil
			}
			if err != nil {
				return err
			}
			continue
		}

		if !c.serve(ctx) {
			return nil
		}
		status, err = connection.StatusDisconnected, errConnectionLost
	}
}

func (c *client) reconnect(ctx context.Context, params wire.SessionParams) (connection.Status, error) {
	rc := c.cfg.ReconnectConfig()
	rc.Diagnostics = c.diag
	return connection.NewReconnector(c.manager, rc).Run(ctx, params)
}

// serve runs the connected session. It returns true if the connection was
// lost and false after a graceful shutdown.
func (c *client) serve(ctx context.Context) bool {
	task := connection.NewKeepAliveTask(c.manager, connection.KeepAliveTaskConfig{
		Persistent: c.cfg.Session.Persistent,
		KeepAlive:  c.cfg.Session.KeepAlive,
	})
	task.Start(ctx)
	c.saveState()

	served := make(chan struct{})
	go func() {
		defer close(served)
		c.handler.Serve(ctx, func(s connection.Status) { c.manager.ReportStatus(s) })
	}()

	if c.handler.SessionPresent() {
		c.sender.DiscardPendingAcks(true)
	}
	if n, err := c.publisher.Drain(c.sender); err != nil {
		c.diag.Warn("failed to publish queued messages", "sent", n, "error", err)
	} else if n > 0 {
		c.diag.Info("published queued messages", "count", n)
	}

	select {
	case <-ctx.Done():
	case <-served:
	case <-task.Done():
	}

	if ctx.Err() != nil {
		c.manager.Disconnect(c.publisher, true, task)
		<-served
		return false
	}

	c.diag.Warn("connection lost")
	task.Cancel()
	c.manager.Disconnect(c.publisher, false, task)
	<-served
	return true
}

// saveState records the session that was just established.
func (c *client) saveState() {
	if c.store == nil {
		return
	}
	host, port := c.manager.Endpoint()
	err := c.store.Save(&persistence.ClientState{
		ClientID:        c.cfg.Session.ClientID,
		Endpoint:        net.JoinHostPort(host, strconv.Itoa(port)),
		SessionPresent:  c.handler.SessionPresent(),
		LastConnectedAt: time.Now(),
	})
	if err != nil {
		c.diag.Warn("failed to save client state", "path", c.store.Path(), "error", err)
	}
}
