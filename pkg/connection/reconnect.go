package connection

import (
	"context"
	"errors"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/mqttlink/mqttlink-go/pkg/log"
	"github.com/mqttlink/mqttlink-go/pkg/wire"
)

// ReconnectConfig configures a Reconnector.
type ReconnectConfig struct {
	Backoff BackoffConfig

	// MaxAttempts limits the attempts of one Run. Zero means unlimited.
	MaxAttempts int

	// Clock is the time source (default: the Manager's clock).
	Clock clock.Clock

	// Diagnostics receives log messages (default: the Manager's).
	Diagnostics log.Diagnostics

	// OnReconnecting is called before each attempt with its number and
	// the delay that precedes it.
	OnReconnecting func(attempt int, delay time.Duration)
}

// Reconnector re-establishes a lost connection with exponential backoff.
type Reconnector struct {
	m           *Manager
	backoff     *Backoff
	maxAttempts int
	clock       clock.Clock
	diag        log.Diagnostics
	onAttempt   func(attempt int, delay time.Duration)
}

// NewReconnector creates a Reconnector for m.
func NewReconnector(m *Manager, cfg ReconnectConfig) *Reconnector {
	if cfg.Clock == nil {
		cfg.Clock = m.clock
	}
	if cfg.Diagnostics == nil {
		cfg.Diagnostics = m.diag
	}
	return &Reconnector{
		m:           m,
		backoff:     NewBackoffWithConfig(cfg.Backoff),
		maxAttempts: cfg.MaxAttempts,
		clock:       cfg.Clock,
		diag:        cfg.Diagnostics,
		onAttempt:   cfg.OnReconnecting,
	}
}

// Attempts returns the attempts made by the current or last Run.
func (r *Reconnector) Attempts() int {
	return r.backoff.Attempts()
}

// Run calls Manager.Connect in reconnect mode, waiting a backoff delay
// before each attempt, until the connection is acknowledged.
//
// It stops early on a configuration error, on ctx cancellation, or with
// ErrReconnectExhausted once MaxAttempts is reached.
func (r *Reconnector) Run(ctx context.Context, params wire.SessionParams) (Status, error) {
	r.backoff.Reset()

	for {
		if r.maxAttempts > 0 && r.backoff.Attempts() >= r.maxAttempts {
			r.diag.Error("giving up reconnecting", "attempts", r.backoff.Attempts())
			return r.m.Status(), ErrReconnectExhausted
		}

		delay := r.backoff.Next()
		attempt := r.backoff.Attempts()
		if r.onAttempt != nil {
			r.onAttempt(attempt, delay)
		}
		r.diag.Info("reconnecting", "attempt", attempt, "delay", delay)

		select {
		case <-ctx.Done():
			return r.m.Status(), ctx.Err()
		case <-r.clock.After(delay):
		}

		status, err := r.m.Connect(ctx, params, true)
		switch {
		case errors.Is(err, ErrAlreadyConnected):
			return status, nil
		case errors.Is(err, ErrConfiguration):
			return status, err
		case err != nil && ctx.Err() != nil:
			return status, ctx.Err()
		case err != nil:
			r.diag.Warn("reconnect attempt failed", "attempt", attempt, "error", err)
		}

		if status == StatusConnected {
			r.diag.Info("reconnected", "attempt", attempt)
			r.backoff.Reset()
			return status, nil
		}
	}
}
