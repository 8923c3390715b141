package connection

import (
	"context"
	"sync"
	"time"
)

// DefaultKeepAliveInterval is how often the KeepAliveTask runs a check.
const DefaultKeepAliveInterval = time.Second

// KeepAliveTaskConfig configures a KeepAliveTask.
type KeepAliveTaskConfig struct {
	// Persistent enables probe sending. Without it only the inactivity
	// timeout is enforced.
	Persistent bool

	// KeepAlive is the negotiated keep-alive interval.
	KeepAlive time.Duration

	// Interval between checks (default: 1s).
	Interval time.Duration

	// OnConnectionLost is called once when a check reports DISCONNECTED.
	// It is not called after Cancel.
	OnConnectionLost func()
}

// KeepAliveTask periodically runs Manager.CheckKeepAlive until the
// connection is lost or the task is cancelled.
type KeepAliveTask struct {
	m   *Manager
	cfg KeepAliveTaskConfig

	mu        sync.Mutex
	started   bool
	cancelled bool
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewKeepAliveTask creates a task for m. Call Start to run it.
func NewKeepAliveTask(m *Manager, cfg KeepAliveTaskConfig) *KeepAliveTask {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultKeepAliveInterval
	}
	return &KeepAliveTask{
		m:    m,
		cfg:  cfg,
		done: make(chan struct{}),
	}
}

// Start launches the task. Subsequent calls are no-ops.
func (t *KeepAliveTask) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return
	}
	t.started = true

	ctx, t.cancel = context.WithCancel(ctx)
	if t.cancelled {
		t.cancel()
	}
	go t.run(ctx)
}

// Cancel stops the task without waiting for it.
func (t *KeepAliveTask) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelled = true
	if t.cancel != nil {
		t.cancel()
	}
}

// Alive reports whether the task is running.
func (t *KeepAliveTask) Alive() bool {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()
	if !started {
		return false
	}
	select {
	case <-t.done:
		return false
	default:
		return true
	}
}

// Done is closed when the task has stopped.
func (t *KeepAliveTask) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task has stopped.
func (t *KeepAliveTask) Wait() {
	<-t.done
}

func (t *KeepAliveTask) run(ctx context.Context) {
	defer close(t.done)

	ticker := t.m.clock.Ticker(t.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if t.m.CheckKeepAlive(t.cfg.Persistent, t.cfg.KeepAlive) != StatusDisconnected {
			continue
		}

		t.mu.Lock()
		cancelled := t.cancelled
		t.mu.Unlock()
		if !cancelled && t.cfg.OnConnectionLost != nil {
			t.cfg.OnConnectionLost()
		}
		return
	}
}
