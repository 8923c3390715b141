package session

import (
	"sync"

	"github.com/mqttlink/mqttlink-go/pkg/connection"
	"github.com/mqttlink/mqttlink-go/pkg/log"
	"github.com/mqttlink/mqttlink-go/pkg/wire"
)

// DefaultMaxPending is the default Publisher queue capacity.
const DefaultMaxPending = 1000

// Publisher queues application messages until they can be sent.
type Publisher struct {
	max  int
	diag log.Diagnostics

	mu    sync.Mutex
	queue []wire.Message
}

// NewPublisher creates a Publisher holding at most maxPending messages
// (DefaultMaxPending if <= 0).
func NewPublisher(maxPending int, diag log.Diagnostics) *Publisher {
	if maxPending <= 0 {
		maxPending = DefaultMaxPending
	}
	return &Publisher{max: maxPending, diag: log.OrNop(diag)}
}

// Publish queues msg.
func (p *Publisher) Publish(msg wire.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.queue) >= p.max {
		return ErrQueueFull
	}
	p.queue = append(p.queue, msg)
	return nil
}

// Drain sends queued messages in order through s. It stops at the first
// failure, leaving that message and the rest queued, and returns the
// number sent.
func (p *Publisher) Drain(s *Sender) (int, error) {
	sent := 0
	for {
		p.mu.Lock()
		if len(p.queue) == 0 {
			p.mu.Unlock()
			return sent, nil
		}
		msg := p.queue[0]
		p.mu.Unlock()

		if _, err := s.Publish(msg); err != nil {
			return sent, err
		}

		p.mu.Lock()
		if len(p.queue) > 0 {
			p.queue = p.queue[1:]
		}
		p.mu.Unlock()
		sent++
	}
}

// Flush implements connection.Publisher. Queued messages are dropped
// without being sent.
func (p *Publisher) Flush() {
	p.mu.Lock()
	n := len(p.queue)
	p.queue = nil
	p.mu.Unlock()
	if n > 0 {
		p.diag.Warn("discarding unsent messages", "count", n)
	}
}

// Len returns the number of queued messages.
func (p *Publisher) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

var _ connection.Publisher = (*Publisher)(nil)
