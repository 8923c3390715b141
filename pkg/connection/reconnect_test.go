package connection_test

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mqttlink/mqttlink-go/pkg/connection"
	"github.com/mqttlink/mqttlink-go/pkg/wire"
)

var fastBackoff = connection.BackoffConfig{Initial: time.Millisecond, Max: 2 * time.Millisecond}

// expectFailingAttempts makes every Connect time out on a refused dial.
func (f *fixture) expectFailingAttempts() {
	f.transport.EXPECT().OpenStream(mock.Anything, "broker.local", 1883).Return(nil, errors.New("refused"))
	f.expectDetach()
	f.codec.EXPECT().EncodeConnect(mock.Anything).Return(connectPacket, nil)
	f.handler.EXPECT().SetCleanSession(mock.Anything).Return()
	f.sender.EXPECT().Send(connectPacket).Return(errors.New("no socket"))
	f.handler.EXPECT().PollNext(mock.Anything).Return(connection.StatusNew)
}

func TestReconnectorExhausted(t *testing.T) {
	f := newFixture(t)
	m := f.manager(t, connection.Config{HandshakeTimeout: 10 * time.Millisecond, PollInterval: time.Millisecond})
	f.expectFailingAttempts()

	var attempts []int
	r := connection.NewReconnector(m, connection.ReconnectConfig{
		Backoff:     fastBackoff,
		MaxAttempts: 3,
		OnReconnecting: func(attempt int, _ time.Duration) {
			attempts = append(attempts, attempt)
		},
	})

	status, err := r.Run(context.Background(), wire.SessionParams{ClientID: "c1"})
	assert.ErrorIs(t, err, connection.ErrReconnectExhausted)
	assert.Equal(t, connection.StatusDisconnected, status)
	assert.Equal(t, []int{1, 2, 3}, attempts)
	assert.Equal(t, 3, r.Attempts())
}

func TestReconnectorSucceeds(t *testing.T) {
	f := newFixture(t)
	m := f.manager(t, connection.Config{HandshakeTimeout: 10 * time.Millisecond, PollInterval: time.Millisecond})
	conn := newRecordingConn(t)

	var dials atomic.Int32
	f.transport.EXPECT().OpenStream(mock.Anything, "broker.local", 1883).
		RunAndReturn(func(context.Context, string, int) (net.Conn, error) {
			if dials.Add(1) < 3 {
				return nil, errors.New("refused")
			}
			return conn, nil
		})
	f.sender.EXPECT().AttachSocket(mock.Anything).Return()
	f.handler.EXPECT().AttachSocket(mock.Anything).Return()
	f.codec.EXPECT().EncodeConnect(mock.Anything).Return(connectPacket, nil)
	f.handler.EXPECT().SetCleanSession(true).Return()
	f.sender.EXPECT().Send(connectPacket).Return(nil)
	f.handler.EXPECT().PollNext(mock.Anything).RunAndReturn(func(context.Context) connection.Status {
		if dials.Load() >= 3 {
			return connection.StatusConnected
		}
		return connection.StatusNew
	})

	r := connection.NewReconnector(m, connection.ReconnectConfig{Backoff: fastBackoff})
	status, err := r.Run(context.Background(), wire.SessionParams{ClientID: "c1", CleanSession: true})
	require.NoError(t, err)
	assert.Equal(t, connection.StatusConnected, status)
	assert.Equal(t, int32(3), dials.Load())
	assert.Zero(t, r.Attempts(), "backoff resets after success")
}

func TestReconnectorStopsOnConfigurationError(t *testing.T) {
	f := newFixture(t)
	m := f.manager(t, connection.Config{UseTLS: true})
	conn := newRecordingConn(t)
	f.transport.EXPECT().OpenStream(mock.Anything, "broker.local", 1883).Return(conn, nil).Once()
	f.expectDetach()

	r := connection.NewReconnector(m, connection.ReconnectConfig{Backoff: fastBackoff})
	status, err := r.Run(context.Background(), wire.SessionParams{ClientID: "c1"})
	assert.ErrorIs(t, err, connection.ErrTLSConfig)
	assert.Equal(t, connection.StatusDisconnected, status)
	assert.Equal(t, 1, r.Attempts())
}

func TestReconnectorContextCancelled(t *testing.T) {
	f := newFixture(t)
	m := f.manager(t, connection.Config{})

	r := connection.NewReconnector(m, connection.ReconnectConfig{
		Backoff: connection.BackoffConfig{Initial: time.Hour},
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := r.Run(ctx, wire.SessionParams{ClientID: "c1"})
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestReconnectorAlreadyConnected(t *testing.T) {
	f := newFixture(t)
	m := f.manager(t, connection.Config{})
	m.ReportStatus(connection.StatusNew)
	m.ReportStatus(connection.StatusConnected)

	r := connection.NewReconnector(m, connection.ReconnectConfig{Backoff: fastBackoff})
	status, err := r.Run(context.Background(), wire.SessionParams{ClientID: "c1"})
	require.NoError(t, err)
	assert.Equal(t, connection.StatusConnected, status)
}
