package session_test

import (
	"net"
	"testing"
	"time"

	"github.com/mqttlink/mqttlink-go/pkg/transport"
	"github.com/mqttlink/mqttlink-go/pkg/wire"
)

// peer is the broker side of a pipe.
type peer struct {
	conn   net.Conn
	framer *transport.Framer
}

func newPipe(t *testing.T) (net.Conn, *peer) {
	t.Helper()
	client, server := net.Pipe()
	t.Cleanup(func() {
		client.Close()
		server.Close()
	})
	return client, &peer{conn: server, framer: transport.NewFramer(server)}
}

func (p *peer) write(t *testing.T, pkt *wire.Packet) {
	t.Helper()
	data, err := wire.Marshal(pkt)
	if err != nil {
		t.Errorf("Marshal(%s) error = %v", pkt.Type, err)
		return
	}
	p.conn.SetWriteDeadline(time.Now().Add(2 * time.Second))
	if err := p.framer.WriteFrame(data); err != nil {
		t.Errorf("WriteFrame(%s) error = %v", pkt.Type, err)
	}
}

// writeAsync writes pkt from a goroutine; net.Pipe writes block until read.
func (p *peer) writeAsync(t *testing.T, pkt *wire.Packet) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.write(t, pkt)
	}()
	return done
}

// readAsync reads one packet from a goroutine.
func (p *peer) readAsync() <-chan *wire.Packet {
	ch := make(chan *wire.Packet, 1)
	go func() {
		defer close(ch)
		p.conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		data, err := p.framer.ReadFrame()
		if err != nil {
			return
		}
		if pkt, err := wire.Unmarshal(data); err == nil {
			ch <- pkt
		}
	}()
	return ch
}

func receive(t *testing.T, ch <-chan *wire.Packet) *wire.Packet {
	t.Helper()
	select {
	case pkt, ok := <-ch:
		if !ok {
			t.Fatal("peer read failed")
		}
		return pkt
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for packet")
	}
	return nil
}

func wait(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for peer")
	}
}
