// Package session implements the packet-level collaborators driven by a
// connection.Manager.
//
// A Sender writes framed packets and tracks outbound activity and QoS 1
// packets awaiting acknowledgment. A Handler reads frames, dispatches them
// and reports the resulting connection status. A Publisher queues
// application messages until the connection is up.
//
// All three share the socket owned by the Manager and never close it.
//
// Typical wiring:
//
//	sender := session.NewSender(session.SenderConfig{Clock: clk})
//	handler := session.NewHandler(sender, session.HandlerConfig{OnMessage: deliver})
//	m, err := connection.NewManager(cfg, sender, handler, wire.Codec{})
package session
