// Package connection manages the lifecycle of a single client connection.
//
// This package handles:
//   - Transport establishment (TCP, optionally upgraded to TLS)
//   - The CONNECT/CONNACK handshake with a bounded wait
//   - The connection status machine (NEW, CONNECTED, DISCONNECTED)
//   - Keep-alive scheduling: when to probe the peer and when to give up
//   - Graceful and forced shutdown
//   - Reconnection with exponential backoff
//
// # Status Machine
//
//	DISCONNECTED ──Connect──▶ NEW ──CONNACK──▶ CONNECTED
//	      ▲                    │                   │
//	      └──handshake timeout─┘                   │
//	      └────────Disconnect / inactivity─────────┘
//
// Only the Manager mutates the status. Collaborators report what they saw
// and the Manager applies the transition if it is valid.
//
// # Keep-Alive
//
// Given a keep-alive interval k (whole seconds, rounded up):
//
//	probe due      = min(last sent, last received) + ceil(0.7 × k)
//	inactivity cut = last received + ceil(1.1 × k)
//
// No probe is sent while a previous probe is still unanswered.
//
// # Collaborators
//
// The Manager drives an OutboundSender, an InboundHandler, a PacketCodec and
// optionally a Publisher. Reference implementations live in the session and
// wire packages; tests use the mockery mocks in the mocks sub-package.
package connection
