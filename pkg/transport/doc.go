// Package transport opens the byte stream a client connection runs on.
//
// The transport layer handles:
//   - TCP dialing with a bounded timeout
//   - Optional TLS upgrade of an established TCP stream
//   - Length-prefixed packet framing
//
// # Protocol Stack
//
//	┌────────────────────────────────┐
//	│      CBOR Packets (wire)       │
//	├────────────────────────────────┤
//	│   Length-Prefix Framing (4B)   │
//	├────────────────────────────────┤
//	│      TLS 1.2+ (optional)       │
//	├────────────────────────────────┤
//	│           TCP                  │
//	└────────────────────────────────┘
//
// Dialer implements the connection.Transport interface. A missing TLS
// configuration is reported as ErrTLSConfigRequired before any bytes are
// exchanged.
package transport
