// Package wire defines the packet model exchanged between a client and a
// broker, and its CBOR encoding.
//
// Every packet is a small envelope with an integer packet type, an optional
// packet identifier and a type-specific body. All maps use integer keys for
// compactness. Packets are length-prefixed on the stream by the transport
// package.
//
// # Packet Types
//
//   - CONNECT / CONNACK: session handshake
//   - PUBLISH / PUBACK: application messages (QoS 0 and 1)
//   - PINGREQ / PINGRESP: keep-alive probe and its response
//   - DISCONNECT: graceful close
package wire
