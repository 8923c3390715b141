// Package persistence stores client state that must survive restarts.
//
// A client that asks the broker for a persistent session (clean_session:
// false) must reconnect with the same client identifier, otherwise the
// broker starts a fresh session. When the identifier is generated rather
// than configured, the state file keeps it stable across runs.
package persistence
