// Package log provides the diagnostics sink used by the connection core.
//
// The connection manager never writes to a process-wide logger. Instead a
// Diagnostics value is injected at construction time, which keeps log call
// sites identical while making ownership explicit.
//
// # Basic Usage
//
//	// Console output via slog
//	cfg.Diagnostics = log.NewSlogDiagnostics(slog.Default())
//
//	// Binary event trace for later analysis
//	rec, _ := log.NewFileRecorder("/var/log/mqttlink/client.mlog", connID)
//
//	// Both
//	cfg.Diagnostics = log.NewMultiDiagnostics(
//	    log.NewSlogDiagnostics(slog.Default()),
//	    rec,
//	)
//
// # File Format
//
// Recorded events use CBOR with integer keys, one event after another.
// Use NewReader to iterate over a recorded file.
package log
