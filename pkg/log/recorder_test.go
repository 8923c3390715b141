package log

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRecorderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder(&buf, "conn-123")
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 6, time.UTC)
	rec.now = func() time.Time { return fixed }

	rec.Info("attempting connection", "host", "broker.local", "port", 1883)
	rec.Warn("open failed")
	rec.Error("handshake timeout", "timeout", 200*time.Millisecond)

	r := NewReader(&buf)

	first, err := r.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if first.ConnectionID != "conn-123" {
		t.Errorf("ConnectionID = %q, want %q", first.ConnectionID, "conn-123")
	}
	if first.Level != LevelInfo {
		t.Errorf("Level = %v, want INFO", first.Level)
	}
	if first.Message != "attempting connection" {
		t.Errorf("Message = %q", first.Message)
	}
	if first.Attrs["host"] != "broker.local" || first.Attrs["port"] != "1883" {
		t.Errorf("Attrs = %v", first.Attrs)
	}
	if !first.Timestamp.Equal(fixed) {
		t.Errorf("Timestamp = %v, want %v", first.Timestamp, fixed)
	}

	second, err := r.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if second.Level != LevelWarn || len(second.Attrs) != 0 {
		t.Errorf("second = %+v", second)
	}

	third, err := r.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if third.Attrs["timeout"] != "200ms" {
		t.Errorf("timeout attr = %q, want 200ms", third.Attrs["timeout"])
	}

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Next() at end = %v, want io.EOF", err)
	}
}

func TestLevelReaderSkipsLowerLevels(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder(&buf, "c")
	rec.Info("a")
	rec.Error("b")
	rec.Warn("c")

	r := NewLevelReader(&buf, LevelWarn)
	var got []string
	for {
		ev, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		got = append(got, ev.Message)
	}
	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Errorf("got %v, want [b c]", got)
	}
}

func TestFileRecorderCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.mlog")

	rec, err := NewFileRecorder(path, "conn")
	if err != nil {
		t.Fatalf("NewFileRecorder() error = %v", err)
	}
	rec.Info("before close")
	if err := rec.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	rec.Info("after close")

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	r := NewReader(f)
	ev, err := r.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if ev.Message != "before close" {
		t.Errorf("Message = %q", ev.Message)
	}
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("events after close were recorded: %v", err)
	}
}

func TestAttrsFromArgsOddCount(t *testing.T) {
	attrs := attrsFromArgs([]any{"k", 1, "dangling"})
	if attrs["k"] != "1" {
		t.Errorf("k = %q", attrs["k"])
	}
	if attrs["!BADKEY"] != "dangling" {
		t.Errorf("!BADKEY = %q", attrs["!BADKEY"])
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(9), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
