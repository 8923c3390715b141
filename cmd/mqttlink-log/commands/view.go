// Package commands implements the mqttlink-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mqttlink/mqttlink-go/pkg/log"
)

// timeFormat is used for all printed timestamps.
const timeFormat = "2006-01-02T15:04:05.000000Z"

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	MinLevel log.Level
	ConnID   string
}

func (f ViewFilter) match(event log.Event) bool {
	if event.Level < f.MinLevel {
		return false
	}
	return f.ConnID == "" || strings.HasPrefix(event.ConnectionID, f.ConnID)
}

// ParseLevelFlag parses a -level flag value.
func ParseLevelFlag(s string) (log.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return log.LevelInfo, nil
	case "warn":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid level %q (valid: info, warn, error)", s)
	}
}

// openLog opens a recording for reading.
func openLog(path string) (*log.Reader, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return log.NewReader(f), f, nil
}

// RunView prints the matching events of the recording at path to w.
func RunView(path string, filter ViewFilter, w io.Writer) error {
	reader, closer, err := openLog(path)
	if err != nil {
		return err
	}
	defer closer.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if filter.match(event) {
			formatEvent(w, event)
		}
	}
}

// formatEvent writes one line: timestamp [conn:id] LEVEL message key=value...
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format(timeFormat)
	fmt.Fprintf(w, "%s [conn:%s] %-5s %s", ts, shortenConnID(event.ConnectionID), event.Level, event.Message)

	keys := make([]string, 0, len(event.Attrs))
	for k := range event.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, " %s=%s", k, event.Attrs[k])
	}
	fmt.Fprintln(w)
}

// shortenConnID returns the first 8 characters of the connection ID.
func shortenConnID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
