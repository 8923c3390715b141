package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mqttlink/mqttlink-go/pkg/log"
)

// jsonEvent is the JSONL representation of an event.
type jsonEvent struct {
	Timestamp    string            `json:"timestamp"`
	ConnectionID string            `json:"connection_id"`
	Level        string            `json:"level"`
	Message      string            `json:"message"`
	Attrs        map[string]string `json:"attrs,omitempty"`
}

// RunExport exports the recording at path to output (stdout if empty).
func RunExport(path, format, output string) error {
	reader, closer, err := openLog(path)
	if err != nil {
		return err
	}
	defer closer.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(jsonEvent{
			Timestamp:    event.Timestamp.UTC().Format(timeFormat),
			ConnectionID: event.ConnectionID,
			Level:        event.Level.String(),
			Message:      event.Message,
			Attrs:        event.Attrs,
		}); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"timestamp", "connection_id", "level", "message", "attrs"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		keys := make([]string, 0, len(event.Attrs))
		for k := range event.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = k + "=" + event.Attrs[k]
		}

		row := []string{
			event.Timestamp.UTC().Format(timeFormat),
			event.ConnectionID,
			event.Level.String(),
			event.Message,
			strings.Join(pairs, " "),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
}
