package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/mqttlink/mqttlink-go/pkg/log"
)

// Stats holds aggregate statistics about a recording.
type Stats struct {
	TotalEvents   int
	EventsByLevel map[log.Level]int
	Connections   map[string]*ConnectionStats
	TimeRange     struct {
		Start time.Time
		End   time.Time
	}
}

// ConnectionStats holds statistics for a single connection.
type ConnectionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Errors    int
}

// RunStats analyzes the recording at path and prints statistics to w.
func RunStats(path string, w io.Writer) error {
	reader, closer, err := openLog(path)
	if err != nil {
		return err
	}
	defer closer.Close()

	stats := &Stats{
		EventsByLevel: make(map[log.Level]int),
		Connections:   make(map[string]*ConnectionStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByLevel[event.Level]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		conn, ok := stats.Connections[event.ConnectionID]
		if !ok {
			conn = &ConnectionStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
			stats.Connections[event.ConnectionID] = conn
		}
		conn.Events++
		if event.Level == log.LevelError {
			conn.Errors++
		}
		if event.Timestamp.After(conn.LastSeen) {
			conn.LastSeen = event.Timestamp
		}
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintf(w, "Total events: %d\n", stats.TotalEvents)
	if stats.TotalEvents == 0 {
		return
	}

	fmt.Fprintf(w, "Time range:   %s - %s (%v)\n",
		stats.TimeRange.Start.UTC().Format(timeFormat),
		stats.TimeRange.End.UTC().Format(timeFormat),
		stats.TimeRange.End.Sub(stats.TimeRange.Start))

	fmt.Fprintln(w, "\nBy level:")
	for _, level := range []log.Level{log.LevelInfo, log.LevelWarn, log.LevelError} {
		fmt.Fprintf(w, "  %s: %d\n", level, stats.EventsByLevel[level])
	}

	ids := make([]string, 0, len(stats.Connections))
	for id := range stats.Connections {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(w, "\nConnections: %d\n", len(ids))
	for _, id := range ids {
		c := stats.Connections[id]
		fmt.Fprintf(w, "  %s: %d events, %d errors, %v\n",
			shortenConnID(id), c.Events, c.Errors, c.LastSeen.Sub(c.FirstSeen))
	}
}
