// Command mqttlink-log views and analyzes diagnostics recorded by mqttlink
// with log.record_file set.
//
// Usage:
//
//	mqttlink-log <command> [flags] <file.cbor>
//
// Commands:
//
//	view     View recording in human-readable format
//	export   Export recording to JSONL or CSV
//	stats    Show statistics about the recording
//
// Examples:
//
//	# View warnings and errors
//	mqttlink-log view -level warn client.cbor
//
//	# Export to JSONL
//	mqttlink-log export -format jsonl client.cbor
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mqttlink/mqttlink-go/cmd/mqttlink-log/commands"
)

const usage = `mqttlink-log - mqttlink diagnostics viewer

Usage:
  mqttlink-log <command> [flags] <file.cbor>

Commands:
  view     View recording in human-readable format
  export   Export recording to JSONL or CSV
  stats    Show statistics about the recording

Use "mqttlink-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// pathArg returns the single positional argument or exits.
func pathArg(fs *flag.FlagSet) string {
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	level := fs.String("level", "info", "Minimum level (info, warn, error)")
	connID := fs.String("conn-id", "", "Filter by connection ID prefix")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := pathArg(fs)

	minLevel, err := commands.ParseLevelFlag(*level)
	if err != nil {
		fail(err)
	}
	if err := commands.RunView(path, commands.ViewFilter{MinLevel: minLevel, ConnID: *connID}, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if err := commands.RunExport(pathArg(fs), *format, *output); err != nil {
		fail(err)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if err := commands.RunStats(pathArg(fs), os.Stdout); err != nil {
		fail(err)
	}
}
