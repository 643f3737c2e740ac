package cli

import (
	"flag"
	"fmt"
	"io"
	"time"

	"freqnote/internal/config"
	"freqnote/internal/export"
	"freqnote/internal/ledger"
	"freqnote/internal/session"
)

// Run executes a subcommand and returns the process exit code.
func Run(args []string, cfg *config.Config, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "convert", "c":
		return runConvert(cmdArgs, stdout, stderr)
	case "export", "x":
		return runExport(cmdArgs, cfg, stdout, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		printUsage(stderr)
		return 1
	}
}

// load parses each argument the way the note prompt does. Bad arguments are
// reported and skipped.
func load(args []string, stderr io.Writer) (*session.Session, bool) {
	s := session.New()
	ok := true
	for _, arg := range args {
		freq, err := session.ParseFrequency(arg)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			ok = false
			continue
		}
		if _, err := s.Add(freq); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			ok = false
		}
	}
	return s, ok
}

func runConvert(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	sorted := fs.Bool("sorted", false, "Print in ascending frequency order")
	cents := fs.Bool("cents", false, "Show offset from the standard pitch in cents")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "Error: at least one frequency required")
		fmt.Fprintln(stderr, "Usage: freqnote convert [--sorted] [--cents] <hz>...")
		return 1
	}

	s, ok := load(fs.Args(), stderr)
	if *sorted {
		s.ToggleSort()
	}
	for _, n := range s.Rows() {
		if *cents {
			fmt.Fprintf(stdout, "%s (%+.1f cents)\n", n, n.Cents())
		} else {
			fmt.Fprintln(stdout, n)
		}
	}

	if !ok {
		return 1
	}
	return 0
}

func runExport(args []string, cfg *config.Config, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("o", "", "Output file (default: timestamped file in the export dir)")
	sorted := fs.Bool("sorted", false, "Write in ascending frequency order")
	bpm := fs.Float64("bpm", cfg.TempoBPM, "Tempo in beats per minute")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	s, ok := load(fs.Args(), stderr)
	if !ok {
		return 1
	}

	path := *out
	if path == "" {
		path = export.FileName(cfg.ExportDir, time.Now())
	}

	view := ledger.InputOrder
	if *sorted {
		s.ToggleSort()
		view = ledger.Sorted
	}
	if err := export.WriteFile(path, s.Rows(), *bpm); err != nil {
		fmt.Fprintf(stderr, "Error exporting notes: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Wrote %d note(s) in %s to %s\n", s.Len(), view, path)
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `freqnote - frequency to note name converter

Usage: freqnote [flags] [command] [arguments]

Commands:
  convert, c  Print the note name of each frequency
              freqnote convert 440 261.63
              freqnote convert --sorted --cents 445 220

  export, x   Write frequencies to a Standard MIDI File
              freqnote export -o tune.mid 261.63 293.66 329.63
              freqnote export --sorted --bpm 90 440 220

Flags:
  --log-dir <dir>     Write debug.log to this directory
  --export-dir <dir>  Directory for MIDI exports
  --sorted            Start with the sorted view active

Running freqnote without arguments launches the interactive TUI.`)
}
