package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"freqnote/internal/cli"
	"freqnote/internal/config"
	"freqnote/internal/logs"
	"freqnote/internal/tui"
)

func main() {
	logDirFlag := flag.String("log-dir", "", "Write debug.log to this directory")
	exportDirFlag := flag.String("export-dir", "", "Directory for MIDI exports")
	sortedFlag := flag.Bool("sorted", false, "Start with the sorted view active")
	flag.Parse()

	cfg, err := config.Load(config.CLIFlags{
		LogDir:    *logDirFlag,
		ExportDir: *exportDirFlag,
		Sorted:    *sortedFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := config.EnsureConfigFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create config file: %v\n", err)
	}

	if err := logs.Initialize(cfg.LogDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize logger: %v\n", err)
	}
	defer logs.Close()

	// Check for CLI subcommands
	if args := flag.Args(); len(args) > 0 {
		code := cli.Run(args, cfg, os.Stdout, os.Stderr)
		logs.Close()
		os.Exit(code)
	}

	logs.Logger.Println("Starting app in TUI mode")
	p := tea.NewProgram(tui.NewAppModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		logs.Close()
		os.Exit(1)
	}
}
