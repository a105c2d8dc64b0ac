package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/corpresearch/internal/config"
	"github.com/sant0-9/corpresearch/internal/logging"
	"github.com/sant0-9/corpresearch/internal/tui"
)

var version = "dev"

func main() {
	logPath, _ := config.LogPath()
	log := logging.New(logPath, os.Getenv("CORPRESEARCH_DEBUG") != "")
	defer func() { _ = log.Sync() }()

	app := tui.NewApp(log)
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
