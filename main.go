// mapdeck is a terminal map-and-search explorer. A procedurally shaded
// map fills the screen; search results, polls, bookmarks, and save
// lists slide up over it as spring-animated bottom sheets.
package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"mapdeck/internal/app"
	"mapdeck/internal/config"
	"mapdeck/internal/state"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "mapdeck:", err)
		os.Exit(1)
	}
}

func run() error {
	setupLogging()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	st, err := state.Open()
	if err != nil {
		return fmt.Errorf("opening state: %w", err)
	}
	defer st.Close()

	m, err := app.New(cfg, st)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// setupLogging discards logs unless MAPDECK_DEBUG names a file. A TUI
// cannot log to the terminal it draws on.
func setupLogging() {
	logrus.SetOutput(io.Discard)
	path := os.Getenv("MAPDECK_DEBUG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	logrus.SetOutput(f)
	logrus.SetLevel(logrus.DebugLevel)
}
