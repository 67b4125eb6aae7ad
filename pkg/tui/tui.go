// Package tui hosts the Bubble Tea program for the fronts TUI.
package tui

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/grimportent/fronts/pkg/app"
)

// Run launches the interactive UI over one service instance.
func Run(svc *app.Service, confirmDeletes bool) error {
	m := New(svc, confirmDeletes)
	m.log = debugLogger()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// debugLogger writes structured debug events to a log file; the
// alternate screen owns stdout, so this is the only trace channel.
func debugLogger() zerolog.Logger {
	path := os.Getenv("FRONTS_TUI_LOG")
	if path == "" {
		path = filepath.Join(os.TempDir(), "fronts-tui.log")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Logger()
}
