package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tturner/stockdeck/internal/logging"
)

// Run starts the console at the given route and blocks until exit.
func Run(svc Service, initial Route, defaultThreshold int, log *logging.Logger) error {
	if log == nil {
		log = logging.Nop()
	}
	app := NewApp(svc, DefaultStyles, initial, defaultThreshold)
	log.Info("console starting", "route", initial.String())

	program := tea.NewProgram(app, tea.WithAltScreen())
	_, err := program.Run()
	if err != nil {
		log.Error("console exited with error", "err", err)
	}
	return err
}
