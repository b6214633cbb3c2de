package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the Bubble Tea program and blocks until the user quits or a
// fatal error ends the run. Bubble Tea restores the terminal on every exit
// path before Run returns.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if final, ok := final.(Model); ok && final.Err() != nil {
		return final.Err()
	}
	return nil
}
