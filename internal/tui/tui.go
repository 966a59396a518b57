package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// RunClockTUI starts the interactive clock and blocks until the user quits
func RunClockTUI(cue Cue) error {
	model := NewClockModel(cue)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run clock: %w", err)
	}

	if m, ok := finalModel.(ClockModel); ok {
		fmt.Printf("⏹️  Clock closed during %s with %s left.\n", m.clock.Label, m.clock.Display())
	}

	return nil
}
