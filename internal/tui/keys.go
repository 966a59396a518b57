package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every control of the clock
type keyMap struct {
	StartStop        key.Binding
	Reset            key.Binding
	BreakDecrement   key.Binding
	BreakIncrement   key.Binding
	SessionDecrement key.Binding
	SessionIncrement key.Binding
	Help             key.Binding
	Quit             key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		StartStop: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start/stop"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		BreakDecrement: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "break -1"),
		),
		BreakIncrement: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "break +1"),
		),
		SessionDecrement: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "session -1"),
		),
		SessionIncrement: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "session +1"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartStop, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartStop, k.Reset},
		{k.BreakDecrement, k.BreakIncrement},
		{k.SessionDecrement, k.SessionIncrement},
		{k.Help, k.Quit},
	}
}
