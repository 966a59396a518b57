package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/clock/internal/clock"
)

// tickInterval is the period of the countdown
const tickInterval = time.Second

// ClockModel represents the TUI model for the 25+5 clock
type ClockModel struct {
	width  int
	height int

	clock *clock.Clock
	cue   Cue

	keys keyMap
	help help.Model

	// Tick loop state. Only a tick carrying the current tickID is processed,
	// bumping it cancels whatever tick is still in flight.
	tickID   int
	interval time.Duration
	quitting bool
}

// tickMsg is sent once per second while the clock is running
type tickMsg struct {
	id int
}

// cueErrMsg reports a cue that failed to play
type cueErrMsg struct {
	err error
}

// NewClockModel creates a clock model at the default 25+5 settings
func NewClockModel(cue Cue) ClockModel {
	if cue == nil {
		cue = SilentCue{}
	}

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	h.Styles.FullKey = h.Styles.ShortKey

	return ClockModel{
		clock:    clock.New(),
		cue:      cue,
		keys:     defaultKeyMap(),
		help:     h,
		interval: tickInterval,
	}
}

// Init initializes the clock model. The clock starts stopped so there is
// nothing to schedule yet.
func (m ClockModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ClockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.handleTick(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case cueErrMsg:
		// The countdown carries on without sound
		log.Printf("play cue: %v", msg.err)
		return m, nil
	}

	return m, nil
}

// handleKey dispatches a key press to the matching clock control
func (m ClockModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.tickID++
		return m, tea.Quit

	case key.Matches(msg, m.keys.StartStop):
		m.clock.ToggleStartStop()
		log.Printf("running=%t at %s", m.clock.Running, m.clock.Display())
		cmd := m.restartTicks()
		return m, cmd

	case key.Matches(msg, m.keys.Reset):
		m.clock.Reset()
		// Stopped inline so a later Play cannot overtake it
		if err := m.cue.Stop(); err != nil {
			log.Printf("stop cue: %v", err)
		}
		m.tickID++
		log.Printf("reset")
		return m, nil

	case key.Matches(msg, m.keys.BreakDecrement):
		return m.adjusted(m.clock.DecrementBreak())

	case key.Matches(msg, m.keys.BreakIncrement):
		return m.adjusted(m.clock.IncrementBreak())

	case key.Matches(msg, m.keys.SessionDecrement):
		return m.adjusted(m.clock.DecrementSession())

	case key.Matches(msg, m.keys.SessionIncrement):
		return m.adjusted(m.clock.IncrementSession())

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// handleTick advances the countdown, rolling over to the other phase and
// sounding the cue when a tick finds the countdown at zero.
func (m ClockModel) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	// Stale tick from a torn down loop
	if msg.id != m.tickID || !m.clock.Running || m.quitting {
		return m, nil
	}

	if !m.clock.Tick() {
		return m, m.scheduleTick()
	}

	log.Printf("rollover to %s, %s left", m.clock.Label, m.clock.Display())

	// Phase changed, restart the loop
	cmd := m.restartTicks()
	return m, tea.Batch(playCue(m.cue), cmd)
}

// playCue plays the cue off the event loop
func playCue(cue Cue) tea.Cmd {
	return func() tea.Msg {
		if err := cue.Play(); err != nil {
			return cueErrMsg{err: err}
		}
		return nil
	}
}

// adjusted restarts the tick loop after a length change
func (m ClockModel) adjusted(changed bool) (tea.Model, tea.Cmd) {
	if !changed {
		return m, nil
	}
	log.Printf("lengths break=%d session=%d", m.clock.BreakLength, m.clock.SessionLength)
	cmd := m.restartTicks()
	return m, cmd
}

// restartTicks cancels the pending tick and schedules a fresh one if the
// clock is running
func (m *ClockModel) restartTicks() tea.Cmd {
	m.tickID++
	if !m.clock.Running {
		return nil
	}
	return m.scheduleTick()
}

// scheduleTick schedules the next tick of the current loop
func (m ClockModel) scheduleTick() tea.Cmd {
	id := m.tickID
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

// View renders the clock TUI
func (m ClockModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.renderTitle(),
		"",
		m.renderLengthControls(),
		"",
		m.renderTimerPanel(),
		"",
		m.renderTransportControls(),
	)

	contentHeight := m.height - lipgloss.Height(helpBar) - 1
	if contentHeight < 0 {
		contentHeight = 0
	}

	panel := lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, panel, helpBar)
}

func (m ClockModel) renderTitle() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Render("⏱  25 + 5 Clock")
}

// renderLengthControls renders the break and session length regions side by side
func (m ClockModel) renderLengthControls() string {
	breakControl := m.renderLengthControl("Break Length", m.clock.BreakLength,
		m.keys.BreakDecrement, m.keys.BreakIncrement)
	sessionControl := m.renderLengthControl("Session Length", m.clock.SessionLength,
		m.keys.SessionDecrement, m.keys.SessionIncrement)

	return lipgloss.JoinHorizontal(lipgloss.Top, breakControl, "      ", sessionControl)
}

func (m ClockModel) renderLengthControl(label string, length int, dec, inc key.Binding) string {
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText))
	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDisabledText))
	lengthStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true)

	control := fmt.Sprintf("%s  %s  %s",
		hintStyle.Render("("+dec.Help().Key+") −"),
		lengthStyle.Render(fmt.Sprintf("%2d", length)),
		hintStyle.Render("+ ("+inc.Help().Key+")"),
	)

	return lipgloss.JoinVertical(lipgloss.Center, labelStyle.Render(label), control)
}

// renderTimerPanel renders the phase label and the time left
func (m ClockModel) renderTimerPanel() string {
	color := ColorAccentBright
	if !m.clock.Session {
		color = ColorBreak
	}

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true)

	readout := m.clock.Display()
	if m.width >= bigClockWidth+10 {
		readout = renderBigClock(readout, color)
	} else {
		readout = lipgloss.NewStyle().
			Foreground(lipgloss.Color(color)).
			Bold(true).
			Render(readout)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 2).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, labelStyle.Render(m.clock.Label.String()), "", readout))
}

// renderTransportControls renders start/stop and reset
func (m ClockModel) renderTransportControls() string {
	startStop := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)).
		Bold(true).
		Render("▶ Start")
	if m.clock.Running {
		startStop = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Bold(true).
			Render("❚❚ Pause")
	}

	reset := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorError)).
		Bold(true).
		Render("↺ Reset")

	return lipgloss.JoinHorizontal(lipgloss.Top, startStop, "    ", reset)
}

// renderHelpBar renders the help bar at the bottom
func (m ClockModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Align(lipgloss.Center).
		Width(m.width)

	return helpStyle.Render(m.help.View(m.keys))
}
