package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// glyphHeight is the number of rows in every big clock glyph
const glyphHeight = 5

// bigGlyphs maps each rune of an MM:SS readout to its 5-row ASCII art
var bigGlyphs = map[rune][glyphHeight]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// bigClockWidth is the rendered width of an MM:SS readout
const bigClockWidth = 5 * 6

// renderBigClock renders an MM:SS readout as ASCII art in the given color
func renderBigClock(readout string, color string) string {
	var rows [glyphHeight]strings.Builder

	for _, r := range readout {
		glyph, ok := bigGlyphs[r]
		if !ok {
			continue
		}
		for i := 0; i < glyphHeight; i++ {
			rows[i].WriteString(glyph[i])
			rows[i].WriteString(" ")
		}
	}

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true)

	lines := make([]string, glyphHeight)
	for i := range rows {
		lines[i] = style.Render(rows[i].String())
	}
	return strings.Join(lines, "\n")
}
