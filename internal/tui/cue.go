package tui

import (
	"fmt"
	"io"
)

// Cue is the sound played when a phase ends
type Cue interface {
	// Play starts the cue from its current position
	Play() error
	// Stop halts the cue and rewinds it to the start
	Stop() error
}

// BellCue rings the terminal bell, used when no audio device is available
type BellCue struct {
	out io.Writer
}

// NewBellCue creates a cue that writes BEL to out
func NewBellCue(out io.Writer) *BellCue {
	return &BellCue{out: out}
}

// Play rings the bell once
func (c *BellCue) Play() error {
	if _, err := io.WriteString(c.out, "\a"); err != nil {
		return fmt.Errorf("ring bell: %w", err)
	}
	return nil
}

// Stop is a no-op, a bell has nothing to rewind
func (c *BellCue) Stop() error {
	return nil
}

// SilentCue never makes a sound
type SilentCue struct{}

func (SilentCue) Play() error { return nil }
func (SilentCue) Stop() error { return nil }
