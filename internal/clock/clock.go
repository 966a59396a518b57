package clock

import "fmt"

// Length limits and defaults, in minutes
const (
	DefaultBreakLength   = 5
	DefaultSessionLength = 25
	MinLength            = 1
	MaxLength            = 60

	SecondsPerMinute = 60
)

// Label is the phase name shown above the countdown
type Label string

const (
	LabelSession Label = "Session"
	LabelBreak   Label = "Break"
)

// String returns the label text
func (l Label) String() string {
	return string(l)
}

// Clock holds the whole state of a 25+5 clock
type Clock struct {
	BreakLength   int // minutes
	SessionLength int // minutes
	TimeLeft      int // seconds remaining in the current phase

	Running bool
	Session bool // true while in the Session phase, false during Break
	Label   Label
}

// New creates a clock with the default 25 minute session and 5 minute break
func New() *Clock {
	c := &Clock{}
	c.Reset()
	return c
}

// IncrementBreak adds a minute to the break length.
// TimeLeft is never touched by break changes.
func (c *Clock) IncrementBreak() bool {
	if c.BreakLength >= MaxLength {
		return false
	}
	c.BreakLength++
	return true
}

// DecrementBreak removes a minute from the break length
func (c *Clock) DecrementBreak() bool {
	if c.BreakLength <= MinLength {
		return false
	}
	c.BreakLength--
	return true
}

// IncrementSession adds a minute to the session length and restarts the
// countdown from the new session length, whatever phase is active.
func (c *Clock) IncrementSession() bool {
	if c.SessionLength >= MaxLength {
		return false
	}
	c.SessionLength++
	c.TimeLeft = c.SessionLength * SecondsPerMinute
	return true
}

// DecrementSession removes a minute from the session length and restarts the
// countdown from the new session length.
func (c *Clock) DecrementSession() bool {
	if c.SessionLength <= MinLength {
		return false
	}
	c.SessionLength--
	c.TimeLeft = c.SessionLength * SecondsPerMinute
	return true
}

// ToggleStartStop flips the running flag
func (c *Clock) ToggleStartStop() {
	c.Running = !c.Running
}

// Reset stops the clock and restores every default
func (c *Clock) Reset() {
	c.Running = false
	c.BreakLength = DefaultBreakLength
	c.SessionLength = DefaultSessionLength
	c.Session = true
	c.Label = LabelSession
	c.TimeLeft = DefaultSessionLength * SecondsPerMinute
}

// Tick advances the countdown by one second. A tick that finds the countdown
// already at zero switches phase instead of decrementing, loading the other
// phase's current length, and reports true so the caller can sound the cue.
func (c *Clock) Tick() bool {
	prev := c.TimeLeft
	if prev > 0 {
		c.TimeLeft = prev - 1
		return false
	}

	if c.Session {
		c.Session = false
		c.Label = LabelBreak
		c.TimeLeft = c.BreakLength * SecondsPerMinute
	} else {
		c.Session = true
		c.Label = LabelSession
		c.TimeLeft = c.SessionLength * SecondsPerMinute
	}
	return true
}

// Display returns the remaining time as MM:SS
func (c *Clock) Display() string {
	return Format(c.TimeLeft)
}

// Format renders seconds as MM:SS
func Format(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/SecondsPerMinute, seconds%SecondsPerMinute)
}
