package clock

import "testing"

func assertDefaults(t *testing.T, c *Clock) {
	t.Helper()
	if c.Running {
		t.Error("Running should be false")
	}
	if c.BreakLength != 5 {
		t.Errorf("BreakLength = %d, want 5", c.BreakLength)
	}
	if c.SessionLength != 25 {
		t.Errorf("SessionLength = %d, want 25", c.SessionLength)
	}
	if !c.Session {
		t.Error("Session should be true")
	}
	if c.Label != LabelSession {
		t.Errorf("Label = %q, want %q", c.Label, LabelSession)
	}
	if c.TimeLeft != 1500 {
		t.Errorf("TimeLeft = %d, want 1500", c.TimeLeft)
	}
}

func TestNew_Defaults(t *testing.T) {
	assertDefaults(t, New())
}

func TestBreakLength_Bounds(t *testing.T) {
	for b := MinLength; b <= MaxLength; b++ {
		c := New()
		c.BreakLength = b
		changed := c.IncrementBreak()
		if b == MaxLength {
			if changed || c.BreakLength != MaxLength {
				t.Errorf("increment at %d should be a no-op, got %d", b, c.BreakLength)
			}
		} else if !changed || c.BreakLength != b+1 {
			t.Errorf("increment at %d: got %d", b, c.BreakLength)
		}

		c.BreakLength = b
		changed = c.DecrementBreak()
		if b == MinLength {
			if changed || c.BreakLength != MinLength {
				t.Errorf("decrement at %d should be a no-op, got %d", b, c.BreakLength)
			}
		} else if !changed || c.BreakLength != b-1 {
			t.Errorf("decrement at %d: got %d", b, c.BreakLength)
		}
	}
}

func TestBreakLength_DoesNotTouchTimeLeft(t *testing.T) {
	c := New()
	c.TimeLeft = 42
	c.IncrementBreak()
	c.DecrementBreak()
	c.DecrementBreak()
	if c.TimeLeft != 42 {
		t.Errorf("TimeLeft = %d, want 42", c.TimeLeft)
	}
}

func TestSessionLength_Bounds(t *testing.T) {
	for s := MinLength; s <= MaxLength; s++ {
		c := New()
		c.SessionLength = s
		c.TimeLeft = 7
		changed := c.IncrementSession()
		if s == MaxLength {
			if changed || c.SessionLength != MaxLength || c.TimeLeft != 7 {
				t.Errorf("increment at %d should be a no-op, got length %d time %d", s, c.SessionLength, c.TimeLeft)
			}
		} else if !changed || c.SessionLength != s+1 || c.TimeLeft != (s+1)*60 {
			t.Errorf("increment at %d: got length %d time %d", s, c.SessionLength, c.TimeLeft)
		}

		c.SessionLength = s
		c.TimeLeft = 7
		changed = c.DecrementSession()
		if s == MinLength {
			if changed || c.SessionLength != MinLength || c.TimeLeft != 7 {
				t.Errorf("decrement at %d should be a no-op, got length %d time %d", s, c.SessionLength, c.TimeLeft)
			}
		} else if !changed || c.SessionLength != s-1 || c.TimeLeft != (s-1)*60 {
			t.Errorf("decrement at %d: got length %d time %d", s, c.SessionLength, c.TimeLeft)
		}
	}
}

func TestSessionLength_RecomputesDuringBreak(t *testing.T) {
	c := New()
	c.Running = true
	c.Session = false
	c.Label = LabelBreak
	c.TimeLeft = 100

	c.IncrementSession()

	if c.TimeLeft != 26*60 {
		t.Errorf("TimeLeft = %d, want %d", c.TimeLeft, 26*60)
	}
	if c.Session || c.Label != LabelBreak {
		t.Error("phase should stay Break")
	}
	if !c.Running {
		t.Error("Running should not change")
	}
}

func TestToggleStartStop(t *testing.T) {
	c := New()
	c.ToggleStartStop()
	if !c.Running {
		t.Fatal("expected running after first toggle")
	}
	c.ToggleStartStop()
	if c.Running {
		t.Fatal("expected stopped after second toggle")
	}
	if c.TimeLeft != 1500 {
		t.Errorf("toggle should not touch TimeLeft, got %d", c.TimeLeft)
	}
}

func TestReset_FromAnyState(t *testing.T) {
	states := []Clock{
		{BreakLength: 60, SessionLength: 1, TimeLeft: 0, Running: true, Session: false, Label: LabelBreak},
		{BreakLength: 1, SessionLength: 60, TimeLeft: 3599, Running: false, Session: true, Label: LabelSession},
		{BreakLength: 12, SessionLength: 30, TimeLeft: 17, Running: true, Session: true, Label: LabelSession},
	}
	for _, s := range states {
		c := s
		c.Reset()
		assertDefaults(t, &c)
	}
}

func TestTick_Decrements(t *testing.T) {
	c := New()
	c.Running = true
	for want := 1499; want >= 0; want-- {
		if c.Tick() {
			t.Fatalf("unexpected rollover at %d", c.TimeLeft)
		}
		if c.TimeLeft != want {
			t.Fatalf("TimeLeft = %d, want %d", c.TimeLeft, want)
		}
	}
}

func TestTick_OneToZeroDoesNotRollOver(t *testing.T) {
	c := New()
	c.Running = true
	c.TimeLeft = 1

	if c.Tick() {
		t.Fatal("tick from 1 should not roll over")
	}
	if c.TimeLeft != 0 || !c.Session || !c.Running {
		t.Errorf("got TimeLeft=%d Session=%v Running=%v", c.TimeLeft, c.Session, c.Running)
	}
}

func TestTick_Rollover(t *testing.T) {
	tests := []struct {
		name        string
		session     bool
		wantSession bool
		wantLabel   Label
		wantTime    int
	}{
		{"session to break", true, false, LabelBreak, 7 * 60},
		{"break to session", false, true, LabelSession, 40 * 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.Running = true
			c.BreakLength = 7
			c.SessionLength = 40
			c.Session = tt.session
			c.TimeLeft = 0

			if !c.Tick() {
				t.Fatal("expected rollover")
			}
			if c.Session != tt.wantSession {
				t.Errorf("Session = %v, want %v", c.Session, tt.wantSession)
			}
			if c.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", c.Label, tt.wantLabel)
			}
			if c.TimeLeft != tt.wantTime {
				t.Errorf("TimeLeft = %d, want %d", c.TimeLeft, tt.wantTime)
			}
		})
	}
}

func TestTick_RolloverUsesCurrentBreakLength(t *testing.T) {
	c := New()
	c.Running = true
	c.TimeLeft = 2
	c.Tick()
	c.IncrementBreak() // changed mid-countdown
	c.Tick()
	c.Tick()

	if c.TimeLeft != 6*60 {
		t.Errorf("TimeLeft = %d, want %d", c.TimeLeft, 6*60)
	}
}

func TestTick_FullSession(t *testing.T) {
	c := New()
	c.ToggleStartStop()

	rollovers := 0
	for i := 0; i < 1501; i++ {
		if c.Tick() {
			rollovers++
		}
	}

	if rollovers != 1 {
		t.Errorf("rollovers = %d, want 1", rollovers)
	}
	if c.Session || c.Label != LabelBreak || c.TimeLeft != 300 {
		t.Errorf("got Session=%v Label=%q TimeLeft=%d", c.Session, c.Label, c.TimeLeft)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{9, "00:09"},
		{59, "00:59"},
		{60, "01:00"},
		{605, "10:05"},
		{1500, "25:00"},
		{3599, "59:59"},
		{3600, "60:00"},
	}
	for _, tt := range tests {
		if got := Format(tt.seconds); got != tt.want {
			t.Errorf("Format(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestDisplay(t *testing.T) {
	c := New()
	if got := c.Display(); got != "25:00" {
		t.Errorf("Display() = %q, want 25:00", got)
	}
}
