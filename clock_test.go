package endesga

import "testing"

func TestFixedClock(t *testing.T) {
	c := NewFixedClock(0.25)
	for i := 1; i <= 4; i++ {
		if got := c.Advance(); got != float32(i)*0.25 {
			t.Errorf("step %d: got %v", i, got)
		}
	}

	c.Reset()
	if c.Time != 0 {
		t.Errorf("expected 0 after Reset, got %v", c.Time)
	}
}

func TestFixedClockDefaultStep(t *testing.T) {
	c := NewFixedClock(0)
	if c.Step != DefaultStep {
		t.Errorf("expected default step %v, got %v", DefaultStep, c.Step)
	}
}
