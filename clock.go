package endesga

// DefaultStep is the logical frame duration in seconds.
const DefaultStep float32 = 1.0 / 60.0

// FixedClock accumulates time in fixed steps.
// It never measures wall time.
type FixedClock struct {
	Step float32
	Time float32
}

// NewFixedClock creates a clock starting at zero.
func NewFixedClock(step float32) *FixedClock {
	if step <= 0 {
		step = DefaultStep
	}
	return &FixedClock{Step: step}
}

// Advance moves the clock forward one step and returns the new time.
func (c *FixedClock) Advance() float32 {
	c.Time += c.Step
	return c.Time
}

// Reset rewinds the clock to zero.
func (c *FixedClock) Reset() {
	c.Time = 0
}
