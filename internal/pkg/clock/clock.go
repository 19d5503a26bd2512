package clock

import "time"

// Clock abstracts time so date-window logic can be tested against fixed
// instants.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real system time.
type SystemClock struct{}

// NewSystemClock creates a SystemClock.
func NewSystemClock() Clock {
	return &SystemClock{}
}

// Now returns the current system time in UTC.
func (c *SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock serves a settable instant for tests.
type FixedClock struct {
	current time.Time
}

// NewFixedClock creates a FixedClock pinned at t.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{current: t}
}

// Now returns the pinned instant.
func (c *FixedClock) Now() time.Time {
	return c.current
}

// Set pins the clock at t.
func (c *FixedClock) Set(t time.Time) {
	c.current = t
}

// Advance moves the pinned instant forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
