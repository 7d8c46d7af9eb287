package service

import "time"

// Clock is the source of "now" for default timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant. Used in tests.
type FixedClock struct {
	T time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.T
}

// defaultDeadlineOffset is how far past creation a task is due when no deadline is given.
const defaultDeadlineOffset = 24 * time.Hour
