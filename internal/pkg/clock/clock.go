// Package clock provides time utilities for the application
package clock

import "time"

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// Fixed implements Clock with a frozen instant for tests
type Fixed struct {
	Instant time.Time
}

// Now returns the frozen instant
func (c *Fixed) Now() time.Time {
	return c.Instant
}
