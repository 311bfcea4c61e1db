// Package clock provides time sources that can be substituted in tests.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// Real implements Clock using system time.
type Real struct{}

// Now returns the current system time.
func (Real) Now() time.Time {
	return time.Now()
}

// Fixed implements Clock with a fixed time for testing.
type Fixed struct {
	now time.Time
}

// NewFixed creates a Fixed clock at the given time.
func NewFixed(t time.Time) *Fixed {
	return &Fixed{now: t}
}

// Now returns the fixed time.
func (f *Fixed) Now() time.Time {
	return f.now
}

// Set updates the fixed time.
func (f *Fixed) Set(t time.Time) {
	f.now = t
}

// Advance moves the fixed time forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}
