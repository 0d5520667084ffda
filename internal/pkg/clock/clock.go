// Package clock provides an injectable time source so quest timers and
// completion timestamps can be driven from tests.
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/questlog-api/internal/pkg/clock Clock

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time in UTC
func (c *Real) Now() time.Time {
	return time.Now().UTC()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed is a Clock pinned to a single instant. Advance moves it forward.
type Fixed struct {
	At time.Time
}

// NewFixed returns a clock frozen at t
func NewFixed(t time.Time) *Fixed {
	return &Fixed{At: t}
}

// Now returns the pinned instant
func (f *Fixed) Now() time.Time {
	return f.At
}

// Advance moves the pinned instant forward by d
func (f *Fixed) Advance(d time.Duration) {
	f.At = f.At.Add(d)
}
