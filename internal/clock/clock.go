// Package clock provides an injectable time source so date-sensitive logic
// (daily quest rotation, streak counting, idle timers) can be tested without
// waiting on real time.
package clock

import (
	"sync"
	"time"
)

// DateFormat is the calendar-day format used everywhere a date is compared
// or persisted.
const DateFormat = "2006-01-02"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// Real is a Clock backed by the system time.
type Real struct{}

// Now returns the current system time.
func (Real) Now() time.Time {
	return time.Now()
}

// Today returns the calendar date string for the clock's current time.
func Today(c Clock) string {
	return c.Now().Format(DateFormat)
}

// Fake is a Clock with a settable time, for tests.
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

// NewFake creates a Fake clock starting at t.
func NewFake(t time.Time) *Fake {
	return &Fake{now: t}
}

// Now returns the fake time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Set replaces the fake time.
func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = t
}

// Advance moves the fake time forward by d.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}
