// Package clock is the single source of "now" and "today" for the server.
// Seeds, the daily gate and capsule locks all read the calendar day through
// a Clock so that they agree on where midnight is.
package clock

import (
	"sync"
	"time"
)

// Clock reports the current instant and the current calendar day.
type Clock interface {
	Now() time.Time
	Today() Day
}

// System is the wall clock observed in Location (UTC when nil).
type System struct {
	Location *time.Location
}

// NewSystem returns a wall clock for the given location.
func NewSystem(loc *time.Location) System {
	return System{Location: loc}
}

func (c System) loc() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

func (c System) Now() time.Time { return time.Now().In(c.loc()) }

func (c System) Today() Day { return DayOf(c.Now()) }

// Fixed is a manually driven clock for tests.
type Fixed struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixed creates a clock frozen at t.
func NewFixed(t time.Time) *Fixed {
	return &Fixed{now: t}
}

func (c *Fixed) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Fixed) Today() Day { return DayOf(c.Now()) }

// Set moves the clock to t.
func (c *Fixed) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Advance moves the clock forward by d.
func (c *Fixed) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
