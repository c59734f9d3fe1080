package test

import (
	"sync"
	"time"
)

// ManualClock is a clock that only moves when told to.
type ManualClock struct {
	mu        sync.Mutex
	monotonic time.Duration
	wall      time.Time
}

func NewManualClock(wall time.Time) *ManualClock {
	return &ManualClock{wall: wall}
}

func (c *ManualClock) Monotonic() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.monotonic
}

func (c *ManualClock) Wall() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.wall
}

// Advance moves both readings forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.monotonic += d
	c.wall = c.wall.Add(d)
}

// SetMonotonic jumps to an absolute monotonic reading, moving the wall clock
// by the same amount.
func (c *ManualClock) SetMonotonic(at time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.wall = c.wall.Add(at - c.monotonic)
	c.monotonic = at
}
