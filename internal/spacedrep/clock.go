package spacedrep

import (
	"sync"
	"time"
)

// Clock supplies the current time to callers of the scheduler. The scheduler
// functions themselves always take "now" as an argument; Clock exists so
// services can be driven by a fixed time in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock returns a settable instant. Safe for concurrent use.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock creates a FixedClock pinned at now.
func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now}
}

func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// NextReviewDate returns the instant interval calendar days after now.
func NextReviewDate(interval int, now time.Time) time.Time {
	return now.AddDate(0, 0, interval)
}
