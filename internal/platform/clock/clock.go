// Package clock provides the time sources injected wherever the runtime
// measures elapsed time. Production code uses Real; tests use Fake and move
// time forward explicitly with Advance.
package clock

import (
	"sync"
	"time"
)

// Real returns a clock backed by the standard time package.
func Real() RealClock { return RealClock{} }

// RealClock reads wall time with its monotonic component.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// Fake returns a FakeClock initialized to the given time. Time stands still
// until Advance or Set is called.
//
// FakeClock is safe for concurrent use by multiple goroutines.
func Fake(initial time.Time) *FakeClock {
	return &FakeClock{current: initial}
}

// FakeClock is a deterministic clock for tests.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Advance moves the clock forward by d and returns the new time.
func (c *FakeClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
	return c.current
}

// Set jumps the clock to t.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}
