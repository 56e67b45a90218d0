package command

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// Wait completes once its duration has elapsed. The duration may be changed
// from another goroutine until the command starts, which is how the start
// delay of a routine is adjusted before a match.
type Wait struct {
	Base
	duration atomic.Int64
}

// NewWait creates a Wait.
func NewWait(env Env, title string, d time.Duration) *Wait {
	if title == "" {
		title = fmt.Sprintf("wait %s", d)
	}
	w := &Wait{Base: newBase(env, title, 0)}
	w.duration.Store(int64(d))
	return w
}

// SetDuration changes how long the wait lasts.
func (c *Wait) SetDuration(d time.Duration) {
	c.duration.Store(int64(d))
}

// Duration returns the configured wait.
func (c *Wait) Duration() time.Duration {
	return time.Duration(c.duration.Load())
}

// waitGrace is added to a wait's duration to form its timeout.
const waitGrace = time.Second

// Timeout tracks the current duration so a long wait is never cut short by
// the lane default.
func (c *Wait) Timeout() time.Duration {
	return c.Duration() + waitGrace
}

func (c *Wait) Start(_ context.Context) error {
	c.begin()
	return nil
}

func (c *Wait) Poll(_ context.Context) (bool, error) {
	return c.Elapsed() >= c.Duration(), nil
}

func (c *Wait) Abort(_ context.Context) error {
	return nil
}
