// Package pacer drives the fixed-cadence loops of the control runtime: lane
// workers, the sequencer and the simulated world each call Loop with the
// control tick interval.
package pacer

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Loop calls fn once per interval until ctx is done or fn returns false.
// A burst of one means a slow iteration is followed by at most one immediate
// catch-up call, never a backlog. Loop returns nil in both cases; callers
// inspect ctx themselves if they need the reason.
func Loop(ctx context.Context, interval time.Duration, fn func(context.Context) bool) error {
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	for {
		if err := limiter.Wait(ctx); err != nil {
			// Wait also fails early when the next token lies past the
			// context deadline; idle until the deadline in that case.
			<-ctx.Done()
			return nil
		}
		if !fn(ctx) {
			return nil
		}
	}
}
