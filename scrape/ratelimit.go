package scrape

import (
	"context"
	"time"

	"github.com/cragdex/cragdex"
	"golang.org/x/time/rate"
)

var _ cragdex.Limiter = (*Throttle)(nil)

// Throttle enforces a fixed inter-request delay using a token bucket with
// a burst of 1. The delay is a process-wide politeness measure, not
// adaptive backoff.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle creates a Throttle allowing one request per delay interval.
// A zero delay disables throttling.
func NewThrottle(delay time.Duration) *Throttle {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &Throttle{limiter: rate.NewLimiter(limit, 1)}
}

// Wait blocks until the throttle allows the next request.
// Returns an error if the context is canceled before the wait completes.
func (t *Throttle) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}
