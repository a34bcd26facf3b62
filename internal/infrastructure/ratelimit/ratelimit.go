// Package ratelimit spaces outbound provider requests.
//
// Limiters only ever delay a caller; they never drop a request. Two
// implementations are provided: Interval keeps state in process, Redis shares
// one budget between every replica that uses the same key.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// Limiter blocks until the caller may issue the next request.
type Limiter interface {
	Wait(ctx context.Context) error
}

// Interval enforces a minimum gap between consecutive requests in this process.
type Interval struct {
	limiter  *rate.Limiter
	interval time.Duration
}

// NewInterval creates a limiter allowing one request per interval.
// A non-positive interval disables limiting.
func NewInterval(interval time.Duration) *Interval {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Interval{
		limiter:  rate.NewLimiter(limit, 1),
		interval: interval,
	}
}

// Interval returns the configured minimum gap.
func (l *Interval) Interval() time.Duration {
	return l.interval
}

// Wait blocks until the next slot. It returns the context error if ctx ends first,
// including when the deadline is too close for the next slot.
func (l *Interval) Wait(ctx context.Context) error {
	if err := l.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", context.DeadlineExceeded, err)
	}
	return nil
}

var _ Limiter = (*Interval)(nil)
