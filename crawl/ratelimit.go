package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/gdndoc"
	"golang.org/x/time/rate"
)

// DefaultFetchDelay is the minimum delay between consecutive requests
// to the source site.
const DefaultFetchDelay = 500 * time.Millisecond

// Ensure Limiter implements gdndoc.RateLimiter at compile time.
var _ gdndoc.RateLimiter = (*Limiter)(nil)

// Limiter enforces a minimum delay between requests using a token
// bucket with a burst of 1 (no bursting allowed). One Limiter is
// shared by the whole run, so the budget stays aggregate even when
// fetches come from multiple workers.
type Limiter struct {
	l *rate.Limiter
}

// NewLimiter creates a Limiter that allows one request per minDelay.
// Non-positive delays fall back to DefaultFetchDelay.
func NewLimiter(minDelay time.Duration) *Limiter {
	if minDelay <= 0 {
		minDelay = DefaultFetchDelay
	}
	return &Limiter{
		l: rate.NewLimiter(rate.Every(minDelay), 1),
	}
}

// Wait blocks until the next request is allowed.
// Returns an error if the context is canceled before the wait completes.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.l.Wait(ctx)
}
