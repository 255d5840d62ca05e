// Package mock provides function-field mock implementations of the
// gdndoc interfaces for use in tests.
package mock

import (
	"context"

	"github.com/fwojciec/gdndoc"
)

var _ gdndoc.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of gdndoc.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ gdndoc.RateLimiter = (*RateLimiter)(nil)

// RateLimiter is a mock implementation of gdndoc.RateLimiter.
type RateLimiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *RateLimiter) Wait(ctx context.Context) error {
	return l.WaitFn(ctx)
}
