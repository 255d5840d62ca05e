package gdndoc

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations are expected to honor the site's request budget by
// waiting on a shared RateLimiter before every network call.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// RateLimiter enforces a minimum delay between consecutive requests.
// The limiter is shared across the whole run so the request budget
// stays aggregate even when fetches run from multiple workers.
type RateLimiter interface {
	// Wait blocks until the next request is allowed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context) error
}
