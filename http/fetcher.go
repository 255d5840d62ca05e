// Package http provides the HTTP-based implementation of
// gdndoc.Fetcher. The source site is server-rendered PHP, so a plain
// GET is sufficient; no JavaScript rendering is involved.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/gdndoc"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultUserAgent is sent with every request. The site serves a
// reduced page to clients without a browser-like user agent.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Ensure Fetcher implements gdndoc.Fetcher at compile time.
var _ gdndoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// Every call is a live request; there is no caching and no retry.
type Fetcher struct {
	client    *http.Client
	limiter   gdndoc.RateLimiter
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher. The limiter is waited on
// before every request, including discovery requests; it is shared run
// state, owned here so that every caller pays the same budget. A nil
// limiter disables rate limiting (useful in tests).
func NewFetcher(limiter gdndoc.RateLimiter, opts ...Option) *Fetcher {
	f := &Fetcher{
		limiter:   limiter,
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// Non-2xx responses and transport failures are reported as
// EUNAVAILABLE errors; the caller decides whether they are fatal.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", gdndoc.Errorf(gdndoc.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", gdndoc.Errorf(gdndoc.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", gdndoc.Errorf(gdndoc.EUNAVAILABLE, "read body of %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
