// Package resty provides an HTTP-based implementation of cragdex.Fetcher
// using the resty client, configured with a realistic browser user-agent.
package resty

import (
	"context"
	"time"

	"github.com/cragdex/cragdex"
	"github.com/go-resty/resty/v2"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent mirrors a desktop Chrome browser. Route database sites
// serve degraded or blocked pages to obvious bot user-agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Ensure Fetcher implements cragdex.Fetcher at compile time.
var _ cragdex.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs over HTTP. It does not execute
// JavaScript and is suitable for static pages only.
type Fetcher struct {
	client    *resty.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new resty-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = resty.New().
		SetTimeout(f.timeout).
		SetHeader("User-Agent", f.userAgent)

	return f
}

// Fetch retrieves the HTML content from the given URL. Non-2xx responses
// are returned as EUNAVAILABLE errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", err
	}

	if !resp.IsSuccess() {
		return "", cragdex.Errorf(cragdex.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode(), url)
	}

	return resp.String(), nil
}

// Close releases resources. The resty client does not require explicit
// cleanup, so this is a no-op.
func (f *Fetcher) Close() error {
	return nil
}
