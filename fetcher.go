package cragdex

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch issues a GET request and returns the response body.
	// Transport errors and non-2xx statuses are returned as errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources.
	Close() error
}

// Limiter throttles outbound requests.
type Limiter interface {
	// Wait blocks until the limiter allows the next request.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context) error
}

// SeenFilter tracks URLs that have already been discovered, so repeated
// listing pages don't queue the same route twice in one run.
type SeenFilter interface {
	// Add records a URL as seen.
	Add(url string)

	// Test returns true if the URL may have been seen before.
	// Implementations may allow false positives but never false negatives.
	Test(url string) bool
}
