// Package bloom provides probabilistic seen-URL tracking for route
// discovery across multiple area-listing pages.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/cragdex/cragdex"
)

var _ cragdex.SeenFilter = (*Filter)(nil)

// Filter wraps a Bloom filter for route-URL deduplication. False positives
// are possible at the configured rate; false negatives are not, so a seen
// route is never queued twice.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected URLs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a URL as seen.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test returns true if the URL may have been seen before.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
