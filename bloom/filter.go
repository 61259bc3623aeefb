// Package bloom provides listing URL deduplication using Bloom filters.
package bloom

import (
	"net/url"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// Sizing used for a single interactive parse session.
const (
	DefaultExpectedURLs      = 1000
	DefaultFalsePositiveRate = 0.001
)

// Filter remembers which listing URLs have been seen.
// URLs are compared after normalization, so the same listing reached
// through a different scheme, host case, fragment or trailing slash is
// still recognized.
//
// The Bloom filter rejects unseen URLs without touching the exact set.
// Every positive is confirmed against the exact set of normalized URLs,
// so a Bloom false positive never causes a new listing to be skipped.
type Filter struct {
	f    *bloom.BloomFilter
	seen map[string]struct{}
}

// NewFilter creates a new Bloom filter sized for n expected URLs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f:    bloom.NewWithEstimates(n, fpRate),
		seen: make(map[string]struct{}, n),
	}
}

// Add adds a URL to the filter.
func (f *Filter) Add(rawURL string) {
	key := normalize(rawURL)
	f.f.AddString(key)
	f.seen[key] = struct{}{}
}

// Test reports whether the URL was added before.
func (f *Filter) Test(rawURL string) bool {
	key := normalize(rawURL)
	if !f.f.TestString(key) {
		return false
	}
	_, ok := f.seen[key]
	return ok
}

// normalize reduces a listing URL to host and path.
func normalize(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	path := strings.TrimSuffix(u.Path, "/")
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return host + path
}
