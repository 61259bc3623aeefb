package mock

import "github.com/fwojciec/homes"

var _ homes.ListingExtractor = (*ListingExtractor)(nil)

// ListingExtractor is a mock implementation of homes.ListingExtractor.
type ListingExtractor struct {
	ExtractFn func(url, markup string) (*homes.Listing, error)
}

func (e *ListingExtractor) Extract(url, markup string) (*homes.Listing, error) {
	return e.ExtractFn(url, markup)
}

var _ homes.ListingProbe = (*ListingProbe)(nil)

// ListingProbe is a mock implementation of homes.ListingProbe.
type ListingProbe struct {
	HasListingBlockFn func(markup string) bool
	HeadingsFn        func(markup string) []string
}

func (p *ListingProbe) HasListingBlock(markup string) bool {
	return p.HasListingBlockFn(markup)
}

func (p *ListingProbe) Headings(markup string) []string {
	return p.HeadingsFn(markup)
}
