// Package goquery provides HTML inspection of listing pages built on goquery.
// It is used for diagnostics only; extraction itself streams through the
// markup in package html.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/homes"
)

// Ensure Probe implements homes.ListingProbe at compile time.
var _ homes.ListingProbe = (*Probe)(nil)

// listingBlockSelector matches the dataset container the extractor reads.
// Attribute selectors keep the match exact, as the extractor does.
const listingBlockSelector = "div[id='listing-body'][class='dataset']"

// Probe checks whether a page follows the listing page template.
type Probe struct{}

// NewProbe creates a new Probe.
func NewProbe() *Probe {
	return &Probe{}
}

// HasListingBlock reports whether markup contains the listing-body dataset.
// Unparseable markup reports false.
func (p *Probe) HasListingBlock(markup string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return false
	}
	return doc.Find(listingBlockSelector).Length() > 0
}

// Headings returns the trimmed h4 headings inside the listing-body dataset,
// in document order. It helps explain a listing that came out empty.
func (p *Probe) Headings(markup string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}

	var headings []string
	doc.Find(listingBlockSelector + " h4").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			headings = append(headings, text)
		}
	})
	return headings
}
