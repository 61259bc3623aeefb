// Package crawl orchestrates parsing of listing pages.
// It coordinates URL validation, fetching, extraction, and optional
// storage of listings, one URL at a time.
package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/homes"
)

// URLSet records which URLs have already been parsed.
type URLSet interface {
	Test(url string) bool
	Add(url string)
}

// Crawler parses listing pages. Fetcher and Extractor are required;
// the remaining collaborators are optional.
type Crawler struct {
	Fetcher   homes.Fetcher
	Extractor homes.ListingExtractor

	// Probe, if set, reports whether a page carries the listing block.
	Probe homes.ListingProbe

	// Listings, if set, receives every parsed listing.
	Listings homes.ListingService

	// Seen, if set, skips URLs already parsed in this session.
	Seen URLSet

	RetryDelays []time.Duration
	RetryLog    LogFunc
}

// Result holds the outcome of parsing a single URL.
type Result struct {
	URL     string
	Listing *homes.Listing

	// Saved is the stored listing when the crawler has a ListingService.
	Saved *homes.SavedListing

	// NoListingBlock is true when the probe found no listing block,
	// meaning the page is most likely not a listing page.
	NoListingBlock bool

	// Skipped is true when the URL was already parsed in this session.
	Skipped bool
}

// Summary holds the outcome of a multi-URL parse.
type Summary struct {
	Results []*Result
	Skipped int
	Failed  int
}

// Listings returns the parsed listings in input order.
func (s *Summary) Listings() []*homes.Listing {
	listings := make([]*homes.Listing, 0, len(s.Results))
	for _, r := range s.Results {
		listings = append(listings, r.Listing)
	}
	return listings
}

// ProgressEvent reports progress during a multi-URL parse.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Result    *Result
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting parse progress.
type ProgressFunc func(event ProgressEvent)

// ParseURL validates, fetches, and extracts one listing page.
// A URL already present in Seen yields a skipped result and no error.
func (c *Crawler) ParseURL(ctx context.Context, url string) (*Result, error) {
	if err := homes.ValidateListingURL(url); err != nil {
		return nil, err
	}

	if c.Seen != nil && c.Seen.Test(url) {
		return &Result{URL: url, Skipped: true}, nil
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	markup, err := FetchWithRetryDelays(ctx, url, c.Fetcher.Fetch, c.RetryLog, delays)
	if err != nil {
		return nil, err
	}

	listing, err := c.Extractor.Extract(url, markup)
	if err != nil {
		return nil, err
	}

	result := &Result{URL: url, Listing: listing}
	if c.Probe != nil {
		result.NoListingBlock = !c.Probe.HasListingBlock(markup)
	}

	if c.Listings != nil {
		saved := &homes.SavedListing{Listing: listing}
		if err := c.Listings.CreateListing(ctx, saved, markup); err != nil {
			return nil, err
		}
		result.Saved = saved
	}

	if c.Seen != nil {
		c.Seen.Add(url)
	}

	return result, nil
}

// ParseURLs parses urls sequentially. Failed URLs are counted and reported
// through progress but do not stop the run; only context cancellation does.
func (c *Crawler) ParseURLs(ctx context.Context, urls []string, progress ProgressFunc) (*Summary, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	total := len(urls)
	progress(ProgressEvent{Type: ProgressStarted, Total: total})

	summary := &Summary{}
	for i, url := range urls {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		event := ProgressEvent{Completed: i + 1, Total: total, URL: url}

		result, err := c.ParseURL(ctx, url)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return summary, ctx.Err()
			}
			summary.Failed++
			event.Type = ProgressFailed
			event.Error = err
		case result.Skipped:
			summary.Skipped++
			event.Type = ProgressSkipped
			event.Result = result
		default:
			summary.Results = append(summary.Results, result)
			event.Type = ProgressCompleted
			event.Result = result
		}
		progress(event)
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	return summary, nil
}
