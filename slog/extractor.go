package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/homes"
)

// Ensure LoggingExtractor implements homes.ListingExtractor.
var _ homes.ListingExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a ListingExtractor with logging.
type LoggingExtractor struct {
	next   homes.ListingExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next homes.ListingExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs how many fields were found.
func (e *LoggingExtractor) Extract(url, markup string) (listing *homes.Listing, err error) {
	defer func(begin time.Time) {
		fields := 0
		if listing != nil {
			fields = listing.FieldCount()
		}
		e.logger.Info("extract",
			"url", url,
			"bytes", len(markup),
			"fields", fields,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(url, markup)
}
