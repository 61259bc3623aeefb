package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/homes"
)

// Ensure LoggingListingService implements homes.ListingService.
var _ homes.ListingService = (*LoggingListingService)(nil)

// LoggingListingService wraps a ListingService with logging.
type LoggingListingService struct {
	next   homes.ListingService
	logger *slog.Logger
}

// NewLoggingListingService creates a new LoggingListingService.
func NewLoggingListingService(next homes.ListingService, logger *slog.Logger) *LoggingListingService {
	return &LoggingListingService{next: next, logger: logger}
}

// CreateListing delegates to the wrapped service and logs the stored ID.
func (s *LoggingListingService) CreateListing(ctx context.Context, saved *homes.SavedListing, markup string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create listing",
			"id", saved.ID,
			"hash", saved.ContentHash,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateListing(ctx, saved, markup)
}

// FindListingByID delegates to the wrapped service.
func (s *LoggingListingService) FindListingByID(ctx context.Context, id string) (*homes.SavedListing, error) {
	return s.next.FindListingByID(ctx, id)
}

// FindListings delegates to the wrapped service and logs the result count.
func (s *LoggingListingService) FindListings(ctx context.Context, filter homes.ListingFilter) (listings []*homes.SavedListing, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find listings",
			"count", len(listings),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindListings(ctx, filter)
}

// DeleteListing delegates to the wrapped service and logs the deleted ID.
func (s *LoggingListingService) DeleteListing(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete listing",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteListing(ctx, id)
}
