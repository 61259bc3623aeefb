package mock

import (
	"context"

	"github.com/fwojciec/homes"
)

var _ homes.ListingService = (*ListingService)(nil)

// ListingService is a mock implementation of homes.ListingService.
type ListingService struct {
	CreateListingFn   func(ctx context.Context, saved *homes.SavedListing, markup string) error
	FindListingByIDFn func(ctx context.Context, id string) (*homes.SavedListing, error)
	FindListingsFn    func(ctx context.Context, filter homes.ListingFilter) ([]*homes.SavedListing, error)
	DeleteListingFn   func(ctx context.Context, id string) error
}

func (s *ListingService) CreateListing(ctx context.Context, saved *homes.SavedListing, markup string) error {
	return s.CreateListingFn(ctx, saved, markup)
}

func (s *ListingService) FindListingByID(ctx context.Context, id string) (*homes.SavedListing, error) {
	return s.FindListingByIDFn(ctx, id)
}

func (s *ListingService) FindListings(ctx context.Context, filter homes.ListingFilter) ([]*homes.SavedListing, error) {
	return s.FindListingsFn(ctx, filter)
}

func (s *ListingService) DeleteListing(ctx context.Context, id string) error {
	return s.DeleteListingFn(ctx, id)
}
