package homes

import (
	"context"
	"time"
)

// SavedListing is a listing persisted together with its fetch metadata.
type SavedListing struct {
	ID          string    `json:"id"`
	Listing     *Listing  `json:"listing"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the saved listing contains invalid fields.
func (s *SavedListing) Validate() error {
	if s.Listing == nil {
		return Errorf(EINVALID, "listing required")
	}
	if s.Listing.URL == "" {
		return Errorf(EINVALID, "listing URL required")
	}
	return nil
}

// ListingService represents a service for managing saved listings.
type ListingService interface {
	// CreateListing saves a listing. It assigns ID and FetchedAt and
	// computes ContentHash from the page markup.
	CreateListing(ctx context.Context, saved *SavedListing, markup string) error

	// FindListingByID retrieves a saved listing by ID.
	// Returns ENOTFOUND if the listing does not exist.
	FindListingByID(ctx context.Context, id string) (*SavedListing, error)

	// FindListings retrieves saved listings matching the filter,
	// most recently fetched first.
	FindListings(ctx context.Context, filter ListingFilter) ([]*SavedListing, error)

	// DeleteListing permanently removes a saved listing.
	// Returns ENOTFOUND if the listing does not exist.
	DeleteListing(ctx context.Context, id string) error
}

// ListingFilter represents a filter for FindListings.
type ListingFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
