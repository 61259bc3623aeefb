package mock

import (
	"context"

	"github.com/fwojciec/homes"
)

var _ homes.ListingWriter = (*ListingWriter)(nil)

// ListingWriter is a mock implementation of homes.ListingWriter.
type ListingWriter struct {
	WriteListingsFn func(ctx context.Context, listings []homes.FlatListing) error
}

func (w *ListingWriter) WriteListings(ctx context.Context, listings []homes.FlatListing) error {
	return w.WriteListingsFn(ctx, listings)
}
