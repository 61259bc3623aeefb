package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/homes"
	"github.com/fwojciec/homes/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSavedListing(url string) *homes.SavedListing {
	l := homes.NewListing(url)
	l.Essential.Set(homes.LabelPrice, "$450,000")
	l.Essential.Set(homes.LabelStatus, "Active")
	l.Community.Set(homes.LabelAddress, "123 Evergreen Street SW")
	l.Amenities.Set(homes.LabelNumGarages, "2")
	return &homes.SavedListing{Listing: l}
}

func TestListingService_CreateListing(t *testing.T) {
	t.Parallel()

	t.Run("creates listing with generated ID, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewListingService(db)

		saved := newSavedListing("https://www.calgaryhomes.ca/listing/1")
		err := svc.CreateListing(context.Background(), saved, "<html></html>")
		require.NoError(t, err)

		assert.NotEmpty(t, saved.ID, "ID should be generated")
		assert.Len(t, saved.ContentHash, 16, "ContentHash should be 64-bit hex")
		assert.False(t, saved.FetchedAt.IsZero(), "FetchedAt should be set")
	})

	t.Run("same markup hashes the same", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewListingService(db)

		a := newSavedListing("https://www.calgaryhomes.ca/listing/1")
		b := newSavedListing("https://www.calgaryhomes.ca/listing/1")
		c := newSavedListing("https://www.calgaryhomes.ca/listing/1")
		require.NoError(t, svc.CreateListing(context.Background(), a, "<html>1</html>"))
		require.NoError(t, svc.CreateListing(context.Background(), b, "<html>1</html>"))
		require.NoError(t, svc.CreateListing(context.Background(), c, "<html>2</html>"))

		assert.Equal(t, a.ContentHash, b.ContentHash)
		assert.NotEqual(t, a.ContentHash, c.ContentHash)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("returns error for invalid listing", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewListingService(db)

		err := svc.CreateListing(context.Background(), &homes.SavedListing{}, "")
		require.Error(t, err)
		assert.Equal(t, homes.EINVALID, homes.ErrorCode(err))

		err = svc.CreateListing(context.Background(), &homes.SavedListing{Listing: homes.NewListing("")}, "")
		assert.Equal(t, homes.EINVALID, homes.ErrorCode(err))
	})
}

func TestListingService_FindListingByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips all field groups", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewListingService(db)
		ctx := context.Background()

		saved := newSavedListing("https://www.calgaryhomes.ca/listing/1")
		require.NoError(t, svc.CreateListing(ctx, saved, "<html></html>"))

		found, err := svc.FindListingByID(ctx, saved.ID)
		require.NoError(t, err)

		assert.Equal(t, saved.ID, found.ID)
		assert.Equal(t, saved.ContentHash, found.ContentHash)
		assert.True(t, saved.FetchedAt.Equal(found.FetchedAt))
		assert.Equal(t, saved.Listing, found.Listing)
		assert.Nil(t, found.Listing.Essential.Bedrooms)
	})

	t.Run("returns ENOTFOUND for missing listing", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewListingService(db)

		_, err := svc.FindListingByID(context.Background(), "nonexistent")
		require.Error(t, err)
		assert.Equal(t, homes.ENOTFOUND, homes.ErrorCode(err))
	})
}

func TestListingService_FindListings(t *testing.T) {
	t.Parallel()

	t.Run("returns most recent first", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewListingService(db)
		ctx := context.Background()

		for i := range 3 {
			require.NoError(t, svc.CreateListing(ctx, newSavedListing(fmt.Sprintf("https://www.calgaryhomes.ca/listing/%d", i)), ""))
		}

		listings, err := svc.FindListings(ctx, homes.ListingFilter{})
		require.NoError(t, err)
		require.Len(t, listings, 3)
		assert.Equal(t, "https://www.calgaryhomes.ca/listing/2", listings[0].Listing.URL)
		assert.Equal(t, "https://www.calgaryhomes.ca/listing/0", listings[2].Listing.URL)
	})

	t.Run("filters by url", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewListingService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateListing(ctx, newSavedListing("https://www.calgaryhomes.ca/listing/1"), ""))
		require.NoError(t, svc.CreateListing(ctx, newSavedListing("https://www.calgaryhomes.ca/listing/2"), ""))

		url := "https://www.calgaryhomes.ca/listing/2"
		listings, err := svc.FindListings(ctx, homes.ListingFilter{URL: &url})
		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, url, listings[0].Listing.URL)
	})

	t.Run("filters by id", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewListingService(db)
		ctx := context.Background()

		saved := newSavedListing("https://www.calgaryhomes.ca/listing/1")
		require.NoError(t, svc.CreateListing(ctx, saved, ""))
		require.NoError(t, svc.CreateListing(ctx, newSavedListing("https://www.calgaryhomes.ca/listing/2"), ""))

		listings, err := svc.FindListings(ctx, homes.ListingFilter{ID: &saved.ID})
		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, saved.ID, listings[0].ID)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewListingService(db)
		ctx := context.Background()

		for i := range 5 {
			require.NoError(t, svc.CreateListing(ctx, newSavedListing(fmt.Sprintf("https://www.calgaryhomes.ca/listing/%d", i)), ""))
		}

		page, err := svc.FindListings(ctx, homes.ListingFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, "https://www.calgaryhomes.ca/listing/3", page[0].Listing.URL)
		assert.Equal(t, "https://www.calgaryhomes.ca/listing/2", page[1].Listing.URL)

		rest, err := svc.FindListings(ctx, homes.ListingFilter{Offset: 3})
		require.NoError(t, err)
		assert.Len(t, rest, 2)
	})

	t.Run("returns empty for empty database", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewListingService(db)

		listings, err := svc.FindListings(context.Background(), homes.ListingFilter{})
		require.NoError(t, err)
		assert.Empty(t, listings)
	})
}

func TestListingService_DeleteListing(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing listing", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewListingService(db)
		ctx := context.Background()

		saved := newSavedListing("https://www.calgaryhomes.ca/listing/1")
		require.NoError(t, svc.CreateListing(ctx, saved, ""))

		require.NoError(t, svc.DeleteListing(ctx, saved.ID))

		_, err := svc.FindListingByID(ctx, saved.ID)
		assert.Equal(t, homes.ENOTFOUND, homes.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing listing", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewListingService(db)

		err := svc.DeleteListing(context.Background(), "nonexistent")
		assert.Equal(t, homes.ENOTFOUND, homes.ErrorCode(err))
	})
}
