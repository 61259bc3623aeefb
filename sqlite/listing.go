package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/homes"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ homes.ListingService = (*ListingService)(nil)

// ListingService implements homes.ListingService using SQLite.
type ListingService struct {
	db *DB
}

// NewListingService creates a new ListingService.
func NewListingService(db *DB) *ListingService {
	return &ListingService{db: db}
}

// CreateListing saves a listing.
func (s *ListingService) CreateListing(ctx context.Context, saved *homes.SavedListing, markup string) error {
	if err := saved.Validate(); err != nil {
		return err
	}

	fields, err := encodeFields(saved.Listing)
	if err != nil {
		return err
	}

	saved.ID = uuid.New().String()
	saved.FetchedAt = time.Now().UTC()
	saved.ContentHash = hashContent(markup)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO listings (id, url, fields, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?)
	`, saved.ID, saved.Listing.URL, fields, saved.ContentHash, saved.FetchedAt.Format(timestampFormat))

	return err
}

// FindListingByID retrieves a saved listing by ID.
func (s *ListingService) FindListingByID(ctx context.Context, id string) (*homes.SavedListing, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, fields, content_hash, fetched_at
		FROM listings
		WHERE id = ?
	`, id)

	saved, err := scanListing(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, homes.Errorf(homes.ENOTFOUND, "listing not found")
	}
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// FindListings retrieves saved listings matching the filter.
func (s *ListingService) FindListings(ctx context.Context, filter homes.ListingFilter) ([]*homes.SavedListing, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, fields, content_hash, fetched_at FROM listings WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY fetched_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*homes.SavedListing
	for rows.Next() {
		saved, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, saved)
	}

	return listings, rows.Err()
}

// DeleteListing permanently removes a saved listing.
func (s *ListingService) DeleteListing(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM listings WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return homes.Errorf(homes.ENOTFOUND, "listing not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanListing(row scanner) (*homes.SavedListing, error) {
	var (
		saved     homes.SavedListing
		url       string
		fields    string
		fetchedAt string
	)
	if err := row.Scan(&saved.ID, &url, &fields, &saved.ContentHash, &fetchedAt); err != nil {
		return nil, err
	}

	listing, err := decodeFields(url, fields)
	if err != nil {
		return nil, err
	}
	saved.Listing = listing

	saved.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &saved, nil
}
