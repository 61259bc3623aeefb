package postgres

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/homes"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ homes.ListingService = (*ListingService)(nil)

// ListingService implements homes.ListingService using PostgreSQL.
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

	fields, err := json.Marshal(saved.Listing)
	if err != nil {
		return fmt.Errorf("encode listing fields: %w", err)
	}

	var sum [8]byte
	binary.BigEndian.PutUint64(sum[:], xxhash.Sum64String(markup))

	saved.ID = uuid.New().String()
	saved.FetchedAt = time.Now().UTC().Truncate(time.Microsecond)
	saved.ContentHash = hex.EncodeToString(sum[:])

	_, err = s.db.db.ExecContext(ctx, `
		INSERT INTO listings (id, url, fields, content_hash, fetched_at)
		VALUES ($1, $2, $3, $4, $5)
	`, saved.ID, saved.Listing.URL, string(fields), saved.ContentHash, saved.FetchedAt)
	if err != nil {
		return fmt.Errorf("insert listing: %w", err)
	}
	return nil
}

// FindListingByID retrieves a saved listing by ID.
func (s *ListingService) FindListingByID(ctx context.Context, id string) (*homes.SavedListing, error) {
	row := s.db.db.QueryRowContext(ctx, `
		SELECT id, url, fields, content_hash, fetched_at
		FROM listings
		WHERE id = $1
	`, id)

	saved, err := scanListing(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, homes.Errorf(homes.ENOTFOUND, "listing not found")
	}
	return saved, err
}

// FindListings retrieves saved listings matching the filter.
func (s *ListingService) FindListings(ctx context.Context, filter homes.ListingFilter) ([]*homes.SavedListing, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, fields, content_hash, fetched_at FROM listings WHERE 1=1")

	if filter.ID != nil {
		args = append(args, *filter.ID)
		fmt.Fprintf(&query, " AND id = $%d", len(args))
	}
	if filter.URL != nil {
		args = append(args, *filter.URL)
		fmt.Fprintf(&query, " AND url = $%d", len(args))
	}

	query.WriteString(" ORDER BY fetched_at DESC, seq DESC")

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&query, " LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		fmt.Fprintf(&query, " OFFSET $%d", len(args))
	}

	rows, err := s.db.db.QueryContext(ctx, query.String(), args...)
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
	result, err := s.db.db.ExecContext(ctx, "DELETE FROM listings WHERE id = $1", id)
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
		saved  homes.SavedListing
		url    string
		fields []byte
	)
	if err := row.Scan(&saved.ID, &url, &fields, &saved.ContentHash, &saved.FetchedAt); err != nil {
		return nil, err
	}

	listing := homes.NewListing(url)
	if err := json.Unmarshal(fields, listing); err != nil {
		return nil, fmt.Errorf("decode listing fields: %w", err)
	}
	listing.URL = url
	saved.Listing = listing
	saved.FetchedAt = saved.FetchedAt.UTC()

	return &saved, nil
}
