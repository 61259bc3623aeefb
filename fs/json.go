package fs

import (
	"context"
	"encoding/json"
	"io"

	"github.com/fwojciec/homes"
)

// Ensure JSONWriter implements homes.ListingWriter at compile time.
var _ homes.ListingWriter = (*JSONWriter)(nil)

// JSONWriter writes listings as an indented JSON array of objects.
// Fields that were not found are written as null.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSONWriter writing to w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteListings writes all listings as one JSON array.
func (j *JSONWriter) WriteListings(ctx context.Context, listings []homes.FlatListing) error {
	if listings == nil {
		listings = []homes.FlatListing{}
	}

	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "    ")
	return enc.Encode(listings)
}
