package fs

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/fwojciec/homes"
)

// Ensure CSVWriter implements homes.ListingWriter at compile time.
var _ homes.ListingWriter = (*CSVWriter)(nil)

// CSVWriter writes listings as CSV with a header row of field names.
// Fields that were not found are written as empty cells.
type CSVWriter struct {
	w io.Writer
}

// NewCSVWriter creates a new CSVWriter writing to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: w}
}

// WriteListings writes the header and one row per listing.
func (c *CSVWriter) WriteListings(ctx context.Context, listings []homes.FlatListing) error {
	cw := csv.NewWriter(c.w)
	if err := cw.Write(homes.FlatFields); err != nil {
		return err
	}

	row := make([]string, len(homes.FlatFields))
	for _, l := range listings {
		if err := ctx.Err(); err != nil {
			return err
		}
		for i, v := range l.Values() {
			row[i] = ""
			if v != nil {
				row[i] = *v
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
