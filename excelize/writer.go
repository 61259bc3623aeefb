// Package excelize writes flattened listings as XLSX workbooks.
package excelize

import (
	"context"
	"io"

	"github.com/fwojciec/homes"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet listings are written to.
const SheetName = "Sheet1"

// Ensure Writer implements homes.ListingWriter at compile time.
var _ homes.ListingWriter = (*Writer)(nil)

// Writer writes listings as a single-sheet workbook with a header row.
// Fields that were not found are left as blank cells.
type Writer struct {
	w io.Writer
}

// NewWriter creates a new Writer writing the workbook to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteListings builds the workbook and writes it out.
func (x *Writer) WriteListings(ctx context.Context, listings []homes.FlatListing) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range homes.FlatFields {
		if err := setCell(f, i+1, 1, name); err != nil {
			return err
		}
	}

	for r, l := range listings {
		if err := ctx.Err(); err != nil {
			return err
		}
		for c, v := range l.Values() {
			if v == nil {
				continue
			}
			if err := setCell(f, c+1, r+2, *v); err != nil {
				return err
			}
		}
	}

	return f.Write(x.w)
}

func setCell(f *excelize.File, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellStr(SheetName, cell, value)
}
