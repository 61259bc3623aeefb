// Package fs provides file-based output of flattened listings.
package fs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/homes"
)

// OutputPrefix is the base name of output files.
const OutputPrefix = "house_list_output"

// OutputPath returns the dated output file path for an extension,
// e.g. dir/house_list_output_2026-10-14.csv.
func OutputPath(dir, ext string, date time.Time) string {
	name := fmt.Sprintf("%s_%s.%s", OutputPrefix, date.Format("2006-01-02"), ext)
	return filepath.Join(dir, name)
}

// EncoderFunc returns a ListingWriter that encodes to w.
type EncoderFunc func(w io.Writer) homes.ListingWriter

// Ensure FileWriter implements homes.ListingWriter at compile time.
var _ homes.ListingWriter = (*FileWriter)(nil)

// FileWriter writes listings to a file with atomic replace semantics.
// Output goes to path.tmp first and is renamed to path once the encoder
// succeeds, so a failed write never leaves a truncated file behind.
type FileWriter struct {
	path   string
	encode EncoderFunc
}

// NewFileWriter creates a new FileWriter for path.
func NewFileWriter(path string, encode EncoderFunc) *FileWriter {
	return &FileWriter{path: path, encode: encode}
}

// Path returns the file path the writer produces.
func (w *FileWriter) Path() string {
	return w.path
}

func (w *FileWriter) tempPath() string {
	return w.path + ".tmp"
}

// WriteListings encodes listings into the file.
func (w *FileWriter) WriteListings(ctx context.Context, listings []homes.FlatListing) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return err
	}

	f, err := os.Create(w.tempPath())
	if err != nil {
		return err
	}

	if err := w.encode(f).WriteListings(ctx, listings); err != nil {
		f.Close()
		_ = os.Remove(w.tempPath())
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(w.tempPath())
		return err
	}

	return os.Rename(w.tempPath(), w.path)
}
