package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/fwojciec/homes"
	"github.com/fwojciec/homes/excelize"
	"github.com/fwojciec/homes/fs"
)

// validateFormat returns an EINVALID error unless format is known.
func validateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return homes.Errorf(homes.EINVALID, "unknown output format %q (want one of csv, xlsx, json, cli)", format)
	}
	return nil
}

func encoderFor(format string) fs.EncoderFunc {
	switch format {
	case "csv":
		return func(w io.Writer) homes.ListingWriter { return fs.NewCSVWriter(w) }
	case "json":
		return func(w io.Writer) homes.ListingWriter { return fs.NewJSONWriter(w) }
	case "xlsx":
		return func(w io.Writer) homes.ListingWriter { return excelize.NewWriter(w) }
	}
	return nil
}

// writeOutput writes listings in format, either to the console or to a
// dated file in dir.
func writeOutput(deps *Dependencies, format, dir string, listings []homes.FlatListing) error {
	fmt.Fprintf(deps.Stdout, "\nOutputting House list to %s...\n", format)

	if format == "cli" {
		fmt.Fprint(deps.Stdout, homes.FormatListings(listings))
		return nil
	}

	w := fs.NewFileWriter(fs.OutputPath(dir, format, deps.now()), encoderFor(format))
	if err := w.WriteListings(deps.Ctx, listings); err != nil {
		return fmt.Errorf("failed to write %s: %w", w.Path(), err)
	}
	fmt.Fprintf(deps.Stdout, "Output file: %s\n", w.Path())
	return nil
}
