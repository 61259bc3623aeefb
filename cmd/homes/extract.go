package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/homes"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	format := c.Format
	if format == "" {
		format = "cli"
	}
	if err := validateFormat(format); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", homes.ErrorMessage(err))
		return err
	}

	markup, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	url := c.URL
	if url == "" {
		url = c.File
	}

	listing, err := deps.Extractor.Extract(url, string(markup))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	if deps.Probe != nil {
		switch {
		case !deps.Probe.HasListingBlock(string(markup)):
			fmt.Fprintf(deps.Stderr, "warning: %s has no listing block; is it a listing page?\n", c.File)
		case listing.FieldCount() == 0:
			headings := deps.Probe.Headings(string(markup))
			fmt.Fprintf(deps.Stderr, "warning: no fields found; headings in listing block: %s\n", strings.Join(headings, ", "))
		}
	}

	return writeOutput(deps, format, c.OutputDir, []homes.FlatListing{homes.Project(listing)})
}
