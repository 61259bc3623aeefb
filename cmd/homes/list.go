package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/homes"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := homes.ListingFilter{Limit: c.Limit, Offset: c.Offset}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	saved, err := deps.Listings.FindListings(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", homes.ErrorMessage(err))
		return err
	}

	if len(saved) == 0 {
		fmt.Fprintln(deps.Stdout, "No listings found. Use 'homes parse --save' to store some.")
		return nil
	}

	for _, s := range saved {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  (%d fields)\n",
			s.ID, s.FetchedAt.Local().Format(time.DateTime), s.Listing.URL, s.Listing.FieldCount())
		if c.Full {
			fmt.Fprint(deps.Stdout, homes.FormatListings([]homes.FlatListing{homes.Project(s.Listing)}))
			fmt.Fprintln(deps.Stdout)
		}
	}

	return nil
}
