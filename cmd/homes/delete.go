package main

import (
	"fmt"

	"github.com/fwojciec/homes"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return homes.Errorf(homes.EINVALID, "use --force to confirm deletion")
	}

	saved, err := deps.Listings.FindListingByID(deps.Ctx, c.ID)
	if homes.ErrorCode(err) == homes.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: listing %q not found. Use 'homes list' to see saved listings.\n", c.ID)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", homes.ErrorMessage(err))
		return err
	}

	if err := deps.Listings.DeleteListing(deps.Ctx, saved.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", homes.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted listing %s (%s)\n", saved.ID, saved.Listing.URL)
	return nil
}
