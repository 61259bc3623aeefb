package main

import (
	"fmt"

	"github.com/fwojciec/homes/crawl"
	"github.com/fwojciec/homes/mux"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	crawler := &crawl.Crawler{
		Fetcher:   deps.Fetcher,
		Extractor: deps.Extractor,
		Probe:     deps.Probe,
		Listings:  deps.Listings,
	}

	server := mux.NewServer(crawler, deps.Listings, deps.logger())

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", c.Addr)
	if err := server.ListenAndServe(deps.Ctx, c.Addr); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}
