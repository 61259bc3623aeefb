package main

import (
	"errors"
	"fmt"

	"github.com/fwojciec/homes"
	"github.com/fwojciec/homes/crawl"
)

const separator = "----------------------------------------"

// maxProgressURLLen bounds URLs in progress lines.
const maxProgressURLLen = 70

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	if c.Format != "" {
		if err := validateFormat(c.Format); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", homes.ErrorMessage(err))
			return err
		}
	}

	crawler := &crawl.Crawler{
		Fetcher:   deps.Fetcher,
		Extractor: deps.Extractor,
		Probe:     deps.Probe,
		Seen:      deps.Seen,
		RetryLog: func(format string, args ...any) {
			deps.logger().Info(fmt.Sprintf(format, args...))
		},
	}
	if c.Save {
		crawler.Listings = deps.Listings
	}

	var (
		listings []*homes.Listing
		err      error
	)
	format := c.Format
	if len(c.URLs) == 0 {
		p := newPrompter(deps.Stdin, deps.Stdout)
		listings, err = c.interactive(deps, crawler, p)
		if err != nil {
			return err
		}
		if len(listings) > 0 && format == "" {
			if format, err = p.format(); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", homes.ErrorMessage(err))
				return err
			}
		}
	} else {
		listings, err = c.batch(deps, crawler)
		if err != nil {
			return err
		}
	}

	if len(listings) == 0 {
		fmt.Fprintln(deps.Stdout, "No listings parsed.")
		return nil
	}

	if format == "" {
		format = "cli"
	}
	if err := writeOutput(deps, format, c.OutputDir, homes.ProjectAll(listings)); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}

// interactive prompts for URLs until the user declines to continue.
// Closing stdin ends the session with the listings parsed so far.
func (c *ParseCmd) interactive(deps *Dependencies, crawler *crawl.Crawler, p *prompter) ([]*homes.Listing, error) {
	fmt.Fprintf(deps.Stdout, "%s\nHTML House Parser - Start\n%s\n", separator, separator)

	var listings []*homes.Listing
	for {
		url, err := p.listingURL()
		if errors.Is(err, errInputClosed) {
			fmt.Fprintln(deps.Stdout)
			return listings, nil
		} else if err != nil {
			return nil, err
		}

		fmt.Fprintln(deps.Stdout, "\nParsing house info...")
		result, err := crawler.ParseURL(deps.Ctx, url)
		switch {
		case err != nil:
			if deps.Ctx.Err() != nil {
				return nil, deps.Ctx.Err()
			}
			fmt.Fprintf(deps.Stderr, "error: %s: %v\n", url, err)
		case result.Skipped:
			fmt.Fprintf(deps.Stderr, "warning: %s was already parsed, skipping\n", url)
		default:
			warnNoListingBlock(deps, result)
			fmt.Fprintln(deps.Stdout, "House info parsed!")
			listings = append(listings, result.Listing)
		}

		more, err := p.confirm()
		if errors.Is(err, errInputClosed) {
			fmt.Fprintln(deps.Stdout)
			return listings, nil
		} else if err != nil {
			return nil, err
		}
		if !more {
			return listings, nil
		}
	}
}

// batch parses the URLs given on the command line.
func (c *ParseCmd) batch(deps *Dependencies, crawler *crawl.Crawler) ([]*homes.Listing, error) {
	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted, crawl.ProgressFinished:
			return
		case crawl.ProgressCompleted:
			warnNoListingBlock(deps, event.Result)
		}
		fmt.Fprintln(deps.Stderr, crawl.FormatProgress(event, maxProgressURLLen))
	}

	summary, err := crawler.ParseURLs(deps.Ctx, c.URLs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return nil, err
	}

	if summary.Failed > 0 {
		fmt.Fprintf(deps.Stderr, "Parsed %d of %d URLs (%d failed)\n", len(summary.Results), len(c.URLs), summary.Failed)
	}
	if len(summary.Results) == 0 && summary.Failed > 0 {
		return nil, homes.Errorf(homes.EINVALID, "no listings could be parsed")
	}
	return summary.Listings(), nil
}

func warnNoListingBlock(deps *Dependencies, result *crawl.Result) {
	if result.NoListingBlock {
		fmt.Fprintf(deps.Stderr, "warning: %s has no listing block; is it a listing page?\n", result.URL)
	}
}
