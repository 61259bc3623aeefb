package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/homes"
	"github.com/fwojciec/homes/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Now    func() time.Time

	Fetcher   homes.Fetcher
	Extractor homes.ListingExtractor
	Probe     homes.ListingProbe
	Listings  homes.ListingService
	Seen      crawl.URLSet
}

func (d *Dependencies) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

func (d *Dependencies) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log each operation to stderr"`

	Parse   ParseCmd   `cmd:"" help:"Parse listing pages (prompts for URLs when none are given)"`
	Extract ExtractCmd `cmd:"" help:"Extract a listing from a saved HTML file"`
	List    ListCmd    `cmd:"" help:"List saved listings"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved listing"`
	Serve   ServeCmd   `cmd:"" help:"Serve the listings HTTP API"`
}

// FetchFlags configures how listing pages are fetched.
type FetchFlags struct {
	Browser bool          `short:"b" help:"Fetch pages with a headless browser"`
	Timeout time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Rate    float64       `default:"1" help:"Maximum requests per second (0 disables limiting)"`
}

// OutputFlags configures where and how listings are written.
type OutputFlags struct {
	Format    string `short:"f" help:"Output format: csv, xlsx, json or cli"`
	OutputDir string `short:"o" default:"." type:"path" help:"Directory for output files"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	URLs []string `arg:"" optional:"" name:"url" help:"Listing URLs to parse"`
	Save bool     `short:"s" help:"Save parsed listings to the database"`

	FetchFlags  `embed:""`
	OutputFlags `embed:""`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File string `arg:"" type:"existingfile" help:"HTML file of a listing page"`
	URL  string `help:"Listing URL to record with the extracted listing"`

	OutputFlags `embed:""`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL    string `help:"Only list listings parsed from this URL"`
	Limit  int    `short:"n" help:"Maximum number of listings to show"`
	Offset int    `help:"Number of listings to skip"`
	Full   bool   `help:"Show every field of each listing"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Listing ID"`
	Force bool   `help:"Confirm deletion"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" env:"HOMES_ADDR" help:"Address to listen on"`

	FetchFlags `embed:""`
}
