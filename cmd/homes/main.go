package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/homes"
	"github.com/fwojciec/homes/bloom"
	"github.com/fwojciec/homes/goquery"
	"github.com/fwojciec/homes/html"
	homeshttp "github.com/fwojciec/homes/http"
	"github.com/fwojciec/homes/postgres"
	"github.com/fwojciec/homes/rod"
	homesslog "github.com/fwojciec/homes/slog"
	"github.com/fwojciec/homes/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := LoadEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// LoadEnv loads environment variables from the given files. Missing files
// are ignored and variables already set in the environment win.
func LoadEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// Main represents the program.
type Main struct {
	// SQLite database path. Set before calling Run().
	DBPath string

	// PostgreSQL connection string. When set it takes precedence over DBPath.
	DatabaseURL string

	// Now returns the current time; used to date output files.
	Now func() time.Time

	// Services for end-to-end testing. When set, Run uses them instead
	// of building its own.
	Fetcher  homes.Fetcher
	Listings homes.ListingService

	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:      defaultDBPath(),
		DatabaseURL: os.Getenv("HOMES_DATABASE_URL"),
		Now:         time.Now,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var errs []error
	for i := len(m.closers) - 1; i >= 0; i-- {
		errs = append(errs, m.closers[i].Close())
	}
	m.closers = nil
	return errors.Join(errs...)
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Now:    m.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("homes"),
		kong.Description("Parse CalgaryHomes listing pages into structured records"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'homes --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.Logger = slog.New(slog.DiscardHandler)
	if cli.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	deps.Extractor = homesslog.NewLoggingExtractor(html.NewExtractor(), deps.Logger)
	deps.Probe = goquery.NewProbe()

	defer m.Close()

	var fetch *FetchFlags
	var needStorage bool
	switch cmd {
	case "parse":
		fetch = &cli.Parse.FetchFlags
		needStorage = cli.Parse.Save
		deps.Seen = bloom.NewFilter(bloom.DefaultExpectedURLs, bloom.DefaultFalsePositiveRate)
	case "serve":
		fetch = &cli.Serve.FetchFlags
		needStorage = true
	case "list", "delete":
		needStorage = true
	}

	if fetch != nil {
		fetcher, err := m.openFetcher(*fetch)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		deps.Fetcher = homesslog.NewLoggingFetcher(fetcher, deps.Logger)
	}

	if needStorage {
		listings, err := m.openListings(ctx)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Set HOMES_DB to use a different database path, or HOMES_DATABASE_URL for PostgreSQL")
			return err
		}
		deps.Listings = homesslog.NewLoggingListingService(listings, deps.Logger)
	}

	return kongCtx.Run(deps)
}

func (m *Main) openFetcher(flags FetchFlags) (homes.Fetcher, error) {
	if m.Fetcher != nil {
		return m.Fetcher, nil
	}

	if flags.Browser {
		fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(flags.Timeout))
		if err != nil {
			return nil, err
		}
		m.closers = append(m.closers, fetcher)
		return fetcher, nil
	}

	fetcher := homeshttp.NewFetcher(
		homeshttp.WithTimeout(flags.Timeout),
		homeshttp.WithRateLimit(flags.Rate),
	)
	m.closers = append(m.closers, fetcher)
	return fetcher, nil
}

func (m *Main) openListings(ctx context.Context) (homes.ListingService, error) {
	if m.Listings != nil {
		return m.Listings, nil
	}

	if m.DatabaseURL != "" {
		db := postgres.NewDB(m.DatabaseURL)
		if err := db.Open(ctx); err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w", err)
		}
		m.closers = append(m.closers, db)
		return postgres.NewListingService(db), nil
	}

	if dir := filepath.Dir(m.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db := sqlite.NewDB(m.DBPath)
	if err := db.Open(); err != nil {
		return nil, fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	m.closers = append(m.closers, db)
	return sqlite.NewListingService(db), nil
}

func defaultDBPath() string {
	if path := os.Getenv("HOMES_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "homes.db"
	}
	return filepath.Join(home, ".homes", "homes.db")
}
