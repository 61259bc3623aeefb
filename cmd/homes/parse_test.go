package main_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/homes"
	"github.com/fwojciec/homes/bloom"
	main "github.com/fwojciec/homes/cmd/homes"
	"github.com/fwojciec/homes/goquery"
	"github.com/fwojciec/homes/html"
	"github.com/fwojciec/homes/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDeps(stdin string, fetcher homes.Fetcher) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:       testContext(),
		Stdin:     strings.NewReader(stdin),
		Stdout:    stdout,
		Stderr:    stderr,
		Fetcher:   fetcher,
		Extractor: html.NewExtractor(),
		Probe:     goquery.NewProbe(),
		Seen:      bloom.NewFilter(100, 0.01),
	}, stdout, stderr
}

func TestParseCmd_Run_Interactive(t *testing.T) {
	t.Parallel()

	t.Run("re-prompts on invalid input and prints chosen format", func(t *testing.T) {
		t.Parallel()

		stdin := strings.Join([]string{
			"not a url",
			"https://example.com/listing",
			testURL,
			"maybe",
			"Y",
			testURL,
			"y",
			otherURL,
			"n",
			"0",
			"five",
			"4",
		}, "\n") + "\n"
		deps, stdout, stderr := parseDeps(stdin, pageFetcher())

		err := (&main.ParseCmd{}).Run(deps)
		require.NoError(t, err)

		out := stdout.String()
		assert.True(t, strings.HasPrefix(out, "----------------------------------------\nHTML House Parser - Start\n"))
		assert.Equal(t, 2, strings.Count(out, "Invalid input, please enter a valid CalgaryHomes URL!"))
		assert.Equal(t, 1, strings.Count(out, "Invalid input, please enter y or n"))
		assert.Equal(t, 2, strings.Count(out, "Invalid input, please enter a number from 1-4"))
		assert.Equal(t, 2, strings.Count(out, "House info parsed!"))
		assert.Contains(t, out, "[4] cli (command line)")
		assert.Contains(t, out, "Outputting House list to cli...")
		assert.Contains(t, out, "url: "+testURL+"\n")
		assert.Contains(t, out, "url: "+otherURL+"\n")
		assert.Contains(t, stderr.String(), "already parsed, skipping")
	})

	t.Run("skips format menu when format flag is set", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		deps, stdout, _ := parseDeps(testURL+"\nn\n", pageFetcher())
		deps.Now = func() time.Time { return testNow }

		cmd := &main.ParseCmd{OutputFlags: main.OutputFlags{Format: "csv", OutputDir: dir}}
		require.NoError(t, cmd.Run(deps))

		assert.NotContains(t, stdout.String(), "Output format options")
		data, err := os.ReadFile(filepath.Join(dir, "house_list_output_2026-10-14.csv"))
		require.NoError(t, err)
		assert.Contains(t, string(data), testURL+",123 Evergreen Street SW,,T2Y 0A1,\"$450,000\",3,")
	})

	t.Run("reports fetch error and continues", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := parseDeps("https://www.calgaryhomes.ca/listing/missing\ny\n"+testURL+"\nn\n4\n", pageFetcher())

		require.NoError(t, (&main.ParseCmd{}).Run(deps))

		assert.Contains(t, stderr.String(), "page not found")
		assert.Equal(t, 1, strings.Count(stdout.String(), "House info parsed!"))
		assert.Contains(t, stdout.String(), "price: $450,000")
	})

	t.Run("ends session when input closes", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := parseDeps("", pageFetcher())

		require.NoError(t, (&main.ParseCmd{}).Run(deps))

		assert.Contains(t, stdout.String(), "No listings parsed.")
	})

	t.Run("fails when input closes at format menu", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := parseDeps(testURL+"\nn\n", pageFetcher())

		err := (&main.ParseCmd{}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, homes.EINVALID, homes.ErrorCode(err))
	})

	t.Run("warns about page without listing block", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "<html><body><h1>Search results</h1></body></html>", nil
			},
		}
		deps, _, stderr := parseDeps(testURL+"\nn\n4\n", fetcher)

		require.NoError(t, (&main.ParseCmd{}).Run(deps))

		assert.Contains(t, stderr.String(), "has no listing block")
	})

	t.Run("saves listings when requested", func(t *testing.T) {
		t.Parallel()

		var saved []*homes.SavedListing
		deps, _, _ := parseDeps(testURL+"\nn\n4\n", pageFetcher())
		deps.Listings = &mock.ListingService{
			CreateListingFn: func(_ context.Context, s *homes.SavedListing, _ string) error {
				saved = append(saved, s)
				return nil
			},
		}

		require.NoError(t, (&main.ParseCmd{Save: true}).Run(deps))

		require.Len(t, saved, 1)
		assert.Equal(t, testURL, saved[0].Listing.URL)
	})

	t.Run("stops on canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				cancel()
				return "", context.Canceled
			},
		}
		deps, _, _ := parseDeps(testURL+"\ny\n", fetcher)
		deps.Ctx = ctx

		err := (&main.ParseCmd{}).Run(deps)

		require.True(t, errors.Is(err, context.Canceled))
	})
}
