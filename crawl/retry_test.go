package crawl_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/homes"
	"github.com/fwojciec/homes/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	t.Run("retries transient errors until success", func(t *testing.T) {
		t.Parallel()

		var attempts int
		var logged []string
		fetch := func(context.Context, string) (string, error) {
			attempts++
			if attempts < 3 {
				return "", errors.New("HTTP 503")
			}
			return "ok", nil
		}
		logger := func(format string, args ...any) {
			logged = append(logged, fmt.Sprintf(format, args...))
		}

		html, err := crawl.FetchWithRetryDelays(context.Background(), "u", fetch, logger, []time.Duration{0, 0, 0})

		require.NoError(t, err)
		assert.Equal(t, "ok", html)
		assert.Equal(t, 3, attempts)
		assert.Equal(t, []string{
			"retry u (attempt 2): HTTP 503",
			"retry u (attempt 3): HTTP 503",
		}, logged)
	})

	t.Run("returns last error after all attempts", func(t *testing.T) {
		t.Parallel()

		var attempts int
		fetch := func(context.Context, string) (string, error) {
			attempts++
			return "", fmt.Errorf("attempt %d", attempts)
		}

		_, err := crawl.FetchWithRetryDelays(context.Background(), "u", fetch, nil, []time.Duration{0, 0})

		require.EqualError(t, err, "attempt 3")
		assert.Equal(t, 3, attempts)
	})

	t.Run("does not retry not found", func(t *testing.T) {
		t.Parallel()

		var attempts int
		fetch := func(context.Context, string) (string, error) {
			attempts++
			return "", homes.Errorf(homes.ENOTFOUND, "page not found")
		}

		_, err := crawl.FetchWithRetryDelays(context.Background(), "u", fetch, nil, []time.Duration{0, 0})

		assert.Equal(t, homes.ENOTFOUND, homes.ErrorCode(err))
		assert.Equal(t, 1, attempts)
	})

	t.Run("stops waiting when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(context.Context, string) (string, error) {
			cancel()
			return "", errors.New("HTTP 503")
		}

		_, err := crawl.FetchWithRetryDelays(ctx, "u", fetch, nil, []time.Duration{time.Hour})

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestDefaultRetryDelays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, crawl.DefaultRetryDelays())
}
