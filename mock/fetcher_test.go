package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/homes/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	var calledWith string
	f := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			calledWith = url
			return "<html></html>", nil
		},
	}

	markup, err := f.Fetch(context.Background(), "https://www.calgaryhomes.ca/listing/1")

	require.NoError(t, err)
	assert.Equal(t, "<html></html>", markup)
	assert.Equal(t, "https://www.calgaryhomes.ca/listing/1", calledWith)
}

func TestFetcher_Close(t *testing.T) {
	t.Parallel()

	t.Run("nil CloseFn is a no-op", func(t *testing.T) {
		t.Parallel()

		f := &mock.Fetcher{}

		assert.NoError(t, f.Close())
	})

	t.Run("delegates to CloseFn", func(t *testing.T) {
		t.Parallel()

		closeErr := errors.New("browser gone")
		f := &mock.Fetcher{
			CloseFn: func() error { return closeErr },
		}

		assert.ErrorIs(t, f.Close(), closeErr)
	})
}
