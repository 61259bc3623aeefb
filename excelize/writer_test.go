package excelize_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/homes"
	homesexcelize "github.com/fwojciec/homes/excelize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func strPtr(s string) *string { return &s }

func readRows(t *testing.T, data []byte) [][]string {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	rows, err := f.GetRows(homesexcelize.SheetName)
	require.NoError(t, err)
	return rows
}

func TestWriter_WriteListings(t *testing.T) {
	t.Parallel()

	t.Run("writes header and rows", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := homesexcelize.NewWriter(&buf).WriteListings(context.Background(), []homes.FlatListing{
			{
				URL:        "https://www.calgaryhomes.ca/listing/1",
				Address:    strPtr("123 Evergreen Street SW"),
				Price:      strPtr("$450,000"),
				NumGarages: strPtr("2"),
			},
		})
		require.NoError(t, err)

		rows := readRows(t, buf.Bytes())
		require.Len(t, rows, 2)
		assert.Equal(t, homes.FlatFields, rows[0])
		assert.Equal(t, "https://www.calgaryhomes.ca/listing/1", rows[1][0])
		assert.Equal(t, "123 Evergreen Street SW", rows[1][1])
		assert.Equal(t, "", rows[1][2])
		assert.Equal(t, "$450,000", rows[1][4])
		assert.Equal(t, "2", rows[1][17])
	})

	t.Run("leaves missing trailing fields blank", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := homesexcelize.NewWriter(&buf).WriteListings(context.Background(), []homes.FlatListing{
			{URL: "u"},
		})
		require.NoError(t, err)

		rows := readRows(t, buf.Bytes())
		require.Len(t, rows, 2)
		assert.Equal(t, []string{"u"}, rows[1])
	})

	t.Run("writes header only for no listings", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, homesexcelize.NewWriter(&buf).WriteListings(context.Background(), nil))

		rows := readRows(t, buf.Bytes())
		require.Len(t, rows, 1)
		assert.Equal(t, homes.FlatFields, rows[0])
	})

	t.Run("stops on canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var buf bytes.Buffer
		err := homesexcelize.NewWriter(&buf).WriteListings(ctx, []homes.FlatListing{{URL: "u"}})
		require.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, buf.Len())
	})
}
