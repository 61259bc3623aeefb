package goquery_test

import (
	"testing"

	"github.com/fwojciec/homes"
	"github.com/fwojciec/homes/goquery"
	"github.com/stretchr/testify/assert"
)

// Ensure Probe implements homes.ListingProbe at compile time.
var _ homes.ListingProbe = (*goquery.Probe)(nil)

func TestProbe_HasListingBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want bool
	}{
		{
			name: "listing-body dataset",
			html: `<html><body><div id="listing-body" class="dataset"><h4>Amenities</h4></div></body></html>`,
			want: true,
		},
		{
			name: "nested inside other containers",
			html: `<div id="page"><div class="wrap"><div id="listing-body" class="dataset"></div></div></div>`,
			want: true,
		},
		{
			name: "id without dataset class",
			html: `<div id="listing-body"></div>`,
			want: false,
		},
		{
			name: "extra class",
			html: `<div id="listing-body" class="dataset wide"></div>`,
			want: false,
		},
		{
			name: "not a div",
			html: `<section id="listing-body" class="dataset"></section>`,
			want: false,
		},
		{
			name: "empty page",
			html: ``,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := goquery.NewProbe()

			assert.Equal(t, tt.want, p.HasListingBlock(tt.html))
		})
	}
}

func TestProbe_Headings(t *testing.T) {
	t.Parallel()

	t.Run("returns headings inside the dataset", func(t *testing.T) {
		t.Parallel()

		html := `<h4>Outside</h4>
<div id="listing-body" class="dataset">
	<h4> Essential Information </h4>
	<ul><li><strong>Price</strong><span>$1</span></li></ul>
	<h4>Schools</h4>
	<h4>   </h4>
</div>`

		p := goquery.NewProbe()

		assert.Equal(t, []string{"Essential Information", "Schools"}, p.Headings(html))
	})

	t.Run("returns nil without dataset", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewProbe()

		assert.Nil(t, p.Headings(`<h4>Amenities</h4>`))
	})
}
