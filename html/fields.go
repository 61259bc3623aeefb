package html

import "github.com/fwojciec/homes"

// fieldExtractor assigns dataset text to listing fields by label/value
// adjacency: a label's field takes the text of every event that follows
// it in the same group, until another label of the group appears.
type fieldExtractor struct {
	listing *homes.Listing
	pending string
}

// text handles one trimmed, non-empty text event of the given section.
//
// The label check runs before the value write, so a label event first
// stamps its own text into its own field. When two labels arrive in a row
// the second one takes over as pending before anything is written, so the
// first label's field keeps its own label text. Output compatibility
// depends on this order.
func (f *fieldExtractor) text(section homes.Section, text string) {
	g := f.listing.Group(section)
	if g == nil {
		return
	}
	if g.HasLabel(text) {
		f.pending = text
	}
	if g.HasLabel(f.pending) {
		g.Set(f.pending, text)
	}
}
