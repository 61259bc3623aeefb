package html

import (
	"github.com/fwojciec/homes"
	"golang.org/x/net/html"
)

// Markers of the container that holds the listing dataset.
const (
	ContainerTag  = "div"
	ListingBodyID = "listing-body"
	DatasetClass  = "dataset"
	HeadingTag    = "h4"
)

type scope int

const (
	scopeNone scope = iota
	scopeListing
)

// tracker follows the scope and section of the markup as it streams past.
//
// Tracking is flat: a container's id and class overwrite the previously
// seen ones instead of being pushed on a stack, and end tags change
// nothing. This relies on the listing page having a single listing-body
// dataset with no nested containers carrying an id or class until the
// dataset ends.
type tracker struct {
	tag     string // most recent start tag
	id      string // most recent container id
	class   string // most recent container class
	section homes.Section
}

func (t *tracker) startTag(name string, attrs []html.Attribute) {
	if name == ContainerTag {
		for _, a := range attrs {
			switch a.Key {
			case "id":
				t.id = a.Val
			case "class":
				t.class = a.Val
			}
		}
	}
	t.tag = name
}

func (t *tracker) scope() scope {
	if t.id == ListingBodyID && t.class == DatasetClass {
		return scopeListing
	}
	return scopeNone
}

// text reports whether trimmed text lies in the listing dataset. Heading
// text there switches the section when it names one; any other heading
// leaves the section as it was.
func (t *tracker) text(text string) bool {
	if t.scope() != scopeListing {
		return false
	}
	if t.tag == HeadingTag {
		if s := homes.SectionFromTitle(text); s != homes.SectionNone {
			t.section = s
		}
	}
	return true
}
