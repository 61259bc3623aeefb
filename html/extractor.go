// Package html implements homes.ListingExtractor on top of the
// golang.org/x/net/html tokenizer. Pages are processed in a single
// streaming pass without building a tree.
package html

import (
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/homes"
	"golang.org/x/net/html"
)

// Ensure Extractor implements homes.ListingExtractor at compile time.
var _ homes.ListingExtractor = (*Extractor)(nil)

// Extractor extracts listings from listing page markup.
// It holds no per-page state and is safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract streams through markup and returns the listing found in it.
func (e *Extractor) Extract(url, markup string) (*homes.Listing, error) {
	return e.ExtractReader(url, strings.NewReader(markup))
}

// ExtractReader is like Extract but reads the markup from r.
// A read error other than io.EOF is returned together with the
// listing extracted up to that point.
func (e *Extractor) ExtractReader(url string, r io.Reader) (*homes.Listing, error) {
	p := newParser(url)
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return p.fields.listing, err
			}
			return p.fields.listing, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			tag := string(name)
			var attrs []html.Attribute
			if hasAttr && tag == ContainerTag {
				attrs = readAttrs(z)
			}
			p.startTag(tag, attrs)
		case html.TextToken:
			p.text(string(z.Text()))
		}
	}
}

func readAttrs(z *html.Tokenizer) []html.Attribute {
	var attrs []html.Attribute
	for {
		key, val, more := z.TagAttr()
		attrs = append(attrs, html.Attribute{Key: string(key), Val: string(val)})
		if !more {
			return attrs
		}
	}
}

// parser holds the extraction state of one page.
type parser struct {
	tracker tracker
	fields  fieldExtractor
}

func newParser(url string) *parser {
	return &parser{fields: fieldExtractor{listing: homes.NewListing(url)}}
}

func (p *parser) startTag(name string, attrs []html.Attribute) {
	p.tracker.startTag(name, attrs)
}

func (p *parser) text(raw string) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return
	}
	if !p.tracker.text(text) {
		return
	}
	p.fields.text(p.tracker.section, text)
}
