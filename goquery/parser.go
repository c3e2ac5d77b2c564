// Package goquery provides a goquery-based implementation of
// scrape.Parser for querying HTML documents with CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/scrape"
)

// Ensure implementations satisfy the domain interfaces at compile time.
var (
	_ scrape.Parser   = (*Parser)(nil)
	_ scrape.Document = (*Document)(nil)
	_ scrape.Element  = (*Element)(nil)
)

// Parser builds queryable documents using goquery's HTML parser.
// The parser is permissive: fragments and malformed markup parse into
// a valid document, so Parse never fails in practice.
type Parser struct{}

// NewParser creates a new goquery-based Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse builds a document from markup.
func (p *Parser) Parse(markup string) (scrape.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, scrape.Errorf(scrape.EINTERNAL, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Document wraps a parsed goquery document.
type Document struct {
	doc *goquery.Document
}

// Select returns all elements matching the CSS selector in document order.
func (d *Document) Select(selector string) ([]scrape.Element, error) {
	m, err := compile(selector)
	if err != nil {
		return nil, err
	}
	var els []scrape.Element
	d.doc.FindMatcher(m).Each(func(_ int, sel *goquery.Selection) {
		els = append(els, &Element{sel: sel})
	})
	return els, nil
}

// SelectOne returns the first element matching the CSS selector, or nil
// if nothing matches.
func (d *Document) SelectOne(selector string) (scrape.Element, error) {
	m, err := compile(selector)
	if err != nil {
		return nil, err
	}
	sel := d.doc.FindMatcher(m)
	if sel.Length() == 0 {
		return nil, nil
	}
	return &Element{sel: sel.First()}, nil
}

// FindAll returns all elements with the given tag name that satisfy
// every attribute filter, in document order. A tag name that is not a
// valid element name matches nothing.
func (d *Document) FindAll(tag string, attrs scrape.Attrs) []scrape.Element {
	var els []scrape.Element
	d.doc.Find(strings.ToLower(tag)).Each(func(_ int, sel *goquery.Selection) {
		if matchAttrs(sel, attrs) {
			els = append(els, &Element{sel: sel})
		}
	})
	return els
}

// Find returns the first element FindAll would return, or nil.
func (d *Document) Find(tag string, attrs scrape.Attrs) scrape.Element {
	els := d.FindAll(tag, attrs)
	if len(els) == 0 {
		return nil
	}
	return els[0]
}

// Title returns the trimmed text of the first title element.
func (d *Document) Title() string {
	return collapse(d.doc.Find("title").First().Text())
}

// Element wraps a single matched node.
type Element struct {
	sel *goquery.Selection
}

// Tag returns the lowercase tag name.
func (e *Element) Tag() string {
	return goquery.NodeName(e.sel)
}

// Text returns the element's text with whitespace normalized.
func (e *Element) Text() string {
	return collapse(e.sel.Text())
}

// Attr returns the value of the named attribute and whether it is set.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// Attrs returns all attributes of the element.
func (e *Element) Attrs() map[string]string {
	if len(e.sel.Nodes) == 0 {
		return nil
	}
	node := e.sel.Nodes[0]
	attrs := make(map[string]string, len(node.Attr))
	for _, a := range node.Attr {
		attrs[a.Key] = a.Val
	}
	return attrs
}

// compile validates the selector eagerly. goquery's own Find treats an
// invalid selector as matching nothing, which would hide caller typos
// behind empty results.
func compile(selector string) (goquery.Matcher, error) {
	cs, err := cascadia.Compile(selector)
	if err != nil {
		return nil, scrape.Errorf(scrape.ESELECTOR, "invalid CSS selector %q: %v", selector, err)
	}
	return cs, nil
}

// matchAttrs reports whether the selection's attributes satisfy every
// filter entry. Values compare by exact equality, except class, which
// also matches when all filter tokens appear among the element's class
// tokens.
func matchAttrs(sel *goquery.Selection, attrs scrape.Attrs) bool {
	for name, want := range attrs {
		got, ok := sel.Attr(name)
		if !ok {
			return false
		}
		if got == want {
			continue
		}
		if name == "class" && hasClassTokens(got, want) {
			continue
		}
		return false
	}
	return true
}

func hasClassTokens(got, want string) bool {
	have := make(map[string]bool)
	for _, c := range strings.Fields(got) {
		have[c] = true
	}
	for _, c := range strings.Fields(want) {
		if !have[c] {
			return false
		}
	}
	return len(strings.Fields(want)) > 0
}

// collapse trims s and collapses internal whitespace runs to single
// spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
