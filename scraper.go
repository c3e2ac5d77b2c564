package scrape

import (
	"context"
	"fmt"
	"strings"
)

// Scraper holds at most one loaded webpage and answers queries against
// it. Loading replaces the raw markup and the parsed document together;
// there is no partial state, and a failed load leaves the previous page
// in place. A Scraper is not safe for concurrent use: callers that need
// parallelism should use one Scraper per goroutine.
type Scraper struct {
	fetcher Fetcher
	parser  Parser

	html string
	doc  Document
}

// NewScraper returns a Scraper with no page loaded.
func NewScraper(fetcher Fetcher, parser Parser) *Scraper {
	return &Scraper{
		fetcher: fetcher,
		parser:  parser,
	}
}

// NewScraperFromURL returns a Scraper with the page at url already
// loaded, using default headers. Load errors propagate unchanged.
func NewScraperFromURL(ctx context.Context, fetcher Fetcher, parser Parser, url string) (*Scraper, error) {
	s := NewScraper(fetcher, parser)
	if err := s.LoadURL(ctx, url, nil); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadURL fetches the page at url with a single GET request and loads
// its body. A nil headers map sends the default user agent; any non-nil
// map, including an empty one, is sent as given. Returns EFETCH if the
// request cannot complete and ESTATUS on a non-2xx response; on error
// the previously loaded page, if any, remains queryable.
func (s *Scraper) LoadURL(ctx context.Context, url string, headers map[string]string) error {
	if headers == nil {
		headers = map[string]string{"user-agent": DefaultUserAgent}
	}
	html, err := s.fetcher.Fetch(ctx, url, headers)
	if err != nil {
		return err
	}
	doc, err := s.parser.Parse(html)
	if err != nil {
		return err
	}
	s.html = html
	s.doc = doc
	return nil
}

// LoadHTML loads markup directly. It accepts arbitrary text, including
// fragments and malformed markup, and cannot fail; it returns the
// receiver so a load can chain into a query.
func (s *Scraper) LoadHTML(markup string) *Scraper {
	doc, err := s.parser.Parse(markup)
	if err != nil {
		// The Parser contract rules this out for any input. Keep the
		// previous page rather than enter a partial state.
		return s
	}
	s.html = markup
	s.doc = doc
	return s
}

// document returns the loaded document. All queries check their
// precondition through this single gate.
func (s *Scraper) document() (Document, error) {
	if s.doc == nil {
		return nil, Errorf(ENOTLOADED, "no HTML content loaded, use LoadURL or LoadHTML first")
	}
	return s.doc, nil
}

// Select returns all elements matching the CSS selector in document
// order. The result is empty when nothing matches. Returns ENOTLOADED
// before the first load and ESELECTOR for a malformed selector.
func (s *Scraper) Select(selector string) ([]Element, error) {
	doc, err := s.document()
	if err != nil {
		return nil, err
	}
	return doc.Select(selector)
}

// SelectOne returns the first element matching the CSS selector, or nil
// when nothing matches. Returns ENOTLOADED before the first load and
// ESELECTOR for a malformed selector.
func (s *Scraper) SelectOne(selector string) (Element, error) {
	doc, err := s.document()
	if err != nil {
		return nil, err
	}
	return doc.SelectOne(selector)
}

// FindAll returns all elements with the given tag name whose attributes
// satisfy every filter entry, in document order. A nil or empty filter
// matches every element with the tag. Returns ENOTLOADED before the
// first load.
func (s *Scraper) FindAll(tag string, attrs Attrs) ([]Element, error) {
	doc, err := s.document()
	if err != nil {
		return nil, err
	}
	return doc.FindAll(tag, attrs), nil
}

// Find returns the first element FindAll would return, or nil when
// nothing matches. Returns ENOTLOADED before the first load.
func (s *Scraper) Find(tag string, attrs Attrs) (Element, error) {
	doc, err := s.document()
	if err != nil {
		return nil, err
	}
	return doc.Find(tag, attrs), nil
}

// Text returns the text of every element matching the CSS selector,
// joined by single spaces. Each element's text is trimmed with internal
// whitespace collapsed. Returns "" when nothing matches.
func (s *Scraper) Text(selector string) (string, error) {
	els, err := s.Select(selector)
	if err != nil {
		return "", err
	}
	texts := make([]string, 0, len(els))
	for _, el := range els {
		texts = append(texts, el.Text())
	}
	return strings.Join(texts, " "), nil
}

// Attr returns the named attribute of the first element matching the
// CSS selector. ok is false when nothing matches or the attribute is
// not set on the matched element.
func (s *Scraper) Attr(selector, name string) (value string, ok bool, err error) {
	el, err := s.SelectOne(selector)
	if err != nil {
		return "", false, err
	}
	if el == nil {
		return "", false, nil
	}
	value, ok = el.Attr(name)
	return value, ok, nil
}

// AttrAll returns the named attribute of every element matching the CSS
// selector, in document order. Elements without the attribute are
// skipped.
func (s *Scraper) AttrAll(selector, name string) ([]string, error) {
	els, err := s.Select(selector)
	if err != nil {
		return nil, err
	}
	var values []string
	for _, el := range els {
		if v, ok := el.Attr(name); ok {
			values = append(values, v)
		}
	}
	return values, nil
}

// Title returns the trimmed text of the page's title element. Unlike
// the query methods, Title tolerates the unloaded state: it returns ""
// both when no page is loaded and when the page has no title.
func (s *Scraper) Title() string {
	if s.doc == nil {
		return ""
	}
	return s.doc.Title()
}

// HTML returns the raw markup of the most recent load, or "" when no
// page is loaded.
func (s *Scraper) HTML() string {
	return s.html
}

// Document returns the loaded document for engine-level access, or nil
// when no page is loaded.
func (s *Scraper) Document() Document {
	return s.doc
}

// Loaded reports whether a page is loaded.
func (s *Scraper) Loaded() bool {
	return s.doc != nil
}

// String implements fmt.Stringer.
func (s *Scraper) String() string {
	return fmt.Sprintf("Scraper(html_loaded=%t)", s.Loaded())
}

// ElementText returns the trimmed text of a single element, with
// internal whitespace collapsed. A nil element yields "".
func ElementText(el Element) string {
	if el == nil {
		return ""
	}
	return el.Text()
}
