package scrape

// Attrs filters elements by attribute values in Find and FindAll.
// Every entry must match for an element to qualify. Values compare by
// exact equality, except "class", which also matches when all of the
// filter's whitespace-separated tokens appear among the element's
// class tokens.
type Attrs map[string]string

// Parser turns raw markup into a queryable Document.
type Parser interface {
	// Parse builds a document from markup. Implementations must be
	// permissive: malformed or arbitrary text yields a valid (possibly
	// empty) document rather than an error.
	Parse(markup string) (Document, error)
}

// Document is a parsed HTML page that answers structural queries.
// Elements are always returned in document order.
type Document interface {
	// Select returns all elements matching the CSS selector.
	// Returns ESELECTOR if the selector cannot be compiled.
	Select(selector string) ([]Element, error)

	// SelectOne returns the first element matching the CSS selector,
	// or nil if nothing matches.
	// Returns ESELECTOR if the selector cannot be compiled.
	SelectOne(selector string) (Element, error)

	// FindAll returns all elements with the given tag name whose
	// attributes satisfy every filter entry. An unknown tag name
	// matches nothing.
	FindAll(tag string, attrs Attrs) []Element

	// Find returns the first element FindAll would return, or nil.
	Find(tag string, attrs Attrs) Element

	// Title returns the trimmed text of the document's first title
	// element, or "" if the document has none.
	Title() string
}

// Element is a single element within a Document.
type Element interface {
	// Tag returns the lowercase tag name.
	Tag() string

	// Text returns the element's text content with leading and
	// trailing whitespace removed and internal runs of whitespace
	// collapsed to single spaces.
	Text() string

	// Attr returns the value of the named attribute and whether the
	// attribute is present. An attribute set to the empty string is
	// present.
	Attr(name string) (string, bool)

	// Attrs returns all attributes of the element.
	Attrs() map[string]string
}
