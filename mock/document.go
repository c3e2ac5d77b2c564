package mock

import "github.com/fwojciec/scrape"

var _ scrape.Document = (*Document)(nil)

// Document is a mock implementation of scrape.Document.
type Document struct {
	SelectFn    func(selector string) ([]scrape.Element, error)
	SelectOneFn func(selector string) (scrape.Element, error)
	FindAllFn   func(tag string, attrs scrape.Attrs) []scrape.Element
	FindFn      func(tag string, attrs scrape.Attrs) scrape.Element
	TitleFn     func() string
}

func (d *Document) Select(selector string) ([]scrape.Element, error) {
	return d.SelectFn(selector)
}

func (d *Document) SelectOne(selector string) (scrape.Element, error) {
	return d.SelectOneFn(selector)
}

func (d *Document) FindAll(tag string, attrs scrape.Attrs) []scrape.Element {
	return d.FindAllFn(tag, attrs)
}

func (d *Document) Find(tag string, attrs scrape.Attrs) scrape.Element {
	return d.FindFn(tag, attrs)
}

func (d *Document) Title() string {
	return d.TitleFn()
}

var _ scrape.Element = (*Element)(nil)

// Element is a mock implementation of scrape.Element.
type Element struct {
	TagFn   func() string
	TextFn  func() string
	AttrFn  func(name string) (string, bool)
	AttrsFn func() map[string]string
}

func (e *Element) Tag() string {
	return e.TagFn()
}

func (e *Element) Text() string {
	return e.TextFn()
}

func (e *Element) Attr(name string) (string, bool) {
	return e.AttrFn(name)
}

func (e *Element) Attrs() map[string]string {
	return e.AttrsFn()
}
