package mock

import "github.com/fwojciec/scrape"

var _ scrape.Converter = (*Converter)(nil)

// Converter is a mock implementation of scrape.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
