package mock

import "github.com/fwojciec/scrape"

var _ scrape.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of scrape.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*scrape.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*scrape.ExtractResult, error) {
	return e.ExtractFn(html)
}
