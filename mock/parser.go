package mock

import "github.com/fwojciec/scrape"

var _ scrape.Parser = (*Parser)(nil)

// Parser is a mock implementation of scrape.Parser.
type Parser struct {
	ParseFn func(markup string) (scrape.Document, error)
}

func (p *Parser) Parse(markup string) (scrape.Document, error) {
	return p.ParseFn(markup)
}
