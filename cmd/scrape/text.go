package main

import (
	"fmt"

	"github.com/fwojciec/scrape"
)

// Run executes the text command.
func (c *TextCmd) Run(deps *Dependencies) error {
	s := scrape.NewScraper(deps.Fetcher, deps.Parser)
	if err := s.LoadURL(deps.Ctx, c.URL, deps.Headers); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrape.ErrorMessage(err))
		return err
	}

	elements, err := s.Select(c.Selector)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrape.ErrorMessage(err))
		return err
	}

	for _, el := range elements {
		fmt.Fprintln(deps.Stdout, scrape.ElementText(el))
	}

	return nil
}
