package main

import (
	"fmt"

	"github.com/fwojciec/scrape"
)

// Run executes the attr command.
func (c *AttrCmd) Run(deps *Dependencies) error {
	s := scrape.NewScraper(deps.Fetcher, deps.Parser)
	if err := s.LoadURL(deps.Ctx, c.URL, deps.Headers); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrape.ErrorMessage(err))
		return err
	}

	values, err := s.AttrAll(c.Selector, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrape.ErrorMessage(err))
		return err
	}

	for _, v := range values {
		fmt.Fprintln(deps.Stdout, v)
	}

	return nil
}
