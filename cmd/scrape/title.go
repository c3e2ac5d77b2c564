package main

import (
	"fmt"

	"github.com/fwojciec/scrape"
)

// Run executes the title command.
func (c *TitleCmd) Run(deps *Dependencies) error {
	s := scrape.NewScraper(deps.Fetcher, deps.Parser)
	if err := s.LoadURL(deps.Ctx, c.URL, deps.Headers); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrape.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, s.Title())
	return nil
}
