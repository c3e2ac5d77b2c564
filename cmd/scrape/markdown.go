package main

import (
	"fmt"

	"github.com/fwojciec/scrape"
)

// Run executes the markdown command.
func (c *MarkdownCmd) Run(deps *Dependencies) error {
	extractor, ok := deps.Extractors[c.Engine]
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: unknown extraction engine %q\n", c.Engine)
		return scrape.Errorf(scrape.EINVALID, "unknown extraction engine %q", c.Engine)
	}

	s := scrape.NewScraper(deps.Fetcher, deps.Parser)
	if err := s.LoadURL(deps.Ctx, c.URL, deps.Headers); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrape.ErrorMessage(err))
		return err
	}

	extracted, err := extractor.Extract(s.HTML())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrape.ErrorMessage(err))
		return err
	}

	markdown, err := deps.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrape.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, markdown)
	return nil
}
