package main

import (
	"fmt"

	"github.com/fwojciec/scrape"
)

// Run executes the pages command.
func (c *PagesCmd) Run(deps *Dependencies) error {
	pages, err := deps.Pages.FindPages(deps.Ctx, scrape.PageFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrape.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages archived. Use 'scrape save' to add one.")
		return nil
	}

	if c.Full {
		// Print full page content with markdown headers
		fmt.Fprintln(deps.Stdout, scrape.FormatPages(pages))
		return nil
	}

	// Print summary listing
	fmt.Fprintf(deps.Stdout, "Archived pages (%d total):\n\n", len(pages))
	for i, page := range pages {
		title := page.Title
		if title == "" {
			title = page.URL
		}
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s\n", i+1, title, page.URL)
	}

	return nil
}
