package main

import (
	"fmt"

	"github.com/fwojciec/scrape"
	"github.com/fwojciec/scrape/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	pages, err := deps.Pages.FindPages(deps.Ctx, scrape.PageFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrape.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages to export.")
		return nil
	}

	writer := deps.Writer
	if writer == nil {
		writer = fs.NewWriter(c.Dir)
	}

	for _, page := range pages {
		if err := writer.WritePage(deps.Ctx, page); err != nil {
			fmt.Fprintf(deps.Stderr, "error exporting %s: %v\n", page.URL, err)
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Exported %d pages to %s\n", len(pages), c.Dir)
	return nil
}
