package main

import (
	"fmt"

	"github.com/fwojciec/scrape"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Pages.DeletePage(deps.Ctx, c.URL); err != nil {
		if scrape.ErrorCode(err) == scrape.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: page %q not found. Use 'scrape pages' to see archived pages.\n", c.URL)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrape.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted page %q\n", c.URL)
	return nil
}
