package main

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fwojciec/scrape"
	"golang.org/x/sync/errgroup"
)

// saveResult holds the outcome of processing a single URL.
type saveResult struct {
	position int
	url      string
	title    string
	markdown string
	err      error
}

// Run executes the save command.
func (c *SaveCmd) Run(deps *Dependencies) error {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 3
	}

	resultCh := make(chan saveResult, len(c.URLs))

	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range c.URLs {
			g.Go(func() error {
				resultCh <- c.processURL(gctx, deps, i, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in input order before writing to the archive
	results := make([]saveResult, len(c.URLs))
	for result := range resultCh {
		results[result.position] = result
	}

	var saved, failed int
	counts := make(map[string]int)
	for _, result := range results {
		if result.err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", result.url, result.err)
			continue
		}

		status, err := c.savePage(deps, result)
		if err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", result.url, err)
			continue
		}

		saved++
		counts[status]++
		fmt.Fprintf(deps.Stdout, "%-9s %s\n", status, result.url)
	}

	fmt.Fprintf(deps.Stdout, "Saved %d pages (%d new, %d updated, %d unchanged, %d failed)\n",
		saved, counts["new"], counts["updated"], counts["unchanged"], failed)

	if failed > 0 && saved == 0 {
		return scrape.Errorf(scrape.EINTERNAL, "all %d pages failed", failed)
	}
	return nil
}

// processURL fetches a single URL and converts it to markdown.
func (c *SaveCmd) processURL(ctx context.Context, deps *Dependencies, position int, rawURL string) saveResult {
	result := saveResult{position: position, url: rawURL}

	u, err := url.Parse(rawURL)
	if err != nil {
		result.err = err
		return result
	}
	if deps.Limiter != nil {
		if err := deps.Limiter.Wait(ctx, u.Host); err != nil {
			result.err = err
			return result
		}
	}

	s := scrape.NewScraper(deps.Fetcher, deps.Parser)
	if err := s.LoadURL(ctx, rawURL, deps.Headers); err != nil {
		result.err = err
		return result
	}

	extracted, err := deps.Extractors[engineTrafilatura].Extract(s.HTML())
	if err != nil {
		result.err = err
		return result
	}

	markdown, err := deps.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		result.err = err
		return result
	}

	result.title = extracted.Title
	if result.title == "" {
		result.title = s.Title()
	}
	result.markdown = markdown

	return result
}

// savePage upserts a processed page and reports whether it was new,
// updated, or unchanged relative to the archived copy.
func (c *SaveCmd) savePage(deps *Dependencies, result saveResult) (string, error) {
	existing, err := deps.Pages.FindPageByURL(deps.Ctx, result.url)
	if err != nil && scrape.ErrorCode(err) != scrape.ENOTFOUND {
		return "", err
	}

	page := &scrape.Page{
		URL:     result.url,
		Title:   result.title,
		Content: result.markdown,
	}
	if err := deps.Pages.SavePage(deps.Ctx, page); err != nil {
		return "", err
	}

	switch {
	case existing == nil:
		return "new", nil
	case existing.ContentHash != page.ContentHash:
		return "updated", nil
	default:
		return "unchanged", nil
	}
}
