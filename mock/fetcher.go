package mock

import (
	"context"

	"github.com/fwojciec/scrape"
)

var _ scrape.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of scrape.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string, headers map[string]string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string, headers map[string]string) (string, error) {
	return f.FetchFn(ctx, url, headers)
}
