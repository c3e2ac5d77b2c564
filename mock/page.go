package mock

import (
	"context"

	"github.com/fwojciec/scrape"
)

var _ scrape.PageService = (*PageService)(nil)

// PageService is a mock implementation of scrape.PageService.
type PageService struct {
	SavePageFn      func(ctx context.Context, page *scrape.Page) error
	FindPageByURLFn func(ctx context.Context, url string) (*scrape.Page, error)
	FindPagesFn     func(ctx context.Context, filter scrape.PageFilter) ([]*scrape.Page, error)
	DeletePageFn    func(ctx context.Context, url string) error
}

func (s *PageService) SavePage(ctx context.Context, page *scrape.Page) error {
	return s.SavePageFn(ctx, page)
}

func (s *PageService) FindPageByURL(ctx context.Context, url string) (*scrape.Page, error) {
	return s.FindPageByURLFn(ctx, url)
}

func (s *PageService) FindPages(ctx context.Context, filter scrape.PageFilter) ([]*scrape.Page, error) {
	return s.FindPagesFn(ctx, filter)
}

func (s *PageService) DeletePage(ctx context.Context, url string) error {
	return s.DeletePageFn(ctx, url)
}

var _ scrape.PageWriter = (*PageWriter)(nil)

// PageWriter is a mock implementation of scrape.PageWriter.
type PageWriter struct {
	WritePageFn func(ctx context.Context, page *scrape.Page) error
}

func (w *PageWriter) WritePage(ctx context.Context, page *scrape.Page) error {
	return w.WritePageFn(ctx, page)
}
