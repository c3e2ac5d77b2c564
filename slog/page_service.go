package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/scrape"
)

// Ensure LoggingPageService implements scrape.PageService.
var _ scrape.PageService = (*LoggingPageService)(nil)

// LoggingPageService wraps a PageService with operation logging.
type LoggingPageService struct {
	next   scrape.PageService
	logger *slog.Logger
}

// NewLoggingPageService creates a new LoggingPageService.
func NewLoggingPageService(next scrape.PageService, logger *slog.Logger) *LoggingPageService {
	return &LoggingPageService{next: next, logger: logger}
}

// SavePage delegates to the wrapped service and logs the operation.
func (s *LoggingPageService) SavePage(ctx context.Context, page *scrape.Page) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save page",
			"url", page.URL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SavePage(ctx, page)
}

// FindPageByURL delegates to the wrapped service and logs the operation.
func (s *LoggingPageService) FindPageByURL(ctx context.Context, url string) (page *scrape.Page, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find page",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindPageByURL(ctx, url)
}

// FindPages delegates to the wrapped service and logs the operation.
func (s *LoggingPageService) FindPages(ctx context.Context, filter scrape.PageFilter) (pages []*scrape.Page, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find pages",
			"count", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindPages(ctx, filter)
}

// DeletePage delegates to the wrapped service and logs the operation.
func (s *LoggingPageService) DeletePage(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete page",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeletePage(ctx, url)
}
