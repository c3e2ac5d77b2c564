package scrape

import (
	"context"
	"time"
)

// Page represents an archived webpage.
type Page struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	return nil
}

// PageService represents a service for managing archived pages.
// The archive is keyed by URL: saving a URL twice updates the existing
// record. It is written only on explicit save requests and is never
// consulted when loading a page.
type PageService interface {
	// SavePage creates a page, or updates the existing page with the
	// same URL. The implementation assigns ID, ContentHash and
	// FetchedAt.
	SavePage(ctx context.Context, page *Page) error

	// FindPageByURL retrieves a page by its URL.
	// Returns ENOTFOUND if the page does not exist.
	FindPageByURL(ctx context.Context, url string) (*Page, error)

	// FindPages retrieves pages matching the filter, newest first.
	FindPages(ctx context.Context, filter PageFilter) ([]*Page, error)

	// DeletePage permanently removes a page by URL.
	// Returns ENOTFOUND if the page does not exist.
	DeletePage(ctx context.Context, url string) error
}

// PageFilter represents a filter for FindPages.
type PageFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// PageWriter represents a destination pages can be exported to, such as
// a directory of markdown files.
type PageWriter interface {
	// WritePage writes a single page. Returns EINVALID if the page
	// fails validation.
	WritePage(ctx context.Context, page *Page) error
}
