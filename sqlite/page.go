package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/scrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ scrape.PageService = (*PageService)(nil)

// PageService implements scrape.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// SavePage creates a page, or updates the existing page with the same
// URL. ID, ContentHash, and FetchedAt are assigned on the way in.
func (s *PageService) SavePage(ctx context.Context, page *scrape.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	page.ContentHash = hashContent(page.Content)
	page.FetchedAt = time.Now().UTC()

	existing, err := s.FindPageByURL(ctx, page.URL)
	if err != nil && scrape.ErrorCode(err) != scrape.ENOTFOUND {
		return err
	}

	if existing != nil {
		page.ID = existing.ID
		_, err := s.db.ExecContext(ctx, `
			UPDATE pages
			SET title = ?, content = ?, content_hash = ?, fetched_at = ?
			WHERE url = ?
		`, page.Title, page.Content, page.ContentHash,
			page.FetchedAt.Format(time.RFC3339), page.URL)
		return err
	}

	page.ID = uuid.New().String()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO pages (id, url, title, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, page.ID, page.URL, page.Title, page.Content, page.ContentHash,
		page.FetchedAt.Format(time.RFC3339))
	return err
}

// FindPageByURL retrieves a page by its URL.
func (s *PageService) FindPageByURL(ctx context.Context, url string) (*scrape.Page, error) {
	var page scrape.Page
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, content, content_hash, fetched_at
		FROM pages
		WHERE url = ?
	`, url).Scan(&page.ID, &page.URL, &page.Title, &page.Content, &page.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, scrape.Errorf(scrape.ENOTFOUND, "page %q not found", url)
	}
	if err != nil {
		return nil, err
	}

	page.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// FindPages retrieves pages matching the filter, newest first.
func (s *PageService) FindPages(ctx context.Context, filter scrape.PageFilter) ([]*scrape.Page, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, content, content_hash, fetched_at FROM pages WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY fetched_at DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*scrape.Page
	for rows.Next() {
		var page scrape.Page
		var fetchedAt string

		if err := rows.Scan(&page.ID, &page.URL, &page.Title, &page.Content, &page.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}

		page.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		pages = append(pages, &page)
	}

	return pages, rows.Err()
}

// DeletePage permanently removes a page by URL.
func (s *PageService) DeletePage(ctx context.Context, url string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM pages WHERE url = ?", url)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return scrape.Errorf(scrape.ENOTFOUND, "page %q not found", url)
	}

	return nil
}
