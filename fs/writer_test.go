package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/scrape"
	"github.com/fwojciec/scrape/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "simple path",
			url:  "https://example.com/docs/api/users",
			want: "example.com/docs/api/users.md",
		},
		{
			name: "trailing slash becomes index",
			url:  "https://example.com/docs/",
			want: "example.com/docs/index.md",
		},
		{
			name: "root path becomes index",
			url:  "https://example.com/",
			want: "example.com/index.md",
		},
		{
			name: "no trailing slash",
			url:  "https://example.com/docs",
			want: "example.com/docs.md",
		},
		{
			name: "ignores query string",
			url:  "https://example.com/docs/api?version=2",
			want: "example.com/docs/api.md",
		},
		{
			name: "ignores fragment",
			url:  "https://example.com/docs/api#section",
			want: "example.com/docs/api.md",
		},
		{
			name: "root without trailing slash",
			url:  "https://example.com",
			want: "example.com/index.md",
		},
		{
			name: "deep nesting",
			url:  "https://example.com/a/b/c/d/e/f",
			want: "example.com/a/b/c/d/e/f.md",
		},
		{
			name: "port becomes underscore",
			url:  "http://localhost:8080/docs",
			want: "localhost_8080/docs.md",
		},
		{
			name: "different hosts stay separate",
			url:  "https://other.org/docs",
			want: "other.org/docs.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.URLToPath(tt.url)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatPage(t *testing.T) {
	t.Parallel()

	t.Run("formats page with frontmatter", func(t *testing.T) {
		t.Parallel()

		page := &scrape.Page{
			URL:       "https://example.com/articles/go",
			Title:     "Go Articles",
			Content:   "# Go Articles\n\nEverything about Go.",
			FetchedAt: time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC),
		}

		got := fs.FormatPage(page)

		want := `---
source: https://example.com/articles/go
title: Go Articles
fetched: 2026-08-23
---

# Go Articles

Everything about Go.`

		assert.Equal(t, want, got)
	})
}

func TestWriter_WritePage(t *testing.T) {
	t.Parallel()

	t.Run("writes page to correct path with frontmatter", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		page := &scrape.Page{
			URL:       "https://example.com/articles/go",
			Title:     "Go Articles",
			Content:   "# Go Articles\n\nEverything about Go.",
			FetchedAt: time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC),
		}

		err := w.WritePage(context.Background(), page)

		require.NoError(t, err)

		// Verify file was created at correct path
		filePath := filepath.Join(baseDir, "example.com/articles/go.md")
		content, err := os.ReadFile(filePath)
		require.NoError(t, err)

		want := `---
source: https://example.com/articles/go
title: Go Articles
fetched: 2026-08-23
---

# Go Articles

Everything about Go.`

		assert.Equal(t, want, string(content))
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		page := &scrape.Page{
			URL:       "https://example.com/deeply/nested/path/page",
			Title:     "Nested Page",
			Content:   "Content",
			FetchedAt: time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC),
		}

		err := w.WritePage(context.Background(), page)

		require.NoError(t, err)

		filePath := filepath.Join(baseDir, "example.com/deeply/nested/path/page.md")
		_, err = os.Stat(filePath)
		require.NoError(t, err)
	})

	t.Run("trailing slash creates index.md", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		page := &scrape.Page{
			URL:       "https://example.com/docs/",
			Title:     "Docs Index",
			Content:   "Index content",
			FetchedAt: time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC),
		}

		err := w.WritePage(context.Background(), page)

		require.NoError(t, err)

		filePath := filepath.Join(baseDir, "example.com/docs/index.md")
		_, err = os.Stat(filePath)
		require.NoError(t, err)
	})

	t.Run("validates page", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		page := &scrape.Page{
			// Missing URL
			Title:   "Invalid Page",
			Content: "Content",
		}

		err := w.WritePage(context.Background(), page)

		require.Error(t, err)
		assert.Equal(t, scrape.EINVALID, scrape.ErrorCode(err))
	})
}

var _ scrape.PageWriter = (*fs.Writer)(nil)
