package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/scrape"
	main "github.com/fwojciec/scrape/cmd/scrape"
	"github.com/fwojciec/scrape/goquery"
	"github.com/fwojciec/scrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("saves new pages and reports status", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string, _ map[string]string) (string, error) {
				return "<html><head><title>" + url + "</title></head><body><p>content</p></body></html>", nil
			},
		}
		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*scrape.ExtractResult, error) {
				return &scrape.ExtractResult{Title: "Extracted", ContentHTML: "<p>content</p>"}, nil
			},
		}
		converter := &mock.Converter{
			ConvertFn: func(_ string) (string, error) { return "content", nil },
		}

		var savedPages []*scrape.Page
		pages := &mock.PageService{
			FindPageByURLFn: func(_ context.Context, url string) (*scrape.Page, error) {
				return nil, scrape.Errorf(scrape.ENOTFOUND, "page %q not found", url)
			},
			SavePageFn: func(_ context.Context, page *scrape.Page) error {
				page.ID = "page-id"
				page.ContentHash = "hash-" + page.URL
				savedPages = append(savedPages, page)
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Fetcher:    fetcher,
			Parser:     goquery.NewParser(),
			Extractors: map[string]scrape.Extractor{"trafilatura": extractor},
			Converter:  converter,
			Pages:      pages,
			Limiter:    main.NewDomainLimiter(1000),
		}

		cmd := &main.SaveCmd{URLs: []string{"https://a.example.com/one", "https://b.example.com/two"}}
		err := cmd.Run(deps)

		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "new")
		assert.Contains(t, output, "https://a.example.com/one")
		assert.Contains(t, output, "https://b.example.com/two")
		assert.Contains(t, output, "Saved 2 pages (2 new, 0 updated, 0 unchanged, 0 failed)")

		require.Len(t, savedPages, 2)
		assert.Equal(t, "https://a.example.com/one", savedPages[0].URL)
		assert.Equal(t, "https://b.example.com/two", savedPages[1].URL)
		assert.Equal(t, "Extracted", savedPages[0].Title)
		assert.Equal(t, "content", savedPages[0].Content)
	})

	t.Run("reports updated when archived content differs", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string, _ map[string]string) (string, error) {
				return "<html><body><p>revised</p></body></html>", nil
			},
		}
		extractor := &mock.Extractor{
			ExtractFn: func(_ string) (*scrape.ExtractResult, error) {
				return &scrape.ExtractResult{Title: "Title", ContentHTML: "<p>revised</p>"}, nil
			},
		}
		converter := &mock.Converter{
			ConvertFn: func(_ string) (string, error) { return "revised", nil },
		}

		pages := &mock.PageService{
			FindPageByURLFn: func(_ context.Context, url string) (*scrape.Page, error) {
				return &scrape.Page{URL: url, ContentHash: "old-hash"}, nil
			},
			SavePageFn: func(_ context.Context, page *scrape.Page) error {
				page.ContentHash = "new-hash"
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Fetcher:    fetcher,
			Parser:     goquery.NewParser(),
			Extractors: map[string]scrape.Extractor{"trafilatura": extractor},
			Converter:  converter,
			Pages:      pages,
		}

		cmd := &main.SaveCmd{URLs: []string{"https://example.com/post"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "updated")
		assert.Contains(t, stdout.String(), "Saved 1 pages (0 new, 1 updated, 0 unchanged, 0 failed)")
	})

	t.Run("reports unchanged when archived content matches", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string, _ map[string]string) (string, error) {
				return "<html><body><p>same</p></body></html>", nil
			},
		}
		extractor := &mock.Extractor{
			ExtractFn: func(_ string) (*scrape.ExtractResult, error) {
				return &scrape.ExtractResult{Title: "Title", ContentHTML: "<p>same</p>"}, nil
			},
		}
		converter := &mock.Converter{
			ConvertFn: func(_ string) (string, error) { return "same", nil },
		}

		pages := &mock.PageService{
			FindPageByURLFn: func(_ context.Context, url string) (*scrape.Page, error) {
				return &scrape.Page{URL: url, ContentHash: "same-hash"}, nil
			},
			SavePageFn: func(_ context.Context, page *scrape.Page) error {
				page.ContentHash = "same-hash"
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Fetcher:    fetcher,
			Parser:     goquery.NewParser(),
			Extractors: map[string]scrape.Extractor{"trafilatura": extractor},
			Converter:  converter,
			Pages:      pages,
		}

		cmd := &main.SaveCmd{URLs: []string{"https://example.com/post"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "unchanged")
		assert.Contains(t, stdout.String(), "Saved 1 pages (0 new, 0 updated, 1 unchanged, 0 failed)")
	})

	t.Run("continues past a failed page", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string, _ map[string]string) (string, error) {
				if url == "https://bad.example.com" {
					return "", scrape.Errorf(scrape.EFETCH, "connection refused")
				}
				return "<html><body><p>fine</p></body></html>", nil
			},
		}
		extractor := &mock.Extractor{
			ExtractFn: func(_ string) (*scrape.ExtractResult, error) {
				return &scrape.ExtractResult{Title: "Title", ContentHTML: "<p>fine</p>"}, nil
			},
		}
		converter := &mock.Converter{
			ConvertFn: func(_ string) (string, error) { return "fine", nil },
		}

		pages := &mock.PageService{
			FindPageByURLFn: func(_ context.Context, url string) (*scrape.Page, error) {
				return nil, scrape.Errorf(scrape.ENOTFOUND, "page %q not found", url)
			},
			SavePageFn: func(_ context.Context, page *scrape.Page) error {
				page.ContentHash = "hash"
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     stderr,
			Fetcher:    fetcher,
			Parser:     goquery.NewParser(),
			Extractors: map[string]scrape.Extractor{"trafilatura": extractor},
			Converter:  converter,
			Pages:      pages,
		}

		cmd := &main.SaveCmd{URLs: []string{"https://bad.example.com", "https://good.example.com"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "skip https://bad.example.com")
		assert.Contains(t, stdout.String(), "Saved 1 pages (1 new, 0 updated, 0 unchanged, 1 failed)")
	})

	t.Run("returns error when every page fails", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string, _ map[string]string) (string, error) {
				return "", scrape.Errorf(scrape.EFETCH, "connection refused")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Fetcher: fetcher,
			Parser:  goquery.NewParser(),
		}

		cmd := &main.SaveCmd{URLs: []string{"https://example.com"}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, scrape.EINTERNAL, scrape.ErrorCode(err))
		assert.Contains(t, stderr.String(), "skip https://example.com")
		assert.Contains(t, stdout.String(), "Saved 0 pages (0 new, 0 updated, 0 unchanged, 1 failed)")
	})

	t.Run("falls back to the document title when extraction has none", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string, _ map[string]string) (string, error) {
				return "<html><head><title>Fallback Title</title></head><body><p>content</p></body></html>", nil
			},
		}
		extractor := &mock.Extractor{
			ExtractFn: func(_ string) (*scrape.ExtractResult, error) {
				return &scrape.ExtractResult{Title: "", ContentHTML: "<p>content</p>"}, nil
			},
		}
		converter := &mock.Converter{
			ConvertFn: func(_ string) (string, error) { return "content", nil },
		}

		var savedTitle string
		pages := &mock.PageService{
			FindPageByURLFn: func(_ context.Context, url string) (*scrape.Page, error) {
				return nil, scrape.Errorf(scrape.ENOTFOUND, "page %q not found", url)
			},
			SavePageFn: func(_ context.Context, page *scrape.Page) error {
				savedTitle = page.Title
				page.ContentHash = "hash"
				return nil
			},
		}

		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     &bytes.Buffer{},
			Stderr:     &bytes.Buffer{},
			Fetcher:    fetcher,
			Parser:     goquery.NewParser(),
			Extractors: map[string]scrape.Extractor{"trafilatura": extractor},
			Converter:  converter,
			Pages:      pages,
		}

		cmd := &main.SaveCmd{URLs: []string{"https://example.com/post"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Fallback Title", savedTitle)
	})
}
