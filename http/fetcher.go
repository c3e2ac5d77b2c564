// Package http provides an HTTP-based implementation of scrape.Fetcher
// for fetching pages from static sites with a single GET per call.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/fwojciec/scrape"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements scrape.Fetcher at compile time.
var _ scrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// It performs exactly one GET per Fetch call: no retries, no caching.
// Redirects follow net/http's default policy.
type Fetcher struct {
	client           *http.Client
	timeout          time.Duration
	transport        http.RoundTripper
	cloudflareBypass bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithTransport sets the underlying round tripper.
// Defaults to http.DefaultTransport if not specified.
func WithTransport(rt http.RoundTripper) Option {
	return func(f *Fetcher) {
		f.transport = rt
	}
}

// WithCloudflareBypass wraps the transport so requests pass common
// Cloudflare browser checks.
func WithCloudflareBypass() Option {
	return func(f *Fetcher) {
		f.cloudflareBypass = true
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	transport := f.transport
	if f.cloudflareBypass {
		if transport == nil {
			transport = http.DefaultTransport
		}
		transport = cloudflarebp.AddCloudFlareByPass(transport)
	}

	f.client = &http.Client{
		Timeout:   f.timeout,
		Transport: transport,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// Headers are set on the request exactly as given.
func (f *Fetcher) Fetch(ctx context.Context, url string, headers map[string]string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", scrape.Errorf(scrape.EFETCH, "invalid request for %s: %v", url, err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", scrape.Errorf(scrape.EFETCH, "GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", scrape.Errorf(scrape.ESTATUS, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", scrape.Errorf(scrape.EFETCH, "reading body of %s: %v", url, err)
	}

	return string(body), nil
}
