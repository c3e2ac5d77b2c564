package scrape

import "context"

// DefaultUserAgent identifies the client when the caller supplies no headers.
const DefaultUserAgent = "my-app/0.0.1"

// Fetcher retrieves HTML from URLs.
// Implementations perform a single synchronous GET per call, with no
// retries and no caching.
type Fetcher interface {
	// Fetch performs a GET request against the URL and returns the
	// response body. Headers are sent exactly as given; an empty map
	// sends none beyond what the transport requires.
	// The context controls timeout and cancellation.
	// Returns EFETCH if the request cannot complete, ESTATUS if the
	// response status is outside the 2xx range.
	Fetch(ctx context.Context, url string, headers map[string]string) (html string, err error)
}
