package scrape

import "strings"

// FormatPages formats archived pages for display.
// Uses title if available, falls back to URL.
// Pages are separated by blank lines.
func FormatPages(pages []*Page) string {
	if len(pages) == 0 {
		return ""
	}

	parts := make([]string, 0, len(pages))
	for _, page := range pages {
		header := page.Title
		if header == "" {
			header = page.URL
		}
		parts = append(parts, "## Page: "+header+"\n"+page.Content)
	}

	return strings.Join(parts, "\n\n")
}
