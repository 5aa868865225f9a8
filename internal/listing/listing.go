package listing

import (
	"context"
	"strings"
)

// Summary is one discovered post on the publication. PublishedAt and
// Preview may be empty: the index page does not carry them, and filling
// them in would require fetching each article.
type Summary struct {
	Title       string
	URL         string
	PublishedAt string
	Preview     string
}

// Lister enumerates posts from one view of the publication, in the order
// the source presents them (first entry is "latest" by convention only).
// Listing is best-effort: implementations return an empty slice, not an
// error, when the source is unreachable or has nothing to offer.
type Lister interface {
	List(ctx context.Context) ([]Summary, error)
	Name() string
}

// Fetcher retrieves one URL and returns the raw response body.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// excluded reports whether a post URL contains any of the configured slugs
// as a substring.
func excluded(url string, slugs []string) bool {
	for _, slug := range slugs {
		if slug != "" && strings.Contains(url, slug) {
			return true
		}
	}
	return false
}
