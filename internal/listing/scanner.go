package listing

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Scanner discovers post URLs by scanning the publication's index page for
// links of the canonical post shape <origin>/p/<slug>. It deduplicates
// while preserving first-seen order and drops excluded slugs.
type Scanner struct {
	Origin        string
	ExcludedSlugs []string
	Client        Fetcher

	urlRe     *regexp.Regexp
	urlReOnce sync.Once
}

func (s *Scanner) Name() string { return "index" }

// List fetches the index page and scans it. A fetch failure is not the
// caller's fatal path: it yields an empty list.
func (s *Scanner) List(ctx context.Context) ([]Summary, error) {
	body, err := s.Client.Get(ctx, s.Origin)
	if err != nil {
		log.Debug().Err(err).Str("origin", s.Origin).Msg("index page fetch failed")
		return nil, nil
	}
	return s.Scan(string(body)), nil
}

// Scan extracts post summaries from raw index page markup. Titles are
// derived from the URL slug; dates and previews stay empty until the
// article itself is fetched.
func (s *Scanner) Scan(page string) []Summary {
	s.urlReOnce.Do(func() {
		origin := strings.TrimRight(s.Origin, "/")
		s.urlRe = regexp.MustCompile(regexp.QuoteMeta(origin) + `/p/[^/\s"']+`)
	})

	seen := make(map[string]bool)
	var out []Summary
	for _, url := range s.urlRe.FindAllString(page, -1) {
		if excluded(url, s.ExcludedSlugs) {
			continue
		}
		if seen[url] {
			continue
		}
		seen[url] = true
		out = append(out, Summary{Title: slugTitle(url), URL: url})
	}
	return out
}

// slugTitle turns the final path segment into a placeholder title:
// hyphens become spaces and each word is title-cased. A fresh Caser per
// call because Caser carries transform state.
func slugTitle(url string) string {
	slug := url[strings.LastIndex(url, "/")+1:]
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}
