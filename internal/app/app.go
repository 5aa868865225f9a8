package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jtervala/subreader/internal/extract"
	"github.com/jtervala/subreader/internal/listing"
)

// Fetcher is the HTTP collaborator surface the app needs: one URL in, one
// fully buffered body out. Retries and timeouts live behind it.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// App wires the fetch collaborator, the listers, and the extractor into
// the two top-level operations. It holds no mutable state: every operation
// works on its own fetched buffer.
type App struct {
	cfg       Config
	client    Fetcher
	listers   []listing.Lister
	extractor extract.Extractor
}

// New assembles the reader. The index scanner always runs first; the feed
// lister joins as a fallback when enabled.
func New(cfg Config, client Fetcher) *App {
	if cfg.Publication == "" {
		cfg.Publication = DefaultPublication
	}
	listers := []listing.Lister{
		&listing.Scanner{Origin: cfg.Origin, ExcludedSlugs: cfg.ExcludedSlugs, Client: client},
	}
	if cfg.FeedFallback {
		listers = append(listers, &listing.FeedLister{
			FeedURL:       feedURL(cfg.Origin),
			ExcludedSlugs: cfg.ExcludedSlugs,
			Client:        client,
		})
	}
	return &App{cfg: cfg, client: client, listers: listers, extractor: extract.PatternExtractor{}}
}

func feedURL(origin string) string {
	return strings.TrimRight(origin, "/") + "/feed"
}

// ListArticles returns the publication's posts in discovery order. The
// first lister that produces results wins; an unreachable site yields an
// empty slice, never an error.
func (a *App) ListArticles(ctx context.Context) []listing.Summary {
	for _, l := range a.listers {
		summaries, err := l.List(ctx)
		if err != nil {
			log.Warn().Err(err).Str("lister", l.Name()).Msg("listing failed")
			continue
		}
		if len(summaries) > 0 {
			log.Debug().Str("lister", l.Name()).Int("count", len(summaries)).Msg("articles discovered")
			return summaries
		}
	}
	return nil
}

// LatestArticle fetches and extracts the newest post and renders it as a
// single text document with Title/Author/Published/URL header lines.
// Every failure path resolves to a plain-language message: the consumer is
// an agent expecting prose, not error codes.
func (a *App) LatestArticle(ctx context.Context) string {
	articles := a.ListArticles(ctx)
	if len(articles) == 0 {
		return fmt.Sprintf("Failed to fetch articles from %s. The service might be temporarily unavailable.", a.cfg.Publication)
	}

	latest := articles[0]
	page, err := a.client.Get(ctx, latest.URL)
	if err != nil {
		log.Warn().Err(err).Str("url", latest.URL).Msg("article fetch failed")
		return "Failed to fetch the latest article. The article might not be accessible."
	}

	article := a.extractor.Extract(string(page), a.cfg.Author)
	return renderDocument(article, latest.URL)
}

// renderDocument lays the record out the way the original tool did: a
// leading blank line, four header lines, a blank line, then the body.
func renderDocument(a extract.Article, url string) string {
	return fmt.Sprintf("\nTitle: %s\nAuthor: %s\nPublished: %s\nURL: %s\n\n%s\n",
		a.Title, a.Author, a.PublishedAt, url, a.Body)
}
