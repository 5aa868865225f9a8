package extract

import (
	"regexp"
	"strings"
)

// Article is the structured record produced from one fetched post page.
// Extraction either fully succeeds or the caller gets no record at all;
// Body may carry PlaceholderBody when only the body region was missing.
type Article struct {
	Title       string
	Author      string
	PublishedAt string
	Body        string
}

// PlaceholderBody is returned as the body text when neither body-location
// strategy matches the page.
const PlaceholderBody = "Could not extract article content."

var excessNewlinesRe = regexp.MustCompile(`\n{3,}`)

// Assemble runs the full pipeline over one page buffer: locate the
// fragments, extract blocks from the body, and join them with blank lines.
// It never fails on malformed input and is deterministic for identical
// input.
func Assemble(page, author string) Article {
	f := Locate(page)
	a := Article{Title: f.Title, Author: author, PublishedAt: f.PublishedAt}
	if !f.BodyFound {
		a.Body = PlaceholderBody
		return a
	}
	blocks := Blocks(f.Body)
	rendered := make([]string, 0, len(blocks))
	for _, b := range blocks {
		rendered = append(rendered, b.Render())
	}
	body := strings.Join(rendered, "\n\n")
	a.Body = excessNewlinesRe.ReplaceAllString(body, "\n\n")
	return a
}
