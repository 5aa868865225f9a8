package extract

// Extractor defines a minimal interface for article extraction strategies.
// Implementations should be deterministic and avoid side effects.
type Extractor interface {
	Extract(page, author string) Article
}

// PatternExtractor runs the regex pipeline tuned to the publication's
// markup conventions.
type PatternExtractor struct{}

func (PatternExtractor) Extract(page, author string) Article {
	return Assemble(page, author)
}
