package extract

import (
	"regexp"
	"strings"
)

var (
	tagRe        = regexp.MustCompile(`<[^>]+>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	newlineRe    = regexp.MustCompile(`\n+`)
)

// entityPairs lists the named entities the publication actually emits, in
// replacement order. Anything else, including numeric references, is left
// untouched.
var entityPairs = [][2]string{
	{"&nbsp;", " "},
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&#39;", "'"},
}

// Clean strips every angle-bracket-delimited tag from a markup fragment,
// decodes the fixed entity set, and normalizes the result to a single
// trimmed line. Empty input yields empty output.
func Clean(fragment string) string {
	text := tagRe.ReplaceAllString(fragment, " ")
	for _, pair := range entityPairs {
		text = strings.ReplaceAll(text, pair[0], pair[1])
	}
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = newlineRe.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
