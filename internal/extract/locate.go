package extract

import "regexp"

// Fragments holds the regions of one post page that matter downstream. Body
// is meaningful only when BodyFound is true; title and date can still be
// valid when the body region is missing.
type Fragments struct {
	Title       string
	PublishedAt string
	Body        string
	BodyFound   bool
}

// UnknownTitle is the sentinel used when a page carries no <h1>.
const UnknownTitle = "Unknown Title"

var (
	titleRe = regexp.MustCompile(`(?s)<h1[^>]*?>(.*?)</h1>`)
	dateRe  = regexp.MustCompile(`<time[^>]*?datetime="([^"]+)"`)

	// Primary strategy: the site wraps article markup in a div whose class
	// contains "body", running up to the comments section or footer.
	bodyDivRe = regexp.MustCompile(`(?s)<div[^>]*?class="[^"]*?body[^"]*?"[^>]*?>(.*?)</div>\s*<(footer|div\s+class="[^"]*?comments)`)
	// Fallback: the whole <article> element.
	articleRe = regexp.MustCompile(`(?s)<article[^>]*?>(.*?)</article>`)
)

// Locate isolates the title, publish date, and body fragment of a fetched
// page. Matching is pattern-based and tuned to the publication's markup; it
// tolerates extra attributes in any order but is not a general HTML parser.
func Locate(page string) Fragments {
	f := Fragments{Title: UnknownTitle}
	if m := titleRe.FindStringSubmatch(page); m != nil {
		f.Title = Clean(m[1])
	}
	if m := dateRe.FindStringSubmatch(page); m != nil {
		f.PublishedAt = m[1]
	}
	if m := bodyDivRe.FindStringSubmatch(page); m != nil {
		f.Body = m[1]
		f.BodyFound = true
		return f
	}
	if m := articleRe.FindStringSubmatch(page); m != nil {
		f.Body = m[1]
		f.BodyFound = true
	}
	return f
}
