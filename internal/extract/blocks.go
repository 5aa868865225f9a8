package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// BlockKind tags the semantic role of one extracted text block.
type BlockKind int

const (
	KindHeading BlockKind = iota
	KindParagraph
	KindListItem
)

// Block is one unit of rendered article text. Level is the heading rank
// (2..6) for KindHeading and zero otherwise.
type Block struct {
	Kind  BlockKind
	Level int
	Text  string
}

const bulletMarker = "•"

var (
	scriptRe = regexp.MustCompile(`(?s)<script[^>]*?>.*?</script>`)
	styleRe  = regexp.MustCompile(`(?s)<style[^>]*?>.*?</style>`)
	svgRe    = regexp.MustCompile(`(?s)<svg[^>]*?>.*?</svg>`)
	figureRe = regexp.MustCompile(`(?s)<figure[^>]*?>.*?</figure>`)

	paragraphRe = regexp.MustCompile(`(?s)<p[^>]*?>(.*?)</p>`)
	listItemRe  = regexp.MustCompile(`(?s)<li[^>]*?>(.*?)</li>`)

	headingRes = func() []*regexp.Regexp {
		res := make([]*regexp.Regexp, 0, 5)
		for level := 2; level <= 6; level++ {
			res = append(res, regexp.MustCompile(fmt.Sprintf(`(?s)<h%d[^>]*?>(.*?)</h%d>`, level, level)))
		}
		return res
	}()
)

// Blocks walks an isolated body fragment and emits its text blocks. Each
// tag type is matched in an independent pass, so headings come out grouped
// by level and list items follow all paragraphs; callers rely on exactly
// that ordering. Script, style, svg, and figure elements are removed
// wholesale first and never contribute blocks.
func Blocks(body string) []Block {
	body = scriptRe.ReplaceAllString(body, "")
	body = styleRe.ReplaceAllString(body, "")
	body = svgRe.ReplaceAllString(body, "")
	body = figureRe.ReplaceAllString(body, "")

	var blocks []Block
	for i, re := range headingRes {
		level := i + 2
		for _, m := range re.FindAllStringSubmatch(body, -1) {
			blocks = append(blocks, Block{Kind: KindHeading, Level: level, Text: Clean(m[1])})
		}
	}
	for _, m := range paragraphRe.FindAllStringSubmatch(body, -1) {
		if text := Clean(m[1]); text != "" {
			blocks = append(blocks, Block{Kind: KindParagraph, Text: text})
		}
	}
	for _, m := range listItemRe.FindAllStringSubmatch(body, -1) {
		if text := Clean(m[1]); text != "" {
			blocks = append(blocks, Block{Kind: KindListItem, Text: text})
		}
	}
	return blocks
}

// Render produces the plain-text form of one block: a '#'-run heading
// marker of length level-1, a bullet for list items, bare text for
// paragraphs.
func (b Block) Render() string {
	switch b.Kind {
	case KindHeading:
		return strings.Repeat("#", b.Level-1) + " " + b.Text
	case KindListItem:
		return bulletMarker + " " + b.Text
	default:
		return b.Text
	}
}
