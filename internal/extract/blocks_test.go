package extract

import "testing"

func TestBlocks_HeadingParagraphListItem(t *testing.T) {
	body := `<h2>A</h2><p>B</p><ul><li>C</li></ul>`

	blocks := Blocks(body)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d: %+v", len(blocks), blocks)
	}
	if blocks[0].Kind != KindHeading || blocks[0].Render() != "# A" {
		t.Fatalf("expected level-2 heading '# A', got %q", blocks[0].Render())
	}
	if blocks[1].Kind != KindParagraph || blocks[1].Render() != "B" {
		t.Fatalf("expected paragraph 'B', got %q", blocks[1].Render())
	}
	if blocks[2].Kind != KindListItem || blocks[2].Render() != "• C" {
		t.Fatalf("expected bulleted list item, got %q", blocks[2].Render())
	}
}

func TestBlocks_HeadingsGroupedByLevel(t *testing.T) {
	// Independent per-level passes: all h2 blocks precede all h3 blocks
	// even when the document interleaves them.
	body := `<h3>Three</h3><h2>Two</h2><h3>Three again</h3>`

	blocks := Blocks(body)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	if blocks[0].Level != 2 || blocks[0].Text != "Two" {
		t.Fatalf("expected level-2 heading first, got %+v", blocks[0])
	}
	if blocks[1].Level != 3 || blocks[1].Text != "Three" {
		t.Fatalf("expected first level-3 heading second, got %+v", blocks[1])
	}
	if blocks[2].Level != 3 || blocks[2].Text != "Three again" {
		t.Fatalf("expected second level-3 heading last, got %+v", blocks[2])
	}
}

func TestBlocks_HeadingMarkerLength(t *testing.T) {
	blocks := Blocks(`<h6>Deep</h6>`)
	if len(blocks) != 1 || blocks[0].Render() != "##### Deep" {
		t.Fatalf("expected five-marker heading, got %+v", blocks)
	}
}

func TestBlocks_ListItemsFollowAllParagraphs(t *testing.T) {
	body := `<ul><li>One</li></ul><p>Para</p>`

	blocks := Blocks(body)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Kind != KindParagraph || blocks[1].Kind != KindListItem {
		t.Fatalf("expected paragraph before list item, got %+v", blocks)
	}
}

func TestBlocks_DropsEmptyParagraphsAndItems(t *testing.T) {
	body := `<p>Kept</p><p></p><p>  </p><li> </li>`

	blocks := Blocks(body)
	if len(blocks) != 1 || blocks[0].Text != "Kept" {
		t.Fatalf("expected only the non-empty paragraph, got %+v", blocks)
	}
}

func TestBlocks_RemovesNonContentElementsWholesale(t *testing.T) {
	body := `<script>var x = "<p>not a paragraph</p>";</script>
	<style>.c { color: red }</style>
	<svg viewBox="0 0 1 1"><title>chart</title></svg>
	<figure><figcaption><p>caption text</p></figcaption></figure>
	<p>Real paragraph.</p>`

	blocks := Blocks(body)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d: %+v", len(blocks), blocks)
	}
	if blocks[0].Text != "Real paragraph." {
		t.Fatalf("expected only the real paragraph, got %q", blocks[0].Text)
	}
}

func TestBlocks_FreshScanPerCall(t *testing.T) {
	body := `<p>Once</p>`
	first := Blocks(body)
	second := Blocks(body)
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected each call to re-scan the fragment, got %d then %d", len(first), len(second))
	}
}
