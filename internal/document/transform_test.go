// internal/document/transform_test.go
package document

import (
	"reflect"
	"testing"
)

func TestToggleMarkSplitsAtSelectionBoundary(t *testing.T) {
	doc := &Document{Blocks: []*Block{NewParagraph("hello world")}}
	s := sel(0, 0, 0, 5)

	ToggleMark(doc, s, MarkBold)

	leaf := doc.Leaf(0)
	want := []Run{
		{Text: "hello", Bold: true},
		{Text: " world"},
	}
	if !reflect.DeepEqual(leaf.Runs, want) {
		t.Fatalf("runs after toggle = %+v, want %+v", leaf.Runs, want)
	}
	if !IsMarkActive(doc, s, MarkBold) {
		t.Errorf("expected bold active after set")
	}
}

func TestToggleMarkTwiceRestoresState(t *testing.T) {
	tests := []struct {
		name string
		runs []Run
		sel  *Range
		mark Mark
	}{
		{
			name: "partial selection of a plain run",
			runs: []Run{{Text: "hello world"}},
			sel:  sel(0, 3, 0, 8),
			mark: MarkBold,
		},
		{
			name: "selection across differently marked runs",
			runs: []Run{{Text: "one ", Italic: true}, {Text: "two"}},
			sel:  sel(0, 2, 0, 6),
			mark: MarkUnderline,
		},
		{
			name: "whole leaf",
			runs: []Run{{Text: "all", Color: "#00ff00"}},
			sel:  sel(0, 0, 0, 3),
			mark: MarkCode,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &Document{Blocks: []*Block{{Kind: KindParagraph, Runs: append([]Run(nil), tt.runs...)}}}

			ToggleMark(doc, tt.sel, tt.mark)
			ToggleMark(doc, tt.sel, tt.mark)

			if got := doc.Leaf(0).Runs; !reflect.DeepEqual(got, tt.runs) {
				t.Errorf("runs after double toggle = %+v, want %+v", got, tt.runs)
			}
		})
	}
}

func TestToggleMarkMixedSelectionUnifiesThenClears(t *testing.T) {
	doc := &Document{Blocks: []*Block{
		{Kind: KindParagraph, Runs: []Run{
			{Text: "ab", Bold: true},
			{Text: "cd"},
		}},
	}}
	s := sel(0, 0, 0, 4)

	// Mixed coverage: first toggle sets the mark everywhere.
	ToggleMark(doc, s, MarkBold)
	if got := doc.Leaf(0).Runs; len(got) != 1 || !got[0].Bold || got[0].Text != "abcd" {
		t.Fatalf("runs after unify = %+v", got)
	}

	// Now uniformly bold: second toggle clears it everywhere.
	ToggleMark(doc, s, MarkBold)
	if got := doc.Leaf(0).Runs; len(got) != 1 || got[0].Bold {
		t.Fatalf("runs after clear = %+v", got)
	}
}

func TestToggleMarkNoopCases(t *testing.T) {
	original := []Run{{Text: "text"}}
	doc := &Document{Blocks: []*Block{{Kind: KindParagraph, Runs: append([]Run(nil), original...)}}}

	ToggleMark(doc, nil, MarkBold)
	ToggleMark(doc, sel(0, 2, 0, 2), MarkBold)

	if got := doc.Leaf(0).Runs; !reflect.DeepEqual(got, original) {
		t.Errorf("runs changed by no-op toggles: %+v", got)
	}
}

func TestSetColor(t *testing.T) {
	t.Run("splits and colors selection", func(t *testing.T) {
		doc := &Document{Blocks: []*Block{NewParagraph("rally at noon")}}
		SetColor(doc, sel(0, 0, 0, 5), "#ff6900")

		want := []Run{
			{Text: "rally", Color: "#ff6900"},
			{Text: " at noon"},
		}
		if got := doc.Leaf(0).Runs; !reflect.DeepEqual(got, want) {
			t.Errorf("runs = %+v, want %+v", got, want)
		}
	})

	t.Run("empty hex clears color", func(t *testing.T) {
		doc := &Document{Blocks: []*Block{
			{Kind: KindParagraph, Runs: []Run{{Text: "red", Color: "#ff0000"}}},
		}}
		SetColor(doc, sel(0, 0, 0, 3), "")
		if got := doc.Leaf(0).Runs; len(got) != 1 || got[0].Color != "" {
			t.Errorf("runs = %+v, want color cleared", got)
		}
	})

	t.Run("caret is a no-op", func(t *testing.T) {
		doc := &Document{Blocks: []*Block{NewParagraph("text")}}
		SetColor(doc, sel(0, 1, 0, 1), "#9900ef")
		if got := doc.Leaf(0).Runs[0].Color; got != "" {
			t.Errorf("color = %q, want unset", got)
		}
	})
}

func TestToggleBlockListRoundTrip(t *testing.T) {
	doc := &Document{Blocks: []*Block{NewParagraph("item text")}}
	s := sel(0, 0, 0, 0)

	ToggleBlock(doc, s, KindBulletedList)

	if len(doc.Blocks) != 1 || doc.Blocks[0].Kind != KindBulletedList {
		t.Fatalf("top blocks = %+v, want one bulleted-list", doc.Blocks)
	}
	items := doc.Blocks[0].Blocks
	if len(items) != 1 || items[0].Kind != KindListItem || items[0].Text() != "item text" {
		t.Fatalf("items = %+v", items)
	}

	ToggleBlock(doc, s, KindBulletedList)

	if len(doc.Blocks) != 1 || doc.Blocks[0].Kind != KindParagraph {
		t.Fatalf("top blocks after revert = %+v, want one paragraph", doc.Blocks)
	}
	if doc.Blocks[0].Text() != "item text" {
		t.Errorf("text after revert = %q", doc.Blocks[0].Text())
	}
}

func TestToggleBlockHeadingDiscardedByList(t *testing.T) {
	doc := &Document{Blocks: []*Block{NewLeaf(KindHeading1, "title")}}

	ToggleBlock(doc, sel(0, 0, 0, 0), KindNumberedList)

	if doc.Blocks[0].Kind != KindNumberedList {
		t.Fatalf("container kind = %v, want numbered-list", doc.Blocks[0].Kind)
	}
	item := doc.Blocks[0].Blocks[0]
	if item.Kind != KindListItem {
		t.Errorf("item kind = %v, want list-item (heading discarded)", item.Kind)
	}
}

func TestToggleBlockSetsKindDirectly(t *testing.T) {
	doc := &Document{Blocks: []*Block{NewParagraph("quoted")}}

	ToggleBlock(doc, sel(0, 0, 0, 0), KindBlockQuote)
	if got := doc.Blocks[0].Kind; got != KindBlockQuote {
		t.Fatalf("kind = %v, want block-quote", got)
	}

	// Toggling the active kind reverts to paragraph.
	ToggleBlock(doc, sel(0, 0, 0, 0), KindBlockQuote)
	if got := doc.Blocks[0].Kind; got != KindParagraph {
		t.Errorf("kind = %v, want paragraph", got)
	}
}

func TestToggleBlockPartialContainerSplit(t *testing.T) {
	doc := &Document{Blocks: []*Block{
		{Kind: KindBulletedList, Blocks: []*Block{
			NewLeaf(KindListItem, "one"),
			NewLeaf(KindListItem, "two"),
			NewLeaf(KindListItem, "three"),
		}},
	}}

	// Convert the middle item to a numbered list.
	ToggleBlock(doc, sel(1, 0, 1, 0), KindNumberedList)

	if len(doc.Blocks) != 3 {
		t.Fatalf("top blocks = %d, want 3 (split containers)", len(doc.Blocks))
	}
	if doc.Blocks[0].Kind != KindBulletedList || len(doc.Blocks[0].Blocks) != 1 {
		t.Errorf("first container = %+v", doc.Blocks[0])
	}
	if doc.Blocks[1].Kind != KindNumberedList || doc.Blocks[1].Blocks[0].Text() != "two" {
		t.Errorf("middle container = %+v", doc.Blocks[1])
	}
	if doc.Blocks[2].Kind != KindBulletedList || doc.Blocks[2].Blocks[0].Text() != "three" {
		t.Errorf("last container = %+v", doc.Blocks[2])
	}
	if got := doc.LeafCount(); got != 3 {
		t.Errorf("leaf count = %d, want 3", got)
	}
}

func TestToggleBlockSelectionAcrossBlocksWrapsOnce(t *testing.T) {
	doc := &Document{Blocks: []*Block{
		NewParagraph("one"),
		NewLeaf(KindHeading2, "two"),
	}}

	ToggleBlock(doc, sel(0, 0, 1, 3), KindBulletedList)

	if len(doc.Blocks) != 1 || doc.Blocks[0].Kind != KindBulletedList {
		t.Fatalf("top blocks = %+v, want single container", doc.Blocks)
	}
	items := doc.Blocks[0].Blocks
	if len(items) != 2 || items[0].Text() != "one" || items[1].Text() != "two" {
		t.Fatalf("items = %+v", items)
	}
	for i, item := range items {
		if item.Kind != KindListItem {
			t.Errorf("item %d kind = %v, want list-item", i, item.Kind)
		}
	}
}

func TestToggleBlockHangingSelectionLeavesTrailingBlock(t *testing.T) {
	doc := &Document{Blocks: []*Block{
		NewParagraph("selected"),
		NewParagraph("untouched"),
	}}

	ToggleBlock(doc, sel(0, 0, 1, 0), KindHeading1)

	if got := doc.Leaf(0).Kind; got != KindHeading1 {
		t.Errorf("first leaf kind = %v, want heading-1", got)
	}
	if got := doc.Leaf(1).Kind; got != KindParagraph {
		t.Errorf("trailing leaf kind = %v, want paragraph (hanging end)", got)
	}
}

func TestToggleBlockRejectsBareListItem(t *testing.T) {
	doc := &Document{Blocks: []*Block{NewParagraph("text")}}
	ToggleBlock(doc, sel(0, 0, 0, 0), KindListItem)
	if got := doc.Blocks[0].Kind; got != KindParagraph {
		t.Errorf("kind = %v, want paragraph untouched", got)
	}
}
