// internal/document/text.go
package document

import (
	"strings"
	"unicode/utf8"

	"github.com/solenne/mailwright/internal/types"
)

// runAt locates the run containing rune offset col in a leaf block.
// It returns the run index and the rune offset within that run. An offset
// sitting exactly on a run boundary belongs to the run on its left, so text
// typed at the boundary continues the left run's formatting.
func runAt(b *Block, col int) (int, int) {
	acc := 0
	for i, r := range b.Runs {
		n := r.Len()
		if col <= acc+n {
			return i, col - acc
		}
		acc += n
	}
	last := len(b.Runs) - 1
	return last, b.Runs[last].Len()
}

// splitAt ensures a run boundary exists at col and returns the index of the
// first run at or after it. Splitting duplicates the run's attributes on
// both sides; only the text is divided.
func (b *Block) splitAt(col int) int {
	if col <= 0 {
		return 0
	}
	if col >= b.Len() {
		return len(b.Runs)
	}
	idx, rel := runAt(b, col)
	if rel == 0 {
		return idx
	}
	r := b.Runs[idx]
	if rel >= r.Len() {
		return idx + 1
	}
	rs := []rune(r.Text)
	left, right := r, r
	left.Text = string(rs[:rel])
	right.Text = string(rs[rel:])
	b.Runs = append(b.Runs[:idx], append([]Run{left, right}, b.Runs[idx+1:]...)...)
	return idx + 1
}

// normalize merges adjacent runs with identical attributes and drops empty
// runs, keeping at least one run so the leaf stays addressable.
func (b *Block) normalize() {
	out := b.Runs[:0]
	for _, r := range b.Runs {
		if r.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].sameAttrs(r) {
			out[n-1].Text += r.Text
			continue
		}
		out = append(out, r)
	}
	if len(out) == 0 {
		out = append(out, Run{})
	}
	b.Runs = out
}

// InsertText inserts text at the given position and returns the position
// just past the insertion. The text must not contain newlines; callers
// split multi-line input and use InsertBreak between lines. Text inserted
// at a run boundary takes the left run's formatting.
func (d *Document) InsertText(pos types.Position, text string) types.Position {
	pos = d.Clamp(pos)
	if text == "" {
		return pos
	}
	leaf := d.Leaf(pos.Line)
	idx, rel := runAt(leaf, pos.Col)
	r := &leaf.Runs[idx]
	rs := []rune(r.Text)
	r.Text = string(rs[:rel]) + text + string(rs[rel:])
	return types.Position{Line: pos.Line, Col: pos.Col + utf8.RuneCountInString(text)}
}

// InsertBreak splits the leaf at the given position into two leaves of the
// same kind and returns the position at the start of the second. Inside a
// list container the new leaf is a sibling list-item.
func (d *Document) InsertBreak(pos types.Position) types.Position {
	pos = d.Clamp(pos)
	loc := d.leafLocs()[pos.Line]
	k := loc.leaf.splitAt(pos.Col)
	tail := append([]Run(nil), loc.leaf.Runs[k:]...)
	loc.leaf.Runs = loc.leaf.Runs[:k]
	loc.leaf.normalize()
	next := &Block{Kind: loc.leaf.Kind, Runs: tail}
	next.normalize()
	if loc.parent != nil {
		items := loc.parent.Blocks
		loc.parent.Blocks = append(items[:loc.item+1], append([]*Block{next}, items[loc.item+1:]...)...)
	} else {
		d.Blocks = append(d.Blocks[:loc.top+1], append([]*Block{next}, d.Blocks[loc.top+1:]...)...)
	}
	return types.Position{Line: pos.Line + 1, Col: 0}
}

// DeleteRange removes the content between two positions and returns the
// resulting cursor position. A range spanning several leaves joins the
// remainder of the last leaf onto the first and drops everything between;
// containers emptied by the join are pruned. The document never becomes
// empty: deleting everything leaves one empty paragraph.
func (d *Document) DeleteRange(start, end types.Position) types.Position {
	start, end = d.Clamp(start), d.Clamp(end)
	if types.ComparePos(start, end) > 0 {
		start, end = end, start
	}
	if start == end {
		return start
	}

	if start.Line == end.Line {
		leaf := d.Leaf(start.Line)
		k1 := leaf.splitAt(start.Col)
		k2 := leaf.splitAt(end.Col)
		leaf.Runs = append(leaf.Runs[:k1], leaf.Runs[k2:]...)
		leaf.normalize()
		return start
	}

	first := d.Leaf(start.Line)
	last := d.Leaf(end.Line)
	k := first.splitAt(start.Col)
	first.Runs = first.Runs[:k]
	k2 := last.splitAt(end.Col)
	first.Runs = append(first.Runs, last.Runs[k2:]...)
	first.normalize()
	d.removeLeafRange(start.Line+1, end.Line)
	return start
}

// TextRange returns the plain text between two positions, with a newline
// between leaves. Formatting is not represented.
func (d *Document) TextRange(start, end types.Position) string {
	start, end = d.Clamp(start), d.Clamp(end)
	if types.ComparePos(start, end) > 0 {
		start, end = end, start
	}
	if start.Line == end.Line {
		text := []rune(d.LeafText(start.Line))
		return string(text[start.Col:end.Col])
	}
	var sb strings.Builder
	firstText := []rune(d.LeafText(start.Line))
	sb.WriteString(string(firstText[start.Col:]))
	for line := start.Line + 1; line < end.Line; line++ {
		sb.WriteByte('\n')
		sb.WriteString(d.LeafText(line))
	}
	sb.WriteByte('\n')
	lastText := []rune(d.LeafText(end.Line))
	sb.WriteString(string(lastText[:end.Col]))
	return sb.String()
}

// removeLeafRange removes leaves from..to inclusive, pruning containers
// that end up empty. The document is left with at least one paragraph.
func (d *Document) removeLeafRange(from, to int) {
	var out []*Block
	i := 0
	for _, top := range d.Blocks {
		if top.Kind.IsList() {
			var items []*Block
			for _, item := range top.Blocks {
				if i < from || i > to {
					items = append(items, item)
				}
				i++
			}
			if len(items) > 0 {
				top.Blocks = items
				out = append(out, top)
			}
			continue
		}
		if i < from || i > to {
			out = append(out, top)
		}
		i++
	}
	if len(out) == 0 {
		out = append(out, NewParagraph(""))
	}
	d.Blocks = out
}
