// internal/document/transform.go
package document

import (
	"github.com/solenne/mailwright/internal/types"
)

// mutateRuns splits run boundaries at the range edges, applies fn to every
// run inside, and re-normalizes the touched leaves.
func mutateRuns(d *Document, start, end types.Position, fn func(r *Run)) {
	for line := start.Line; line <= end.Line; line++ {
		leaf := d.Leaf(line)
		if leaf == nil {
			return
		}
		c0, c1 := 0, leaf.Len()
		if line == start.Line {
			c0 = start.Col
		}
		if line == end.Line {
			c1 = end.Col
		}
		if c0 >= c1 {
			continue
		}
		k1 := leaf.splitAt(c0)
		k2 := leaf.splitAt(c1)
		for i := k1; i < k2; i++ {
			fn(&leaf.Runs[i])
		}
		leaf.normalize()
	}
}

// ToggleMark sets the mark on every run with selected text, or clears it
// everywhere when the mark is already active. Runs straddling the selection
// edges are split so only the selected portion changes; split halves keep
// their parent run's attributes. A caret or missing selection leaves the
// tree untouched.
func ToggleMark(d *Document, sel *Range, mark Mark) {
	if sel == nil {
		return
	}
	start, end := sel.ordered(d)
	if start == end {
		return
	}
	on := !IsMarkActive(d, sel, mark)
	mutateRuns(d, start, end, func(r *Run) { r.SetMark(mark, on) })
}

// SetColor applies the color to every run with selected text, splitting
// edge runs like ToggleMark. An empty hex clears the color. No selection
// or a bare caret is a no-op.
func SetColor(d *Document, sel *Range, hex string) {
	if sel == nil {
		return
	}
	start, end := sel.ordered(d)
	if start == end {
		return
	}
	mutateRuns(d, start, end, func(r *Run) { r.Color = hex })
}

// ToggleBlock re-kinds the leaves under the selection. Enclosing list
// containers are always unwrapped first, split when the selection covers
// only part of them, so list and non-list toggles never leave a dangling
// container. If the kind was already active the leaves revert to paragraph;
// a list kind turns the leaves into list-items and wraps them in one new
// container; any other kind is set directly. A heading toggled to a list
// becomes a plain list-item: the heading semantics are discarded. Toggling
// to list-item itself is rejected, items exist only inside containers.
func ToggleBlock(d *Document, sel *Range, kind Kind) {
	if sel == nil || kind == KindListItem {
		return
	}
	start, end := sel.ordered(d)
	start, end = d.unhang(start, end)
	active := IsBlockActive(d, sel, kind)

	d.unwrapLists(start.Line, end.Line)

	target := kind
	switch {
	case active:
		target = KindParagraph
	case kind.IsList():
		target = KindListItem
	}
	for line := start.Line; line <= end.Line; line++ {
		if leaf := d.Leaf(line); leaf != nil {
			leaf.Kind = target
		}
	}

	if !active && kind.IsList() {
		d.wrapLeaves(start.Line, end.Line, kind)
	}
}

// unwrapLists frees the leaves in [from, to] from their list containers.
// A container partly covered by the range is split: items before it keep
// the original kind in one container, items after it move into another.
// Leaf order and count are preserved, so positions stay valid.
func (d *Document) unwrapLists(from, to int) {
	var out []*Block
	i := 0
	for _, top := range d.Blocks {
		if !top.Kind.IsList() {
			out = append(out, top)
			i++
			continue
		}
		var before, freed, after []*Block
		for _, item := range top.Blocks {
			switch {
			case i < from:
				before = append(before, item)
			case i > to:
				after = append(after, item)
			default:
				freed = append(freed, item)
			}
			i++
		}
		if len(freed) == 0 {
			out = append(out, top)
			continue
		}
		if len(before) > 0 {
			out = append(out, &Block{Kind: top.Kind, Blocks: before})
		}
		out = append(out, freed...)
		if len(after) > 0 {
			out = append(out, &Block{Kind: top.Kind, Blocks: after})
		}
	}
	d.Blocks = out
}

// wrapLeaves moves the top-level leaves in [from, to] into a single new
// container of the given kind. Callers must have unwrapped the range first
// so every affected leaf sits at top level; the leaves are then contiguous
// in d.Blocks.
func (d *Document) wrapLeaves(from, to int, kind Kind) {
	t0 := d.topIndexOfLeaf(from)
	t1 := d.topIndexOfLeaf(to)
	if t0 < 0 || t1 < 0 {
		return
	}
	container := &Block{Kind: kind, Blocks: append([]*Block(nil), d.Blocks[t0:t1+1]...)}
	d.Blocks = append(d.Blocks[:t0], append([]*Block{container}, d.Blocks[t1+1:]...)...)
}
