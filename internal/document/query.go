// internal/document/query.go
package document

import (
	"github.com/solenne/mailwright/internal/types"
)

// Range is a selection over the document. Start/End need not be in document
// order on input; operations normalize internally. A nil *Range passed to a
// query or transform means "no selection": queries report false and
// transforms are no-ops.
type Range struct {
	Start types.Position
	End   types.Position
}

// Caret builds a collapsed range at a single position.
func Caret(p types.Position) Range {
	return Range{Start: p, End: p}
}

// IsCaret reports whether the range is collapsed.
func (r Range) IsCaret() bool {
	return r.Start == r.End
}

// ordered clamps the range into the document and orders Start before End.
func (r Range) ordered(d *Document) (types.Position, types.Position) {
	s, e := d.Clamp(r.Start), d.Clamp(r.End)
	if types.ComparePos(s, e) > 0 {
		s, e = e, s
	}
	return s, e
}

// unhang shrinks a range whose end hangs at column 0 of a later leaf with
// nothing actually selected there, so block queries and toggles do not leak
// onto the trailing block.
func (d *Document) unhang(start, end types.Position) (types.Position, types.Position) {
	for end.Line > start.Line && end.Col == 0 {
		end.Line--
		end.Col = d.LeafLen(end.Line)
	}
	return start, end
}

// visitRuns calls fn for every run with selected text in [start, end).
// Runs merely touched at a boundary (zero overlap) are skipped.
func visitRuns(d *Document, start, end types.Position, fn func(r *Run)) {
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
		acc := 0
		for i := range leaf.Runs {
			n := leaf.Runs[i].Len()
			if acc < c1 && acc+n > c0 {
				fn(&leaf.Runs[i])
			}
			acc += n
		}
	}
}

// IsMarkActive reports whether the mark is in effect at the selection.
// With no selection it is false. At a caret the run left of the caret
// decides; over a range it is true only when every run with selected text
// carries the mark, so toggling an active mark always clears it everywhere.
func IsMarkActive(d *Document, sel *Range, mark Mark) bool {
	if sel == nil {
		return false
	}
	start, end := sel.ordered(d)
	if start == end {
		leaf := d.Leaf(start.Line)
		idx, _ := runAt(leaf, start.Col)
		return leaf.Runs[idx].HasMark(mark)
	}
	found := false
	all := true
	visitRuns(d, start, end, func(r *Run) {
		found = true
		if !r.HasMark(mark) {
			all = false
		}
	})
	return found && all
}

// ActiveColor returns the color in effect at the selection: the color of
// the run left of a caret, or the single color shared by every selected
// run. Mixed or unset colors report "".
func ActiveColor(d *Document, sel *Range) string {
	if sel == nil {
		return ""
	}
	start, end := sel.ordered(d)
	if start == end {
		leaf := d.Leaf(start.Line)
		idx, _ := runAt(leaf, start.Col)
		return leaf.Runs[idx].Color
	}
	color := ""
	first := true
	mixed := false
	visitRuns(d, start, end, func(r *Run) {
		if first {
			color = r.Color
			first = false
			return
		}
		if r.Color != color {
			mixed = true
		}
	})
	if mixed {
		return ""
	}
	return color
}

// IsBlockActive reports whether any block on the ancestor path of the
// selection has the given kind. Hanging ranges are normalized first so a
// selection ending at the start of a following block does not count it.
func IsBlockActive(d *Document, sel *Range, kind Kind) bool {
	if sel == nil {
		return false
	}
	start, end := sel.ordered(d)
	start, end = d.unhang(start, end)
	leaves := d.Leaves()
	for line := start.Line; line <= end.Line && line < len(leaves); line++ {
		li := leaves[line]
		if li.Block.Kind == kind {
			return true
		}
		if li.Container != nil && li.Container.Kind == kind {
			return true
		}
	}
	return false
}
