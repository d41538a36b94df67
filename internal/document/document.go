// internal/document/document.go
// Package document holds the in-memory model of a mail being composed: an
// ordered tree of blocks, where leaf blocks carry runs of styled text and
// list containers carry list-item blocks. All editing, querying and
// formatting operations take the document plus explicit positions; there is
// no ambient editor state in this package.
package document

import (
	"strings"

	"github.com/solenne/mailwright/internal/types"
)

// Block is a structural node. Exactly one of Runs/Blocks is populated:
// list containers (bulleted-list, numbered-list) hold list-item children in
// Blocks; every other kind holds text content in Runs. Leaf blocks always
// have at least one run, possibly with empty text.
type Block struct {
	Kind   Kind
	Runs   []Run
	Blocks []*Block
}

// NewLeaf creates a leaf block of the given kind holding the given text.
func NewLeaf(kind Kind, text string) *Block {
	return &Block{Kind: kind, Runs: []Run{{Text: text}}}
}

// NewParagraph creates a paragraph leaf holding the given text.
func NewParagraph(text string) *Block {
	return NewLeaf(KindParagraph, text)
}

// Text returns the concatenated run text of a leaf block.
func (b *Block) Text() string {
	if len(b.Runs) == 1 {
		return b.Runs[0].Text
	}
	var sb strings.Builder
	for _, r := range b.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Len returns the rune length of a leaf block's text.
func (b *Block) Len() int {
	n := 0
	for _, r := range b.Runs {
		n += r.Len()
	}
	return n
}

// clone deep-copies a block.
func (b *Block) clone() *Block {
	nb := &Block{Kind: b.Kind}
	if len(b.Runs) > 0 {
		nb.Runs = append([]Run(nil), b.Runs...)
	}
	for _, c := range b.Blocks {
		nb.Blocks = append(nb.Blocks, c.clone())
	}
	return nb
}

// Document is an ordered sequence of top-level blocks. It is mutated in
// place by editing operations and only ever read back by the serializer;
// it is never persisted.
type Document struct {
	Blocks []*Block
}

// New creates a document holding a single empty paragraph, the smallest
// valid document. Deleting everything collapses back to this shape.
func New() *Document {
	return &Document{Blocks: []*Block{NewParagraph("")}}
}

// Clone deep-copies the document. Used for history snapshots.
func (d *Document) Clone() *Document {
	nd := &Document{Blocks: make([]*Block, 0, len(d.Blocks))}
	for _, b := range d.Blocks {
		nd.Blocks = append(nd.Blocks, b.clone())
	}
	return nd
}

// LeafInfo describes one leaf block in flattened order.
type LeafInfo struct {
	Block     *Block
	Container *Block // enclosing list container, nil at top level
	Ordinal   int    // 1-based position within Container, 0 at top level
}

// Leaves returns the document's leaf blocks in flattened order. Positions
// (types.Position) address this flattened sequence by Line.
func (d *Document) Leaves() []LeafInfo {
	var out []LeafInfo
	for _, top := range d.Blocks {
		if top.Kind.IsList() {
			for i, item := range top.Blocks {
				out = append(out, LeafInfo{Block: item, Container: top, Ordinal: i + 1})
			}
			continue
		}
		out = append(out, LeafInfo{Block: top})
	}
	return out
}

// LeafCount returns the number of leaf blocks.
func (d *Document) LeafCount() int {
	n := 0
	for _, top := range d.Blocks {
		if top.Kind.IsList() {
			n += len(top.Blocks)
			continue
		}
		n++
	}
	return n
}

// Leaf returns the i-th leaf block, or nil when out of range.
func (d *Document) Leaf(i int) *Block {
	if i < 0 {
		return nil
	}
	for _, top := range d.Blocks {
		if top.Kind.IsList() {
			if i < len(top.Blocks) {
				return top.Blocks[i]
			}
			i -= len(top.Blocks)
			continue
		}
		if i == 0 {
			return top
		}
		i--
	}
	return nil
}

// LeafText returns the text of the i-th leaf, or "" when out of range.
func (d *Document) LeafText(i int) string {
	if b := d.Leaf(i); b != nil {
		return b.Text()
	}
	return ""
}

// LeafLen returns the rune length of the i-th leaf, or 0 when out of range.
func (d *Document) LeafLen(i int) int {
	if b := d.Leaf(i); b != nil {
		return b.Len()
	}
	return 0
}

// leafLoc pins a leaf to its structural location for mutation.
type leafLoc struct {
	leaf   *Block
	parent *Block // nil when the leaf sits at top level
	top    int    // index in d.Blocks
	item   int    // index in parent.Blocks, -1 at top level
}

// leafLocs returns every leaf with its structural location.
func (d *Document) leafLocs() []leafLoc {
	var out []leafLoc
	for t, top := range d.Blocks {
		if top.Kind.IsList() {
			for i, item := range top.Blocks {
				out = append(out, leafLoc{leaf: item, parent: top, top: t, item: i})
			}
			continue
		}
		out = append(out, leafLoc{leaf: top, top: t, item: -1})
	}
	return out
}

// topIndexOfLeaf returns the index in d.Blocks of the top-level block that
// contains (or is) the i-th leaf, or -1 when out of range.
func (d *Document) topIndexOfLeaf(i int) int {
	for t, top := range d.Blocks {
		if top.Kind.IsList() {
			if i < len(top.Blocks) {
				return t
			}
			i -= len(top.Blocks)
			continue
		}
		if i == 0 {
			return t
		}
		i--
	}
	return -1
}

// Clamp snaps a position into the document's valid coordinate space.
func (d *Document) Clamp(p types.Position) types.Position {
	count := d.LeafCount()
	if p.Line < 0 {
		return types.Position{Line: 0, Col: 0}
	}
	if p.Line >= count {
		p.Line = count - 1
		p.Col = d.LeafLen(p.Line)
		return p
	}
	if p.Col < 0 {
		p.Col = 0
	} else if l := d.LeafLen(p.Line); p.Col > l {
		p.Col = l
	}
	return p
}

// Start returns the first valid position.
func (d *Document) Start() types.Position {
	return types.Position{Line: 0, Col: 0}
}

// End returns the position just past the last rune of the last leaf.
func (d *Document) End() types.Position {
	last := d.LeafCount() - 1
	return types.Position{Line: last, Col: d.LeafLen(last)}
}
