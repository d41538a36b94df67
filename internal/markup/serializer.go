// internal/markup/serializer.go
// Package markup converts documents to and from the game's mail markup: a
// small fixed tag language (<b>, <i>, <size=40>, <size=20>, <color=#rrggbb>)
// with entity escapes for the characters the grammar reserves. The grammar
// has no representation for underline, code, lists or quotes; that text
// exports plain, and the omission is deliberate.
package markup

import (
	"strings"

	"github.com/solenne/mailwright/internal/document"
)

// Serialize converts a document into the game's mail markup. It is a pure
// tree walk: every block emits its serialized children followed by a
// newline, headings additionally wrap their content in a size tag, and any
// other kind, known or not, falls through to the plain branch. It cannot
// fail; there is no validation step.
func Serialize(d *document.Document) string {
	var sb strings.Builder
	for _, b := range d.Blocks {
		sb.WriteString(blockMarkup(b))
	}
	return sb.String()
}

// blockMarkup serializes one block, recursing through container children.
func blockMarkup(b *document.Block) string {
	var sb strings.Builder
	for _, child := range b.Blocks {
		sb.WriteString(blockMarkup(child))
	}
	for _, r := range b.Runs {
		sb.WriteString(runMarkup(r))
	}
	s := sb.String()
	switch b.Kind {
	case document.KindHeading1:
		return "<size=40>" + s + "</size>\n"
	case document.KindHeading2:
		return "<size=20>" + s + "</size>\n"
	default:
		return s + "\n"
	}
}

// runMarkup serializes one run: escaped text wrapped color-innermost, then
// italic, then bold, so the tags always read <b><i><color=…> left to
// right. The order is a frozen contract; exported strings are compared
// verbatim by the game's mail renderer and by tests.
func runMarkup(r document.Run) string {
	s := escape(r.Text)
	if r.Color != "" {
		s = "<color=" + r.Color + ">" + s + "</color>"
	}
	if r.Italic {
		s = "<i>" + s + "</i>"
	}
	if r.Bold {
		s = "<b>" + s + "</b>"
	}
	return s
}
