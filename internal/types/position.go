// internal/types/position.go
package types

// Position represents a cursor or text position within the document.
// Line is the 0-based index of a leaf block (list items count individually).
// Col is the 0-based column (rune) index within the leaf's text.
// Using rune indexes keeps positions stable across multi-byte input.
type Position struct {
	Line int
	Col  int // Rune index
}

// ComparePos orders two positions in document order.
// Returns -1 if a precedes b, 0 if equal, 1 if a follows b.
func ComparePos(a, b Position) int {
	if a.Line != b.Line {
		if a.Line < b.Line {
			return -1
		}
		return 1
	}
	switch {
	case a.Col < b.Col:
		return -1
	case a.Col > b.Col:
		return 1
	}
	return 0
}
