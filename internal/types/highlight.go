// internal/types/highlight.go
package types

// HighlightType distinguishes what a highlight region marks.
type HighlightType int

const (
	HighlightSearch HighlightType = iota // Search match highlight
)

// HighlightRegion defines a region of the document to be highlighted.
// Start and End use leaf/rune coordinates like cursor positions; End.Col
// is exclusive.
type HighlightRegion struct {
	Start Position
	End   Position
	Type  HighlightType
}
