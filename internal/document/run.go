// internal/document/run.go
package document

import "unicode/utf8"

// Mark identifies a boolean formatting attribute on a run.
type Mark int

const (
	MarkBold Mark = iota
	MarkItalic
	MarkUnderline
	MarkCode
)

// String returns the canonical mark name.
func (m Mark) String() string {
	switch m {
	case MarkBold:
		return "bold"
	case MarkItalic:
		return "italic"
	case MarkUnderline:
		return "underline"
	case MarkCode:
		return "code"
	default:
		return "unknown"
	}
}

// MarkFromName maps a canonical name back to its Mark.
func MarkFromName(name string) (Mark, bool) {
	switch name {
	case "bold":
		return MarkBold, true
	case "italic":
		return MarkItalic, true
	case "underline":
		return MarkUnderline, true
	case "code":
		return MarkCode, true
	default:
		return MarkBold, false
	}
}

// Run is the atomic unit of formatting: a stretch of text carrying a uniform
// set of marks and an optional color. Marks never nest within a run.
type Run struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
	Code      bool
	Color     string // "#rrggbb", empty when unset
}

// Len returns the rune length of the run's text.
func (r Run) Len() int {
	return utf8.RuneCountInString(r.Text)
}

// HasMark reports whether the given mark is set.
// Unrecognized marks report false.
func (r Run) HasMark(m Mark) bool {
	switch m {
	case MarkBold:
		return r.Bold
	case MarkItalic:
		return r.Italic
	case MarkUnderline:
		return r.Underline
	case MarkCode:
		return r.Code
	default:
		return false
	}
}

// SetMark sets or clears the given mark. Unrecognized marks are ignored.
func (r *Run) SetMark(m Mark, on bool) {
	switch m {
	case MarkBold:
		r.Bold = on
	case MarkItalic:
		r.Italic = on
	case MarkUnderline:
		r.Underline = on
	case MarkCode:
		r.Code = on
	}
}

// sameAttrs reports whether two runs carry identical formatting,
// ignoring text. Adjacent runs with the same attrs are merged on normalize.
func (r Run) sameAttrs(o Run) bool {
	return r.Bold == o.Bold &&
		r.Italic == o.Italic &&
		r.Underline == o.Underline &&
		r.Code == o.Code &&
		r.Color == o.Color
}
