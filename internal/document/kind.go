// internal/document/kind.go
package document

// Kind identifies the structural role of a block. It is a closed set:
// operations switch over it exhaustively and route anything unrecognized
// through an explicit default branch.
type Kind int

const (
	KindParagraph Kind = iota
	KindHeading1
	KindHeading2
	KindBlockQuote
	KindBulletedList
	KindNumberedList
	KindListItem
)

// IsList reports whether the kind is a list container.
func (k Kind) IsList() bool {
	return k == KindBulletedList || k == KindNumberedList
}

// String returns the canonical name, also used by commands and config.
func (k Kind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindHeading1:
		return "heading-1"
	case KindHeading2:
		return "heading-2"
	case KindBlockQuote:
		return "block-quote"
	case KindBulletedList:
		return "bulleted-list"
	case KindNumberedList:
		return "numbered-list"
	case KindListItem:
		return "list-item"
	default:
		return "unknown"
	}
}

// KindFromName maps a canonical name back to its Kind.
// Unrecognized names report ok=false; callers fall back rather than fail.
func KindFromName(name string) (Kind, bool) {
	switch name {
	case "paragraph":
		return KindParagraph, true
	case "heading-1":
		return KindHeading1, true
	case "heading-2":
		return KindHeading2, true
	case "block-quote":
		return KindBlockQuote, true
	case "bulleted-list":
		return KindBulletedList, true
	case "numbered-list":
		return KindNumberedList, true
	case "list-item":
		return KindListItem, true
	default:
		return KindParagraph, false
	}
}
