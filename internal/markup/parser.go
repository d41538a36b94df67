// internal/markup/parser.go
package markup

import (
	"strings"

	"github.com/solenne/mailwright/internal/document"
)

// Parse converts mail markup back into a document, one block per line. It
// is tolerant by construction: only the grammar's five tags are
// recognized, anything else survives as literal text, and no input fails.
// Inline state (bold, italic, color) carries across lines the way the
// game renders unterminated tags; size tags act per line and turn it into
// the matching heading. List and quote structure is not representable in
// the markup, so imported documents contain only flat blocks.
func Parse(s string) *document.Document {
	lines := strings.Split(s, "\n")
	// The trailing newline is the last block's terminator, not an extra
	// empty block.
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	doc := &document.Document{}
	var st inlineState
	for _, line := range lines {
		doc.Blocks = append(doc.Blocks, parseLine(line, &st))
	}
	if len(doc.Blocks) == 0 {
		doc.Blocks = append(doc.Blocks, document.NewParagraph(""))
	}
	return doc
}

// inlineState tracks open inline tags between lines. Bold and italic nest
// by count, colors by stack; the innermost open color wins.
type inlineState struct {
	bold   int
	italic int
	colors []string
}

func (st *inlineState) run(text string) document.Run {
	r := document.Run{Text: text, Bold: st.bold > 0, Italic: st.italic > 0}
	if len(st.colors) > 0 {
		r.Color = st.colors[len(st.colors)-1]
	}
	return r
}

func parseLine(line string, st *inlineState) *document.Block {
	kind := document.KindParagraph
	var runs []document.Run
	var text strings.Builder
	flush := func() {
		if text.Len() == 0 {
			return
		}
		runs = append(runs, st.run(unescape(text.String())))
		text.Reset()
	}
	for i := 0; i < len(line); {
		if line[i] == '<' {
			if tag, n := scanTag(line[i:]); n > 0 {
				flush()
				switch {
				case tag == "b":
					st.bold++
				case tag == "/b":
					if st.bold > 0 {
						st.bold--
					}
				case tag == "i":
					st.italic++
				case tag == "/i":
					if st.italic > 0 {
						st.italic--
					}
				case tag == "size=40":
					kind = document.KindHeading1
				case tag == "size=20":
					kind = document.KindHeading2
				case tag == "/size":
					// Closes the heading wrapper; the kind stays.
				case tag == "/color":
					if n := len(st.colors); n > 0 {
						st.colors = st.colors[:n-1]
					}
				default:
					st.colors = append(st.colors, strings.TrimPrefix(tag, "color="))
				}
				i += n
				continue
			}
		}
		text.WriteByte(line[i])
		i++
	}
	flush()
	if len(runs) == 0 {
		runs = []document.Run{{}}
	}
	return &document.Block{Kind: kind, Runs: runs}
}

// scanTag reads a recognized tag at the start of s and returns its inner
// text and consumed length. Unknown or malformed tags return zero so the
// caller treats the '<' as literal text.
func scanTag(s string) (string, int) {
	end := strings.IndexByte(s, '>')
	if end <= 1 {
		return "", 0
	}
	inner := s[1:end]
	switch inner {
	case "b", "/b", "i", "/i", "size=40", "size=20", "/size", "/color":
		return inner, end + 1
	}
	if hex, ok := colorTagHex(inner); ok {
		return "color=" + hex, end + 1
	}
	return "", 0
}

// colorTagHex validates a color=#rrggbb tag body and returns the hex part
// lowercased, leading '#' included.
func colorTagHex(inner string) (string, bool) {
	const prefix = "color=#"
	if len(inner) != len(prefix)+6 || !strings.HasPrefix(inner, prefix) {
		return "", false
	}
	hex := inner[len(prefix):]
	for i := 0; i < len(hex); i++ {
		c := hex[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return "", false
		}
	}
	return "#" + strings.ToLower(hex), true
}
