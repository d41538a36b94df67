// internal/markup/escape.go
package markup

import "strings"

// entities maps the escape sequences the grammar defines to the characters
// they stand for. The set is closed; the game's renderer knows no others.
var entities = map[string]byte{
	"&amp;":  '&',
	"&lt;":   '<',
	"&gt;":   '>',
	"&quot;": '"',
	"&#39;":  '\'',
}

// escape replaces the characters the markup grammar reserves with their
// entity forms so literal text can never open or close a tag.
func escape(s string) string {
	if !strings.ContainsAny(s, "<>&\"'") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for _, r := range s {
		switch r {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '"':
			sb.WriteString("&quot;")
		case '\'':
			sb.WriteString("&#39;")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// unescape decodes the entities escape produces. Text that merely looks
// like an entity but is not one of the five passes through untouched.
func unescape(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '&' {
			if ch, n := matchEntity(s[i:]); n > 0 {
				sb.WriteByte(ch)
				i += n
				continue
			}
		}
		sb.WriteByte(s[i])
		i++
	}
	return sb.String()
}

func matchEntity(s string) (byte, int) {
	for ent, ch := range entities {
		if strings.HasPrefix(s, ent) {
			return ch, len(ent)
		}
	}
	return 0, 0
}
