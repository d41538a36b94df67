// internal/core/find/manager.go
package find

import (
	"strings"
	"sync"

	"github.com/solenne/mailwright/internal/document"
	"github.com/solenne/mailwright/internal/logger"
	"github.com/solenne/mailwright/internal/types"
	"github.com/solenne/mailwright/internal/utils"
)

// EditorInterface defines methods the find manager needs from the editor.
type EditorInterface interface {
	Document() *document.Document
	GetCursor() types.Position
}

// Manager handles plain-text search and match highlighting. Search terms
// are matched literally; mail text has no use for patterns and a literal
// scan can never fail on user input.
type Manager struct {
	editor  EditorInterface
	mutex   sync.RWMutex
	term    string
	matches []types.HighlightRegion
}

// NewManager creates a find manager.
func NewManager(editor EditorInterface) *Manager {
	return &Manager{
		editor: editor,
	}
}

// HighlightMatches scans every leaf for the term and stores all matches
// for highlighting. It returns the number of matches found. An empty term
// clears the search state.
func (m *Manager) HighlightMatches(term string) int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.term = term
	m.matches = m.matches[:0]
	if term == "" {
		return 0
	}

	doc := m.editor.Document()
	count := doc.LeafCount()
	for line := 0; line < count; line++ {
		text := doc.LeafText(line)
		from := 0
		for {
			idx := strings.Index(text[from:], term)
			if idx < 0 {
				break
			}
			byteStart := from + idx
			byteEnd := byteStart + len(term)
			m.matches = append(m.matches, types.HighlightRegion{
				Start: types.Position{Line: line, Col: utils.ByteOffsetToRuneIndex(text, byteStart)},
				End:   types.Position{Line: line, Col: utils.ByteOffsetToRuneIndex(text, byteEnd)},
				Type:  types.HighlightSearch,
			})
			from = byteEnd // Non-overlapping matches
		}
	}

	logger.DebugTagf("core", "FindManager: %d matches for %q", len(m.matches), term)
	return len(m.matches)
}

// FindNext returns the match adjacent to the cursor in the given
// direction, wrapping around the document. The third return reports
// whether the search wrapped.
func (m *Manager) FindNext(forward bool) (types.Position, bool, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if len(m.matches) == 0 {
		return types.Position{}, false, false
	}

	cursor := m.editor.GetCursor()
	if forward {
		for _, match := range m.matches {
			if types.ComparePos(match.Start, cursor) > 0 {
				return match.Start, true, false
			}
		}
		return m.matches[0].Start, true, true
	}

	for i := len(m.matches) - 1; i >= 0; i-- {
		if types.ComparePos(m.matches[i].Start, cursor) < 0 {
			return m.matches[i].Start, true, false
		}
	}
	return m.matches[len(m.matches)-1].Start, true, true
}

// Term returns the current search term.
func (m *Manager) Term() string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.term
}

// ClearHighlights removes search highlight regions.
func (m *Manager) ClearHighlights() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if len(m.matches) > 0 {
		logger.DebugTagf("core", "FindManager: Clearing %d search highlights", len(m.matches))
	}
	m.term = ""
	m.matches = m.matches[:0]
}

// HasHighlights checks if there are any search highlights.
func (m *Manager) HasHighlights() bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.matches) > 0
}

// GetHighlights returns a copy of the current search highlight regions.
func (m *Manager) GetHighlights() []types.HighlightRegion {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	highlights := make([]types.HighlightRegion, len(m.matches))
	copy(highlights, m.matches)
	return highlights
}
