// internal/core/cursor/manager.go
package cursor

import (
	"github.com/solenne/mailwright/internal/document"
	"github.com/solenne/mailwright/internal/types"
)

// Editor is the interface the cursor manager expects from the editor.
type Editor interface {
	Document() *document.Document
	ScrollOff() int
}

// Manager handles cursor positioning and viewport management. Positions
// address leaves by Line and runes by Col; clamping goes through the
// document so the cursor can never point outside it.
type Manager struct {
	editor      Editor
	position    types.Position
	viewportTop int
	viewWidth   int
	viewHeight  int
}

// NewManager creates a new cursor manager.
func NewManager(editor Editor) *Manager {
	return &Manager{
		editor:      editor,
		position:    types.Position{Line: 0, Col: 0},
		viewportTop: 0,
	}
}

// SetViewSize updates the view dimensions (content area, status bar excluded).
func (m *Manager) SetViewSize(width, height int) {
	m.viewWidth = width
	m.viewHeight = height
	m.ScrollToCursor()
}

// GetViewport returns the current viewport top leaf and height.
func (m *Manager) GetViewport() (int, int) {
	return m.viewportTop, m.viewHeight
}

// GetPosition returns the current cursor position.
func (m *Manager) GetPosition() types.Position {
	return m.position
}

// SetPosition sets the cursor position, clamped into the document.
func (m *Manager) SetPosition(pos types.Position) {
	m.position = m.editor.Document().Clamp(pos)
	m.ScrollToCursor()
}

// Move moves the cursor by the given delta. Horizontal movement wraps
// across leaf boundaries: right at the end of a leaf lands on the start of
// the next, left at the start lands on the end of the previous.
func (m *Manager) Move(deltaLine, deltaCol int) {
	doc := m.editor.Document()
	pos := m.position

	if deltaCol != 0 {
		pos.Col += deltaCol
		if pos.Col < 0 && pos.Line > 0 {
			pos.Line--
			pos.Col = doc.LeafLen(pos.Line)
		} else if l := doc.LeafLen(pos.Line); pos.Col > l && pos.Line < doc.LeafCount()-1 {
			pos.Line++
			pos.Col = 0
		}
	}
	if deltaLine != 0 {
		pos.Line += deltaLine
	}

	m.SetPosition(pos)
}

// PageMove moves the cursor by the given number of pages.
func (m *Manager) PageMove(deltaPages int) {
	if m.viewHeight <= 0 {
		return // View not initialized
	}
	m.Move(deltaPages*m.viewHeight, 0)
}

// MoveToLineStart moves the cursor to the start of the current leaf.
func (m *Manager) MoveToLineStart() {
	m.SetPosition(types.Position{Line: m.position.Line, Col: 0})
}

// MoveToLineEnd moves the cursor past the last rune of the current leaf.
func (m *Manager) MoveToLineEnd() {
	doc := m.editor.Document()
	m.SetPosition(types.Position{Line: m.position.Line, Col: doc.LeafLen(m.position.Line)})
}

// ScrollToCursor ensures the cursor is visible in the viewport.
func (m *Manager) ScrollToCursor() {
	if m.viewHeight <= 0 {
		// View not initialized yet
		return
	}

	scrollOff := m.editor.ScrollOff()
	if scrollOff*2 >= m.viewHeight {
		scrollOff = (m.viewHeight - 1) / 2
	}

	if m.position.Line < m.viewportTop+scrollOff {
		// Cursor is above the viewport plus scroll-off
		m.viewportTop = m.position.Line - scrollOff
		if m.viewportTop < 0 {
			m.viewportTop = 0
		}
	} else if m.position.Line >= m.viewportTop+m.viewHeight-scrollOff {
		// Cursor is below the viewport minus scroll-off
		m.viewportTop = m.position.Line - m.viewHeight + scrollOff + 1
		if m.viewportTop < 0 {
			m.viewportTop = 0
		}
	}
}
