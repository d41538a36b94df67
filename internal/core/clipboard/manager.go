// internal/core/clipboard/manager.go
package clipboard

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/solenne/mailwright/internal/core/history"
	"github.com/solenne/mailwright/internal/document"
	"github.com/solenne/mailwright/internal/event"
	"github.com/solenne/mailwright/internal/logger"
	"github.com/solenne/mailwright/internal/types"
)

// Manager handles copy/cut/paste through an internal register, mirrored to
// the system clipboard when enabled. The mirror is best-effort: on headless
// systems every operation still works against the register.
type Manager struct {
	editor        EditorInterface
	register      string
	systemEnabled bool
}

// EditorInterface defines methods needed from the editor.
type EditorInterface interface {
	Document() *document.Document
	GetCursor() types.Position
	SetCursor(pos types.Position)
	GetSelection() (start types.Position, end types.Position, ok bool)
	ClearSelection()
	GetEventManager() *event.Manager
	ScrollToCursor()
	GetHistoryManager() *history.Manager
}

// NewManager creates a new clipboard manager.
func NewManager(editor EditorInterface) *Manager {
	return &Manager{
		editor: editor,
	}
}

// SetSystemEnabled toggles mirroring to the system clipboard.
func (m *Manager) SetSystemEnabled(enabled bool) {
	m.systemEnabled = enabled
}

// CopySelection copies the selected plain text. Formatting is not carried;
// the register holds text the way the game's paste box would receive it.
func (m *Manager) CopySelection() (bool, error) {
	start, end, ok := m.editor.GetSelection()
	if !ok {
		return false, nil // Not an error, just nothing to copy
	}

	content := m.editor.Document().TextRange(start, end)
	m.register = content
	m.mirrorToSystem(content)
	logger.DebugTagf("core", "ClipboardManager: Copied %d bytes", len(content))

	m.editor.ClearSelection()
	return true, nil
}

// CutSelection copies the selected text and deletes it from the document.
func (m *Manager) CutSelection() (bool, error) {
	start, end, ok := m.editor.GetSelection()
	if !ok {
		return false, nil
	}

	doc := m.editor.Document()
	content := doc.TextRange(start, end)

	if h := m.editor.GetHistoryManager(); h != nil {
		h.Record()
	}
	m.editor.ClearSelection()
	after := doc.DeleteRange(start, end)

	m.register = content
	m.mirrorToSystem(content)
	logger.DebugTagf("core", "ClipboardManager: Cut %d bytes", len(content))

	m.editor.SetCursor(after)
	m.editor.ScrollToCursor()
	if mgr := m.editor.GetEventManager(); mgr != nil {
		mgr.Dispatch(event.TypeDocumentModified, event.DocumentModifiedData{Start: after})
	}
	return true, nil
}

// Paste inserts clipboard content at the cursor, replacing the selection
// if one is active. Multi-line content splits blocks the way typing the
// newlines would.
func (m *Manager) Paste() (bool, error) {
	content := m.readContent()
	if content == "" {
		return false, nil
	}

	doc := m.editor.Document()
	pos := m.editor.GetCursor()

	if h := m.editor.GetHistoryManager(); h != nil {
		h.Record()
	}
	if start, end, ok := m.editor.GetSelection(); ok {
		m.editor.ClearSelection()
		pos = doc.DeleteRange(start, end)
	}

	after := insertMultiline(doc, pos, content)
	m.editor.SetCursor(after)
	m.editor.ScrollToCursor()

	logger.DebugTagf("core", "ClipboardManager: Pasted %d bytes", len(content))
	if mgr := m.editor.GetEventManager(); mgr != nil {
		mgr.Dispatch(event.TypeDocumentModified, event.DocumentModifiedData{Start: pos})
	}
	return true, nil
}

// CopyText places arbitrary text (exported markup) in the register and the
// system clipboard. The returned error reports a failed system write; the
// register is filled regardless.
func (m *Manager) CopyText(text string) error {
	m.register = text
	if !m.systemEnabled {
		return nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("system clipboard write failed: %w", err)
	}
	return nil
}

// ReadText returns the system clipboard content when enabled and readable,
// falling back to the internal register.
func (m *Manager) ReadText() (string, bool) {
	if m.systemEnabled {
		if content, err := clipboard.ReadAll(); err == nil && content != "" {
			return content, true
		} else if err != nil {
			logger.DebugTagf("core", "ClipboardManager: system read failed: %v", err)
		}
	}
	return m.register, m.register != ""
}

// readContent picks the paste source: system clipboard when enabled and
// non-empty, internal register otherwise.
func (m *Manager) readContent() string {
	content, _ := m.ReadText()
	return content
}

func (m *Manager) mirrorToSystem(content string) {
	if !m.systemEnabled {
		return
	}
	if err := clipboard.WriteAll(content); err != nil {
		logger.Warnf("ClipboardManager: system clipboard write failed: %v", err)
	}
}

// insertMultiline inserts text at pos, translating newlines into block
// breaks, and returns the position after the last inserted rune.
func insertMultiline(doc *document.Document, pos types.Position, content string) types.Position {
	lines := strings.Split(content, "\n")
	cur := doc.InsertText(pos, lines[0])
	for _, line := range lines[1:] {
		cur = doc.InsertBreak(cur)
		cur = doc.InsertText(cur, line)
	}
	return cur
}
