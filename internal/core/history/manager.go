// internal/core/history/manager.go
package history

import (
	"sync"

	"github.com/solenne/mailwright/internal/document"
	"github.com/solenne/mailwright/internal/logger"
	"github.com/solenne/mailwright/internal/types"
)

const DefaultMaxHistory = 100

// EditorInterface defines the methods the history manager needs from the editor.
type EditorInterface interface {
	Document() *document.Document
	GetCursor() types.Position
	RestoreDocument(doc *document.Document, cursor types.Position)
}

// Manager handles the undo/redo stacks.
type Manager struct {
	editor     EditorInterface
	undo       []Snapshot
	redo       []Snapshot
	maxHistory int
	mutex      sync.Mutex

	// Typing coalescing state: consecutive single-rune inserts into the
	// same leaf collapse into one undo step.
	lastTyping bool
	lastLine   int
}

// NewManager creates a history manager.
func NewManager(editor EditorInterface, maxHistory int) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager{
		editor:     editor,
		undo:       make([]Snapshot, 0, maxHistory),
		maxHistory: maxHistory,
	}
}

// Record pushes a snapshot of the current state onto the undo stack,
// clearing any redo history. Call it before mutating the document.
func (m *Manager) Record() {
	m.record(false, 0)
}

// RecordTyping records like Record but coalesces with the previous step
// when that step was also typing into the same leaf, so undoing a burst of
// typed characters takes one step instead of one per rune.
func (m *Manager) RecordTyping(pos types.Position) {
	m.record(true, pos.Line)
}

func (m *Manager) record(typing bool, line int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if typing && m.lastTyping && m.lastLine == line && len(m.redo) == 0 && len(m.undo) > 0 {
		return // Coalesce into the previous typing snapshot
	}

	snap := Snapshot{
		Doc:    m.editor.Document().Clone(),
		Cursor: m.editor.GetCursor(),
	}
	m.undo = append(m.undo, snap)

	// Limit history size (FIFO eviction of the oldest steps)
	if len(m.undo) > m.maxHistory {
		m.undo = m.undo[len(m.undo)-m.maxHistory:]
	}

	if len(m.redo) > 0 {
		m.redo = m.redo[:0]
	}

	m.lastTyping = typing
	m.lastLine = line

	logger.DebugTagf("history", "Recorded snapshot. Undo depth: %d", len(m.undo))
}

// Undo restores the most recent snapshot, moving the current state onto
// the redo stack. Returns false when there is nothing to undo.
func (m *Manager) Undo() bool {
	m.mutex.Lock()
	if len(m.undo) == 0 {
		m.mutex.Unlock()
		logger.DebugTagf("history", "Nothing to undo")
		return false
	}

	snap := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.redo = append(m.redo, Snapshot{
		Doc:    m.editor.Document().Clone(),
		Cursor: m.editor.GetCursor(),
	})
	m.lastTyping = false
	undoDepth, redoDepth := len(m.undo), len(m.redo)
	m.mutex.Unlock()

	// Restore outside the lock: the editor dispatches events and handlers
	// may call back into CanUndo/CanRedo.
	m.editor.RestoreDocument(snap.Doc, snap.Cursor)
	logger.DebugTagf("history", "Undo applied. Undo depth: %d, Redo depth: %d", undoDepth, redoDepth)
	return true
}

// Redo reapplies the most recently undone snapshot.
func (m *Manager) Redo() bool {
	m.mutex.Lock()
	if len(m.redo) == 0 {
		m.mutex.Unlock()
		logger.DebugTagf("history", "Nothing to redo")
		return false
	}

	snap := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	m.undo = append(m.undo, Snapshot{
		Doc:    m.editor.Document().Clone(),
		Cursor: m.editor.GetCursor(),
	})
	m.lastTyping = false
	undoDepth, redoDepth := len(m.undo), len(m.redo)
	m.mutex.Unlock()

	m.editor.RestoreDocument(snap.Doc, snap.Cursor)
	logger.DebugTagf("history", "Redo applied. Undo depth: %d, Redo depth: %d", undoDepth, redoDepth)
	return true
}

// Clear resets both stacks. Call this when the document is replaced.
func (m *Manager) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.undo = m.undo[:0]
	m.redo = m.redo[:0]
	m.lastTyping = false
	logger.DebugTagf("history", "Cleared")
}

// CanUndo returns true if there are snapshots to undo.
func (m *Manager) CanUndo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.undo) > 0
}

// CanRedo returns true if there are snapshots to redo.
func (m *Manager) CanRedo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.redo) > 0
}
