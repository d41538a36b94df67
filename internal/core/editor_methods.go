// internal/core/editor_methods.go
package core

import (
	"github.com/solenne/mailwright/internal/core/history"
	"github.com/solenne/mailwright/internal/event"
	"github.com/solenne/mailwright/internal/logger"
	"github.com/solenne/mailwright/internal/types"
)

// Text operation methods delegated to textOps

func (e *Editor) InsertRune(r rune) error {
	if e.textOps == nil {
		logger.Warnf("Editor.InsertRune: textOps manager is nil")
		return nil
	}
	return e.textOps.InsertRune(r)
}

func (e *Editor) InsertNewLine() error {
	if e.textOps == nil {
		logger.Warnf("Editor.InsertNewLine: textOps manager is nil")
		return nil
	}
	return e.textOps.InsertNewLine()
}

func (e *Editor) DeleteBackward() error {
	if e.textOps == nil {
		logger.Warnf("Editor.DeleteBackward: textOps manager is nil")
		return nil
	}
	return e.textOps.DeleteBackward()
}

func (e *Editor) DeleteForward() error {
	if e.textOps == nil {
		logger.Warnf("Editor.DeleteForward: textOps manager is nil")
		return nil
	}
	return e.textOps.DeleteForward()
}

// Cursor operations delegated to cursorManager

func (e *Editor) MoveCursor(deltaLine, deltaCol int) {
	e.cursorManager.Move(deltaLine, deltaCol)

	// Update selection end if we're selecting
	if e.selectionManager.IsSelecting() {
		e.selectionManager.UpdateSelectionEnd()
	}

	logger.DebugTagf("core", "MoveCursor: Delta(%d,%d) → NewCursor(%d,%d)",
		deltaLine, deltaCol, e.GetCursor().Line, e.GetCursor().Col)
}

func (e *Editor) PageMove(deltaPages int) {
	e.cursorManager.PageMove(deltaPages)

	if e.selectionManager.IsSelecting() {
		e.selectionManager.UpdateSelectionEnd()
	}
}

func (e *Editor) Home() {
	e.cursorManager.MoveToLineStart()

	if e.selectionManager.IsSelecting() {
		e.selectionManager.UpdateSelectionEnd()
	}
}

func (e *Editor) End() {
	e.cursorManager.MoveToLineEnd()

	if e.selectionManager.IsSelecting() {
		e.selectionManager.UpdateSelectionEnd()
	}
}

// --- Selection ---

// StartOrUpdateSelection anchors a selection at the cursor, or extends an
// active one to it.
func (e *Editor) StartOrUpdateSelection() {
	e.selectionManager.StartOrUpdateSelection()
	e.dispatchSelectionChanged()
}

// ClearSelection drops any active selection.
func (e *Editor) ClearSelection() {
	hadSelection := e.selectionManager.IsSelecting()
	e.selectionManager.ClearSelection()
	if hadSelection {
		e.dispatchSelectionChanged()
	}
}

// HasSelection reports whether a non-empty selection is active.
func (e *Editor) HasSelection() bool {
	return e.selectionManager.HasSelection()
}

// GetSelection returns the normalized selection range.
func (e *Editor) GetSelection() (start types.Position, end types.Position, ok bool) {
	return e.selectionManager.GetSelection()
}

// SelectAll selects the whole document and moves the cursor to its end.
func (e *Editor) SelectAll() {
	e.selectionManager.Set(e.doc.Start(), e.doc.End())
	e.cursorManager.SetPosition(e.doc.End())
	e.dispatchSelectionChanged()
}

func (e *Editor) dispatchSelectionChanged() {
	if e.eventManager == nil {
		return
	}
	start, end, ok := e.selectionManager.GetSelection()
	e.eventManager.Dispatch(event.TypeSelectionChanged, event.SelectionChangedData{
		Start:  start,
		End:    end,
		Active: ok,
	})
}

// --- Clipboard ---

func (e *Editor) CopySelection() (bool, error) {
	if e.clipboardManager == nil {
		logger.Warnf("Editor.CopySelection: clipboardManager is nil")
		return false, nil
	}
	return e.clipboardManager.CopySelection()
}

func (e *Editor) CutSelection() (bool, error) {
	if e.clipboardManager == nil {
		logger.Warnf("Editor.CutSelection: clipboardManager is nil")
		return false, nil
	}
	return e.clipboardManager.CutSelection()
}

func (e *Editor) Paste() (bool, error) {
	if e.clipboardManager == nil {
		logger.Warnf("Editor.Paste: clipboardManager is nil")
		return false, nil
	}
	return e.clipboardManager.Paste()
}

// CopyText delivers arbitrary text (exported markup) to the clipboard.
func (e *Editor) CopyText(text string) error {
	return e.clipboardManager.CopyText(text)
}

// ReadClipboardText returns clipboard content for import.
func (e *Editor) ReadClipboardText() (string, bool) {
	return e.clipboardManager.ReadText()
}

// --- Find ---

// HighlightMatches scans for the term and returns the match count.
func (e *Editor) HighlightMatches(term string) int {
	return e.findManager.HighlightMatches(term)
}

// FindNext moves toward the adjacent match, wrapping around. It returns
// the match position, whether one exists, and whether the search wrapped.
func (e *Editor) FindNext(forward bool) (types.Position, bool, bool) {
	return e.findManager.FindNext(forward)
}

// SearchTerm returns the active search term.
func (e *Editor) SearchTerm() string {
	return e.findManager.Term()
}

// ClearHighlights removes all search highlights.
func (e *Editor) ClearHighlights() {
	e.findManager.ClearHighlights()
}

// HasHighlights reports whether search highlights are active.
func (e *Editor) HasHighlights() bool {
	return e.findManager.HasHighlights()
}

// GetHighlights returns the current search highlight regions (for drawing).
func (e *Editor) GetHighlights() []types.HighlightRegion {
	return e.findManager.GetHighlights()
}

// --- History ---

// GetHistoryManager exposes the history manager to the operation managers.
func (e *Editor) GetHistoryManager() *history.Manager {
	return e.historyManager
}

// Undo reverts the last edit. Returns false when there is nothing to undo.
func (e *Editor) Undo() bool {
	return e.historyManager.Undo()
}

// Redo reapplies the last undone edit.
func (e *Editor) Redo() bool {
	return e.historyManager.Redo()
}

// CanUndo reports whether an undo step exists.
func (e *Editor) CanUndo() bool {
	return e.historyManager.CanUndo()
}

// CanRedo reports whether a redo step exists.
func (e *Editor) CanRedo() bool {
	return e.historyManager.CanRedo()
}
