// internal/core/text/operations.go
package text

import (
	"github.com/solenne/mailwright/internal/core/history"
	"github.com/solenne/mailwright/internal/document"
	"github.com/solenne/mailwright/internal/event"
	"github.com/solenne/mailwright/internal/types"
)

// Operations handles text insertion/deletion on the document.
type Operations struct {
	editor EditorInterface
}

// EditorInterface defines editor methods needed.
type EditorInterface interface {
	Document() *document.Document
	GetCursor() types.Position
	SetCursor(pos types.Position)
	GetEventManager() *event.Manager
	ClearSelection()
	HasSelection() bool
	GetSelection() (start types.Position, end types.Position, ok bool)
	ScrollToCursor()
	GetHistoryManager() *history.Manager
}

// NewOperations creates a text operations manager.
func NewOperations(editor EditorInterface) *Operations {
	return &Operations{
		editor: editor,
	}
}

// InsertRune inserts a single rune at the cursor, replacing the selection
// if one is active. Newlines go through InsertBreak so block structure
// stays consistent.
func (o *Operations) InsertRune(r rune) error {
	if r == '\n' {
		return o.InsertNewLine()
	}

	doc := o.editor.Document()
	pos := o.editor.GetCursor()

	if o.editor.HasSelection() {
		start, end, _ := o.editor.GetSelection()
		o.recordSnapshot()
		pos = doc.DeleteRange(start, end)
		o.editor.ClearSelection()
	} else {
		// Bursts of plain typing coalesce into one undo step.
		o.recordTyping(pos)
	}

	after := doc.InsertText(pos, string(r))
	o.editor.SetCursor(after)
	o.editor.ScrollToCursor()
	o.dispatchModified(pos)
	return nil
}

// InsertNewLine splits the current block at the cursor. Inside a list the
// new block is a sibling list-item; everywhere else it keeps the kind of
// the block it split from.
func (o *Operations) InsertNewLine() error {
	doc := o.editor.Document()
	pos := o.editor.GetCursor()

	o.recordSnapshot()
	if o.editor.HasSelection() {
		start, end, _ := o.editor.GetSelection()
		pos = doc.DeleteRange(start, end)
		o.editor.ClearSelection()
	}

	after := doc.InsertBreak(pos)
	o.editor.SetCursor(after)
	o.editor.ScrollToCursor()
	o.dispatchModified(pos)
	return nil
}

// DeleteBackward deletes the rune before the cursor, or the active
// selection. At the start of a leaf it joins the leaf onto the previous
// one; at the very start of the document it does nothing.
func (o *Operations) DeleteBackward() error {
	doc := o.editor.Document()
	cursor := o.editor.GetCursor()

	if o.editor.HasSelection() {
		start, end, _ := o.editor.GetSelection()
		o.recordSnapshot()
		o.editor.ClearSelection()
		after := doc.DeleteRange(start, end)
		o.editor.SetCursor(after)
		o.editor.ScrollToCursor()
		o.dispatchModified(after)
		return nil
	}

	start := cursor
	switch {
	case cursor.Col > 0:
		start.Col--
	case cursor.Line > 0:
		start.Line--
		start.Col = doc.LeafLen(start.Line)
	default:
		return nil // At beginning of document, nothing to delete
	}

	o.recordSnapshot()
	after := doc.DeleteRange(start, cursor)
	o.editor.SetCursor(after)
	o.editor.ScrollToCursor()
	o.dispatchModified(after)
	return nil
}

// DeleteForward deletes the rune after the cursor, or the active selection.
// At the end of a leaf it joins the next leaf on; at the very end of the
// document it does nothing.
func (o *Operations) DeleteForward() error {
	doc := o.editor.Document()
	cursor := o.editor.GetCursor()

	if o.editor.HasSelection() {
		start, end, _ := o.editor.GetSelection()
		o.recordSnapshot()
		o.editor.ClearSelection()
		after := doc.DeleteRange(start, end)
		o.editor.SetCursor(after)
		o.editor.ScrollToCursor()
		o.dispatchModified(after)
		return nil
	}

	end := cursor
	switch {
	case cursor.Col < doc.LeafLen(cursor.Line):
		end.Col++
	case cursor.Line < doc.LeafCount()-1:
		end.Line++
		end.Col = 0
	default:
		return nil // At end of document, nothing to delete
	}

	o.recordSnapshot()
	after := doc.DeleteRange(cursor, end)
	o.editor.SetCursor(after)
	o.editor.ScrollToCursor()
	o.dispatchModified(after)
	return nil
}

func (o *Operations) recordSnapshot() {
	if h := o.editor.GetHistoryManager(); h != nil {
		h.Record()
	}
}

func (o *Operations) recordTyping(pos types.Position) {
	if h := o.editor.GetHistoryManager(); h != nil {
		h.RecordTyping(pos)
	}
}

func (o *Operations) dispatchModified(start types.Position) {
	if mgr := o.editor.GetEventManager(); mgr != nil {
		mgr.Dispatch(event.TypeDocumentModified, event.DocumentModifiedData{Start: start})
	}
}
