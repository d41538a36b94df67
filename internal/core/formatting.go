// internal/core/formatting.go
package core

import (
	"github.com/solenne/mailwright/internal/document"
	"github.com/solenne/mailwright/internal/event"
)

// FormatState summarizes the formatting in effect at the cursor or
// selection. The status bar renders it as the toolbar-button analog:
// indicators light up exactly when the matching toggle would clear.
type FormatState struct {
	Bold      bool
	Italic    bool
	Underline bool
	Code      bool
	Color     string // active color hex, "" when unset or mixed
	Block     document.Kind
}

// selectionRange builds the document range formatting operations work on:
// the active selection, or a caret range at the cursor.
func (e *Editor) selectionRange() *document.Range {
	if start, end, ok := e.selectionManager.GetSelection(); ok {
		return &document.Range{Start: start, End: end}
	}
	r := document.Caret(e.GetCursor())
	return &r
}

// FormatState queries the document for the formatting at the cursor or
// selection. The block kind reports the enclosing list container when the
// cursor sits on a list item.
func (e *Editor) FormatState() FormatState {
	sel := e.selectionRange()
	pos := e.doc.Clamp(e.GetCursor())

	kind := document.KindParagraph
	leaves := e.doc.Leaves()
	if pos.Line < len(leaves) {
		li := leaves[pos.Line]
		kind = li.Block.Kind
		if li.Container != nil {
			kind = li.Container.Kind
		}
	}

	return FormatState{
		Bold:      document.IsMarkActive(e.doc, sel, document.MarkBold),
		Italic:    document.IsMarkActive(e.doc, sel, document.MarkItalic),
		Underline: document.IsMarkActive(e.doc, sel, document.MarkUnderline),
		Code:      document.IsMarkActive(e.doc, sel, document.MarkCode),
		Color:     document.ActiveColor(e.doc, sel),
		Block:     kind,
	}
}

// IsMarkActive reports whether the mark is in effect at the selection.
func (e *Editor) IsMarkActive(mark document.Mark) bool {
	return document.IsMarkActive(e.doc, e.selectionRange(), mark)
}

// IsBlockActive reports whether the kind is on the selection's block path.
func (e *Editor) IsBlockActive(kind document.Kind) bool {
	return document.IsBlockActive(e.doc, e.selectionRange(), kind)
}

// ToggleMark toggles the mark over the selection, splitting edge runs so
// only selected text changes. It reports whether anything was applied; a
// bare caret applies nothing.
func (e *Editor) ToggleMark(mark document.Mark) bool {
	sel := e.selectionRange()
	if sel.IsCaret() {
		return false
	}
	e.historyManager.Record()
	document.ToggleMark(e.doc, sel, mark)
	e.dispatchFormatChanged()
	return true
}

// ToggleBlock re-kinds the blocks under the cursor or selection. Works at
// a caret: block formatting applies to whole blocks, not to runs.
func (e *Editor) ToggleBlock(kind document.Kind) {
	sel := e.selectionRange()
	e.historyManager.Record()
	document.ToggleBlock(e.doc, sel, kind)
	// Re-kinding can rewrap leaves; keep the cursor in bounds.
	e.SetCursor(e.GetCursor())
	e.dispatchFormatChanged()
}

// SetColor colors the selected text. An empty hex clears the color. It
// reports whether anything was applied; a bare caret applies nothing.
func (e *Editor) SetColor(hex string) bool {
	sel := e.selectionRange()
	if sel.IsCaret() {
		return false
	}
	e.historyManager.Record()
	document.SetColor(e.doc, sel, hex)
	e.dispatchFormatChanged()
	return true
}

// ClearColor removes the color from the selected text.
func (e *Editor) ClearColor() bool {
	return e.SetColor("")
}

func (e *Editor) dispatchFormatChanged() {
	if e.eventManager == nil {
		return
	}
	sel := e.selectionRange()
	start, end := e.doc.Clamp(sel.Start), e.doc.Clamp(sel.End)
	e.eventManager.Dispatch(event.TypeFormatChanged, event.FormatChangedData{
		Start: start,
		End:   end,
	})
}
