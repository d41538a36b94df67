// internal/modehandler/action.go
package modehandler

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/solenne/mailwright/internal/document"
	"github.com/solenne/mailwright/internal/event"
	"github.com/solenne/mailwright/internal/input"
	"github.com/solenne/mailwright/internal/logger"
)

// executeAction handles actions in ModeCompose.
func (mh *ModeHandler) executeAction(actionEvent input.ActionEvent, ev *tcell.EventKey) bool {
	actionProcessed := true
	originalCursor := mh.editor.GetCursor()
	action := actionEvent.Action

	isShift := false
	if ev != nil {
		isShift = ev.Modifiers()&tcell.ModShift != 0
	}

	// Determine if it's a movement action
	isMovementAction := false
	switch action {
	case input.ActionMoveUp, input.ActionMoveDown, input.ActionMoveLeft, input.ActionMoveRight,
		input.ActionMovePageUp, input.ActionMovePageDown, input.ActionMoveHome, input.ActionMoveEnd:
		isMovementAction = true
	}

	// Shift+movement starts or extends the selection; bare movement drops it.
	if isMovementAction && isShift {
		mh.editor.StartOrUpdateSelection()
	}
	if isMovementAction && !isShift {
		mh.editor.ClearSelection()
	}

	switch action {
	// --- Mode Switching ---
	case input.ActionEnterCommandMode:
		mh.editor.ClearSelection()
		mh.currentMode = ModeCommand
		mh.cmdBuffer = ""
		mh.statusBar.SetTemporaryMessage(":")
		logger.Debugf("ModeHandler: Entering Command Mode")

	case input.ActionFind:
		mh.editor.ClearSelection()
		mh.currentMode = ModeFind
		mh.findBuffer = ""
		mh.editor.ClearHighlights()
		mh.statusBar.SetTemporaryMessage("/")
		logger.Debugf("ModeHandler: Entering Find Mode")

	case input.ActionOpenPalette:
		mh.OpenColorPicker()

	case input.ActionTogglePreview:
		mh.EnterPreview()

	// --- Quit / Export ---
	case input.ActionQuit: // ESC
		if mh.editor.HasHighlights() {
			// ESC clears search highlights before anything else.
			mh.editor.ClearHighlights()
			mh.statusBar.SetTemporaryMessage("Highlights cleared")
		} else if mh.editor.HasSelection() {
			mh.editor.ClearSelection()
		} else if mh.isModified() && !mh.forceQuitPending {
			// Needs a redraw so the prompt is visible immediately.
			mh.statusBar.SetTemporaryMessage("Not exported! Press ESC again or Ctrl+Q to discard and quit.")
			mh.forceQuitPending = true
		} else {
			close(mh.quitSignal)
			actionProcessed = false
		}
	case input.ActionForceQuit:
		close(mh.quitSignal)
		actionProcessed = false

	case input.ActionExport:
		mh.exportMarkup()

	// --- Movement ---
	case input.ActionMoveUp:
		mh.editor.MoveCursor(-1, 0)
	case input.ActionMoveDown:
		mh.editor.MoveCursor(1, 0)
	case input.ActionMoveLeft:
		mh.editor.MoveCursor(0, -1)
	case input.ActionMoveRight:
		mh.editor.MoveCursor(0, 1)
	case input.ActionMovePageUp:
		mh.editor.PageMove(-1)
	case input.ActionMovePageDown:
		mh.editor.PageMove(1)
	case input.ActionMoveHome:
		mh.editor.Home()
	case input.ActionMoveEnd:
		mh.editor.End()
	case input.ActionSelectAll:
		mh.editor.SelectAll()

	// --- Clipboard ---
	case input.ActionCopy:
		copied, err := mh.editor.CopySelection()
		if err != nil {
			mh.statusBar.SetTemporaryMessage("Copy failed: %v", err)
			logger.Debugf("Copy error: %v", err)
			actionProcessed = false
		} else if copied {
			mh.statusBar.SetTemporaryMessage("Selection copied")
		} else {
			mh.statusBar.SetTemporaryMessage("Nothing selected to copy")
		}

	case input.ActionCut:
		cut, err := mh.editor.CutSelection()
		if err != nil {
			mh.statusBar.SetTemporaryMessage("Cut failed: %v", err)
			logger.Debugf("Cut error: %v", err)
			actionProcessed = false
		} else if cut {
			mh.statusBar.SetTemporaryMessage("Selection cut")
		} else {
			mh.statusBar.SetTemporaryMessage("Nothing selected to cut")
		}

	case input.ActionPaste:
		pasted, err := mh.editor.Paste()
		if err != nil {
			mh.statusBar.SetTemporaryMessage("Paste failed: %v", err)
			logger.Debugf("Paste error: %v", err)
			actionProcessed = false
		} else if !pasted {
			mh.statusBar.SetTemporaryMessage("Clipboard empty - nothing to paste")
			actionProcessed = false
		}

	// --- History ---
	case input.ActionUndo:
		if mh.editor.Undo() {
			mh.statusBar.SetTemporaryMessage("Undo")
		} else {
			mh.statusBar.SetTemporaryMessage("Nothing to undo")
			actionProcessed = false
		}
	case input.ActionRedo:
		if mh.editor.Redo() {
			mh.statusBar.SetTemporaryMessage("Redo")
		} else {
			mh.statusBar.SetTemporaryMessage("Nothing to redo")
			actionProcessed = false
		}

	// --- Inline Marks ---
	case input.ActionToggleBold:
		mh.toggleMark(document.MarkBold)
	case input.ActionToggleItalic:
		mh.toggleMark(document.MarkItalic)
	case input.ActionToggleUnderline:
		mh.toggleMark(document.MarkUnderline)
	case input.ActionToggleCode:
		mh.toggleMark(document.MarkCode)

	// --- Block Kinds ---
	case input.ActionBlockParagraph:
		mh.editor.ToggleBlock(document.KindParagraph)
	case input.ActionBlockHeading1:
		mh.editor.ToggleBlock(document.KindHeading1)
	case input.ActionBlockHeading2:
		mh.editor.ToggleBlock(document.KindHeading2)
	case input.ActionBlockQuote:
		mh.editor.ToggleBlock(document.KindBlockQuote)
	case input.ActionBlockBulletedList:
		mh.editor.ToggleBlock(document.KindBulletedList)
	case input.ActionBlockNumberedList:
		mh.editor.ToggleBlock(document.KindNumberedList)

	case input.ActionClearColor:
		if mh.editor.ClearColor() {
			mh.statusBar.SetTemporaryMessage("Color cleared")
		} else {
			mh.statusBar.SetTemporaryMessage("Select text to color")
			actionProcessed = false
		}

	// --- Find Navigation ---
	case input.ActionFindNext:
		mh.findNext(!isShift) // Shift+F3 searches backward
	case input.ActionFindPrevious:
		mh.findNext(false)

	// --- Text Modification ---
	case input.ActionInsertRune:
		if err := mh.editor.InsertRune(actionEvent.Rune); err != nil {
			logger.Debugf("Err InsertRune: %v", err)
			actionProcessed = false
		}
	case input.ActionInsertNewLine:
		if err := mh.editor.InsertNewLine(); err != nil {
			logger.Debugf("Err InsertNewLine: %v", err)
			actionProcessed = false
		}
	case input.ActionDeleteCharBackward:
		if err := mh.editor.DeleteBackward(); err != nil {
			logger.Debugf("Err DeleteBackward: %v", err)
			actionProcessed = false
		}
	case input.ActionDeleteCharForward:
		if err := mh.editor.DeleteForward(); err != nil {
			logger.Debugf("Err DeleteForward: %v", err)
			actionProcessed = false
		}

	case input.ActionUnknown:
		actionProcessed = false
	default:
		actionProcessed = false
	}

	// --- Post-Action ---
	newCursor := mh.editor.GetCursor()
	if actionProcessed && newCursor != originalCursor {
		mh.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: newCursor})
	}

	// Any other completed action cancels a pending quit prompt.
	if action != input.ActionQuit && action != input.ActionUnknown && actionProcessed {
		mh.forceQuitPending = false
	}

	return actionProcessed
}

// toggleMark applies an inline mark to the selection, reporting when there
// is nothing selected.
func (mh *ModeHandler) toggleMark(mark document.Mark) {
	if !mh.editor.ToggleMark(mark) {
		mh.statusBar.SetTemporaryMessage("Select text to format")
	}
}

// exportMarkup serializes the document and delivers it to the clipboard.
func (mh *ModeHandler) exportMarkup() bool {
	markupText := mh.editor.ExportMarkup()
	if err := mh.editor.CopyText(markupText); err != nil {
		mh.statusBar.SetTemporaryMessage("Export failed: %v", err)
		logger.Warnf("Export: clipboard write failed: %v", err)
		return false
	}
	mh.eventManager.Dispatch(event.TypeExportCopied, event.ExportCopiedData{Markup: markupText})
	mh.statusBar.SetTemporaryMessage("Markup copied to clipboard (%d chars)", utf8.RuneCountInString(markupText))
	return true
}

// findNext jumps to the next match of the last search, wrapping around.
func (mh *ModeHandler) findNext(forward bool) {
	term := mh.editor.SearchTerm()
	if term == "" {
		mh.statusBar.SetTemporaryMessage("No previous search")
		return
	}
	pos, found, wrapped := mh.editor.FindNext(forward)
	if !found {
		mh.statusBar.SetTemporaryMessage("No matches for '%s'", term)
		return
	}
	mh.editor.ClearSelection()
	mh.editor.SetCursor(pos)
	if wrapped {
		if forward {
			mh.statusBar.SetTemporaryMessage("Search wrapped to start")
		} else {
			mh.statusBar.SetTemporaryMessage("Search wrapped to end")
		}
	} else {
		mh.statusBar.SetTemporaryMessage("/%s", term)
	}
}
