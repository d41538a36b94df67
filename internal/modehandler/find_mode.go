// internal/modehandler/find_mode.go
package modehandler

import (
	"unicode/utf8"

	"github.com/solenne/mailwright/internal/input"
	"github.com/solenne/mailwright/internal/logger"
)

// handleActionFind handles actions when in ModeFind.
func (mh *ModeHandler) handleActionFind(actionEvent input.ActionEvent) bool {
	actionProcessed := true
	needsUpdate := false // Track if status bar text needs update

	switch actionEvent.Action {
	case input.ActionInsertRune: // Append to find buffer
		mh.findBuffer += string(actionEvent.Rune)
		needsUpdate = true

	case input.ActionDeleteCharBackward: // Backspace in find buffer
		if len(mh.findBuffer) > 0 {
			_, size := utf8.DecodeLastRuneInString(mh.findBuffer)
			mh.findBuffer = mh.findBuffer[:len(mh.findBuffer)-size]
			needsUpdate = true
		} else {
			// Backspace on empty find buffer returns to compose mode
			mh.cancelFindMode()
		}

	case input.ActionInsertNewLine: // Enter key: Execute search
		mh.executeFindEnter()
		mh.currentMode = ModeCompose
		mh.findBuffer = ""

	case input.ActionQuit: // Escape key: Cancel find
		mh.cancelFindMode()

	default:
		// Ignore other actions like movement keys in find mode
		actionProcessed = false
	}

	// Update status bar display if buffer changed
	if needsUpdate && mh.currentMode == ModeFind {
		mh.statusBar.SetTemporaryMessage("/%s", mh.findBuffer)
	}

	return actionProcessed
}

// cancelFindMode centralizes logic for exiting find mode without searching.
func (mh *ModeHandler) cancelFindMode() {
	mh.currentMode = ModeCompose
	mh.findBuffer = ""
	mh.editor.ClearHighlights()
	mh.statusBar.SetTemporaryMessage("")
	logger.Debugf("ModeHandler: Canceled Find Mode")
}

// executeFindEnter highlights every match of the entered term and jumps to
// the first one after the cursor.
func (mh *ModeHandler) executeFindEnter() {
	if mh.findBuffer == "" {
		mh.statusBar.SetTemporaryMessage("")
		mh.editor.ClearHighlights()
		return
	}

	count := mh.editor.HighlightMatches(mh.findBuffer)
	if count == 0 {
		mh.statusBar.SetTemporaryMessage("No matches for '%s'", mh.findBuffer)
		logger.Debugf("ModeHandler: no matches for '%s'", mh.findBuffer)
		return
	}

	pos, found, _ := mh.editor.FindNext(true)
	if found {
		mh.editor.SetCursor(pos)
	}
	if count == 1 {
		mh.statusBar.SetTemporaryMessage("1 match")
	} else {
		mh.statusBar.SetTemporaryMessage("%d matches (F3: next, Shift+F3: previous)", count)
	}
	logger.Debugf("ModeHandler: '%s' matched %d times", mh.findBuffer, count)
}
