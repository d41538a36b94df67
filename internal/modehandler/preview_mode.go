// internal/modehandler/preview_mode.go
package modehandler

import (
	"github.com/solenne/mailwright/internal/input"
	"github.com/solenne/mailwright/internal/logger"
	"github.com/solenne/mailwright/internal/render"
)

// handleActionPreview handles actions while the exported markup preview is
// shown. The document is read-only here; keys scroll the pane, Ctrl+S still
// exports, and Esc or Ctrl+P returns to composing.
func (mh *ModeHandler) handleActionPreview(actionEvent input.ActionEvent) bool {
	actionProcessed := true

	_, viewHeight := mh.editor.GetViewport()
	maxOffset := render.PreviewLineCount(mh.editor.ExportMarkup()) - viewHeight
	if maxOffset < 0 {
		maxOffset = 0
	}

	switch actionEvent.Action {
	case input.ActionMoveUp:
		mh.previewOffset--
	case input.ActionMoveDown:
		mh.previewOffset++
	case input.ActionMovePageUp:
		mh.previewOffset -= viewHeight
	case input.ActionMovePageDown:
		mh.previewOffset += viewHeight
	case input.ActionMoveHome:
		mh.previewOffset = 0
	case input.ActionMoveEnd:
		mh.previewOffset = maxOffset

	case input.ActionExport:
		mh.exportMarkup()

	case input.ActionInsertRune:
		if actionEvent.Rune == 'c' {
			mh.exportMarkup()
		} else {
			actionProcessed = false
		}

	case input.ActionQuit, input.ActionTogglePreview:
		mh.currentMode = ModeCompose
		mh.statusBar.SetTemporaryMessage("")
		logger.Debugf("ModeHandler: Leaving Preview Mode")

	default:
		actionProcessed = false
	}

	if mh.previewOffset < 0 {
		mh.previewOffset = 0
	} else if mh.previewOffset > maxOffset {
		mh.previewOffset = maxOffset
	}

	return actionProcessed
}
