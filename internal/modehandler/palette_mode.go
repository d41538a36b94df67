// internal/modehandler/palette_mode.go
package modehandler

import (
	"github.com/solenne/mailwright/internal/input"
	"github.com/solenne/mailwright/internal/logger"
)

// handleActionPalette handles actions when the color picker is open. The
// selection the picker was opened for stays live underneath; Enter applies
// the highlighted swatch to it.
func (mh *ModeHandler) handleActionPalette(actionEvent input.ActionEvent) bool {
	actionProcessed := true

	switch actionEvent.Action {
	case input.ActionMoveUp, input.ActionMoveLeft:
		mh.palette.Prev()
	case input.ActionMoveDown, input.ActionMoveRight:
		mh.palette.Next()
	case input.ActionMoveHome:
		mh.palette.Select(0)
	case input.ActionMoveEnd:
		mh.palette.Select(mh.palette.Len() - 1)

	case input.ActionInsertNewLine: // Enter: apply the selected swatch
		hex := mh.palette.SelectedHex()
		mh.currentMode = ModeCompose
		if mh.editor.SetColor(hex) {
			mh.statusBar.SetTemporaryMessage("Color %s applied", hex)
		} else {
			mh.statusBar.SetTemporaryMessage("Select text to color")
		}
		logger.Debugf("ModeHandler: palette applied %s", hex)

	case input.ActionInsertRune:
		// Digits jump to a swatch; x clears the color from the selection.
		switch r := actionEvent.Rune; {
		case r >= '1' && r <= '9':
			mh.palette.Select(int(r - '1'))
		case r == '0':
			mh.palette.Select(9)
		case r == 'x':
			mh.currentMode = ModeCompose
			if mh.editor.SetColor("") {
				mh.statusBar.SetTemporaryMessage("Color cleared")
			} else {
				mh.statusBar.SetTemporaryMessage("Select text to color")
			}
		default:
			actionProcessed = false
		}

	case input.ActionQuit: // Escape: close without applying
		mh.currentMode = ModeCompose
		mh.statusBar.SetTemporaryMessage("")
		logger.Debugf("ModeHandler: Canceled Palette Mode")

	default:
		actionProcessed = false
	}

	return actionProcessed
}
