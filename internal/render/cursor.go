// internal/render/cursor.go
package render

import (
	"github.com/rivo/uniseg"
	"github.com/solenne/mailwright/internal/core"
	"github.com/solenne/mailwright/internal/tui"
)

// Cursor positions the terminal cursor, accounting for the block prefix
// and the horizontal scroll offset. Hides it when it falls outside the
// drawable area.
func Cursor(tuiManager *tui.TUI, editor *core.Editor) {
	screen := tuiManager.GetScreen()
	cursor := editor.GetCursor()
	viewTop, viewHeight := editor.GetViewport()
	width, height := tuiManager.Size()

	leaves := editor.Document().Leaves()
	if cursor.Line < 0 || cursor.Line >= len(leaves) {
		screen.HideCursor()
		return
	}

	info := leaves[cursor.Line]
	prefix, _ := leafPrefix(info)
	prefixWidth := uniseg.StringWidth(prefix)
	viewX := horizontalOffset(editor, width)

	cursorVisualCol := visualColumn(info.Block.Text(), cursor.Col)

	screenX := (cursorVisualCol - viewX) + prefixWidth
	screenY := cursor.Line - viewTop

	if screenX < prefixWidth || screenX >= width || screenY < 0 || screenY >= viewHeight || viewHeight > height {
		screen.HideCursor()
	} else {
		screen.ShowCursor(screenX, screenY)
	}
}
