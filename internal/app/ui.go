package app

import (
	"github.com/solenne/mailwright/internal/config"
	"github.com/solenne/mailwright/internal/logger"
	"github.com/solenne/mailwright/internal/modehandler"
	"github.com/solenne/mailwright/internal/render"
	"github.com/solenne/mailwright/internal/statusbar"
	"github.com/solenne/mailwright/internal/theme"
)

// drawEditor clears the screen and redraws the components the current
// mode calls for: the document and cursor in compose mode, the serialized
// markup in preview mode, the swatch picker in palette mode.
func (a *App) drawEditor() {
	// Update status bar content (might involve modehandler state)
	a.updateStatusBarContent()

	// Get the current theme from the manager
	currentTheme := a.themeManager.Current()

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()

	logger.DebugTagf("draw", "drawEditor: Screen Size (%d x %d), Mode: %s",
		width, height, a.modeHandler.GetCurrentModeString())

	a.tuiManager.Clear()
	switch a.modeHandler.GetCurrentMode() {
	case modehandler.ModePreview:
		render.Preview(a.tuiManager, a.editor.ExportMarkup(), a.modeHandler.PreviewOffset(), currentTheme)
		a.statusBar.Draw(screen, width, height)
	case modehandler.ModePalette:
		render.Document(a.tuiManager, a.editor, currentTheme)
		a.statusBar.Draw(screen, width, height)
		render.Palette(a.tuiManager, a.palette, currentTheme)
	default:
		render.Document(a.tuiManager, a.editor, currentTheme)
		a.statusBar.Draw(screen, width, height)
		render.Cursor(a.tuiManager, a.editor)
	}
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current composer state to the status bar.
func (a *App) updateStatusBarContent() {
	fs := a.editor.FormatState()
	a.statusBar.SetFormatInfo(statusbar.FormatInfo{
		Block:     fs.Block.String(),
		Bold:      fs.Bold,
		Italic:    fs.Italic,
		Underline: fs.Underline,
		Code:      fs.Code,
		Color:     fs.Color,
	})
	a.statusBar.SetCursorInfo(a.editor.GetCursor())
	a.statusBar.SetCharCount(a.editor.ExportedLength())
	a.statusBar.SetModified(a.isModified())
	a.statusBar.SetEditorMode(a.modeHandler.GetCurrentModeString())

	// The command line and find prompt render through the temporary message
	// slot so they occupy the same screen row.
	if a.modeHandler.GetCurrentMode() == modehandler.ModeCommand {
		a.statusBar.SetTemporaryMessage(":%s", a.modeHandler.GetCommandBuffer())
	} else if a.modeHandler.GetCurrentMode() == modehandler.ModeFind {
		a.statusBar.SetTemporaryMessage("/%s", a.modeHandler.GetFindBuffer())
	}
}

// statusBarConfig derives the bar's styles from a theme, falling back to
// the package defaults when the theme is nil.
func statusBarConfig(t *theme.Theme) statusbar.Config {
	cfg := statusbar.DefaultConfig()
	cfg.MessageTimeout = config.MessageTimeout
	if t == nil {
		return cfg
	}
	cfg.StyleDefault = t.GetStyle("StatusBar")
	cfg.StyleModified = t.GetStyle("StatusBarModified")
	cfg.StyleMessage = t.GetStyle("StatusBarMessage")
	cfg.StyleFindInput = t.GetStyle("StatusBarFind")
	return cfg
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}
