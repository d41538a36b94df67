package app

import (
	"github.com/solenne/mailwright/internal/event"
)

// handleCursorMovedForStatus updates the status bar based on cursor position
func (a *App) handleCursorMovedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		a.statusBar.SetCursorInfo(data.NewPosition)
	}
	return false // Not consumed
}

// handleDocumentModified flags the mail as edited since the last export.
func (a *App) handleDocumentModified(e event.Event) bool {
	a.setModified(true)
	a.updateStatusBarContent()
	return false // Not consumed
}

// handleFormatChanged treats formatting like any other edit: the exported
// markup no longer matches what was last copied.
func (a *App) handleFormatChanged(e event.Event) bool {
	a.setModified(true)
	a.updateStatusBarContent()
	return false // Not consumed
}

// handleDocumentReset re-baselines the modified flag. A seeded, imported
// or cleared mail has no unexported edits to lose yet.
func (a *App) handleDocumentReset(e event.Event) bool {
	a.setModified(false)
	a.updateStatusBarContent()
	a.requestRedraw()
	return false // Not consumed
}

// handleExportCopied clears the modified flag: the clipboard now holds the
// markup for exactly this document.
func (a *App) handleExportCopied(e event.Event) bool {
	a.setModified(false)
	a.updateStatusBarContent()
	return false // Not consumed
}

// handleThemeChanged restyles the status bar and repaints with the new theme.
func (a *App) handleThemeChanged(e event.Event) bool {
	cfg := statusBarConfig(a.themeManager.Current())
	a.statusBar.SetStyles(cfg.StyleDefault, cfg.StyleModified, cfg.StyleMessage, cfg.StyleFindInput)
	a.requestRedraw()
	return false // Not consumed
}
