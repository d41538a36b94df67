// internal/core/editor.go
package core

import (
	"unicode/utf8"

	"github.com/solenne/mailwright/internal/config"
	"github.com/solenne/mailwright/internal/core/clipboard"
	"github.com/solenne/mailwright/internal/core/cursor"
	"github.com/solenne/mailwright/internal/core/find"
	"github.com/solenne/mailwright/internal/core/history"
	"github.com/solenne/mailwright/internal/core/selection"
	"github.com/solenne/mailwright/internal/core/text"
	"github.com/solenne/mailwright/internal/document"
	"github.com/solenne/mailwright/internal/event"
	"github.com/solenne/mailwright/internal/logger"
	"github.com/solenne/mailwright/internal/markup"
	"github.com/solenne/mailwright/internal/types"
)

// Editor owns the document being composed and coordinates the managers
// that edit it: cursor, selection, text operations, clipboard, find and
// history. All mutation runs on the application's main loop; the editor
// itself holds no locks.
type Editor struct {
	doc          *document.Document
	eventManager *event.Manager
	scrollOff    int
	viewWidth    int
	viewHeight   int

	cursorManager    *cursor.Manager
	selectionManager *selection.Manager
	textOps          *text.Operations
	clipboardManager *clipboard.Manager
	findManager      *find.Manager
	historyManager   *history.Manager
}

// NewEditor creates an Editor around an existing document.
func NewEditor(doc *document.Document) *Editor {
	e := &Editor{
		doc:       doc,
		scrollOff: config.DefaultScrollOff,
	}
	e.cursorManager = cursor.NewManager(e)
	e.selectionManager = selection.NewManager(e)
	e.textOps = text.NewOperations(e)
	e.clipboardManager = clipboard.NewManager(e)
	e.findManager = find.NewManager(e)
	e.historyManager = history.NewManager(e, config.DefaultHistoryDepth)
	return e
}

// Configure applies editor-relevant settings. Called once after config load,
// before any editing happens.
func (e *Editor) Configure(cfg config.EditorConfig) {
	if cfg.ScrollOff >= 0 {
		e.scrollOff = cfg.ScrollOff
	}
	e.historyManager = history.NewManager(e, cfg.HistoryDepth)
	e.clipboardManager.SetSystemEnabled(cfg.SystemClipboard)
}

// SetEventManager sets the event manager for dispatching events.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// GetEventManager returns the event manager (may be nil in tests).
func (e *Editor) GetEventManager() *event.Manager {
	return e.eventManager
}

// Document returns the document being composed. Managers re-fetch it on
// every operation so undo restores and imports swap it safely.
func (e *Editor) Document() *document.Document {
	return e.doc
}

// SetDocument replaces the document wholesale (seed, import, :new).
// Cursor, selection, search and history state are reset; a DocumentReset
// event identifies the source.
func (e *Editor) SetDocument(doc *document.Document, source string) {
	e.doc = doc
	e.selectionManager.ClearSelection()
	e.findManager.ClearHighlights()
	e.historyManager.Clear()
	e.cursorManager.SetPosition(doc.Start())
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeDocumentReset, event.DocumentResetData{Source: source})
	}
	logger.DebugTagf("core", "Editor: document replaced (%s)", source)
}

// RestoreDocument swaps in a history snapshot. Selection is dropped but
// search and history state survive, so undo chains keep working.
func (e *Editor) RestoreDocument(doc *document.Document, cur types.Position) {
	e.doc = doc
	e.selectionManager.ClearSelection()
	e.cursorManager.SetPosition(cur)
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeDocumentModified, event.DocumentModifiedData{Start: e.GetCursor()})
	}
}

// GetCursor returns the current cursor position.
func (e *Editor) GetCursor() types.Position {
	return e.cursorManager.GetPosition()
}

// SetCursor sets the cursor position, clamped into the document.
func (e *Editor) SetCursor(pos types.Position) {
	e.cursorManager.SetPosition(pos)
}

// ScrollToCursor ensures the cursor is visible in the viewport.
func (e *Editor) ScrollToCursor() {
	e.cursorManager.ScrollToCursor()
}

// ScrollOff returns the configured scroll margin.
func (e *Editor) ScrollOff() int {
	return e.scrollOff
}

// SetViewSize updates the cached view dimensions. Called on resize or
// before drawing. The status bar row is excluded from the content height.
func (e *Editor) SetViewSize(width, height int) {
	e.viewWidth = width
	contentHeight := height - config.StatusBarHeight
	if contentHeight < 0 {
		contentHeight = 0
	}
	e.viewHeight = contentHeight
	e.cursorManager.SetViewSize(width, contentHeight)
}

// GetViewport returns the first visible leaf index and the content height.
func (e *Editor) GetViewport() (top, height int) {
	return e.cursorManager.GetViewport()
}

// --- Export / Import ---

// ExportMarkup serializes the document to game markup. Pure and total;
// regenerated from the model on every call.
func (e *Editor) ExportMarkup() string {
	return markup.Serialize(e.doc)
}

// ExportedLength returns the rune length of the exported markup, the
// number the in-game mail box counts against its limit.
func (e *Editor) ExportedLength() int {
	return utf8.RuneCountInString(e.ExportMarkup())
}

// ImportMarkup replaces the document with the parse of the given markup.
func (e *Editor) ImportMarkup(s string) {
	e.SetDocument(markup.Parse(s), "import")
}

// NewDocument replaces the document with a single empty paragraph.
func (e *Editor) NewDocument() {
	e.SetDocument(document.New(), "new")
}
