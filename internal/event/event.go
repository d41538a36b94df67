// internal/event/event.go
package event

import (
	"github.com/gdamore/tcell/v2"
	"github.com/solenne/mailwright/internal/types"
)

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Core Document Events
	TypeDocumentModified // Fired when document content changes (insert/delete/split/merge)
	TypeFormatChanged    // Fired when marks, colors or block kinds change
	TypeDocumentReset    // Fired when the whole document is replaced (seed, import, :new)
	TypeCursorMoved      // Fired when the cursor position changes
	TypeSelectionChanged // Fired when the selection range changes or clears

	// Export Events
	TypeExportCopied // Fired after markup was serialized and delivered to the clipboard

	// Input Events (potentially useful for plugins reacting to raw keys)
	TypeKeyPressed // Raw key press event forwarded

	// Application Lifecycle Events
	TypeAppReady // Fired when the application is fully initialized
	TypeAppQuit  // Fired just before application termination begins

	TypeThemeChanged // Fired when the theme is changed
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// --- Specific Event Data Structures ---

// DocumentModifiedData describes a content change.
type DocumentModifiedData struct {
	// Start is the upper-left corner of the change in leaf coordinates.
	Start types.Position
}

// FormatChangedData describes a formatting change (mark, color or block kind).
type FormatChangedData struct {
	Start types.Position
	End   types.Position
}

// DocumentResetData identifies what replaced the document.
type DocumentResetData struct {
	Source string // "seed", "import", "new"
}

// CursorMovedData contains the new cursor position.
type CursorMovedData struct {
	NewPosition types.Position
}

// SelectionChangedData carries the normalized selection, Active=false on clear.
type SelectionChangedData struct {
	Start  types.Position
	End    types.Position
	Active bool
}

// ExportCopiedData contains the serialized markup that was delivered.
type ExportCopiedData struct {
	Markup string
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}

// ThemeChangedData names the newly active theme.
type ThemeChangedData struct {
	ThemeName string
}
