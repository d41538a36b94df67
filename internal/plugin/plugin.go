// internal/plugin/plugin.go
package plugin

import (
	"github.com/gdamore/tcell/v2"
	"github.com/solenne/mailwright/internal/event"
	"github.com/solenne/mailwright/internal/theme"
	"github.com/solenne/mailwright/internal/types"
)

// CommandFunc defines the signature for commands registered by plugins.
// It takes arguments (e.g., from user input) and returns an error.
type CommandFunc func(args []string) error

// ComposerAPI defines the methods plugins can use to interact with the
// composer core. This acts as a controlled interface, preventing plugins
// from accessing everything.
type ComposerAPI interface {
	// --- Document Access (Read-Only Preferred) ---
	LeafCount() int           // Number of leaf blocks (editable lines)
	LeafText(line int) string // Plain text of one leaf, "" when out of range
	DocumentText() string     // Plain text of the whole document
	ExportMarkup() string     // Document serialized to game markup
	ExportedLength() int      // Rune length of the markup, as the mail box counts it
	IsDocumentModified() bool // Edits since the last export

	// --- Document Modification ---
	// Use with caution! Ensure plugins don't corrupt state.
	InsertText(pos types.Position, text string) error
	ImportMarkup(markup string)
	NewDocument()

	// --- Clipboard ---
	ExportToClipboard() error          // Serialize and deliver, as the export chord does
	ReadClipboardText() (string, bool) // Clipboard content, false when empty

	// --- Formatting ---
	// Marks and block kinds are addressed by their canonical names:
	// "bold", "italic", "underline", "code" for marks; "paragraph",
	// "heading-1", "heading-2", "block-quote", "bulleted-list",
	// "numbered-list" for block kinds.
	ToggleMark(name string) error
	ToggleBlock(name string) error
	SetColor(hex string) error // Empty hex clears the color
	IsMarkActive(name string) bool
	ActiveBlock() string
	ActiveColor() string

	// --- Cursor & Viewport ---
	GetCursor() types.Position
	SetCursor(pos types.Position)   // Will clamp and scroll
	GetViewport() (top, height int) // First visible leaf and content height

	// --- Event Bus Interaction ---
	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler) // Plugins can listen too

	// --- Command Registration ---
	RegisterCommand(name string, cmdFunc CommandFunc) error // Allow plugins to expose commands

	// --- Status Bar ---
	SetStatusMessage(format string, args ...interface{}) // Show temporary messages

	// --- Theme Access ---
	GetThemeStyle(styleName string) tcell.Style // Get a style from the active theme
	SetTheme(name string) error
	GetTheme() *theme.Theme
	ListThemes() []string

	// --- UI Modes ---
	ShowPreview()     // Open the markup preview pane
	OpenColorPicker() // Open the palette; hints when nothing is selected

	// --- Application ---
	RequestQuit(force bool) // Quit; without force an unexported mail blocks with a hint
	MailLimit() int         // Exported-character budget, 0 when the warning is disabled
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once when the plugin is loaded.
	// It receives the ComposerAPI to interact with the core.
	// Used for setup, subscribing to events, registering commands.
	Initialize(api ComposerAPI) error

	// Shutdown is called once when the composer is closing.
	// Used for cleanup tasks.
	Shutdown() error
}
