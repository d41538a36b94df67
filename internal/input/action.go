// internal/input/action.go
package input

// Action represents a command or operation to be performed by the composer.
type Action int

// Define the set of possible composer actions.
const (
	// --- Meta Actions ---
	ActionUnknown Action = iota // Default/invalid action
	ActionQuit
	ActionForceQuit // Quit without checking modified status
	ActionExport    // Copy the exported markup to the clipboard

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome // Beginning of block
	ActionMoveEnd  // End of block
	ActionSelectAll

	// --- Text Manipulation ---
	ActionInsertRune    // Requires Rune argument
	ActionInsertNewLine // Specific action for Enter
	ActionDeleteCharForward
	ActionDeleteCharBackward

	// --- Inline Marks ---
	ActionToggleBold
	ActionToggleItalic
	ActionToggleUnderline
	ActionToggleCode

	// --- Block Kinds ---
	ActionBlockParagraph
	ActionBlockHeading1
	ActionBlockHeading2
	ActionBlockQuote
	ActionBlockBulletedList
	ActionBlockNumberedList

	// --- Color ---
	ActionOpenPalette
	ActionClearColor

	// --- History ---
	ActionUndo
	ActionRedo

	// --- Clipboard ---
	ActionCopy
	ActionCut
	ActionPaste

	// --- Modes ---
	ActionEnterCommandMode
	ActionFind
	ActionFindNext
	ActionFindPrevious
	ActionTogglePreview
)

// ActionEvent represents a decoded input event resulting in an action.
// It carries payload data needed for the action (like the rune to insert).
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionInsertRune
}
