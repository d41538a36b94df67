// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps specific key events to composer actions.
type Keymap map[tcell.Key]Action        // For special keys (Enter, Arrows, etc.)
type RuneKeymap map[rune]Action         // For Alt+rune chords
type ModKeymap map[tcell.ModMask]Keymap // For keys combined with modifiers

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap    Keymap
	modKeymap ModKeymap
	altRunes  RuneKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:    make(Keymap),
		modKeymap: make(ModKeymap),
		altRunes:  make(RuneKeymap),
	}
	p.loadDefaultBindings()
	return p
}

// loadDefaultBindings sets up the initial key mappings.
func (p *InputProcessor) loadDefaultBindings() {
	// --- Simple Keys ---
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyEscape] = ActionQuit // Primary quit action (checks modified)
	p.keymap[tcell.KeyF3] = ActionFindNext

	// --- Ctrl chords ---
	// Ctrl+I and Ctrl+M are Tab and Enter on a terminal; italic and the
	// block kinds ride Alt instead.
	ctrlMap := make(Keymap)
	ctrlMap[tcell.KeyCtrlQ] = ActionForceQuit
	ctrlMap[tcell.KeyCtrlS] = ActionExport
	ctrlMap[tcell.KeyCtrlB] = ActionToggleBold
	ctrlMap[tcell.KeyCtrlU] = ActionToggleUnderline
	ctrlMap[tcell.KeyCtrlZ] = ActionUndo
	ctrlMap[tcell.KeyCtrlY] = ActionRedo
	ctrlMap[tcell.KeyCtrlC] = ActionCopy
	ctrlMap[tcell.KeyCtrlX] = ActionCut
	ctrlMap[tcell.KeyCtrlV] = ActionPaste
	ctrlMap[tcell.KeyCtrlF] = ActionFind
	ctrlMap[tcell.KeyCtrlP] = ActionTogglePreview
	ctrlMap[tcell.KeyCtrlA] = ActionSelectAll
	p.modKeymap[tcell.ModCtrl] = ctrlMap

	// --- Alt chords ---
	p.altRunes['b'] = ActionToggleBold
	p.altRunes['i'] = ActionToggleItalic
	p.altRunes['u'] = ActionToggleUnderline
	p.altRunes['`'] = ActionToggleCode
	p.altRunes['0'] = ActionBlockParagraph
	p.altRunes['1'] = ActionBlockHeading1
	p.altRunes['2'] = ActionBlockHeading2
	p.altRunes['q'] = ActionBlockQuote
	p.altRunes['8'] = ActionBlockBulletedList
	p.altRunes['7'] = ActionBlockNumberedList
	p.altRunes['c'] = ActionOpenPalette
	p.altRunes['C'] = ActionClearColor
	p.altRunes['x'] = ActionEnterCommandMode
}

// ProcessEvent takes a tcell key event and returns the corresponding
// ActionEvent. Mode is not handled here; the mode handler decides what the
// action means in its current state.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	runeVal := ev.Rune()

	// 1. Alt+rune chords. Shift may ride along (Alt+Shift+c reports 'C').
	if key == tcell.KeyRune && mod&tcell.ModAlt != 0 {
		if action, ok := p.altRunes[runeVal]; ok {
			return ActionEvent{Action: action}
		}
		// Swallow unbound Alt chords rather than inserting their rune.
		return ActionEvent{Action: ActionUnknown}
	}

	// 2. Modifier + key combinations
	if modKeyMap, modOk := p.modKeymap[mod]; modOk {
		if action, keyOk := modKeyMap[key]; keyOk {
			return ActionEvent{Action: action}
		}
	}
	// tcell folds Ctrl into the key code for control letters; strip the
	// modifier so unbound Ctrl chords don't leak into the plain keymap.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	// 3. Simple key mappings (Shift allowed so arrows can extend selection)
	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	// 4. Plain runes insert text. Shift may be reported for uppercase.
	if key == tcell.KeyRune && mod&^tcell.ModShift == tcell.ModNone {
		return ActionEvent{Action: ActionInsertRune, Rune: runeVal}
	}

	// 5. No mapping found
	return ActionEvent{Action: ActionUnknown}
}
