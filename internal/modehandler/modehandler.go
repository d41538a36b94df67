// internal/modehandler/modehandler.go
// Package modehandler owns the composer's input modes and turns decoded
// actions into editor operations. Compose mode is the default: every
// printable rune inserts text, and formatting rides Ctrl and Alt chords.
// The command line, find prompt, color palette and markup preview are
// temporary modes layered on top.
package modehandler

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/solenne/mailwright/internal/core"
	"github.com/solenne/mailwright/internal/event"
	"github.com/solenne/mailwright/internal/input"
	"github.com/solenne/mailwright/internal/logger"
	"github.com/solenne/mailwright/internal/palette"
	"github.com/solenne/mailwright/internal/plugin"
	"github.com/solenne/mailwright/internal/statusbar"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeCompose InputMode = iota
	ModeCommand
	ModeFind
	ModePalette
	ModePreview
)

// ModeHandler manages input modes, command execution, and related state.
type ModeHandler struct {
	// Dependencies (references to components managed by App)
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	palette        *palette.Palette
	quitSignal     chan<- struct{}
	isModified     func() bool // edited since the last export

	// Internal State
	currentMode      InputMode
	cmdBuffer        string
	findBuffer       string
	commands         map[string]plugin.CommandFunc
	forceQuitPending bool
	previewOffset    int
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	Palette        *palette.Palette
	QuitSignal     chan<- struct{} // Write-only channel to signal quit
	IsModified     func() bool
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.EventManager == nil ||
		cfg.StatusBar == nil || cfg.Palette == nil || cfg.QuitSignal == nil || cfg.IsModified == nil {
		// Panic indicates a programming error during setup, not a runtime condition.
		panic("modehandler.New: Missing required dependencies in Config")
	}
	return &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		palette:        cfg.Palette,
		quitSignal:     cfg.QuitSignal,
		isModified:     cfg.IsModified,
		currentMode:    ModeCompose,
		commands:       make(map[string]plugin.CommandFunc),
	}
}

// HandleKeyEvent decides what to do based on current mode and key event.
// Returns true if the event resulted in an action requiring redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	// Dispatch raw key event first so plugins can observe it.
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	actionEvent := mh.inputProcessor.ProcessEvent(ev)

	switch mh.currentMode {
	case ModeCompose:
		// Pass the original tcell event for modifier checks
		return mh.executeAction(actionEvent, ev)
	case ModeCommand:
		return mh.handleActionCommand(actionEvent)
	case ModeFind:
		return mh.handleActionFind(actionEvent)
	case ModePalette:
		return mh.handleActionPalette(actionEvent)
	case ModePreview:
		return mh.handleActionPreview(actionEvent)
	default:
		logger.Debugf("ModeHandler: unknown input mode: %v", mh.currentMode)
		return false
	}
}

// RegisterCommand adds a command to the registry. Called via ComposerAPI.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.Debugf("ModeHandler: Registered command ':%s'", name)
	return nil
}

// EnterPreview switches to preview mode, scrolled to the top. Reached via
// the preview key chord or the :preview command.
func (mh *ModeHandler) EnterPreview() {
	mh.currentMode = ModePreview
	mh.previewOffset = 0
	mh.statusBar.SetTemporaryMessage("Preview: %d chars as exported", mh.editor.ExportedLength())
	logger.Debugf("ModeHandler: Entering Preview Mode")
}

// OpenColorPicker switches to palette mode. Coloring needs a selection, so
// without one this only sets a hint message and reports false.
func (mh *ModeHandler) OpenColorPicker() bool {
	if !mh.editor.HasSelection() {
		mh.statusBar.SetTemporaryMessage("Select text to color")
		return false
	}
	// Start the picker on the selection's current color when it has one.
	if active := mh.editor.FormatState().Color; active != "" {
		mh.palette.SelectNearest(active)
	}
	mh.currentMode = ModePalette
	mh.statusBar.SetTemporaryMessage("Pick a color")
	logger.Debugf("ModeHandler: Entering Palette Mode")
	return true
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// GetCurrentModeString returns the mode tag shown in the status bar.
// Compose mode is the baseline and shows no tag.
func (mh *ModeHandler) GetCurrentModeString() string {
	switch mh.currentMode {
	case ModeCommand:
		return "CMD"
	case ModeFind:
		return "FIND"
	case ModePalette:
		return "COLOR"
	case ModePreview:
		return "PREVIEW"
	default:
		return ""
	}
}

// GetCommandBuffer returns the current command line content (for display).
func (mh *ModeHandler) GetCommandBuffer() string {
	if mh.currentMode == ModeCommand {
		return mh.cmdBuffer
	}
	return ""
}

// GetFindBuffer returns the current find prompt content (for display).
func (mh *ModeHandler) GetFindBuffer() string {
	if mh.currentMode == ModeFind {
		return mh.findBuffer
	}
	return ""
}

// PreviewOffset returns the preview pane's scroll position.
func (mh *ModeHandler) PreviewOffset() int {
	return mh.previewOffset
}
