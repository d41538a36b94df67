// internal/app/app.go
package app

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/solenne/mailwright/internal/config"
	"github.com/solenne/mailwright/internal/core"
	"github.com/solenne/mailwright/internal/document"
	"github.com/solenne/mailwright/internal/event"
	"github.com/solenne/mailwright/internal/input"
	"github.com/solenne/mailwright/internal/logger"
	"github.com/solenne/mailwright/internal/modehandler"
	"github.com/solenne/mailwright/internal/palette"
	"github.com/solenne/mailwright/internal/plugin"
	"github.com/solenne/mailwright/internal/statusbar"
	"github.com/solenne/mailwright/internal/theme"
	"github.com/solenne/mailwright/internal/tui"
)

// App encapsulates the core components and main loop of the composer.
type App struct {
	cfg           *config.Config
	tuiManager    *tui.TUI
	editor        *core.Editor
	statusBar     *statusbar.StatusBar
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	modeHandler   *modehandler.ModeHandler
	themeManager  *theme.Manager
	palette       *palette.Palette
	composerAPI   plugin.ComposerAPI

	// Modified tracks edits since the last export. Event handlers write it
	// from the input goroutine while the draw loop reads it.
	modifiedMu sync.RWMutex
	modified   bool

	// Channels managed by the App
	quit          chan struct{}
	redrawRequest chan struct{}
}

// NewApp creates and initializes a new application instance. The document
// starts seeded with the example mail unless startBlank is set.
func NewApp(cfg *config.Config, startBlank bool) (*App, error) {
	// --- Create Core Components ---
	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	doc := document.Seed()
	if startBlank {
		doc = document.New()
	}

	editor := core.NewEditor(doc)
	editor.Configure(cfg.Editor)

	inputProcessor := input.NewInputProcessor()
	eventManager := event.NewManager()
	pluginManager := plugin.NewManager()
	themeManager := theme.NewManager()
	pal := palette.New(cfg.Palette.Swatches)
	quitChan := make(chan struct{})

	if cfg.Theme.Name != "" {
		if err := themeManager.SetTheme(cfg.Theme.Name); err != nil {
			logger.Warnf("App: configured theme unavailable: %v", err)
		}
	}

	statusBar := statusbar.New(statusBarConfig(themeManager.Current()))

	// Set event manager in editor so it can dispatch events
	editor.SetEventManager(eventManager)

	// --- Create App Instance ---
	appInstance := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		editor:        editor,
		statusBar:     statusBar,
		eventManager:  eventManager,
		pluginManager: pluginManager,
		themeManager:  themeManager,
		palette:       pal,
		quit:          quitChan,
		redrawRequest: make(chan struct{}, 1),
	}

	// --- Create Mode Handler ---
	modeHandlerCfg := modehandler.Config{
		Editor:         editor,
		InputProcessor: inputProcessor,
		EventManager:   eventManager,
		StatusBar:      statusBar,
		Palette:        pal,
		QuitSignal:     quitChan,
		IsModified:     appInstance.isModified,
	}
	appInstance.modeHandler = modehandler.New(modeHandlerCfg)

	// --- Create Composer API adapter ---
	appInstance.composerAPI = newComposerAPI(appInstance)

	// --- Register Built-in Plugins ---
	if err := registerPlugins(pluginManager); err != nil {
		logger.Warnf("App: plugin registration issue: %v", err)
	}

	// --- Subscribe Core Components (App level wiring) ---
	eventManager.Subscribe(event.TypeCursorMoved, appInstance.handleCursorMovedForStatus)
	eventManager.Subscribe(event.TypeDocumentModified, appInstance.handleDocumentModified)
	eventManager.Subscribe(event.TypeFormatChanged, appInstance.handleFormatChanged)
	eventManager.Subscribe(event.TypeDocumentReset, appInstance.handleDocumentReset)
	eventManager.Subscribe(event.TypeExportCopied, appInstance.handleExportCopied)
	eventManager.Subscribe(event.TypeThemeChanged, appInstance.handleThemeChanged)

	// --- Register Built-in Commands ---
	registerAppCommands(appInstance)

	// --- Initialize Plugins (triggers RegisterCommand via API) ---
	pluginManager.InitializePlugins(appInstance.composerAPI)

	// --- Final Setup ---
	width, height := tuiManager.Size()
	editor.SetViewSize(width, height)

	return appInstance, nil
}

// Run starts the application's main event and drawing loops.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer a.pluginManager.ShutdownPlugins()

	go a.eventLoop() // Start event loop

	// Initial setup
	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("Mailwright - Ctrl+S copies markup | ESC quits")
	a.requestRedraw()

	// --- Main Drawing Loop ---
	for {
		select {
		case <-a.quit: // Wait for quit signal from ModeHandler
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			if a.isModified() {
				logger.Infof("Exited with changes that were never exported.")
			}
			logger.Infof("Exiting application.")
			return nil
		case <-a.redrawRequest:
			w, h := a.tuiManager.Size()
			a.editor.SetViewSize(w, h)
			a.drawEditor()
		}
	}
}

// eventLoop handles TUI events, delegating key events to ModeHandler.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false

		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.GetScreen().Sync()
			needsRedraw = true

		case *tcell.EventKey:
			// Delegate ALL key handling to ModeHandler
			needsRedraw = a.modeHandler.HandleKeyEvent(eventData)
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

// isModified reports whether the mail changed since the last export.
func (a *App) isModified() bool {
	a.modifiedMu.RLock()
	defer a.modifiedMu.RUnlock()
	return a.modified
}

func (a *App) setModified(modified bool) {
	a.modifiedMu.Lock()
	a.modified = modified
	a.modifiedMu.Unlock()
}

// GetModeHandler allows the API adapter to access the mode handler for
// command registration.
func (a *App) GetModeHandler() *modehandler.ModeHandler {
	return a.modeHandler
}

// GetThemeManager exposes the theme manager to the API adapter.
func (a *App) GetThemeManager() *theme.Manager {
	return a.themeManager
}
