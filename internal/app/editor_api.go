// internal/app/editor_api.go
package app

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/solenne/mailwright/internal/commands"
	"github.com/solenne/mailwright/internal/document"
	"github.com/solenne/mailwright/internal/event"
	"github.com/solenne/mailwright/internal/logger"
	"github.com/solenne/mailwright/internal/plugin"
	"github.com/solenne/mailwright/internal/theme"
	"github.com/solenne/mailwright/internal/types"
)

// Ensure appComposerAPI implements the plugin.ComposerAPI interface.
var _ plugin.ComposerAPI = (*appComposerAPI)(nil)

// Verify that appComposerAPI also satisfies the commands.ThemeAPI interface
var _ commands.ThemeAPI = (*appComposerAPI)(nil)

// appComposerAPI provides the concrete implementation of the ComposerAPI
// interface.
type appComposerAPI struct {
	app *App // Reference back to the main application
}

// newComposerAPI creates a new API adapter instance.
func newComposerAPI(app *App) *appComposerAPI {
	return &appComposerAPI{app: app}
}

// --- Document Access ---

func (api *appComposerAPI) LeafCount() int {
	return api.app.editor.Document().LeafCount()
}

func (api *appComposerAPI) LeafText(line int) string {
	return api.app.editor.Document().LeafText(line)
}

func (api *appComposerAPI) DocumentText() string {
	doc := api.app.editor.Document()
	return doc.TextRange(doc.Start(), doc.End())
}

func (api *appComposerAPI) ExportMarkup() string {
	return api.app.editor.ExportMarkup()
}

func (api *appComposerAPI) ExportedLength() int {
	return api.app.editor.ExportedLength()
}

func (api *appComposerAPI) IsDocumentModified() bool {
	return api.app.isModified()
}

// --- Document Modification ---

func (api *appComposerAPI) InsertText(pos types.Position, text string) error {
	// Route through the editor's insert path so history, selection and
	// events behave exactly as they do for typed input.
	api.app.editor.SetCursor(pos)
	for _, r := range text {
		if err := api.app.editor.InsertRune(r); err != nil {
			return err
		}
	}
	api.app.requestRedraw()
	return nil
}

func (api *appComposerAPI) ImportMarkup(markup string) {
	api.app.editor.ImportMarkup(markup)
	api.app.requestRedraw()
}

func (api *appComposerAPI) NewDocument() {
	api.app.editor.NewDocument()
	api.app.requestRedraw()
}

// --- Clipboard ---

// ExportToClipboard mirrors the export key chord: serialize, deliver to the
// clipboard, announce the result.
func (api *appComposerAPI) ExportToClipboard() error {
	markupText := api.app.editor.ExportMarkup()
	if err := api.app.editor.CopyText(markupText); err != nil {
		return fmt.Errorf("clipboard write failed: %w", err)
	}
	api.app.eventManager.Dispatch(event.TypeExportCopied, event.ExportCopiedData{Markup: markupText})
	api.SetStatusMessage("Markup copied to clipboard (%d chars)", utf8.RuneCountInString(markupText))
	return nil
}

func (api *appComposerAPI) ReadClipboardText() (string, bool) {
	return api.app.editor.ReadClipboardText()
}

// --- Formatting ---

func (api *appComposerAPI) ToggleMark(name string) error {
	mark, ok := document.MarkFromName(name)
	if !ok {
		return fmt.Errorf("unknown mark '%s'", name)
	}
	if !api.app.editor.ToggleMark(mark) {
		return fmt.Errorf("nothing selected; select text to format")
	}
	api.app.requestRedraw()
	return nil
}

func (api *appComposerAPI) ToggleBlock(name string) error {
	kind, ok := document.KindFromName(name)
	if !ok {
		return fmt.Errorf("unknown block kind '%s'", name)
	}
	api.app.editor.ToggleBlock(kind)
	api.app.requestRedraw()
	return nil
}

func (api *appComposerAPI) SetColor(hex string) error {
	if hex != "" {
		if _, err := theme.ParseColor(hex); err != nil {
			return fmt.Errorf("invalid color '%s' (want #RRGGBB)", hex)
		}
	}
	if !api.app.editor.SetColor(hex) {
		return fmt.Errorf("nothing selected; select text to color")
	}
	api.app.requestRedraw()
	return nil
}

func (api *appComposerAPI) IsMarkActive(name string) bool {
	mark, ok := document.MarkFromName(name)
	if !ok {
		return false
	}
	return api.app.editor.IsMarkActive(mark)
}

func (api *appComposerAPI) ActiveBlock() string {
	return api.app.editor.FormatState().Block.String()
}

func (api *appComposerAPI) ActiveColor() string {
	return api.app.editor.FormatState().Color
}

// --- Cursor & Viewport ---

func (api *appComposerAPI) GetCursor() types.Position {
	return api.app.editor.GetCursor()
}

func (api *appComposerAPI) SetCursor(pos types.Position) {
	api.app.editor.SetCursor(pos) // Editor's method handles clamping and scrolling
	api.app.requestRedraw()       // Ensure redraw happens after API call sets cursor
}

func (api *appComposerAPI) GetViewport() (top, height int) {
	return api.app.editor.GetViewport()
}

// --- Event Bus Interaction ---

func (api *appComposerAPI) DispatchEvent(eventType event.Type, data interface{}) {
	api.app.eventManager.Dispatch(eventType, data) // Delegate to app's manager
}

func (api *appComposerAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler) // Delegate to app's manager
}

// --- Command Registration ---

func (api *appComposerAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	// Get the mode handler via the app reference and delegate
	if api.app == nil || api.app.GetModeHandler() == nil {
		// This would be a programming error during setup
		logger.Debugf("ERROR: appComposerAPI cannot register command '%s', app or modeHandler is nil", name)
		return fmt.Errorf("internal error: API cannot access command registration")
	}
	return api.app.GetModeHandler().RegisterCommand(name, cmdFunc)
}

// --- Status Bar ---

func (api *appComposerAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.statusBar.SetTemporaryMessage(format, args...) // Delegate to status bar
	api.app.requestRedraw()                                // Ensure redraw to show message
}

// --- Theme Access ---

func (api *appComposerAPI) GetThemeStyle(styleName string) tcell.Style {
	return api.app.themeManager.Current().GetStyle(styleName)
}

// SetTheme sets the active theme by name
func (api *appComposerAPI) SetTheme(name string) error {
	if err := api.app.themeManager.SetTheme(name); err != nil {
		return err
	}

	api.app.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{
		ThemeName: api.app.themeManager.Current().Name,
	})

	logger.Debugf("Theme changed to '%s', redraw requested", name)
	return nil
}

// GetTheme returns the current active theme
func (api *appComposerAPI) GetTheme() *theme.Theme {
	return api.app.themeManager.Current()
}

// ListThemes returns a list of all available theme names
func (api *appComposerAPI) ListThemes() []string {
	return api.app.themeManager.ListThemes()
}

// --- UI Modes ---

func (api *appComposerAPI) ShowPreview() {
	api.app.modeHandler.EnterPreview()
	api.app.requestRedraw()
}

func (api *appComposerAPI) OpenColorPicker() {
	api.app.modeHandler.OpenColorPicker()
	api.app.requestRedraw()
}

// --- Application ---

// RequestQuit signals the application to quit
func (api *appComposerAPI) RequestQuit(force bool) {
	if force {
		logger.Debugf("API: Force quit requested.")
		close(api.app.quit) // Close directly if forced
		return
	}
	if api.app.isModified() {
		logger.Debugf("API: Quit requested, but mail was never exported. Setting status.")
		api.SetStatusMessage("Not exported! Use :q! or Ctrl+Q to discard and quit.")
		// Don't close the channel here. Let the command fail.
		return
	}
	logger.Debugf("API: Quit requested (mail exported or untouched).")
	close(api.app.quit)
}

func (api *appComposerAPI) MailLimit() int {
	return api.app.cfg.Editor.MailLimit
}
