package commands

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/solenne/mailwright/internal/logger"
	"github.com/solenne/mailwright/internal/plugin"
)

// RegisterAppCommands registers the built-in command set: export and
// import, document lifecycle, formatting toggles and theme switching.
func RegisterAppCommands(api plugin.ComposerAPI, themeAPI ThemeAPI) {
	RegisterMailCommands(api)
	RegisterFormatCommands(api)
	RegisterThemeCommands(api, themeAPI)
}

// RegisterMailCommands registers commands that act on the mail as a whole.
func RegisterMailCommands(api plugin.ComposerAPI) {
	register := func(name string, cmdFunc plugin.CommandFunc) {
		if err := api.RegisterCommand(name, cmdFunc); err != nil {
			logger.Warnf("Failed to register ':%s' command: %v", name, err)
		}
	}

	exportCmdFunc := func(args []string) error {
		return api.ExportToClipboard()
	}

	importCmdFunc := func(args []string) error {
		text, ok := api.ReadClipboardText()
		if !ok {
			return fmt.Errorf("clipboard is empty")
		}
		api.ImportMarkup(text)
		api.SetStatusMessage("Imported %d blocks from clipboard", api.LeafCount())
		return nil
	}

	newCmdFunc := func(args []string) error {
		api.NewDocument()
		api.SetStatusMessage("New mail")
		return nil
	}

	previewCmdFunc := func(args []string) error {
		api.ShowPreview()
		return nil
	}

	register("export", exportCmdFunc)
	register("copy", exportCmdFunc) // Alias, matches the status bar wording
	register("import", importCmdFunc)
	register("new", newCmdFunc)
	register("preview", previewCmdFunc)

	quitCmdFunc := func(args []string) error {
		api.RequestQuit(false)
		return nil
	}
	register("q", quitCmdFunc)
	register("quit", quitCmdFunc)
	register("q!", func(args []string) error {
		api.RequestQuit(true)
		return nil
	})
}

// RegisterFormatCommands registers one command per inline mark and block
// kind, named after the canonical mark/kind names where they fit a command
// line (:bold, :h1, :bullets, ...).
func RegisterFormatCommands(api plugin.ComposerAPI) {
	register := func(name string, cmdFunc plugin.CommandFunc) {
		if err := api.RegisterCommand(name, cmdFunc); err != nil {
			logger.Warnf("Failed to register ':%s' command: %v", name, err)
		}
	}

	for _, name := range []string{"bold", "italic", "underline", "code"} {
		mark := name
		register(mark, func(args []string) error {
			return api.ToggleMark(mark)
		})
	}

	blocks := []struct {
		command string
		kind    string
	}{
		{"paragraph", "paragraph"},
		{"h1", "heading-1"},
		{"h2", "heading-2"},
		{"quote", "block-quote"},
		{"bullets", "bulleted-list"},
		{"numbers", "numbered-list"},
	}
	for _, b := range blocks {
		kind := b.kind
		register(b.command, func(args []string) error {
			return api.ToggleBlock(kind)
		})
	}

	colorCmdFunc := func(args []string) error {
		if len(args) == 0 || strings.EqualFold(args[0], "clear") {
			if err := api.SetColor(""); err != nil {
				return err
			}
			api.SetStatusMessage("Color cleared")
			return nil
		}
		hex := strings.ToLower(args[0])
		// W3C color names work too (:color tomato).
		if c, ok := tcell.ColorNames[hex]; ok {
			hex = fmt.Sprintf("#%06x", c.Hex())
		}
		if err := api.SetColor(hex); err != nil {
			return err
		}
		api.SetStatusMessage("Color %s applied", hex)
		return nil
	}
	register("color", colorCmdFunc)

	register("palette", func(args []string) error {
		api.OpenColorPicker()
		return nil
	})
}

// RegisterThemeCommands registers only theme-related commands
func RegisterThemeCommands(api plugin.ComposerAPI, themeAPI ThemeAPI) {
	// --- Theme Command ---
	themeCmdFunc := func(args []string) error {
		if len(args) == 0 {
			// Show current theme
			currentTheme := themeAPI.GetTheme()
			themeAPI.SetStatusMessage("Current theme: %s", currentTheme.Name)
			return nil
		}

		themeName := strings.Join(args, " ") // Allow theme names with spaces
		err := themeAPI.SetTheme(themeName)  // API call handles manager update and redraw request
		if err != nil {
			themes := themeAPI.ListThemes()
			themeList := strings.Join(themes, ", ")
			return fmt.Errorf("theme '%s' not found. Available: %s", themeName, themeList)
		}
		themeAPI.SetStatusMessage("Theme set to: %s", themeName)
		return nil
	}

	// --- Theme List Command ---
	themeListCmdFunc := func(args []string) error {
		themes := themeAPI.ListThemes()
		themeList := strings.Join(themes, ", ")
		themeAPI.SetStatusMessage("Available themes: %s", themeList)
		return nil
	}

	// --- Register the commands ---
	err := api.RegisterCommand("theme", themeCmdFunc)
	if err != nil {
		logger.Warnf("Failed to register ':theme' command: %v", err)
	}
	err = api.RegisterCommand("themes", themeListCmdFunc) // Alias :themes for listing
	if err != nil {
		logger.Warnf("Failed to register ':themes' command: %v", err)
	}
}
