// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/solenne/mailwright/internal/logger"
)

// Theme maps style names to terminal styles. Names are dotted: "Text"
// covers the editing area, "Text.Heading1" its first subtype, and lookup
// falls back from the full name to the base name to "Default".
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle resolves a style name with base-name and Default fallback.
func (t *Theme) GetStyle(name string) tcell.Style {
	// 1. Try exact name
	if style, ok := t.Styles[name]; ok {
		return style
	}

	// 2. Try base name (part before first dot)
	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.Debugf("Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	// 3. Return "Default" style
	if defStyle, ok := t.Styles["Default"]; ok {
		if name != "Default" {
			logger.Debugf("Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	// 4. Absolute fallback
	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// --- Scribe Dark Theme Definition ---

var ScribeDark Theme

func init() {
	// --- Palette for Scribe Dark ---
	scBackground := tcell.NewHexColor(0x2a2f38) // Muted dark blue/grey (StatusBar BG)
	scForeground := tcell.NewHexColor(0xc5cdd9) // Soft off-white (Default Text)
	scMuted := tcell.NewHexColor(0x5c6370)      // Muted grey (quotes, labels)
	scOrange := tcell.NewHexColor(0xd19a66)     // Muted orange (tag values in preview)
	scYellow := tcell.NewHexColor(0xe5c07b)     // Soft yellow (heading-1)
	scGreen := tcell.NewHexColor(0x98c379)      // Soft green (find prefix)
	scCyan := tcell.NewHexColor(0x56b6c2)       // Soft cyan (heading-2, format segment)
	scBlue := tcell.NewHexColor(0x61afef)       // Soft blue (list markers, tags)
	scMagenta := tcell.NewHexColor(0xc678dd)    // Soft magenta (code mark, entities)

	// Use terminal background, Scribe foreground
	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(scForeground)

	ScribeDark = Theme{
		Name:   "Scribe Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			// --- UI Elements ---
			"Default":         baseStyle,
			"Selection":       baseStyle.Reverse(true),
			"SearchHighlight": tcell.StyleDefault.Background(tcell.ColorOrange).Foreground(tcell.ColorBlack),

			// Status bar segments share the theme background
			"StatusBar":         tcell.StyleDefault.Background(scBackground).Foreground(scForeground),
			"StatusBarModified": tcell.StyleDefault.Background(scBackground).Foreground(scYellow),
			"StatusBarMessage":  tcell.StyleDefault.Background(scBackground).Foreground(scForeground).Bold(true),
			"StatusBarFind":     tcell.StyleDefault.Background(scBackground).Foreground(scGreen).Bold(true),
			"StatusBarFormat":   tcell.StyleDefault.Background(scBackground).Foreground(scCyan),

			// --- Composer text ---
			// Run-level marks (bold, italic, underline, color) come from the
			// document itself; these styles cover block-level looks.
			"Text":            baseStyle,
			"Text.Heading1":   baseStyle.Foreground(scYellow).Bold(true),
			"Text.Heading2":   baseStyle.Foreground(scCyan).Bold(true),
			"Text.Quote":      baseStyle.Foreground(scMuted).Italic(true),
			"Text.ListMarker": baseStyle.Foreground(scBlue),
			"Text.Code":       baseStyle.Foreground(scMagenta),

			// --- Markup preview ---
			"Markup":        baseStyle,
			"Markup.Tag":    baseStyle.Foreground(scBlue),
			"Markup.Value":  baseStyle.Foreground(scOrange),
			"Markup.Entity": baseStyle.Foreground(scMagenta),

			// --- Color palette picker ---
			"Palette.Label":    baseStyle.Foreground(scMuted),
			"Palette.Selected": baseStyle.Reverse(true).Bold(true),
		},
	}

	// Set ScribeDark as the default theme on init
	CurrentTheme = &ScribeDark
}

// CurrentTheme is the process-wide active theme, kept for callers that
// render outside the manager's reach (status bar, plugins).
var CurrentTheme *Theme

func GetCurrentTheme() *Theme {
	if CurrentTheme == nil {
		CurrentTheme = &ScribeDark
	}
	return CurrentTheme
}

func SetCurrentTheme(theme *Theme) {
	if theme != nil {
		CurrentTheme = theme
		logger.Infof("Theme switched to: %s", theme.Name)
	}
}
