// internal/theme/theme_test.go
package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeThemeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadThemeFromFile(t *testing.T) {
	path := writeThemeFile(t, `
name = "Courier"
is_dark = false

[styles.Default]
fg = "#111111"
bg = "#eeeeee"

[styles."Text.Heading1"]
fg = "#aa0000"
bold = true
`)
	th, err := LoadThemeFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Courier", th.Name)
	assert.False(t, th.IsDark)

	fg, bg, _ := th.Styles["Default"].Decompose()
	assert.Equal(t, tcell.NewRGBColor(0x11, 0x11, 0x11), fg)
	assert.Equal(t, tcell.NewRGBColor(0xee, 0xee, 0xee), bg)

	fg, bg, attrs := th.Styles["Text.Heading1"].Decompose()
	assert.Equal(t, tcell.NewRGBColor(0xaa, 0x00, 0x00), fg)
	// Unset properties inherit from the theme's Default.
	assert.Equal(t, tcell.NewRGBColor(0xee, 0xee, 0xee), bg)
	assert.NotZero(t, attrs&tcell.AttrBold)
}

func TestLoadThemeNameFallsBackToFilename(t *testing.T) {
	path := writeThemeFile(t, "[styles.Default]\nfg = \"#000000\"\n")
	th, err := LoadThemeFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", th.Name)
}

func TestLoadThemeSkipsBadStyle(t *testing.T) {
	path := writeThemeFile(t, `
name = "Odd"

[styles.Broken]
fg = "notacolor"

[styles.Fine]
fg = "#00ff00"
`)
	th, err := LoadThemeFromFile(path)
	require.NoError(t, err)
	_, ok := th.Styles["Broken"]
	assert.False(t, ok)
	_, ok = th.Styles["Fine"]
	assert.True(t, ok)
}

func TestGetStyleFallbackChain(t *testing.T) {
	th := &Theme{
		Name: "T",
		Styles: map[string]tcell.Style{
			"Default":    tcell.StyleDefault.Foreground(tcell.ColorWhite),
			"Markup":     tcell.StyleDefault.Foreground(tcell.ColorBlue),
			"Markup.Tag": tcell.StyleDefault.Foreground(tcell.ColorRed),
		},
	}
	assert.Equal(t, th.Styles["Markup.Tag"], th.GetStyle("Markup.Tag"))
	// Unknown subtype falls back to its base name.
	assert.Equal(t, th.Styles["Markup"], th.GetStyle("Markup.Entity"))
	// Unknown base falls back to Default.
	assert.Equal(t, th.Styles["Default"], th.GetStyle("Palette.Label"))
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#FF8800")
	require.NoError(t, err)
	assert.Equal(t, tcell.NewRGBColor(0xff, 0x88, 0x00), c)

	c, err = ParseColor("reset")
	require.NoError(t, err)
	assert.Equal(t, tcell.ColorReset, c)

	c, err = ParseColor("default")
	require.NoError(t, err)
	assert.Equal(t, tcell.ColorDefault, c)

	_, err = ParseColor("#12")
	assert.Error(t, err)
	_, err = ParseColor("rainbow")
	assert.Error(t, err)
}

func TestBuiltinThemeCoversComposerStyles(t *testing.T) {
	for _, name := range []string{
		"Default", "Selection", "SearchHighlight", "StatusBar",
		"Text.Heading1", "Text.Heading2", "Text.Quote", "Text.ListMarker", "Text.Code",
		"Markup.Tag", "Markup.Value", "Markup.Entity",
		"Palette.Selected",
	} {
		_, ok := ScribeDark.Styles[name]
		assert.True(t, ok, "missing style %s", name)
	}
}
