// internal/render/palette.go
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/solenne/mailwright/internal/config"
	"github.com/solenne/mailwright/internal/palette"
	"github.com/solenne/mailwright/internal/theme"
	"github.com/solenne/mailwright/internal/tui"
)

const swatchBarWidth = 11

// Palette draws the color picker in the content area: one swatch per row
// with its hex label on the swatch itself, the selected row marked with a
// pointer. Scrolls so the selection stays visible.
func Palette(tuiManager *tui.TUI, pal *palette.Palette, activeTheme *theme.Theme) {
	if activeTheme == nil {
		activeTheme = theme.GetCurrentTheme()
	}

	defaultStyle := activeTheme.GetStyle("Default")
	labelStyle := activeTheme.GetStyle("Palette.Label")
	selectedStyle := activeTheme.GetStyle("Palette.Selected")

	screen := tuiManager.GetScreen()
	width, height := tuiManager.Size()
	viewHeight := height - config.StatusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	// Title row plus one row per swatch.
	swatchRows := viewHeight - 1
	offset := 0
	if swatchRows > 0 && pal.SelectedIndex() >= swatchRows {
		offset = pal.SelectedIndex() - swatchRows + 1
	}

	for screenY := 0; screenY < viewHeight; screenY++ {
		for fillX := 0; fillX < width; fillX++ {
			screen.SetContent(fillX, screenY, ' ', nil, defaultStyle)
		}
	}

	drawString(screen, 0, 0, "Pick a color (digits jump, Enter applies, x clears, Esc cancels)", labelStyle, width)

	swatches := pal.Swatches()
	for row := 0; row < swatchRows; row++ {
		idx := row + offset
		if idx >= len(swatches) {
			break
		}
		screenY := row + 1
		s := swatches[idx]

		// Digit shortcut for the first ten swatches, pointer on the selection.
		key := byte(' ')
		if idx < 9 {
			key = byte('1' + idx)
		} else if idx == 9 {
			key = '0'
		}
		pointerStyle := labelStyle
		pointer := "  "
		if idx == pal.SelectedIndex() {
			pointer = "> "
			pointerStyle = selectedStyle
		}
		drawString(screen, 0, screenY, string(key)+" "+pointer, pointerStyle, width)

		// The hex label sits on the swatch, in whichever of black/white
		// reads better against it.
		swatchStyle := tcell.StyleDefault.Background(s.TcellColor()).Foreground(s.LabelColor())
		label := fmt.Sprintf(" %s ", s.Hex)
		for i := 0; i < swatchBarWidth; i++ {
			x := 4 + i
			if x >= width {
				break
			}
			r := ' '
			if i < len(label) {
				r = rune(label[i])
			}
			screen.SetContent(x, screenY, r, nil, swatchStyle)
		}
	}

	screen.HideCursor()
}

// drawString writes a plain ASCII string, clipping at maxWidth.
func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style, maxWidth int) {
	for i, r := range s {
		if x+i >= maxWidth {
			break
		}
		screen.SetContent(x+i, y, r, nil, style)
	}
}
