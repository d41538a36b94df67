// internal/render/preview.go
package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
	"github.com/solenne/mailwright/internal/config"
	"github.com/solenne/mailwright/internal/theme"
	"github.com/solenne/mailwright/internal/tui"
)

// Style classes for serialized markup text.
const (
	tokText = iota
	tokTag
	tokValue
	tokEntity
)

// classifyMarkup assigns a style class to every rune of one serialized
// line. Tags and entities never span lines, and escaped text never
// contains a raw '<' or '&' that opens one, so a per-line scan is enough.
func classifyMarkup(line string) []int {
	runes := []rune(line)
	classes := make([]int, len(runes))
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '<':
			end := -1
			for j := i + 1; j < len(runes); j++ {
				if runes[j] == '>' {
					end = j
					break
				}
			}
			if end == -1 {
				classes[i] = tokText
				continue
			}
			eq := -1
			for j := i + 1; j < end; j++ {
				if runes[j] == '=' {
					eq = j
					break
				}
			}
			for j := i; j <= end; j++ {
				if eq != -1 && j > eq && j < end {
					classes[j] = tokValue
				} else {
					classes[j] = tokTag
				}
			}
			i = end
		case '&':
			// Longest emitted entity is "&quot;".
			end := -1
			for j := i + 1; j < len(runes) && j <= i+6; j++ {
				if runes[j] == ';' {
					end = j
					break
				}
			}
			if end == -1 {
				classes[i] = tokText
				continue
			}
			for j := i; j <= end; j++ {
				classes[j] = tokEntity
			}
			i = end
		default:
			classes[i] = tokText
		}
	}
	return classes
}

// previewLines splits serialized markup for display. The serializer ends
// every block with a newline, so the trailing empty split is dropped.
func previewLines(markupText string) []string {
	lines := strings.Split(markupText, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// PreviewLineCount returns how many rows the preview needs, used by the
// mode handler to clamp its scroll offset.
func PreviewLineCount(markupText string) int {
	return len(previewLines(markupText))
}

// Preview draws the serialized markup in the content area, one exported
// block per row, starting at the given scroll offset.
func Preview(tuiManager *tui.TUI, markupText string, offset int, activeTheme *theme.Theme) {
	if activeTheme == nil {
		activeTheme = theme.GetCurrentTheme()
	}

	baseStyle := activeTheme.GetStyle("Markup")
	styles := map[int]tcell.Style{
		tokText:   baseStyle,
		tokTag:    activeTheme.GetStyle("Markup.Tag"),
		tokValue:  activeTheme.GetStyle("Markup.Value"),
		tokEntity: activeTheme.GetStyle("Markup.Entity"),
	}

	screen := tuiManager.GetScreen()
	width, height := tuiManager.Size()
	viewHeight := height - config.StatusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	lines := previewLines(markupText)

	for screenY := 0; screenY < viewHeight; screenY++ {
		for fillX := 0; fillX < width; fillX++ {
			screen.SetContent(fillX, screenY, ' ', nil, baseStyle)
		}

		lineIdx := screenY + offset
		if lineIdx < 0 || lineIdx >= len(lines) {
			continue
		}

		lineStr := lines[lineIdx]
		classes := classifyMarkup(lineStr)

		gr := uniseg.NewGraphemes(lineStr)
		currentVisualX := 0
		currentRuneIndex := 0

		for gr.Next() {
			clusterRunes := gr.Runes()
			clusterWidth := gr.Width()

			currentStyle := baseStyle
			if currentRuneIndex < len(classes) {
				currentStyle = styles[classes[currentRuneIndex]]
			}

			if currentVisualX < width {
				screen.SetContent(currentVisualX, screenY, clusterRunes[0], clusterRunes[1:], currentStyle)
				for cw := 1; cw < clusterWidth; cw++ {
					fillX := currentVisualX + cw
					if fillX < width {
						screen.SetContent(fillX, screenY, ' ', nil, currentStyle)
					}
				}
			}

			currentVisualX += clusterWidth
			currentRuneIndex += len(clusterRunes)
			if currentVisualX >= width {
				break
			}
		}
	}

	screen.HideCursor()
}
