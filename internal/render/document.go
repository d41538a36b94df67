// internal/render/document.go
// Package render draws the composer's UI components onto the TUI: the
// document view, the terminal cursor, the markup preview and the color
// palette picker.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
	"github.com/solenne/mailwright/internal/core"
	"github.com/solenne/mailwright/internal/document"
	"github.com/solenne/mailwright/internal/logger"
	"github.com/solenne/mailwright/internal/theme"
	"github.com/solenne/mailwright/internal/tui"
	"github.com/solenne/mailwright/internal/types"
)

// visualColumn returns the visual width of text up to (not including) the
// given rune index, counting grapheme clusters so wide characters and
// combining marks land where the terminal puts them.
func visualColumn(text string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	visualWidth := 0
	currentRuneIndex := 0

	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		if currentRuneIndex >= runeIndex {
			break
		}
		visualWidth += gr.Width()
		currentRuneIndex += len(gr.Runes())
	}
	return visualWidth
}

// isPositionWithin checks if pos is within the range [start, end).
// Assumes start <= end (lexicographically normalized). The end position is
// exclusive: a character at the exact end position is NOT inside.
func isPositionWithin(pos, start, end types.Position) bool {
	if pos.Line < start.Line || pos.Line > end.Line {
		return false
	}
	if pos.Line == start.Line && pos.Col < start.Col {
		return false
	}
	if pos.Line == end.Line && pos.Col >= end.Col {
		return false
	}
	return true
}

// leafPrefix returns the decoration drawn before a leaf's text and the
// theme style name to draw it with. The prefix occupies screen cells but
// no document columns.
func leafPrefix(info document.LeafInfo) (string, string) {
	if info.Container != nil {
		switch info.Container.Kind {
		case document.KindBulletedList:
			return "• ", "Text.ListMarker"
		case document.KindNumberedList:
			return fmt.Sprintf("%d. ", info.Ordinal), "Text.ListMarker"
		}
	}
	if info.Block.Kind == document.KindBlockQuote {
		return "│ ", "Text.Quote"
	}
	return "", ""
}

// blockStyleName maps a leaf to the theme style its text starts from.
func blockStyleName(info document.LeafInfo) string {
	switch info.Block.Kind {
	case document.KindHeading1:
		return "Text.Heading1"
	case document.KindHeading2:
		return "Text.Heading2"
	case document.KindBlockQuote:
		return "Text.Quote"
	default:
		return "Text"
	}
}

// runSpan maps a stretch of leaf columns to a resolved style.
type runSpan struct {
	endCol int // exclusive rune offset where this run's text ends
	style  tcell.Style
}

// runStyle layers a run's own formatting over the block's base style.
func runStyle(base tcell.Style, r document.Run, activeTheme *theme.Theme) tcell.Style {
	style := base
	if r.Code {
		style = activeTheme.GetStyle("Text.Code")
	}
	if r.Bold {
		style = style.Bold(true)
	}
	if r.Italic {
		style = style.Italic(true)
	}
	if r.Underline {
		style = style.Underline(true)
	}
	if r.Color != "" {
		if color, err := theme.ParseColor(r.Color); err == nil {
			style = style.Foreground(color)
		} else {
			logger.Debugf("render: unparseable run color %q: %v", r.Color, err)
		}
	}
	return style
}

// buildRunSpans resolves every run of a leaf to a style span.
func buildRunSpans(info document.LeafInfo, activeTheme *theme.Theme) []runSpan {
	base := activeTheme.GetStyle(blockStyleName(info))
	spans := make([]runSpan, 0, len(info.Block.Runs))
	col := 0
	for _, r := range info.Block.Runs {
		col += r.Len()
		spans = append(spans, runSpan{endCol: col, style: runStyle(base, r, activeTheme)})
	}
	return spans
}

// horizontalOffset returns how far the text area scrolls left to keep the
// cursor column visible. One offset shifts every leaf so the view moves as
// a whole; it is recomputed from the cursor on each draw.
func horizontalOffset(editor *core.Editor, width int) int {
	cursor := editor.GetCursor()
	leaves := editor.Document().Leaves()
	if cursor.Line < 0 || cursor.Line >= len(leaves) {
		return 0
	}
	info := leaves[cursor.Line]
	prefix, _ := leafPrefix(info)
	textWidth := width - uniseg.StringWidth(prefix)
	if textWidth <= 0 {
		return 0
	}
	visual := visualColumn(info.Block.Text(), cursor.Col)
	if visual < textWidth {
		return 0
	}
	return visual - textWidth + 1
}

// Document draws the visible portion of the composer using the provided theme.
func Document(tuiManager *tui.TUI, editor *core.Editor, activeTheme *theme.Theme) {
	if activeTheme == nil {
		logger.Warnf("render.Document called with nil theme, using package default.")
		activeTheme = &theme.ScribeDark
		if len(activeTheme.Styles) == 0 {
			activeTheme = &theme.Theme{Styles: map[string]tcell.Style{"Default": tcell.StyleDefault}}
		}
	}

	defaultStyle := activeTheme.GetStyle("Default")
	selectionStyle := activeTheme.GetStyle("Selection")
	searchHighlightStyle := activeTheme.GetStyle("SearchHighlight")

	screen := tuiManager.GetScreen()
	width, height := tuiManager.Size()
	viewTop, viewHeight := editor.GetViewport()
	selStart, selEnd, selectionActive := editor.GetSelection()
	highlights := editor.GetHighlights()

	if viewHeight <= 0 || viewHeight > height || width <= 0 {
		return
	}

	leaves := editor.Document().Leaves()
	viewX := horizontalOffset(editor, width)

	// Bucket search highlights by leaf so the draw loop only scans its own row.
	visibleHighlights := make(map[int][]types.HighlightRegion)
	for _, h := range highlights {
		for lineIdx := h.Start.Line; lineIdx <= h.End.Line; lineIdx++ {
			if lineIdx >= viewTop && lineIdx < viewTop+viewHeight {
				visibleHighlights[lineIdx] = append(visibleHighlights[lineIdx], h)
			}
		}
	}

	for screenY := 0; screenY < viewHeight; screenY++ {
		leafIdx := screenY + viewTop

		// Fill the whole row with the theme background first.
		for fillX := 0; fillX < width; fillX++ {
			screen.SetContent(fillX, screenY, ' ', nil, defaultStyle)
		}

		if leafIdx < 0 || leafIdx >= len(leaves) {
			continue
		}

		info := leaves[leafIdx]

		// --- Block prefix (bullet, number, quote bar) ---
		prefix, prefixStyleName := leafPrefix(info)
		prefixWidth := 0
		if prefix != "" {
			prefixStyle := activeTheme.GetStyle(prefixStyleName)
			for _, r := range prefix {
				if prefixWidth >= width {
					break
				}
				screen.SetContent(prefixWidth, screenY, r, nil, prefixStyle)
				prefixWidth++
			}
		}

		textAreaWidth := width - prefixWidth
		if textAreaWidth <= 0 {
			continue
		}

		// --- Leaf text ---
		lineStr := info.Block.Text()
		spans := buildRunSpans(info, activeTheme)
		lineHighlights := visibleHighlights[leafIdx]

		gr := uniseg.NewGraphemes(lineStr)
		currentVisualX := 0
		currentRuneIndex := 0
		spanIdx := 0

		for gr.Next() {
			clusterRunes := gr.Runes()
			clusterWidth := gr.Width()
			clusterVisualStart := currentVisualX
			clusterVisualEnd := currentVisualX + clusterWidth

			// Screen X accounts for horizontal scroll and the prefix cells.
			screenX := (clusterVisualStart - viewX) + prefixWidth

			if clusterVisualEnd > viewX && clusterVisualStart < viewX+textAreaWidth {
				// --- Determine style (run formatting < search < selection) ---
				for spanIdx < len(spans) && currentRuneIndex >= spans[spanIdx].endCol {
					spanIdx++
				}
				currentStyle := defaultStyle
				if spanIdx < len(spans) {
					currentStyle = spans[spanIdx].style
				}
				currentPos := types.Position{Line: leafIdx, Col: currentRuneIndex}

				for _, h := range lineHighlights {
					if h.Type == types.HighlightSearch && isPositionWithin(currentPos, h.Start, h.End) {
						currentStyle = searchHighlightStyle
						break
					}
				}
				if selectionActive && isPositionWithin(currentPos, selStart, selEnd) {
					currentStyle = selectionStyle
				}

				// --- Draw the cluster ---
				if screenX >= prefixWidth && screenX < width {
					mainRune := clusterRunes[0]
					combining := clusterRunes[1:]

					if mainRune == '\t' {
						// Imported text may carry tabs; expand to the next stop.
						tabSpaces := 4
						visualScreenX := currentVisualX - viewX + prefixWidth
						spacesToDraw := tabSpaces - (visualScreenX % tabSpaces)
						for i := 0; i < spacesToDraw && screenX+i < width; i++ {
							screen.SetContent(screenX+i, screenY, ' ', nil, currentStyle)
						}
					} else {
						screen.SetContent(screenX, screenY, mainRune, combining, currentStyle)
						// Fill remaining cells for wide characters.
						for cw := 1; cw < clusterWidth; cw++ {
							fillX := screenX + cw
							if fillX < width {
								screen.SetContent(fillX, screenY, ' ', nil, currentStyle)
							}
						}
					}
				}
			}

			currentVisualX += clusterWidth
			currentRuneIndex += len(clusterRunes)
			if currentVisualX >= viewX+textAreaWidth {
				break
			}
		}
	}
}
