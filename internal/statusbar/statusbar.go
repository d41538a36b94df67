// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg" // For proper Unicode width calculation
	"github.com/solenne/mailwright/internal/types"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style // Default background/foreground
	StyleModified  tcell.Style // Style for the modified indicator
	StyleMessage   tcell.Style // Style for temporary messages
	StyleFindInput tcell.Style // Style for find mode input
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleModified:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlue).Bold(true),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		StyleFindInput: tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// FormatInfo describes the formatting state at the caret for display:
// the block kind plus which marks and color are active.
type FormatInfo struct {
	Block     string
	Bold      bool
	Italic    bool
	Underline bool
	Code      bool
	Color     string
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex // Protect access to text fields

	// Content fields (updated externally)
	format     FormatInfo
	cursorPos  types.Position
	charCount  int  // length of the exported markup
	isModified bool // edited since the last export
	editorMode string

	// Temporary message state
	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
	}
}

// SetStyles swaps the bar's styles in place, used when the theme changes.
func (sb *StatusBar) SetStyles(def, modified, message, findInput tcell.Style) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.config.StyleDefault = def
	sb.config.StyleModified = modified
	sb.config.StyleMessage = message
	sb.config.StyleFindInput = findInput
}

// SetFormatInfo updates the caret formatting segment.
func (sb *StatusBar) SetFormatInfo(fi FormatInfo) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.format = fi
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetCharCount updates the exported markup length shown.
func (sb *StatusBar) SetCharCount(n int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.charCount = n
}

// SetModified marks whether the mail changed since the last export.
func (sb *StatusBar) SetModified(modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.isModified = modified
}

// SetEditorMode updates the displayed mode.
func (sb *StatusBar) SetEditorMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.editorMode = mode
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// formatSummary renders the caret formatting as a compact segment like
// "heading-1 [BI #cf2e2e]".
func (sb *StatusBar) formatSummary() string {
	fi := sb.format
	block := fi.Block
	if block == "" {
		block = "paragraph"
	}

	var marks strings.Builder
	if fi.Bold {
		marks.WriteByte('B')
	}
	if fi.Italic {
		marks.WriteByte('I')
	}
	if fi.Underline {
		marks.WriteByte('U')
	}
	if fi.Code {
		marks.WriteByte('~')
	}
	indicators := marks.String()
	if fi.Color != "" {
		if indicators != "" {
			indicators += " "
		}
		indicators += fi.Color
	}

	if indicators == "" {
		return block
	}
	return fmt.Sprintf("%s [%s]", block, indicators)
}

// getDefaultDisplayText builds the default status line text.
func (sb *StatusBar) getDefaultDisplayText() string {
	// Assumes lock is held by Draw
	modifiedIndicator := ""
	if sb.isModified {
		modifiedIndicator = " [+]"
	}

	modeIndicator := ""
	if sb.editorMode != "" {
		modeIndicator = fmt.Sprintf(" -- %s", sb.editorMode)
	}

	cursor := sb.cursorPos
	return fmt.Sprintf("%s%s -- Block: %d, Col: %d -- %d chars%s",
		sb.formatSummary(), modifiedIndicator, cursor.Line+1, cursor.Col+1, sb.charCount, modeIndicator)
}

// Draw renders the status bar onto the screen using visual widths.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1 // Status bar is always the last line

	sb.mu.Lock()
	// Clear expired temporary message *before* getting display text
	isTempMsgActive := !sb.tempMessageTime.IsZero() && time.Since(sb.tempMessageTime) <= sb.config.MessageTimeout
	isFindInput := isTempMsgActive && len(sb.tempMessage) > 0 && sb.tempMessage[0] == '/'

	if !sb.tempMessageTime.IsZero() && !isTempMsgActive {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	var style tcell.Style
	var text string

	if isTempMsgActive {
		text = sb.tempMessage
		if isFindInput {
			style = sb.config.StyleFindInput
		} else {
			style = sb.config.StyleMessage
		}
	} else {
		text = sb.getDefaultDisplayText()
		style = sb.config.StyleDefault
	}

	sb.mu.Unlock()

	// Fill background first
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	// Draw text using uniseg for width calculation
	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break // Stop if cluster doesn't fit
		}

		runes := gr.Runes()
		if len(runes) > 0 {
			mainRune := runes[0]
			var combiningRunes []rune
			if len(runes) > 1 {
				combiningRunes = runes[1:]
			}
			screen.SetContent(currentX, y, mainRune, combiningRunes, style)
		}

		currentX += clusterWidth
	}
}
