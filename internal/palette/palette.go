// internal/palette/palette.go
// Package palette provides the color swatches offered in picker mode and
// the selection state the picker navigates.
package palette

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/solenne/mailwright/internal/logger"
)

// Swatch is one selectable color.
type Swatch struct {
	Hex   string // normalized "#rrggbb"
	color colorful.Color
}

// TcellColor returns the swatch color for terminal rendering.
func (s Swatch) TcellColor() tcell.Color {
	r, g, b := s.color.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// LabelColor returns black or white, whichever sits farther from the
// swatch in Lab space, so the hex label stays readable on the swatch.
func (s Swatch) LabelColor() tcell.Color {
	black := colorful.Color{R: 0, G: 0, B: 0}
	white := colorful.Color{R: 1, G: 1, B: 1}
	if s.color.DistanceLab(black) >= s.color.DistanceLab(white) {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}

// defaultHexes are offered when no swatches are configured. The first
// entries match the colors the example mail uses.
var defaultHexes = []string{
	"#0693e3", // vivid cyan blue
	"#8ed1fc", // pale cyan blue
	"#00d084", // vivid green cyan
	"#7bdcb5", // light green cyan
	"#fcb900", // luminous amber
	"#ff6900", // luminous orange
	"#cf2e2e", // vivid red
	"#f78da7", // pale pink
	"#9900ef", // vivid purple
	"#abb8c3", // cyan bluish gray
	"#ffffff", // white
	"#000000", // black
}

// Palette is an ordered set of swatches plus a selection cursor.
type Palette struct {
	swatches []Swatch
	selected int
}

// New builds a palette from configured hex strings, dropping invalid
// entries. An empty or fully-invalid list falls back to the built-ins.
func New(hexes []string) *Palette {
	p := &Palette{}
	for _, h := range hexes {
		s, err := parseSwatch(h)
		if err != nil {
			logger.Warnf("Palette: skipping invalid swatch %q: %v", h, err)
			continue
		}
		p.swatches = append(p.swatches, s)
	}
	if len(p.swatches) == 0 {
		for _, h := range defaultHexes {
			s, err := parseSwatch(h)
			if err != nil {
				continue
			}
			p.swatches = append(p.swatches, s)
		}
	}
	return p
}

func parseSwatch(h string) (Swatch, error) {
	c, err := colorful.Hex(strings.ToLower(strings.TrimSpace(h)))
	if err != nil {
		return Swatch{}, err
	}
	return Swatch{Hex: c.Hex(), color: c}, nil
}

// Len returns the number of swatches.
func (p *Palette) Len() int { return len(p.swatches) }

// Swatches returns the swatches in order.
func (p *Palette) Swatches() []Swatch { return p.swatches }

// Selected returns the swatch under the cursor.
func (p *Palette) Selected() Swatch { return p.swatches[p.selected] }

// SelectedIndex returns the cursor position.
func (p *Palette) SelectedIndex() int { return p.selected }

// SelectedHex returns the hex of the swatch under the cursor.
func (p *Palette) SelectedHex() string { return p.swatches[p.selected].Hex }

// Next moves the cursor forward, wrapping at the end.
func (p *Palette) Next() {
	p.selected = (p.selected + 1) % len(p.swatches)
}

// Prev moves the cursor backward, wrapping at the start.
func (p *Palette) Prev() {
	p.selected = (p.selected - 1 + len(p.swatches)) % len(p.swatches)
}

// Select moves the cursor to index i when in range.
func (p *Palette) Select(i int) {
	if i >= 0 && i < len(p.swatches) {
		p.selected = i
	}
}

// SelectNearest moves the cursor to the swatch matching hex exactly, or
// failing that the perceptually closest one. Unparseable hex leaves the
// cursor alone and reports false.
func (p *Palette) SelectNearest(hex string) bool {
	c, err := colorful.Hex(strings.ToLower(strings.TrimSpace(hex)))
	if err != nil {
		return false
	}
	target := c.Hex()
	best, bestDist := p.selected, math.MaxFloat64
	for i, s := range p.swatches {
		if s.Hex == target {
			p.selected = i
			return true
		}
		if d := c.DistanceLab(s.color); d < bestDist {
			best, bestDist = i, d
		}
	}
	p.selected = best
	return true
}
