package stage

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Cell is one terminal character with its colours.
type Cell struct {
	Rune rune
	Fg   colorful.Color
	Bg   colorful.Color
}

// Canvas is a width×height grid of cells that layers paint into.
type Canvas struct {
	cells  []Cell
	width  int
	height int
	base   Cell
}

// NewCanvas creates a canvas filled with blank cells on bg.
func NewCanvas(width, height int, bg colorful.Color) *Canvas {
	c := &Canvas{base: Cell{Rune: ' ', Fg: bg, Bg: bg}}
	c.Resize(width, height)
	return c
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient,
// and clears the canvas.
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(c.cells) < size {
		c.cells = make([]Cell, size)
	} else {
		c.cells = c.cells[:size]
	}
	c.width = width
	c.height = height
	c.Clear()
}

// Clear resets all cells to the base cell using exponential copy.
func (c *Canvas) Clear() {
	if len(c.cells) == 0 {
		return
	}
	c.cells[0] = c.base
	for filled := 1; filled < len(c.cells); filled *= 2 {
		copy(c.cells[filled:], c.cells[:filled])
	}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) inBounds(col, row int) bool {
	return col >= 0 && col < c.width && row >= 0 && row < c.height
}

// At returns the cell at (col, row); out-of-bounds reads return the base cell.
func (c *Canvas) At(col, row int) Cell {
	if !c.inBounds(col, row) {
		return c.base
	}
	return c.cells[row*c.width+col]
}

// SetBg paints the background of a cell, keeping its glyph.
func (c *Canvas) SetBg(col, row int, bg colorful.Color) {
	if !c.inBounds(col, row) {
		return
	}
	c.cells[row*c.width+col].Bg = bg
}

// Draw writes a glyph whose foreground is blended over the cell background
// with the given alpha (0 leaves the cell untouched, 1 is fully opaque).
func (c *Canvas) Draw(col, row int, ch rune, fg colorful.Color, alpha float64) {
	if !c.inBounds(col, row) || alpha <= 0 {
		return
	}
	cell := &c.cells[row*c.width+col]
	cell.Rune = ch
	cell.Fg = cell.Bg.BlendLab(fg, clamp01(alpha)).Clamped()
}

// Glow blends light into the background of a cell. Glyph colours are lifted
// by the same amount so text stays readable inside a halo.
func (c *Canvas) Glow(col, row int, light colorful.Color, alpha float64) {
	if !c.inBounds(col, row) || alpha <= 0 {
		return
	}
	a := clamp01(alpha)
	cell := &c.cells[row*c.width+col]
	cell.Bg = cell.Bg.BlendRgb(light, a).Clamped()
	if cell.Rune != ' ' {
		cell.Fg = cell.Fg.BlendRgb(light, a/2).Clamped()
	}
}

// Row returns the glyphs of one row without styling.
func (c *Canvas) Row(row int) string {
	if row < 0 || row >= c.height {
		return ""
	}
	var sb strings.Builder
	for _, cell := range c.cells[row*c.width : (row+1)*c.width] {
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}

// String renders the canvas with Lip Gloss, one style per run of cells that
// share colours.
func (c *Canvas) String() string {
	var sb strings.Builder
	for row := 0; row < c.height; row++ {
		line := c.cells[row*c.width : (row+1)*c.width]
		start := 0
		for col := 1; col <= len(line); col++ {
			if col < len(line) && sameStyle(line[col], line[start]) {
				continue
			}
			sb.WriteString(renderRun(line[start:col]))
			start = col
		}
		if row < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func sameStyle(a, b Cell) bool {
	return sameColor(a.Bg, b.Bg) && (sameColor(a.Fg, b.Fg) || (a.Rune == ' ' && b.Rune == ' '))
}

func sameColor(a, b colorful.Color) bool {
	ar, ag, ab := a.RGB255()
	br, bg, bb := b.RGB255()
	return ar == br && ag == bg && ab == bb
}

func renderRun(run []Cell) string {
	if len(run) == 0 {
		return ""
	}
	runes := make([]rune, len(run))
	for i, cell := range run {
		runes[i] = cell.Rune
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(run[0].Fg.Hex())).
		Background(lipgloss.Color(run[0].Bg.Hex())).
		Render(string(runes))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// mustHex parses a palette constant. Palette values are compile-time
// constants, so a parse failure is a programming error.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("stage: bad palette colour " + s)
	}
	return c
}
