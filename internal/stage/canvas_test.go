package stage

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestCanvasBlank(t *testing.T) {
	c := NewCanvas(4, 2, colorNight)
	if c.Width() != 4 || c.Height() != 2 {
		t.Fatalf("Expected 4x2, got %dx%d", c.Width(), c.Height())
	}
	for row := 0; row < 2; row++ {
		if got := c.Row(row); got != "    " {
			t.Errorf("row %d: expected blanks, got %q", row, got)
		}
	}
	if got := c.Row(5); got != "" {
		t.Errorf("Expected empty out-of-range row, got %q", got)
	}
}

func TestCanvasDraw(t *testing.T) {
	c := NewCanvas(3, 1, colorNight)

	c.Draw(1, 0, '*', colorFlame, 1)
	if got := c.Row(0); got != " * " {
		t.Errorf("Expected %q, got %q", " * ", got)
	}
	if !sameColor(c.At(1, 0).Fg, colorFlame) {
		t.Errorf("Expected opaque draw to use the flame colour, got %s", c.At(1, 0).Fg.Hex())
	}

	c.Draw(0, 0, 'x', colorFlame, 0)
	if got := c.Row(0); got != " * " {
		t.Errorf("Expected zero alpha to be a no-op, got %q", got)
	}

	// out of bounds writes are ignored
	c.Draw(-1, 0, 'x', colorFlame, 1)
	c.Draw(3, 0, 'x', colorFlame, 1)
	c.Draw(0, 1, 'x', colorFlame, 1)
	if got := c.Row(0); got != " * " {
		t.Errorf("Expected out-of-bounds draws to be ignored, got %q", got)
	}
}

func TestCanvasGlow(t *testing.T) {
	c := NewCanvas(2, 1, colorNight)
	c.Glow(0, 0, colorGold, 0.5)

	lit := c.At(0, 0).Bg
	dark := c.At(1, 0).Bg
	_, _, lLit := lit.Hcl()
	_, _, lDark := dark.Hcl()
	if lLit <= lDark {
		t.Errorf("Expected glow to brighten the cell, got L %v <= %v", lLit, lDark)
	}
	if c.At(0, 0).Rune != ' ' {
		t.Error("Expected glow to keep the glyph")
	}
}

func TestCanvasResizeClears(t *testing.T) {
	c := NewCanvas(4, 4, colorNight)
	c.Draw(0, 0, '#', colorGold, 1)
	c.Resize(2, 3)
	if c.Width() != 2 || c.Height() != 3 {
		t.Fatalf("Expected 2x3, got %dx%d", c.Width(), c.Height())
	}
	if got := c.Row(0); got != "  " {
		t.Errorf("Expected cleared row, got %q", got)
	}
	c.Resize(-1, 5)
	if c.Width() != 0 || c.String() != strings.Repeat("\n", 4) {
		t.Errorf("Expected empty rows for zero width, got %q", c.String())
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(5, 3, colorNight)
	c.Draw(2, 1, '^', colorFlameCore, 1)

	lines := strings.Split(ansi.Strip(c.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	want := []string{"     ", "  ^  ", "     "}
	for i, line := range lines {
		if line != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], line)
		}
	}
}

func TestSameStyle(t *testing.T) {
	red := colorful.Color{R: 1}
	blue := colorful.Color{B: 1}

	tests := []struct {
		name string
		a, b Cell
		want bool
	}{
		{"identical", Cell{'a', red, blue}, Cell{'b', red, blue}, true},
		{"different bg", Cell{'a', red, blue}, Cell{'a', red, red}, false},
		{"different fg", Cell{'a', red, blue}, Cell{'a', blue, blue}, false},
		{"blank cells ignore fg", Cell{' ', red, blue}, Cell{' ', blue, blue}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sameStyle(tt.a, tt.b); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
