package stage

import (
	"math"

	"diya-scene.klederson.com/internal/config"
	"diya-scene.klederson.com/internal/scene"
)

// cellRect is a layer box in terminal cells.
type cellRect struct {
	X, Y, W, H int
}

// sub maps a percent box inside r to cells.
func (r cellRect) sub(b scene.Rect) cellRect {
	x0 := r.X + int(math.Round(float64(r.W)*b.Left/100))
	y0 := r.Y + int(math.Round(float64(r.H)*b.Top/100))
	x1 := r.X + int(math.Round(float64(r.W)*(b.Left+b.Width)/100))
	y1 := r.Y + int(math.Round(float64(r.H)*(b.Top+b.Height)/100))
	return cellRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// point maps a percent position inside r to a cell.
func (r cellRect) point(left, top float64) (col, row int) {
	col = r.X + int(math.Floor(float64(r.W)*left/100))
	row = r.Y + int(math.Floor(float64(r.H)*top/100))
	return col, row
}

func (r cellRect) centerX() int { return r.X + r.W/2 }
func (r cellRect) bottom() int  { return r.Y + r.H - 1 }

// PxToCols converts a CSS pixel distance to terminal columns.
func PxToCols(px float64) int {
	return int(math.Round(px / config.PixelsPerCol))
}

// PxToRows converts a CSS pixel distance to terminal rows.
func PxToRows(px float64) int {
	return int(math.Round(px / config.PixelsPerRow))
}

// NormalizeAngle wraps an angle to [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// ArcChar returns the stroke character for an arch at angle a, where 0 is
// the top of the arch and angles increase clockwise.
func ArcChar(a float64) rune {
	sector := int(math.Round(NormalizeAngle(a)/(math.Pi/4))) % 8
	switch sector {
	case 0, 4:
		return '_'
	case 1, 5:
		return '\\'
	case 2, 6:
		return '|'
	default:
		return '/'
	}
}

// ArchPoints steps along the upper half of an ellipse with the given centre
// and radii, returning distinct cells with their angle (0 = apex).
func ArchPoints(cx, cy, rx, ry float64) []ArcPoint {
	steps := int(math.Max(24, 4*(rx+ry)))
	seen := make(map[[2]int]bool, steps)
	pts := make([]ArcPoint, 0, steps)
	for i := 0; i <= steps; i++ {
		a := -math.Pi/2 + math.Pi*float64(i)/float64(steps)
		col := int(math.Round(cx + rx*math.Sin(a)))
		row := int(math.Round(cy - ry*math.Cos(a)))
		key := [2]int{col, row}
		if seen[key] {
			continue
		}
		seen[key] = true
		pts = append(pts, ArcPoint{Col: col, Row: row, Angle: a})
	}
	return pts
}

// ArcPoint is one cell on an arch outline.
type ArcPoint struct {
	Col, Row int
	Angle    float64
}

// EllipseDistance is the normalised distance of a cell from an ellipse
// centre; 1 lies on the ellipse. ry is in rows, so callers apply the
// terminal aspect when choosing it.
func EllipseDistance(col, row int, cx, cy, rx, ry float64) float64 {
	if rx <= 0 || ry <= 0 {
		return math.Inf(1)
	}
	dx := (float64(col) - cx) / rx
	dy := (float64(row) - cy) / ry
	return math.Sqrt(dx*dx + dy*dy)
}

// GlowFalloff returns the halo strength of a cell at (dc, dr) cells from a
// light source with the given radius in columns. Rows count double because
// terminal cells are about twice as tall as they are wide.
func GlowFalloff(dc, dr int, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	dx := float64(dc)
	dy := float64(dr) / config.AspectRatio
	d := math.Sqrt(dx*dx+dy*dy) / radius
	if d >= 1 {
		return 0
	}
	return (1 - d) * (1 - d)
}
