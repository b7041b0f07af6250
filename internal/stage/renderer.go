package stage

import (
	"math"

	"diya-scene.klederson.com/internal/config"
	"diya-scene.klederson.com/internal/scene"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	colorNight      = mustHex(config.ColorNight)
	colorSmoke      = mustHex(config.ColorSmoke)
	colorStone      = mustHex(config.ColorStone)
	colorStoneLight = mustHex(config.ColorStoneLight)
	colorGold       = mustHex(config.ColorGold)
	colorFlame      = mustHex(config.ColorFlame)
	colorFlameCore  = mustHex(config.ColorFlameCore)
	colorEmber      = mustHex(config.ColorEmber)
	colorMarigold   = mustHex(config.ColorMarigold)
	colorRose       = mustHex(config.ColorRose)
	colorSilhouette = mustHex(config.ColorSilhouette)
	colorSari       = mustHex(config.ColorSari)
	colorTurban     = mustHex(config.ColorTurban)
	colorFloor      = mustHex(config.ColorFloor)
)

// partStyle maps a sprite mask letter to the child layer that owns it and the
// colour it is drawn in. Parts whose layer is missing from the scene fall
// back to the plain silhouette.
var partStyle = map[rune]struct {
	layer string
	color colorful.Color
}{
	partTurban: {"turban", colorTurban},
	partFace:   {"face-male", colorStoneLight},
	partDrape:  {"shoulder-drape", colorGold},
	partVeil:   {"hair-veil", colorRose},
	partSari:   {"sari-drape", colorSari},
}

type painter func(s *Stage, l scene.Layer, r cellRect)

// painters draws layers by name. Layers without a painter (groups, figure
// parts covered by the figure sprite, the caption) only contribute bounds.
var painters = map[string]painter{
	"smoke":             (*Stage).paintSmoke,
	"pillar-left":       (*Stage).paintPillar,
	"pillar-right":      (*Stage).paintPillar,
	"arch-glow":         (*Stage).paintArchGlow,
	"arch-gradient":     (*Stage).paintArchOutline,
	"garland-primary":   (*Stage).paintGarland,
	"garland-secondary": (*Stage).paintGarland,
	"floor-reflect":     (*Stage).paintFloor,
	"particles":         (*Stage).paintParticles,
	"diagonal-glow":     (*Stage).paintDiagonalGlow,
	"background-lamps":  (*Stage).paintBackgroundLamps,
	"diya-cluster":      (*Stage).paintDiyas,
	"male-figure":       (*Stage).paintFigure,
	"female-figure":     (*Stage).paintFigure,
	"hands":             (*Stage).paintHands,
	"flower-tray":       (*Stage).paintTray,
}

// Stage rasterizes a composed scene into terminal frames.
type Stage struct {
	desc   scene.Description
	canvas *Canvas
	t      float64
	parts  map[string]bool
}

// New creates a stage for desc. The description is read, never modified.
func New(desc scene.Description) *Stage {
	parts := make(map[string]bool)
	scene.Walk(desc.Layers, func(l scene.Layer) { parts[l.Name] = true })
	return &Stage{
		desc:   desc,
		canvas: NewCanvas(0, 0, colorNight),
		parts:  parts,
	}
}

// Canvas exposes the last painted frame.
func (s *Stage) Canvas() *Canvas { return s.canvas }

// Render paints a frame of the given size at animation time t (seconds).
// It returns "" when the area is too small to hold the scene.
func (s *Stage) Render(width, height int, t float64) string {
	if width < config.MinStageWidth || height < config.MinStageHeight {
		return ""
	}
	s.canvas.Resize(width, height)
	s.t = t
	s.paintLayers(s.desc.Layers, cellRect{W: width, H: height})
	return s.canvas.String()
}

func (s *Stage) paintLayers(layers []scene.Layer, parent cellRect) {
	for _, l := range layers {
		r := parent.sub(l.Bounds)
		if p, ok := painters[l.Name]; ok {
			p(s, l, r)
		}
		s.paintLayers(l.Children, r)
	}
}

// lamp samples the shared flicker of a lamp: opacity, halo radius in
// columns and halo alpha.
func (s *Stage) lamp(profile int) (opacity, radius, alpha float64) {
	c := s.desc.LampProfile(profile)
	opacity = c.ValueOr(scene.PropOpacity, s.t, 1)
	radius = c.ValueOr(scene.PropGlowRadius, s.t, 18) / config.PixelsPerCol
	alpha = c.ValueOr(scene.PropGlowAlpha, s.t, 0.45)
	return opacity, radius, alpha
}

// halo spreads light around (col, row).
func (s *Stage) halo(col, row int, radius, alpha float64, light colorful.Color) {
	rc := int(math.Ceil(radius))
	rr := int(math.Ceil(radius * config.AspectRatio))
	for dr := -rr; dr <= rr; dr++ {
		for dc := -rc; dc <= rc; dc++ {
			s.canvas.Glow(col+dc, row+dr, light, alpha*GlowFalloff(dc, dr, radius))
		}
	}
}

func (s *Stage) paintSmoke(_ scene.Layer, r cellRect) {
	for row := r.Y; row < r.Y+r.H; row++ {
		ratio := float64(row-r.Y) / float64(max(r.H-1, 1))
		bg := colorSmoke.BlendLab(colorNight, ratio)
		shimmer := 0.05 * math.Sin(s.t*0.5+ratio*math.Pi)
		if shimmer > 0 {
			bg = bg.BlendRgb(colorEmber, shimmer)
		}
		for col := r.X; col < r.X+r.W; col++ {
			s.canvas.SetBg(col, row, bg.Clamped())
		}
	}
	// incense curls drifting upwards
	if r.H <= 0 {
		return
	}
	for col := r.X + 3; col < r.X+r.W; col += 11 {
		rise := int(s.t*1.5) + col*3
		row := r.Y + r.H - 1 - rise%r.H
		s.canvas.Draw(col, row, '~', colorStoneLight, 0.25)
	}
}

func (s *Stage) paintPillar(_ scene.Layer, r cellRect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	for row := r.Y; row < r.Y+r.H; row++ {
		for col := r.X; col < r.X+r.W; col++ {
			switch {
			case row == r.Y:
				s.canvas.Draw(col, row, '▀', colorStoneLight, 0.9)
			case row == r.Y+r.H-1:
				s.canvas.Draw(col, row, '▄', colorStoneLight, 0.9)
			case col == r.X || col == r.X+r.W-1:
				s.canvas.Draw(col, row, '║', colorStoneLight, 0.8)
			case (col-r.X)%3 == 0:
				s.canvas.Draw(col, row, '│', colorStone, 0.7)
			default:
				s.canvas.Draw(col, row, '░', colorStone, 0.55)
			}
		}
	}
}

// archEllipse returns the centre and radii of the arch inside r.
func archEllipse(r cellRect) (cx, cy, rx, ry float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.bottom()), float64(r.W) / 2, float64(r.H - 1)
}

func (s *Stage) paintArchGlow(_ scene.Layer, r cellRect) {
	cx, cy, rx, ry := archEllipse(r)
	pulse, _, _ := s.lamp(0)
	for row := r.Y; row <= r.bottom(); row++ {
		for col := r.X; col < r.X+r.W; col++ {
			d := EllipseDistance(col, row, cx, cy, rx, ry)
			if d < 1 {
				s.canvas.Glow(col, row, colorGold, 0.16*(1-d)*pulse)
			}
		}
	}
}

func (s *Stage) paintArchOutline(_ scene.Layer, r cellRect) {
	cx, cy, rx, ry := archEllipse(r)
	for _, p := range ArchPoints(cx, cy, rx, ry) {
		s.canvas.Draw(p.Col, p.Row, ArcChar(p.Angle), colorGold, 0.7)
	}
	if rx > 3 && ry > 2 {
		for _, p := range ArchPoints(cx, cy, rx-2, ry-1) {
			s.canvas.Draw(p.Col, p.Row, ArcChar(p.Angle), colorStoneLight, 0.45)
		}
	}
}

// paintGarland strings marigold swags across r. The secondary garland hangs
// lower with more swags.
func (s *Stage) paintGarland(l scene.Layer, r cellRect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	depth, sag, swags, phase := 0, float64(r.H-1)*0.5, 3.0, 0
	if l.Name == "garland-secondary" {
		depth, sag, swags, phase = 1, float64(r.H-1)*0.8, 4.0, 1
	}
	for col := r.X; col < r.X+r.W; col++ {
		x := float64(col-r.X) / float64(r.W)
		row := r.Y + depth + int(math.Round(sag*math.Abs(math.Sin(swags*math.Pi*x))))
		if row > r.bottom() {
			row = r.bottom()
		}
		switch (col + phase) % 3 {
		case 0:
			s.canvas.Draw(col, row, '*', colorRose, 0.9)
		default:
			s.canvas.Draw(col, row, 'o', colorMarigold, 0.95)
		}
	}
}

func (s *Stage) paintFloor(_ scene.Layer, r cellRect) {
	pulse, _, _ := s.lamp(2)
	for row := r.Y; row < r.Y+r.H; row++ {
		fade := 1 - float64(row-r.Y)/float64(max(r.H, 1))
		for col := r.X; col < r.X+r.W; col++ {
			s.canvas.SetBg(col, row, colorFloor)
			s.canvas.Glow(col, row, colorGold, 0.18*fade*pulse)
		}
	}
	shift := int(s.t * 2)
	for col := r.X; col < r.X+r.W; col++ {
		if (col+shift)%5 == 0 {
			s.canvas.Draw(col, r.Y, '-', colorGold, 0.3*pulse)
		}
	}
}

func (s *Stage) paintParticles(l scene.Layer, r cellRect) {
	for i, e := range l.Elements {
		if i >= len(s.desc.ParticleCurves) {
			break
		}
		c := s.desc.ParticleCurves[i]
		col, row := r.point(e.Left, e.Top)
		row += PxToRows(c.ValueOr(scene.PropY, s.t, 0))
		scale := c.ValueOr(scene.PropScale, s.t, e.Scale)
		opacity := c.ValueOr(scene.PropOpacity, s.t, 0.1)
		glyph := '*'
		switch {
		case scale < 0.7:
			glyph = '·'
		case scale < 0.95:
			glyph = '•'
		}
		s.canvas.Draw(col, row, glyph, colorFlame, opacity*2)
	}
}

func (s *Stage) paintDiagonalGlow(_ scene.Layer, r cellRect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	const band = 0.12
	for row := r.Y; row < r.Y+r.H; row++ {
		v := float64(row-r.Y) / float64(r.H)
		for col := r.X; col < r.X+r.W; col++ {
			u := float64(col-r.X) / float64(r.W)
			d := math.Abs(u - (0.15 + 0.7*v))
			if d < band {
				s.canvas.Glow(col, row, colorGold, 0.08*(1-d/band))
			}
		}
	}
}

func (s *Stage) paintBackgroundLamps(l scene.Layer, r cellRect) {
	for _, e := range l.Elements {
		col, row := r.point(e.Left, e.Top)
		opacity, radius, alpha := s.lamp(e.Profile)
		s.halo(col, row, radius, alpha*0.5, colorGold)
		s.canvas.Draw(col, row, '*', colorFlame, opacity)
		s.canvas.Draw(col, row+1, '┴', colorStoneLight, 0.8)
	}
}

func (s *Stage) paintDiyas(l scene.Layer, r cellRect) {
	row := r.Y + r.H/2
	for _, e := range l.Elements {
		col := r.centerX() + PxToCols(e.OffsetX)
		opacity, radius, alpha := s.lamp(e.Profile)
		s.halo(col, row, radius, alpha*0.7, colorGold)
		ox, oy := col-diyaSprite.width()/2, row
		s.drawSprite(diyaSprite, ox, oy, func(part rune) (colorful.Color, float64) {
			if part == partFlame {
				return colorFlameCore, opacity
			}
			return colorEmber, 0.9
		})
	}
}

func (s *Stage) paintFigure(l scene.Layer, r cellRect) {
	sp := maleSprite
	if l.Name == "female-figure" {
		sp = femaleSprite
	}
	ox, oy := sp.origin(r)
	s.drawSprite(sp, ox, oy, func(part rune) (colorful.Color, float64) {
		if ps, ok := partStyle[part]; ok && s.parts[ps.layer] {
			return ps.color, 0.95
		}
		return colorSilhouette, 1
	})
}

// motionOffset turns a figure motion into a cell offset: y in rows and the
// rotation approximated as a sideways lean of one column per 2.5 degrees.
func (s *Stage) motionOffset(name string) (dc, dr int) {
	c, ok := s.desc.Motion(name)
	if !ok {
		return 0, 0
	}
	dr = PxToRows(c.ValueOr(scene.PropY, s.t, 0))
	dc = int(math.Round(c.ValueOr(scene.PropRotate, s.t, 0) / 2.5))
	return dc, dr
}

func (s *Stage) paintHands(l scene.Layer, r cellRect) {
	fx, fy := maleSprite.origin(r)
	dc, dr := s.motionOffset(l.Motion)
	ox := fx + maleSprite.width() - 1 + dc
	oy := fy + handsRow - handsSprite.height() + 1 + dr
	s.halo(ox+2, oy, 3, 0.45, colorGold)
	s.drawSprite(handsSprite, ox, oy, func(part rune) (colorful.Color, float64) {
		switch part {
		case partFlame:
			return colorFlameCore, 1
		case partHands:
			return colorStoneLight, 0.95
		}
		return colorGold, 0.95
	})
}

func (s *Stage) paintTray(l scene.Layer, r cellRect) {
	fx, fy := femaleSprite.origin(r)
	dc, dr := s.motionOffset(l.Motion)
	w := len(trayBase)
	ox := fx - w + 1 + dc
	oy := fy + trayRow - 2 + dr
	for _, e := range l.Elements {
		col := ox + int(e.Left/100*float64(w))
		s.halo(col, oy, 2, 0.35, colorGold)
		s.canvas.Draw(col, oy, '^', colorFlameCore, 1)
	}
	for i, ch := range trayFlowers {
		fg := colorMarigold
		if ch == '*' {
			fg = colorRose
		}
		s.canvas.Draw(ox+i, oy+1, ch, fg, 0.95)
	}
	for i, ch := range trayBase {
		s.canvas.Draw(ox+i, oy+2, ch, colorGold, 0.9)
	}
}

// drawSprite paints sp with its top-left corner at (ox, oy). style picks the
// colour and alpha for each mask letter.
func (s *Stage) drawSprite(sp sprite, ox, oy int, style func(part rune) (colorful.Color, float64)) {
	for dy, line := range sp.glyphs {
		mask := []rune(sp.mask[dy])
		for dx, ch := range []rune(line) {
			if dx >= len(mask) || mask[dx] == ' ' {
				continue
			}
			fg, alpha := style(mask[dx])
			s.canvas.Draw(ox+dx, oy+dy, ch, fg, alpha)
		}
	}
}
