package scene

import (
	"fmt"
	"math"

	"diya-scene.klederson.com/internal/config"
)

// Property names an animatable channel of an element.
type Property string

const (
	PropOpacity    Property = "opacity"
	PropGlowRadius Property = "glow-radius" // drop-shadow blur in px
	PropGlowAlpha  Property = "glow-alpha"  // drop-shadow alpha
	PropY          Property = "y"           // vertical offset in px, negative is up
	PropScale      Property = "scale"
	PropRotate     Property = "rotate" // degrees
)

// Ease is the timing function applied to each keyframe segment.
type Ease string

const (
	EaseLinear Ease = "linear"
	EaseInOut  Ease = "easeInOut"
)

const (
	easeInOutX1   = 0.42
	easeInOutX2   = 0.58
	bezierEpsilon = 1e-6
)

// Repeat selects how a curve continues past the end of its period.
// Every curve repeats forever.
type Repeat string

const (
	RepeatLoop   Repeat = "loop"
	RepeatMirror Repeat = "mirror"
)

// Track is the keyframe list for one property. Keyframes are spaced evenly
// across the curve period.
type Track struct {
	Property  Property  `yaml:"property"`
	Keyframes []float64 `yaml:"keyframes,flow"`
}

// Curve is a named, reusable, infinitely repeating animation.
type Curve struct {
	Name   string  `yaml:"name"`
	Period float64 `yaml:"period"` // seconds per pass
	Delay  float64 `yaml:"delay,omitempty"`
	Repeat Repeat  `yaml:"repeat"`
	Ease   Ease    `yaml:"ease"`
	Tracks []Track `yaml:"tracks"`
}

// BuildLampAnimationProfile returns the flicker shared by every lamp with the
// given custom index. The period grows by LampPeriodStep per index so that
// neighbouring lamps drift out of phase.
func BuildLampAnimationProfile(customIndex int) Curve {
	return Curve{
		Name:   fmt.Sprintf("lamp-%d", customIndex),
		Period: config.LampPeriodBase + float64(customIndex)*config.LampPeriodStep,
		Repeat: RepeatMirror,
		Ease:   EaseInOut,
		Tracks: []Track{
			{Property: PropOpacity, Keyframes: []float64{0.95, 1, 0.9, 1}},
			{Property: PropGlowRadius, Keyframes: []float64{18, 32, 24, 32}},
			{Property: PropGlowAlpha, Keyframes: []float64{0.45, 0.65, 0.55, 0.65}},
		},
	}
}

// LampProfiles builds one profile per distinct lamp index in [0, n).
func LampProfiles(n int) []Curve {
	out := make([]Curve, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, BuildLampAnimationProfile(i))
	}
	return out
}

// ParticleDrift is the rise-and-fade loop of one floating particle.
func ParticleDrift(d Descriptor) Curve {
	return Curve{
		Name:   d.ID,
		Period: d.Duration,
		Delay:  d.Delay,
		Repeat: RepeatLoop,
		Ease:   EaseInOut,
		Tracks: []Track{
			{Property: PropY, Keyframes: []float64{0, -25, 0}},
			{Property: PropScale, Keyframes: []float64{d.Scale, d.Scale * 1.2, d.Scale}},
			{Property: PropOpacity, Keyframes: []float64{0.1, 0.45, 0.1}},
		},
	}
}

// HandsMotion raises the king's hands towards the diya stand.
func HandsMotion() Curve {
	return Curve{
		Name:   "hands-lighting",
		Period: config.HandsPeriod,
		Repeat: RepeatLoop,
		Ease:   EaseInOut,
		Tracks: []Track{
			{Property: PropRotate, Keyframes: []float64{0, -2.5, 0}},
			{Property: PropY, Keyframes: []float64{0, -8, 0}},
		},
	}
}

// TrayMotion sways the queen's flower tray.
func TrayMotion() Curve {
	return Curve{
		Name:   "flower-tray",
		Period: config.TrayPeriod,
		Repeat: RepeatLoop,
		Ease:   EaseInOut,
		Tracks: []Track{
			{Property: PropRotate, Keyframes: []float64{2, -1.5, 2}},
			{Property: PropY, Keyframes: []float64{0, -4, 0}},
		},
	}
}

// Progress maps an absolute time in seconds to the position within the
// current pass, in [0, 1]. Before the delay has elapsed it stays at 0.
func (c Curve) Progress(t float64) float64 {
	t -= c.Delay
	if t <= 0 || c.Period <= 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		return 0
	}
	passes := t / c.Period
	n := math.Floor(passes)
	frac := passes - n
	if c.Repeat == RepeatMirror && math.Mod(n, 2) == 1 {
		frac = 1 - frac
	}
	return frac
}

// Sample evaluates property p at time t. ok is false when the curve does not
// animate p.
func (c Curve) Sample(p Property, t float64) (v float64, ok bool) {
	for _, tr := range c.Tracks {
		if tr.Property == p {
			return tr.at(c.Progress(t), c.Ease), true
		}
	}
	return 0, false
}

// ValueOr is Sample with a fallback for unanimated properties.
func (c Curve) ValueOr(p Property, t, fallback float64) float64 {
	if v, ok := c.Sample(p, t); ok {
		return v
	}
	return fallback
}

func (tr Track) at(progress float64, ease Ease) float64 {
	k := tr.Keyframes
	switch len(k) {
	case 0:
		return 0
	case 1:
		return k[0]
	}
	segments := len(k) - 1
	pos := progress * float64(segments)
	seg := int(math.Floor(pos))
	if seg >= segments {
		seg = segments - 1
	}
	if seg < 0 {
		seg = 0
	}
	local := applyEase(ease, pos-float64(seg))
	return k[seg] + (k[seg+1]-k[seg])*local
}

func applyEase(e Ease, p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	if e != EaseInOut {
		return p
	}
	// cubic-bezier(0.42, 0, 0.58, 1): solve x(s) = p by bisection, return y(s)
	lo, hi := 0.0, 1.0
	s := p
	for i := 0; i < 32; i++ {
		x := bezier(s, easeInOutX1, easeInOutX2)
		if math.Abs(x-p) < bezierEpsilon {
			break
		}
		if x < p {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return bezier(s, 0, 1)
}

// bezier evaluates one axis of a cubic Bézier anchored at 0 and 1.
func bezier(s, a, b float64) float64 {
	u := 1 - s
	return 3*u*u*s*a + 3*u*s*s*b + s*s*s
}
