package scene

import "diya-scene.klederson.com/internal/config"

// LayerKind tells the rendering surface how to treat a layer.
type LayerKind string

const (
	KindGroup    LayerKind = "group"    // container for child layers
	KindStatic   LayerKind = "static"   // decorative shape with no generated content
	KindElements LayerKind = "elements" // draws the descriptors in Elements
	KindFigure   LayerKind = "figure"   // character silhouette
	KindCaption  LayerKind = "caption"  // text panel, drawn outside the stage
)

// Rect is a box in percent of the parent layer.
type Rect struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

var full = Rect{Left: 0, Top: 0, Width: 100, Height: 100}

// Layer is one node of the scene tree. Children paint after their parent,
// siblings in slice order.
type Layer struct {
	Name     string       `yaml:"name"`
	Kind     LayerKind    `yaml:"kind"`
	Bounds   Rect         `yaml:"bounds"`
	Motion   string       `yaml:"motion,omitempty"` // name of a curve in Description.Motions
	Elements []Descriptor `yaml:"elements,omitempty"`
	Children []Layer      `yaml:"children,omitempty"`
}

// Caption is the text shown beside the stage.
type Caption struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

// Description is the fully composed scene handed to a rendering surface.
// It is built once and never mutated afterwards.
type Description struct {
	Title          string  `yaml:"title"`
	Summary        string  `yaml:"summary"`
	Caption        Caption `yaml:"caption"`
	Layers         []Layer `yaml:"layers"`
	LampProfiles   []Curve `yaml:"lamp_profiles"`
	ParticleCurves []Curve `yaml:"particle_curves"`
	Motions        []Curve `yaml:"motions"`
}

const (
	Title   = "Royal Ghee Lamp Ceremony"
	Summary = "A cinematic recreation of an Indian royal couple celebrating their child's birth in a palace illuminated by ghee lamps."

	CaptionHeading = "Royal Blessing of Light"
	CaptionBody    = "An Indian royal couple honours the birth of their first child with a sacred ghee lamp " +
		"ceremony. The Maharaja kneels to ignite the first diya on an ornate brass stand while the " +
		"Maharani, serene and supportive, offers a tray filled with flowers and shimmering lamps. " +
		"Dozens of flames envelop the carved stone walls in liquid gold, their glow dancing across " +
		"silken fabrics and marigold garlands as incense curls through the grand palace hall."
)

// Compose assembles the scene: static layers, generated descriptors, the
// shared lamp profiles and the figure motions.
func Compose() Description {
	particles := GenerateParticles(config.ParticleCount)
	background := GenerateBackgroundLamps(config.BackgroundLampCount)
	diyas := GenerateForegroundLamps(config.ForegroundLampCount)
	tray := GenerateTrayLamps(config.TrayLampCount)

	particleCurves := make([]Curve, 0, len(particles))
	for _, p := range particles {
		particleCurves = append(particleCurves, ParticleDrift(p))
	}

	hands := HandsMotion()
	trayMotion := TrayMotion()

	return Description{
		Title:   Title,
		Summary: Summary,
		Caption: Caption{Heading: CaptionHeading, Body: CaptionBody},
		Layers: []Layer{
			{Name: "smoke", Kind: KindStatic, Bounds: full},
			{Name: "pillar-left", Kind: KindStatic, Bounds: Rect{Left: 0, Top: 0, Width: 9, Height: 100}},
			{Name: "pillar-right", Kind: KindStatic, Bounds: Rect{Left: 91, Top: 0, Width: 9, Height: 100}},
			{Name: "arch", Kind: KindGroup, Bounds: Rect{Left: 18, Top: 2, Width: 64, Height: 66}, Children: []Layer{
				{Name: "arch-glow", Kind: KindStatic, Bounds: full},
				{Name: "arch-gradient", Kind: KindStatic, Bounds: full},
			}},
			{Name: "garlands", Kind: KindGroup, Bounds: Rect{Left: 9, Top: 0, Width: 82, Height: 20}, Children: []Layer{
				{Name: "garland-primary", Kind: KindStatic, Bounds: full},
				{Name: "garland-secondary", Kind: KindStatic, Bounds: full},
			}},
			{Name: "floor-reflect", Kind: KindStatic, Bounds: Rect{Left: 0, Top: 84, Width: 100, Height: 16}},
			{Name: "particles", Kind: KindElements, Bounds: full, Elements: particles},
			{Name: "hero-stage", Kind: KindGroup, Bounds: Rect{Left: 9, Top: 8, Width: 82, Height: 90}, Children: []Layer{
				{Name: "diagonal-glow", Kind: KindStatic, Bounds: full},
				{Name: "background-lamps", Kind: KindElements, Bounds: Rect{Left: 0, Top: 0, Width: 100, Height: 62}, Elements: background},
				{Name: "diya-cluster", Kind: KindElements, Bounds: Rect{Left: 0, Top: 82, Width: 100, Height: 12}, Elements: diyas},
				{Name: "couple", Kind: KindGroup, Bounds: Rect{Left: 12, Top: 36, Width: 76, Height: 62}, Children: []Layer{
					{Name: "male-figure", Kind: KindFigure, Bounds: Rect{Left: 0, Top: 0, Width: 46, Height: 100}, Children: []Layer{
						{Name: "turban", Kind: KindStatic, Bounds: full},
						{Name: "face-male", Kind: KindStatic, Bounds: full},
						{Name: "shoulder-drape", Kind: KindStatic, Bounds: full},
						{Name: "hands", Kind: KindElements, Bounds: full, Motion: hands.Name},
					}},
					{Name: "female-figure", Kind: KindFigure, Bounds: Rect{Left: 54, Top: 0, Width: 46, Height: 100}, Children: []Layer{
						{Name: "hair-veil", Kind: KindStatic, Bounds: full},
						{Name: "face-female", Kind: KindStatic, Bounds: full},
						{Name: "sari-drape", Kind: KindStatic, Bounds: full},
						{Name: "flower-tray", Kind: KindElements, Bounds: full, Motion: trayMotion.Name, Elements: tray},
					}},
				}},
			}},
			{Name: "caption", Kind: KindCaption, Bounds: Rect{Left: 66, Top: 58, Width: 32, Height: 38}},
		},
		LampProfiles:   LampProfiles(max(config.BackgroundLampCount, config.ForegroundLampCount)),
		ParticleCurves: particleCurves,
		Motions:        []Curve{hands, trayMotion},
	}
}

// Find returns the first layer named name, searching depth first.
func (d Description) Find(name string) (Layer, bool) {
	return findLayer(d.Layers, name)
}

func findLayer(layers []Layer, name string) (Layer, bool) {
	for _, l := range layers {
		if l.Name == name {
			return l, true
		}
		if found, ok := findLayer(l.Children, name); ok {
			return found, true
		}
	}
	return Layer{}, false
}

// Elements collects every descriptor of family f in paint order.
func (d Description) Elements(f Family) []Descriptor {
	var out []Descriptor
	Walk(d.Layers, func(l Layer) {
		for _, e := range l.Elements {
			if e.Family == f {
				out = append(out, e)
			}
		}
	})
	return out
}

// Motion returns the named figure motion.
func (d Description) Motion(name string) (Curve, bool) {
	for _, c := range d.Motions {
		if c.Name == name {
			return c, true
		}
	}
	return Curve{}, false
}

// LampProfile returns the shared flicker for a profile index. Indices outside
// the built set wrap around.
func (d Description) LampProfile(i int) Curve {
	if len(d.LampProfiles) == 0 {
		return BuildLampAnimationProfile(0)
	}
	if i < 0 {
		i = -i
	}
	return d.LampProfiles[i%len(d.LampProfiles)]
}

// Walk visits layers depth first in paint order.
func Walk(layers []Layer, fn func(Layer)) {
	for _, l := range layers {
		fn(l)
		Walk(l.Children, fn)
	}
}
