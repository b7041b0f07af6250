package scene

import (
	"fmt"
	"math"

	"diya-scene.klederson.com/internal/config"
)

// Family identifies which group of decorative elements a descriptor belongs to.
type Family string

const (
	FamilyParticle       Family = "particle"
	FamilyBackgroundLamp Family = "background-lamp"
	FamilyForegroundLamp Family = "diya"
	FamilyTrayLamp       Family = "tray-lamp"
)

// Descriptor is an immutable record describing one decorative element.
// Left and Top are percentages of the containing layer, Delay and Duration are
// seconds. OffsetX is a pixel offset from the container centre and is only
// used by the foreground diya cluster.
type Descriptor struct {
	ID       string  `yaml:"id"`
	Family   Family  `yaml:"family"`
	Index    int     `yaml:"index"`
	Left     float64 `yaml:"left"`
	Top      float64 `yaml:"top"`
	OffsetX  float64 `yaml:"offset_x,omitempty"`
	Delay    float64 `yaml:"delay,omitempty"`
	Duration float64 `yaml:"duration,omitempty"`
	Scale    float64 `yaml:"scale,omitempty"`
	Profile  int     `yaml:"profile"` // index into Description.LampProfiles, -1 if none
}

// GenerateParticles derives the floating particle field for indices [1, count].
func GenerateParticles(count int) []Descriptor {
	out := make([]Descriptor, 0, max(count, 0))
	for i := 1; i <= count; i++ {
		out = append(out, particle(i))
	}
	return out
}

func particle(seed int) Descriptor {
	return Descriptor{
		ID:       fmt.Sprintf("particle-%d", seed),
		Family:   FamilyParticle,
		Index:    seed,
		Delay:    float64(seed%config.ParticleDelayMod) * config.ParticleDelayStep,
		Duration: float64(config.ParticleDurationMin + seed%config.ParticleDurationMod),
		Scale:    config.ParticleScaleBase + float64(seed%config.ParticleScaleMod)*config.ParticleScaleStep,
		Left:     float64((seed * config.ParticleLeftMul) % 100),
		Top:      float64((seed * config.ParticleTopMul) % 100),
		Profile:  -1,
	}
}

// GenerateBackgroundLamps lays out the wall lamps on a six-column grid for
// indices [0, count).
func GenerateBackgroundLamps(count int) []Descriptor {
	out := make([]Descriptor, 0, max(count, 0))
	for i := 0; i < count; i++ {
		out = append(out, Descriptor{
			ID:      fmt.Sprintf("background-lamp-%d", i),
			Family:  FamilyBackgroundLamp,
			Index:   i,
			Left:    float64((i%config.LampColumns)*config.LampColStep + config.LampGridInset),
			Top:     math.Floor(float64(i)/config.LampColumns)*config.LampRowStep + config.LampGridInset,
			Profile: i,
		})
	}
	return out
}

// GenerateForegroundLamps places the diya cluster: lamps are spaced
// DiyaSpacingPx apart, centred on the middle lamp.
func GenerateForegroundLamps(count int) []Descriptor {
	out := make([]Descriptor, 0, max(count, 0))
	mid := (count - 1) / 2
	for i := 0; i < count; i++ {
		out = append(out, Descriptor{
			ID:      fmt.Sprintf("diya-%d", i),
			Family:  FamilyForegroundLamp,
			Index:   i,
			Left:    50,
			OffsetX: float64((i - mid) * config.DiyaSpacingPx),
			Profile: i,
		})
	}
	return out
}

// GenerateTrayLamps spreads the lamps evenly across the flower tray.
func GenerateTrayLamps(count int) []Descriptor {
	out := make([]Descriptor, 0, max(count, 0))
	for i := 0; i < count; i++ {
		out = append(out, Descriptor{
			ID:      fmt.Sprintf("tray-lamp-%d", i),
			Family:  FamilyTrayLamp,
			Index:   i,
			Left:    float64(100*(2*i+1)) / float64(2*count),
			Top:     0,
			Profile: -1,
		})
	}
	return out
}
