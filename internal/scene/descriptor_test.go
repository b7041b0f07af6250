package scene

import (
	"math"
	"reflect"
	"testing"

	"diya-scene.klederson.com/internal/config"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func TestGenerateParticlesFirstIndex(t *testing.T) {
	p := GenerateParticles(config.ParticleCount)[0]

	if p.ID != "particle-1" {
		t.Errorf("Expected ID particle-1, got %s", p.ID)
	}
	checks := []struct {
		name     string
		got, exp float64
	}{
		{"delay", p.Delay, 0.6},
		{"duration", p.Duration, 7},
		{"scale", p.Scale, 0.65},
		{"left", p.Left, 47},
		{"top", p.Top, 83},
	}
	for _, c := range checks {
		if !approx(c.got, c.exp) {
			t.Errorf("Expected %s %v, got %v", c.name, c.exp, c.got)
		}
	}
}

func TestGenerateParticlesRanges(t *testing.T) {
	particles := GenerateParticles(config.ParticleCount)
	if len(particles) != 36 {
		t.Fatalf("Expected 36 particles, got %d", len(particles))
	}
	for i, p := range particles {
		if p.Index != i+1 {
			t.Errorf("Expected index %d, got %d", i+1, p.Index)
		}
		if p.Left < 0 || p.Left >= 100 || p.Top < 0 || p.Top >= 100 {
			t.Errorf("%s: position (%v, %v) outside [0,100)", p.ID, p.Left, p.Top)
		}
		if p.Duration < 6 || p.Duration > 10 {
			t.Errorf("%s: duration %v outside [6,10]", p.ID, p.Duration)
		}
		if p.Scale < 0.5-eps || p.Scale > 1.25 {
			t.Errorf("%s: scale %v outside [0.5,1.25]", p.ID, p.Scale)
		}
		if p.Delay < 0 || p.Delay > 6*0.6+eps {
			t.Errorf("%s: delay %v outside [0,3.6]", p.ID, p.Delay)
		}
		if p.Family != FamilyParticle {
			t.Errorf("%s: expected family particle, got %s", p.ID, p.Family)
		}
	}
}

func TestGenerateParticlesDeterministic(t *testing.T) {
	a := GenerateParticles(config.ParticleCount)
	b := GenerateParticles(config.ParticleCount)
	if !reflect.DeepEqual(a, b) {
		t.Error("Expected identical particle sequences across calls")
	}
}

func TestGenerateParticlesTotal(t *testing.T) {
	if got := GenerateParticles(0); len(got) != 0 {
		t.Errorf("Expected no particles for count 0, got %d", len(got))
	}
	if got := GenerateParticles(-3); len(got) != 0 {
		t.Errorf("Expected no particles for negative count, got %d", len(got))
	}
	big := GenerateParticles(1000)
	for _, p := range big {
		if p.Left < 0 || p.Left >= 100 || p.Top < 0 || p.Top >= 100 {
			t.Fatalf("%s: position (%v, %v) outside [0,100)", p.ID, p.Left, p.Top)
		}
	}
}

func TestGenerateBackgroundLamps(t *testing.T) {
	lamps := GenerateBackgroundLamps(config.BackgroundLampCount)
	if len(lamps) != 18 {
		t.Fatalf("Expected 18 lamps, got %d", len(lamps))
	}

	tests := []struct {
		index     int
		left, top float64
	}{
		{0, 5, 5},
		{5, 85, 5},
		{6, 5, 27},
		{7, 21, 27},
		{17, 85, 49},
	}
	for _, tt := range tests {
		l := lamps[tt.index]
		if l.Left != tt.left || l.Top != tt.top {
			t.Errorf("lamp %d: expected (%v, %v), got (%v, %v)", tt.index, tt.left, tt.top, l.Left, l.Top)
		}
	}

	for _, l := range lamps {
		if l.Left < 5 || l.Left > 85 || l.Top < 5 || l.Top > 49 {
			t.Errorf("%s: position (%v, %v) outside bounds", l.ID, l.Left, l.Top)
		}
		if l.Profile != l.Index {
			t.Errorf("%s: expected profile %d, got %d", l.ID, l.Index, l.Profile)
		}
	}
	if lamps[7].ID != "background-lamp-7" {
		t.Errorf("Expected ID background-lamp-7, got %s", lamps[7].ID)
	}
}

func TestGenerateForegroundLamps(t *testing.T) {
	diyas := GenerateForegroundLamps(config.ForegroundLampCount)
	if len(diyas) != 5 {
		t.Fatalf("Expected 5 diyas, got %d", len(diyas))
	}
	expected := []float64{-130, -65, 0, 65, 130}
	for i, d := range diyas {
		if d.OffsetX != expected[i] {
			t.Errorf("diya %d: expected offset %v, got %v", i, expected[i], d.OffsetX)
		}
	}
}

func TestGenerateTrayLamps(t *testing.T) {
	tray := GenerateTrayLamps(config.TrayLampCount)
	if len(tray) != 3 {
		t.Fatalf("Expected 3 tray lamps, got %d", len(tray))
	}
	for i := 1; i < len(tray); i++ {
		if tray[i].Left <= tray[i-1].Left {
			t.Errorf("Expected tray lamps left to right, got %v after %v", tray[i].Left, tray[i-1].Left)
		}
	}
	if tray[0].Left <= 0 || tray[2].Left >= 100 {
		t.Errorf("Expected tray lamps inside the tray, got %v..%v", tray[0].Left, tray[2].Left)
	}
}
