package scene

import (
	"reflect"
	"testing"
)

func TestComposeDeterministic(t *testing.T) {
	a := Compose()
	b := Compose()
	if !reflect.DeepEqual(a, b) {
		t.Error("Expected two compositions to be deeply equal")
	}
}

func TestComposeCounts(t *testing.T) {
	desc := Compose()

	tests := []struct {
		family Family
		want   int
	}{
		{FamilyParticle, 36},
		{FamilyBackgroundLamp, 18},
		{FamilyForegroundLamp, 5},
		{FamilyTrayLamp, 3},
	}
	for _, tt := range tests {
		t.Run(string(tt.family), func(t *testing.T) {
			if got := len(desc.Elements(tt.family)); got != tt.want {
				t.Errorf("Expected %d elements, got %d", tt.want, got)
			}
		})
	}

	if len(desc.ParticleCurves) != 36 {
		t.Errorf("Expected 36 particle curves, got %d", len(desc.ParticleCurves))
	}
	if len(desc.LampProfiles) != 18 {
		t.Errorf("Expected 18 lamp profiles, got %d", len(desc.LampProfiles))
	}
}

func TestComposePaintOrder(t *testing.T) {
	desc := Compose()

	var names []string
	for _, l := range desc.Layers {
		names = append(names, l.Name)
	}
	want := []string{
		"smoke", "pillar-left", "pillar-right", "arch", "garlands",
		"floor-reflect", "particles", "hero-stage", "caption",
	}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Expected top-level order %v, got %v", want, names)
	}

	for _, name := range []string{"arch-glow", "garland-secondary", "diya-cluster", "male-figure", "hair-veil", "flower-tray"} {
		if _, ok := desc.Find(name); !ok {
			t.Errorf("Expected layer %s to exist", name)
		}
	}
	if _, ok := desc.Find("throne"); ok {
		t.Error("Expected unknown layer lookup to fail")
	}
}

func TestComposeMotionsResolve(t *testing.T) {
	desc := Compose()
	Walk(desc.Layers, func(l Layer) {
		if l.Motion == "" {
			return
		}
		if _, ok := desc.Motion(l.Motion); !ok {
			t.Errorf("layer %s: motion %q not found", l.Name, l.Motion)
		}
	})

	hands, _ := desc.Find("hands")
	if hands.Motion != "hands-lighting" {
		t.Errorf("Expected hands to use hands-lighting, got %q", hands.Motion)
	}
}

func TestComposeLampProfilesShared(t *testing.T) {
	desc := Compose()
	for _, l := range desc.Elements(FamilyBackgroundLamp) {
		got := desc.LampProfile(l.Profile)
		if got.Name != BuildLampAnimationProfile(l.Index).Name {
			t.Errorf("%s: expected profile lamp-%d, got %s", l.ID, l.Index, got.Name)
		}
	}
	if got := desc.LampProfile(18).Name; got != "lamp-0" {
		t.Errorf("Expected out-of-range profile to wrap to lamp-0, got %s", got)
	}
	if got := (Description{}).LampProfile(3).Name; got != "lamp-0" {
		t.Errorf("Expected empty description to fall back to lamp-0, got %s", got)
	}
}

func TestComposeMetadata(t *testing.T) {
	desc := Compose()
	if desc.Title != "Royal Ghee Lamp Ceremony" {
		t.Errorf("Expected title, got %q", desc.Title)
	}
	if desc.Caption.Heading != "Royal Blessing of Light" {
		t.Errorf("Expected caption heading, got %q", desc.Caption.Heading)
	}
	if desc.Caption.Body == "" || desc.Summary == "" {
		t.Error("Expected caption body and summary to be set")
	}
}
