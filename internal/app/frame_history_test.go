package app

import (
	"math"
	"reflect"
	"testing"
	"time"
)

func TestFrameRingOrder(t *testing.T) {
	r := NewFrameRing(3)
	if r.Values() != nil {
		t.Error("Expected nil values for an empty ring")
	}

	for i := 1; i <= 5; i++ {
		r.Push(time.Duration(i) * time.Millisecond)
	}
	want := []time.Duration{3 * time.Millisecond, 4 * time.Millisecond, 5 * time.Millisecond}
	if got := r.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if r.Len() != 3 {
		t.Errorf("Expected length 3, got %d", r.Len())
	}
}

func TestFrameRingPartial(t *testing.T) {
	r := NewFrameRing(4)
	r.Push(10 * time.Millisecond)
	r.Push(20 * time.Millisecond)
	want := []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}
	if got := r.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestFrameRingFPS(t *testing.T) {
	tests := []struct {
		name   string
		frames []time.Duration
		want   float64
	}{
		{"empty", nil, 0},
		{"steady 20fps", []time.Duration{50 * time.Millisecond, 50 * time.Millisecond}, 20},
		{"mixed", []time.Duration{100 * time.Millisecond, 300 * time.Millisecond}, 5},
		{"zero intervals", []time.Duration{0, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewFrameRing(8)
			for _, d := range tt.frames {
				r.Push(d)
			}
			if got := r.FPS(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected %v fps, got %v", tt.want, got)
			}
		})
	}
}

func TestFrameRingMinimumCapacity(t *testing.T) {
	r := NewFrameRing(0)
	r.Push(time.Second)
	r.Push(2 * time.Second)
	if got := r.Values(); len(got) != 1 || got[0] != 2*time.Second {
		t.Errorf("Expected only the latest interval, got %v", got)
	}
}
