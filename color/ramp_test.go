package color

import (
	"errors"
	"math"
	"testing"
)

func approxColor(a, b Color, eps float64) bool {
	return math.Abs(a.R-b.R) <= eps && math.Abs(a.G-b.G) <= eps && math.Abs(a.B-b.B) <= eps
}

func TestNewRampEmpty(t *testing.T) {
	if _, err := NewRamp("empty", nil); !errors.Is(err, ErrEmptyColorList) {
		t.Fatalf("expected ErrEmptyColorList, got %v", err)
	}
}

func TestRampAt(t *testing.T) {
	r, err := NewRamp("bw", []Color{{0, 0, 0}, {1, 1, 1}})
	if err != nil {
		t.Fatalf("NewRamp returned error: %v", err)
	}

	tests := []struct {
		t    float64
		want Color
	}{
		{-1, Color{0, 0, 0}},
		{0, Color{0, 0, 0}},
		{0.25, Color{0.25, 0.25, 0.25}},
		{0.5, Color{0.5, 0.5, 0.5}},
		{1, Color{1, 1, 1}},
		{2, Color{1, 1, 1}},
	}
	for _, tt := range tests {
		if got := r.At(tt.t); !approxColor(got, tt.want, 1e-12) {
			t.Errorf("At(%v) = %+v, want %+v", tt.t, got, tt.want)
		}
	}
}

func TestRampAtThreeStops(t *testing.T) {
	r, _ := NewRamp("rgb", []Color{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})

	if got := r.At(0.5); !approxColor(got, Color{0, 1, 0}, 1e-12) {
		t.Errorf("At(0.5) = %+v, want pure green", got)
	}
	if got := r.At(0.75); !approxColor(got, Color{0, 0.5, 0.5}, 1e-12) {
		t.Errorf("At(0.75) = %+v, want {0 0.5 0.5}", got)
	}
}

func TestRampResampleRoundTrip(t *testing.T) {
	seeds := []Color{
		{30.0 / 255, 67.0 / 255, 99.0 / 255},
		{252.0 / 255, 242.0 / 255, 203.0 / 255},
		{1, 176.0 / 255, 13.0 / 255},
		{1, 137.0 / 255, 38.0 / 255},
		{188.0 / 255, 45.0 / 255, 25.0 / 255},
	}
	r, _ := NewRamp("demo", seeds)

	got := r.Resample(len(seeds))
	if len(got) != len(seeds) {
		t.Fatalf("Resample returned %d colors, want %d", len(got), len(seeds))
	}
	for i := range seeds {
		if got[i] != seeds[i] {
			t.Errorf("sample %d = %+v, want %+v", i, got[i], seeds[i])
		}
	}
}

func TestRampResampleCounts(t *testing.T) {
	r, _ := NewRamp("bw", []Color{{0, 0, 0}, {1, 1, 1}})

	if got := r.Resample(0); got != nil {
		t.Errorf("Resample(0) = %v, want nil", got)
	}

	one := r.Resample(1)
	if len(one) != 1 || one[0] != (Color{0, 0, 0}) {
		t.Errorf("Resample(1) = %v, want first color", one)
	}

	five := r.Resample(5)
	for i, c := range five {
		want := float64(i) / 4
		if math.Abs(c.R-want) > 1e-12 {
			t.Errorf("sample %d R = %v, want %v", i, c.R, want)
		}
	}
}

func TestRampSingleColor(t *testing.T) {
	c := Color{0.2, 0.4, 0.6}
	r, err := NewRamp("solo", []Color{c})
	if err != nil {
		t.Fatalf("NewRamp returned error: %v", err)
	}
	for _, s := range r.Resample(3) {
		if s != c {
			t.Errorf("sample = %+v, want %+v", s, c)
		}
	}
	if got := r.At(0.7); got != c {
		t.Errorf("At(0.7) = %+v, want %+v", got, c)
	}
}

func TestRampIsImmutable(t *testing.T) {
	colors := []Color{{0, 0, 0}, {1, 1, 1}}
	r, _ := NewRamp("bw", colors)

	colors[0] = Color{1, 0, 0}
	if r.At(0) != (Color{0, 0, 0}) {
		t.Error("ramp changed when the input slice was mutated")
	}

	out := r.Colors()
	out[1] = Color{0, 0, 1}
	if r.At(1) != (Color{1, 1, 1}) {
		t.Error("ramp changed when Colors() result was mutated")
	}
}
