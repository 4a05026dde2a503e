package color

import (
	"errors"
	"math"
	"testing"
)

var demoSeeds = []Color{
	{30.0 / 255, 67.0 / 255, 99.0 / 255},
	{252.0 / 255, 242.0 / 255, 203.0 / 255},
	{1, 176.0 / 255, 13.0 / 255},
	{1, 137.0 / 255, 38.0 / 255},
	{188.0 / 255, 45.0 / 255, 25.0 / 255},
}

func toHSV(colors []Color) []HSV {
	out := make([]HSV, len(colors))
	for i, c := range colors {
		out[i] = c.HSV()
	}
	return out
}

func TestModifyHSVBrightnessTouchesOnlyValue(t *testing.T) {
	in := toHSV(demoSeeds)
	for _, s := range Stops {
		out, err := ModifyHSV(in, Brightness, s)
		if err != nil {
			t.Fatalf("ModifyHSV returned error: %v", err)
		}
		for i := range in {
			if out[i].H != in[i].H || out[i].S != in[i].S {
				t.Errorf("stop %d color %d: hue/saturation changed %+v -> %+v", s, i, in[i], out[i])
			}
			want, _ := Adjust(in[i].V, s)
			if out[i].V != want {
				t.Errorf("stop %d color %d: V = %v, want %v", s, i, out[i].V, want)
			}
		}
	}
}

func TestModifyHSVSaturationTouchesOnlySaturation(t *testing.T) {
	in := toHSV(demoSeeds)
	out, err := ModifyHSV(in, Saturation, LightPlus)
	if err != nil {
		t.Fatalf("ModifyHSV returned error: %v", err)
	}
	for i := range in {
		if out[i].H != in[i].H || out[i].V != in[i].V {
			t.Errorf("color %d: hue/value changed %+v -> %+v", i, in[i], out[i])
		}
		if out[i].S < in[i].S {
			t.Errorf("color %d: saturation decreased %v -> %v", i, in[i].S, out[i].S)
		}
	}
}

func TestModifyHSVDoesNotMutateInput(t *testing.T) {
	in := toHSV(demoSeeds)
	before := append([]HSV(nil), in...)
	if _, err := ModifyHSV(in, Brightness, DarkPlus); err != nil {
		t.Fatalf("ModifyHSV returned error: %v", err)
	}
	for i := range in {
		if in[i] != before[i] {
			t.Fatalf("input mutated at %d", i)
		}
	}
}

func TestModifyRejectsUnknownChannel(t *testing.T) {
	if _, err := Modify("x", demoSeeds, Channel(0), Dark); !errors.Is(err, ErrInvalidChannel) {
		t.Errorf("expected ErrInvalidChannel, got %v", err)
	}
	if _, err := Modify("x", demoSeeds, Channel(9), Dark); !errors.Is(err, ErrInvalidChannel) {
		t.Errorf("expected ErrInvalidChannel, got %v", err)
	}
}

func TestModifyRejectsInvalidStop(t *testing.T) {
	if _, err := Modify("x", demoSeeds, Brightness, Stop(7)); !errors.Is(err, ErrInvalidStop) {
		t.Errorf("expected ErrInvalidStop, got %v", err)
	}
}

func TestModifyEmpty(t *testing.T) {
	if _, err := Modify("x", nil, Brightness, Dark); !errors.Is(err, ErrEmptyColorList) {
		t.Errorf("expected ErrEmptyColorList, got %v", err)
	}
}

func TestModifyBrightnessRoundTrip(t *testing.T) {
	r, err := Modify("demo_dark", demoSeeds, Brightness, Dark)
	if err != nil {
		t.Fatalf("Modify returned error: %v", err)
	}
	if r.Name() != "demo_dark" {
		t.Errorf("Name() = %q, want demo_dark", r.Name())
	}

	for i, c := range r.Colors() {
		before := demoSeeds[i].HSV()
		after := c.HSV()
		if math.Abs(after.S-before.S) > 1e-9 {
			t.Errorf("color %d saturation %v -> %v", i, before.S, after.S)
		}
		if before.S > 0 && math.Abs(after.H-before.H) > 1e-9 {
			t.Errorf("color %d hue %v -> %v", i, before.H, after.H)
		}
		want := before.V * 2 / 3
		if math.Abs(after.V-want) > 1e-9 {
			t.Errorf("color %d value = %v, want %v", i, after.V, want)
		}
	}
}

func TestHSVRoundTrip(t *testing.T) {
	for _, c := range demoSeeds {
		back := c.HSV().RGB()
		if !approxColor(back, c, 1e-12) {
			t.Errorf("HSV round trip %+v -> %+v", c, back)
		}
	}
}

func TestColorHexAndRGB255(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0}
	r, g, b := c.RGB255()
	if r != 255 || g != 127 || b != 0 {
		t.Errorf("RGB255() = %d,%d,%d, want 255,127,0", r, g, b)
	}
	if c.Hex() != "#FF7F00" {
		t.Errorf("Hex() = %s, want #FF7F00", c.Hex())
	}
}
