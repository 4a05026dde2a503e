package palette

import (
	"fmt"

	"github.com/watzon/paintbox/color"
)

// variant describes one derived ramp of a palette
type variant struct {
	suffix  string
	channel color.Channel
	stop    color.Stop
}

// variants in the order they appear in Ramps, after the base ramp
var variants = []variant{
	{"light", color.Brightness, color.Light},
	{"light_plus", color.Brightness, color.LightPlus},
	{"dark", color.Brightness, color.Dark},
	{"dark_plus", color.Brightness, color.DarkPlus},
	{"saturated", color.Saturation, color.Light},
	{"saturated_plus", color.Saturation, color.LightPlus},
	{"desaturated", color.Saturation, color.Dark},
	{"desaturated_plus", color.Saturation, color.DarkPlus},
}

// Palette is a named set of seed colors together with the base ramp built
// from them and eight ramps derived by shifting brightness or saturation
type Palette struct {
	Name   string
	Colors []color.Color

	Base            *color.Ramp
	Light           *color.Ramp
	LightPlus       *color.Ramp
	Dark            *color.Ramp
	DarkPlus        *color.Ramp
	Saturated       *color.Ramp
	SaturatedPlus   *color.Ramp
	Desaturated     *color.Ramp
	DesaturatedPlus *color.Ramp
}

// New normalizes the raw colors and builds the palette. Any invalid color
// fails the whole construction.
func New(name string, raw []any) (*Palette, error) {
	colors, err := color.NormalizeAll(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize colors for %q: %w", name, err)
	}
	return FromColors(name, colors)
}

// FromColors builds a palette from already normalized colors
func FromColors(name string, colors []color.Color) (*Palette, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("failed to create palette %q: %w", name, color.ErrEmptyColorList)
	}
	for i, c := range colors {
		if !c.Valid() {
			return nil, fmt.Errorf("failed to create palette %q: %w",
				name, &color.FormatError{Index: i, Value: c, Reason: "channel outside [0,1]"})
		}
	}

	base, err := color.NewRamp(name, colors)
	if err != nil {
		return nil, fmt.Errorf("failed to create palette %q: %w", name, err)
	}

	p := &Palette{
		Name:   name,
		Colors: append([]color.Color(nil), colors...),
		Base:   base,
	}

	slots := []**color.Ramp{
		&p.Light, &p.LightPlus, &p.Dark, &p.DarkPlus,
		&p.Saturated, &p.SaturatedPlus, &p.Desaturated, &p.DesaturatedPlus,
	}
	for i, v := range variants {
		r, err := color.Modify(name+"_"+v.suffix, colors, v.channel, v.stop)
		if err != nil {
			return nil, fmt.Errorf("failed to create palette %q: %w", name, err)
		}
		*slots[i] = r
	}

	return p, nil
}

// Ramps returns the base ramp followed by the eight derived ramps
func (p *Palette) Ramps() []*color.Ramp {
	return []*color.Ramp{
		p.Base,
		p.Light, p.LightPlus,
		p.Dark, p.DarkPlus,
		p.Saturated, p.SaturatedPlus,
		p.Desaturated, p.DesaturatedPlus,
	}
}

// Variant returns the ramp with the given suffix ("" for the base ramp)
func (p *Palette) Variant(suffix string) (*color.Ramp, bool) {
	if suffix == "" {
		return p.Base, true
	}
	want := p.Name + "_" + suffix
	for _, r := range p.Ramps()[1:] {
		if r.Name() == want {
			return r, true
		}
	}
	return nil, false
}

// HexCodes returns the seed colors formatted as #RRGGBB
func (p *Palette) HexCodes() []string {
	codes := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		codes[i] = c.Hex()
	}
	return codes
}
