package palette

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mazznoer/colorgrad"
	"github.com/watzon/paintbox/color"
)

// ErrUnknownPreset is returned when a preset gradient name is not recognized
var ErrUnknownPreset = errors.New("unknown preset")

var presets = map[string]func() colorgrad.Gradient{
	"viridis":  colorgrad.Viridis,
	"plasma":   colorgrad.Plasma,
	"inferno":  colorgrad.Inferno,
	"magma":    colorgrad.Magma,
	"cividis":  colorgrad.Cividis,
	"turbo":    colorgrad.Turbo,
	"rainbow":  colorgrad.Rainbow,
	"sinebow":  colorgrad.Sinebow,
	"warm":     colorgrad.Warm,
	"cool":     colorgrad.Cool,
	"spectral": colorgrad.Spectral,
	"rdylgn":   colorgrad.RdYlGn,
	"ylorrd":   colorgrad.YlOrRd,
	"reds":     colorgrad.Reds,
	"blues":    colorgrad.Blues,
	"greens":   colorgrad.Greens,
}

// Presets returns the names of the known preset gradients, sorted
func Presets() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Preset samples n evenly spaced seed colors from a named gradient, the
// first at the start of the gradient and the last at its end.
func Preset(name string, n int) ([]color.Color, error) {
	newGrad, ok := presets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	if n <= 0 {
		return nil, fmt.Errorf("failed to sample %q: %w", name, color.ErrEmptyColorList)
	}

	grad := newGrad()
	dmin, dmax := grad.Domain()
	out := make([]color.Color, n)
	for i := range out {
		t := dmin
		if n > 1 {
			t = dmin + (dmax-dmin)*float64(i)/float64(n-1)
		}
		c := grad.At(t).Clamped()
		out[i] = color.Color{R: c.R, G: c.G, B: c.B}
	}
	return out, nil
}
