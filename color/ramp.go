package color

import "fmt"

// Ramp is a named continuous gradient built by linear interpolation across
// an ordered list of colors placed at evenly spaced positions in [0,1].
// A Ramp never changes after construction.
type Ramp struct {
	name  string
	stops []Color
}

// NewRamp builds a ramp from at least one color
func NewRamp(name string, colors []Color) (*Ramp, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("failed to build ramp %q: %w", name, ErrEmptyColorList)
	}
	stops := make([]Color, len(colors))
	copy(stops, colors)
	return &Ramp{name: name, stops: stops}, nil
}

// Name returns the ramp name
func (r *Ramp) Name() string {
	return r.name
}

// Len returns the number of colors the ramp was built from
func (r *Ramp) Len() int {
	return len(r.stops)
}

// Colors returns a copy of the colors the ramp was built from
func (r *Ramp) Colors() []Color {
	out := make([]Color, len(r.stops))
	copy(out, r.stops)
	return out
}

// At returns the interpolated color at position t. Positions outside [0,1]
// are clamped to the nearest end.
func (r *Ramp) At(t float64) Color {
	n := len(r.stops)
	if n == 1 || t <= 0 {
		return r.stops[0]
	}
	if t >= 1 {
		return r.stops[n-1]
	}

	pos := t * float64(n-1)
	i := int(pos)
	if i >= n-1 {
		return r.stops[n-1]
	}
	return r.blend(i, pos-float64(i))
}

// Resample reduces the ramp to n evenly spaced colors, the first at 0 and
// the last at 1. A single sample is taken at 0. Sample positions are
// computed with integer arithmetic so resampling to Len() returns the
// original colors exactly.
func (r *Ramp) Resample(n int) []Color {
	if n <= 0 {
		return nil
	}
	out := make([]Color, n)
	if n == 1 {
		out[0] = r.stops[0]
		return out
	}
	segments := len(r.stops) - 1
	for i := range out {
		num := i * segments
		idx, rem := num/(n-1), num%(n-1)
		if rem == 0 {
			out[i] = r.stops[idx]
			continue
		}
		frac := float64(rem) / float64(n-1)
		out[i] = r.blend(idx, frac)
	}
	return out
}

func (r *Ramp) blend(i int, frac float64) Color {
	return fromColorful(r.stops[i].colorful().BlendRgb(r.stops[i+1].colorful(), frac))
}
