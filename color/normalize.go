package color

import (
	"errors"
	"fmt"
	stdcolor "image/color"
	"strconv"
	"strings"
)

// FormatError describes an input that could not be normalized
type FormatError struct {
	Index  int
	Value  any
	Reason string
}

func (e *FormatError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("color %d (%#v): %s", e.Index, e.Value, e.Reason)
	}
	return fmt.Sprintf("color %#v: %s", e.Value, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidColorFormat
}

// Normalize converts a single color to fractional RGB.
//
// Accepted shapes are a "#rrggbb" hex string, an integer triple with each
// component in [0,255] ([3]int, []int, [3]uint8, []uint8) and a fractional
// triple with each component in [0,1] ([3]float64, []float64, [3]float32,
// []float32). Color values and any image/color.Color are also accepted.
func Normalize(v any) (Color, error) {
	return normalize(-1, v)
}

// NormalizeAll normalizes every value. All invalid inputs are reported
// together and no partial list is ever returned.
func NormalizeAll(values []any) ([]Color, error) {
	colors := make([]Color, 0, len(values))
	var errs []error
	for i, v := range values {
		c, err := normalize(i, v)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		colors = append(colors, c)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return colors, nil
}

func normalize(index int, v any) (Color, error) {
	bad := func(reason string) (Color, error) {
		return Color{}, &FormatError{Index: index, Value: v, Reason: reason}
	}

	switch c := v.(type) {
	case Color:
		if !c.Valid() {
			return bad("channel outside [0,1]")
		}
		return c, nil
	case string:
		col, err := parseHex(c)
		if err != nil {
			return bad(err.Error())
		}
		return col, nil
	case [3]int:
		return fromInts(c[:], bad)
	case []int:
		return fromInts(c, bad)
	case [3]uint8:
		return fromInts([]int{int(c[0]), int(c[1]), int(c[2])}, bad)
	case []uint8:
		ints := make([]int, len(c))
		for i, x := range c {
			ints[i] = int(x)
		}
		return fromInts(ints, bad)
	case [3]float64:
		return fromFloats(c[:], bad)
	case []float64:
		return fromFloats(c, bad)
	case [3]float32:
		return fromFloats([]float64{float64(c[0]), float64(c[1]), float64(c[2])}, bad)
	case []float32:
		floats := make([]float64, len(c))
		for i, x := range c {
			floats[i] = float64(x)
		}
		return fromFloats(floats, bad)
	case stdcolor.Color:
		r, g, b, _ := c.RGBA()
		return Color{R: float64(r) / 0xffff, G: float64(g) / 0xffff, B: float64(b) / 0xffff}, nil
	case nil:
		return bad("nil value")
	}
	return bad("unsupported type")
}

func fromInts(v []int, bad func(string) (Color, error)) (Color, error) {
	if len(v) != 3 {
		return bad(fmt.Sprintf("expected 3 components, got %d", len(v)))
	}
	for _, x := range v {
		if x < 0 || x > 255 {
			return bad("integer component outside [0,255]")
		}
	}
	return Color{
		R: float64(v[0]) / 255,
		G: float64(v[1]) / 255,
		B: float64(v[2]) / 255,
	}, nil
}

func fromFloats(v []float64, bad func(string) (Color, error)) (Color, error) {
	if len(v) != 3 {
		return bad(fmt.Sprintf("expected 3 components, got %d", len(v)))
	}
	for _, x := range v {
		if !inUnit(x) {
			return bad("fractional component outside [0,1]")
		}
	}
	return Color{R: v[0], G: v[1], B: v[2]}, nil
}

func parseHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, errors.New(`expected hex of the form "#rrggbb"`)
	}
	n, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, errors.New("invalid hex digits")
	}
	return Color{
		R: float64(n>>16&0xff) / 255,
		G: float64(n>>8&0xff) / 255,
		B: float64(n&0xff) / 255,
	}, nil
}

// ParseColor parses the textual forms used on the command line: "#rrggbb",
// "r,g,b" with integers in [0,255], or "r,g,b" with fractions in [0,1]. A
// triple is read as fractional when any component contains a '.'.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return Normalize(s)
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Color{}, &FormatError{Index: -1, Value: s, Reason: "expected #rrggbb or r,g,b"}
	}

	if strings.Contains(s, ".") {
		floats := make([]float64, 3)
		for i, p := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return Color{}, &FormatError{Index: -1, Value: s, Reason: "invalid fractional component"}
			}
			floats[i] = f
		}
		return Normalize(floats)
	}

	ints := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Color{}, &FormatError{Index: -1, Value: s, Reason: "invalid integer component"}
		}
		ints[i] = n
	}
	return Normalize(ints)
}

// ParseColors parses every argument with ParseColor, reporting all failures
func ParseColors(args []string) ([]Color, error) {
	values := make([]any, len(args))
	var errs []error
	for i, a := range args {
		c, err := ParseColor(a)
		if err != nil {
			errs = append(errs, fmt.Errorf("argument %d: %w", i+1, err))
			continue
		}
		values[i] = c
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return NormalizeAll(values)
}
