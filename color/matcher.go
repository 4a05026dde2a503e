package color

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

//go:embed colors.json
var colorData []byte

// ColorName represents a named color with its hex value
type ColorName struct {
	Hex  string `json:"hex"`
	Name string `json:"name"`
}

type namedColor struct {
	ColorName
	rgb Color
}

// ColorMatcher finds the closest human readable name for a color
type ColorMatcher struct {
	colors []namedColor
}

// NewPreloadedColorMatcher returns a ColorMatcher over the embedded color names
func NewPreloadedColorMatcher() (*ColorMatcher, error) {
	return NewColorMatcher(colorData)
}

// NewColorMatcher creates a new color matcher from JSON data
func NewColorMatcher(jsonData []byte) (*ColorMatcher, error) {
	var names []ColorName
	if err := json.Unmarshal(jsonData, &names); err != nil {
		return nil, fmt.Errorf("failed to parse color data: %w", err)
	}

	matcher := &ColorMatcher{colors: make([]namedColor, 0, len(names))}
	for _, n := range names {
		c, err := parseHex(n.Hex)
		if err != nil {
			return nil, fmt.Errorf("failed to parse color %q: %w", n.Name, err)
		}
		matcher.colors = append(matcher.colors, namedColor{ColorName: n, rgb: c})
	}

	return matcher, nil
}

// Len returns the number of known names
func (m *ColorMatcher) Len() int {
	return len(m.colors)
}

// FindClosestColor finds the named color perceptually closest to c
func (m *ColorMatcher) FindClosestColor(c Color) (ColorName, error) {
	if len(m.colors) == 0 {
		return ColorName{}, errors.New("no color names loaded")
	}

	target := c.colorful()
	var closest ColorName
	minDiff := math.MaxFloat64
	for _, nc := range m.colors {
		// CIE76 distance in Lab space
		if d := target.DistanceLab(nc.rgb.colorful()); d < minDiff {
			minDiff = d
			closest = nc.ColorName
		}
	}

	return closest, nil
}

// Lookup finds a color by name, ignoring case and spaces
func (m *ColorMatcher) Lookup(name string) (Color, bool) {
	key := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	for _, nc := range m.colors {
		if strings.ToLower(strings.ReplaceAll(nc.Name, " ", "")) == key {
			return nc.rgb, true
		}
	}
	return Color{}, false
}

// Name returns the closest color name, or "Unknown" when none is found
func (m *ColorMatcher) Name(c Color) string {
	if m == nil {
		return "Unknown"
	}
	n, err := m.FindClosestColor(c)
	if err != nil {
		return "Unknown"
	}
	return n.Name
}
