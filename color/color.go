package color

import (
	"errors"
	"fmt"
	stdcolor "image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrInvalidColorFormat is returned when an input matches none of the
	// accepted color shapes.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrEmptyColorList is returned when a ramp is built from zero colors.
	ErrEmptyColorList = errors.New("empty color list")
)

// Color represents an RGB color with every channel a fraction in [0,1]
type Color struct {
	R float64
	G float64
	B float64
}

// HSV represents a color in hue/saturation/value space. Hue is a fraction
// of a full turn, so all three channels lie in [0,1].
type HSV struct {
	H float64
	S float64
	V float64
}

// RGBA implements image/color.Color so a Color can be handed straight to
// drawing code.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.colorful().Clamped().RGBA()
}

// RGB255 returns the 8-bit channels, truncating rather than rounding.
func (c Color) RGB255() (r, g, b uint8) {
	return to8(c.R), to8(c.G), to8(c.B)
}

// ToRGBA converts the color to an opaque color.RGBA using truncated channels
func (c Color) ToRGBA() stdcolor.RGBA {
	r, g, b := c.RGB255()
	return stdcolor.RGBA{R: r, G: g, B: b, A: 255}
}

// Hex formats the color as #RRGGBB
func (c Color) Hex() string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// HSV converts the color to hue/saturation/value space
func (c Color) HSV() HSV {
	h, s, v := c.colorful().Hsv()
	return HSV{H: h / 360, S: s, V: v}
}

// RGB converts the HSV color back to RGB space
func (h HSV) RGB() Color {
	c := colorful.Hsv(math.Mod(h.H, 1)*360, h.S, h.V).Clamped()
	return Color{R: c.R, G: c.G, B: c.B}
}

// Valid reports whether every channel lies in [0,1]
func (c Color) Valid() bool {
	return inUnit(c.R) && inUnit(c.G) && inUnit(c.B)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func fromColorful(c colorful.Color) Color {
	c = c.Clamped()
	return Color{R: c.R, G: c.G, B: c.B}
}

func to8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
