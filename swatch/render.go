// Package swatch renders palette ramps to images.
//
// Rendering is stateless: every call takes the ramp and an explicit Style
// and returns a fresh image, so nothing is shared between calls.
package swatch

import (
	"errors"
	"fmt"
	"image"
	stdcolor "image/color"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"github.com/watzon/paintbox/color"
)

// Style controls how a ramp swatch is drawn
type Style struct {
	// Output size in pixels
	Width  int
	Height int

	// Number of scattered dots, their radius in output pixels and opacity
	Points int
	Radius float64
	Alpha  float64

	Background stdcolor.Color

	// Supersample draws at this multiple of the output size and scales
	// down, which smooths dot edges
	Supersample int

	// Seed fixes the dot layout
	Seed int64
}

// DefaultStyle matches a 6x3 inch figure at 200 dpi: 20000 dots of
// 30 square points at 80% opacity on black.
func DefaultStyle() Style {
	return Style{
		Width:       1200,
		Height:      600,
		Points:      20000,
		Radius:      8.5,
		Alpha:       0.8,
		Background:  stdcolor.Black,
		Supersample: 2,
		Seed:        1,
	}
}

func (s Style) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid swatch size %dx%d", s.Width, s.Height)
	}
	if s.Points < 0 {
		return fmt.Errorf("invalid point count %d", s.Points)
	}
	if s.Alpha < 0 || s.Alpha > 1 {
		return fmt.Errorf("invalid alpha %v", s.Alpha)
	}
	return nil
}

// Render draws a scatter of dots whose color follows the ramp from left to
// right.
func Render(r *color.Ramp, style Style) (image.Image, error) {
	if r == nil {
		return nil, errors.New("no ramp provided")
	}
	if err := style.validate(); err != nil {
		return nil, err
	}

	ss := max(style.Supersample, 1)
	w, h := style.Width*ss, style.Height*ss

	dc := gg.NewContext(w, h)
	bg := style.Background
	if bg == nil {
		bg = stdcolor.Black
	}
	dc.SetColor(bg)
	dc.Clear()

	rng := rand.New(rand.NewSource(style.Seed))
	radius := style.Radius * float64(ss)
	for i := 0; i < style.Points; i++ {
		x, y := rng.Float64(), rng.Float64()
		c := r.At(x)
		dc.SetRGBA(c.R, c.G, c.B, style.Alpha)
		dc.DrawCircle(x*float64(w), y*float64(h), radius)
		dc.Fill()
	}

	img := dc.Image()
	if ss > 1 {
		img = resize.Resize(uint(style.Width), uint(style.Height), img, resize.Lanczos3)
	}
	return img, nil
}

// SavePNG writes img to <dir>/<name>.png, creating dir if needed, and
// returns the file path
func SavePNG(img image.Image, dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create swatch directory: %w", err)
	}
	path := filepath.Join(dir, name+".png")
	if err := gg.SavePNG(path, img); err != nil {
		return "", fmt.Errorf("failed to save swatch %s: %w", path, err)
	}
	return path, nil
}
