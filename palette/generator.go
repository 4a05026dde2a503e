package palette

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/watzon/paintbox/color"
)

// ErrUnknownHarmony is returned when a harmony name is not recognized
var ErrUnknownHarmony = errors.New("unknown harmony")

// Harmony is a color wheel relationship used to derive seed colors
type Harmony int

const (
	Complementary Harmony = iota
	Triadic
	Analogous
	SplitComplementary
	Tetradic
	Monochromatic
)

// Harmonies lists every known harmony
var Harmonies = []Harmony{
	Complementary,
	Triadic,
	Analogous,
	SplitComplementary,
	Tetradic,
	Monochromatic,
}

var harmonyNames = map[Harmony]string{
	Complementary:      "complementary",
	Triadic:            "triadic",
	Analogous:          "analogous",
	SplitComplementary: "split-complementary",
	Tetradic:           "tetradic",
	Monochromatic:      "monochromatic",
}

func (h Harmony) String() string {
	if n, ok := harmonyNames[h]; ok {
		return n
	}
	return fmt.Sprintf("Harmony(%d)", int(h))
}

// Title returns a human-readable name such as "Triadic Palette"
func (h Harmony) Title() string {
	n, ok := harmonyNames[h]
	if !ok {
		return "Custom Palette"
	}
	words := strings.Split(n, "-")
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ") + " Palette"
}

// ParseHarmony looks a harmony up by name
func ParseHarmony(name string) (Harmony, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for h, n := range harmonyNames {
		if n == name {
			return h, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHarmony, name)
}

// Seeds is a set of generated seed colors with their closest names
type Seeds struct {
	Harmony Harmony
	Colors  []color.Color
	Names   []string
}

// Palette builds a full palette from the seeds
func (s *Seeds) Palette(name string) (*Palette, error) {
	return FromColors(name, s.Colors)
}

// Generator derives seed colors from a base color and a harmony
type Generator struct {
	matcher *color.ColorMatcher
	rng     *rand.Rand
}

// NewGenerator creates a new seed generator. The same seed yields the same
// sequence of random palettes.
func NewGenerator(seed int64) (*Generator, error) {
	matcher, err := color.NewPreloadedColorMatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create color matcher: %w", err)
	}

	return &Generator{
		matcher: matcher,
		rng:     rand.New(rand.NewSource(seed)),
	}, nil
}

// GenerateRandom picks a random base color and harmony
func (g *Generator) GenerateRandom() (*Seeds, error) {
	base := color.Color{
		R: float64(g.rng.Intn(256)) / 255,
		G: float64(g.rng.Intn(256)) / 255,
		B: float64(g.rng.Intn(256)) / 255,
	}
	return g.Generate(base, Harmonies[g.rng.Intn(len(Harmonies))])
}

// GenerateWith picks a random base color for the given harmony
func (g *Generator) GenerateWith(h Harmony) (*Seeds, error) {
	base := color.Color{
		R: float64(g.rng.Intn(256)) / 255,
		G: float64(g.rng.Intn(256)) / 255,
		B: float64(g.rng.Intn(256)) / 255,
	}
	return g.Generate(base, h)
}

// Generate derives five seed colors from base using the harmony
func (g *Generator) Generate(base color.Color, h Harmony) (*Seeds, error) {
	hsl := toHSL(base)

	var out []hslColor
	switch h {
	case Complementary:
		out = complementary(hsl)
	case Triadic:
		out = triadic(hsl)
	case Analogous:
		out = analogous(hsl)
	case SplitComplementary:
		out = splitComplementary(hsl)
	case Tetradic:
		out = tetradic(hsl)
	case Monochromatic:
		out = monochromatic(hsl)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownHarmony, h)
	}

	seeds := &Seeds{Harmony: h}
	for _, c := range out {
		rgb := c.rgb()
		seeds.Colors = append(seeds.Colors, rgb)
		seeds.Names = append(seeds.Names, g.matcher.Name(rgb))
	}
	return seeds, nil
}

// hslColor is a color in hue/saturation/lightness with hue in degrees
type hslColor struct {
	h, s, l float64
}

func toHSL(c color.Color) hslColor {
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	return hslColor{h, s, l}
}

func (c hslColor) rgb() color.Color {
	out := colorful.Hsl(c.h, clamp(c.s), clamp(c.l)).Clamped()
	return color.Color{R: out.R, G: out.G, B: out.B}
}

func (c hslColor) rotate(degrees float64) hslColor {
	c.h = math.Mod(c.h+degrees, 360)
	if c.h < 0 {
		c.h += 360
	}
	return c
}

// soften trades saturation for lightness, as used for intermediate tones
func (c hslColor) soften(satScale, lightScale float64) hslColor {
	c.s = clamp(c.s * satScale)
	c.l = clamp(c.l * lightScale)
	return c
}

func complementary(base hslColor) []hslColor {
	complement := base.rotate(180)
	return []hslColor{
		base,
		base.soften(0.8, 1.2),
		complement.soften(0.8, 1.2),
		base.soften(0.6, 1.4),
		complement,
	}
}

func triadic(base hslColor) []hslColor {
	return []hslColor{
		base,
		base.rotate(60),
		base.rotate(120),
		base.rotate(180),
		base.rotate(240),
	}
}

func analogous(base hslColor) []hslColor {
	const step = 15.0
	return []hslColor{
		base,
		base.rotate(-step),
		base.rotate(-step * 2),
		base.rotate(step),
		base.rotate(step * 2),
	}
}

func splitComplementary(base hslColor) []hslColor {
	complement := base.rotate(180)
	return []hslColor{
		base,
		base.soften(0.8, 1.2),
		complement.rotate(-30),
		complement.rotate(30),
		complement.soften(0.8, 1.2),
	}
}

func tetradic(base hslColor) []hslColor {
	return []hslColor{
		base,
		base.rotate(90),
		base.rotate(180),
		base.rotate(270),
		base.soften(0.8, 1.2),
	}
}

func monochromatic(base hslColor) []hslColor {
	return []hslColor{
		base,
		base.soften(0.8, 1.2),
		base.soften(0.6, 1.4),
		base.soften(1.2, 0.8),
		base.soften(1.4, 0.6),
	}
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
