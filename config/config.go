package config

import (
	"fmt"
	stdcolor "image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/watzon/paintbox/color"
)

// Config holds all configuration for generating palette artifacts
type Config struct {
	// Output directories for swatch images and .gpl files
	SwatchDir  string
	PaletteDir string

	// Swatch rendering
	Background stdcolor.Color
	Width      int
	Height     int
	Points     int
	Seed       int64

	// Sheet images are scaled down to fit these bounds
	MaxWidth  int
	MaxHeight int

	// Cron spec and time zone for the schedule command
	Schedule string
	Location *time.Location
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		SwatchDir:  "demo",
		PaletteDir: "demo",
		Background: stdcolor.Black,
		Width:      1200,
		Height:     600,
		Points:     20000,
		Seed:       1,
		MaxWidth:   1600,
		MaxHeight:  1600,
		Schedule:   "0 */6 * * *",
		Location:   time.UTC,
	}
}

// WithSwatchDir sets the swatch output directory
func (c *Config) WithSwatchDir(dir string) *Config {
	c.SwatchDir = dir
	return c
}

// WithPaletteDir sets the .gpl output directory
func (c *Config) WithPaletteDir(dir string) *Config {
	c.PaletteDir = dir
	return c
}

// WithOutputDir sets both output directories
func (c *Config) WithOutputDir(dir string) *Config {
	c.SwatchDir = dir
	c.PaletteDir = dir
	return c
}

// WithBackground sets the swatch background
func (c *Config) WithBackground(bg stdcolor.Color) *Config {
	c.Background = bg
	return c
}

// WithSize sets the swatch size in pixels
func (c *Config) WithSize(width, height int) *Config {
	c.Width = width
	c.Height = height
	return c
}

// WithPoints sets the number of dots per swatch
func (c *Config) WithPoints(points int) *Config {
	c.Points = points
	return c
}

// WithSeed sets the seed used for dot layout and random palettes
func (c *Config) WithSeed(seed int64) *Config {
	c.Seed = seed
	return c
}

// WithSchedule sets the cron spec used by the schedule command
func (c *Config) WithSchedule(spec string) *Config {
	c.Schedule = spec
	return c
}

// FromEnv overlays PAINTBOX_* environment variables on the defaults.
// Callers load any .env file first.
func FromEnv() (*Config, error) {
	cfg := DefaultConfig()

	if dir := os.Getenv("PAINTBOX_OUTPUT_DIR"); dir != "" {
		cfg.WithOutputDir(dir)
	}
	if dir := os.Getenv("PAINTBOX_SWATCH_DIR"); dir != "" {
		cfg.WithSwatchDir(dir)
	}
	if dir := os.Getenv("PAINTBOX_PALETTE_DIR"); dir != "" {
		cfg.WithPaletteDir(dir)
	}
	if bg := os.Getenv("PAINTBOX_BACKGROUND"); bg != "" {
		c, err := ParseBackground(bg)
		if err != nil {
			return nil, fmt.Errorf("invalid PAINTBOX_BACKGROUND: %w", err)
		}
		cfg.WithBackground(c)
	}
	if spec := os.Getenv("PAINTBOX_SCHEDULE"); spec != "" {
		cfg.WithSchedule(spec)
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"PAINTBOX_WIDTH", &cfg.Width},
		{"PAINTBOX_HEIGHT", &cfg.Height},
		{"PAINTBOX_POINTS", &cfg.Points},
		{"PAINTBOX_MAX_WIDTH", &cfg.MaxWidth},
		{"PAINTBOX_MAX_HEIGHT", &cfg.MaxHeight},
	}
	for _, v := range ints {
		raw := os.Getenv(v.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid %s %q: expected a non-negative integer", v.key, raw)
		}
		*v.dst = n
	}

	if raw := os.Getenv("PAINTBOX_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid PAINTBOX_SEED %q: %w", raw, err)
		}
		cfg.WithSeed(seed)
	}

	if tz := os.Getenv("TZ"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid TZ %q: %w", tz, err)
		}
		cfg.Location = loc
	}

	return cfg, nil
}

// ParseBackground accepts a color name such as "black" or any form
// understood by color.ParseColor
func ParseBackground(s string) (stdcolor.Color, error) {
	if c, err := color.ParseColor(s); err == nil {
		return c.ToRGBA(), nil
	}

	matcher, err := color.NewPreloadedColorMatcher()
	if err != nil {
		return nil, err
	}
	if c, ok := matcher.Lookup(s); ok {
		return c.ToRGBA(), nil
	}
	return nil, fmt.Errorf("unknown color %q", strings.TrimSpace(s))
}
