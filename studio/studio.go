package studio

import (
	"fmt"
	"log"
	"os"

	"github.com/watzon/paintbox/color"
	"github.com/watzon/paintbox/config"
	"github.com/watzon/paintbox/gpl"
	"github.com/watzon/paintbox/palette"
	"github.com/watzon/paintbox/swatch"
)

// Options selects which artifacts Generate writes
type Options struct {
	Swatches bool
	Sheet    bool
	Export   bool
}

// AllArtifacts writes swatches, the sheet and the .gpl file
var AllArtifacts = Options{Swatches: true, Sheet: true, Export: true}

// Result lists what a Generate call produced
type Result struct {
	Palette     *palette.Palette
	Names       []string
	Swatches    []string
	SheetPath   string
	PalettePath string
}

// Studio turns seed colors into palette artifacts on disk
type Studio struct {
	config     *config.Config
	matcher    *color.ColorMatcher
	paletteGen *palette.Generator
}

// New creates a Studio for the given configuration
func New(cfg *config.Config) (*Studio, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	matcher, err := color.NewPreloadedColorMatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create color matcher: %w", err)
	}

	paletteGen, err := palette.NewGenerator(cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create palette generator: %w", err)
	}

	return &Studio{
		config:     cfg,
		matcher:    matcher,
		paletteGen: paletteGen,
	}, nil
}

// Style returns the swatch style derived from the configuration
func (s *Studio) Style() swatch.Style {
	style := swatch.DefaultStyle()
	style.Width = s.config.Width
	style.Height = s.config.Height
	style.Points = s.config.Points
	style.Seed = s.config.Seed
	if s.config.Background != nil {
		style.Background = s.config.Background
	}
	return style
}

// Generate builds a palette from colors and writes the selected artifacts
func (s *Studio) Generate(name string, colors []color.Color, opts Options) (*Result, error) {
	p, err := palette.FromColors(name, colors)
	if err != nil {
		return nil, fmt.Errorf("failed to build palette: %w", err)
	}
	return s.write(p, opts)
}

// GenerateRandom builds a palette from a random harmony. A nil harmony
// picks one at random.
func (s *Studio) GenerateRandom(name string, harmony *palette.Harmony, opts Options) (*Result, error) {
	var (
		seeds *palette.Seeds
		err   error
	)
	if harmony == nil {
		seeds, err = s.paletteGen.GenerateRandom()
	} else {
		seeds, err = s.paletteGen.GenerateWith(*harmony)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to generate seeds: %w", err)
	}

	log.Printf("Generated %s: %v", seeds.Harmony.Title(), seeds.Names)
	return s.Generate(name, seeds.Colors, opts)
}

func (s *Studio) write(p *palette.Palette, opts Options) (*Result, error) {
	res := &Result{Palette: p}
	for _, c := range p.Colors {
		res.Names = append(res.Names, s.matcher.Name(c))
	}

	if opts.Swatches {
		paths, err := s.Swatches(p)
		if err != nil {
			return nil, err
		}
		res.Swatches = paths
	}

	if opts.Sheet {
		path, err := s.Sheet(p)
		if err != nil {
			return nil, err
		}
		res.SheetPath = path
	}

	if opts.Export {
		path, err := s.Export(p)
		if err != nil {
			return nil, err
		}
		res.PalettePath = path
	}

	return res, nil
}

// Swatches renders one image per ramp into the swatch directory
func (s *Studio) Swatches(p *palette.Palette) ([]string, error) {
	style := s.Style()
	var paths []string
	for _, ramp := range p.Ramps() {
		img, err := swatch.Render(ramp, style)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", ramp.Name(), err)
		}
		path, err := swatch.SavePNG(img, s.config.SwatchDir, ramp.Name())
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	log.Printf("Swatches saved to %s", s.config.SwatchDir)
	return paths, nil
}

// Sheet writes the labelled palette sheet as <name>_sheet.png
func (s *Studio) Sheet(p *palette.Palette) (string, error) {
	opts := swatch.DefaultSheetOptions()
	opts.Matcher = s.matcher

	img, err := swatch.Sheet(p, opts)
	if err != nil {
		return "", fmt.Errorf("failed to draw sheet: %w", err)
	}
	img = swatch.Fit(img, s.config.MaxWidth, s.config.MaxHeight)

	return swatch.SavePNG(img, s.config.SwatchDir, p.Name+"_sheet")
}

// Export writes the .gpl file into the palette directory
func (s *Studio) Export(p *palette.Palette) (string, error) {
	path, err := gpl.Export(s.config.PaletteDir, p)
	if err != nil {
		return "", err
	}
	log.Printf("Generating %s", path)
	return path, nil
}

// Inspect reads back a .gpl file
func Inspect(path string) (*gpl.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open palette: %w", err)
	}
	defer f.Close()

	parsed, err := gpl.Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette %s: %w", path, err)
	}
	return parsed, nil
}
