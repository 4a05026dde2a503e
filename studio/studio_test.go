package studio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/watzon/paintbox/color"
	"github.com/watzon/paintbox/config"
	"github.com/watzon/paintbox/palette"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return config.DefaultConfig().
		WithSwatchDir(filepath.Join(dir, "swatches")).
		WithPaletteDir(filepath.Join(dir, "palettes")).
		WithSize(60, 30).
		WithPoints(50)
}

func seeds(t *testing.T) []color.Color {
	t.Helper()
	colors, err := color.ParseColors([]string{"#1E4363", "#FCF2CB", "#FFB00D"})
	if err != nil {
		t.Fatalf("ParseColors returned error: %v", err)
	}
	return colors
}

func TestGenerateWritesEverything(t *testing.T) {
	cfg := testConfig(t)
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	res, err := s.Generate("demo", seeds(t), AllArtifacts)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if len(res.Swatches) != 9 {
		t.Errorf("expected 9 swatches, got %d", len(res.Swatches))
	}
	for _, p := range append(res.Swatches, res.SheetPath, res.PalettePath) {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected %s to exist: %v", p, err)
		}
	}
	if want := filepath.Join(cfg.SwatchDir, "demo_dark_plus.png"); !contains(res.Swatches, want) {
		t.Errorf("missing %s in %v", want, res.Swatches)
	}
	if len(res.Names) != 3 {
		t.Errorf("expected 3 names, got %v", res.Names)
	}

	parsed, err := Inspect(res.PalettePath)
	if err != nil {
		t.Fatalf("Inspect returned error: %v", err)
	}
	if parsed.Name != "demo" || len(parsed.Entries) != 27 {
		t.Errorf("parsed %q with %d entries, want demo with 27", parsed.Name, len(parsed.Entries))
	}
}

func TestGenerateExportOnly(t *testing.T) {
	cfg := testConfig(t)
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	res, err := s.Generate("only", seeds(t), Options{Export: true})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(res.Swatches) != 0 || res.SheetPath != "" {
		t.Errorf("expected no images, got %v and %q", res.Swatches, res.SheetPath)
	}
	if _, err := os.Stat(cfg.SwatchDir); !os.IsNotExist(err) {
		t.Errorf("swatch directory should not be created, stat err = %v", err)
	}
}

func TestGenerateEmpty(t *testing.T) {
	s, err := New(testConfig(t))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := s.Generate("empty", nil, AllArtifacts); !errors.Is(err, color.ErrEmptyColorList) {
		t.Errorf("expected ErrEmptyColorList, got %v", err)
	}
}

func TestGenerateRandom(t *testing.T) {
	s, err := New(testConfig(t))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	h := palette.Tetradic
	res, err := s.GenerateRandom("rand", &h, Options{Export: true})
	if err != nil {
		t.Fatalf("GenerateRandom returned error: %v", err)
	}
	if len(res.Palette.Colors) != 5 {
		t.Errorf("expected 5 seed colors, got %d", len(res.Palette.Colors))
	}

	if _, err := s.GenerateRandom("rand2", nil, Options{}); err != nil {
		t.Fatalf("GenerateRandom with no harmony returned error: %v", err)
	}
}

func TestStyleFollowsConfig(t *testing.T) {
	cfg := testConfig(t).WithSeed(5)
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	style := s.Style()
	if style.Width != 60 || style.Height != 30 || style.Points != 50 || style.Seed != 5 {
		t.Errorf("unexpected style %+v", style)
	}
}

func TestInspectMissing(t *testing.T) {
	if _, err := Inspect(filepath.Join(t.TempDir(), "nope.gpl")); err == nil {
		t.Error("expected error for missing file")
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
