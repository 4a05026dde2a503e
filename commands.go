package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/watzon/paintbox/color"
	"github.com/watzon/paintbox/palette"
	"github.com/watzon/paintbox/studio"
)

var (
	noSwatches bool
	withSheet  bool
	harmony    string
)

var generateCmd = &cobra.Command{
	Use:   "generate <name> <color> [color...]",
	Short: "Build a palette from seed colors and write swatches and a .gpl file",
	Example: `  paintbox generate sunset "#1E4363" "#FCF2CB" "#FFB00D" "#FF8926" "#BC2D19"
  paintbox generate mixed "255,0,0" "0.5,0.5,0.5" "#00ff00"`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		colors, err := color.ParseColors(args[1:])
		if err != nil {
			return err
		}
		s, err := newStudio(cmd)
		if err != nil {
			return err
		}

		res, err := s.Generate(args[0], colors, artifactOptions())
		if err != nil {
			return err
		}
		printResult(cmd, res)
		return nil
	},
}

var sheetCmd = &cobra.Command{
	Use:   "sheet <name> <color> [color...]",
	Short: "Write a labelled sheet showing every ramp of a palette",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		colors, err := color.ParseColors(args[1:])
		if err != nil {
			return err
		}
		s, err := newStudio(cmd)
		if err != nil {
			return err
		}

		res, err := s.Generate(args[0], colors, studio.Options{Sheet: true})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.SheetPath)
		return nil
	},
}

var presetCmd = &cobra.Command{
	Use:   "preset <gradient> [count]",
	Short: "Print seed colors sampled from a named gradient",
	Long:  "Print seed colors sampled from a named gradient. Known gradients: " + strings.Join(palette.Presets(), ", "),
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := countArg(args, 5)
		if err != nil {
			return err
		}
		colors, err := palette.Preset(args[0], n)
		if err != nil {
			return err
		}
		printHex(cmd, colors)
		return nil
	},
}

var randomCmd = &cobra.Command{
	Use:   "random [name]",
	Short: "Build a palette from a randomly generated color harmony",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "random"
		if len(args) == 1 {
			name = args[0]
		}

		var h *palette.Harmony
		if harmony != "" {
			parsed, err := palette.ParseHarmony(harmony)
			if err != nil {
				return err
			}
			h = &parsed
		}

		s, err := newStudio(cmd)
		if err != nil {
			return err
		}
		res, err := s.GenerateRandom(name, h, artifactOptions())
		if err != nil {
			return err
		}
		printResult(cmd, res)
		return nil
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract <image> [count]",
	Short: "Print seed colors extracted from an image",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := countArg(args, 5)
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open image: %w", err)
		}
		defer f.Close()

		img, _, err := image.Decode(f)
		if err != nil {
			return fmt.Errorf("failed to decode image: %w", err)
		}

		colors := color.ExtractPalette(img, n)
		if len(colors) == 0 {
			return fmt.Errorf("failed to extract colors from image")
		}
		printHex(cmd, colors)
		return nil
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.gpl>",
	Short: "List the entries of a GIMP palette file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := studio.Inspect(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%d colors)\n", f.Name, len(f.Entries))
		for _, e := range f.Entries {
			fmt.Fprintf(out, "#%02X%02X%02X  %s\n", e.R, e.G, e.B, e.Label)
		}
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{generateCmd, randomCmd} {
		cmd.Flags().BoolVar(&noSwatches, "no-swatches", false, "skip rendering swatch images")
		cmd.Flags().BoolVar(&withSheet, "sheet", false, "also write a labelled palette sheet")
	}
	randomCmd.Flags().StringVar(&harmony, "harmony", "", "harmony to use (complementary, triadic, analogous, split-complementary, tetradic, monochromatic)")
}

func newStudio(cmd *cobra.Command) (*studio.Studio, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return studio.New(cfg)
}

func artifactOptions() studio.Options {
	return studio.Options{Swatches: !noSwatches, Sheet: withSheet, Export: true}
}

func countArg(args []string, def int) (int, error) {
	if len(args) < 2 {
		return def, nil
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid count %q: expected a positive integer", args[1])
	}
	return n, nil
}

func printHex(cmd *cobra.Command, colors []color.Color) {
	codes := make([]string, len(colors))
	for i, c := range colors {
		codes[i] = c.Hex()
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(codes, " "))
}

func printResult(cmd *cobra.Command, res *studio.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🎨 %s\n\n", res.Palette.Name)
	for i, c := range res.Palette.Colors {
		fmt.Fprintf(out, "%s (%s)\n", res.Names[i], c.Hex())
	}
	if res.PalettePath != "" {
		fmt.Fprintf(out, "\npalette: %s\n", res.PalettePath)
	}
	if res.SheetPath != "" {
		fmt.Fprintf(out, "sheet:   %s\n", res.SheetPath)
	}
	if len(res.Swatches) > 0 {
		fmt.Fprintf(out, "swatches: %d images\n", len(res.Swatches))
	}
}
