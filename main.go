package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/watzon/paintbox/config"
)

var (
	outputDir  string
	paletteDir string
	background string
	points     int
	seed       int64
)

var rootCmd = &cobra.Command{
	Use:   "paintbox",
	Short: "Paintbox - palette families from a handful of seed colors",
	Long: `Paintbox turns a few seed colors into a family of color ramps
(base, lighter, darker, more and less saturated), renders a swatch image
for each ramp and exports a GIMP palette that Inkscape can import too.

Colors may be given as #rrggbb, r,g,b integers (0-255) or r,g,b fractions
(0.0-1.0).`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&outputDir, "out", "o", "", "directory for swatch images (default from PAINTBOX_OUTPUT_DIR or ./demo)")
	flags.StringVar(&paletteDir, "palette-dir", "", "directory for .gpl files (defaults to the swatch directory)")
	flags.StringVar(&background, "background", "", "swatch background color, e.g. black or #202020")
	flags.IntVar(&points, "points", 0, "dots per swatch")
	flags.Int64Var(&seed, "seed", 0, "seed for dot layout and random palettes")

	rootCmd.AddCommand(generateCmd, sheetCmd, presetCmd, randomCmd, extractCmd, inspectCmd, scheduleCmd)
}

// loadConfig builds the configuration from the environment and applies
// any command line overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.WithOutputDir(outputDir)
	}
	if flags.Changed("palette-dir") {
		cfg.WithPaletteDir(paletteDir)
	}
	if flags.Changed("background") {
		bg, err := config.ParseBackground(background)
		if err != nil {
			return nil, fmt.Errorf("invalid --background: %w", err)
		}
		cfg.WithBackground(bg)
	}
	if flags.Changed("points") {
		cfg.WithPoints(points)
	}
	if flags.Changed("seed") {
		cfg.WithSeed(seed)
	}
	return cfg, nil
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
