package main

import (
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"github.com/watzon/paintbox/palette"
	"github.com/watzon/paintbox/studio"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Regenerate a random palette on a cron schedule",
	Long: `Regenerate a random palette on a cron schedule (PAINTBOX_SCHEDULE,
default every six hours). Each run writes the palette under a timestamped
name. Runs until interrupted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := studio.New(cfg)
		if err != nil {
			return err
		}

		var h *palette.Harmony
		if harmony != "" {
			parsed, err := palette.ParseHarmony(harmony)
			if err != nil {
				return err
			}
			h = &parsed
		}

		// Create a new cron scheduler with configured timezone
		c := cron.New(cron.WithLocation(cfg.Location))
		_, err = c.AddFunc(cfg.Schedule, func() {
			name := "palette_" + time.Now().In(cfg.Location).Format("20060102_150405")
			log.Printf("Generating palette %s...", name)
			if _, err := s.GenerateRandom(name, h, artifactOptions()); err != nil {
				log.Printf("Error generating palette: %v", err)
			}
		})
		if err != nil {
			return fmt.Errorf("failed to schedule palette job %q: %w", cfg.Schedule, err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		c.Start()
		log.Printf("Scheduled palette generation (%s, %s)", cfg.Schedule, cfg.Location)

		<-ctx.Done()
		<-c.Stop().Done()
		log.Println("Scheduler stopped")
		return nil
	},
}

func init() {
	scheduleCmd.Flags().StringVar(&harmony, "harmony", "", "harmony to use for every run (random when empty)")
	scheduleCmd.Flags().BoolVar(&noSwatches, "no-swatches", false, "skip rendering swatch images")
	scheduleCmd.Flags().BoolVar(&withSheet, "sheet", false, "also write a labelled palette sheet")
}
