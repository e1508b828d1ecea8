package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tkremer/portfolio"
)

func newThumbsCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "thumbs",
		Short: "Pre-generate screenshot thumbnails",
		Long: `Generate every card thumbnail ahead of time so the first visitor does not
pay for resizing. Up-to-date thumbnails are left alone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			log, err := portfolio.NewLogger(cfg.Log)
			if err != nil {
				return err
			}
			defer log.Sync()

			projects, err := portfolio.NewCatalog(cfg.ContentDir, time.Minute).Projects()
			if err != nil {
				return err
			}
			start := time.Now()
			thumbs := portfolio.NewThumbnailer(cfg.AssetsDir, cfg.Thumbs.CacheDir, cfg.Thumbs)
			n, err := thumbs.GenerateAll(cmd.Context(), projects)
			if err != nil {
				return err
			}
			log.Info("thumbnails ready",
				zap.Int("count", n),
				zap.String("dir", cfg.Thumbs.CacheDir),
				zap.Duration("took", time.Since(start)))
			return nil
		},
	}
}
