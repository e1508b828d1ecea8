package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tkremer/portfolio"
)

func newCheckCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the config, the project catalog, and its assets",
		Long: `Validate the config, content/projects.yaml and content/about.md, and
confirm that every logo and screenshot the catalog names exists under the
assets directory. Exits non-zero on the first class of problems found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			data, err := os.ReadFile(filepath.Join(cfg.ContentDir, "projects.yaml"))
			if err != nil {
				return err
			}
			projects, err := portfolio.LoadProjects(data)
			if err != nil {
				return err
			}
			if err := portfolio.ValidateProjects(projects, cfg.AssetsDir); err != nil {
				return fmt.Errorf("catalog problems:\n%w", err)
			}
			about, err := os.ReadFile(filepath.Join(cfg.ContentDir, "about.md"))
			if err != nil && !os.IsNotExist(err) {
				return err
			}
			if _, err := portfolio.RenderAbout(about); err != nil {
				return err
			}
			shots := 0
			for _, p := range projects {
				shots += len(p.Screenshots)
			}
			cmd.Printf("ok: %d projects, %d screenshots\n", len(projects), shots)
			return nil
		},
	}
}
