package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tkremer/portfolio"
	"github.com/tkremer/portfolio/browse"
)

func newBrowseCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the project catalog in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			projects, err := portfolio.NewCatalog(cfg.ContentDir, time.Minute).Projects()
			if err != nil {
				return err
			}
			m := browse.New(projects, cfg.URL)
			defer m.Close()
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}
