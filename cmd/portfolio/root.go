package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tkremer/portfolio"
)

const defaultConfigFile = "portfolio.yaml"

func newRootCmd() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:   "portfolio",
		Short: "A personal portfolio site built with Go, Echo, and templ",
		Long: `portfolio serves a single-page personal site: a short biography, project
cards with a screenshot lightbox, and a contact form.

Settings are read from portfolio.yaml in the working directory when present,
or from --config, and can be overridden with PORTFOLIO_* environment
variables.`,
		SilenceUsage: true,
	}
	root.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	root.SetVersionTemplate("portfolio {{.Version}}\n")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the YAML config file (default ./"+defaultConfigFile+" if present)")

	load := func() (portfolio.SiteConfig, error) {
		return loadConfig(configPath)
	}
	root.AddCommand(
		newServeCmd(load),
		newCheckCmd(load),
		newThumbsCmd(load),
		newBrowseCmd(load),
		newNewCmd(),
		newVersionCmd(),
	)
	return root
}

type configLoader func() (portfolio.SiteConfig, error)

func loadConfig(path string) (portfolio.SiteConfig, error) {
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}
	return portfolio.LoadConfig(path)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the portfolio version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("portfolio %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
