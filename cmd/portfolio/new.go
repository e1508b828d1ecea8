package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/tkremer/portfolio/scaffold"
)

// scaffoldData holds the template variables passed to every scaffold template.
type scaffoldData struct {
	ProjectName string
	SiteName    string
}

func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <dir>",
		Short: "Create a new portfolio site directory",
		Long: `Create a directory with a starter portfolio.yaml, content/projects.yaml and
content/about.md.

Examples:
  portfolio new jane-doe`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, args[0])
		},
	}
}

func runNew(cmd *cobra.Command, dirName string) error {
	if _, err := os.Stat(dirName); err == nil {
		return fmt.Errorf("directory %q already exists", dirName)
	}
	base := filepath.Base(dirName)
	data := scaffoldData{
		ProjectName: base,
		SiteName:    toTitle(base),
	}

	cmd.Printf("Creating new portfolio: %s\n\n", dirName)

	root := "templates"
	err := fs.WalkDir(scaffold.Templates, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		outPath := strings.TrimSuffix(filepath.Join(dirName, relPath), ".tmpl")
		if filepath.Base(outPath) == "dotgitignore" {
			outPath = filepath.Join(filepath.Dir(outPath), ".gitignore")
		}

		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		content, err := scaffold.Templates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()
		if err := tmpl.Execute(f, data); err != nil {
			return fmt.Errorf("execute template %s: %w", path, err)
		}
		cmd.Printf("  created %s\n", outPath)
		return nil
	})
	if err != nil {
		return err
	}
	for _, dir := range []string{"public/example", "static"} {
		if err := os.MkdirAll(filepath.Join(dirName, dir), 0o755); err != nil {
			return err
		}
	}

	cmd.Println()
	cmd.Println("Done! Next steps:")
	cmd.Println()
	cmd.Printf("  cd %s\n", dirName)
	cmd.Println("  # add public/example/logo.png, then")
	cmd.Println("  portfolio check")
	cmd.Println("  portfolio serve")
	return nil
}

// toTitle converts a hyphenated or lowercase name to a title-case string.
// e.g. "jane-doe" -> "Jane Doe"
func toTitle(s string) string {
	parts := strings.Split(s, "-")
	for i, p := range parts {
		if len(p) > 0 {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
