package portfolio

import (
	"path"
	"strconv"
	"strings"
)

// NoLink is the href sentinel for a project without an external page.
const NoLink = "#"

// Project is one entry of the portfolio, loaded from the catalog file and
// rendered as a card.
type Project struct {
	ID            string   `yaml:"id" json:"id"`
	Title         string   `yaml:"title" json:"title"`
	Description   string   `yaml:"description" json:"description"`
	Href          string   `yaml:"href" json:"href"`
	Date          string   `yaml:"date" json:"date"`
	LogoExtension string   `yaml:"logo_extension" json:"logo_extension"`
	Screenshots   []string `yaml:"screenshots" json:"screenshots"`
	Tags          []string `yaml:"tags" json:"tags,omitempty"`
}

// Linked reports whether the card should wrap an external link.
func (p Project) Linked() bool {
	return p.Href != "" && p.Href != NoLink
}

// LogoPath returns the public path of the project logo.
func (p Project) LogoPath() string {
	ext := p.LogoExtension
	if ext == "" {
		ext = "png"
	}
	return "/" + path.Join(p.ID, "logo."+strings.TrimPrefix(ext, "."))
}

// ScreenshotPath returns the public path of screenshot i.
func (p Project) ScreenshotPath(i int) string {
	return "/" + path.Join(p.ID, p.Screenshots[i])
}

// ThumbnailPath returns the public path of the resized thumbnail of screenshot i.
func (p Project) ThumbnailPath(i int) string {
	return "/" + path.Join("thumbs", p.ID, p.Screenshots[i])
}

// LightboxPath returns the page that shows screenshot i enlarged.
func (p Project) LightboxPath(i int) string {
	return BuildPath("projects", p.ID, "screenshots", strconv.Itoa(i))
}

// HasAsset reports whether file is the logo or one of the listed screenshots.
func (p Project) HasAsset(file string) bool {
	if "/"+path.Join(p.ID, file) == p.LogoPath() {
		return true
	}
	for _, s := range p.Screenshots {
		if s == file {
			return true
		}
	}
	return false
}

// ScreenshotIndex returns the position of file in the screenshot list, or -1.
func (p Project) ScreenshotIndex(file string) int {
	for i, s := range p.Screenshots {
		if s == file {
			return i
		}
	}
	return -1
}

// SocialLink is a profile link shown under the site header.
type SocialLink struct {
	Label string `mapstructure:"label" yaml:"label"`
	URL   string `mapstructure:"url" yaml:"url"`
	Icon  string `mapstructure:"icon" yaml:"icon"` // "linkedin", "github", "mail" or empty
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "profile"
	Image       string
}

// HomeData is everything the landing page renders.
type HomeData struct {
	Site     SiteConfig
	Meta     PageMeta
	About    string // sanitized HTML
	Projects []Project
	// Open is set when the page is rendered with a lightbox already showing.
	Open *LightboxView
}

// LightboxView describes an open lightbox for one card.
type LightboxView struct {
	Project Project
	Index   int
	Prev    int
	Next    int
	// Navigable is false when the project has a single screenshot.
	Navigable bool
}

// Src returns the full-size image path being shown.
func (v LightboxView) Src() string {
	return v.Project.ScreenshotPath(v.Index)
}
