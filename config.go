package portfolio

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tkremer/portfolio/contact"
)

// SiteConfig holds all configuration for a portfolio site.
type SiteConfig struct {
	Name        string       `mapstructure:"name"`        // Owner name shown as the page title (default "Portfolio")
	Tagline     string       `mapstructure:"tagline"`     // Subtitle under the name
	URL         string       `mapstructure:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string       `mapstructure:"description"` // Meta description
	Links       []SocialLink `mapstructure:"links"`

	Addr         string `mapstructure:"addr"`          // Listen address (default ":3000")
	ContentDir   string `mapstructure:"content_dir"`   // projects.yaml and about.md (default "content")
	AssetsDir    string `mapstructure:"assets_dir"`    // per-project logos and screenshots (default "public")
	StaticDir    string `mapstructure:"static_dir"`    // favicon.svg override (default "static")
	WatchContent bool   `mapstructure:"watch_content"` // Reload the catalog when content files change

	Thumbs ThumbConfig `mapstructure:"thumbs"`
	Inbox  InboxConfig `mapstructure:"inbox"`
	Log    LogConfig   `mapstructure:"log"`

	CatalogTTL      time.Duration `mapstructure:"catalog_ttl"`      // Catalog re-read interval when not watching (default 5min)
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"` // Graceful shutdown budget (default 10s)
}

// ThumbConfig controls the screenshot thumbnails shown on cards.
type ThumbConfig struct {
	Width    int    `mapstructure:"width"`     // Max width in pixels (default 600)
	Quality  int    `mapstructure:"quality"`   // JPEG quality (default 80)
	CacheDir string `mapstructure:"cache_dir"` // (default "data/thumbs")
}

// InboxConfig enables storing contact messages in SQLite and the admin
// dashboard that reads them.
type InboxConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	DatabasePath  string `mapstructure:"database_path"` // (default "data/inbox.db")
	AdminPassword string `mapstructure:"admin_password"`
	SessionSecret string `mapstructure:"session_secret"`
	CookieSecure  bool   `mapstructure:"cookie_secure"`
}

// LogConfig selects the zap logger flavour.
type LogConfig struct {
	Level       string `mapstructure:"level"` // debug, info, warn, error (default info)
	Development bool   `mapstructure:"development"`
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Portfolio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.AssetsDir == "" {
		c.AssetsDir = "public"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.Thumbs.Width == 0 {
		c.Thumbs.Width = 600
	}
	if c.Thumbs.Quality == 0 {
		c.Thumbs.Quality = 80
	}
	if c.Thumbs.CacheDir == "" {
		c.Thumbs.CacheDir = "data/thumbs"
	}
	if c.Inbox.DatabasePath == "" {
		c.Inbox.DatabasePath = "data/inbox.db"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.CatalogTTL == 0 {
		c.CatalogTTL = 5 * time.Minute
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
}

// Validate reports configuration errors that would prevent the site from starting.
func (c *SiteConfig) Validate() error {
	var errs []error
	if c.Thumbs.Width < 16 {
		errs = append(errs, fmt.Errorf("thumbs.width must be at least 16, got %d", c.Thumbs.Width))
	}
	if c.Thumbs.Quality < 1 || c.Thumbs.Quality > 100 {
		errs = append(errs, fmt.Errorf("thumbs.quality must be in 1..100, got %d", c.Thumbs.Quality))
	}
	if c.Inbox.Enabled {
		if c.Inbox.AdminPassword == "" {
			errs = append(errs, errors.New("inbox.admin_password is required when the inbox is enabled"))
		}
		if c.Inbox.SessionSecret == "" {
			errs = append(errs, errors.New("inbox.session_secret is required when the inbox is enabled"))
		}
	}
	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithLogger replaces the logger built from LogConfig.
func WithLogger(log *zap.Logger) Option {
	return func(a *App) {
		a.Log = log
	}
}

// WithRecorder adds a destination for accepted contact messages, after the
// log and the inbox.
func WithRecorder(r contact.Recorder) Option {
	return func(a *App) {
		a.extraRecorders = append(a.extraRecorders, r)
	}
}
