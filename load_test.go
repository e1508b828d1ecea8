package portfolio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Name != "Portfolio" || cfg.Addr != ":3000" || cfg.ContentDir != "content" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Thumbs.Width != 600 || cfg.Thumbs.Quality != 80 {
		t.Errorf("thumb defaults = %+v", cfg.Thumbs)
	}
	if cfg.CatalogTTL != 5*time.Minute || cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("durations = %v, %v", cfg.CatalogTTL, cfg.ShutdownTimeout)
	}
	if cfg.Inbox.Enabled {
		t.Error("inbox should be disabled by default")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	body := `name: Tom Kremer
url: https://example.com/
tagline: Software engineer
links:
  - label: GitHub
    url: https://github.com/tkremer
    icon: github
thumbs:
  width: 320
catalog_ttl: 30s
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Name != "Tom Kremer" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.URL != "https://example.com" {
		t.Errorf("URL = %q, want trailing slash trimmed", cfg.URL)
	}
	if len(cfg.Links) != 1 || cfg.Links[0].Icon != "github" {
		t.Errorf("Links = %+v", cfg.Links)
	}
	if cfg.Thumbs.Width != 320 || cfg.Thumbs.Quality != 80 {
		t.Errorf("Thumbs = %+v", cfg.Thumbs)
	}
	if cfg.CatalogTTL != 30*time.Second {
		t.Errorf("CatalogTTL = %v", cfg.CatalogTTL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	if err := os.WriteFile(path, []byte("name: From File\ninbox:\n  enabled: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORTFOLIO_NAME", "From Env")
	t.Setenv("PORTFOLIO_INBOX_ADMIN_PASSWORD", "secret")
	t.Setenv("PORTFOLIO_INBOX_SESSION_SECRET", "0123456789abcdef")
	t.Setenv("PORTFOLIO_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Name != "From Env" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if !cfg.Inbox.Enabled || cfg.Inbox.AdminPassword != "secret" {
		t.Errorf("Inbox = %+v", cfg.Inbox)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	if err := os.WriteFile(path, []byte("inbox:\n  enabled: true\nthumbs:\n  quality: 101\nlog:\n  level: loud\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"thumbs.quality", "inbox.admin_password", "inbox.session_secret", "log.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}
