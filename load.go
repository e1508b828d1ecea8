package portfolio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// PORTFOLIO_INBOX_ADMIN_PASSWORD sets inbox.admin_password.
const EnvPrefix = "PORTFOLIO"

// configKeys lists every key so AutomaticEnv can override values that are
// absent from the file.
var configKeys = []string{
	"name", "tagline", "url", "description",
	"addr", "content_dir", "assets_dir", "static_dir", "watch_content",
	"thumbs.width", "thumbs.quality", "thumbs.cache_dir",
	"inbox.enabled", "inbox.database_path", "inbox.admin_password",
	"inbox.session_secret", "inbox.cookie_secure",
	"log.level", "log.development",
	"catalog_ttl", "shutdown_timeout",
}

// LoadConfig reads the YAML file at path (optional when empty), applies
// PORTFOLIO_* environment overrides and defaults, and validates the result.
func LoadConfig(path string) (SiteConfig, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, k := range configKeys {
		if err := v.BindEnv(k); err != nil {
			return SiteConfig{}, fmt.Errorf("bind env %s: %w", k, err)
		}
	}

	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return SiteConfig{}, fmt.Errorf("config file not found: %s", path)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return SiteConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg SiteConfig
	if err := v.Unmarshal(&cfg, decodeHook); err != nil {
		return SiteConfig{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return SiteConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func decodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}
