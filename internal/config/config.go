// Package config loads dbi settings from an optional YAML file with DBI_*
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/abhisek/dbi/internal/nav"
)

// SystemTheme selects where the system dark-mode signal comes from.
type SystemTheme string

const (
	// SystemAuto follows the terminal background color.
	SystemAuto  SystemTheme = "auto"
	SystemLight SystemTheme = "light"
	SystemDark  SystemTheme = "dark"
)

var validSystemThemes = map[SystemTheme]bool{
	SystemAuto:  true,
	SystemLight: true,
	SystemDark:  true,
}

// Config holds the user-adjustable settings.
type Config struct {
	// DB is the SQLite file path. Empty means the default data path.
	DB string `yaml:"db,omitempty" koanf:"db"`

	// Page is the page opened at start.
	Page string `yaml:"page" koanf:"page"`

	SystemTheme SystemTheme `yaml:"system_theme" koanf:"system_theme"`

	// LogFile receives log output while the TUI runs. Empty discards it.
	LogFile string `yaml:"log_file,omitempty" koanf:"log_file"`

	// Splash shows the animated splash before the start page.
	Splash bool `yaml:"splash" koanf:"splash"`
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Page:        nav.DefaultPage,
		SystemTheme: SystemAuto,
		Splash:      true,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/dbi/config.yml, falling back to
// ~/.config/dbi/config.yml.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "dbi", "config.yml"), nil
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DBI_*). A missing file yields defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// DBI_SYSTEM_THEME -> system_theme, etc.
	if err := k.Load(env.Provider("DBI_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "DBI_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if !nav.IsSitePage(c.Page) {
		names := make([]string, 0, 4)
		for _, l := range nav.SiteLinks() {
			names = append(names, l.Href)
		}
		return fmt.Errorf("invalid page %q: must be one of %s", c.Page, strings.Join(names, ", "))
	}
	if !validSystemThemes[c.SystemTheme] {
		return fmt.Errorf("invalid system_theme %q: must be one of auto, light, dark", c.SystemTheme)
	}
	return nil
}

// PinnedDark returns the pinned system dark signal, ok=false in auto mode.
func (c *Config) PinnedDark() (dark, ok bool) {
	switch c.SystemTheme {
	case SystemDark:
		return true, true
	case SystemLight:
		return false, true
	default:
		return false, false
	}
}
