// Package config handles global zet configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the global zet configuration from config.toml.
type Config struct {
	// DefaultStore is the name of the default store (from Stores).
	DefaultStore string `toml:"default_store"`

	// Stores maps store names to note directory paths.
	Stores map[string]string `toml:"stores"`

	// Editor is the editor command for opening notes (defaults to $EDITOR).
	Editor string `toml:"editor"`

	// StateFile overrides the state.toml location. Relative paths are
	// resolved against the config file's directory.
	StateFile string `toml:"state_file"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an ANSI color code ("0" to "255") or hex color ("#RRGGBB")
	// used for highlights and paths.
	Accent string `toml:"accent"`
}

// GetStorePath returns the path for a named store. An empty name means the
// default store.
func (c *Config) GetStorePath(name string) (string, error) {
	if name == "" {
		name = c.DefaultStore
	}
	if c.Stores != nil {
		if path, ok := c.Stores[name]; ok {
			return path, nil
		}
	}
	if name == "" {
		return "", fmt.Errorf("no default store configured")
	}
	return "", fmt.Errorf("store %q not found in config", name)
}

// GetDefaultStorePath returns the default store path.
func (c *Config) GetDefaultStorePath() (string, error) {
	return c.GetStorePath("")
}

// ListStores returns all configured stores with their paths.
func (c *Config) ListStores() map[string]string {
	out := make(map[string]string, len(c.Stores))
	for name, path := range c.Stores {
		out[name] = path
	}
	return out
}

// GetEditor returns the configured editor, falling back to $EDITOR.
func (c *Config) GetEditor() string {
	if strings.TrimSpace(c.Editor) != "" {
		return c.Editor
	}
	return os.Getenv("EDITOR")
}

// DefaultPath returns the default config file location
// (~/.config/zet/config.toml).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "zet", "config.toml")
	}
	return filepath.Join(home, ".config", "zet", "config.toml")
}

// Load loads the configuration from the default location. A missing file
// yields an empty config, not an error.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom loads the configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}
