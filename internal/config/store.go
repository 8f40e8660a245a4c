package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/zetkit/zet/internal/atomicfile"
	"github.com/zetkit/zet/internal/ident"
)

// StoreConfigFilename is the per-store configuration file, kept inside the
// note directory itself.
const StoreConfigFilename = "zet.yaml"

// StoreConfig represents store-level configuration from zet.yaml.
// Every field is optional; zero values mean the defaults.
type StoreConfig struct {
	// Extension is the note file extension without the leading dot
	// (default "txt").
	Extension string `yaml:"extension,omitempty"`

	// IDFormat is the time layout used to mint identifiers
	// (default "200601021504", twelve digits at minute granularity).
	IDFormat string `yaml:"id_format,omitempty"`

	// IDPattern is the regexp recognizing identifiers
	// (default "[0-9]{12}").
	IDPattern string `yaml:"id_pattern,omitempty"`

	// TitleStyle is "plain" or "slug" (default "plain").
	TitleStyle string `yaml:"title_style,omitempty"`

	// RenameScope is "header" or "all": how far the title substitution
	// reaches when a note is renamed (default "header").
	RenameScope string `yaml:"rename_scope,omitempty"`

	// DefaultBacklink is the identifier new notes link back to when no
	// originating note is given.
	DefaultBacklink string `yaml:"default_backlink,omitempty"`
}

// IdentConfig builds the identifier configuration, compiling the pattern.
func (sc *StoreConfig) IdentConfig() (ident.Config, error) {
	cfg := ident.Config{Format: sc.IDFormat}
	if sc.IDPattern != "" {
		re, err := regexp.Compile(sc.IDPattern)
		if err != nil {
			return ident.Config{}, fmt.Errorf("invalid id_pattern %q: %w", sc.IDPattern, err)
		}
		cfg.Pattern = re
	}
	return cfg, nil
}

// LoadStoreConfig reads zet.yaml from a note directory. A missing file
// yields an empty config, not an error.
func LoadStoreConfig(dir string) (*StoreConfig, error) {
	path := filepath.Join(dir, StoreConfigFilename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &StoreConfig{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", StoreConfigFilename, err)
	}

	var sc StoreConfig
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &sc, nil
}

// SaveStoreConfig writes zet.yaml atomically.
func SaveStoreConfig(dir string, sc *StoreConfig) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", StoreConfigFilename, err)
	}
	return atomicfile.WriteFile(filepath.Join(dir, StoreConfigFilename), data, 0o644)
}
