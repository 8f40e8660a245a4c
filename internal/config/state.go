package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/zetkit/zet/internal/atomicfile"
)

// StateVersion is the current state file schema version.
const StateVersion = 1

// State represents mutable machine-local runtime state.
type State struct {
	Version     int    `toml:"version"`
	ActiveStore string `toml:"active_store,omitempty"`
}

// ResolveConfigPath resolves the effective config path from an optional
// override.
func ResolveConfigPath(explicitConfigPath string) string {
	if strings.TrimSpace(explicitConfigPath) != "" {
		return explicitConfigPath
	}
	return DefaultPath()
}

// ResolveStatePath resolves the state.toml path with precedence:
//  1. explicitStatePath flag
//  2. cfg.StateFile from config.toml (relative to the config file dir)
//  3. sibling state.toml next to config.toml
func ResolveStatePath(explicitStatePath, configPath string, cfg *Config) string {
	if strings.TrimSpace(explicitStatePath) != "" {
		return explicitStatePath
	}

	configDir := filepath.Dir(ResolveConfigPath(configPath))

	if cfg != nil {
		if fromConfig := strings.TrimSpace(cfg.StateFile); fromConfig != "" {
			if filepath.IsAbs(fromConfig) {
				return filepath.Clean(fromConfig)
			}
			return filepath.Join(configDir, filepath.FromSlash(fromConfig))
		}
	}

	return filepath.Join(configDir, "state.toml")
}

// LoadState loads runtime state. A missing file yields empty state.
func LoadState(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &State{Version: StateVersion}, nil
		}
		return nil, fmt.Errorf("read state: %w", err)
	}

	var st State
	if err := toml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if st.Version == 0 {
		st.Version = StateVersion
	}
	return &st, nil
}

// SaveState writes runtime state atomically, creating the parent directory
// when needed.
func SaveState(path string, st *State) error {
	if st.Version == 0 {
		st.Version = StateVersion
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(st); err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	return atomicfile.WriteFile(path, buf.Bytes(), 0o644)
}
