package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFrom(t *testing.T) {
	path := writeConfig(t, `
default_store = "main"
editor = "vim"

[stores]
main = "/notes/main"
work = "/notes/work"
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.DefaultStore != "main" {
		t.Errorf("DefaultStore = %q, want %q", cfg.DefaultStore, "main")
	}
	if cfg.Editor != "vim" {
		t.Errorf("Editor = %q, want %q", cfg.Editor, "vim")
	}

	got, err := cfg.GetStorePath("work")
	if err != nil || got != "/notes/work" {
		t.Errorf("GetStorePath(work) = (%q, %v), want /notes/work", got, err)
	}

	got, err = cfg.GetDefaultStorePath()
	if err != nil || got != "/notes/main" {
		t.Errorf("GetDefaultStorePath() = (%q, %v), want /notes/main", got, err)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if _, err := cfg.GetDefaultStorePath(); err == nil {
		t.Error("empty config reported a default store")
	}
}

func TestGetStorePathUnknown(t *testing.T) {
	cfg := &Config{Stores: map[string]string{"main": "/notes"}}
	if _, err := cfg.GetStorePath("missing"); err == nil {
		t.Error("GetStorePath() accepted an unknown store name")
	}
}

func TestStateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")

	if err := SaveState(path, &State{ActiveStore: "work"}); err != nil {
		t.Fatalf("SaveState() error: %v", err)
	}

	st, err := LoadState(path)
	if err != nil {
		t.Fatalf("LoadState() error: %v", err)
	}
	if st.ActiveStore != "work" {
		t.Errorf("ActiveStore = %q, want %q", st.ActiveStore, "work")
	}
	if st.Version != StateVersion {
		t.Errorf("Version = %d, want %d", st.Version, StateVersion)
	}
}

func TestLoadStateMissing(t *testing.T) {
	st, err := LoadState(filepath.Join(t.TempDir(), "state.toml"))
	if err != nil {
		t.Fatalf("LoadState() error: %v", err)
	}
	if st.ActiveStore != "" {
		t.Errorf("ActiveStore = %q, want empty", st.ActiveStore)
	}
}

func TestResolveStatePath(t *testing.T) {
	configPath := filepath.Join("/etc", "zet", "config.toml")

	tests := []struct {
		name     string
		explicit string
		cfg      *Config
		want     string
	}{
		{name: "explicit wins", explicit: "/tmp/state.toml", cfg: &Config{StateFile: "other.toml"}, want: "/tmp/state.toml"},
		{name: "config relative", cfg: &Config{StateFile: "other.toml"}, want: filepath.Join("/etc", "zet", "other.toml")},
		{name: "config absolute", cfg: &Config{StateFile: "/var/zet/state.toml"}, want: "/var/zet/state.toml"},
		{name: "sibling default", cfg: &Config{}, want: filepath.Join("/etc", "zet", "state.toml")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveStatePath(tt.explicit, configPath, tt.cfg)
			if got != tt.want {
				t.Errorf("ResolveStatePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStoreConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()

	sc := &StoreConfig{
		Extension:   "org",
		RenameScope: "all",
	}
	if err := SaveStoreConfig(dir, sc); err != nil {
		t.Fatalf("SaveStoreConfig() error: %v", err)
	}

	loaded, err := LoadStoreConfig(dir)
	if err != nil {
		t.Fatalf("LoadStoreConfig() error: %v", err)
	}
	if loaded.Extension != "org" || loaded.RenameScope != "all" {
		t.Errorf("LoadStoreConfig() = %+v, want extension org, rename scope all", loaded)
	}
}

func TestLoadStoreConfigMissing(t *testing.T) {
	sc, err := LoadStoreConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadStoreConfig() error: %v", err)
	}
	if sc.Extension != "" {
		t.Errorf("missing zet.yaml produced %+v, want zero config", sc)
	}
}

func TestIdentConfig(t *testing.T) {
	sc := &StoreConfig{IDPattern: `[0-9]{8}`, IDFormat: "20060102"}
	cfg, err := sc.IdentConfig()
	if err != nil {
		t.Fatalf("IdentConfig() error: %v", err)
	}
	if !cfg.Matches("20201209") {
		t.Error("custom pattern rejected a matching identifier")
	}
	if cfg.Matches("202012091130") {
		t.Error("custom pattern accepted a twelve-digit identifier")
	}
}

func TestIdentConfigBadPattern(t *testing.T) {
	sc := &StoreConfig{IDPattern: `[0-9`}
	if _, err := sc.IdentConfig(); err == nil {
		t.Error("IdentConfig() accepted an invalid pattern")
	}
}
