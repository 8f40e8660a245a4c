// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zetkit/zet/internal/config"
	"github.com/zetkit/zet/internal/logging"
	"github.com/zetkit/zet/internal/ui"
)

var (
	// Global flags
	storeName     string // Named store from config
	storePathFlag string // Explicit path (rare)
	configPath    string
	statePathFlag string
	verbose       bool

	// Resolved values
	resolvedStorePath  string
	resolvedConfigPath string
	resolvedStatePath  string
	cfg                *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "zet",
	Short: "zet - a plain-directory zettelkasten",
	Long: `Zet keeps a directory of plain-text notes that reference each other
through inline identifiers. The directory is the whole database: filenames
carry each note's identifier and title, links are [[identifier]] occurrences
in note bodies, and every lookup is a directory scan.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(verbose)

		// Skip store resolution for commands that don't need one
		switch cmd.Name() {
		case "init", "stores", "completion", "help", "version", "docs":
			return nil
		}
		if cmd.Parent() != nil && (cmd.Parent().Name() == "completion" || cmd.Parent().Name() == "stores") {
			return nil
		}

		var err error
		cfg, resolvedConfigPath, err = loadGlobalConfigWithPath()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		resolvedStatePath = config.ResolveStatePath(statePathFlag, resolvedConfigPath, cfg)
		ui.ConfigureTheme(cfg.UI.Accent)

		// Resolve store path: explicit path > named store > active state > default
		if storePathFlag != "" {
			resolvedStorePath = storePathFlag
		} else if storeName != "" {
			resolvedStorePath, err = cfg.GetStorePath(storeName)
			if err != nil {
				return fmt.Errorf("store '%s' not found\n\nRun 'zet stores list' to see configured stores", storeName)
			}
		} else {
			state, stateErr := config.LoadState(resolvedStatePath)
			if stateErr != nil {
				return fmt.Errorf("failed to load state: %w", stateErr)
			}

			activeStoreName := strings.TrimSpace(state.ActiveStore)
			if activeStoreName != "" {
				resolvedStorePath, err = cfg.GetStorePath(activeStoreName)
				if err != nil {
					resolvedStorePath, err = cfg.GetDefaultStorePath()
					if err != nil {
						return fmt.Errorf("active store '%s' not found in config and no default store configured\n\nRun 'zet stores use <name>' or set default_store in config.toml", activeStoreName)
					}
					if !jsonOutput {
						fmt.Fprintf(os.Stderr, "warning: active store '%s' not found in config, falling back to default\n", activeStoreName)
					}
				}
			} else {
				resolvedStorePath, err = cfg.GetDefaultStorePath()
				if err != nil {
					return fmt.Errorf(`no store specified

Either:
  1. Use --store <name> (from config)
  2. Use --store-path /path/to/notes
  3. Run 'zet stores use <name>' to set active_store in state.toml
  4. Set default_store in ~/.config/zet/config.toml
  5. Run 'zet init /path/to/new/store' to create one`)
				}
			}
		}

		if _, err := os.Stat(resolvedStorePath); os.IsNotExist(err) {
			return fmt.Errorf("store not found: %s\n\nRun 'zet init %s' to create it", resolvedStorePath, resolvedStorePath)
		}

		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&storeName, "store", "s", "", "Named store from config")
	rootCmd.PersistentFlags().StringVar(&storePathFlag, "store-path", "", "Explicit path to the note directory")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&statePathFlag, "state", "", "Path to state file (overrides state_file in config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}

// getStorePath returns the resolved store path.
func getStorePath() string {
	return resolvedStorePath
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}

func loadGlobalConfigWithPath() (*config.Config, string, error) {
	resolvedPath := config.ResolveConfigPath(configPath)

	var loadedCfg *config.Config
	var err error
	if strings.TrimSpace(configPath) != "" {
		loadedCfg, err = config.LoadFrom(configPath)
	} else {
		loadedCfg, err = config.Load()
	}
	if err != nil {
		return nil, "", err
	}
	if loadedCfg == nil {
		loadedCfg = &config.Config{}
	}

	return loadedCfg, resolvedPath, nil
}
