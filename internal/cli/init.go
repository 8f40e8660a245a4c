package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zetkit/zet/internal/config"
	"github.com/zetkit/zet/internal/ui"
)

var initExtension string

var initCmd = &cobra.Command{
	Use:   "init <directory>",
	Short: "Create a new note store",
	Long: `Creates a note directory with a default zet.yaml.

The directory is the entire store: no index, no database, no sidecar
metadata. Register it in ~/.config/zet/config.toml under [stores] to
address it by name.

Examples:
  zet init ~/notes
  zet init ~/notes --extension org`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return handleError(ErrFileWriteError, fmt.Errorf("create store directory: %w", err), "")
		}

		configFile := filepath.Join(dir, config.StoreConfigFilename)
		if _, err := os.Stat(configFile); err == nil {
			return handleErrorMsg(ErrFileExists,
				fmt.Sprintf("%s already exists in %s", config.StoreConfigFilename, dir),
				"This directory is already a note store")
		}

		sc := &config.StoreConfig{Extension: initExtension}
		if err := config.SaveStoreConfig(dir, sc); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"store": dir}, nil)
			return nil
		}

		fmt.Println(ui.Successf("Created store: %s", dir))
		fmt.Println(ui.Hint("Add it to ~/.config/zet/config.toml under [stores] to use it by name"))
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initExtension, "extension", "", "Note file extension (default txt)")
	rootCmd.AddCommand(initCmd)
}
