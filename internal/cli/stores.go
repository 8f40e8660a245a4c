package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/zetkit/zet/internal/config"
	"github.com/zetkit/zet/internal/ui"
)

var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "Manage configured stores",
	Long: `Lists the stores named in config.toml and switches the active store
recorded in state.toml.`,
}

var storesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured stores",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, confPath, err := loadGlobalConfigWithPath()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		statePath := config.ResolveStatePath(statePathFlag, confPath, c)
		state, err := config.LoadState(statePath)
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		stores := c.ListStores()
		names := make([]string, 0, len(stores))
		for name := range stores {
			names = append(names, name)
		}
		sort.Strings(names)

		if isJSONOutput() {
			type storeJSON struct {
				Name    string `json:"name"`
				Path    string `json:"path"`
				Active  bool   `json:"active"`
				Default bool   `json:"default"`
			}
			items := make([]storeJSON, 0, len(names))
			for _, name := range names {
				items = append(items, storeJSON{
					Name:    name,
					Path:    stores[name],
					Active:  name == state.ActiveStore,
					Default: name == c.DefaultStore,
				})
			}
			outputSuccess(map[string]interface{}{
				"stores": items,
			}, &Meta{Count: len(items)})
			return nil
		}

		if len(names) == 0 {
			fmt.Println("No stores configured")
			fmt.Println(ui.Hint("Add a [stores] entry to " + config.DefaultPath()))
			return nil
		}

		for _, name := range names {
			marker := "  "
			if name == state.ActiveStore {
				marker = "* "
			}
			label := name
			if name == c.DefaultStore {
				label += " (default)"
			}
			fmt.Printf("%s%s  %s\n", marker, ui.Bold.Render(label), ui.FilePath(stores[name]))
		}
		return nil
	},
}

var storesUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the active store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		c, confPath, err := loadGlobalConfigWithPath()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		if _, err := c.GetStorePath(name); err != nil {
			return handleErrorMsg(ErrStoreNotFound,
				fmt.Sprintf("store '%s' not found in config", name),
				"Run 'zet stores list' to see configured stores")
		}

		statePath := config.ResolveStatePath(statePathFlag, confPath, c)
		state, err := config.LoadState(statePath)
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		state.ActiveStore = name
		if err := config.SaveState(statePath, state); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"active_store": name,
				"state_path":   statePath,
			}, nil)
			return nil
		}

		fmt.Println(ui.Successf("Active store set to '%s'", name))
		return nil
	},
}

func init() {
	storesCmd.AddCommand(storesListCmd)
	storesCmd.AddCommand(storesUseCmd)
	rootCmd.AddCommand(storesCmd)
}
