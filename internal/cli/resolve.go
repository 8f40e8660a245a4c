package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zetkit/zet/internal/ui"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <identifier>",
	Short: "Resolve an identifier to its note file",
	Long: `Maps an identifier to the file that carries it.

Examples:
  zet resolve 202012091130
  zet resolve 202012091130 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		id := args[0]

		path, err := s.Resolve(id)
		if err != nil {
			return handleStoreError(err)
		}
		title, err := s.TitleOf(id)
		if err != nil {
			return handleStoreError(err)
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"id":    id,
				"title": title,
				"path":  path,
			}, nil)
			return nil
		}

		fmt.Println(ui.FilePath(path))
		if title != "" {
			fmt.Println(ui.Hint("  title: " + title))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
