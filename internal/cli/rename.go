package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/zetkit/zet/internal/note"
	"github.com/zetkit/zet/internal/store"
	"github.com/zetkit/zet/internal/ui"
)

var renameScopeFlag string

var renameCmd = &cobra.Command{
	Use:   "rename <identifier> <new-title>",
	Short: "Rename a note's title",
	Long: `Replaces a note's title, keeping its identifier.

Links address notes by identifier, never by title, so renaming breaks
nothing. Occurrences of the old title inside the note body are replaced
too: by default only on the first line, or everywhere with --scope all.

Examples:
  zet rename 202012091130 "Better title"
  zet rename 202012091130 "Better title" --scope all`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		if renameScopeFlag != "" &&
			renameScopeFlag != store.RenameScopeHeader &&
			renameScopeFlag != store.RenameScopeAll {
			return handleErrorMsg(ErrInvalidInput,
				fmt.Sprintf("unknown scope %q", renameScopeFlag),
				"Use --scope header or --scope all")
		}

		result, err := note.Rename(s, note.RenameOptions{
			ID:       args[0],
			NewTitle: args[1],
			Scope:    renameScopeFlag,
		})
		if err != nil {
			return handleStoreError(err)
		}
		log.Debug("renamed note", "id", result.ID, "from", result.OldTitle, "to", result.NewTitle)

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"id":           result.ID,
				"old_title":    result.OldTitle,
				"new_title":    result.NewTitle,
				"path":         result.NewPath,
				"replacements": result.Replacements,
			}, nil)
			return nil
		}

		fmt.Println(ui.Successf("Renamed: %s -> %s", result.OldTitle, result.NewTitle))
		if result.Replacements > 0 {
			fmt.Println(ui.Hint(fmt.Sprintf("  replaced %d occurrence(s) of the old title in the body", result.Replacements)))
		}
		return nil
	},
}

func init() {
	renameCmd.Flags().StringVar(&renameScopeFlag, "scope", "", "Title substitution scope: header or all (default from zet.yaml)")
	rootCmd.AddCommand(renameCmd)
}
