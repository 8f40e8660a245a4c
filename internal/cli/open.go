package cli

import (
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open [identifier]",
	Short: "Open a note in your editor",
	Long: `Resolves the identifier and opens the note file in the configured
editor. Without an argument, picks a note interactively when fzf is
available.

Examples:
  zet open 202012091130
  zet open`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		if len(args) == 0 {
			if !canUseFZFInteractive() {
				return handleErrorMsg(ErrMissingArgument,
					"an identifier is required when fzf is not available",
					"Run 'zet list' to find a note's identifier")
			}
			files, err := s.ListFiles()
			if err != nil {
				return handleStoreError(err)
			}
			selected, ok, err := runFZFPicker(files, fzfPickerOptions{Prompt: "note> "})
			if err != nil || !ok {
				return err
			}
			id, ok := s.Grammar().ExtractIdentifier(selected)
			if !ok {
				return handleErrorMsg(ErrMalformedFilename,
					"selected file has no identifier", "")
			}
			args = []string{id}
		}

		path, err := s.Resolve(args[0])
		if err != nil {
			return handleStoreError(err)
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"id":   args[0],
				"path": path,
			}, nil)
			return nil
		}

		openInEditorOrPrintPath(path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
