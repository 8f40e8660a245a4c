package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zetkit/zet/internal/ui"
)

var readRaw bool

var readCmd = &cobra.Command{
	Use:     "read <identifier>",
	Aliases: []string{"cat"},
	Short:   "Print a note's contents",
	Long: `Resolves the identifier and prints the note body, rendered for the
terminal when output is a TTY. Use --raw to print the file verbatim.

Examples:
  zet read 202012091130
  zet read 202012091130 --raw`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		id := args[0]

		content, err := s.ReadNote(id)
		if err != nil {
			return handleStoreError(err)
		}

		if isJSONOutput() {
			title, _ := s.TitleOf(id)
			outputSuccess(map[string]interface{}{
				"id":      id,
				"title":   title,
				"content": content,
			}, nil)
			return nil
		}

		if readRaw {
			fmt.Print(content)
			return nil
		}

		rendered, err := ui.RenderMarkdown(content, ui.TermWidth())
		if err != nil {
			fmt.Print(content)
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}

func init() {
	readCmd.Flags().BoolVar(&readRaw, "raw", false, "Print the file without terminal rendering")
	rootCmd.AddCommand(readCmd)
}
