package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zetkit/zet/internal/note"
	"github.com/zetkit/zet/internal/store"
	"github.com/zetkit/zet/internal/ui"
)

// BacklinkJSON is the JSON representation of a backlink match.
type BacklinkJSON struct {
	File string `json:"file"`
	Path string `json:"path"`
	Line int    `json:"line"`
	Text string `json:"text"`
}

var backlinksPick bool

var backlinksCmd = &cobra.Command{
	Use:   "backlinks <identifier>",
	Short: "Show notes linking to a note",
	Long: `Searches the whole store for the identifier and lists the notes that
mention it, excluding the note's own file.

Examples:
  zet backlinks 202012091130
  zet backlinks 202012091130 --pick`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		id := args[0]

		links, err := note.Backlinks(s, id)
		if err != nil {
			return handleStoreError(err)
		}

		if isJSONOutput() {
			items := make([]BacklinkJSON, len(links))
			for i, m := range links {
				items[i] = BacklinkJSON{File: m.Filename, Path: m.Path, Line: m.Line, Text: m.Text}
			}
			outputSuccess(map[string]interface{}{
				"id":    id,
				"items": items,
			}, &Meta{Count: len(items)})
			return nil
		}

		if len(links) == 0 {
			fmt.Printf("No backlinks found for '%s'\n", id)
			return nil
		}

		if backlinksPick && canUseFZFInteractive() {
			return pickAndOpenMatch(links, "backlink> ")
		}

		fmt.Printf("Backlinks to %s:\n\n", ui.Identifier(id))
		for _, m := range links {
			fmt.Printf("  %s:%d  %s\n", ui.FilePath(m.Filename), m.Line, m.Text)
		}
		return nil
	},
}

// pickAndOpenMatch lets the user choose a search match and opens it.
func pickAndOpenMatch(matches []store.SearchMatch, prompt string) error {
	lines := make([]string, len(matches))
	byLine := make(map[string]store.SearchMatch, len(matches))
	for i, m := range matches {
		line := fmt.Sprintf("%s:%d  %s", m.Filename, m.Line, m.Text)
		lines[i] = line
		byLine[line] = m
	}

	selected, ok, err := runFZFPicker(lines, fzfPickerOptions{Prompt: prompt})
	if err != nil || !ok {
		return err
	}
	openInEditorOrPrintPath(byLine[selected].Path)
	return nil
}

func init() {
	backlinksCmd.Flags().BoolVar(&backlinksPick, "pick", false, "Pick a backlink interactively and open it")
	rootCmd.AddCommand(backlinksCmd)
}
