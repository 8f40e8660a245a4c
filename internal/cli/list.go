package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zetkit/zet/internal/ui"
)

// NoteJSON is the JSON representation of a note listing entry.
type NoteJSON struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	File  string `json:"file"`
}

var listPick bool

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List notes in the store",
	Long: `Lists every note in the store with its identifier and title, in
filename order.

Examples:
  zet list
  zet list --pick`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		files, err := s.ListFiles()
		if err != nil {
			return handleStoreError(err)
		}

		type entry struct {
			id, title, file string
		}
		var entries []entry
		for _, f := range files {
			id, title, err := s.Codec().Decode(f)
			if err != nil {
				continue
			}
			entries = append(entries, entry{id: id, title: title, file: f})
		}

		if isJSONOutput() {
			items := make([]NoteJSON, len(entries))
			for i, e := range entries {
				items[i] = NoteJSON{ID: e.id, Title: e.title, File: e.file}
			}
			outputSuccess(map[string]interface{}{
				"items": items,
			}, &Meta{Count: len(items)})
			return nil
		}

		if len(entries) == 0 {
			fmt.Println("No notes found")
			return nil
		}

		if listPick && canUseFZFInteractive() {
			lines := make([]string, len(entries))
			byLine := make(map[string]entry, len(entries))
			for i, e := range entries {
				line := fmt.Sprintf("%s  %s", e.id, e.title)
				lines[i] = line
				byLine[line] = e
			}
			selected, ok, err := runFZFPicker(lines, fzfPickerOptions{Prompt: "note> "})
			if err != nil || !ok {
				return err
			}
			openInEditorOrPrintPath(filepath.Join(s.Dir(), byLine[selected].file))
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%s  %s\n", ui.Identifier(e.id), e.title)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listPick, "pick", false, "Pick a note interactively and open it")
	rootCmd.AddCommand(listCmd)
}
