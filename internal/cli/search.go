package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zetkit/zet/internal/store"
	"github.com/zetkit/zet/internal/ui"
)

// SearchMatchJSON is the JSON representation of a search hit.
type SearchMatchJSON struct {
	File string `json:"file"`
	Path string `json:"path"`
	Line int    `json:"line"`
	Text string `json:"text"`
}

var searchPick bool

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search note contents",
	Long: `Scans every note in the store for the term, case-insensitively, and
lists the matching lines.

Examples:
  zet search "permanent notes"
  zet search zettelkasten --pick`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		term := args[0]

		matches, err := s.Search(term)
		if err != nil {
			var noResults *store.NoResultsError
			if errors.As(err, &noResults) {
				return handleErrorMsg(ErrNoSearchResults,
					fmt.Sprintf("no results found for: %s", term),
					"Try a shorter or less specific term")
			}
			return handleStoreError(err)
		}

		if isJSONOutput() {
			items := make([]SearchMatchJSON, len(matches))
			for i, m := range matches {
				items[i] = SearchMatchJSON{File: m.Filename, Path: m.Path, Line: m.Line, Text: m.Text}
			}
			outputSuccess(map[string]interface{}{
				"term":  term,
				"items": items,
			}, &Meta{Count: len(items)})
			return nil
		}

		if searchPick && canUseFZFInteractive() {
			return pickAndOpenMatch(matches, "match> ")
		}
		printMatches(matches, term)
		return nil
	},
}

func printMatches(matches []store.SearchMatch, term string) {
	fmt.Printf("Results for %s:\n\n", ui.Bold.Render(term))
	for _, m := range matches {
		fmt.Printf("  %s:%d  %s\n", ui.FilePath(m.Filename), m.Line, m.Text)
	}
}

func init() {
	searchCmd.Flags().BoolVar(&searchPick, "pick", false, "Pick a match interactively and open it")
	rootCmd.AddCommand(searchCmd)
}
