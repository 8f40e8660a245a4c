package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zetkit/zet/internal/note"
	"github.com/zetkit/zet/internal/store"
)

var tagsSearch bool

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all tags in the store",
	Long: `Enumerates every #tag across the store, case-normalized and
de-duplicated. Tags have no stored identity; this list is computed fresh
each time.

With --search, pick a tag interactively and search the store for it.

Examples:
  zet tags
  zet tags --search`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		tags, err := note.Tags(s)
		if err != nil {
			return handleStoreError(err)
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"tags": tags,
			}, &Meta{Count: len(tags)})
			return nil
		}

		if len(tags) == 0 {
			fmt.Println("No tags found")
			return nil
		}

		if tagsSearch && canUseFZFInteractive() {
			selected, ok, err := runFZFPicker(tags, fzfPickerOptions{Prompt: "tag> "})
			if err != nil || !ok {
				return err
			}
			return searchAndPrint(s, selected)
		}

		for _, tag := range tags {
			fmt.Println(tag)
		}
		return nil
	},
}

// searchAndPrint runs a store search and prints the matches, or a friendly
// empty-result note when the term appears nowhere.
func searchAndPrint(s *store.Store, term string) error {
	matches, err := s.Search(term)
	if err != nil {
		var noResults *store.NoResultsError
		if errors.As(err, &noResults) {
			fmt.Printf("No results found for: %s\n", term)
			return nil
		}
		return handleStoreError(err)
	}

	if canUseFZFInteractive() {
		return pickAndOpenMatch(matches, "note> ")
	}
	printMatches(matches, term)
	return nil
}

func init() {
	tagsCmd.Flags().BoolVar(&tagsSearch, "search", false, "Pick a tag interactively and search for it")
	rootCmd.AddCommand(tagsCmd)
}
