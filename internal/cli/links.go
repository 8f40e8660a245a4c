package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zetkit/zet/internal/note"
	"github.com/zetkit/zet/internal/ui"
)

// OutlinkJSON is the JSON representation of an outgoing link.
type OutlinkJSON struct {
	ID       string `json:"id"`
	Resolved bool   `json:"resolved"`
	Title    string `json:"title,omitempty"`
	Path     string `json:"path,omitempty"`
}

var linksCmd = &cobra.Command{
	Use:   "links <identifier>",
	Short: "Show a note's outgoing links",
	Long: `Lists the [[identifier]] links in a note's body, with their resolution
status. Dangling links are listed, not treated as errors.

Examples:
  zet links 202012091130`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		id := args[0]

		links, err := note.Outlinks(s, id)
		if err != nil {
			return handleStoreError(err)
		}

		if isJSONOutput() {
			items := make([]OutlinkJSON, len(links))
			for i, l := range links {
				items[i] = OutlinkJSON{ID: l.ID, Resolved: l.Resolved, Title: l.Title, Path: l.Path}
			}
			outputSuccess(map[string]interface{}{
				"id":    id,
				"items": items,
			}, &Meta{Count: len(items)})
			return nil
		}

		if len(links) == 0 {
			fmt.Printf("No links found in '%s'\n", id)
			return nil
		}

		fmt.Printf("Links from %s:\n\n", ui.Identifier(id))
		for _, l := range links {
			if l.Resolved {
				fmt.Printf("  %s  %s\n", ui.Identifier(l.ID), l.Title)
			} else {
				fmt.Printf("  %s  %s\n", ui.Identifier(l.ID), ui.Hint("(dangling)"))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(linksCmd)
}
