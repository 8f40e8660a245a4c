package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zetkit/zet/internal/note"
	"github.com/zetkit/zet/internal/ui"
)

// ProblemJSON is the JSON representation of a store consistency problem.
type ProblemJSON struct {
	Kind string `json:"kind"`
	File string `json:"file"`
	ID   string `json:"id,omitempty"`
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the store for problems",
	Long: `Scans the store for filenames that carry no identifier and for
identifiers claimed by more than one file. Nothing is repaired; the
command only reports.

Examples:
  zet doctor`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		problems, err := note.CheckStore(s)
		if err != nil {
			return handleStoreError(err)
		}

		if isJSONOutput() {
			items := make([]ProblemJSON, len(problems))
			for i, p := range problems {
				items[i] = ProblemJSON{Kind: p.Kind, File: p.Filename, ID: p.ID}
			}
			outputSuccess(map[string]interface{}{
				"problems": items,
			}, &Meta{Count: len(items)})
			return nil
		}

		if len(problems) == 0 {
			fmt.Println(ui.Success("No problems found"))
			return nil
		}

		for _, p := range problems {
			switch p.Kind {
			case "malformed-filename":
				fmt.Println(ui.Warningf("malformed filename: %s", p.Filename))
			case "duplicate-identifier":
				fmt.Println(ui.Warningf("duplicate identifier %s: %s", p.ID, p.Filename))
			default:
				fmt.Println(ui.Warningf("%s: %s", p.Kind, p.Filename))
			}
		}
		fmt.Println()
		fmt.Println(ui.Hint(fmt.Sprintf("%d problem(s) found", len(problems))))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
