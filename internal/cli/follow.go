package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/zetkit/zet/internal/note"
	"github.com/zetkit/zet/internal/ui"
)

var followOpen bool

var followCmd = &cobra.Command{
	Use:   "follow <file> <offset>",
	Short: "Follow the link under a cursor position",
	Long: `Finds the identifier touching the byte offset in the file and resolves
it to a note. Editors wire this to follow-link-at-point: pass the current
buffer's path and cursor offset.

Examples:
  zet follow "202109011200 Source.txt" 24
  zet follow "202109011200 Source.txt" 24 --open`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		offset, err := strconv.Atoi(args[1])
		if err != nil {
			return handleErrorMsg(ErrInvalidInput, fmt.Sprintf("offset %q is not a number", args[1]), "")
		}

		id, target, err := note.FollowLink(s, args[0], offset)
		if err != nil {
			return handleStoreError(err)
		}
		log.Debug("followed link", "id", id, "target", target)

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"id":   id,
				"path": target,
			}, nil)
			return nil
		}

		fmt.Printf("%s -> %s\n", ui.Identifier(id), ui.FilePath(target))
		if followOpen {
			openInEditorOrPrintPath(target)
		}
		return nil
	},
}

func init() {
	followCmd.Flags().BoolVar(&followOpen, "open", false, "Open the target note in the editor")
	rootCmd.AddCommand(followCmd)
}
