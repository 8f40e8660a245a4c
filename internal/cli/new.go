package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/zetkit/zet/internal/note"
	"github.com/zetkit/zet/internal/store"
	"github.com/zetkit/zet/internal/ui"
)

var (
	newSeedFile string
	newFromFile string
	newOpen     bool
)

var newCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Create a new note",
	Long: `Creates a note with a freshly allocated identifier.

Without a title, seed text is read from --seed (or stdin with --seed -):
its first line becomes the title and everything after a two-line header
skip becomes the body.

When --from points at a note you are editing (or the store configures
default_backlink), the new note opens with a link back to it.

Examples:
  zet new "Growing ideas"
  zet new --seed outline.txt
  cat outline.txt | zet new --seed -
  zet new "Child idea" --from "/path/to/202012091130 Parent.txt"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		var title string
		if len(args) == 1 {
			title = args[0]
		}

		seed, err := readSeed(newSeedFile)
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}
		if title == "" && seed == "" {
			return handleErrorMsg(ErrMissingArgument, "a title or --seed is required", "Usage: zet new <title>")
		}

		origin := ""
		if newFromFile != "" {
			id, err := s.ActiveNote(newFromFile)
			if err != nil {
				return handleStoreError(err)
			}
			origin = id
		}

		result, err := note.Create(s, note.CreateOptions{
			Title:  title,
			Seed:   seed,
			Origin: origin,
		})
		if err != nil {
			return handleStoreError(err)
		}
		log.Debug("created note", "id", result.ID, "file", result.Filename)

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"id":       result.ID,
				"title":    result.Title,
				"file":     result.Filename,
				"path":     result.Path,
				"backlink": result.Backlink,
			}, nil)
			return nil
		}

		fmt.Println(ui.Successf("Created: %s", result.Filename))
		if result.Backlink != "" {
			fmt.Println(ui.Hint("  backlink: " + result.Backlink))
		}

		if newOpen {
			openInEditorOrPrintPath(result.Path)
		}
		return nil
	},
}

// readSeed reads seed text from a file, or stdin when the path is "-".
func readSeed(path string) (string, error) {
	switch path {
	case "":
		return "", nil
	case "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read seed file: %w", err)
		}
		return string(data), nil
	}
}

// openInEditorOrPrintPath opens a file in the configured editor, or prints
// the path when no editor is configured.
func openInEditorOrPrintPath(path string) {
	if !store.OpenInEditor(getConfig().GetEditor(), path) {
		fmt.Printf("Open: %s\n", ui.FilePath(path))
		fmt.Println(ui.Hint("(Set 'editor' in ~/.config/zet/config.toml or $EDITOR to open automatically)"))
	}
}

func init() {
	newCmd.Flags().StringVar(&newSeedFile, "seed", "", "Seed text file ('-' for stdin): first line is the title")
	newCmd.Flags().StringVar(&newFromFile, "from", "", "Path of the originating note, for the auto-backlink")
	newCmd.Flags().BoolVar(&newOpen, "open", false, "Open the new note in the editor")
	rootCmd.AddCommand(newCmd)
}
