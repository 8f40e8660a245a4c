package cli

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	builtindocs "github.com/zetkit/zet/docs"
	"github.com/zetkit/zet/internal/ui"
)

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Read the bundled guides",
	Long: `Lists the guides bundled with the binary, or renders one.

Examples:
  zet docs
  zet docs method`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topics, err := listDocTopics()
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		if len(args) == 0 {
			if isJSONOutput() {
				outputSuccess(map[string]interface{}{
					"topics": topics,
				}, &Meta{Count: len(topics)})
				return nil
			}
			fmt.Println(ui.Header("Guides"))
			for _, topic := range topics {
				fmt.Printf("  %s\n", topic)
			}
			fmt.Println()
			fmt.Println(ui.Hint("Read one with 'zet docs <topic>'"))
			return nil
		}

		topic := args[0]
		data, err := fs.ReadFile(builtindocs.FS, path.Join("guide", topic+".md"))
		if err != nil {
			return handleErrorMsg(ErrInvalidInput,
				fmt.Sprintf("no guide named %q", topic),
				"Run 'zet docs' to list guides")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"topic":   topic,
				"content": string(data),
			}, nil)
			return nil
		}

		rendered, err := ui.RenderMarkdown(string(data), ui.TermWidth())
		if err != nil {
			fmt.Print(string(data))
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}

func listDocTopics() ([]string, error) {
	entries, err := fs.ReadDir(builtindocs.FS, "guide")
	if err != nil {
		return nil, err
	}
	topics := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		topics = append(topics, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(topics)
	return topics, nil
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
