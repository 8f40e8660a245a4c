package store

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/zetkit/zet/internal/shellquote"
)

// OpenInEditor opens a file in the given editor command, in the background.
// Returns false when no editor is configured or the launch fails; callers
// fall back to printing the path.
//
// A compound editor command ("open -a Cursor", "code --wait") runs via the
// shell so its arguments survive.
func OpenInEditor(editor, filePath string) bool {
	editor = strings.TrimSpace(editor)
	if editor == "" {
		return false
	}

	var cmd *exec.Cmd
	if strings.Contains(editor, " ") {
		cmd = exec.Command("sh", "-c", editor+" "+shellquote.Quote(filePath))
	} else {
		cmd = exec.Command(editor, filePath)
	}

	if err := cmd.Start(); err != nil {
		fmt.Printf("Warning: failed to open editor %q: %v\n", editor, err)
		return false
	}
	return true
}
