package note

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zetkit/zet/internal/atomicfile"
	"github.com/zetkit/zet/internal/store"
)

// RenameOptions controls a title rename.
type RenameOptions struct {
	// ID is the identifier of the note to rename.
	ID string

	// NewTitle is the replacement title.
	NewTitle string

	// Scope overrides the store's rename substitution scope:
	// store.RenameScopeHeader or store.RenameScopeAll. Empty uses the
	// store's configured scope.
	Scope string
}

// RenameResult describes a completed rename.
type RenameResult struct {
	ID           string
	OldTitle     string
	NewTitle     string
	OldPath      string
	NewPath      string
	Replacements int
}

// Rename replaces a note's title, preserving its identifier. Links address
// notes by identifier only, so every link to the note keeps working.
//
// The rewritten body is staged at the new path first and the old path is
// removed afterwards; if the removal fails the staged file is rolled back,
// so the rename either fully applies or leaves the store as it was.
func Rename(s *store.Store, opts RenameOptions) (*RenameResult, error) {
	oldPath, err := s.Resolve(opts.ID)
	if err != nil {
		return nil, err
	}
	_, oldTitle, err := s.Codec().Decode(oldPath)
	if err != nil {
		return nil, err
	}

	newTitle := strings.TrimSpace(opts.NewTitle)
	newName, err := s.Codec().Encode(opts.ID, newTitle)
	if err != nil {
		return nil, err
	}
	newPath := filepath.Join(s.Dir(), newName)

	scope := opts.Scope
	if scope == "" {
		scope = s.Config().RenameScope
	}

	data, err := os.ReadFile(oldPath)
	if err != nil {
		return nil, fmt.Errorf("read note: %w", err)
	}
	body, replacements := substituteTitle(string(data), oldTitle, newTitle, scope)

	if newPath == oldPath {
		if replacements > 0 {
			if err := atomicfile.WriteFile(oldPath, []byte(body), 0o644); err != nil {
				return nil, fmt.Errorf("rewrite note body: %w", err)
			}
		}
		return &RenameResult{
			ID: opts.ID, OldTitle: oldTitle, NewTitle: newTitle,
			OldPath: oldPath, NewPath: newPath, Replacements: replacements,
		}, nil
	}

	if _, err := os.Stat(newPath); err == nil {
		return nil, fmt.Errorf("a note named %q already exists", newName)
	}

	if err := atomicfile.WriteFile(newPath, []byte(body), 0o644); err != nil {
		return nil, fmt.Errorf("stage renamed note: %w", err)
	}
	if err := os.Remove(oldPath); err != nil {
		_ = os.Remove(newPath)
		return nil, fmt.Errorf("remove old note file: %w", err)
	}

	return &RenameResult{
		ID: opts.ID, OldTitle: oldTitle, NewTitle: newTitle,
		OldPath: oldPath, NewPath: newPath, Replacements: replacements,
	}, nil
}

// substituteTitle replaces occurrences of oldTitle in the body with
// newTitle. Scope "all" is a blunt literal substitution over the whole
// body; scope "header" touches only the first line, which avoids corrupting
// unrelated text that happens to match the title.
func substituteTitle(body, oldTitle, newTitle, scope string) (string, int) {
	if oldTitle == "" || oldTitle == newTitle {
		return body, 0
	}

	switch scope {
	case store.RenameScopeAll:
		count := strings.Count(body, oldTitle)
		return strings.ReplaceAll(body, oldTitle, newTitle), count
	default:
		head, tail, found := strings.Cut(body, "\n")
		count := strings.Count(head, oldTitle)
		head = strings.ReplaceAll(head, oldTitle, newTitle)
		if found {
			return head + "\n" + tail, count
		}
		return head, count
	}
}
