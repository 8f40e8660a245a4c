package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SearchMatch is one content hit from a store-wide search.
type SearchMatch struct {
	// Filename is the note filename within the store.
	Filename string

	// Path is the absolute file path.
	Path string

	// Line is the 1-indexed line number of the match.
	Line int

	// Text is the matching line, trimmed.
	Text string
}

// Search scans every note's content for the term: case-insensitive,
// fixed-string (the term is never treated as a pattern). Matches come back
// in filename order, then line order. Zero matches is NoResultsError.
//
// This is the in-process rendition of the external search collaborator;
// nothing in the core depends on how matching is executed.
func (s *Store) Search(term string) ([]SearchMatch, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("empty search term")
	}

	names, err := s.ListFiles()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(term)
	var matches []SearchMatch
	for _, name := range names {
		path := filepath.Join(s.cfg.Dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		for i, line := range strings.Split(string(data), "\n") {
			if strings.Contains(strings.ToLower(line), needle) {
				matches = append(matches, SearchMatch{
					Filename: name,
					Path:     path,
					Line:     i + 1,
					Text:     strings.TrimSpace(line),
				})
			}
		}
	}

	if len(matches) == 0 {
		return nil, &NoResultsError{Term: term}
	}
	return matches, nil
}
