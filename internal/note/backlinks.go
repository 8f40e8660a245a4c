package note

import (
	"errors"

	"github.com/zetkit/zet/internal/store"
)

// Backlinks returns the content matches for the note's identifier across
// the store, excluding the note's own file even when the identifier appears
// in its own content. Zero backlinks is a normal outcome, not an error.
func Backlinks(s *store.Store, id string) ([]store.SearchMatch, error) {
	self, err := s.Resolve(id)
	if err != nil {
		return nil, err
	}

	matches, err := s.Search(id)
	if err != nil {
		var noResults *store.NoResultsError
		if errors.As(err, &noResults) {
			return nil, nil
		}
		return nil, err
	}

	var out []store.SearchMatch
	for _, m := range matches {
		if m.Path == self {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}
