package note

import (
	"errors"

	"github.com/zetkit/zet/internal/store"
)

// Outlink is one link found in a note's body. Dangling links are legal:
// Resolved is false and Path/Title are empty.
type Outlink struct {
	ID       string
	Resolved bool
	Path     string
	Title    string
}

// Outlinks returns the links in a note's body, in order of appearance,
// de-duplicated by identifier, each annotated with its resolution status.
func Outlinks(s *store.Store, id string) ([]Outlink, error) {
	body, err := s.ReadNote(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var out []Outlink
	for _, target := range s.Grammar().ExtractLinks(body) {
		if _, dup := seen[target]; dup {
			continue
		}
		seen[target] = struct{}{}

		ol := Outlink{ID: target}
		if path, err := s.Resolve(target); err == nil {
			ol.Resolved = true
			ol.Path = path
			if title, err := s.TitleOf(target); err == nil {
				ol.Title = title
			}
		} else {
			var notFound *store.NotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
		out = append(out, ol)
	}
	return out, nil
}
