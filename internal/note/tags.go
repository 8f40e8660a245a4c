package note

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/zetkit/zet/internal/link"
	"github.com/zetkit/zet/internal/store"
)

// Tags enumerates every tag across the store, case-normalized and
// de-duplicated at enumeration time. Tags have no stored identity.
func Tags(s *store.Store) ([]string, error) {
	names, err := s.ListFiles()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(s.Dir(), name))
		if err != nil {
			return nil, err
		}
		for _, tag := range link.ExtractTags(string(data)) {
			seen[tag] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags, nil
}
