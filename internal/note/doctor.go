package note

import "github.com/zetkit/zet/internal/store"

// Problem is one store-consistency finding.
type Problem struct {
	Kind     string // "malformed-filename" or "duplicate-identifier"
	Filename string
	ID       string // set for duplicate-identifier findings
}

// CheckStore surfaces files whose names carry no identifier and identifiers
// shared by more than one file. Malformed names indicate corrupted or
// foreign files; duplicate identifiers mean resolution is ambiguous and
// first-match wins.
func CheckStore(s *store.Store) ([]Problem, error) {
	names, err := s.ListFiles()
	if err != nil {
		return nil, err
	}

	owners := make(map[string]string)
	var problems []Problem
	for _, name := range names {
		id, ok := s.Grammar().ExtractIdentifier(name)
		if !ok {
			problems = append(problems, Problem{Kind: "malformed-filename", Filename: name})
			continue
		}
		if _, dup := owners[id]; dup {
			problems = append(problems, Problem{Kind: "duplicate-identifier", Filename: name, ID: id})
			continue
		}
		owners[id] = name
	}
	return problems, nil
}
