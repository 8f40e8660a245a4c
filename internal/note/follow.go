package note

import (
	"errors"
	"fmt"
	"os"

	"github.com/zetkit/zet/internal/store"
)

// ErrNoLinkAtPosition is returned when no identifier touches the cursor.
var ErrNoLinkAtPosition = errors.New("no link at this position")

// FollowLink finds the identifier touching the byte offset in the given
// file and resolves it to a note path. Dangling links surface the
// resolver's NotFoundError.
func FollowLink(s *store.Store, filePath string, offset int) (id, target string, err error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", "", fmt.Errorf("read file: %w", err)
	}

	id, ok := s.Grammar().IdentifierAt(string(data), offset)
	if !ok {
		return "", "", ErrNoLinkAtPosition
	}

	target, err = s.Resolve(id)
	if err != nil {
		return id, "", err
	}
	return id, target, nil
}
