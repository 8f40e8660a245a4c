// Package note composes the codec, grammar, and resolver into the
// user-facing note graph operations: create, rename, follow, backlinks,
// outlinks, and tag discovery.
package note

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/zetkit/zet/internal/atomicfile"
	"github.com/zetkit/zet/internal/link"
	"github.com/zetkit/zet/internal/store"
)

// CreateOptions controls note creation.
type CreateOptions struct {
	// Title is the explicit title. When empty and Seed is set, the seed's
	// first line becomes the title.
	Title string

	// Seed is optional text to split into title and body: the first line is
	// the title, and the body starts after a two-line header/separator skip.
	Seed string

	// Origin is the identifier of the originating note. When set (or when
	// the store configures a default backlink target) the new note opens
	// with a link back to it. Best-effort: a missing origin skips the
	// backlink silently.
	Origin string

	// Now overrides the allocation instant (zero means time.Now()).
	Now time.Time
}

// CreateResult describes the note that was written.
type CreateResult struct {
	ID       string
	Title    string
	Filename string
	Path     string
	Backlink string // the inserted backlink line, empty when skipped
}

// Create allocates an identifier, encodes the filename, and writes the new
// note. The file is written only after allocation and title resolution have
// both succeeded, so a failure leaves the directory untouched.
func Create(s *store.Store, opts CreateOptions) (*CreateResult, error) {
	title := strings.TrimSpace(opts.Title)
	body := ""
	if opts.Seed != "" {
		seedTitle, seedBody := SplitSeed(opts.Seed)
		if title == "" {
			title = seedTitle
		}
		body = seedBody
	}

	id, err := s.AllocateIdentifier(opts.Now)
	if err != nil {
		return nil, err
	}

	filename, err := s.Codec().Encode(id, title)
	if err != nil {
		return nil, err
	}

	backlink := backlinkLine(s, opts.Origin)

	var content strings.Builder
	if backlink != "" {
		content.WriteString(backlink)
		content.WriteString("\n")
		if body != "" {
			content.WriteString("\n")
		}
	}
	if body != "" {
		content.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			content.WriteString("\n")
		}
	}

	path := filepath.Join(s.Dir(), filename)
	if err := atomicfile.WriteFile(path, []byte(content.String()), 0o644); err != nil {
		return nil, fmt.Errorf("write note: %w", err)
	}

	return &CreateResult{
		ID:       id,
		Title:    title,
		Filename: filename,
		Path:     path,
		Backlink: backlink,
	}, nil
}

// seedHeaderSkip is the number of seed lines consumed before the body:
// the title line plus one separator line.
const seedHeaderSkip = 2

// SplitSeed splits seed text into a title (first line) and body (everything
// after the two-line header/separator skip).
func SplitSeed(seed string) (title, body string) {
	lines := strings.Split(seed, "\n")
	title = strings.TrimSpace(lines[0])
	if len(lines) > seedHeaderSkip {
		body = strings.Join(lines[seedHeaderSkip:], "\n")
	}
	return title, body
}

// backlinkLine formats the auto-backlink for a new note. The origin falls
// back to the store's configured default target; when neither exists, or the
// target does not resolve, the backlink is skipped.
func backlinkLine(s *store.Store, origin string) string {
	target := origin
	if target == "" {
		target = s.Config().DefaultBacklink
	}
	if target == "" {
		return ""
	}

	title, err := s.TitleOf(target)
	if err != nil {
		return ""
	}
	return link.FormatLinkWithTitle(title, target)
}
