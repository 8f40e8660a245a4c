package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/zetkit/zet/internal/codec"
	"github.com/zetkit/zet/internal/note"
	"github.com/zetkit/zet/internal/store"
)

func TestStoreErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"note not found", &store.NotFoundError{ID: "202012091130"}, ErrNoteNotFound},
		{"malformed filename", &codec.MalformedFilenameError{Filename: "notes.txt"}, ErrMalformedFilename},
		{"outside store", &store.NotInStoreError{Path: "/elsewhere/a.txt", Dir: "/store"}, ErrNotInStore},
		{"no search results", &store.NoResultsError{Term: "nothing"}, ErrNoSearchResults},
		{"no link at position", note.ErrNoLinkAtPosition, ErrNoLinkAtPosition},
		{"anything else", errors.New("boom"), ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := storeErrorCode(tt.err); got != tt.want {
				t.Errorf("storeErrorCode(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestOpenStoreAtReadsStoreConfig(t *testing.T) {
	dir := t.TempDir()
	yaml := "extension: md\ntitle_style: plain\n"
	if err := os.WriteFile(filepath.Join(dir, "zet.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "202012091130 Example.md"), []byte("body"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := openStoreAt(dir)
	if err != nil {
		t.Fatalf("openStoreAt: %v", err)
	}

	path, err := s.Resolve("202012091130")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if filepath.Base(path) != "202012091130 Example.md" {
		t.Errorf("resolved %q, want the .md note", path)
	}
}

func TestOpenStoreAtDefaultsWithoutConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "202012091130 Example.txt"), []byte("body"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := openStoreAt(dir)
	if err != nil {
		t.Fatalf("openStoreAt: %v", err)
	}
	if _, err := s.Resolve("202012091130"); err != nil {
		t.Fatalf("Resolve with default extension: %v", err)
	}
}
