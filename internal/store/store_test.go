package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/zetkit/zet/internal/codec"
)

func testStore(t *testing.T, files map[string]string) *Store {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	s, err := Open(Config{Dir: dir})
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	return s
}

func TestOpenRejectsMissingDirectory(t *testing.T) {
	_, err := Open(Config{Dir: filepath.Join(t.TempDir(), "nope")})
	if err == nil {
		t.Error("Open() accepted a missing directory")
	}
}

func TestListFiles(t *testing.T) {
	s := testStore(t, map[string]string{
		"202109011200 Other.txt":   "",
		"202012091130 Example.txt": "",
		"ignore.md":                "",
		".hidden.txt":              "",
	})

	names, err := s.ListFiles()
	if err != nil {
		t.Fatalf("ListFiles() error: %v", err)
	}
	want := []string{"202012091130 Example.txt", "202109011200 Other.txt"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("ListFiles() = %v, want %v", names, want)
	}
}

func TestResolve(t *testing.T) {
	s := testStore(t, map[string]string{
		"202012091130 Example.txt": "",
		"202109011200 Other.txt":   "",
	})

	path, err := s.Resolve("202012091130")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if filepath.Base(path) != "202012091130 Example.txt" {
		t.Errorf("Resolve() = %q, want the Example file", path)
	}

	_, err = s.Resolve("000000000000")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Resolve() error = %v, want NotFoundError", err)
	}
	if notFound.ID != "000000000000" {
		t.Errorf("NotFoundError.ID = %q, want %q", notFound.ID, "000000000000")
	}
}

func TestResolveFirstMatchOnDuplicate(t *testing.T) {
	s := testStore(t, map[string]string{
		"202012091130 Aardvark.txt": "",
		"202012091130 Zebra.txt":    "",
	})

	path, err := s.Resolve("202012091130")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if filepath.Base(path) != "202012091130 Aardvark.txt" {
		t.Errorf("Resolve() = %q, want the lexically first file", path)
	}
}

func TestTitleOf(t *testing.T) {
	s := testStore(t, map[string]string{
		"202012091130 Example.txt": "",
	})

	title, err := s.TitleOf("202012091130")
	if err != nil {
		t.Fatalf("TitleOf() error: %v", err)
	}
	if title != "Example" {
		t.Errorf("TitleOf() = %q, want %q", title, "Example")
	}
}

func TestAllocateIdentifierSkipsExisting(t *testing.T) {
	s := testStore(t, map[string]string{
		"202012091130 Example.txt": "",
	})

	at := time.Date(2020, 12, 9, 11, 30, 0, 0, time.UTC)
	id, err := s.AllocateIdentifier(at)
	if err != nil {
		t.Fatalf("AllocateIdentifier() error: %v", err)
	}
	if id != "202012091131" {
		t.Errorf("AllocateIdentifier() = %q, want %q", id, "202012091131")
	}
}

func TestActiveNote(t *testing.T) {
	s := testStore(t, map[string]string{
		"202012091130 Example.txt": "",
	})

	id, err := s.ActiveNote(filepath.Join(s.Dir(), "202012091130 Example.txt"))
	if err != nil {
		t.Fatalf("ActiveNote() error: %v", err)
	}
	if id != "202012091130" {
		t.Errorf("ActiveNote() = %q, want %q", id, "202012091130")
	}
}

func TestActiveNoteOutsideStore(t *testing.T) {
	s := testStore(t, nil)

	outside := filepath.Join(t.TempDir(), "202012091130 Example.txt")
	_, err := s.ActiveNote(outside)
	var notInStore *NotInStoreError
	if !errors.As(err, &notInStore) {
		t.Fatalf("ActiveNote() error = %v, want NotInStoreError", err)
	}
}

func TestActiveNoteMalformedFilename(t *testing.T) {
	s := testStore(t, map[string]string{"stray.txt": ""})

	_, err := s.ActiveNote(filepath.Join(s.Dir(), "stray.txt"))
	var malformed *codec.MalformedFilenameError
	if !errors.As(err, &malformed) {
		t.Fatalf("ActiveNote() error = %v, want MalformedFilenameError", err)
	}
}

func TestSearch(t *testing.T) {
	s := testStore(t, map[string]string{
		"202012091130 Example.txt": "alpha\nBETA line\n",
		"202109011200 Other.txt":   "beta again\n",
	})

	matches, err := s.Search("beta")
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Search() returned %d matches, want 2", len(matches))
	}
	if matches[0].Filename != "202012091130 Example.txt" || matches[0].Line != 2 {
		t.Errorf("first match = %+v, want Example.txt line 2", matches[0])
	}
	if matches[1].Filename != "202109011200 Other.txt" || matches[1].Line != 1 {
		t.Errorf("second match = %+v, want Other.txt line 1", matches[1])
	}
}

func TestSearchFixedString(t *testing.T) {
	s := testStore(t, map[string]string{
		"202012091130 Example.txt": "a.c\nabc\n",
	})

	matches, err := s.Search("a.c")
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(matches) != 1 || matches[0].Line != 1 {
		t.Errorf("Search(\"a.c\") = %+v, want only the literal line", matches)
	}
}

func TestSearchNoResults(t *testing.T) {
	s := testStore(t, map[string]string{
		"202012091130 Example.txt": "alpha\n",
	})

	_, err := s.Search("zeta")
	var noResults *NoResultsError
	if !errors.As(err, &noResults) {
		t.Fatalf("Search() error = %v, want NoResultsError", err)
	}
	if noResults.Term != "zeta" {
		t.Errorf("NoResultsError.Term = %q, want %q", noResults.Term, "zeta")
	}
}
