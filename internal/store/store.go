// Package store maps identifiers to concrete files in the note directory.
//
// The directory is the only persistence layer: no index, no cache, no
// sidecar metadata. Every lookup consults the filesystem directly.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/zetkit/zet/internal/codec"
	"github.com/zetkit/zet/internal/ident"
	"github.com/zetkit/zet/internal/link"
)

// Rename substitution scopes.
const (
	// RenameScopeHeader replaces the old title only on the first line.
	RenameScopeHeader = "header"

	// RenameScopeAll replaces every literal occurrence of the old title.
	RenameScopeAll = "all"
)

// Config is the explicit, immutable configuration a Store is built from.
// There is no ambient global state; tests construct stores against temp
// directories directly.
type Config struct {
	// Dir is the note directory.
	Dir string

	// Extension is the note file extension without the leading dot.
	Extension string

	// Ident configures the identifier pattern and allocation format.
	Ident ident.Config

	// TitleStyle is codec.TitleStylePlain or codec.TitleStyleSlug.
	TitleStyle string

	// RenameScope is RenameScopeHeader or RenameScopeAll.
	RenameScope string

	// DefaultBacklink is the identifier new notes link back to when no
	// originating note is given. Empty disables the fallback.
	DefaultBacklink string
}

// Store is a handle on one note directory.
type Store struct {
	cfg     Config
	codec   *codec.Codec
	grammar *link.Grammar
}

// Open validates the configuration and directory and returns a Store.
func Open(cfg Config) (*Store, error) {
	info, err := os.Stat(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("note directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("note directory %s is not a directory", cfg.Dir)
	}

	c, err := codec.New(cfg.Ident, cfg.Extension, cfg.TitleStyle)
	if err != nil {
		return nil, err
	}
	g, err := link.NewGrammar(cfg.Ident)
	if err != nil {
		return nil, err
	}

	if cfg.RenameScope == "" {
		cfg.RenameScope = RenameScopeHeader
	}
	if cfg.RenameScope != RenameScopeHeader && cfg.RenameScope != RenameScopeAll {
		return nil, fmt.Errorf("unknown rename scope %q", cfg.RenameScope)
	}

	return &Store{cfg: cfg, codec: c, grammar: g}, nil
}

// Dir returns the note directory.
func (s *Store) Dir() string {
	return s.cfg.Dir
}

// Config returns the store's configuration.
func (s *Store) Config() Config {
	return s.cfg
}

// Codec returns the filename codec for this store.
func (s *Store) Codec() *codec.Codec {
	return s.codec
}

// Grammar returns the link/tag grammar for this store.
func (s *Store) Grammar() *link.Grammar {
	return s.grammar
}

// ListFiles returns the filenames (not paths) of all note files in the
// directory, sorted lexically. Only files with the configured extension
// are listed.
func (s *Store) ListFiles() ([]string, error) {
	entries, err := os.ReadDir(s.cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("list note directory: %w", err)
	}

	suffix := "." + s.codec.Extension()
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, suffix) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Identifiers returns the identifiers extracted from every note filename.
// Filenames without an identifier are skipped here; Doctor surfaces them.
func (s *Store) Identifiers() ([]string, error) {
	names, err := s.ListFiles()
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(names))
	for _, name := range names {
		if id, ok := s.grammar.ExtractIdentifier(name); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// AllocateIdentifier mints a new identifier unique among the directory's
// current identifiers.
func (s *Store) AllocateIdentifier(now time.Time) (string, error) {
	if now.IsZero() {
		now = time.Now()
	}
	existing, err := s.Identifiers()
	if err != nil {
		return "", err
	}
	return s.cfg.Ident.Allocate(now, existing)
}

// Resolve maps an identifier to the absolute path of its note file.
//
// The first (lexically ordered) filename whose extracted identifier equals
// the argument wins; duplicate identifiers are abnormal and only the
// allocator's discipline prevents them at creation time.
func (s *Store) Resolve(id string) (string, error) {
	names, err := s.ListFiles()
	if err != nil {
		return "", err
	}

	for _, name := range names {
		if got, ok := s.grammar.ExtractIdentifier(name); ok && got == id {
			return filepath.Join(s.cfg.Dir, name), nil
		}
	}
	return "", &NotFoundError{ID: id}
}

// TitleOf returns the title of the note with the given identifier.
func (s *Store) TitleOf(id string) (string, error) {
	path, err := s.Resolve(id)
	if err != nil {
		return "", err
	}
	_, title, err := s.codec.Decode(path)
	if err != nil {
		return "", err
	}
	return title, nil
}

// PathOf is Resolve under its conventional name.
func (s *Store) PathOf(id string) (string, error) {
	return s.Resolve(id)
}

// ActiveNote extracts the identifier of the note at filePath, which must
// lie inside the store directory. Fails with NotInStoreError otherwise,
// or codec.MalformedFilenameError when the name carries no identifier.
func (s *Store) ActiveNote(filePath string) (string, error) {
	absDir, err := filepath.Abs(s.cfg.Dir)
	if err != nil {
		return "", err
	}
	absFile, err := filepath.Abs(filePath)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(absDir, absFile)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &NotInStoreError{Path: filePath, Dir: s.cfg.Dir}
	}

	id, _, err := s.codec.Decode(absFile)
	if err != nil {
		return "", err
	}
	return id, nil
}

// ReadNote reads the body of the note with the given identifier.
func (s *Store) ReadNote(id string) (string, error) {
	path, err := s.Resolve(id)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read note: %w", err)
	}
	return string(data), nil
}
