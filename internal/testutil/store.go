// Package testutil provides reusable helpers for tests that need a real
// note directory on disk.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestStore is a temporary note directory for tests.
type TestStore struct {
	Path  string
	t     *testing.T
	files map[string]string
}

// NewTestStore creates a test store builder. Call Build() to create the
// directory.
func NewTestStore(t *testing.T) *TestStore {
	t.Helper()
	return &TestStore{t: t, files: make(map[string]string)}
}

// WithNote adds a note file to the store. The name is the full filename,
// e.g. "202012091130 Example.txt".
func (ts *TestStore) WithNote(name, content string) *TestStore {
	ts.files[name] = content
	return ts
}

// WithZetYAML sets the store's zet.yaml content.
func (ts *TestStore) WithZetYAML(yaml string) *TestStore {
	ts.files["zet.yaml"] = yaml
	return ts
}

// Build creates the store directory and all configured files.
func (ts *TestStore) Build() *TestStore {
	ts.t.Helper()
	ts.Path = ts.t.TempDir()
	for name, content := range ts.files {
		ts.WriteFile(name, content)
	}
	return ts
}

// WriteFile writes a file into the store, relative to its root.
func (ts *TestStore) WriteFile(relPath, content string) {
	ts.t.Helper()
	full := filepath.Join(ts.Path, relPath)
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		ts.t.Fatalf("write %s: %v", relPath, err)
	}
}

// ReadFile reads a file from the store, relative to its root.
func (ts *TestStore) ReadFile(relPath string) string {
	ts.t.Helper()
	data, err := os.ReadFile(filepath.Join(ts.Path, relPath))
	if err != nil {
		ts.t.Fatalf("read %s: %v", relPath, err)
	}
	return string(data)
}
