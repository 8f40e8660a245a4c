package testutil

import (
	"os"
	"path/filepath"
	"strings"
)

// AssertFileExists fails the test if the file does not exist.
func (ts *TestStore) AssertFileExists(relPath string) {
	ts.t.Helper()
	if _, err := os.Stat(filepath.Join(ts.Path, relPath)); os.IsNotExist(err) {
		ts.t.Errorf("expected file to exist: %s", relPath)
	}
}

// AssertFileNotExists fails the test if the file exists.
func (ts *TestStore) AssertFileNotExists(relPath string) {
	ts.t.Helper()
	if _, err := os.Stat(filepath.Join(ts.Path, relPath)); err == nil {
		ts.t.Errorf("expected file to not exist: %s", relPath)
	}
}

// AssertFileContains fails the test if the file does not contain the substring.
func (ts *TestStore) AssertFileContains(relPath, substr string) {
	ts.t.Helper()
	content := ts.ReadFile(relPath)
	if !strings.Contains(content, substr) {
		ts.t.Errorf("expected file %s to contain %q, got:\n%s", relPath, substr, content)
	}
}

// AssertFileNotContains fails the test if the file contains the substring.
func (ts *TestStore) AssertFileNotContains(relPath, substr string) {
	ts.t.Helper()
	content := ts.ReadFile(relPath)
	if strings.Contains(content, substr) {
		ts.t.Errorf("expected file %s to not contain %q, got:\n%s", relPath, substr, content)
	}
}
