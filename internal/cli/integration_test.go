//go:build integration

package cli_test

import (
	"strings"
	"testing"

	"github.com/zetkit/zet/internal/testutil"
)

// TestIntegration_NoteLifecycle creates, resolves, renames, and links notes
// through the real binary.
func TestIntegration_NoteLifecycle(t *testing.T) {
	ts := testutil.NewTestStore(t).Build()

	result := ts.RunCLI("new", "First note").MustSucceed(t)
	id, _ := result.Data["id"].(string)
	if len(id) != 12 {
		t.Fatalf("id = %q, want twelve digits", id)
	}
	file, _ := result.Data["file"].(string)
	ts.AssertFileExists(file)

	result = ts.RunCLI("resolve", id).MustSucceed(t)
	if title, _ := result.Data["title"].(string); title != "First note" {
		t.Errorf("title = %q, want %q", title, "First note")
	}

	result = ts.RunCLI("rename", id, "Better title").MustSucceed(t)
	newPath, _ := result.Data["path"].(string)
	if !strings.Contains(newPath, "Better title") {
		t.Errorf("renamed path = %q, want the new title in it", newPath)
	}
	ts.AssertFileNotExists(file)

	ts.RunCLI("resolve", id).MustSucceed(t)
}

func TestIntegration_LinksAndBacklinks(t *testing.T) {
	ts := testutil.NewTestStore(t).
		WithNote("202012091130 Target.txt", "the target\n").
		WithNote("202012100900 Source.txt", "see [Target] [[202012091130]]\n").
		Build()

	result := ts.RunCLI("links", "202012100900").MustSucceed(t)
	result.AssertResultCount(t, "items", 1)

	result = ts.RunCLI("backlinks", "202012091130").MustSucceed(t)
	result.AssertResultCount(t, "items", 1)

	// A note nothing links to has zero backlinks, not an error.
	result = ts.RunCLI("backlinks", "202012100900").MustSucceed(t)
	if result.Meta != nil && result.Meta.Count != 0 {
		t.Errorf("backlink count = %d, want 0", result.Meta.Count)
	}
}

func TestIntegration_SeedFromStdin(t *testing.T) {
	ts := testutil.NewTestStore(t).Build()

	seed := "Seeded title\n\nThe body of the seeded note.\n"
	result := ts.RunCLIWithStdin(seed, "new", "--seed", "-").MustSucceed(t)

	if title, _ := result.Data["title"].(string); title != "Seeded title" {
		t.Errorf("title = %q, want %q", title, "Seeded title")
	}
	file, _ := result.Data["file"].(string)
	ts.AssertFileContains(file, "The body of the seeded note.")
	ts.AssertFileNotContains(file, "Seeded title")
}

func TestIntegration_ErrorCodes(t *testing.T) {
	ts := testutil.NewTestStore(t).
		WithNote("202012091130 Example.txt", "body\n").
		Build()

	ts.RunCLI("resolve", "000000000000").MustFailWith(t, "NOTE_NOT_FOUND")
	ts.RunCLI("search", "absent-term").MustFailWith(t, "NO_SEARCH_RESULTS")
}

func TestIntegration_DoctorFindsDuplicates(t *testing.T) {
	ts := testutil.NewTestStore(t).
		WithNote("202012091130 One.txt", "").
		WithNote("202012091130 Two.txt", "").
		WithNote("no identifier here.txt", "").
		Build()

	result := ts.RunCLI("doctor").MustSucceed(t)
	result.AssertResultCount(t, "problems", 2)
}

func TestIntegration_TagsEnumeration(t *testing.T) {
	ts := testutil.NewTestStore(t).
		WithNote("202012091130 One.txt", "about #Method and #plain-text\n").
		WithNote("202012100900 Two.txt", "more on #method\n").
		Build()

	result := ts.RunCLI("tags").MustSucceed(t)
	result.AssertResultCount(t, "tags", 2)
}
