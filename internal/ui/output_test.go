package ui

import (
	"strings"
	"testing"
)

func TestSuccessCarriesSymbol(t *testing.T) {
	if got := Success("done"); !strings.Contains(got, SymbolSuccess) || !strings.Contains(got, "done") {
		t.Errorf("Success() = %q", got)
	}
}

func TestWarningfFormats(t *testing.T) {
	got := Warningf("%d problems", 3)
	if !strings.Contains(got, "3 problems") || !strings.Contains(got, SymbolWarning) {
		t.Errorf("Warningf() = %q", got)
	}
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("# Title\n\nbody text\n", 40)
	if err != nil {
		t.Fatalf("RenderMarkdown() error: %v", err)
	}
	if !strings.Contains(out, "Title") || !strings.Contains(out, "body text") {
		t.Errorf("RenderMarkdown() dropped content:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n") || strings.HasSuffix(out, "\n\n") {
		t.Errorf("RenderMarkdown() should end with exactly one newline")
	}
}
