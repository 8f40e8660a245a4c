package cli

import (
	"os/exec"
	"testing"
)

func TestCanUseFZFInteractive(t *testing.T) {
	prevLookPath := fzfLookPath
	prevStdin := fzfStdinIsTerminal
	prevStdout := fzfStdoutIsTerminal
	prevJSON := jsonOutput
	t.Cleanup(func() {
		fzfLookPath = prevLookPath
		fzfStdinIsTerminal = prevStdin
		fzfStdoutIsTerminal = prevStdout
		jsonOutput = prevJSON
	})

	fzfLookPath = func(string) (string, error) { return "/usr/bin/fzf", nil }
	fzfStdinIsTerminal = func() bool { return true }
	fzfStdoutIsTerminal = func() bool { return true }
	jsonOutput = false

	if !canUseFZFInteractive() {
		t.Fatal("expected picker to be available with fzf and a TTY")
	}

	t.Run("disabled in json mode", func(t *testing.T) {
		jsonOutput = true
		defer func() { jsonOutput = false }()
		if canUseFZFInteractive() {
			t.Fatal("picker should be disabled in JSON mode")
		}
	})

	t.Run("disabled without tty", func(t *testing.T) {
		fzfStdoutIsTerminal = func() bool { return false }
		defer func() { fzfStdoutIsTerminal = func() bool { return true } }()
		if canUseFZFInteractive() {
			t.Fatal("picker should be disabled when stdout is not a terminal")
		}
	})

	t.Run("disabled without fzf", func(t *testing.T) {
		fzfLookPath = func(string) (string, error) { return "", exec.ErrNotFound }
		defer func() { fzfLookPath = func(string) (string, error) { return "/usr/bin/fzf", nil } }()
		if canUseFZFInteractive() {
			t.Fatal("picker should be disabled when fzf is not installed")
		}
	})
}

func TestRunFZFPickerEmptyInput(t *testing.T) {
	selected, ok, err := runFZFPicker(nil, fzfPickerOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || selected != "" {
		t.Fatalf("expected no selection for empty input, got %q", selected)
	}
}
