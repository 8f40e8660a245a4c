package testutil

import (
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
)

var (
	// binaryPath caches the path to the built zet binary.
	binaryPath string
	buildMu    sync.Mutex
	buildErr   error
)

// CLIResult represents the result of running a CLI command.
type CLIResult struct {
	OK       bool
	Data     map[string]interface{}
	Error    *CLIError
	Meta     *CLIMeta
	RawJSON  string
	ExitCode int
}

// CLIError represents a structured error from the CLI.
type CLIError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Suggestion string                 `json:"suggestion,omitempty"`
}

// CLIMeta contains metadata from the response.
type CLIMeta struct {
	Count int `json:"count,omitempty"`
}

// BuildCLI builds the zet binary once per test run and returns its path.
func BuildCLI(t *testing.T) string {
	t.Helper()

	buildMu.Lock()
	defer buildMu.Unlock()

	if binaryPath != "" {
		if _, err := os.Stat(binaryPath); err == nil {
			return binaryPath
		}
		binaryPath = ""
		buildErr = nil
	}

	projectRoot, err := findProjectRoot()
	if err != nil {
		buildErr = err
	} else {
		tmpDir, err := os.MkdirTemp("", "zet-cli-bin-*")
		if err != nil {
			buildErr = err
		} else {
			binName := "zet"
			if runtime.GOOS == "windows" {
				binName = "zet.exe"
			}

			binaryPath = filepath.Join(tmpDir, binName)
			cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/zet")
			cmd.Dir = projectRoot
			output, err := cmd.CombinedOutput()
			if err != nil {
				buildErr = &BuildError{Output: string(output), Err: err}
				binaryPath = ""
			}
		}
	}

	if buildErr != nil {
		t.Fatalf("failed to build CLI: %v", buildErr)
	}
	return binaryPath
}

// BuildError represents an error building the CLI binary.
type BuildError struct {
	Output string
	Err    error
}

func (e *BuildError) Error() string {
	return e.Err.Error() + "\n" + e.Output
}

// findProjectRoot walks up the directory tree to find go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// RunCLI executes a CLI command against the store and returns the parsed
// result. Commands run with --store-path and --json set automatically.
func (ts *TestStore) RunCLI(args ...string) *CLIResult {
	ts.t.Helper()
	return ts.runCLI("", args)
}

// RunCLIWithStdin executes a CLI command with stdin input.
func (ts *TestStore) RunCLIWithStdin(stdin string, args ...string) *CLIResult {
	ts.t.Helper()
	return ts.runCLI(stdin, args)
}

func (ts *TestStore) runCLI(stdin string, args []string) *CLIResult {
	ts.t.Helper()

	binary := BuildCLI(ts.t)

	cmdArgs := []string{"--store-path", ts.Path, "--json"}
	cmdArgs = append(cmdArgs, args...)

	cmd := exec.Command(binary, cmdArgs...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	output, err := cmd.CombinedOutput()

	result := &CLIResult{RawJSON: string(output)}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
	}

	var resp struct {
		OK    bool                   `json:"ok"`
		Data  map[string]interface{} `json:"data,omitempty"`
		Error *CLIError              `json:"error,omitempty"`
		Meta  *CLIMeta               `json:"meta,omitempty"`
	}
	if err := json.Unmarshal(output, &resp); err != nil {
		result.OK = false
		result.Error = &CLIError{
			Code:    "PARSE_ERROR",
			Message: "failed to parse JSON output: " + err.Error(),
			Details: map[string]interface{}{"raw": string(output)},
		}
		return result
	}

	result.OK = resp.OK
	result.Data = resp.Data
	result.Error = resp.Error
	result.Meta = resp.Meta
	return result
}

// MustSucceed fails the test if the command did not succeed.
func (r *CLIResult) MustSucceed(t *testing.T) *CLIResult {
	t.Helper()
	if !r.OK {
		msg := "command failed"
		if r.Error != nil {
			msg = r.Error.Code + ": " + r.Error.Message
		}
		t.Fatalf("%s\nraw output: %s", msg, r.RawJSON)
	}
	return r
}

// MustFailWith fails the test unless the command failed with the given code.
func (r *CLIResult) MustFailWith(t *testing.T, code string) *CLIResult {
	t.Helper()
	if r.OK {
		t.Fatalf("expected failure with code %s, command succeeded\nraw output: %s", code, r.RawJSON)
	}
	if r.Error == nil || r.Error.Code != code {
		got := "<nil>"
		if r.Error != nil {
			got = r.Error.Code
		}
		t.Fatalf("error code = %s, want %s\nraw output: %s", got, code, r.RawJSON)
	}
	return r
}

// AssertResultCount fails the test unless data[key] is a list of n items.
func (r *CLIResult) AssertResultCount(t *testing.T, key string, n int) {
	t.Helper()
	items, ok := r.Data[key].([]interface{})
	if !ok {
		t.Fatalf("data[%q] is not a list\nraw output: %s", key, r.RawJSON)
	}
	if len(items) != n {
		t.Fatalf("data[%q] has %d items, want %d\nraw output: %s", key, len(items), n, r.RawJSON)
	}
}
