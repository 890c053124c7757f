// The cmd/ package contains CLI integration tests that exercise the full
// stack: command parsing -> extensions -> rule engines, probes and the audit
// log. The binary is built once and executed per test in a temp directory
// with HOME pointed at a temp directory, so global config and the audit log
// never touch the developer's own.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the pathcheck binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		// Build to a temp location
		tmpDir, err := os.MkdirTemp("", "pathcheck-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "pathcheck"
		if os.PathSeparator == '\\' {
			binaryName = "pathcheck.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string // working directory
	home   string // HOME for global config and the audit log
	binary string
	env    []string
}

// newTestEnv creates a temporary working directory and home directory.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	binary := buildBinary(t)
	home := t.TempDir()
	env := &testEnv{t: t, dir: t.TempDir(), home: home, binary: binary}
	env.env = append(os.Environ(),
		"HOME="+home,
		"USERPROFILE="+home,
		"NO_COLOR=1",
	)
	return env
}

// setenv adds an environment variable for subsequent runs.
func (e *testEnv) setenv(key, value string) {
	e.env = append(e.env, key+"="+value)
}

// command builds an exec.Cmd for pathcheck in the test environment.
func (e *testEnv) command(args ...string) *exec.Cmd {
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = e.env
	return cmd
}

// run executes pathcheck with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("pathcheck %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes pathcheck and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	out, err := e.command(args...).CombinedOutput()
	return string(out), err
}

// runSplit executes pathcheck and returns stdout and stderr separately.
func (e *testEnv) runSplit(args ...string) (stdout, stderr string, err error) {
	e.t.Helper()
	var o, s strings.Builder
	cmd := e.command(args...)
	cmd.Stdout = &o
	cmd.Stderr = &s
	err = cmd.Run()
	return o.String(), s.String(), err
}

// runStdinErr executes pathcheck with stdin input and returns any error.
func (e *testEnv) runStdinErr(input string, args ...string) (string, error) {
	e.t.Helper()
	cmd := e.command(args...)
	cmd.Stdin = strings.NewReader(input)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// exitCode returns the process exit code for err (0 for nil).
func exitCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	return exitErr.ExitCode()
}

// write creates a file relative to the working directory.
func (e *testEnv) write(rel, content string) string {
	e.t.Helper()
	p := filepath.Join(e.dir, rel)
	require.NoError(e.t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(e.t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}
