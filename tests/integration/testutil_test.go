// Package integration provides end-to-end tests for eavquent: CLI tests
// against the built eavq binary and lifecycle tests against the library.
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// eavqBin is the path to the built eavq binary.
	eavqBin string
	// buildErr captures any build error from TestMain.
	buildErr error
)

// findProjectRoot finds the project root by walking up to go.mod.
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

// TestMain builds the eavq binary once for all CLI tests.
func TestMain(m *testing.M) {
	root, err := findProjectRoot()
	if err != nil {
		buildErr = err
		os.Exit(m.Run())
	}

	eavqBin = filepath.Join(os.TempDir(), "eavq-integration-test")
	cmd := exec.Command("go", "build", "-o", eavqBin, "./cmd/eavq")
	cmd.Dir = root
	if out, err := cmd.CombinedOutput(); err != nil {
		buildErr = err
		_ = out
	}

	code := m.Run()
	os.Remove(eavqBin)
	os.Exit(code)
}

// cliEnv holds the isolated directories one CLI test runs against.
type cliEnv struct {
	configDir string
	dataDir   string
}

// newCLIEnv creates temp config and data directories for one test.
func newCLIEnv(t *testing.T) cliEnv {
	t.Helper()
	if buildErr != nil {
		t.Fatalf("building eavq binary: %v", buildErr)
	}
	return cliEnv{
		configDir: t.TempDir(),
		dataDir:   t.TempDir(),
	}
}

// run executes eavq with the environment's directories and returns
// stdout. The test fails if the command exits non-zero.
func (e cliEnv) run(t *testing.T, args ...string) string {
	t.Helper()
	out, code := e.tryRun(t, args...)
	if code != 0 {
		t.Fatalf("eavq %v exited %d: %s", args, code, out)
	}
	return out
}

// tryRun executes eavq and returns combined output and the exit code.
func (e cliEnv) tryRun(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(eavqBin, args...)
	cmd.Env = append(os.Environ(),
		"EAVQ_CONFIG_DIR="+e.configDir,
		"EAVQ_DATA_DIR="+e.dataDir,
	)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	if err == nil {
		return buf.String(), 0
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return buf.String(), exitErr.ExitCode()
	}
	t.Fatalf("running eavq %v: %v", args, err)
	return "", -1
}
