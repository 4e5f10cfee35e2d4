package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	steps := [][]string{
		{"agent", "add", "agent-1", "--weight", "2"},
		{"agent", "add", "agent-2"},
		{"account", "fund", "alice", "3000000"},
		{"init", "--as", "owner", "--at", "2026-01-01T00:00:00Z"},
		{"stake", "3000000", "--as", "alice", "--at", "2026-01-01T00:00:00Z"},
	}
	for _, args := range steps {
		_, stderr, err := runSV(t, binaryPath, home, args...)
		require.NoError(t, err, "sv %v stderr: %s", args, stderr)
	}

	stdout, stderr, err := runSV(t, binaryPath, home, "agent", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "agent-1\tweight 2\tstaked 2000000")
	assert.Contains(t, stdout, "agent-2\tweight 1\tstaked 1000000")

	stdout, stderr, err = runSV(t, binaryPath, home, "status", "--at", "2026-01-01T00:00:00Z")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Staking Vault")

	_, err = os.Stat(filepath.Join(home, ".stakevault", "state.toml"))
	require.NoError(t, err)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "sv-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/sv")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build sv binary: %s", string(output))
	return binaryPath
}

func runSV(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
