package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScrubDeletesMatchingRows(t *testing.T) {
	t.Setenv("PXH_DB_PATH", filepath.Join(t.TempDir(), "history.db"))

	_, _, err := runCLI(t, "insert", "--shellname", "zsh", "--session-id", "1", "--",
		"curl", "--api-key=supersecretvalue", "https://example.com")
	require.NoError(t, err)
	_, _, err = runCLI(t, "insert", "--shellname", "zsh", "--session-id", "1", "--", "ls")
	require.NoError(t, err)

	out, _, err := runCLI(t, "scrub")
	require.NoError(t, err)
	require.Contains(t, out, "scrubbed 1 row")

	out, _, err = runCLI(t, "show")
	require.NoError(t, err)
	require.NotContains(t, out, "api-key")
	require.Contains(t, out, "ls")
}

func TestScrubWithNoMatchesIsNoop(t *testing.T) {
	t.Setenv("PXH_DB_PATH", filepath.Join(t.TempDir(), "history.db"))

	_, _, err := runCLI(t, "insert", "--shellname", "zsh", "--session-id", "1", "--", "ls")
	require.NoError(t, err)

	out, _, err := runCLI(t, "scrub")
	require.NoError(t, err)
	require.Contains(t, out, "nothing to scrub")
}

func TestScrubHistfileRemovesMatchingLines(t *testing.T) {
	t.Setenv("PXH_DB_PATH", filepath.Join(t.TempDir(), "history.db"))

	_, _, err := runCLI(t, "insert", "--shellname", "zsh", "--session-id", "1", "--",
		"curl", "--api-key=supersecretvalue", "https://example.com")
	require.NoError(t, err)

	histfile := filepath.Join(t.TempDir(), "zsh_history")
	contents := ": 0:0;curl --api-key=supersecretvalue https://example.com\n: 0:0;ls\n"
	require.NoError(t, os.WriteFile(histfile, []byte(contents), 0644))

	out, _, err := runCLI(t, "scrub", "--histfile", histfile)
	require.NoError(t, err)
	require.Contains(t, out, "scrubbed matching lines")

	remaining, err := os.ReadFile(histfile)
	require.NoError(t, err)
	require.NotContains(t, string(remaining), "api-key")
	require.Contains(t, string(remaining), "ls")
}
