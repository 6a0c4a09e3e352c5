package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanReportsSecretLookingCommand(t *testing.T) {
	t.Setenv("PXH_DB_PATH", filepath.Join(t.TempDir(), "history.db"))

	_, _, err := runCLI(t, "insert", "--shellname", "zsh", "--session-id", "1", "--",
		"curl", "--api-key=supersecretvalue", "https://example.com")
	require.NoError(t, err)
	_, _, err = runCLI(t, "insert", "--shellname", "zsh", "--session-id", "1", "--", "ls")
	require.NoError(t, err)

	out, _, err := runCLI(t, "scan")
	require.NoError(t, err)
	require.Contains(t, out, "generic-api-key-flag")
	require.NotContains(t, out, "\tls\n")
}

func TestScanCustomPattern(t *testing.T) {
	t.Setenv("PXH_DB_PATH", filepath.Join(t.TempDir(), "history.db"))

	_, _, err := runCLI(t, "insert", "--shellname", "zsh", "--session-id", "1", "--", "deploy", "staging")
	require.NoError(t, err)

	out, _, err := runCLI(t, "scan", "--pattern", "deploy")
	require.NoError(t, err)
	require.Contains(t, out, "custom")
	require.Contains(t, out, "deploy staging")
}
