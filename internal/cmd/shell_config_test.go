package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShellConfigZsh(t *testing.T) {
	out, _, err := runCLI(t, "shell-config", "zsh")
	require.NoError(t, err)
	require.Contains(t, out, "preexec")
	require.Contains(t, out, "pxhist")
}

func TestShellConfigBash(t *testing.T) {
	out, _, err := runCLI(t, "shell-config", "bash")
	require.NoError(t, err)
	require.Contains(t, out, "pxhist")
}

func TestShellConfigUnsupportedShell(t *testing.T) {
	_, _, err := runCLI(t, "shell-config", "fish")
	require.Error(t, err)
}

func TestShellConfigRequiresShellArg(t *testing.T) {
	_, _, err := runCLI(t, "shell-config")
	require.Error(t, err)
}
