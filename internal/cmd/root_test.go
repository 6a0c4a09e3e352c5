package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCommandHelp(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})
	_ = cmd.Execute()

	require.Contains(t, buf.String(), "pxhist")
}

func TestRootCommandRegistersAllSubcommands(t *testing.T) {
	cmd := NewRootCommand()
	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}

	for _, expected := range []string{
		"insert", "import", "export", "seal", "show",
		"recall", "shell-config", "install", "scan", "scrub", "sync",
	} {
		require.Truef(t, names[expected], "expected subcommand %q to be registered", expected)
	}
}

func TestShowHasVisibleAliasS(t *testing.T) {
	cmd := NewRootCommand()
	for _, sub := range cmd.Commands() {
		if sub.Name() == "show" {
			require.Contains(t, sub.Aliases, "s")
			return
		}
	}
	t.Fatal("show subcommand not found")
}

func TestResolveDBPathPrefersFlag(t *testing.T) {
	old := dbPath
	defer func() { dbPath = old }()

	dbPath = "/tmp/explicit.db"
	t.Setenv("PXH_DB_PATH", "/tmp/env.db")

	path, err := resolveDBPath()
	require.NoError(t, err)
	require.Equal(t, "/tmp/explicit.db", path)
}

func TestResolveDBPathFallsBackToEnv(t *testing.T) {
	old := dbPath
	defer func() { dbPath = old }()

	dbPath = ""
	t.Setenv("PXH_DB_PATH", "/tmp/env.db")

	path, err := resolveDBPath()
	require.NoError(t, err)
	require.Equal(t, "/tmp/env.db", path)
}

func TestVersionFlagPrintsVersion(t *testing.T) {
	cmd := NewRootCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--version"})
	_ = cmd.Execute()

	require.True(t, strings.Contains(buf.String(), "pxhist") || strings.Contains(buf.String(), Version))
}
