package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/pxhist/internal/pxhist"
)

func int64p(n int64) *int64 { return &n }

func TestAppendAndShowRoundTrip(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	inv := pxhist.Invocation{
		Command:       pxhist.TextBinaryString("echo hi"),
		ShellName:     "zsh",
		SessionID:     42,
		StartUnixTime: int64p(1000),
	}
	require.NoError(t, s.Append(ctx, inv))

	var command string
	var sessionID int64
	row := s.DB().QueryRow(`SELECT full_command, session_id FROM command_history WHERE id = 1`)
	require.NoError(t, row.Scan(&command, &sessionID))
	assert.Equal(t, "echo hi", command)
	assert.Equal(t, int64(42), sessionID)
}

func TestAppendBatchCommitsAllRows(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	invs := []pxhist.Invocation{
		{Command: pxhist.TextBinaryString("a"), ShellName: "bash", SessionID: 1},
		{Command: pxhist.TextBinaryString("b"), ShellName: "bash", SessionID: 1},
		{Command: pxhist.TextBinaryString("c"), ShellName: "bash", SessionID: 1},
	}
	require.NoError(t, s.AppendBatch(ctx, invs))

	var count int
	row := s.DB().QueryRow(`SELECT COUNT(*) FROM command_history`)
	require.NoError(t, row.Scan(&count))
	assert.Equal(t, 3, count)
}

func TestAppendBatchEmptyIsNoop(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.AppendBatch(context.Background(), nil))
}

func TestSealUpdatesMostRecentOpenInvocation(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Append(ctx, pxhist.Invocation{
		Command: pxhist.TextBinaryString("sleep 1"), ShellName: "zsh", SessionID: 7, StartUnixTime: int64p(100),
	}))

	require.NoError(t, s.Seal(ctx, 7, 0, 101))

	var exitStatus, endTS int64
	row := s.DB().QueryRow(`SELECT exit_status, end_unix_timestamp FROM command_history WHERE session_id = 7`)
	require.NoError(t, row.Scan(&exitStatus, &endTS))
	assert.Equal(t, int64(0), exitStatus)
	assert.Equal(t, int64(101), endTS)
}

func TestSealNoMatchingSessionIsNotAnError(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Seal(context.Background(), 9999, 1, 2))
}

func TestSealDoesNotOverwriteAlreadySealedRow(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Append(ctx, pxhist.Invocation{
		Command: pxhist.TextBinaryString("x"), ShellName: "zsh", SessionID: 1,
	}))
	require.NoError(t, s.Seal(ctx, 1, 0, 10))
	require.NoError(t, s.Seal(ctx, 1, 99, 20))

	var exitStatus int64
	row := s.DB().QueryRow(`SELECT exit_status FROM command_history WHERE session_id = 1`)
	require.NoError(t, row.Scan(&exitStatus))
	assert.Equal(t, int64(0), exitStatus, "second seal of an already-sealed row must not overwrite it")
}

func TestGenerateLiveSessionIDIs63Bit(t *testing.T) {
	id := GenerateLiveSessionID()
	assert.GreaterOrEqual(t, id, int64(0))
}

func TestGenerateImportSessionIDStableAcrossCalls(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zsh_history")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0644))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	id1 := GenerateImportSessionID(f)
	id2 := GenerateImportSessionID(f)
	assert.Equal(t, id1, id2)
}
