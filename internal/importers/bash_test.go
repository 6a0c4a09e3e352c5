package importers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportBashTimestamped(t *testing.T) {
	path := writeTempHistfile(t, "bash_history", "#1700000000\necho hi\nls -la\n")

	invs, err := ImportBash(path, "", "")
	require.NoError(t, err)
	require.Len(t, invs, 2)

	assert.Equal(t, "echo hi", invs[0].Command.String())
	require.NotNil(t, invs[0].StartUnixTime)
	assert.Equal(t, int64(1700000000), *invs[0].StartUnixTime)

	assert.Equal(t, "ls -la", invs[1].Command.String())
	require.NotNil(t, invs[1].StartUnixTime, "a pending timestamp persists across every command until the next # line")
	assert.Equal(t, int64(1700000000), *invs[1].StartUnixTime)
}

func TestImportBashPlain(t *testing.T) {
	path := writeTempHistfile(t, "bash_history", "echo hi\nls -la\n")

	invs, err := ImportBash(path, "", "")
	require.NoError(t, err)
	require.Len(t, invs, 2)
	assert.Nil(t, invs[0].StartUnixTime)
	assert.Nil(t, invs[1].StartUnixTime)
}

func TestImportBashMalformedTimestampLineIsRecordedAsCommand(t *testing.T) {
	path := writeTempHistfile(t, "bash_history", "#not-a-number\necho hi\n")

	invs, err := ImportBash(path, "", "")
	require.NoError(t, err)
	require.Len(t, invs, 2)

	assert.Equal(t, "#not-a-number", invs[0].Command.String())
	assert.Nil(t, invs[0].StartUnixTime)

	assert.Equal(t, "echo hi", invs[1].Command.String())
	assert.Nil(t, invs[1].StartUnixTime)
}

func TestImportBashNonPositiveTimestampLeavesPendingUnchanged(t *testing.T) {
	path := writeTempHistfile(t, "bash_history", "#1700000000\n#0\necho hi\n")

	invs, err := ImportBash(path, "", "")
	require.NoError(t, err)
	require.Len(t, invs, 1)

	assert.Equal(t, "echo hi", invs[0].Command.String())
	require.NotNil(t, invs[0].StartUnixTime)
	assert.Equal(t, int64(1700000000), *invs[0].StartUnixTime)
}
