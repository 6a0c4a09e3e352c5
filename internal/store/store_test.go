package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		dbPath  string
		wantErr bool
	}{
		{
			name:   "creates database successfully",
			dbPath: filepath.Join(t.TempDir(), "history.db"),
		},
		{
			name:   "handles in-memory database",
			dbPath: ":memory:",
		},
		{
			name:   "creates parent directories if needed",
			dbPath: filepath.Join(t.TempDir(), "nested", "dir", "history.db"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(tt.dbPath)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, s)
			defer s.Close()

			require.NoError(t, s.Ping(context.Background()))

			var name string
			row := s.DB().QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='command_history'`)
			require.NoError(t, row.Scan(&name))
			assert.Equal(t, "command_history", name)
		})
	}
}

func TestRegexpScalarByteWise(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	_, err = s.DB().Exec(`INSERT INTO command_history (session_id, full_command, shellname) VALUES (1, ?, 'zsh')`, []byte("git commit -m fix"))
	require.NoError(t, err)
	_, err = s.DB().Exec(`INSERT INTO command_history (session_id, full_command, shellname) VALUES (1, ?, 'zsh')`, []byte("ls -la"))
	require.NoError(t, err)

	var count int
	row := s.DB().QueryRow(`SELECT COUNT(*) FROM command_history WHERE full_command REGEXP ?`, `^git`)
	require.NoError(t, row.Scan(&count))
	assert.Equal(t, 1, count)
}

func TestRegexpScalarCachesCompiledPattern(t *testing.T) {
	ok, err := regexpScalar(`^foo`, []byte("foobar"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = regexpScalar(`^foo`, []byte("barfoo"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegexpScalarInvalidPattern(t *testing.T) {
	_, err := regexpScalar(`(unterminated`, []byte("anything"))
	require.Error(t, err)
}
