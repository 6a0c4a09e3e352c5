package importers

import (
	"fmt"
	"os"
	"os/user"

	"github.com/harrison/pxhist/internal/pxhist"
	"github.com/harrison/pxhist/internal/store"
)

// openHistfile reads histfile's full contents as raw bytes (never through a
// string-based scanner, so a non-UTF8 command byte can't corrupt the line
// split) and derives a session id stable across re-imports of the same
// file.
func openHistfile(histfile string) ([]byte, int64, error) {
	f, err := os.Open(histfile)
	if err != nil {
		return nil, 0, fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	sessionID := store.GenerateImportSessionID(f)

	data, err := os.ReadFile(histfile)
	if err != nil {
		return nil, 0, fmt.Errorf("read history file: %w", err)
	}

	return data, sessionID, nil
}

// resolveHostname returns the override if non-empty, otherwise $HOST,
// otherwise the empty string (matching the original's unwrap_or_default).
func resolveHostname(override string) string {
	if override != "" {
		return override
	}
	return os.Getenv("HOST")
}

// resolveUsername returns the override if non-empty, otherwise the current
// OS user, otherwise "unknown".
func resolveUsername(override string) string {
	if override != "" {
		return override
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "unknown"
}

func binaryStringPtr(s string) *pxhist.BinaryString {
	b := pxhist.NewBinaryString([]byte(s))
	return &b
}
