package query

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/harrison/pxhist/internal/pxhist"
	"github.com/harrison/pxhist/internal/store"
)

const exportSQL = `
SELECT ` + selectColumns + `
  FROM command_history
ORDER BY id`

// Export returns every row in insertion order, the format "pxhist export"
// writes and "pxhist import --shellname json" reads back.
func Export(ctx context.Context, s *store.Store) ([]Row, error) {
	rows, err := queryRows(ctx, s.DB(), exportSQL)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return rows, nil
}

type exportJSON struct {
	SessionID        int64                `json:"session_id"`
	FullCommand      interface{}          `json:"full_command"`
	ShellName        string               `json:"shellname"`
	WorkingDirectory interface{}          `json:"working_directory,omitempty"`
	Hostname         interface{}          `json:"hostname,omitempty"`
	Username         interface{}          `json:"username,omitempty"`
	ExitStatus       *int64               `json:"exit_status,omitempty"`
	StartUnixTime    *int64               `json:"start_unix_timestamp,omitempty"`
	EndUnixTime      *int64               `json:"end_unix_timestamp,omitempty"`
}

// WriteJSON writes rows as a single JSON array to w, in the export wire
// format consumed by importers.ImportJSON.
func WriteJSON(w io.Writer, rows []Row) error {
	out := make([]exportJSON, len(rows))
	for i, r := range rows {
		out[i] = exportJSON{
			SessionID:        r.SessionID,
			FullCommand:      r.FullCommand,
			ShellName:        r.ShellName,
			WorkingDirectory: optionalBinaryString(r.WorkingDirectory),
			Hostname:         optionalBinaryString(r.Hostname),
			Username:         optionalBinaryString(r.Username),
			ExitStatus:       r.ExitStatus,
			StartUnixTime:    r.StartUnixTime,
			EndUnixTime:      r.EndUnixTime,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("write json export: %w", err)
	}
	return nil
}

func optionalBinaryString(b *pxhist.BinaryString) interface{} {
	if b == nil {
		return nil
	}
	return *b
}
