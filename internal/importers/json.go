package importers

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/harrison/pxhist/internal/pxhist"
)

// exportedInvocation mirrors the shape pxhist itself writes via
// query.WriteJSON (component E's export format), so "pxhist export" on one
// machine can be "pxhist import --shellname json" on another.
type exportedInvocation struct {
	SessionID        int64               `json:"session_id"`
	FullCommand      pxhist.BinaryString `json:"full_command"`
	ShellName        string              `json:"shellname"`
	WorkingDirectory *pxhist.BinaryString `json:"working_directory,omitempty"`
	Hostname         *pxhist.BinaryString `json:"hostname,omitempty"`
	Username         *pxhist.BinaryString `json:"username,omitempty"`
	ExitStatus       *int64              `json:"exit_status,omitempty"`
	StartUnixTime    *int64              `json:"start_unix_timestamp,omitempty"`
	EndUnixTime      *int64              `json:"end_unix_timestamp,omitempty"`
}

// ImportJSON parses a pxhist JSON export (an array of exported invocation
// records) back into Invocations. Unlike ImportZsh/ImportBash it reads a
// well-formed document, so a parse failure aborts the whole import rather
// than skipping a line.
func ImportJSON(histfile string) ([]pxhist.Invocation, error) {
	data, err := os.ReadFile(histfile)
	if err != nil {
		return nil, fmt.Errorf("read json history file: %w", err)
	}

	var rows []exportedInvocation
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse json history file: %w", err)
	}

	out := make([]pxhist.Invocation, 0, len(rows))
	for _, r := range rows {
		out = append(out, pxhist.Invocation{
			Command:          r.FullCommand,
			ShellName:        r.ShellName,
			WorkingDirectory: r.WorkingDirectory,
			Hostname:         r.Hostname,
			Username:         r.Username,
			ExitStatus:       r.ExitStatus,
			StartUnixTime:    r.StartUnixTime,
			EndUnixTime:      r.EndUnixTime,
			SessionID:        r.SessionID,
		})
	}

	return Dedup(out), nil
}
