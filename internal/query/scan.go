package query

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/harrison/pxhist/internal/pxhist"
)

const selectColumns = `id, session_id, full_command, shellname, hostname, username, working_directory, exit_status, start_unix_timestamp, end_unix_timestamp`

func scanRows(rows *sql.Rows) ([]Row, error) {
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		var fullCommand []byte
		var hostname, username, workingDirectory []byte
		var exitStatus, startTS, endTS sql.NullInt64

		if err := rows.Scan(
			&r.ID, &r.SessionID, &fullCommand, &r.ShellName,
			&hostname, &username, &workingDirectory,
			&exitStatus, &startTS, &endTS,
		); err != nil {
			return nil, fmt.Errorf("scan command_history row: %w", err)
		}

		r.FullCommand = pxhist.NewBinaryString(fullCommand)
		r.Hostname = bytesToBinaryStringPtr(hostname)
		r.Username = bytesToBinaryStringPtr(username)
		r.WorkingDirectory = bytesToBinaryStringPtr(workingDirectory)
		r.ExitStatus = nullInt64Ptr(exitStatus)
		r.StartUnixTime = nullInt64Ptr(startTS)
		r.EndUnixTime = nullInt64Ptr(endTS)

		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate command_history rows: %w", err)
	}
	return out, nil
}

func bytesToBinaryStringPtr(b []byte) *pxhist.BinaryString {
	if b == nil {
		return nil
	}
	v := pxhist.NewBinaryString(b)
	return &v
}

func nullInt64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

// queryRows runs query with args against db and scans the result into Rows.
func queryRows(ctx context.Context, db interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}, query string, args ...interface{}) ([]Row, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query command_history: %w", err)
	}
	return scanRows(rows)
}
