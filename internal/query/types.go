// Package query implements the read-only surface over the command_history
// table: show, export, and the scan/scrub maintenance operations.
package query

import "github.com/harrison/pxhist/internal/pxhist"

// Row is one command_history record as read back from the store, with a
// row id so scrub can target specific records.
type Row struct {
	ID               int64
	SessionID        int64
	FullCommand      pxhist.BinaryString
	ShellName        string
	Hostname         *pxhist.BinaryString
	Username         *pxhist.BinaryString
	WorkingDirectory *pxhist.BinaryString
	ExitStatus       *int64
	StartUnixTime    *int64
	EndUnixTime      *int64
}
