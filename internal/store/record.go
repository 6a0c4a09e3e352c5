package store

import (
	"context"
	cryptorand "crypto/rand"
	"database/sql"
	"encoding/binary"
	"fmt"
	mathrand "math/rand/v2"
	"os"
	"syscall"

	"github.com/harrison/pxhist/internal/pxhist"
)

const insertSQL = `
INSERT INTO command_history (
    session_id, full_command, shellname, hostname, username,
    working_directory, exit_status, start_unix_timestamp, end_unix_timestamp
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

// Append inserts a single invocation as one row. Used by the "insert"
// command for a live shell's pre-execution record.
func (s *Store) Append(ctx context.Context, inv pxhist.Invocation) error {
	_, err := s.db.ExecContext(ctx, insertSQL, appendArgs(inv)...)
	if err != nil {
		return fmt.Errorf("append invocation: %w", err)
	}
	return nil
}

// AppendBatch inserts many invocations inside a single transaction, used by
// importers so that a large history file commits atomically.
func (s *Store) AppendBatch(ctx context.Context, invs []pxhist.Invocation) error {
	if len(invs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return fmt.Errorf("prepare import insert: %w", err)
	}
	defer stmt.Close()

	for _, inv := range invs {
		if _, err := stmt.ExecContext(ctx, appendArgs(inv)...); err != nil {
			return fmt.Errorf("insert imported invocation: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import transaction: %w", err)
	}
	return nil
}

func appendArgs(inv pxhist.Invocation) []interface{} {
	return []interface{}{
		inv.SessionID,
		inv.Command.Bytes(),
		inv.ShellName,
		binaryStringBytes(inv.Hostname),
		binaryStringBytes(inv.Username),
		binaryStringBytes(inv.WorkingDirectory),
		nullableInt64(inv.ExitStatus),
		nullableInt64(inv.StartUnixTime),
		nullableInt64(inv.EndUnixTime),
	}
}

func binaryStringBytes(b *pxhist.BinaryString) []byte {
	if b == nil {
		return nil
	}
	return b.Bytes()
}

func nullableInt64(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

const sealSQL = `
UPDATE command_history SET exit_status = ?, end_unix_timestamp = ?
 WHERE exit_status IS NULL
   AND end_unix_timestamp IS NULL
   AND id = (SELECT MAX(id) FROM command_history hi WHERE hi.session_id = ?)`

// Seal records the exit status and end time of sessionID's most recently
// inserted invocation, provided that row is still open. Zero rows affected
// (the session has no rows, or its latest row is already sealed) is
// success, not an error: a shell's
// precmd hook can legitimately race a crash or a second seal.
func (s *Store) Seal(ctx context.Context, sessionID int64, exitStatus int64, endUnixTimestamp int64) error {
	_, err := s.db.ExecContext(ctx, sealSQL, exitStatus, endUnixTimestamp, sessionID)
	if err != nil {
		return fmt.Errorf("seal session %d: %w", sessionID, err)
	}
	return nil
}

// sessionIDSource is reseeded once per process from the OS entropy pool,
// matching the original's plain (non-cryptographic) rand::random: a
// session id only needs to avoid collisions between concurrently running
// shells, not resist prediction.
var sessionIDSource = mathrand.New(mathrand.NewPCG(uint64(os.Getpid()), randSeed()))

func randSeed() uint64 {
	var buf [8]byte
	_, _ = cryptorand.Read(buf[:])
	return binary.BigEndian.Uint64(buf[:])
}

// GenerateLiveSessionID returns a 63-bit random session id for a freshly
// started shell session (no backing file to derive stability from).
func GenerateLiveSessionID() int64 {
	return int64(sessionIDSource.Uint64() >> 1)
}

// GenerateImportSessionID derives a stable session id from the imported
// file's (dev, ino) pair, so re-importing the same histfile later produces
// records grouped under the same session. Falls back to a random id if the
// file's device/inode cannot be read.
func GenerateImportSessionID(histfile *os.File) int64 {
	info, err := histfile.Stat()
	if err != nil {
		return GenerateLiveSessionID()
	}
	sys, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return GenerateLiveSessionID()
	}
	return int64(sys.Ino<<16 | uint64(sys.Dev))
}
