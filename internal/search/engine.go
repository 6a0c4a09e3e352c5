// Package search implements the recall TUI's two-stage lookup: a SQL
// prefilter against the store, narrowed further by fuzzy ranking.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/harrison/pxhist/internal/store"
)

// Scope selects whether entries are restricted to the current working
// directory or drawn from the whole history.
type Scope int

const (
	ScopeDirectory Scope = iota
	ScopeGlobal
)

// HostFilter selects whether entries are restricted to the current host.
type HostFilter int

const (
	HostFilterAny HostFilter = iota
	HostFilterThisHost
)

// Entry is one distinct command surfaced by the recall picker: the most
// recent execution of a given command line, with enough metadata to
// render the preview pane.
type Entry struct {
	Command          string
	Timestamp        *int64
	WorkingDirectory *string
	Hostname         *string
	ExitStatus       *int64
	DurationSecs     *int64
}

// Engine holds the context a recall session searches within: the store,
// the shell's current directory and hostname, and how many rows to load.
type Engine struct {
	store            *store.Store
	workingDirectory string
	currentHostname  string
	resultLimit      int
}

// NewEngine constructs a search Engine. resultLimit bounds how many rows
// are loaded from the store before fuzzy ranking; 0 uses the default of
// 5000 (matching original_source/src/recall/config.rs's RecallConfig).
func NewEngine(s *store.Store, workingDirectory, currentHostname string, resultLimit int) *Engine {
	if resultLimit <= 0 {
		resultLimit = 5000
	}
	return &Engine{
		store:            s,
		workingDirectory: workingDirectory,
		currentHostname:  currentHostname,
		resultLimit:      resultLimit,
	}
}

// LoadEntries runs the SQL prefilter stage: scope WHERE, host WHERE, and
// (when query is non-empty) a case-insensitive LIKE substring filter,
// grouped so only the most recent execution of each distinct command
// survives, newest first, capped at resultLimit.
func (e *Engine) LoadEntries(ctx context.Context, scope Scope, hostFilter HostFilter, query string) ([]Entry, error) {
	var conditions []string
	var args []interface{}

	if scope == ScopeDirectory {
		conditions = append(conditions, "working_directory = CAST(? AS BLOB)")
		args = append(args, e.workingDirectory)
	}
	if hostFilter == HostFilterThisHost {
		conditions = append(conditions, "hostname = CAST(? AS BLOB)")
		args = append(args, e.currentHostname)
	}
	if query != "" {
		conditions = append(conditions, "full_command LIKE '%' || CAST(? AS BLOB) || '%' COLLATE NOCASE")
		args = append(args, query)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	sqlText := fmt.Sprintf(`
SELECT c.full_command, c.start_unix_timestamp, c.working_directory,
       c.hostname, c.exit_status,
       CASE WHEN c.end_unix_timestamp IS NOT NULL
            THEN c.end_unix_timestamp - c.start_unix_timestamp
            ELSE NULL END AS duration
  FROM command_history c
 INNER JOIN (
     SELECT full_command, MAX(start_unix_timestamp) AS max_ts
       FROM command_history
      %s
      GROUP BY full_command
 ) latest ON c.full_command = latest.full_command
         AND c.start_unix_timestamp = latest.max_ts
 ORDER BY c.start_unix_timestamp DESC
 LIMIT %d`, whereClause, e.resultLimit)

	rows, err := e.store.DB().QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("load search entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var command, workingDirectory, hostname []byte
		var timestamp, exitStatus, duration *int64

		if err := rows.Scan(&command, &timestamp, &workingDirectory, &hostname, &exitStatus, &duration); err != nil {
			return nil, fmt.Errorf("scan search entry: %w", err)
		}

		entries = append(entries, Entry{
			Command:          string(command),
			Timestamp:        timestamp,
			WorkingDirectory: bytesPtrToStringPtr(workingDirectory),
			Hostname:         bytesPtrToStringPtr(hostname),
			ExitStatus:       exitStatus,
			DurationSecs:     duration,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate search entries: %w", err)
	}

	return entries, nil
}

// Query runs the full two-stage lookup: LoadEntries for the SQL
// prefilter, then Rank for fuzzy scoring against query.
func (e *Engine) Query(ctx context.Context, scope Scope, hostFilter HostFilter, query string) ([]Result, error) {
	entries, err := e.LoadEntries(ctx, scope, hostFilter, query)
	if err != nil {
		return nil, err
	}
	return Rank(entries, query), nil
}

// CurrentHostname returns the hostname Engine was constructed with.
func (e *Engine) CurrentHostname() string {
	return e.currentHostname
}

// WorkingDirectory returns the directory Engine was constructed with.
func (e *Engine) WorkingDirectory() string {
	return e.workingDirectory
}

func bytesPtrToStringPtr(b []byte) *string {
	if b == nil {
		return nil
	}
	s := string(b)
	return &s
}
