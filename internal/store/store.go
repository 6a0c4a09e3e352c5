// Package store wraps the sqlite-backed command_history table: connection
// setup, the embedded schema, and the append/seal record lifecycle.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/mattn/go-sqlite3"

	"github.com/harrison/pxhist/internal/pxherr"
)

//go:embed schema.sql
var schemaSQL string

const driverName = "pxhist_sqlite3"

var registerDriverOnce sync.Once

// regexpCache memoizes compiled patterns across calls to the registered
// "regexp" scalar function, keyed by pattern text. Patterns come from a
// small, fixed set of CLI flags per process, so the cache never grows
// unbounded in practice.
var regexpCache sync.Map // map[string]*regexp.Regexp

func registerDriver() {
	registerDriverOnce.Do(func() {
		sql.Register(driverName, &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				return conn.RegisterFunc("regexp", regexpScalar, true)
			},
		})
	})
}

// regexpScalar implements SQLite's REGEXP operator (full_command REGEXP ?)
// byte-wise against the raw blob column, never converting through string,
// since full_command may hold non-UTF8 bytes that a string conversion
// would silently mangle.
func regexpScalar(pattern string, subject []byte) (bool, error) {
	compiled, ok := regexpCache.Load(pattern)
	if !ok {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return false, fmt.Errorf("compile regexp %q: %w", pattern, err)
		}
		compiled, _ = regexpCache.LoadOrStore(pattern, re)
	}
	return compiled.(*regexp.Regexp).Match(subject), nil
}

// Store wraps the sqlite connection backing the command history table.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates the parent directory if needed, opens (or creates) the
// sqlite database at path, applies the WAL/cache pragmas, and executes the
// idempotent schema. An in-memory store ("" or ":memory:") skips the
// directory step, matching the teacher's NewStore special-case.
func Open(path string) (*Store, error) {
	registerDriver()

	if path != ":memory:" && path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("%w: create store directory: %v", pxherr.ErrStoreUnavailable, err)
		}
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %v", pxherr.ErrStoreUnavailable, err)
	}

	s := &Store{db: db, path: path}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA temp_store=MEMORY",
		"PRAGMA cache_size=-16000",
	}
	for _, p := range pragmas {
		if _, err := s.db.Exec(p); err != nil {
			return fmt.Errorf("%w: apply pragma %q: %v", pxherr.ErrStoreUnavailable, p, err)
		}
	}

	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("%w: execute schema: %v", pxherr.ErrStoreUnavailable, err)
	}
	return nil
}

// Close closes the underlying sqlite connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB exposes the underlying *sql.DB for packages (query, search) that need
// to run their own read statements without growing Store's own API surface.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Ping verifies the store's connection is usable, surfacing
// ErrStoreUnavailable on failure.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", pxherr.ErrStoreUnavailable, err)
	}
	return nil
}
