package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/harrison/pxhist/internal/store"
)

// SecretPattern is one entry of the (out-of-scope, externally supplied)
// secrets catalogue: a compiled regexp with a human label, used by
// "pxhist scan" to flag history rows that look like they contain a
// credential. The catalogue itself lives outside this package; query only
// knows how to run patterns against full_command.
type SecretPattern struct {
	Label   string
	Pattern string // regexp, matched byte-wise via the store's REGEXP operator
}

// Match is one scan hit: a row and the pattern label that flagged it.
type Match struct {
	Row   Row
	Label string
}

// ScanRows runs each pattern against full_command and returns every row
// that matched at least one pattern, paired with the first matching
// pattern's label.
func ScanRows(ctx context.Context, s *store.Store, patterns []SecretPattern) ([]Match, error) {
	var out []Match
	seen := make(map[int64]bool)
	for _, p := range patterns {
		rows, err := queryRows(ctx, s.DB(), showSQL, p.Pattern, 1<<31-1)
		if err != nil {
			return nil, fmt.Errorf("scan pattern %q: %w", p.Label, err)
		}
		for _, r := range rows {
			if seen[r.ID] {
				continue
			}
			seen[r.ID] = true
			out = append(out, Match{Row: r, Label: p.Label})
		}
	}
	return out, nil
}

// ScrubRows permanently deletes the given row ids from the store. This is
// the database-backed half of "scrub"; the histfile-editing half calls
// fileedit.RemoveLines directly (see internal/fileedit).
func ScrubRows(ctx context.Context, s *store.Store, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf(`DELETE FROM command_history WHERE id IN (%s)`, strings.Join(placeholders, ","))
	if _, err := s.DB().ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("scrub rows: %w", err)
	}
	return nil
}
