package query

import (
	"context"
	"fmt"

	"github.com/harrison/pxhist/internal/store"
)

// showSQL mirrors the original's show_subcommand query exactly: filter by
// the REGEXP operator (empty pattern matches everything, since an empty
// regexp matches every string), newest first, capped at limit.
const showSQL = `
SELECT ` + selectColumns + `
  FROM command_history
 WHERE full_command REGEXP ?
ORDER BY start_unix_timestamp DESC, id DESC
LIMIT ?`

// Show returns invocations matching substringRegex (an empty string
// matches everything), most recent limit rows, returned in chronological
// (oldest-first) order — the caller queries newest-first internally (to
// make LIMIT cheap against the index) and reverses before returning, same
// as the original's show_subcommand.
func Show(ctx context.Context, s *store.Store, limit int, substringRegex string) ([]Row, error) {
	if limit <= 0 {
		limit = 1<<31 - 1
	}

	rows, err := queryRows(ctx, s.DB(), showSQL, substringRegex, limit)
	if err != nil {
		return nil, fmt.Errorf("show: %w", err)
	}

	reverse(rows)
	return rows, nil
}

func reverse(rows []Row) {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}
