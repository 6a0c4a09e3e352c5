package search

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Result pairs a loaded Entry with its fuzzy match score and the byte
// indexes to highlight in the rendered command string.
type Result struct {
	Entry            Entry
	Score            int
	HighlightIndexes []int
}

// Rank fuzzy-matches entries against query and returns the surviving
// entries sorted by score descending, then by original load order
// ascending (a stable recency tiebreaker, since LoadEntries already
// returns newest-first).
//
// Matching is scored against a "dash-normalized" form of both the query
// and the candidate commands (hyphens treated as spaces), so that e.g.
// "go-build" scores against "go build" as if typed with a space. This
// mirrors original_source/src/recall/engine.rs's filter_entries, which
// normalizes before scoring but prefers the un-normalized query for
// highlight indexes, falling back to the normalized pattern only when
// the un-normalized one fails to match at all.
func Rank(entries []Entry, query string) []Result {
	if query == "" {
		results := make([]Result, len(entries))
		for i, e := range entries {
			results[i] = Result{Entry: e, Score: 0}
		}
		return results
	}

	normalizedQuery := normalizeDashes(query)

	commands := make([]string, len(entries))
	normalizedCommands := make([]string, len(entries))
	for i, e := range entries {
		commands[i] = e.Command
		normalizedCommands[i] = normalizeDashes(e.Command)
	}

	matches := fuzzy.Find(normalizedQuery, normalizedCommands)

	type ranked struct {
		result      Result
		originalIdx int
	}
	scratch := make([]ranked, 0, len(matches))
	for _, m := range matches {
		highlight := m.MatchedIndexes

		if rawMatches := fuzzy.Find(query, []string{commands[m.Index]}); len(rawMatches) > 0 {
			highlight = rawMatches[0].MatchedIndexes
		}

		scratch = append(scratch, ranked{
			result: Result{
				Entry:            entries[m.Index],
				Score:            m.Score,
				HighlightIndexes: highlight,
			},
			originalIdx: m.Index,
		})
	}

	sort.SliceStable(scratch, func(i, j int) bool {
		if scratch[i].result.Score != scratch[j].result.Score {
			return scratch[i].result.Score > scratch[j].result.Score
		}
		return scratch[i].originalIdx < scratch[j].originalIdx
	})

	results := make([]Result, len(scratch))
	for i, r := range scratch {
		results[i] = r.result
	}
	return results
}

// normalizeDashes replaces hyphens with spaces so that hyphenated and
// space-separated forms of the same phrase score identically.
func normalizeDashes(s string) string {
	return strings.ReplaceAll(s, "-", " ")
}
