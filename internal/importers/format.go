// Package importers reads shell history files (zsh, bash, or pxhist's own
// JSON export) into pxhist.Invocation records, ready for
// store.Store.AppendBatch.
package importers

import "regexp"

// Format identifies which history file layout a histfile uses.
type Format int

const (
	FormatUnknown Format = iota
	FormatZsh
	FormatBash
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatZsh:
		return "zsh"
	case FormatBash:
		return "bash"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

var (
	// zsh extended history: ": <start>:<duration>;<command>"
	zshLinePattern = regexp.MustCompile(`^: \d+:\d+;`)
	// bash with HISTTIMEFORMAT enabled: "#<epoch seconds>"
	bashTimestampPattern = regexp.MustCompile(`^#\d+$`)
)

// DetectFormat classifies raw history file bytes by looking at the first
// non-empty line. A "#<digits>" timestamp marker can appear on any line of
// a real bash-with-HISTTIMEFORMAT file, not just the first, but checking
// only the first line is enough to tell the format apart from zsh/json: if
// that line isn't a marker, ImportBash still handles a marker appearing
// later, since it treats every "#<digits>" line as a timestamp regardless
// of position. Matching operates byte-wise (regexp.Regexp.Match), never on
// a decoded string, since a command line is not guaranteed to be valid
// UTF-8.
func DetectFormat(data []byte) Format {
	for _, line := range splitLines(data) {
		if len(line) == 0 {
			continue
		}
		if line[0] == '{' || line[0] == '[' {
			return FormatJSON
		}
		if zshLinePattern.Match(line) {
			return FormatZsh
		}
		if bashTimestampPattern.Match(line) {
			return FormatBash
		}
		// First non-empty, non-JSON, non-zsh, non-timestamped line: bash
		// plain history has no identifying prefix at all, so any other
		// content is treated as bash.
		return FormatBash
	}
	return FormatUnknown
}

func splitLines(data []byte) [][]byte {
	return splitBytes(data, '\n')
}

func splitBytes(data []byte, sep byte) [][]byte {
	var lines [][]byte
	start := 0
	for i, b := range data {
		if b == sep {
			lines = append(lines, data[start:i])
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, data[start:])
	}
	return lines
}
