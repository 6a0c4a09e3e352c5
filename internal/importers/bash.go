package importers

import (
	"strconv"

	"github.com/harrison/pxhist/internal/pxhist"
)

// ImportBash parses a bash history file. It free-runs a small state
// machine over the raw lines: a line "#<digits>" that parses as a
// positive integer sets the pending timestamp for every command line
// that follows (bash's HISTTIMEFORMAT layout), until the next such
// line replaces it — the timestamp is never cleared by an intervening
// command. A "#" line whose remainder parses as an integer that is not
// positive ("#0", "#-5") is dropped and leaves the pending timestamp
// untouched. A "#" line whose remainder does not parse as an integer at
// all isn't a timestamp marker; it falls through and is recorded as an
// ordinary command, pending timestamp untouched. A plain bash history
// (no HISTTIMEFORMAT ever enabled) simply never sets a pending
// timestamp, so every command ends up with a nil StartUnixTime — the
// same function handles both layouts without a separate "plain" entry
// point.
func ImportBash(histfile string, hostnameOverride, usernameOverride string) ([]pxhist.Invocation, error) {
	data, sessionID, err := openHistfile(histfile)
	if err != nil {
		return nil, err
	}

	hostname := binaryStringPtr(resolveHostname(hostnameOverride))
	username := binaryStringPtr(resolveUsername(usernameOverride))

	var out []pxhist.Invocation
	var pendingTS *int64
	for _, line := range splitLines(data) {
		if len(line) == 0 {
			continue
		}
		if line[0] == '#' {
			if ts, err := strconv.ParseInt(string(line[1:]), 10, 64); err == nil {
				if ts > 0 {
					pendingTS = &ts
				}
				continue
			}
			// unparseable "#" line: not a timestamp marker, falls
			// through to be recorded as a command below.
		}

		out = append(out, pxhist.Invocation{
			Command:       pxhist.NewBinaryString(line),
			ShellName:     "bash",
			Hostname:      hostname,
			Username:      username,
			StartUnixTime: pendingTS,
			SessionID:     sessionID,
		})
	}

	return Dedup(out), nil
}
