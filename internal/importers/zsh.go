package importers

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/harrison/pxhist/internal/pxherr"
	"github.com/harrison/pxhist/internal/pxhist"
)

// ImportZsh parses a zsh extended-history file
// (": <start>:<duration>;<command>" lines, HIST_EXTENDED_HISTORY format)
// into invocations. Lines that do not match the expected shape are
// skipped: a malformed line drops out of the loop rather than failing
// the whole import. Skipped lines are counted, and when there are any the
// parsed invocations are returned together with an error wrapping
// pxherr.ErrImportMalformed that reports the count.
func ImportZsh(histfile string, hostnameOverride, usernameOverride string) ([]pxhist.Invocation, error) {
	data, sessionID, err := openHistfile(histfile)
	if err != nil {
		return nil, err
	}

	hostname := binaryStringPtr(resolveHostname(hostnameOverride))
	username := binaryStringPtr(resolveUsername(usernameOverride))

	var out []pxhist.Invocation
	skipped := 0
	for _, line := range splitLines(data) {
		if len(line) == 0 {
			continue
		}
		inv, ok := parseZshLine(line, sessionID, hostname, username)
		if !ok {
			skipped++
			continue
		}
		out = append(out, inv)
	}

	return Dedup(out), importMalformedErr(skipped)
}

func parseZshLine(line []byte, sessionID int64, hostname, username *pxhist.BinaryString) (pxhist.Invocation, bool) {
	fieldsAndCommand := bytes.SplitN(line, []byte(";"), 2)
	if len(fieldsAndCommand) != 2 {
		return pxhist.Invocation{}, false
	}
	fields, command := fieldsAndCommand[0], fieldsAndCommand[1]

	parts := bytes.SplitN(fields, []byte(":"), 3)
	if len(parts) != 3 {
		return pxhist.Invocation{}, false
	}
	// parts[0] is always empty (": " starts the line); parts[1] is the
	// start timestamp with a leading space, parts[2] the duration.
	startTS, err := strconv.ParseInt(string(bytes.TrimSpace(parts[1])), 10, 64)
	if err != nil {
		return pxhist.Invocation{}, false
	}
	duration, err := strconv.ParseInt(string(parts[2]), 10, 64)
	if err != nil {
		return pxhist.Invocation{}, false
	}
	endTS := startTS + duration

	return pxhist.Invocation{
		Command:       pxhist.NewBinaryString(command),
		ShellName:     "zsh",
		Hostname:      hostname,
		Username:      username,
		StartUnixTime: &startTS,
		EndUnixTime:   &endTS,
		SessionID:     sessionID,
	}, true
}

// importMalformedErr is returned by callers that want to surface a
// non-fatal ErrImportMalformed alongside a count of skipped lines.
func importMalformedErr(skipped int) error {
	if skipped == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d line(s) skipped", pxherr.ErrImportMalformed, skipped)
}
