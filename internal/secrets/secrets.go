// Package secrets holds the pattern catalogue "pxhist scan"/"pxhist scrub"
// run against full_command. The catalogue is intentionally small: a real
// secret-scanning ruleset (trufflehog, gitleaks) is out of scope here, this
// package only gives query.ScanRows/ScrubRows somewhere to source
// query.SecretPattern values from.
package secrets

import "github.com/harrison/pxhist/internal/query"

// DefaultPatterns is the built-in catalogue used when the caller supplies
// no --pattern flags of their own.
func DefaultPatterns() []query.SecretPattern {
	return []query.SecretPattern{
		{Label: "aws-access-key-id", Pattern: `AKIA[0-9A-Z]{16}`},
		{Label: "generic-api-key-flag", Pattern: `--(api[_-]?key|token|secret)[= ][^ ]+`},
		{Label: "basic-auth-url", Pattern: `://[^/ :]+:[^/ @]+@`},
		{Label: "private-key-block", Pattern: `-----BEGIN [A-Z ]*PRIVATE KEY-----`},
		{Label: "bearer-token", Pattern: `[Bb]earer [A-Za-z0-9._-]{20,}`},
	}
}
