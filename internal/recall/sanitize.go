package recall

import "strings"

// SanitizeForDisplay strips ANSI escape sequences and control characters
// that could move the cursor or otherwise corrupt the picker's layout,
// and folds newlines/tabs into single spaces so a multi-line or
// tab-containing command still renders on one row.
func SanitizeForDisplay(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '\x1b':
			if i+1 < len(runes) && runes[i+1] == '[' {
				i += 2
				for i < len(runes) {
					ch := runes[i]
					i++
					if ch >= 'A' && ch <= 'Z' || ch >= 'a' && ch <= 'z' {
						break
					}
				}
				i--
				continue
			}
		case c == '\n' || c == '\r':
			b.WriteByte(' ')
		case c == '\t':
			b.WriteByte(' ')
		case c >= '\x00' && c <= '\x08', c >= '\x0b' && c <= '\x0c', c >= '\x0e' && c <= '\x1f', c == '\x7f', c >= '\u0080' && c <= '\u009f':
			// dropped
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
