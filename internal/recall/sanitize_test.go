package recall

import "testing"

func TestSanitizePreservesNormalText(t *testing.T) {
	cases := map[string]string{
		"hello world": "hello world",
		"ls -la /tmp": "ls -la /tmp",
	}
	for in, want := range cases {
		if got := SanitizeForDisplay(in); got != want {
			t.Errorf("SanitizeForDisplay(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSanitizePreservesBoxDrawing(t *testing.T) {
	cases := []string{"┌History───┐", "│ cell │", "└───────┘"}
	for _, s := range cases {
		if got := SanitizeForDisplay(s); got != s {
			t.Errorf("SanitizeForDisplay(%q) = %q, want unchanged", s, got)
		}
	}
}

func TestSanitizePreservesUnicode(t *testing.T) {
	cases := []string{"héllo wörld", "日本語", "emoji 🎉 test"}
	for _, s := range cases {
		if got := SanitizeForDisplay(s); got != s {
			t.Errorf("SanitizeForDisplay(%q) = %q, want unchanged", s, got)
		}
	}
}

func TestSanitizeStripsAnsiEscapeSequences(t *testing.T) {
	cases := map[string]string{
		"\x1b[31mred\x1b[0m":              "red",
		"\x1b[1;32mbold green\x1b[0m":     "bold green",
		"\x1b[H":                         "",
		"\x1b[2J":                        "",
		"\x1b[10;20H":                    "",
		"before\x1b[31mred\x1b[0mafter":  "beforeredafter",
	}
	for in, want := range cases {
		if got := SanitizeForDisplay(in); got != want {
			t.Errorf("SanitizeForDisplay(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSanitizeConvertsNewlinesToSpaces(t *testing.T) {
	cases := map[string]string{
		"line1\nline2":   "line1 line2",
		"line1\r\nline2": "line1  line2",
		"a\nb\nc":        "a b c",
	}
	for in, want := range cases {
		if got := SanitizeForDisplay(in); got != want {
			t.Errorf("SanitizeForDisplay(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSanitizeConvertsTabsToSpaces(t *testing.T) {
	cases := map[string]string{
		"col1\tcol2":      "col1 col2",
		"\t\tindented":    "  indented",
	}
	for in, want := range cases {
		if got := SanitizeForDisplay(in); got != want {
			t.Errorf("SanitizeForDisplay(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSanitizeStripsControlCharacters(t *testing.T) {
	cases := map[string]string{
		"hello\x07world": "helloworld",
		"hello\x08world": "helloworld",
		"a\x00b\x01c":    "abc",
		"test\x7fdelete": "testdelete",
	}
	for in, want := range cases {
		if got := SanitizeForDisplay(in); got != want {
			t.Errorf("SanitizeForDisplay(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSanitizeHandlesBinaryGarbage(t *testing.T) {
	in := "cmd\x1b[2J\x1b[H\x00\x01\x02\x03visible\x1b[31m"
	want := "cmdvisible"
	if got := SanitizeForDisplay(in); got != want {
		t.Errorf("SanitizeForDisplay(%q) = %q, want %q", in, got, want)
	}
}

func TestSanitizeHandlesIncompleteEscapeSequences(t *testing.T) {
	cases := map[string]string{
		"text\x1b":    "text",
		"text\x1b[":   "text",
		"text\x1b[123": "text",
	}
	for in, want := range cases {
		if got := SanitizeForDisplay(in); got != want {
			t.Errorf("SanitizeForDisplay(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSanitizeEmptyString(t *testing.T) {
	if got := SanitizeForDisplay(""); got != "" {
		t.Errorf("SanitizeForDisplay(\"\") = %q, want empty", got)
	}
}
