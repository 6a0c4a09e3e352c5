package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarningDisplay(t *testing.T) {
	var buf bytes.Buffer
	w := Warning{
		Title:      "Skipped malformed history lines",
		Message:    "~/.bash_history",
		Files:      []string{"line 3", "line 9"},
		Suggestion: "Check the file encoding.",
	}
	w.Display(&buf)

	out := buf.String()
	assert.Contains(t, out, "Skipped malformed history lines")
	assert.Contains(t, out, "~/.bash_history")
	assert.Contains(t, out, "line 3")
	assert.Contains(t, out, "line 9")
	assert.Contains(t, out, "Check the file encoding.")
}

func TestWarnMalformedLines(t *testing.T) {
	w := WarnMalformedLines("hist.txt", []int{1, 2, 5})
	assert.Equal(t, "hist.txt", w.Message)
	assert.Equal(t, []string{"line 1", "line 2", "line 5"}, w.Files)
}
