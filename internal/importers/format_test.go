package importers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFormatZsh(t *testing.T) {
	assert.Equal(t, FormatZsh, DetectFormat([]byte(": 1700000000:0;ls -la\n")))
}

func TestDetectFormatBashTimestamped(t *testing.T) {
	assert.Equal(t, FormatBash, DetectFormat([]byte("#1700000000\nls -la\n")))
}

func TestDetectFormatBashPlain(t *testing.T) {
	assert.Equal(t, FormatBash, DetectFormat([]byte("ls -la\ncd /tmp\n")))
}

func TestDetectFormatJSON(t *testing.T) {
	assert.Equal(t, FormatJSON, DetectFormat([]byte(`[{"shellname":"zsh"}]`)))
}

func TestDetectFormatEmpty(t *testing.T) {
	assert.Equal(t, FormatUnknown, DetectFormat(nil))
}

func TestSplitLines(t *testing.T) {
	lines := splitLines([]byte("a\nb\nc"))
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b"), []byte("c")}, lines)

	lines = splitLines([]byte("a\nb\n"))
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b")}, lines)
}
