package importers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harrison/pxhist/internal/pxhist"
)

func invAt(command string, ts int64) pxhist.Invocation {
	return pxhist.Invocation{Command: pxhist.TextBinaryString(command), StartUnixTime: &ts}
}

func TestDedupCollapsesAdjacentDuplicatesOnly(t *testing.T) {
	in := []pxhist.Invocation{
		invAt("ls", 1),
		invAt("ls", 1),
		invAt("ls", 1),
		invAt("pwd", 2),
		invAt("ls", 1), // same command+ts as earlier, but not adjacent: kept
	}

	out := Dedup(in)
	assert.Len(t, out, 3)
	assert.Equal(t, "ls", out[0].Command.String())
	assert.Equal(t, "pwd", out[1].Command.String())
	assert.Equal(t, "ls", out[2].Command.String())
}

func TestDedupEmpty(t *testing.T) {
	assert.Nil(t, Dedup(nil))
}

func TestDedupSingle(t *testing.T) {
	out := Dedup([]pxhist.Invocation{invAt("ls", 1)})
	assert.Len(t, out, 1)
}
