// Package fileedit rewrites shell histfiles in place: scrub needs to
// delete specific lines from a running shell's on-disk history without
// ever leaving it half-written.
package fileedit

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/harrison/pxhist/internal/filelock"
)

// RemoveLines deletes every line of path for which match returns true,
// and atomically rewrites the file with the remaining lines. The result
// ends with a newline exactly when the original file did. A lock file
// (path+".lock") is held for the duration, so concurrent RemoveLines
// calls on the same histfile run one at a time; the temp-file-and-rename
// write means a reader never observes a partially rewritten file.
//
// Lines are read and compared byte-wise, never decoded as UTF-8, since a
// histfile line can hold an arbitrary non-UTF8 command.
func RemoveLines(path string, match func(line []byte) bool) error {
	lock := filelock.NewFileLock(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock histfile %s: %w", path, err)
	}
	defer lock.Unlock()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open histfile %s: %w", path, err)
	}

	var out bytes.Buffer
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if match(line) {
			continue
		}
		out.Write(line)
		out.WriteByte('\n')
	}
	last := make([]byte, 1)
	if info, err := f.Stat(); err == nil && info.Size() > 0 && out.Len() > 0 {
		if _, err := f.ReadAt(last, info.Size()-1); err == nil && last[0] != '\n' {
			out.Truncate(out.Len() - 1)
		}
	}
	scanErr := scanner.Err()
	f.Close()
	if scanErr != nil {
		return fmt.Errorf("read histfile %s: %w", path, scanErr)
	}

	if err := filelock.AtomicWrite(path, out.Bytes()); err != nil {
		return fmt.Errorf("rewrite histfile %s: %w", path, err)
	}
	return nil
}

// RemoveLinesContaining is a convenience wrapper for the common case: drop
// every line containing substr as a byte sequence.
func RemoveLinesContaining(path string, substr []byte) error {
	return RemoveLines(path, func(line []byte) bool {
		return bytes.Contains(line, substr)
	})
}
