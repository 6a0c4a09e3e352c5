// Package logger provides structured console logging for pxhist CLI
// invocations. It is intentionally small: every pxhist subcommand is a
// short-lived process, so there is no wave/summary hierarchy to track, only
// level-filtered lines tagged with a per-invocation correlation id so that
// diagnostics from concurrent shell sessions writing to the same store can
// be told apart.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
)

// Level filters which messages reach the writer.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

func parseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// ConsoleLogger writes level-filtered, timestamped lines to an io.Writer.
// Safe for concurrent use; a single process only ever logs from one
// goroutine in practice, but the store it reports on is shared across
// concurrent shell sessions, so log lines carry a correlation id.
type ConsoleLogger struct {
	writer      io.Writer
	level       Level
	mutex       sync.Mutex
	colorOutput bool
	runID       string
}

// New creates a ConsoleLogger writing to w, filtered at the given level
// ("trace".."error", case-insensitive; invalid or empty defaults to "info").
// Color is enabled automatically when w is a TTY.
func New(w io.Writer, level string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      w,
		level:       parseLevel(level),
		colorOutput: isTerminal(w),
		runID:       uuid.NewString()[:8],
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (c *ConsoleLogger) log(level Level, tag string, col *color.Color, format string, args ...interface{}) {
	if level < c.level {
		return
	}
	c.mutex.Lock()
	defer c.mutex.Unlock()

	ts := time.Now().Format("15:04:05")
	msg := fmt.Sprintf(format, args...)
	line := fmt.Sprintf("[%s] [%s] %s: %s\n", ts, c.runID, tag, msg)
	if c.colorOutput && col != nil {
		fmt.Fprint(c.writer, col.Sprint(line))
		return
	}
	fmt.Fprint(c.writer, line)
}

func (c *ConsoleLogger) Debugf(format string, args ...interface{}) {
	c.log(LevelDebug, "debug", color.New(color.FgCyan), format, args...)
}

func (c *ConsoleLogger) Infof(format string, args ...interface{}) {
	c.log(LevelInfo, "info", nil, format, args...)
}

func (c *ConsoleLogger) Warnf(format string, args ...interface{}) {
	c.log(LevelWarn, "warn", color.New(color.FgYellow), format, args...)
}

func (c *ConsoleLogger) Errorf(format string, args ...interface{}) {
	c.log(LevelError, "error", color.New(color.FgRed), format, args...)
}

// RunID returns the correlation id attached to every line this logger emits.
func (c *ConsoleLogger) RunID() string {
	return c.runID
}
