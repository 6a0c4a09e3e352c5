// Package recall implements the full-screen fuzzy-history picker: raw
// terminal mode, the keymap-driven edit/navigation state machine, and
// the result-list-plus-preview renderer.
package recall

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/harrison/pxhist/internal/config"
	"github.com/harrison/pxhist/internal/pxherr"
	"github.com/harrison/pxhist/internal/search"
)

// Outcome is what the user asked to do with the selected command:
// immediately run it, or drop it back onto the shell's edit line.
type Outcome int

const (
	OutcomeCancelled Outcome = iota
	OutcomeRun
	OutcomeEdit
)

// Result is the picker's final answer: the chosen command (empty on
// cancellation) and what the caller's shell integration should do with it.
type Result struct {
	Command string
	Outcome Outcome
}

// Session owns the raw-mode /dev/tty handle for one interactive picker
// run. Open enables raw mode and the alternate screen; Close restores
// both unconditionally, mirroring original_source/src/recall/tui.rs's
// RecallTui::cleanup and its Drop impl (defense against a panicking
// caller leaving the terminal in raw mode).
type Session struct {
	tty      *os.File
	oldState *term.State
}

// Open acquires /dev/tty, switches it to raw mode, and enters the
// alternate screen. Returns pxherr.ErrTerminalUnavailable if no
// controlling terminal is available (for example a non-interactive CI
// run); piped stdin/stdout alone does not cause it, since /dev/tty is
// opened directly.
func Open() (*Session, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: open /dev/tty: %v", pxherr.ErrTerminalUnavailable, err)
	}

	oldState, err := term.MakeRaw(int(tty.Fd()))
	if err != nil {
		tty.Close()
		return nil, fmt.Errorf("%w: enable raw mode: %v", pxherr.ErrTerminalUnavailable, err)
	}

	io.WriteString(tty, "\x1b[?1049h\x1b[?25l\x1b[2J\x1b[H")

	return &Session{tty: tty, oldState: oldState}, nil
}

// Close restores the terminal's cooked mode and leaves the alternate
// screen. Safe to call more than once.
func (sess *Session) Close() {
	if sess.tty == nil {
		return
	}
	io.WriteString(sess.tty, "\x1b[?25h\x1b[?1049l")
	if sess.oldState != nil {
		term.Restore(int(sess.tty.Fd()), sess.oldState)
	}
	sess.tty.Close()
	sess.tty = nil
}

// Run drives the picker loop: render, read one keystroke, update state,
// repeat until the user selects, edits, or cancels.
func (sess *Session) Run(engine *search.Engine, filterMode search.Scope, initialQuery string, cfg *config.Config, currentHostname, workingDirectory string, nowUnix int64) (Result, error) {
	st, err := newState(engine, filterMode, initialQuery, cfg, currentHostname, workingDirectory)
	if err != nil {
		return Result{}, fmt.Errorf("load initial results: %w", err)
	}

	width, height, err := term.GetSize(int(sess.tty.Fd()))
	if err != nil {
		width, height = 80, 24
	}

	w := bufio.NewWriter(sess.tty)
	reader := newKeyReader(sess.tty)

	for {
		st.draw(w, width, height, nowUnix)
		if err := w.Flush(); err != nil {
			return Result{}, fmt.Errorf("write to terminal: %w", err)
		}

		ev, err := reader.readKey()
		if err != nil {
			if err == io.EOF {
				return Result{Outcome: OutcomeCancelled}, nil
			}
			return Result{}, fmt.Errorf("read key: %w", err)
		}

		switch st.handleKey(ev) {
		case actionSelect:
			cmd := ""
			if r := st.selectedResult(); r != nil {
				cmd = r.Entry.Command
			}
			return Result{Command: cmd, Outcome: OutcomeRun}, nil
		case actionEdit:
			cmd := ""
			if r := st.selectedResult(); r != nil {
				cmd = r.Entry.Command
			}
			return Result{Command: cmd, Outcome: OutcomeEdit}, nil
		case actionCancel:
			return Result{Outcome: OutcomeCancelled}, nil
		}

		if w, h, err := term.GetSize(int(sess.tty.Fd())); err == nil {
			width, height = w, h
		}
	}
}
