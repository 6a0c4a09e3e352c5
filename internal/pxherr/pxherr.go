// Package pxherr defines the sentinel errors pxhist callers test for with
// errors.Is. Every other failure is a plain wrapped error; these five are
// the ones calling code branches on.
package pxherr

import "errors"

var (
	// ErrStoreUnavailable means the sqlite store could not be opened,
	// created, or migrated at the configured path.
	ErrStoreUnavailable = errors.New("pxhist: store unavailable")

	// ErrImportMalformed means an importer skipped one or more lines it
	// could not parse. It is never fatal on its own: the importer keeps
	// going and the caller decides whether to surface a warning.
	ErrImportMalformed = errors.New("pxhist: malformed import data")

	// ErrTerminalUnavailable means the recall TUI could not open
	// /dev/tty or enter raw mode.
	ErrTerminalUnavailable = errors.New("pxhist: terminal unavailable")

	// ErrUserCancelled means the user exited the recall TUI (Esc/Ctrl-C)
	// without selecting a command.
	ErrUserCancelled = errors.New("pxhist: cancelled by user")

	// ErrInvalidArgument means a caller passed a value outside a
	// command's accepted domain (bad flag combination, malformed id).
	ErrInvalidArgument = errors.New("pxhist: invalid argument")
)
