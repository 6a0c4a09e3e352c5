package recall

import (
	"bufio"
	"io"
)

// keyCode identifies a decoded keystroke's class; keyChar additionally
// carries the rune in keyEvent.char.
type keyCode int

const (
	keyNone keyCode = iota
	keyChar
	keyEnter
	keyTab
	keyEsc
	keyBackspace
	keyDelete
	keyUp
	keyDown
	keyLeft
	keyRight
	keyHome
	keyEnd
	keyPageUp
	keyPageDown
)

// keyEvent is one decoded keystroke, with the control/alt modifiers a
// single raw byte read can carry: a C0 control byte implies Ctrl, and a
// leading ESC not itself forming a recognized escape sequence implies
// Alt on the character that follows.
type keyEvent struct {
	key  keyCode
	char rune
	ctrl bool
	alt  bool
}

// keyReader decodes a raw terminal byte stream into keyEvents, recognizing
// the small set of ANSI CSI sequences (arrow keys, Home/End, PageUp/Down)
// that original_source's crossterm-backed tui.rs receives pre-decoded;
// since the standard library doesn't parse terminal escape sequences,
// pxhist decodes them itself from the raw bytes read off /dev/tty.
type keyReader struct {
	r *bufio.Reader
}

func newKeyReader(r io.Reader) *keyReader {
	return &keyReader{r: bufio.NewReader(r)}
}

// readKey blocks until one keystroke is available and returns its
// decoded form.
func (k *keyReader) readKey() (keyEvent, error) {
	b, err := k.r.ReadByte()
	if err != nil {
		return keyEvent{}, err
	}

	switch {
	case b == '\r' || b == '\n':
		return keyEvent{key: keyEnter}, nil
	case b == '\t':
		return keyEvent{key: keyTab}, nil
	case b == 0x7f || b == 0x08:
		return keyEvent{key: keyBackspace}, nil
	case b == 0x1b:
		return k.readEscapeSequence()
	case b < 0x20:
		// C0 control byte: Ctrl-<letter>, where the letter is byte+0x60.
		return keyEvent{key: keyChar, char: rune(b + 0x60), ctrl: true}, nil
	default:
		r, err := k.readRune(b)
		if err != nil {
			return keyEvent{}, err
		}
		return keyEvent{key: keyChar, char: r}, nil
	}
}

// readRune decodes the UTF-8 rune starting at the already-read leading
// byte first, reading any required continuation bytes.
func (k *keyReader) readRune(first byte) (rune, error) {
	n := utf8ContinuationBytes(first)
	if n == 0 {
		return rune(first), nil
	}
	buf := make([]byte, 1+n)
	buf[0] = first
	for i := 0; i < n; i++ {
		b, err := k.r.ReadByte()
		if err != nil {
			return 0, err
		}
		buf[1+i] = b
	}
	r := decodeUTF8(buf)
	return r, nil
}

func utf8ContinuationBytes(first byte) int {
	switch {
	case first&0x80 == 0x00:
		return 0
	case first&0xe0 == 0xc0:
		return 1
	case first&0xf0 == 0xe0:
		return 2
	case first&0xf8 == 0xf0:
		return 3
	default:
		return 0
	}
}

func decodeUTF8(buf []byte) rune {
	r := []rune(string(buf))
	if len(r) == 0 {
		return 0xfffd
	}
	return r[0]
}

// readEscapeSequence is called after an ESC byte has already been
// consumed. A bare ESC (nothing follows within the read) is the Escape
// key; "ESC [ ..." is a CSI sequence; anything else is Alt-<char>.
func (k *keyReader) readEscapeSequence() (keyEvent, error) {
	next, err := k.r.Peek(1)
	if err != nil || len(next) == 0 {
		return keyEvent{key: keyEsc}, nil
	}

	if next[0] != '[' {
		b, _ := k.r.ReadByte()
		r, err := k.readRune(b)
		if err != nil {
			return keyEvent{}, err
		}
		return keyEvent{key: keyChar, char: r, alt: true}, nil
	}

	k.r.ReadByte() // consume '['

	var params []byte
	for {
		b, err := k.r.ReadByte()
		if err != nil {
			return keyEvent{}, err
		}
		if b >= '0' && b <= '9' || b == ';' {
			params = append(params, b)
			continue
		}
		return csiKeyEvent(b, params), nil
	}
}

func csiKeyEvent(final byte, params []byte) keyEvent {
	switch final {
	case 'A':
		return keyEvent{key: keyUp}
	case 'B':
		return keyEvent{key: keyDown}
	case 'C':
		return keyEvent{key: keyRight}
	case 'D':
		return keyEvent{key: keyLeft}
	case 'H':
		return keyEvent{key: keyHome}
	case 'F':
		return keyEvent{key: keyEnd}
	case '~':
		switch string(params) {
		case "1", "7":
			return keyEvent{key: keyHome}
		case "3":
			return keyEvent{key: keyDelete}
		case "4", "8":
			return keyEvent{key: keyEnd}
		case "5":
			return keyEvent{key: keyPageUp}
		case "6":
			return keyEvent{key: keyPageDown}
		}
	}
	return keyEvent{key: keyNone}
}
