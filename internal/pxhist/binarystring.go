// Package pxhist holds the value types shared across the store, importers,
// search engine and recall TUI: BinaryString and Invocation.
package pxhist

import (
	"encoding/json"
	"unicode/utf8"
)

// BinaryString holds either valid UTF-8 text or an arbitrary byte string.
// Shell commands, hostnames, usernames and working directories are not
// guaranteed to be valid UTF-8 (a path can contain any byte except NUL and
// '/'), so pxhist never assumes text and instead carries the distinction
// through storage and JSON round-trips explicitly.
type BinaryString struct {
	text    string
	bytes   []byte
	isBytes bool
}

// NewBinaryString classifies b as Text when it is valid UTF-8, Bytes
// otherwise.
func NewBinaryString(b []byte) BinaryString {
	if utf8.Valid(b) {
		return BinaryString{text: string(b)}
	}
	return BinaryString{bytes: append([]byte(nil), b...), isBytes: true}
}

// TextBinaryString wraps a known-valid string without a UTF-8 re-check.
func TextBinaryString(s string) BinaryString {
	return BinaryString{text: s}
}

// IsBytes reports whether the value is carrying raw (non-UTF8) bytes.
func (b BinaryString) IsBytes() bool {
	return b.isBytes
}

// Bytes returns the raw byte representation, regardless of which variant
// is active.
func (b BinaryString) Bytes() []byte {
	if b.isBytes {
		return b.bytes
	}
	return []byte(b.text)
}

// String returns the text representation. For a Bytes value this is a
// lossy UTF-8 decoding (invalid sequences become U+FFFD); callers that need
// exact bytes must call Bytes instead.
func (b BinaryString) String() string {
	if b.isBytes {
		return stringFromInvalidUTF8(b.bytes)
	}
	return b.text
}

func stringFromInvalidUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	// byte-for-byte lossy decode, matching Rust's String::from_utf8_lossy
	var out []rune
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		out = append(out, r)
		b = b[size:]
	}
	return string(out)
}

// MarshalJSON emits a JSON string for Text values and a JSON array of byte
// integers for Bytes values, matching the untagged enum serialization of
// the BinaryStringHelper this type is translated from.
func (b BinaryString) MarshalJSON() ([]byte, error) {
	if b.isBytes {
		ints := make([]int, len(b.bytes))
		for i, c := range b.bytes {
			ints[i] = int(c)
		}
		return json.Marshal(ints)
	}
	return json.Marshal(b.text)
}

// UnmarshalJSON accepts either a JSON string (Text) or a JSON array of
// byte integers (Bytes), trying string first.
func (b *BinaryString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = BinaryString{text: s}
		return nil
	}

	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return err
	}
	raw := make([]byte, len(ints))
	for i, n := range ints {
		raw[i] = byte(n)
	}
	*b = BinaryString{bytes: raw, isBytes: true}
	return nil
}

// Equal reports whether two BinaryStrings carry the same bytes, regardless
// of which variant each happens to be stored as.
func (b BinaryString) Equal(other BinaryString) bool {
	if b.isBytes == other.isBytes {
		if b.isBytes {
			return string(b.bytes) == string(other.bytes)
		}
		return b.text == other.text
	}
	// mixed representations still compare equal on underlying bytes
	return string(b.Bytes()) == string(other.Bytes())
}
