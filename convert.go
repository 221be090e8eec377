package byteview

import (
	"encoding/hex"
	"unicode/utf8"
)

// DecodeText returns b as a string if the whole of b is valid UTF-8.
// Overlong forms, surrogate halves and truncated sequences are rejected;
// ok is false in that case and no partial result is returned.
func DecodeText(b []byte) (text string, ok bool) {
	if !utf8.Valid(b) {
		return "", false
	}
	return string(b), true
}

// DecodeCString validates b like DecodeText and copies it into a new
// null-terminated buffer.
func DecodeCString(b []byte) (*CString, bool) {
	if !utf8.Valid(b) {
		return nil, false
	}
	buf := make([]byte, len(b)+1)
	copy(buf, b)
	return &CString{buf: buf}, true
}

// HexString renders each byte of b as two lowercase hex digits.
func HexString(b []byte) string {
	return hex.EncodeToString(b)
}

// Validate returns nil if b is valid UTF-8, otherwise an *InvalidUTF8Error.
func Validate(b []byte) error {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return &InvalidUTF8Error{Offset: i}
		}
		i += size
	}
	return nil
}
