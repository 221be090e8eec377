package byteview

import "bytes"

// ByteView holds an immutable view of bytes.
type ByteView struct {
	b []byte
}

// New copies b into a fresh view so later writes to b are not observed.
func New(b []byte) ByteView {
	return ByteView{b: cloneBytes(b)}
}

func FromString(s string) ByteView {
	return ByteView{b: []byte(s)}
}

func (v ByteView) Len() int {
	return len(v.b)
}

// At returns the i'th byte. It panics if i is out of range, like slice indexing.
func (v ByteView) At(i int) byte {
	return v.b[i]
}

// ByteSlice returns a copy to prevent external mutation.
func (v ByteView) ByteSlice() []byte {
	return cloneBytes(v.b)
}

// String returns the raw bytes as a string without validating them.
// Use Text when the contents must be well-formed UTF-8.
func (v ByteView) String() string {
	return string(v.b)
}

func (v ByteView) Equal(other ByteView) bool {
	return bytes.Equal(v.b, other.b)
}

// Text decodes the view as UTF-8. See DecodeText.
func (v ByteView) Text() (string, bool) {
	return DecodeText(v.b)
}

// CString decodes the view as a null-terminated UTF-8 string. See DecodeCString.
func (v ByteView) CString() (*CString, bool) {
	return DecodeCString(v.b)
}

// Hex renders the view as lowercase hexadecimal.
func (v ByteView) Hex() string {
	return HexString(v.b)
}

func (v ByteView) Validate() error {
	return Validate(v.b)
}

// cloneBytes is a small helper used to enforce immutability.
func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
