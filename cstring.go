package byteview

import "unsafe"

// CString is decoded UTF-8 text stored with a trailing zero byte.
//
// The views returned by Ptr, Bytes, Terminated and String share the
// CString's backing store. They are valid only while the CString is
// reachable and must not be modified.
type CString struct {
	buf []byte // content followed by a single 0x00
}

// Len returns the content length, excluding the terminator.
func (c *CString) Len() int {
	return len(c.buf) - 1
}

// Ptr returns a pointer to the first byte of the terminated buffer.
// For empty text it points at the terminator.
func (c *CString) Ptr() *byte {
	return &c.buf[0]
}

func (c *CString) Bytes() []byte {
	return c.buf[:c.Len():c.Len()]
}

// Terminated returns the content including the trailing zero byte.
func (c *CString) Terminated() []byte {
	return c.buf[:len(c.buf):len(c.buf)]
}

// String returns the content as a string without copying.
func (c *CString) String() string {
	return unsafe.String(&c.buf[0], c.Len())
}
