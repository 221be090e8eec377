package byteview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCopiesInput(t *testing.T) {
	src := []byte("abc")
	v := New(src)
	src[0] = 'x'

	assert.Equal(t, "abc", v.String())
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, byte('a'), v.At(0))
}

func TestByteSliceIsCopy(t *testing.T) {
	v := FromString("abc")
	b := v.ByteSlice()
	b[0] = 'x'

	assert.Equal(t, "abc", v.String())
}

func TestAtOutOfRangePanics(t *testing.T) {
	v := FromString("a")
	assert.Panics(t, func() { v.At(1) })
}

func TestEqual(t *testing.T) {
	assert.True(t, FromString("hi").Equal(New([]byte{0x68, 0x69})))
	assert.False(t, FromString("hi").Equal(FromString("ho")))
	assert.True(t, ByteView{}.Equal(New(nil)))
}

func TestByteViewConversions(t *testing.T) {
	v := New([]byte{0x68, 0x69})

	text, ok := v.Text()
	require.True(t, ok)
	assert.Equal(t, "hi", text)

	cs, ok := v.CString()
	require.True(t, ok)
	assert.Equal(t, []byte{0x68, 0x69, 0x00}, cs.Terminated())

	assert.Equal(t, "6869", v.Hex())
	assert.NoError(t, v.Validate())
}

func TestZeroValueByteView(t *testing.T) {
	var v ByteView

	text, ok := v.Text()
	require.True(t, ok)
	assert.Empty(t, text)
	assert.Empty(t, v.Hex())

	cs, ok := v.CString()
	require.True(t, ok)
	assert.Equal(t, 0, cs.Len())
	assert.Equal(t, []byte{0x00}, cs.Terminated())
}
