package kzrproto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamReadWrite(t *testing.T) {
	var s MessageStream

	s.WriteBytes([]byte("hello"))
	assert.Equal(t, 5, s.Len())

	p := make([]byte, 3)
	assert.Equal(t, 3, s.ReadBytes(p))
	assert.Equal(t, "hel", string(p))
	assert.Equal(t, 2, s.Len())

	b, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, uint8('l'), b)
	assert.Equal(t, 2, s.Len(), "peek must not advance the cursor")

	assert.Equal(t, []byte("lo"), s.TakeBytes())
	assert.Equal(t, 0, s.Len())

	_, ok = s.Peek()
	assert.False(t, ok)

	s.LoadBytes([]byte{0x42})
	b, ok = s.Peek()
	require.True(t, ok)
	assert.Equal(t, uint8(0x42), b)

	s.Reset()
	assert.Equal(t, 0, s.Len())
}

func TestStreamShortRead(t *testing.T) {
	var s MessageStream
	s.WriteBytes([]byte{1, 2, 3, 4, 5, 6, 7})

	p := make([]byte, 10)
	assert.Equal(t, 7, s.ReadBytes(p))
	assert.Equal(t, 0, s.ReadBytes(p))
}

// Every multi-byte integer on the wire is little-endian.
func TestEndianness(t *testing.T) {
	var s MessageStream

	puint16(&s, 0x1234)
	assert.Equal(t, []byte{0x34, 0x12}, s.TakeBytes())

	puint32(&s, 0xdeadbeef)
	assert.Equal(t, []byte{0xef, 0xbe, 0xad, 0xde}, s.TakeBytes())

	puint64(&s, 0x0102030405060708)
	assert.Equal(t, []byte{8, 7, 6, 5, 4, 3, 2, 1}, s.TakeBytes())
}

func TestPrimitiveRoundTrip(t *testing.T) {
	var s MessageStream

	puint8(&s, 0xab)
	puint16(&s, 0xcdef)
	puint32(&s, 0x01020304)
	puint64(&s, ^uint64(0))
	require.NoError(t, pstring(&s, "georgia", ""))
	require.NoError(t, pdata(&s, []byte{9, 8, 7}))

	v8, err := guint8(&s)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xab), v8)

	v16, err := guint16(&s)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xcdef), v16)

	v32, err := guint32(&s)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), v32)

	v64, err := guint64(&s)
	require.NoError(t, err)
	assert.Equal(t, ^uint64(0), v64)

	str, err := gstring(&s)
	require.NoError(t, err)
	assert.Equal(t, "georgia", str)

	str, err = gstring(&s)
	require.NoError(t, err)
	assert.Equal(t, "", str)

	data, err := gdata(&s)
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 8, 7}, data)

	assert.Equal(t, 0, s.Len(), "decode must consume exactly what encode produced")
}

func TestDecodeExhausted(t *testing.T) {
	var s MessageStream
	s.LoadBytes([]byte{0x01})

	_, err := guint16(&s)
	assert.ErrorIs(t, err, ErrShortRead)

	// a string whose count outruns the stream
	s.LoadBytes([]byte{0x05, 0x00, 'a', 'b'})
	_, err = gstring(&s)
	assert.ErrorIs(t, err, ErrShortRead)

	s.LoadBytes(nil)
	_, err = guint8(&s)
	assert.ErrorIs(t, err, ErrShortRead)
}

func TestStringOverflow(t *testing.T) {
	var s MessageStream
	long := strings.Repeat("x", 1<<16)
	assert.ErrorIs(t, pstring(&s, long), ErrLengthOverflow)
}
