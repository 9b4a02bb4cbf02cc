package kzrproto

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameLengthPrefix(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, &Tversion{Msize: 8192, Version: "9P2000"}))

	b := buf.Bytes()
	assert.Equal(t, uint32(len(b)), binary.LittleEndian.Uint32(b[:4]),
		"length field covers the whole frame, itself included")
	assert.Equal(t, []byte{0x13, 0x00, 0x00, 0x00}, b[:4])
	assert.Equal(t, 19, len(b))
}

// Two concatenated frames come back in order with no bytes between
// them.
func TestFramerRecovery(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, &Tclunk{Tag: 7, Fid: 0x42}))
	require.NoError(t, WriteFrame(&buf, &Tstat{Tag: 8, Fid: 0x42}))

	s, err := ReadFrame(&buf)
	require.NoError(t, err)
	m, err := DecodeRequest(s)
	require.NoError(t, err)
	assert.Equal(t, &Tclunk{Tag: 7, Fid: 0x42}, m)
	assert.Equal(t, 0, s.Len())

	s, err = ReadFrame(&buf)
	require.NoError(t, err)
	m, err = DecodeRequest(s)
	require.NoError(t, err)
	assert.Equal(t, &Tstat{Tag: 8, Fid: 0x42}, m)

	_, err = ReadFrame(&buf)
	assert.Equal(t, io.EOF, err)
}

// Outer frame lengths for the canonical short messages.
func TestFrameTotals(t *testing.T) {
	cases := []struct {
		m     Msg
		total int
	}{
		{&Tclunk{Tag: 0x0007, Fid: 0x42}, 11},
		{&Rerror{Tag: 0x0003, Ename: "perm"}, 13},
		{&Rread{Tag: 1, Data: []byte{}}, 11},
		{&Rwalk{Tag: 2, Wqid: []Qid{{Type: 0x80, Version: 1, Path: 0x1234}}}, 22},
	}
	for _, tt := range cases {
		var buf bytes.Buffer
		require.NoError(t, WriteFrame(&buf, tt.m))
		b := buf.Bytes()
		assert.Equal(t, tt.total, len(b))
		assert.Equal(t, uint32(tt.total), binary.LittleEndian.Uint32(b[:4]))
	}
}

func TestReadFrameMalformed(t *testing.T) {
	// total below the size of the length field itself
	r := bytes.NewReader([]byte{0x03, 0x00, 0x00, 0x00})
	_, err := ReadFrame(r)
	assert.ErrorIs(t, err, ErrMalformedFrame)

	// an empty frame (length only) is legal at this layer; the
	// variant decoder rejects it
	r = bytes.NewReader([]byte{0x04, 0x00, 0x00, 0x00})
	s, err := ReadFrame(r)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	_, err = DecodeRequest(s)
	assert.ErrorIs(t, err, ErrShortRead)
}

func TestReadFrameShort(t *testing.T) {
	// stream ends inside the length field
	r := bytes.NewReader([]byte{0x0B, 0x00})
	_, err := ReadFrame(r)
	assert.ErrorIs(t, err, ErrShortRead)

	// stream ends inside the body
	r = bytes.NewReader([]byte{0x0B, 0x00, 0x00, 0x00, 0x78, 0x07})
	_, err = ReadFrame(r)
	assert.ErrorIs(t, err, ErrShortRead)
}
