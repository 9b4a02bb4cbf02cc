package kzrproto

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleStat = Stat{
	Type:   1,
	Dev:    31,
	Qid:    Qid{Type: 0x80, Version: 7, Path: 0xabcdef},
	Mode:   0755,
	Atime:  1111,
	Mtime:  2222,
	Length: 4096,
	Name:   "frogs.txt",
	Uid:    "root",
	Gid:    "wheel",
	Muid:   "admin",
}

// statFixed is the size of a Stat's fixed-width fields, not counting
// its own leading count.
const statFixed = 2 + 4 + QidLen + 4 + 4 + 4 + 8

func TestStatRecordLayout(t *testing.T) {
	var s MessageStream
	require.NoError(t, pstat(&s, sampleStat))
	b := s.TakeBytes()

	// the leading count covers everything after itself
	size := binary.LittleEndian.Uint16(b[:2])
	assert.Equal(t, int(size), len(b)-2)

	wantStrings := 4*2 + len("frogs.txt") + len("root") + len("wheel") + len("admin")
	assert.Equal(t, 2+statFixed+wantStrings, len(b))

	s.LoadBytes(b)
	got, err := gstat(&s)
	require.NoError(t, err)
	assert.Equal(t, sampleStat, got)
	assert.Equal(t, 0, s.Len())
}

// An Rstat wraps the encoded record, own count included, in one more
// 16-bit length. A Twstat embeds the record directly.
func TestStatDoubleFraming(t *testing.T) {
	b := encodeMsg(t, &Rstat{Tag: 6, Stat: sampleStat})

	wrapper := binary.LittleEndian.Uint16(b[3:5])
	assert.Equal(t, int(wrapper), len(b)-5, "wrapper count covers the whole record")

	inner := binary.LittleEndian.Uint16(b[5:7])
	assert.Equal(t, int(inner), len(b)-7, "record count covers the bytes after itself")
	assert.Equal(t, wrapper, inner+2)

	var s MessageStream
	s.LoadBytes(b)
	m, err := DecodeResponse(&s)
	require.NoError(t, err)
	assert.Equal(t, sampleStat, m.(*Rstat).Stat)

	// single wrap on the request side: fid, then the record's own count
	b = encodeMsg(t, &Twstat{Tag: 7, Fid: 3, Stat: sampleStat})
	size := binary.LittleEndian.Uint16(b[7:9])
	assert.Equal(t, int(size), len(b)-9)
}

func TestStatTruncated(t *testing.T) {
	var s MessageStream
	require.NoError(t, pstat(&s, sampleStat))
	b := s.TakeBytes()

	s.LoadBytes(b[:len(b)-3])
	_, err := gstat(&s)
	assert.ErrorIs(t, err, ErrShortRead)

	// a count that disagrees with the fields that follow
	b[0]++
	s.LoadBytes(b)
	_, err = gstat(&s)
	assert.ErrorIs(t, err, ErrMalformedFrame)
}
