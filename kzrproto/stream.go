package kzrproto

import (
	"encoding/binary"
	"math"
)

// A MessageStream is the in-memory buffer every message is encoded
// into and decoded out of. Writes append to the end; reads advance a
// cursor from the front. A MessageStream owns no I/O and is not safe
// for concurrent use.
//
// The zero value is an empty stream ready for use.
type MessageStream struct {
	buf []byte
	off int
}

// WriteBytes appends p to the stream.
func (s *MessageStream) WriteBytes(p []byte) {
	s.buf = append(s.buf, p...)
}

// ReadBytes copies unread bytes into p, advancing the cursor. It
// returns the number of bytes copied, which is less than len(p) only
// when the stream is exhausted first.
func (s *MessageStream) ReadBytes(p []byte) int {
	n := copy(p, s.buf[s.off:])
	s.off += n
	return n
}

// Peek returns the next unread byte without advancing the cursor.
// The second return value is false if the stream is exhausted.
func (s *MessageStream) Peek() (uint8, bool) {
	if s.off >= len(s.buf) {
		return 0, false
	}
	return s.buf[s.off], true
}

// Len returns the number of unread bytes.
func (s *MessageStream) Len() int { return len(s.buf) - s.off }

// Reset discards all contents and rewinds the cursor.
func (s *MessageStream) Reset() {
	s.buf = s.buf[:0]
	s.off = 0
}

// TakeBytes removes and returns the unread contents of the stream,
// leaving it empty.
func (s *MessageStream) TakeBytes() []byte {
	b := s.buf[s.off:]
	s.buf = nil
	s.off = 0
	return b
}

// LoadBytes replaces the contents of the stream with p and rewinds
// the cursor. The stream takes ownership of p.
func (s *MessageStream) LoadBytes(p []byte) {
	s.buf = p
	s.off = 0
}

// bit-packing helpers, named after their field widths. The p
// functions append to the stream and cannot fail except where a
// length prefix would overflow; the g functions consume exactly the
// bytes their counterpart produced, or fail with ErrShortRead.

func puint8(s *MessageStream, v uint8) {
	s.buf = append(s.buf, v)
}

func puint16(s *MessageStream, v uint16) {
	s.buf = binary.LittleEndian.AppendUint16(s.buf, v)
}

func puint32(s *MessageStream, v uint32) {
	s.buf = binary.LittleEndian.AppendUint32(s.buf, v)
}

func puint64(s *MessageStream, v uint64) {
	s.buf = binary.LittleEndian.AppendUint64(s.buf, v)
}

// pbyte writes a 16-bit count followed by the bytes themselves.
func pbyte(s *MessageStream, p []byte) error {
	if len(p) > math.MaxUint16 {
		return ErrLengthOverflow
	}
	puint16(s, uint16(len(p)))
	s.WriteBytes(p)
	return nil
}

func pstring(s *MessageStream, str ...string) error {
	for _, v := range str {
		if err := pbyte(s, []byte(v)); err != nil {
			return err
		}
	}
	return nil
}

// pdata writes a 32-bit count followed by raw bytes. Only Read and
// Write payloads use the wide count.
func pdata(s *MessageStream, p []byte) error {
	if uint64(len(p)) > math.MaxUint32 {
		return ErrLengthOverflow
	}
	puint32(s, uint32(len(p)))
	s.WriteBytes(p)
	return nil
}

func guint8(s *MessageStream) (uint8, error) {
	if s.Len() < 1 {
		return 0, ErrShortRead
	}
	v := s.buf[s.off]
	s.off++
	return v, nil
}

func guint16(s *MessageStream) (uint16, error) {
	if s.Len() < 2 {
		return 0, ErrShortRead
	}
	v := binary.LittleEndian.Uint16(s.buf[s.off:])
	s.off += 2
	return v, nil
}

func guint32(s *MessageStream) (uint32, error) {
	if s.Len() < 4 {
		return 0, ErrShortRead
	}
	v := binary.LittleEndian.Uint32(s.buf[s.off:])
	s.off += 4
	return v, nil
}

func guint64(s *MessageStream) (uint64, error) {
	if s.Len() < 8 {
		return 0, ErrShortRead
	}
	v := binary.LittleEndian.Uint64(s.buf[s.off:])
	s.off += 8
	return v, nil
}

// gbyte reads a 16-bit count and then that many bytes. The
// destination is sized before the copy, so a count describing more
// data than the stream holds fails cleanly with ErrShortRead.
func gbyte(s *MessageStream) ([]byte, error) {
	n, err := guint16(s)
	if err != nil {
		return nil, err
	}
	if s.Len() < int(n) {
		return nil, ErrShortRead
	}
	p := make([]byte, n)
	s.ReadBytes(p)
	return p, nil
}

func gstring(s *MessageStream) (string, error) {
	p, err := gbyte(s)
	if err != nil {
		return "", err
	}
	return string(p), nil
}

func gdata(s *MessageStream) ([]byte, error) {
	n, err := guint32(s)
	if err != nil {
		return nil, err
	}
	if uint64(s.Len()) < uint64(n) {
		return nil, ErrShortRead
	}
	p := make([]byte, n)
	s.ReadBytes(p)
	return p, nil
}
