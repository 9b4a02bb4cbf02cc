package kzrproto

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

// Framing: every message on a stream is preceded by a four-byte
// little-endian length covering the length field itself, the header,
// and the body. The framer never interprets bytes past the length;
// opcode dispatch belongs to the variant layer.

// WriteFrame encodes m and writes it to w as one length-prefixed
// frame. The write is a single Write call, so a transport whose
// writes are atomic will never interleave partial frames.
func WriteFrame(w io.Writer, m Msg) error {
	var body MessageStream
	if err := Encode(&body, m); err != nil {
		return err
	}
	b := body.TakeBytes()
	if uint64(len(b))+4 > math.MaxUint32 {
		return ErrLengthOverflow
	}
	var frame MessageStream
	puint32(&frame, uint32(len(b))+4)
	frame.WriteBytes(b)
	if _, err := w.Write(frame.TakeBytes()); err != nil {
		return errors.Wrap(err, "write frame")
	}
	return nil
}

// ReadFrame reads one frame from r and returns its contents, length
// field stripped, loaded into a MessageStream. A clean EOF before
// the first byte is returned as io.EOF; an EOF anywhere inside the
// frame is ErrShortRead. A length below 4 is ErrMalformedFrame.
func ReadFrame(r io.Reader) (*MessageStream, error) {
	var szbuf [4]byte
	if _, err := io.ReadFull(r, szbuf[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		if err == io.ErrUnexpectedEOF {
			return nil, ErrShortRead
		}
		return nil, errors.Wrap(err, "read frame size")
	}
	total := binary.LittleEndian.Uint32(szbuf[:])
	if total < 4 {
		return nil, ErrMalformedFrame
	}
	buf := make([]byte, total-4)
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrShortRead
		}
		return nil, errors.Wrap(err, "read frame body")
	}
	s := new(MessageStream)
	s.LoadBytes(buf)
	return s, nil
}
