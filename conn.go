package kzr

import (
	"io"

	"aqwari.net/net/kzr/kzrproto"
)

// A Conn is a bidirectional connection capable of sending and
// receiving framed 9P messages. It owns the framing discipline: one
// complete message per frame, no partial frames interleaved, no
// bytes left over between messages. A Conn is not safe for
// concurrent use; the loop above it serializes access.
type Conn struct {
	rwc io.ReadWriteCloser
}

// NewConn wraps an established transport. The Conn assumes ownership
// of rwc; Close closes it.
func NewConn(rwc io.ReadWriteCloser) *Conn {
	return &Conn{rwc: rwc}
}

// ReadRequest reads one frame and decodes it as a T-message. Bytes
// left in the frame after a complete decode make the frame
// malformed.
func (c *Conn) ReadRequest() (kzrproto.Request, error) {
	s, err := kzrproto.ReadFrame(c.rwc)
	if err != nil {
		return nil, err
	}
	req, err := kzrproto.DecodeRequest(s)
	if err != nil {
		return nil, err
	}
	if s.Len() != 0 {
		return nil, kzrproto.ErrMalformedFrame
	}
	return req, nil
}

// ReadResponse reads one frame and decodes it as an R-message.
func (c *Conn) ReadResponse() (kzrproto.Response, error) {
	s, err := kzrproto.ReadFrame(c.rwc)
	if err != nil {
		return nil, err
	}
	resp, err := kzrproto.DecodeResponse(s)
	if err != nil {
		return nil, err
	}
	if s.Len() != 0 {
		return nil, kzrproto.ErrMalformedFrame
	}
	return resp, nil
}

// ReadMsg reads one frame and decodes a message of either direction,
// for peers that accept both.
func (c *Conn) ReadMsg() (kzrproto.Msg, error) {
	s, err := kzrproto.ReadFrame(c.rwc)
	if err != nil {
		return nil, err
	}
	m, err := kzrproto.DecodeMsg(s)
	if err != nil {
		return nil, err
	}
	if s.Len() != 0 {
		return nil, kzrproto.ErrMalformedFrame
	}
	return m, nil
}

// WriteRequest frames and writes a T-message.
func (c *Conn) WriteRequest(req kzrproto.Request) error {
	return kzrproto.WriteFrame(c.rwc, req)
}

// WriteResponse frames and writes an R-message.
func (c *Conn) WriteResponse(resp kzrproto.Response) error {
	return kzrproto.WriteFrame(c.rwc, resp)
}

// Close closes the underlying transport.
func (c *Conn) Close() error {
	return c.rwc.Close()
}
