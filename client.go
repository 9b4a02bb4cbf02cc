package kzr

import (
	"github.com/pkg/errors"

	"aqwari.net/net/kzr/internal/pool"
	"aqwari.net/net/kzr/kzrproto"
)

// An Error is a protocol-level failure reported by the server in an
// Rerror reply.
type Error string

func (e Error) Error() string { return string(e) }

// ErrVersionRefused is returned by Version when the server answers
// "unknown"; no further operation will succeed on the connection
// until negotiation is retried.
var ErrVersionRefused = errors.New("server refused protocol version")

// A Client issues 9P requests on a connection and matches up the
// replies. Calls are synchronous: one request is outstanding at a
// time, so replies cannot arrive out of order. The zero MaxSize
// proposes DefaultMsize during version negotiation.
type Client struct {
	// The maximum message size to propose in Tversion. The server
	// may answer with a smaller one, which is then honored.
	MaxSize uint32

	conn  *Conn
	tags  *pool.Pool
	fids  *pool.Pool
	msize uint32
}

// NewClient creates a Client on an established connection. The
// caller should negotiate with Version before issuing any other
// request.
func NewClient(conn *Conn) *Client {
	return &Client{
		conn: conn,
		// NoTag and NoFid are sentinels; keep them out of the pools.
		tags: pool.New(uint32(kzrproto.NoTag)),
		fids: pool.New(kzrproto.NoFid),
	}
}

// NewFid allocates a fid that is not in use by this client. The fid
// becomes meaningful to the server once established by Attach or
// Walk.
func (c *Client) NewFid() (uint32, error) {
	fid, ok := c.fids.Get()
	if !ok {
		return 0, errors.New("fids exhausted")
	}
	return fid, nil
}

// PutFid returns a fid to the pool. Call it after the fid has been
// clunked or removed.
func (c *Client) PutFid(fid uint32) { c.fids.Free(fid) }

// Version negotiates the protocol version and message size. It must
// be the first call on a connection.
func (c *Client) Version() (*kzrproto.Rversion, error) {
	msize := c.MaxSize
	if msize == 0 {
		msize = kzrproto.DefaultMsize
	}
	req := &kzrproto.Tversion{Msize: msize, Version: Version9P2000}
	if err := c.conn.WriteRequest(req); err != nil {
		return nil, err
	}
	resp, err := c.conn.ReadResponse()
	if err != nil {
		return nil, err
	}
	rv, ok := resp.(*kzrproto.Rversion)
	if !ok {
		return nil, errors.Errorf("unexpected reply %T to Tversion", resp)
	}
	if rv.Version == VersionUnknown {
		return rv, ErrVersionRefused
	}
	if rv.Msize > msize {
		return rv, errors.Errorf("server msize %d exceeds proposal %d", rv.Msize, msize)
	}
	c.msize = rv.Msize
	return rv, nil
}

// call sends req and returns the matching reply. An Rerror reply is
// surfaced as an Error.
func (c *Client) call(req kzrproto.Request, tag uint16) (kzrproto.Response, error) {
	if err := c.conn.WriteRequest(req); err != nil {
		return nil, err
	}
	resp, err := c.conn.ReadResponse()
	if err != nil {
		return nil, err
	}
	if got := kzrproto.TagOf(resp); got != tag {
		return nil, errors.Errorf("reply tag %#x does not match request tag %#x", got, tag)
	}
	if rerr, ok := resp.(*kzrproto.Rerror); ok {
		return nil, Error(rerr.Ename)
	}
	return resp, nil
}

func (c *Client) tag() (uint16, error) {
	t, ok := c.tags.Get()
	if !ok {
		return 0, errors.New("tags exhausted")
	}
	return uint16(t), nil
}

// Auth establishes an authentication file on afid.
func (c *Client) Auth(afid uint32, uname, aname string) (*kzrproto.Rauth, error) {
	tag, err := c.tag()
	if err != nil {
		return nil, err
	}
	defer c.tags.Free(uint32(tag))
	resp, err := c.call(&kzrproto.Tauth{Tag: tag, Afid: afid, Uname: uname, Aname: aname}, tag)
	if err != nil {
		return nil, err
	}
	r, ok := resp.(*kzrproto.Rauth)
	if !ok {
		return nil, errors.Errorf("unexpected reply %T to Tauth", resp)
	}
	return r, nil
}

// Attach introduces the user to the server, establishing fid as the
// root of the requested file tree. Clients that do not authenticate
// pass NoFid for afid.
func (c *Client) Attach(fid, afid uint32, uname, aname string) (*kzrproto.Rattach, error) {
	tag, err := c.tag()
	if err != nil {
		return nil, err
	}
	defer c.tags.Free(uint32(tag))
	resp, err := c.call(&kzrproto.Tattach{Tag: tag, Fid: fid, Afid: afid, Uname: uname, Aname: aname}, tag)
	if err != nil {
		return nil, err
	}
	r, ok := resp.(*kzrproto.Rattach)
	if !ok {
		return nil, errors.Errorf("unexpected reply %T to Tattach", resp)
	}
	return r, nil
}

// Walk descends the hierarchy from fid along wname, associating
// newfid with the result. With no names, Walk clones fid to newfid.
func (c *Client) Walk(fid, newfid uint32, wname ...string) (*kzrproto.Rwalk, error) {
	tag, err := c.tag()
	if err != nil {
		return nil, err
	}
	defer c.tags.Free(uint32(tag))
	resp, err := c.call(&kzrproto.Twalk{Tag: tag, Fid: fid, Newfid: newfid, Wname: wname}, tag)
	if err != nil {
		return nil, err
	}
	r, ok := resp.(*kzrproto.Rwalk)
	if !ok {
		return nil, errors.Errorf("unexpected reply %T to Twalk", resp)
	}
	return r, nil
}

// Open prepares fid for I/O.
func (c *Client) Open(fid uint32, mode uint8) (*kzrproto.Ropen, error) {
	tag, err := c.tag()
	if err != nil {
		return nil, err
	}
	defer c.tags.Free(uint32(tag))
	resp, err := c.call(&kzrproto.Topen{Tag: tag, Fid: fid, Mode: mode}, tag)
	if err != nil {
		return nil, err
	}
	r, ok := resp.(*kzrproto.Ropen)
	if !ok {
		return nil, errors.Errorf("unexpected reply %T to Topen", resp)
	}
	return r, nil
}

// Create creates name in the directory fid represents, then opens it
// with mode.
func (c *Client) Create(fid uint32, name string, perm uint32, mode uint8) (*kzrproto.Rcreate, error) {
	tag, err := c.tag()
	if err != nil {
		return nil, err
	}
	defer c.tags.Free(uint32(tag))
	resp, err := c.call(&kzrproto.Tcreate{Tag: tag, Fid: fid, Name: name, Perm: perm, Mode: mode}, tag)
	if err != nil {
		return nil, err
	}
	r, ok := resp.(*kzrproto.Rcreate)
	if !ok {
		return nil, errors.Errorf("unexpected reply %T to Tcreate", resp)
	}
	return r, nil
}

// Read returns up to count bytes from fid starting at offset.
func (c *Client) Read(fid uint32, offset uint64, count uint32) ([]byte, error) {
	tag, err := c.tag()
	if err != nil {
		return nil, err
	}
	defer c.tags.Free(uint32(tag))
	resp, err := c.call(&kzrproto.Tread{Tag: tag, Fid: fid, Offset: offset, Count: count}, tag)
	if err != nil {
		return nil, err
	}
	r, ok := resp.(*kzrproto.Rread)
	if !ok {
		return nil, errors.Errorf("unexpected reply %T to Tread", resp)
	}
	return r.Data, nil
}

// Write writes data to fid at offset and returns the number of
// bytes the server accepted.
func (c *Client) Write(fid uint32, offset uint64, data []byte) (uint32, error) {
	tag, err := c.tag()
	if err != nil {
		return 0, err
	}
	defer c.tags.Free(uint32(tag))
	resp, err := c.call(&kzrproto.Twrite{Tag: tag, Fid: fid, Offset: offset, Data: data}, tag)
	if err != nil {
		return 0, err
	}
	r, ok := resp.(*kzrproto.Rwrite)
	if !ok {
		return 0, errors.Errorf("unexpected reply %T to Twrite", resp)
	}
	return r.Count, nil
}

// Clunk tells the server fid is no longer needed.
func (c *Client) Clunk(fid uint32) error {
	tag, err := c.tag()
	if err != nil {
		return err
	}
	defer c.tags.Free(uint32(tag))
	resp, err := c.call(&kzrproto.Tclunk{Tag: tag, Fid: fid}, tag)
	if err != nil {
		return err
	}
	if _, ok := resp.(*kzrproto.Rclunk); !ok {
		return errors.Errorf("unexpected reply %T to Tclunk", resp)
	}
	return nil
}

// Remove clunks fid and removes the file it represents.
func (c *Client) Remove(fid uint32) error {
	tag, err := c.tag()
	if err != nil {
		return err
	}
	defer c.tags.Free(uint32(tag))
	resp, err := c.call(&kzrproto.Tremove{Tag: tag, Fid: fid}, tag)
	if err != nil {
		return err
	}
	if _, ok := resp.(*kzrproto.Rremove); !ok {
		return errors.Errorf("unexpected reply %T to Tremove", resp)
	}
	return nil
}

// Stat returns the metadata record for fid.
func (c *Client) Stat(fid uint32) (kzrproto.Stat, error) {
	tag, err := c.tag()
	if err != nil {
		return kzrproto.Stat{}, err
	}
	defer c.tags.Free(uint32(tag))
	resp, err := c.call(&kzrproto.Tstat{Tag: tag, Fid: fid}, tag)
	if err != nil {
		return kzrproto.Stat{}, err
	}
	r, ok := resp.(*kzrproto.Rstat)
	if !ok {
		return kzrproto.Stat{}, errors.Errorf("unexpected reply %T to Tstat", resp)
	}
	return r.Stat, nil
}

// Wstat rewrites the metadata record for fid.
func (c *Client) Wstat(fid uint32, stat kzrproto.Stat) error {
	tag, err := c.tag()
	if err != nil {
		return err
	}
	defer c.tags.Free(uint32(tag))
	resp, err := c.call(&kzrproto.Twstat{Tag: tag, Fid: fid, Stat: stat}, tag)
	if err != nil {
		return err
	}
	if _, ok := resp.(*kzrproto.Rwstat); !ok {
		return errors.Errorf("unexpected reply %T to Twstat", resp)
	}
	return nil
}

// Flush asks the server to purge the pending response to oldtag. The
// core reports the flush; it does not cancel work itself.
func (c *Client) Flush(oldtag uint16) error {
	tag, err := c.tag()
	if err != nil {
		return err
	}
	defer c.tags.Free(uint32(tag))
	resp, err := c.call(&kzrproto.Tflush{Tag: tag, Oldtag: oldtag}, tag)
	if err != nil {
		return err
	}
	if _, ok := resp.(*kzrproto.Rflush); !ok {
		return errors.Errorf("unexpected reply %T to Tflush", resp)
	}
	return nil
}

// Close closes the client's connection.
func (c *Client) Close() error { return c.conn.Close() }
