package kzr

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"aqwari.net/net/kzr/kzrproto"
)

// ramFS answers a fixed tree: every walk succeeds, reads return a
// canned greeting, and remove is always denied.
type ramFS struct {
	Unhandled
	root kzrproto.Qid
	stat kzrproto.Stat
}

func (fs *ramFS) Version(m *kzrproto.Tversion) kzrproto.Response {
	return Negotiate(m, 0)
}

func (fs *ramFS) Attach(m *kzrproto.Tattach) kzrproto.Response {
	return &kzrproto.Rattach{Tag: m.Tag, Qid: fs.root}
}

func (fs *ramFS) Walk(m *kzrproto.Twalk) kzrproto.Response {
	wqid := make([]kzrproto.Qid, len(m.Wname))
	for i := range wqid {
		wqid[i] = kzrproto.Qid{Type: kzrproto.QTFILE, Path: uint64(i + 1)}
	}
	return &kzrproto.Rwalk{Tag: m.Tag, Wqid: wqid}
}

func (fs *ramFS) Open(m *kzrproto.Topen) kzrproto.Response {
	return &kzrproto.Ropen{Tag: m.Tag, Qid: fs.root, Iounit: 0}
}

func (fs *ramFS) Read(m *kzrproto.Tread) kzrproto.Response {
	data := []byte("hello, world!")
	if uint32(len(data)) > m.Count {
		data = data[:m.Count]
	}
	return &kzrproto.Rread{Tag: m.Tag, Data: data}
}

func (fs *ramFS) Write(m *kzrproto.Twrite) kzrproto.Response {
	return &kzrproto.Rwrite{Tag: m.Tag, Count: uint32(len(m.Data))}
}

func (fs *ramFS) Clunk(m *kzrproto.Tclunk) kzrproto.Response {
	return &kzrproto.Rclunk{Tag: m.Tag}
}

func (fs *ramFS) Remove(m *kzrproto.Tremove) kzrproto.Response {
	return &kzrproto.Rerror{Tag: m.Tag, Ename: "permission denied"}
}

func (fs *ramFS) Stat(m *kzrproto.Tstat) kzrproto.Response {
	return &kzrproto.Rstat{Tag: m.Tag, Stat: fs.stat}
}

func (fs *ramFS) Wstat(m *kzrproto.Twstat) kzrproto.Response {
	return &kzrproto.Rwstat{Tag: m.Tag}
}

func (fs *ramFS) Flush(m *kzrproto.Tflush) kzrproto.Response {
	return &kzrproto.Rflush{Tag: m.Tag}
}

func TestClientSession(t *testing.T) {
	fs := &ramFS{
		root: kzrproto.Qid{Type: kzrproto.QTDIR, Path: 1},
		stat: kzrproto.Stat{
			Qid:  kzrproto.Qid{Type: kzrproto.QTFILE, Path: 2},
			Mode: 0644, Length: 13,
			Name: "greeting", Uid: "glenda", Gid: "sys", Muid: "glenda",
		},
	}
	sc, cc := net.Pipe()
	srv := NewServer(NewConn(sc), fs)

	var g errgroup.Group
	g.Go(srv.Serve)

	c := NewClient(NewConn(cc))

	rv, err := c.Version()
	require.NoError(t, err)
	assert.Equal(t, Version9P2000, rv.Version)
	assert.Equal(t, kzrproto.DefaultMsize, rv.Msize)

	root, err := c.NewFid()
	require.NoError(t, err)
	ra, err := c.Attach(root, kzrproto.NoFid, "glenda", "")
	require.NoError(t, err)
	assert.Equal(t, fs.root, ra.Qid)

	fid, err := c.NewFid()
	require.NoError(t, err)
	rw, err := c.Walk(root, fid, "usr", "glenda")
	require.NoError(t, err)
	assert.Len(t, rw.Wqid, 2)

	_, err = c.Open(fid, 0)
	require.NoError(t, err)

	data, err := c.Read(fid, 0, 128)
	require.NoError(t, err)
	assert.Equal(t, "hello, world!", string(data))

	n, err := c.Write(fid, 0, []byte("goodbye"))
	require.NoError(t, err)
	assert.Equal(t, uint32(7), n)

	st, err := c.Stat(fid)
	require.NoError(t, err)
	assert.Equal(t, "greeting", st.Name)

	require.NoError(t, c.Wstat(fid, st))
	require.NoError(t, c.Flush(42))

	// protocol-level failures surface as Error values
	err = c.Remove(fid)
	assert.Equal(t, Error("permission denied"), err)

	require.NoError(t, c.Clunk(fid))
	c.PutFid(fid)
	require.NoError(t, c.Clunk(root))
	c.PutFid(root)

	require.NoError(t, c.Close())
	require.NoError(t, g.Wait())
	sc.Close()
}

func TestClientVersionRefused(t *testing.T) {
	sc, cc := net.Pipe()
	// a server that only speaks something else entirely
	refuse := &ramFS{}
	srv := NewServer(NewConn(sc), versionRefuser{refuse})

	var g errgroup.Group
	g.Go(srv.Serve)

	c := NewClient(NewConn(cc))
	_, err := c.Version()
	assert.ErrorIs(t, err, ErrVersionRefused)

	c.Close()
	g.Wait()
	sc.Close()
}

type versionRefuser struct{ Interface }

func (versionRefuser) Version(m *kzrproto.Tversion) kzrproto.Response {
	return &kzrproto.Rversion{Msize: m.Msize, Version: VersionUnknown}
}
