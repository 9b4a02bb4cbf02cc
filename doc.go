/*
Package kzr hosts 9P2000 sessions on a byte stream: a synchronous
server loop that decodes requests, dispatches them to per-operation
handlers, and writes the replies, plus a matching synchronous client.

The wire protocol itself lives in the kzrproto package. This package
adds the connection boundary (Conn), the dispatch loop (Server), and
transport adapters for raw file descriptors and Unix domain sockets.
Any io.ReadWriteCloser with blocking read and write semantics can
carry a session; the codec never touches the operating system.

A minimal server answers every request with "unimplemented":

	conn := kzr.NewConn(rwc)
	srv := kzr.NewServer(conn, kzr.Unhandled{})
	err := srv.Serve()

Real servers embed Unhandled and override the operations they
support.
*/
package kzr
