package kzr

import (
	"fmt"
	"io"
	"net"
	"time"

	"aqwari.net/retry"

	"aqwari.net/net/kzr/internal/util"
	"aqwari.net/net/kzr/kzrproto"
)

// Types implementing the Logger interface can receive diagnostic
// information during a Server's operation. The Logger interface is
// implemented by *log.Logger.
type Logger interface {
	Output(calldepth int, s string) error
}

// Types implementing Interface can be used by a Server to answer 9P
// requests. Each method handles one operation and returns the reply
// to send; handlers do not fail, they return an Rerror. Handlers are
// expected to echo the tag of the request. Embed Unhandled to pick
// up "unimplemented" defaults for the operations a type does not
// override.
type Interface interface {
	Version(*kzrproto.Tversion) kzrproto.Response
	Auth(*kzrproto.Tauth) kzrproto.Response
	Attach(*kzrproto.Tattach) kzrproto.Response
	Flush(*kzrproto.Tflush) kzrproto.Response
	Walk(*kzrproto.Twalk) kzrproto.Response
	Open(*kzrproto.Topen) kzrproto.Response
	Create(*kzrproto.Tcreate) kzrproto.Response
	Read(*kzrproto.Tread) kzrproto.Response
	Write(*kzrproto.Twrite) kzrproto.Response
	Clunk(*kzrproto.Tclunk) kzrproto.Response
	Remove(*kzrproto.Tremove) kzrproto.Response
	Stat(*kzrproto.Tstat) kzrproto.Response
	Wstat(*kzrproto.Twstat) kzrproto.Response
}

func unimplemented(tag uint16, c kzrproto.ConceptualOperation) kzrproto.Response {
	return &kzrproto.Rerror{Tag: tag, Ename: c.String() + " unimplemented"}
}

// Unhandled implements Interface by answering every request with an
// Rerror naming the operation as unimplemented, preserving the
// request's tag.
type Unhandled struct{}

func (Unhandled) Version(m *kzrproto.Tversion) kzrproto.Response {
	return unimplemented(m.Tag(), kzrproto.Version)
}

func (Unhandled) Auth(m *kzrproto.Tauth) kzrproto.Response {
	return unimplemented(m.Tag, kzrproto.Auth)
}

func (Unhandled) Attach(m *kzrproto.Tattach) kzrproto.Response {
	return unimplemented(m.Tag, kzrproto.Attach)
}

func (Unhandled) Flush(m *kzrproto.Tflush) kzrproto.Response {
	return unimplemented(m.Tag, kzrproto.Flush)
}

func (Unhandled) Walk(m *kzrproto.Twalk) kzrproto.Response {
	return unimplemented(m.Tag, kzrproto.Walk)
}

func (Unhandled) Open(m *kzrproto.Topen) kzrproto.Response {
	return unimplemented(m.Tag, kzrproto.Open)
}

func (Unhandled) Create(m *kzrproto.Tcreate) kzrproto.Response {
	return unimplemented(m.Tag, kzrproto.Create)
}

func (Unhandled) Read(m *kzrproto.Tread) kzrproto.Response {
	return unimplemented(m.Tag, kzrproto.Read)
}

func (Unhandled) Write(m *kzrproto.Twrite) kzrproto.Response {
	return unimplemented(m.Tag, kzrproto.Write)
}

func (Unhandled) Clunk(m *kzrproto.Tclunk) kzrproto.Response {
	return unimplemented(m.Tag, kzrproto.Clunk)
}

func (Unhandled) Remove(m *kzrproto.Tremove) kzrproto.Response {
	return unimplemented(m.Tag, kzrproto.Remove)
}

func (Unhandled) Stat(m *kzrproto.Tstat) kzrproto.Response {
	return unimplemented(m.Tag, kzrproto.Stat)
}

func (Unhandled) Wstat(m *kzrproto.Twstat) kzrproto.Response {
	return unimplemented(m.Tag, kzrproto.Wstat)
}

// A Server runs the synchronous dispatch loop for one connection:
// read a request, select the handler, write its reply. One cycle is
// in flight at a time; the protocol multiplexes by tag, but this
// loop serializes on the stream.
type Server struct {
	// If not nil, ErrorLog will be used to log unexpected errors
	// handling connections. TraceLog, if not nil, receives one
	// line per message received and sent.
	ErrorLog, TraceLog Logger

	handler Interface
	conn    *Conn
	running bool
}

// NewServer creates a Server that answers requests arriving on conn
// by calling the methods of handler.
func NewServer(conn *Conn, handler Interface) *Server {
	return &Server{conn: conn, handler: handler}
}

func (s *Server) logf(format string, v ...interface{}) {
	if s.ErrorLog != nil {
		s.ErrorLog.Output(2, fmt.Sprintf(format, v...))
	}
}

func (s *Server) debugf(format string, v ...interface{}) {
	if s.TraceLog != nil {
		s.TraceLog.Output(2, fmt.Sprintf(format, v...))
	}
}

// process selects the handler for a decoded request. Error requests
// and undefined values are answered internally and cannot be
// overridden.
func (s *Server) process(req kzrproto.Request) kzrproto.Response {
	switch m := req.(type) {
	case *kzrproto.Tversion:
		return s.handler.Version(m)
	case *kzrproto.Tauth:
		return s.handler.Auth(m)
	case *kzrproto.Tattach:
		return s.handler.Attach(m)
	case *kzrproto.Tflush:
		return s.handler.Flush(m)
	case *kzrproto.Twalk:
		return s.handler.Walk(m)
	case *kzrproto.Topen:
		return s.handler.Open(m)
	case *kzrproto.Tcreate:
		return s.handler.Create(m)
	case *kzrproto.Tread:
		return s.handler.Read(m)
	case *kzrproto.Twrite:
		return s.handler.Write(m)
	case *kzrproto.Tclunk:
		return s.handler.Clunk(m)
	case *kzrproto.Tremove:
		return s.handler.Remove(m)
	case *kzrproto.Tstat:
		return s.handler.Stat(m)
	case *kzrproto.Twstat:
		return s.handler.Wstat(m)
	case *kzrproto.Terror:
		return &kzrproto.Rerror{Tag: m.Tag, Ename: "illegal request of an error"}
	}
	return &kzrproto.Rerror{Tag: kzrproto.TagOf(req), Ename: "undefined request type"}
}

// Serve runs the loop until Stop is called, the peer disconnects, or
// an error occurs. A handler returning an Rerror is a normal reply;
// only decode, encode, and transport failures end the loop, and they
// are returned. A clean disconnect between messages returns nil.
func (s *Server) Serve() error {
	s.running = true
	for s.running {
		req, err := s.conn.ReadRequest()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		s.debugf("-> %s", req)
		resp := s.process(req)
		s.debugf("<- %s", resp)
		if err := s.conn.WriteResponse(resp); err != nil {
			return err
		}
	}
	return nil
}

// Stop makes the loop exit after the reply in flight, if any, is
// written. Stop does not interrupt a blocked read; it is checked
// between cycles.
func (s *Server) Stop() { s.running = false }

// ServeListener accepts connections from l and serves each in turn
// with the Server's handler, one connection at a time. Temporary
// Accept errors are retried with exponential backoff; any other
// error is returned.
func (s *Server) ServeListener(l net.Listener) error {
	backoff := retry.Exponential(time.Millisecond).Max(time.Second)
	try := 0

	s.running = true
	for s.running {
		rwc, err := l.Accept()
		if err != nil {
			if util.IsTempErr(err) {
				try++
				s.logf("9p: Accept error: %v; retrying in %v", err, backoff(try))
				time.Sleep(backoff(try))
				continue
			}
			return err
		}
		try = 0
		s.conn = NewConn(rwc)
		if err := s.Serve(); err != nil {
			s.logf("9p: error serving connection: %v", err)
		}
		s.conn.Close()
	}
	return nil
}
