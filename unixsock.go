package kzr

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// maxSunPath is the capacity of sockaddr_un's sun_path, including
// the terminating NUL.
const maxSunPath = 108

// unixBacklog is the listen(2) backlog for announced sockets.
const unixBacklog = 32

var errLongSocketPath = errors.New("socket path does not fit in sun_path")

func unixSocket() (int, error) {
	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		return -1, errors.Wrap(err, "socket")
	}
	return fd, nil
}

// DialUnix connects to the Unix domain socket at path and returns a
// transport for it.
func DialUnix(path string) (*FDConn, error) {
	if len(path)+1 > maxSunPath {
		return nil, errLongSocketPath
	}
	fd, err := unixSocket()
	if err != nil {
		return nil, err
	}
	if err := unix.Connect(fd, &unix.SockaddrUnix{Name: path}); err != nil {
		unix.Close(fd)
		return nil, errors.Wrapf(err, "connect %s", path)
	}
	return NewFDConn(fd), nil
}

// A UnixListener accepts connections on an announced Unix domain
// socket.
type UnixListener struct {
	fd   int
	path string
}

// AnnounceUnix creates, binds, and listens on a Unix domain socket
// at path. Any stale socket file at path is unlinked first, the new
// one is restricted to the owner, and SIGPIPE is ignored so that a
// peer disconnecting mid-write surfaces as an error rather than a
// signal.
func AnnounceUnix(path string) (*UnixListener, error) {
	if len(path)+1 > maxSunPath {
		return nil, errLongSocketPath
	}
	signal.Ignore(syscall.SIGPIPE)

	fd, err := unixSocket()
	if err != nil {
		return nil, err
	}
	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		unix.Close(fd)
		return nil, errors.Wrap(err, "setsockopt")
	}
	unix.Unlink(path) // a stale socket file is not an error
	if err := unix.Bind(fd, &unix.SockaddrUnix{Name: path}); err != nil {
		unix.Close(fd)
		return nil, errors.Wrapf(err, "bind %s", path)
	}
	if err := os.Chmod(path, 0700); err != nil {
		unix.Close(fd)
		return nil, errors.Wrapf(err, "chmod %s", path)
	}
	if err := unix.Listen(fd, unixBacklog); err != nil {
		unix.Close(fd)
		return nil, errors.Wrapf(err, "listen %s", path)
	}
	return &UnixListener{fd: fd, path: path}, nil
}

// Accept waits for and returns the next connection.
func (l *UnixListener) Accept() (*FDConn, error) {
	nfd, _, err := unix.Accept(l.fd)
	if err != nil {
		return nil, errors.Wrap(err, "accept")
	}
	return NewFDConn(nfd), nil
}

// Addr returns the path the listener was announced on.
func (l *UnixListener) Addr() string { return l.path }

// Close closes the listening socket and removes the socket file.
func (l *UnixListener) Close() error {
	err := unix.Close(l.fd)
	os.Remove(l.path)
	return errors.Wrap(err, "close")
}
