package kzr

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// An FDConn carries a session on a raw POSIX file descriptor. Reads
// and writes delegate to read(2) and write(2); the framer above it
// supplies the read-exact and write-all discipline. The adapter
// closes the descriptor on Close unless KeepOpen is set.
type FDConn struct {
	// KeepOpen leaves the descriptor open when the FDConn is
	// closed, for descriptors owned by someone else (stdin, a
	// descriptor passed by a parent process).
	KeepOpen bool

	fd int
}

// NewFDConn adopts an open file descriptor.
func NewFDConn(fd int) *FDConn {
	return &FDConn{fd: fd}
}

// Fd returns the underlying descriptor.
func (c *FDConn) Fd() int { return c.fd }

func (c *FDConn) Read(p []byte) (int, error) {
	n, err := unix.Read(c.fd, p)
	if err != nil {
		return 0, errors.Wrap(err, "read")
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

func (c *FDConn) Write(p []byte) (int, error) {
	n, err := unix.Write(c.fd, p)
	return n, errors.Wrap(err, "write")
}

func (c *FDConn) Close() error {
	if c.KeepOpen {
		return nil
	}
	return errors.Wrap(unix.Close(c.fd), "close")
}
