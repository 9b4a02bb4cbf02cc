/*
Package kzrproto implements the 9P2000 wire protocol: the byte-level
codec for every message type, the tagged variants that map a wire
opcode to a concrete request or response value, and the
length-prefixed framing used to carry complete messages on a byte
stream.

All multi-byte integers on the wire are little-endian. Strings are
counted (a 16-bit byte length followed by the bytes), never
NUL-terminated. Read and Write payloads use a 32-bit count; every
other homogeneous sequence uses a 16-bit count.

Messages are plain structs. A value exists only for the duration of
one request/response cycle; a request and its reply are independent
values correlated by their tag. Encoding and decoding go through a
MessageStream, an in-memory buffer with an append-only write end and
an advancing read cursor. The package performs no I/O of its own
except in ReadFrame and WriteFrame, which bound a single message on
an io.Reader or io.Writer.
*/
package kzrproto
