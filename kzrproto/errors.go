package kzrproto

import "fmt"

type protoError string

func (e protoError) Error() string { return string(e) }

// Errors returned by the codec. Encoding fails when a length field
// would overflow its wire width, when the value being encoded carries
// no opcode, or when a Walk message breaks the limits checked by
// ErrMaxWElem and ErrCloneSameFid. Decoding fails when the stream ends
// before a field does, or when the framing itself is damaged.
var (
	ErrLengthOverflow   = protoError("length field overflow")
	ErrUndefinedVariant = protoError("cannot encode undefined message")
	ErrShortRead        = protoError("stream ended before field")
	ErrMalformedFrame   = protoError("malformed frame")
)

// An UnknownOpcodeError is returned when the first byte of a message
// is not one of the 28 concrete 9P2000 opcodes.
type UnknownOpcodeError uint8

func (e UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode %#02x", uint8(e))
}
