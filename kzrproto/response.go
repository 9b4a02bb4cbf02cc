package kzrproto

// A Response is a message travelling from server to client: one of
// the fourteen R-messages, or the undefined BadRmessage arm.
type Response interface {
	Msg
	isResponse()
}

// ErrDirection is returned when a decoder expecting one direction
// peeks an opcode of the other.
var ErrDirection = protoError("message direction mismatch")

func (*Rversion) isResponse()    {}
func (*Rauth) isResponse()       {}
func (*Rattach) isResponse()     {}
func (*Rerror) isResponse()      {}
func (*Rflush) isResponse()      {}
func (*Rwalk) isResponse()       {}
func (*Ropen) isResponse()       {}
func (*Rcreate) isResponse()     {}
func (*Rread) isResponse()       {}
func (*Rwrite) isResponse()      {}
func (*Rclunk) isResponse()      {}
func (*Rremove) isResponse()     {}
func (*Rstat) isResponse()       {}
func (*Rwstat) isResponse()      {}
func (*BadRmessage) isResponse() {}

func newResponse(op Operation) Response {
	switch op {
	case msgRversion:
		return new(Rversion)
	case msgRauth:
		return new(Rauth)
	case msgRattach:
		return new(Rattach)
	case msgRerror:
		return new(Rerror)
	case msgRflush:
		return new(Rflush)
	case msgRwalk:
		return new(Rwalk)
	case msgRopen:
		return new(Ropen)
	case msgRcreate:
		return new(Rcreate)
	case msgRread:
		return new(Rread)
	case msgRwrite:
		return new(Rwrite)
	case msgRclunk:
		return new(Rclunk)
	case msgRremove:
		return new(Rremove)
	case msgRstat:
		return new(Rstat)
	case msgRwstat:
		return new(Rwstat)
	}
	return nil
}

// DecodeResponse decodes a single R-message from s.
func DecodeResponse(s *MessageStream) (Response, error) {
	op, ok := s.Peek()
	if !ok {
		return nil, ErrShortRead
	}
	if Operation(op).Concept() == Undefined {
		return nil, UnknownOpcodeError(op)
	}
	if Operation(op).IsRequest() {
		return nil, ErrDirection
	}
	m := newResponse(Operation(op))
	if err := m.decode(s); err != nil {
		return nil, err
	}
	return m, nil
}
