package kzrproto

// NoTag is the sentinel tag carried by Version messages, which are
// not tagged like other traffic.
const NoTag uint16 = 0xFFFF

// NoFid is the sentinel fid used in the afid field of an Attach
// request when the client does not authenticate.
const NoFid uint32 = 0xFFFFFFFF

// MaxWElem is the maximum number of path elements in a single Walk
// request, and the maximum number of qids in its reply.
const MaxWElem = 16

// DefaultMsize is a reasonable msize for clients to propose during
// version negotiation, in bytes, counting the 4-byte frame length.
const DefaultMsize uint32 = 8192

// headerLen is the encoded size of the op and tag fields that prefix
// every message body.
const headerLen = 1 + 2

// Validation errors for Walk requests. The constraints are enforced
// when encoding; the decoder tolerates anything that fits the wire
// layout.
var (
	ErrMaxWElem     = protoError("maximum walk elements exceeded")
	ErrCloneSameFid = protoError("walk clone must propose a new fid")
)
