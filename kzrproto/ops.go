package kzrproto

// An Operation is the one-byte wire opcode at the head of every
// 9P2000 message. Each of the fourteen operations has a T-form sent
// by the requester and an R-form sent by the responder. T-opcodes
// are even and the matching R-opcode is the next odd value, so the
// direction of a message can be read off the low bit alone.
type Operation uint8

const (
	msgTversion Operation = 100 + iota
	msgRversion
	msgTauth
	msgRauth
	msgTattach
	msgRattach
	msgTerror
	msgRerror
	msgTflush
	msgRflush
	msgTwalk
	msgRwalk
	msgTopen
	msgRopen
	msgTcreate
	msgRcreate
	msgTread
	msgRread
	msgTwrite
	msgRwrite
	msgTclunk
	msgRclunk
	msgTremove
	msgRremove
	msgTstat
	msgRstat
	msgTwstat
	msgRwstat
)

// TBad and RBad are the sentinel opcodes carried by messages that
// have not been given a real operation. They are never valid on the
// wire. TBad keeps the request parity, RBad the response parity.
const (
	TBad Operation = 0xFE
	RBad Operation = 0xFF
)

// A ConceptualOperation names one of the fourteen 9P2000 operations
// with the transmit/receive distinction stripped away.
type ConceptualOperation uint8

const (
	Undefined ConceptualOperation = iota
	Version
	Auth
	Attach
	Error
	Flush
	Walk
	Open
	Create
	Read
	Write
	Clunk
	Remove
	Stat
	Wstat
)

// Concept maps both the T- and R-form of an opcode onto the
// operation they implement. The sentinels and anything outside the
// concrete range map to Undefined.
func (o Operation) Concept() ConceptualOperation {
	if o < msgTversion || o > msgRwstat {
		return Undefined
	}
	return Version + ConceptualOperation((o-msgTversion)>>1)
}

// IsRequest reports whether o travels in the request direction.
// T-opcodes are even; the TBad sentinel is even as well, so the
// parity test covers it without a special case.
func (o Operation) IsRequest() bool { return o&1 == 0 }

// ExpectedResponse returns the R-form answering o. For an R-form or
// a sentinel there is no meaningful reply; RError is returned for
// concrete opcodes and RBad for the sentinels.
func (o Operation) ExpectedResponse() Operation {
	switch {
	case o == TBad || o == RBad || o.Concept() == Undefined:
		return RBad
	case o.IsRequest():
		return o + 1
	}
	return msgRerror
}

// RequestForm returns the T-form opcode for c, or TBad for Undefined.
func (c ConceptualOperation) RequestForm() Operation {
	if c < Version || c > Wstat {
		return TBad
	}
	return msgTversion + Operation(c-Version)<<1
}

// ResponseForm returns the R-form opcode for c, or RBad for Undefined.
func (c ConceptualOperation) ResponseForm() Operation {
	if c < Version || c > Wstat {
		return RBad
	}
	return c.RequestForm() + 1
}

// IsSessionClass reports whether c manages the connection itself
// rather than any particular file.
func (c ConceptualOperation) IsSessionClass() bool {
	switch c {
	case Version, Auth, Attach, Flush, Error:
		return true
	}
	return false
}

// IsFileClass reports whether c names, opens, or performs I/O on a
// file through a fid.
func (c ConceptualOperation) IsFileClass() bool {
	switch c {
	case Walk, Open, Create, Read, Write, Clunk:
		return true
	}
	return false
}

// IsMetadataClass reports whether c reads or rewrites file metadata.
func (c ConceptualOperation) IsMetadataClass() bool {
	return c == Stat || c == Wstat
}

var conceptNames = [...]string{
	Undefined: "undefined",
	Version:   "version",
	Auth:      "auth",
	Attach:    "attach",
	Error:     "error",
	Flush:     "flush",
	Walk:      "walk",
	Open:      "open",
	Create:    "create",
	Read:      "read",
	Write:     "write",
	Clunk:     "clunk",
	Remove:    "remove",
	Stat:      "stat",
	Wstat:     "wstat",
}

func (c ConceptualOperation) String() string {
	if int(c) < len(conceptNames) {
		return conceptNames[c]
	}
	return "undefined"
}

func (o Operation) String() string {
	switch o {
	case TBad:
		return "TBad"
	case RBad:
		return "RBad"
	}
	if o.Concept() == Undefined {
		return "undefined"
	}
	if o.IsRequest() {
		return "T" + o.Concept().String()
	}
	return "R" + o.Concept().String()
}
