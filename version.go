package kzr

import (
	"strings"

	"aqwari.net/net/kzr/kzrproto"
)

// Protocol version strings understood by this package. A server
// answering "unknown" refuses all further operation on the
// connection until version negotiation is retried successfully.
const (
	Version9P      = "9P"
	Version9P2000  = "9P2000"
	VersionUnknown = "unknown"
)

// versions supported by Negotiate, largest first.
var supportedVersions = []string{Version9P2000, Version9P}

// Negotiate builds the Rversion answering a client's proposal. The
// reply's msize is the client's, clamped to max (0 means no limit).
// The reply's version is the largest protocol string this package
// supports that is a prefix of the client's proposal, or "unknown"
// if there is none.
func Negotiate(m *kzrproto.Tversion, max uint32) *kzrproto.Rversion {
	msize := m.Msize
	if max != 0 && msize > max {
		msize = max
	}
	for _, v := range supportedVersions {
		if strings.HasPrefix(m.Version, v) {
			return &kzrproto.Rversion{Msize: msize, Version: v}
		}
	}
	return &kzrproto.Rversion{Msize: msize, Version: VersionUnknown}
}
