package kzr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aqwari.net/net/kzr/kzrproto"
)

func TestNegotiate(t *testing.T) {
	cases := []struct {
		propose string
		msize   uint32
		max     uint32
		version string
		want    uint32
	}{
		{"9P2000", 8192, 0, Version9P2000, 8192},
		{"9P2000.L", 8192, 0, Version9P2000, 8192},
		{"9P2000", 1 << 20, 8192, Version9P2000, 8192},
		{"9P", 8192, 0, Version9P, 8192},
		{"9P2001", 8192, 0, Version9P, 8192},
		{"7P", 8192, 0, VersionUnknown, 8192},
		{"", 8192, 0, VersionUnknown, 8192},
	}
	for _, tt := range cases {
		t.Run(tt.propose, func(t *testing.T) {
			got := Negotiate(&kzrproto.Tversion{Msize: tt.msize, Version: tt.propose}, tt.max)
			assert.Equal(t, tt.version, got.Version)
			assert.Equal(t, tt.want, got.Msize)
		})
	}
}
