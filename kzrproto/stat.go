package kzrproto

import "fmt"

// A Stat describes a single directory entry. It is carried in Rstat
// and Twstat messages, and Tread requests on directories return one
// encoded Stat per entry.
//
// On the wire a Stat is prefixed by its own 16-bit byte count, in
// addition to whatever length field wraps it in the containing
// message. The two are distinct: the record's own count covers the
// bytes after itself, while an Rstat wraps the entire encoded record
// (count included) in one more 16-bit length.
type Stat struct {
	// Type and Dev hold implementation-specific data outside the
	// scope of the protocol.
	Type uint16
	Dev  uint32

	Qid  Qid
	Mode uint32

	// Atime and Mtime are in seconds since the epoch.
	Atime uint32
	Mtime uint32

	// Length of the file in bytes.
	Length uint64

	Name string
	Uid  string
	Gid  string
	Muid string
}

func (st Stat) String() string {
	return fmt.Sprintf("type=%x dev=%x qid=%q mode=%o atime=%d mtime=%d "+
		"length=%d name=%q uid=%q gid=%q muid=%q", st.Type, st.Dev, st.Qid,
		st.Mode, st.Atime, st.Mtime, st.Length, st.Name, st.Uid,
		st.Gid, st.Muid)
}

// pstat encodes the record into a temporary stream first, so that
// the leading count can be written without back-patching. Sharing
// one stream between the record and its container is how the inner
// and outer counts get confused.
func pstat(s *MessageStream, st Stat) error {
	var body MessageStream
	puint16(&body, st.Type)
	puint32(&body, st.Dev)
	pqid(&body, st.Qid)
	puint32(&body, st.Mode)
	puint32(&body, st.Atime)
	puint32(&body, st.Mtime)
	puint64(&body, st.Length)
	if err := pstring(&body, st.Name, st.Uid, st.Gid, st.Muid); err != nil {
		return err
	}
	return pbyte(s, body.TakeBytes())
}

func gstat(s *MessageStream) (Stat, error) {
	var st Stat
	size, err := guint16(s)
	if err != nil {
		return st, err
	}
	before := s.Len()
	if st.Type, err = guint16(s); err != nil {
		return st, err
	}
	if st.Dev, err = guint32(s); err != nil {
		return st, err
	}
	if st.Qid, err = gqid(s); err != nil {
		return st, err
	}
	if st.Mode, err = guint32(s); err != nil {
		return st, err
	}
	if st.Atime, err = guint32(s); err != nil {
		return st, err
	}
	if st.Mtime, err = guint32(s); err != nil {
		return st, err
	}
	if st.Length, err = guint64(s); err != nil {
		return st, err
	}
	if st.Name, err = gstring(s); err != nil {
		return st, err
	}
	if st.Uid, err = gstring(s); err != nil {
		return st, err
	}
	if st.Gid, err = gstring(s); err != nil {
		return st, err
	}
	if st.Muid, err = gstring(s); err != nil {
		return st, err
	}
	if before-s.Len() != int(size) {
		return st, ErrMalformedFrame
	}
	return st, nil
}
