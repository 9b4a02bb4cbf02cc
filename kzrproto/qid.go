package kzrproto

import "fmt"

// A Qid is the server's unique identification for the file being
// accessed: two files on the same server hierarchy are the same if
// and only if their qid paths are equal. The version field is
// incremented every time the file is modified.
type Qid struct {
	Type    QidType
	Version uint32
	Path    uint64
}

// QidLen is the encoded size of a Qid in bytes.
const QidLen = 1 + 4 + 8

func (q Qid) String() string {
	return fmt.Sprintf("type=%d ver=%d path=%x", q.Type, q.Version, q.Path)
}

func pqid(s *MessageStream, qid ...Qid) {
	for _, q := range qid {
		puint8(s, uint8(q.Type))
		puint32(s, q.Version)
		puint64(s, q.Path)
	}
}

func gqid(s *MessageStream) (Qid, error) {
	var q Qid
	t, err := guint8(s)
	if err != nil {
		return q, err
	}
	q.Type = QidType(t)
	if q.Version, err = guint32(s); err != nil {
		return q, err
	}
	if q.Path, err = guint64(s); err != nil {
		return q, err
	}
	return q, nil
}

// A QidType represents the type of a file (directory, etc.), as a
// bit vector corresponding to the high 8 bits of the file's mode
// word.
type QidType uint8

const (
	QTDIR    QidType = 0x80 // directories
	QTAPPEND QidType = 0x40 // append only files
	QTEXCL   QidType = 0x20 // exclusive use files
	QTMOUNT  QidType = 0x10 // mounted channel
	QTAUTH   QidType = 0x08 // authentication file (afid)
	QTTMP    QidType = 0x04 // non-backed-up file
	QTFILE   QidType = 0x00
)
