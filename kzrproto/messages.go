package kzrproto

import (
	"fmt"
	"strings"
)

// Every message encodes its opcode and tag before its body. The
// decoder half re-reads the opcode that the variant layer peeked at,
// so a concrete message consumes its entire wire form.

func pheader(s *MessageStream, op Operation, tag uint16) {
	puint8(s, uint8(op))
	puint16(s, tag)
}

func gheader(s *MessageStream, op Operation) (uint16, error) {
	b, err := guint8(s)
	if err != nil {
		return 0, err
	}
	if Operation(b) != op {
		return 0, UnknownOpcodeError(b)
	}
	return guint16(s)
}

// The version request negotiates the protocol version and message
// size to be used on the connection and initializes the connection
// for I/O. It must be the first message sent on a connection, and
// the client cannot issue any further requests until it has received
// the reply. Version messages are never tagged: their tag is pinned
// to NoTag and cannot be set.
type Tversion struct {
	// Msize is the maximum length, in bytes, that the client will
	// ever generate or expect to receive in a single message,
	// counting the 4-byte frame length.
	Msize uint32

	// Version identifies the level of the protocol the client
	// supports. The string always begins with "9P".
	Version string
}

func (m *Tversion) Op() Operation { return msgTversion }

// Tag returns NoTag. Version traffic is not tagged.
func (m *Tversion) Tag() uint16 { return NoTag }

func (m *Tversion) encode(s *MessageStream) error {
	pheader(s, msgTversion, NoTag)
	puint32(s, m.Msize)
	return pstring(s, m.Version)
}

func (m *Tversion) decode(s *MessageStream) error {
	if _, err := gheader(s, msgTversion); err != nil {
		return err
	}
	var err error
	if m.Msize, err = guint32(s); err != nil {
		return err
	}
	m.Version, err = gstring(s)
	return err
}

func (m *Tversion) String() string {
	return fmt.Sprintf("Tversion msize=%d version=%q", m.Msize, m.Version)
}

// An Rversion reply carries the version the server has chosen and
// the maximum message size both sides must honor thereafter. The
// chosen msize is never larger than the client's proposal. A server
// that does not understand the proposed version replies with the
// version string "unknown".
type Rversion struct {
	Msize   uint32
	Version string
}

func (m *Rversion) Op() Operation { return msgRversion }

// Tag returns NoTag, matching the Tversion being answered.
func (m *Rversion) Tag() uint16 { return NoTag }

func (m *Rversion) encode(s *MessageStream) error {
	pheader(s, msgRversion, NoTag)
	puint32(s, m.Msize)
	return pstring(s, m.Version)
}

func (m *Rversion) decode(s *MessageStream) error {
	if _, err := gheader(s, msgRversion); err != nil {
		return err
	}
	var err error
	if m.Msize, err = guint32(s); err != nil {
		return err
	}
	m.Version, err = gstring(s)
	return err
}

func (m *Rversion) String() string {
	return fmt.Sprintf("Rversion msize=%d version=%q", m.Msize, m.Version)
}

// A Tauth request establishes an authentication file. After it is
// accepted, the client carries out the authentication protocol by
// performing I/O on afid. The protocol used is outside the scope of
// 9P.
type Tauth struct {
	Tag   uint16
	Afid  uint32
	Uname string
	Aname string
}

func (m *Tauth) Op() Operation { return msgTauth }

func (m *Tauth) encode(s *MessageStream) error {
	pheader(s, msgTauth, m.Tag)
	puint32(s, m.Afid)
	return pstring(s, m.Uname, m.Aname)
}

func (m *Tauth) decode(s *MessageStream) error {
	var err error
	if m.Tag, err = gheader(s, msgTauth); err != nil {
		return err
	}
	if m.Afid, err = guint32(s); err != nil {
		return err
	}
	if m.Uname, err = gstring(s); err != nil {
		return err
	}
	m.Aname, err = gstring(s)
	return err
}

func (m *Tauth) String() string {
	return fmt.Sprintf("Tauth afid=%x uname=%q aname=%q", m.Afid, m.Uname, m.Aname)
}

// An Rauth reply carries the qid of the authentication file. Its
// type is always QTAUTH.
type Rauth struct {
	Tag  uint16
	Aqid Qid
}

func (m *Rauth) Op() Operation { return msgRauth }

func (m *Rauth) encode(s *MessageStream) error {
	pheader(s, msgRauth, m.Tag)
	pqid(s, m.Aqid)
	return nil
}

func (m *Rauth) decode(s *MessageStream) error {
	var err error
	if m.Tag, err = gheader(s, msgRauth); err != nil {
		return err
	}
	m.Aqid, err = gqid(s)
	return err
}

func (m *Rauth) String() string { return fmt.Sprintf("Rauth aqid=%q", m.Aqid) }

// A Tattach request serves as a fresh introduction from a user on
// the client machine to the server, establishing fid as the root of
// the requested file tree. On servers that require authentication,
// afid must have been established by a previous Tauth; otherwise it
// is NoFid.
type Tattach struct {
	Tag   uint16
	Fid   uint32
	Afid  uint32
	Uname string
	Aname string
}

func (m *Tattach) Op() Operation { return msgTattach }

func (m *Tattach) encode(s *MessageStream) error {
	pheader(s, msgTattach, m.Tag)
	puint32(s, m.Fid)
	puint32(s, m.Afid)
	return pstring(s, m.Uname, m.Aname)
}

func (m *Tattach) decode(s *MessageStream) error {
	var err error
	if m.Tag, err = gheader(s, msgTattach); err != nil {
		return err
	}
	if m.Fid, err = guint32(s); err != nil {
		return err
	}
	if m.Afid, err = guint32(s); err != nil {
		return err
	}
	if m.Uname, err = gstring(s); err != nil {
		return err
	}
	m.Aname, err = gstring(s)
	return err
}

func (m *Tattach) String() string {
	return fmt.Sprintf("Tattach fid=%x afid=%x uname=%q aname=%q",
		m.Fid, m.Afid, m.Uname, m.Aname)
}

// An Rattach reply carries the qid of the root of the file tree now
// associated with the fid of the corresponding Tattach.
type Rattach struct {
	Tag uint16
	Qid Qid
}

func (m *Rattach) Op() Operation { return msgRattach }

func (m *Rattach) encode(s *MessageStream) error {
	pheader(s, msgRattach, m.Tag)
	pqid(s, m.Qid)
	return nil
}

func (m *Rattach) decode(s *MessageStream) error {
	var err error
	if m.Tag, err = gheader(s, msgRattach); err != nil {
		return err
	}
	m.Qid, err = gqid(s)
	return err
}

func (m *Rattach) String() string { return fmt.Sprintf("Rattach qid=%q", m.Qid) }

// A Terror is the request-direction form of the error operation. The
// protocol assigns it an opcode but no peer ever legitimately sends
// one; a server answers it with an error of its own. It is decoded
// with the same body layout as Rerror so that a stray one on the
// wire does not desynchronize the stream.
type Terror struct {
	Tag   uint16
	Ename string
}

func (m *Terror) Op() Operation { return msgTerror }

func (m *Terror) encode(s *MessageStream) error {
	pheader(s, msgTerror, m.Tag)
	return pstring(s, m.Ename)
}

func (m *Terror) decode(s *MessageStream) error {
	var err error
	if m.Tag, err = gheader(s, msgTerror); err != nil {
		return err
	}
	m.Ename, err = gstring(s)
	return err
}

func (m *Terror) String() string { return fmt.Sprintf("Terror ename=%q", m.Ename) }

// An Rerror reply describes the failure of a transaction. It
// replaces the reply that would accompany a successful call; its tag
// is that of the failing request.
type Rerror struct {
	Tag   uint16
	Ename string
}

func (m *Rerror) Op() Operation { return msgRerror }

func (m *Rerror) encode(s *MessageStream) error {
	pheader(s, msgRerror, m.Tag)
	return pstring(s, m.Ename)
}

func (m *Rerror) decode(s *MessageStream) error {
	var err error
	if m.Tag, err = gheader(s, msgRerror); err != nil {
		return err
	}
	m.Ename, err = gstring(s)
	return err
}

func (m *Rerror) String() string { return fmt.Sprintf("Rerror ename=%q", m.Ename) }

// A Tflush request asks the server to purge the pending response to
// an earlier request, identified by oldtag.
type Tflush struct {
	Tag    uint16
	Oldtag uint16
}

func (m *Tflush) Op() Operation { return msgTflush }

func (m *Tflush) encode(s *MessageStream) error {
	pheader(s, msgTflush, m.Tag)
	puint16(s, m.Oldtag)
	return nil
}

func (m *Tflush) decode(s *MessageStream) error {
	var err error
	if m.Tag, err = gheader(s, msgTflush); err != nil {
		return err
	}
	m.Oldtag, err = guint16(s)
	return err
}

func (m *Tflush) String() string { return fmt.Sprintf("Tflush oldtag=%x", m.Oldtag) }

// An Rflush reply echoes the tag (not oldtag) of the Tflush message.
type Rflush struct {
	Tag uint16
}

func (m *Rflush) Op() Operation { return msgRflush }

func (m *Rflush) encode(s *MessageStream) error {
	pheader(s, msgRflush, m.Tag)
	return nil
}

func (m *Rflush) decode(s *MessageStream) error {
	var err error
	m.Tag, err = gheader(s, msgRflush)
	return err
}

func (m *Rflush) String() string { return "Rflush" }

// A Twalk request descends a directory hierarchy, associating newfid
// with the result of walking each element of Wname in succession. An
// empty Wname clones fid into newfid; the two must differ. At most
// MaxWElem elements may be walked in one request.
type Twalk struct {
	Tag    uint16
	Fid    uint32
	Newfid uint32
	Wname  []string
}

func (m *Twalk) Op() Operation { return msgTwalk }

func (m *Twalk) encode(s *MessageStream) error {
	if len(m.Wname) > MaxWElem {
		return ErrMaxWElem
	}
	if len(m.Wname) == 0 && m.Newfid == m.Fid {
		return ErrCloneSameFid
	}
	pheader(s, msgTwalk, m.Tag)
	puint32(s, m.Fid)
	puint32(s, m.Newfid)
	puint16(s, uint16(len(m.Wname)))
	return pstring(s, m.Wname...)
}

func (m *Twalk) decode(s *MessageStream) error {
	var err error
	if m.Tag, err = gheader(s, msgTwalk); err != nil {
		return err
	}
	if m.Fid, err = guint32(s); err != nil {
		return err
	}
	if m.Newfid, err = guint32(s); err != nil {
		return err
	}
	n, err := guint16(s)
	if err != nil {
		return err
	}
	m.Wname = make([]string, n)
	for i := range m.Wname {
		if m.Wname[i], err = gstring(s); err != nil {
			return err
		}
	}
	return nil
}

func (m *Twalk) String() string {
	return fmt.Sprintf("Twalk fid=%x newfid=%x %q",
		m.Fid, m.Newfid, strings.Join(m.Wname, "/"))
}

// An Rwalk reply carries the qid of each path element walked, up to
// the first failure. Only if len(Wqid) equals len(Wname) of the
// request is newfid established.
type Rwalk struct {
	Tag  uint16
	Wqid []Qid
}

func (m *Rwalk) Op() Operation { return msgRwalk }

func (m *Rwalk) encode(s *MessageStream) error {
	if len(m.Wqid) > MaxWElem {
		return ErrMaxWElem
	}
	pheader(s, msgRwalk, m.Tag)
	puint16(s, uint16(len(m.Wqid)))
	pqid(s, m.Wqid...)
	return nil
}

func (m *Rwalk) decode(s *MessageStream) error {
	var err error
	if m.Tag, err = gheader(s, msgRwalk); err != nil {
		return err
	}
	n, err := guint16(s)
	if err != nil {
		return err
	}
	m.Wqid = make([]Qid, n)
	for i := range m.Wqid {
		if m.Wqid[i], err = gqid(s); err != nil {
			return err
		}
	}
	return nil
}

func (m *Rwalk) String() string {
	wqid := make([]string, len(m.Wqid))
	for i, q := range m.Wqid {
		wqid[i] = q.String()
	}
	return fmt.Sprintf("Rwalk wqid=%q", strings.Join(wqid, ","))
}

// A Topen request asks the server to check permissions and prepare
// fid for I/O. Mode selects the type of access: OREAD, OWRITE,
// ORDWR, or OEXEC, optionally or'd with OTRUNC or ORCLOSE.
type Topen struct {
	Tag  uint16
	Fid  uint32
	Mode uint8
}

func (m *Topen) Op() Operation { return msgTopen }

func (m *Topen) encode(s *MessageStream) error {
	pheader(s, msgTopen, m.Tag)
	puint32(s, m.Fid)
	puint8(s, m.Mode)
	return nil
}

func (m *Topen) decode(s *MessageStream) error {
	var err error
	if m.Tag, err = gheader(s, msgTopen); err != nil {
		return err
	}
	if m.Fid, err = guint32(s); err != nil {
		return err
	}
	m.Mode, err = guint8(s)
	return err
}

func (m *Topen) String() string {
	return fmt.Sprintf("Topen fid=%x mode=%#o", m.Fid, m.Mode)
}

// An Ropen reply carries the qid of the opened file. Iounit, if
// nonzero, is the number of bytes guaranteed to be transferred in a
// single Read or Write without splitting.
type Ropen struct {
	Tag    uint16
	Qid    Qid
	Iounit uint32
}

func (m *Ropen) Op() Operation { return msgRopen }

func (m *Ropen) encode(s *MessageStream) error {
	pheader(s, msgRopen, m.Tag)
	pqid(s, m.Qid)
	puint32(s, m.Iounit)
	return nil
}

func (m *Ropen) decode(s *MessageStream) error {
	var err error
	if m.Tag, err = gheader(s, msgRopen); err != nil {
		return err
	}
	if m.Qid, err = gqid(s); err != nil {
		return err
	}
	m.Iounit, err = guint32(s)
	return err
}

func (m *Ropen) String() string {
	return fmt.Sprintf("Ropen qid=%q iounit=%d", m.Qid, m.Iounit)
}

// A Tcreate request creates a new file named Name in the directory
// associated with fid, with permission bits perm, then opens it with
// mode as if by Topen.
type Tcreate struct {
	Tag  uint16
	Fid  uint32
	Name string
	Perm uint32
	Mode uint8
}

func (m *Tcreate) Op() Operation { return msgTcreate }

func (m *Tcreate) encode(s *MessageStream) error {
	pheader(s, msgTcreate, m.Tag)
	puint32(s, m.Fid)
	if err := pstring(s, m.Name); err != nil {
		return err
	}
	puint32(s, m.Perm)
	puint8(s, m.Mode)
	return nil
}

func (m *Tcreate) decode(s *MessageStream) error {
	var err error
	if m.Tag, err = gheader(s, msgTcreate); err != nil {
		return err
	}
	if m.Fid, err = guint32(s); err != nil {
		return err
	}
	if m.Name, err = gstring(s); err != nil {
		return err
	}
	if m.Perm, err = guint32(s); err != nil {
		return err
	}
	m.Mode, err = guint8(s)
	return err
}

func (m *Tcreate) String() string {
	return fmt.Sprintf("Tcreate fid=%x name=%q perm=%o mode=%#o",
		m.Fid, m.Name, m.Perm, m.Mode)
}

// An Rcreate reply mirrors Ropen for the newly created file.
type Rcreate struct {
	Tag    uint16
	Qid    Qid
	Iounit uint32
}

func (m *Rcreate) Op() Operation { return msgRcreate }

func (m *Rcreate) encode(s *MessageStream) error {
	pheader(s, msgRcreate, m.Tag)
	pqid(s, m.Qid)
	puint32(s, m.Iounit)
	return nil
}

func (m *Rcreate) decode(s *MessageStream) error {
	var err error
	if m.Tag, err = gheader(s, msgRcreate); err != nil {
		return err
	}
	if m.Qid, err = gqid(s); err != nil {
		return err
	}
	m.Iounit, err = guint32(s)
	return err
}

func (m *Rcreate) String() string {
	return fmt.Sprintf("Rcreate qid=%q iounit=%d", m.Qid, m.Iounit)
}

// A Tread request asks for Count bytes of data from the file
// associated with fid, starting Offset bytes into the file.
type Tread struct {
	Tag    uint16
	Fid    uint32
	Offset uint64
	Count  uint32
}

func (m *Tread) Op() Operation { return msgTread }

func (m *Tread) encode(s *MessageStream) error {
	pheader(s, msgTread, m.Tag)
	puint32(s, m.Fid)
	puint64(s, m.Offset)
	puint32(s, m.Count)
	return nil
}

func (m *Tread) decode(s *MessageStream) error {
	var err error
	if m.Tag, err = gheader(s, msgTread); err != nil {
		return err
	}
	if m.Fid, err = guint32(s); err != nil {
		return err
	}
	if m.Offset, err = guint64(s); err != nil {
		return err
	}
	m.Count, err = guint32(s)
	return err
}

func (m *Tread) String() string {
	return fmt.Sprintf("Tread fid=%d offset=%d count=%d", m.Fid, m.Offset, m.Count)
}

// An Rread reply returns the bytes requested by a Tread. The count
// on the wire is 32 bits wide; payloads are the one place the
// protocol outgrows its 16-bit length fields.
type Rread struct {
	Tag  uint16
	Data []byte
}

func (m *Rread) Op() Operation { return msgRread }

func (m *Rread) encode(s *MessageStream) error {
	pheader(s, msgRread, m.Tag)
	return pdata(s, m.Data)
}

func (m *Rread) decode(s *MessageStream) error {
	var err error
	if m.Tag, err = gheader(s, msgRread); err != nil {
		return err
	}
	m.Data, err = gdata(s)
	return err
}

func (m *Rread) String() string { return fmt.Sprintf("Rread count=%d", len(m.Data)) }

// A Twrite request writes Data to the file associated with fid,
// starting Offset bytes into the file.
type Twrite struct {
	Tag    uint16
	Fid    uint32
	Offset uint64
	Data   []byte
}

func (m *Twrite) Op() Operation { return msgTwrite }

func (m *Twrite) encode(s *MessageStream) error {
	pheader(s, msgTwrite, m.Tag)
	puint32(s, m.Fid)
	puint64(s, m.Offset)
	return pdata(s, m.Data)
}

func (m *Twrite) decode(s *MessageStream) error {
	var err error
	if m.Tag, err = gheader(s, msgTwrite); err != nil {
		return err
	}
	if m.Fid, err = guint32(s); err != nil {
		return err
	}
	if m.Offset, err = guint64(s); err != nil {
		return err
	}
	m.Data, err = gdata(s)
	return err
}

func (m *Twrite) String() string {
	return fmt.Sprintf("Twrite fid=%x offset=%d count=%d", m.Fid, m.Offset, len(m.Data))
}

// An Rwrite reply reports the number of bytes written.
type Rwrite struct {
	Tag   uint16
	Count uint32
}

func (m *Rwrite) Op() Operation { return msgRwrite }

func (m *Rwrite) encode(s *MessageStream) error {
	pheader(s, msgRwrite, m.Tag)
	puint32(s, m.Count)
	return nil
}

func (m *Rwrite) decode(s *MessageStream) error {
	var err error
	if m.Tag, err = gheader(s, msgRwrite); err != nil {
		return err
	}
	m.Count, err = guint32(s)
	return err
}

func (m *Rwrite) String() string { return fmt.Sprintf("Rwrite count=%d", m.Count) }

// A Tclunk request informs the server that the fid is no longer
// needed by the client.
type Tclunk struct {
	Tag uint16
	Fid uint32
}

func (m *Tclunk) Op() Operation { return msgTclunk }

func (m *Tclunk) encode(s *MessageStream) error {
	pheader(s, msgTclunk, m.Tag)
	puint32(s, m.Fid)
	return nil
}

func (m *Tclunk) decode(s *MessageStream) error {
	var err error
	if m.Tag, err = gheader(s, msgTclunk); err != nil {
		return err
	}
	m.Fid, err = guint32(s)
	return err
}

func (m *Tclunk) String() string { return fmt.Sprintf("Tclunk fid=%x", m.Fid) }

// An Rclunk reply has no body.
type Rclunk struct {
	Tag uint16
}

func (m *Rclunk) Op() Operation { return msgRclunk }

func (m *Rclunk) encode(s *MessageStream) error {
	pheader(s, msgRclunk, m.Tag)
	return nil
}

func (m *Rclunk) decode(s *MessageStream) error {
	var err error
	m.Tag, err = gheader(s, msgRclunk)
	return err
}

func (m *Rclunk) String() string { return "Rclunk" }

// A Tremove request clunks the fid and removes the file it
// represents.
type Tremove struct {
	Tag uint16
	Fid uint32
}

func (m *Tremove) Op() Operation { return msgTremove }

func (m *Tremove) encode(s *MessageStream) error {
	pheader(s, msgTremove, m.Tag)
	puint32(s, m.Fid)
	return nil
}

func (m *Tremove) decode(s *MessageStream) error {
	var err error
	if m.Tag, err = gheader(s, msgTremove); err != nil {
		return err
	}
	m.Fid, err = guint32(s)
	return err
}

func (m *Tremove) String() string { return fmt.Sprintf("Tremove fid=%x", m.Fid) }

// An Rremove reply has no body.
type Rremove struct {
	Tag uint16
}

func (m *Rremove) Op() Operation { return msgRremove }

func (m *Rremove) encode(s *MessageStream) error {
	pheader(s, msgRremove, m.Tag)
	return nil
}

func (m *Rremove) decode(s *MessageStream) error {
	var err error
	m.Tag, err = gheader(s, msgRremove)
	return err
}

func (m *Rremove) String() string { return "Rremove" }

// A Tstat request asks for the metadata record of the file
// associated with fid.
type Tstat struct {
	Tag uint16
	Fid uint32
}

func (m *Tstat) Op() Operation { return msgTstat }

func (m *Tstat) encode(s *MessageStream) error {
	pheader(s, msgTstat, m.Tag)
	puint32(s, m.Fid)
	return nil
}

func (m *Tstat) decode(s *MessageStream) error {
	var err error
	if m.Tag, err = gheader(s, msgTstat); err != nil {
		return err
	}
	m.Fid, err = guint32(s)
	return err
}

func (m *Tstat) String() string { return fmt.Sprintf("Tstat fid=%x", m.Fid) }

// An Rstat reply carries the encoded Stat record wrapped in one more
// 16-bit length. The record already begins with its own size field,
// so the bytes following the wrapper start with a second count; both
// must be preserved exactly.
type Rstat struct {
	Tag  uint16
	Stat Stat
}

func (m *Rstat) Op() Operation { return msgRstat }

func (m *Rstat) encode(s *MessageStream) error {
	pheader(s, msgRstat, m.Tag)
	var record MessageStream
	if err := pstat(&record, m.Stat); err != nil {
		return err
	}
	return pbyte(s, record.TakeBytes())
}

func (m *Rstat) decode(s *MessageStream) error {
	var err error
	if m.Tag, err = gheader(s, msgRstat); err != nil {
		return err
	}
	wrapped, err := gbyte(s)
	if err != nil {
		return err
	}
	var record MessageStream
	record.LoadBytes(wrapped)
	m.Stat, err = gstat(&record)
	return err
}

func (m *Rstat) String() string { return "Rstat " + m.Stat.String() }

// A Twstat request rewrites the metadata record of the file
// associated with fid. The record appears directly in the body,
// prefixed only by its own size field.
type Twstat struct {
	Tag  uint16
	Fid  uint32
	Stat Stat
}

func (m *Twstat) Op() Operation { return msgTwstat }

func (m *Twstat) encode(s *MessageStream) error {
	pheader(s, msgTwstat, m.Tag)
	puint32(s, m.Fid)
	return pstat(s, m.Stat)
}

func (m *Twstat) decode(s *MessageStream) error {
	var err error
	if m.Tag, err = gheader(s, msgTwstat); err != nil {
		return err
	}
	if m.Fid, err = guint32(s); err != nil {
		return err
	}
	m.Stat, err = gstat(s)
	return err
}

func (m *Twstat) String() string {
	return fmt.Sprintf("Twstat fid=%x stat=%q", m.Fid, m.Stat)
}

// An Rwstat reply has no body.
type Rwstat struct {
	Tag uint16
}

func (m *Rwstat) Op() Operation { return msgRwstat }

func (m *Rwstat) encode(s *MessageStream) error {
	pheader(s, msgRwstat, m.Tag)
	return nil
}

func (m *Rwstat) decode(s *MessageStream) error {
	var err error
	m.Tag, err = gheader(s, msgRwstat)
	return err
}

func (m *Rwstat) String() string { return "Rwstat" }

// A BadTmessage is the undefined arm of the Request variant: a
// default-constructed request carrying no operation. It cannot be
// encoded, and the decoder never produces one.
type BadTmessage struct {
	Tag uint16
}

func (m *BadTmessage) Op() Operation { return TBad }

func (m *BadTmessage) encode(s *MessageStream) error { return ErrUndefinedVariant }

func (m *BadTmessage) decode(s *MessageStream) error { return ErrUndefinedVariant }

func (m *BadTmessage) String() string { return "TBad" }

// A BadRmessage is the undefined arm of the Response variant.
type BadRmessage struct {
	Tag uint16
}

func (m *BadRmessage) Op() Operation { return RBad }

func (m *BadRmessage) encode(s *MessageStream) error { return ErrUndefinedVariant }

func (m *BadRmessage) decode(s *MessageStream) error { return ErrUndefinedVariant }

func (m *BadRmessage) String() string { return "RBad" }
