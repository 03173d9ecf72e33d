package wire

import (
	"encoding/binary"

	"github.com/packetforge/dns-codec/internal/dns/domain"
)

// header flag bits, byte offset 2-3 of the buffer (spec §6).
const (
	flagQR     = 1 << 15
	flagOpcode = 0x0F << 11
	flagAA     = 1 << 10
	flagTC     = 1 << 9
	flagRD     = 1 << 8
	flagRA     = 1 << 7
	flagZ      = 1 << 6
	flagAD     = 1 << 5
	flagCD     = 1 << 4
	flagRCode  = 0x0F
)

// Packet is a reference-counted container for one DNS/mDNS/LLMNR message
// (spec §3). It owns its byte buffer, its read cursor, and the compression
// offset map used while appending names. Append calls hand out no pointers
// into the buffer: extend returns an offset and every access goes through an
// index, since the buffer may be reallocated by a subsequent append (spec §9,
// "Pointer instability under growth").
type Packet struct {
	proto Protocol
	buf   []byte
	size  int
	mtu   int
	rindex int

	compression map[string]int

	canonicalForm     bool
	refuseCompression bool
	extracted         bool

	questions  []domain.Question
	answer     []domain.ResourceRecord
	authority  []domain.ResourceRecord
	additional []domain.ResourceRecord
	opt        *domain.ResourceRecord

	ifaceIndex int
	more       *Packet
	refCount   int32
}

// New creates an empty Packet for the given protocol, sized for mtu bytes
// of transport payload (spec §4.1). The buffer is zero-initialized with a
// 12-byte header; size and rindex both start at HeaderSize.
func New(proto Protocol, mtu int) *Packet {
	capacity := clampInitialCapacity(mtu)
	p := &Packet{
		proto:       proto,
		buf:         make([]byte, capacity),
		size:        HeaderSize,
		mtu:         mtu,
		rindex:      HeaderSize,
		compression: make(map[string]int),
		refCount:    1,
	}
	if proto == ProtoDNS {
		p.SetRD(true)
	}
	return p
}

// MTU reports the transport MTU this packet was sized for. A caller may use
// it to decide whether to fall back to TCP when a response would not fit.
func (p *Packet) MTU() int { return p.mtu }

// Protocol reports the protocol variant this packet was created for.
func (p *Packet) Protocol() Protocol { return p.proto }

// Size returns the current logical length of the buffer.
func (p *Packet) Size() int { return p.size }

// Allocated returns the current backing buffer capacity.
func (p *Packet) Allocated() int { return len(p.buf) }

// Extracted reports whether Extract has successfully populated the question
// and answer lists.
func (p *Packet) Extracted() bool { return p.extracted }

// CanonicalForm reports whether names marked canonical-candidate are folded
// to lower case on append (DNSSEC signing input, RFC 4034 §6.2).
func (p *Packet) CanonicalForm() bool { return p.canonicalForm }

// SetCanonicalForm toggles canonical-form name folding.
func (p *Packet) SetCanonicalForm(v bool) { p.canonicalForm = v }

// RefuseCompression reports whether name compression is globally disabled
// for this packet regardless of a per-call request.
func (p *Packet) RefuseCompression() bool { return p.refuseCompression }

// SetRefuseCompression toggles the global compression refusal flag.
func (p *Packet) SetRefuseCompression(v bool) { p.refuseCompression = v }

// Ref increments the reference count.
func (p *Packet) Ref() { p.refCount++ }

// Unref decrements the reference count and recursively unrefs the More
// chain once it reaches zero (spec §9, "Reference cycles" — the chain is
// acyclic by construction so recursive unref is safe).
func (p *Packet) Unref() {
	p.refCount--
	if p.refCount <= 0 && p.more != nil {
		p.more.Unref()
		p.more = nil
	}
}

// More returns the continuation packet for a multi-packet reply, or nil.
func (p *Packet) More() *Packet { return p.more }

// SetMore chains a continuation packet, taking a reference on it.
func (p *Packet) SetMore(next *Packet) {
	next.Ref()
	p.more = next
}

// InterfaceIndex returns the tagged network interface index (mDNS/LLMNR
// scoping; meaningless for conventional unicast DNS).
func (p *Packet) InterfaceIndex() int { return p.ifaceIndex }

// SetInterfaceIndex tags the packet with a network interface index.
func (p *Packet) SetInterfaceIndex(idx int) { p.ifaceIndex = idx }

// Serialize returns the current buffer slice [0, size) ready for
// transmission. The returned slice aliases the packet's internal buffer and
// must not be retained past the next mutating call.
func (p *Packet) Serialize() []byte {
	return p.buf[:p.size]
}

// Ingest loads a received buffer for parsing. The packet takes ownership of
// a private copy of data; size is set to len(data) and rindex to HeaderSize,
// ready for Extract to walk the sections.
func (p *Packet) Ingest(data []byte) error {
	if len(data) < HeaderSize {
		return formatError("Ingest", "packet shorter than header: %d bytes", len(data))
	}
	if len(data) > PacketSizeMax {
		return tooLarge("Ingest", "packet %d bytes exceeds PACKET_SIZE_MAX", len(data))
	}
	p.buf = make([]byte, len(data))
	copy(p.buf, data)
	p.size = len(data)
	p.mtu = len(data) + UDPHeaderSize
	p.rindex = HeaderSize
	p.compression = make(map[string]int)
	p.extracted = false
	p.questions = nil
	p.answer = nil
	p.authority = nil
	p.additional = nil
	p.opt = nil
	return nil
}

// extend grows the buffer by n bytes, reallocating if capacity is
// insufficient (spec §4.1, "extend"), and returns the offset the caller
// should begin writing at. The new region is zero-filled.
func (p *Packet) extend(n int) (int, *CodecError) {
	start := p.size
	required := p.size + n
	if required > PacketSizeMax {
		return 0, tooLarge("extend", "append of %d bytes at size %d exceeds PACKET_SIZE_MAX", n, p.size)
	}
	if required > len(p.buf) {
		newCap := nextPage(required * 2)
		if newCap > PacketSizeMax {
			newCap = PacketSizeMax
		}
		grown := make([]byte, newCap)
		copy(grown, p.buf[:p.size])
		p.buf = grown
	}
	clear(p.buf[start:required])
	p.size = required
	return start, nil
}

// truncate rolls back a partially-completed append. Every compression-map
// entry whose offset is >= sz is dropped, since it would point into bytes
// the caller is about to discard (spec §4.1, "truncate").
func (p *Packet) truncate(sz int) {
	p.size = sz
	for k, v := range p.compression {
		if v >= sz {
			delete(p.compression, k)
		}
	}
}

// --- header accessors ---

func (p *Packet) flags() uint16 { return binary.BigEndian.Uint16(p.buf[2:4]) }

func (p *Packet) setFlags(v uint16) { binary.BigEndian.PutUint16(p.buf[2:4], v) }

func (p *Packet) setFlagBit(mask uint16, v bool) {
	f := p.flags()
	if v {
		f |= mask
	} else {
		f &^= mask
	}
	p.setFlags(f)
}

// ID returns the message ID (header bytes 0-1).
func (p *Packet) ID() uint16 { return binary.BigEndian.Uint16(p.buf[0:2]) }

// SetID sets the message ID.
func (p *Packet) SetID(id uint16) { binary.BigEndian.PutUint16(p.buf[0:2], id) }

func (p *Packet) QR() bool      { return p.flags()&flagQR != 0 }
func (p *Packet) SetQR(v bool)  { p.setFlagBit(flagQR, v) }
func (p *Packet) Opcode() uint8 { return uint8((p.flags() & flagOpcode) >> 11) }
func (p *Packet) AA() bool      { return p.flags()&flagAA != 0 }
func (p *Packet) SetAA(v bool)  { p.setFlagBit(flagAA, v) }
func (p *Packet) TC() bool      { return p.flags()&flagTC != 0 }
func (p *Packet) SetTC(v bool)  { p.setFlagBit(flagTC, v) }
func (p *Packet) RD() bool      { return p.flags()&flagRD != 0 }
func (p *Packet) SetRD(v bool)  { p.setFlagBit(flagRD, v) }
func (p *Packet) RA() bool      { return p.flags()&flagRA != 0 }
func (p *Packet) SetRA(v bool)  { p.setFlagBit(flagRA, v) }
func (p *Packet) AD() bool      { return p.flags()&flagAD != 0 }
func (p *Packet) SetAD(v bool)  { p.setFlagBit(flagAD, v) }
func (p *Packet) CD() bool      { return p.flags()&flagCD != 0 }
func (p *Packet) SetCD(v bool)  { p.setFlagBit(flagCD, v) }

// RCode returns the response code (low 4 bits of the flags word).
func (p *Packet) RCode() domain.RCode { return domain.RCode(p.flags() & flagRCode) }

// SetRCode sets the response code.
func (p *Packet) SetRCode(r domain.RCode) {
	f := p.flags()
	f = (f &^ flagRCode) | (uint16(r) & flagRCode)
	p.setFlags(f)
}

func (p *Packet) QDCount() uint16 { return binary.BigEndian.Uint16(p.buf[4:6]) }
func (p *Packet) ANCount() uint16 { return binary.BigEndian.Uint16(p.buf[6:8]) }
func (p *Packet) NSCount() uint16 { return binary.BigEndian.Uint16(p.buf[8:10]) }
func (p *Packet) ARCount() uint16 { return binary.BigEndian.Uint16(p.buf[10:12]) }

func (p *Packet) setQDCount(v uint16) { binary.BigEndian.PutUint16(p.buf[4:6], v) }
func (p *Packet) setANCount(v uint16) { binary.BigEndian.PutUint16(p.buf[6:8], v) }
func (p *Packet) setNSCount(v uint16) { binary.BigEndian.PutUint16(p.buf[8:10], v) }
func (p *Packet) setARCount(v uint16) { binary.BigEndian.PutUint16(p.buf[10:12], v) }

// Questions returns the extracted question list. Valid only after Extract.
func (p *Packet) Questions() []domain.Question { return p.questions }

// Answers returns the extracted Answer-section records. Valid only after Extract.
func (p *Packet) Answers() []domain.ResourceRecord { return p.answer }

// Authority returns the extracted Authority-section records.
func (p *Packet) Authority() []domain.ResourceRecord { return p.authority }

// Additional returns the extracted Additional-section records (excluding OPT).
func (p *Packet) Additional() []domain.ResourceRecord { return p.additional }

// OPT returns the extracted EDNS(0) OPT record, or nil if none was present.
func (p *Packet) OPT() *domain.ResourceRecord { return p.opt }

// SetRindex repositions the read cursor. Exposed for tests exercising
// transactional-read rollback directly; ordinary callers never need it.
func (p *Packet) SetRindex(v int) { p.rindex = v }

// Rindex returns the current read cursor position.
func (p *Packet) Rindex() int { return p.rindex }
