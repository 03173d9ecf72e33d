package domain

// OPTRecord is the rdata-adjacent state of an EDNS(0) pseudo-record
// (RFC 6891). Unlike other types, OPT repurposes the class field as the
// advertised UDP payload size and the TTL field as extended-RCODE|version|
// flags; the wire codec packs/unpacks those fields directly on the Packet's
// OPT slot rather than through this struct's Class/TTL. RDATA (EDNS options)
// is preserved verbatim and is not modeled further here.
type OPTRecord struct {
	ExtendedRCode uint8
	Version       uint8
	DNSSECOK      bool // the DO bit
	UDPSize       uint16
	Options       []byte // raw OPT rdata, unparsed
}

// RRType implements RData.
func (OPTRecord) RRType() RRType { return RRTypeOPT }

// NewOPTRecord constructs the minimal EDNS(0) OPT this codec emits: no
// options, DO bit as requested, advertising udpSize.
func NewOPTRecord(udpSize uint16, dnssecOK bool) OPTRecord {
	return OPTRecord{UDPSize: udpSize, DNSSECOK: dnssecOK}
}
