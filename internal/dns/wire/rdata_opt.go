package wire

import (
	"fmt"

	"github.com/packetforge/dns-codec/internal/dns/domain"
)

const optDNSSECOKBit = 1 << 15

// AppendOPT writes an EDNS(0) OPT pseudo-record (RFC 6891 §6.1) at the root
// owner name, packing ExtendedRCode/Version/DO into the TTL field and
// UDPSize into the class field. The generic record path (AppendRecord)
// carries the options blob through verbatim, matching how ReadRecord treats
// OPT as an always-unparseable type.
func (p *Packet) AppendOPT(opt domain.OPTRecord) *CodecError {
	ttl := uint32(opt.ExtendedRCode)<<24 | uint32(opt.Version)<<16
	if opt.DNSSECOK {
		ttl |= optDNSSECOKBit
	}
	key := domain.ResourceKey{Name: ".", Type: domain.RRTypeOPT, Class: domain.RRClass(opt.UDPSize)}
	rr := domain.ResourceRecord{ResourceKey: key, TTL: ttl, Unparseable: true, Raw: opt.Options}
	return p.AppendRecord(rr)
}

// DecodeOPT unpacks a Packet.OPT() record into its typed EDNS(0) fields.
func DecodeOPT(rr domain.ResourceRecord) (domain.OPTRecord, error) {
	if rr.Type != domain.RRTypeOPT {
		return domain.OPTRecord{}, fmt.Errorf("DecodeOPT: record type %v is not OPT", rr.Type)
	}
	return domain.OPTRecord{
		ExtendedRCode: uint8(rr.TTL >> 24),
		Version:       uint8(rr.TTL >> 16),
		DNSSECOK:      rr.TTL&optDNSSECOKBit != 0,
		UDPSize:       uint16(rr.Class),
		Options:       rr.Raw,
	}, nil
}
