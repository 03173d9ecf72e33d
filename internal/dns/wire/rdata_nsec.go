package wire

import "github.com/packetforge/dns-codec/internal/dns/domain"

// NSEC's next_domain_name is a canonical-form candidate (RFC 4034 §6.2) and,
// like every other name in a conventional DNS message, is not compressed;
// mDNS is more permissive and does allow compression here.
func encodeNSEC(p *Packet, v domain.NSECRecord) *CodecError {
	allowCompression := p.proto == ProtoMDNS
	if err := p.AppendName(v.NextDomainName, allowCompression, true); err != nil {
		return err
	}
	return p.AppendBitmap(v.Types)
}

func decodeNSEC(p *Packet, limit int) (domain.NSECRecord, *CodecError) {
	allowCompression := p.proto == ProtoMDNS
	next, err := p.ReadName(allowCompression)
	if err != nil {
		return domain.NSECRecord{}, err
	}
	types, err := p.ReadBitmap(limit)
	if err != nil {
		return domain.NSECRecord{}, err
	}
	rd, derr := domain.NewNSECRecord(next, types)
	if derr != nil {
		return domain.NSECRecord{}, formatError("decodeNSEC", "%v", derr)
	}
	return rd, nil
}
