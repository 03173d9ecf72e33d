package wire

import "github.com/packetforge/dns-codec/internal/dns/domain"

func encodeDNSKEY(p *Packet, v domain.DNSKEYRecord) *CodecError {
	if err := p.AppendU16(v.Flags); err != nil {
		return err
	}
	if err := p.AppendU8(v.Protocol); err != nil {
		return err
	}
	if err := p.AppendU8(v.Algorithm); err != nil {
		return err
	}
	return p.AppendBlob(v.Key)
}

func decodeDNSKEY(p *Packet, limit int) (domain.DNSKEYRecord, *CodecError) {
	flags, err := p.ReadU16()
	if err != nil {
		return domain.DNSKEYRecord{}, err
	}
	protocol, err := p.ReadU8()
	if err != nil {
		return domain.DNSKEYRecord{}, err
	}
	algorithm, err := p.ReadU8()
	if err != nil {
		return domain.DNSKEYRecord{}, err
	}
	key, err := p.ReadRemaining(limit)
	if err != nil {
		return domain.DNSKEYRecord{}, err
	}
	rd, derr := domain.NewDNSKEYRecord(flags, protocol, algorithm, key)
	if derr != nil {
		return domain.DNSKEYRecord{}, formatError("decodeDNSKEY", "%v", derr)
	}
	return rd, nil
}
