package wire

import "github.com/packetforge/dns-codec/internal/dns/domain"

func encodeDS(p *Packet, v domain.DSRecord) *CodecError {
	if err := p.AppendU16(v.KeyTag); err != nil {
		return err
	}
	if err := p.AppendU8(v.Algorithm); err != nil {
		return err
	}
	if err := p.AppendU8(v.DigestType); err != nil {
		return err
	}
	return p.AppendBlob(v.Digest)
}

func decodeDS(p *Packet, limit int) (domain.DSRecord, *CodecError) {
	keyTag, err := p.ReadU16()
	if err != nil {
		return domain.DSRecord{}, err
	}
	algorithm, err := p.ReadU8()
	if err != nil {
		return domain.DSRecord{}, err
	}
	digestType, err := p.ReadU8()
	if err != nil {
		return domain.DSRecord{}, err
	}
	digest, err := p.ReadRemaining(limit)
	if err != nil {
		return domain.DSRecord{}, err
	}
	rd, derr := domain.NewDSRecord(keyTag, algorithm, digestType, digest)
	if derr != nil {
		return domain.DSRecord{}, formatError("decodeDS", "%v", derr)
	}
	return rd, nil
}
