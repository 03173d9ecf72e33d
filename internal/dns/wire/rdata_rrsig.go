package wire

import "github.com/packetforge/dns-codec/internal/dns/domain"

// Signer's name is never compressed (RFC 4034 §3.1) and is a canonical-form
// candidate: RFC 4034 §6.2 folds it to lowercase when building signing input.
func encodeRRSIG(p *Packet, v domain.RRSIGRecord) *CodecError {
	if err := p.AppendU16(uint16(v.TypeCovered)); err != nil {
		return err
	}
	if err := p.AppendU8(v.Algorithm); err != nil {
		return err
	}
	if err := p.AppendU8(v.Labels); err != nil {
		return err
	}
	if err := p.AppendU32(v.OriginalTTL); err != nil {
		return err
	}
	if err := p.AppendU32(v.Expiration); err != nil {
		return err
	}
	if err := p.AppendU32(v.Inception); err != nil {
		return err
	}
	if err := p.AppendU16(v.KeyTag); err != nil {
		return err
	}
	if err := p.AppendName(v.Signer, false, true); err != nil {
		return err
	}
	return p.AppendBlob(v.Signature)
}

func decodeRRSIG(p *Packet, limit int) (domain.RRSIGRecord, *CodecError) {
	typeCovered, err := p.ReadU16()
	if err != nil {
		return domain.RRSIGRecord{}, err
	}
	algorithm, err := p.ReadU8()
	if err != nil {
		return domain.RRSIGRecord{}, err
	}
	labels, err := p.ReadU8()
	if err != nil {
		return domain.RRSIGRecord{}, err
	}
	originalTTL, err := p.ReadU32()
	if err != nil {
		return domain.RRSIGRecord{}, err
	}
	expiration, err := p.ReadU32()
	if err != nil {
		return domain.RRSIGRecord{}, err
	}
	inception, err := p.ReadU32()
	if err != nil {
		return domain.RRSIGRecord{}, err
	}
	keyTag, err := p.ReadU16()
	if err != nil {
		return domain.RRSIGRecord{}, err
	}
	signer, err := p.ReadName(false)
	if err != nil {
		return domain.RRSIGRecord{}, err
	}
	signature, err := p.ReadRemaining(limit)
	if err != nil {
		return domain.RRSIGRecord{}, err
	}
	rd, derr := domain.NewRRSIGRecord(domain.RRType(typeCovered), algorithm, labels, originalTTL, expiration, inception, keyTag, signer, signature)
	if derr != nil {
		return domain.RRSIGRecord{}, formatError("decodeRRSIG", "%v", derr)
	}
	return rd, nil
}
