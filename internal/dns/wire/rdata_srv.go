package wire

import "github.com/packetforge/dns-codec/internal/dns/domain"

// SRV's target name allows compression and is not a canonical-form candidate
// (spec §4.5).
func encodeSRV(p *Packet, v domain.SRVRecord) *CodecError {
	if err := p.AppendU16(v.Priority); err != nil {
		return err
	}
	if err := p.AppendU16(v.Weight); err != nil {
		return err
	}
	if err := p.AppendU16(v.Port); err != nil {
		return err
	}
	return p.AppendName(v.Target, true, false)
}

func decodeSRV(p *Packet) (domain.SRVRecord, *CodecError) {
	priority, err := p.ReadU16()
	if err != nil {
		return domain.SRVRecord{}, err
	}
	weight, err := p.ReadU16()
	if err != nil {
		return domain.SRVRecord{}, err
	}
	port, err := p.ReadU16()
	if err != nil {
		return domain.SRVRecord{}, err
	}
	target, err := p.ReadName(true)
	if err != nil {
		return domain.SRVRecord{}, err
	}
	rd, derr := domain.NewSRVRecord(priority, weight, port, target)
	if derr != nil {
		return domain.SRVRecord{}, formatError("decodeSRV", "%v", derr)
	}
	return rd, nil
}
