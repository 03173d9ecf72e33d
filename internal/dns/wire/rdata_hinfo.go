package wire

import "github.com/packetforge/dns-codec/internal/dns/domain"

func encodeHINFO(p *Packet, v domain.HINFORecord) *CodecError {
	if err := p.AppendString([]byte(v.CPU)); err != nil {
		return err
	}
	return p.AppendString([]byte(v.OS))
}

func decodeHINFO(p *Packet) (domain.HINFORecord, *CodecError) {
	cpu, err := p.ReadText()
	if err != nil {
		return domain.HINFORecord{}, err
	}
	os, err := p.ReadText()
	if err != nil {
		return domain.HINFORecord{}, err
	}
	rd, derr := domain.NewHINFORecord(cpu, os)
	if derr != nil {
		return domain.HINFORecord{}, formatError("decodeHINFO", "%v", derr)
	}
	return rd, nil
}
