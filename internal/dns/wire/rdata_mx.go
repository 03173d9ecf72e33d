package wire

import "github.com/packetforge/dns-codec/internal/dns/domain"

func encodeMX(p *Packet, v domain.MXRecord) *CodecError {
	if err := p.AppendU16(v.Preference); err != nil {
		return err
	}
	return p.AppendName(v.Exchange, true, false)
}

func decodeMX(p *Packet) (domain.MXRecord, *CodecError) {
	pref, err := p.ReadU16()
	if err != nil {
		return domain.MXRecord{}, err
	}
	exchange, err := p.ReadName(true)
	if err != nil {
		return domain.MXRecord{}, err
	}
	rd, derr := domain.NewMXRecord(pref, exchange)
	if derr != nil {
		return domain.MXRecord{}, formatError("decodeMX", "%v", derr)
	}
	return rd, nil
}
