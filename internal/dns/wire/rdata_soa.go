package wire

import "github.com/packetforge/dns-codec/internal/dns/domain"

func encodeSOA(p *Packet, v domain.SOARecord) *CodecError {
	if err := p.AppendName(v.MName, true, false); err != nil {
		return err
	}
	if err := p.AppendName(v.RName, true, false); err != nil {
		return err
	}
	for _, field := range []uint32{v.Serial, v.Refresh, v.Retry, v.Expire, v.Minimum} {
		if err := p.AppendU32(field); err != nil {
			return err
		}
	}
	return nil
}

func decodeSOA(p *Packet) (domain.SOARecord, *CodecError) {
	mname, err := p.ReadName(true)
	if err != nil {
		return domain.SOARecord{}, err
	}
	rname, err := p.ReadName(true)
	if err != nil {
		return domain.SOARecord{}, err
	}
	var fields [5]uint32
	for i := range fields {
		fields[i], err = p.ReadU32()
		if err != nil {
			return domain.SOARecord{}, err
		}
	}
	rd, derr := domain.NewSOARecord(mname, rname, fields[0], fields[1], fields[2], fields[3], fields[4])
	if derr != nil {
		return domain.SOARecord{}, formatError("decodeSOA", "%v", derr)
	}
	return rd, nil
}
