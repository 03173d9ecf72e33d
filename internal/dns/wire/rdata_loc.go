package wire

import "github.com/packetforge/dns-codec/internal/dns/domain"

func encodePrecision(v LOCPrecisionLike) uint8 {
	return v.Mantissa<<4 | v.Exponent
}

// LOCPrecisionLike avoids importing domain.LOCPrecision's name twice; it is
// structurally identical and only used internally by encodeLOC.
type LOCPrecisionLike = domain.LOCPrecision

func encodeLOC(p *Packet, v domain.LOCRecord) *CodecError {
	if err := p.AppendU8(v.Version); err != nil {
		return err
	}
	if err := p.AppendU8(encodePrecision(v.Size)); err != nil {
		return err
	}
	if err := p.AppendU8(encodePrecision(v.HorizPre)); err != nil {
		return err
	}
	if err := p.AppendU8(encodePrecision(v.VertPre)); err != nil {
		return err
	}
	if err := p.AppendU32(v.Latitude); err != nil {
		return err
	}
	if err := p.AppendU32(v.Longitude); err != nil {
		return err
	}
	return p.AppendU32(v.Altitude)
}

func decodePrecision(b uint8) domain.LOCPrecision {
	return domain.LOCPrecision{Mantissa: b >> 4, Exponent: b & 0x0F}
}

// decodeLOCOrRaw reads the version byte first; a non-zero version is not a
// shape this codec models, so the whole rdata (including the version byte
// already read) is re-read verbatim and flagged unparseable (spec §9 open
// question: LOC unparseable fallback).
func (p *Packet) decodeLOCOrRaw(offset, limit int) (domain.RData, []byte, bool, *CodecError) {
	version, err := p.ReadU8()
	if err != nil {
		return nil, nil, false, err
	}
	if version != 0 {
		p.rindex = offset
		raw, rerr := p.ReadRemaining(limit)
		return nil, raw, true, rerr
	}

	sizeB, err := p.ReadU8()
	if err != nil {
		return nil, nil, false, err
	}
	horizB, err := p.ReadU8()
	if err != nil {
		return nil, nil, false, err
	}
	vertB, err := p.ReadU8()
	if err != nil {
		return nil, nil, false, err
	}
	lat, err := p.ReadU32()
	if err != nil {
		return nil, nil, false, err
	}
	long, err := p.ReadU32()
	if err != nil {
		return nil, nil, false, err
	}
	alt, err := p.ReadU32()
	if err != nil {
		return nil, nil, false, err
	}

	rd, derr := domain.NewLOCRecord(decodePrecision(sizeB), decodePrecision(horizB), decodePrecision(vertB), lat, long, alt)
	if derr != nil {
		return nil, nil, false, formatError("decodeLOC", "%v", derr)
	}
	return rd, nil, false, nil
}
