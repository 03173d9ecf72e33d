package wire

import "github.com/packetforge/dns-codec/internal/dns/domain"

// encodeNameTarget handles NS, CNAME, DNAME, and PTR rdata: a single domain
// name, compressible, not a canonical-form candidate.
func encodeNameTarget(p *Packet, v domain.NameTarget) *CodecError {
	return p.AppendName(v.Target, true, false)
}

func decodeNameTarget(p *Packet, t domain.RRType) (domain.NameTarget, *CodecError) {
	name, err := p.ReadName(true)
	if err != nil {
		return domain.NameTarget{}, err
	}
	return domain.NameTarget{Target: name, Type: t}, nil
}
