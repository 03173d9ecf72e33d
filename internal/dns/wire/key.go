package wire

import "github.com/packetforge/dns-codec/internal/dns/domain"

// AppendKey writes a ResourceKey: name (compression on, canonical-candidate
// on), type, class (spec §4.4). mDNS cache-flush is communicated by the
// caller composing the flush bit into Class before calling — this function
// does not touch the bit on encode.
func (p *Packet) AppendKey(key domain.ResourceKey) *CodecError {
	if err := p.AppendName(key.Name, true, true); err != nil {
		return err
	}
	if err := p.AppendU16(uint16(key.Type)); err != nil {
		return err
	}
	return p.AppendU16(uint16(key.Class))
}

// ReadKey reads a ResourceKey. For mDNS, when the type is not OPT and the
// class field's high bit is set, it is cleared and reported separately as
// cacheFlush rather than folded into Class.
func (p *Packet) ReadKey() (key domain.ResourceKey, cacheFlush bool, cerr *CodecError) {
	startRindex := p.rindex
	name, err := p.ReadName(true)
	if err != nil {
		return domain.ResourceKey{}, false, err
	}
	rrtype, err := p.ReadU16()
	if err != nil {
		p.rindex = startRindex
		return domain.ResourceKey{}, false, err
	}
	class, err := p.ReadU16()
	if err != nil {
		p.rindex = startRindex
		return domain.ResourceKey{}, false, err
	}

	t := domain.RRType(rrtype)
	c := domain.RRClass(class)
	if p.proto == ProtoMDNS && t != domain.RRTypeOPT && c.HasCacheFlush() {
		cacheFlush = true
		c = c.WithoutCacheFlush()
	}
	return domain.ResourceKey{Name: name, Type: t, Class: c}, cacheFlush, nil
}
