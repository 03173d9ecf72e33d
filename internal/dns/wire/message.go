package wire

import "github.com/packetforge/dns-codec/internal/dns/domain"

// AppendQuestion writes a question and increments QDCOUNT. Questions must be
// appended before any resource record, matching the section order the
// header counts describe (spec §3).
func (p *Packet) AppendQuestion(q domain.Question) *CodecError {
	if err := p.AppendKey(q); err != nil {
		return err
	}
	p.setQDCount(p.QDCount() + 1)
	return nil
}

// AppendAnswer writes a resource record to the Answer section and
// increments ANCOUNT.
func (p *Packet) AppendAnswer(rr domain.ResourceRecord) *CodecError {
	if err := p.AppendRecord(rr); err != nil {
		return err
	}
	p.setANCount(p.ANCount() + 1)
	return nil
}

// AppendAuthorityRecord writes a resource record to the Authority section
// and increments NSCOUNT.
func (p *Packet) AppendAuthorityRecord(rr domain.ResourceRecord) *CodecError {
	if err := p.AppendRecord(rr); err != nil {
		return err
	}
	p.setNSCount(p.NSCount() + 1)
	return nil
}

// AppendAdditionalRecord writes a resource record to the Additional section
// and increments ARCOUNT.
func (p *Packet) AppendAdditionalRecord(rr domain.ResourceRecord) *CodecError {
	if err := p.AppendRecord(rr); err != nil {
		return err
	}
	p.setARCount(p.ARCount() + 1)
	return nil
}

// AppendEDNS writes an OPT pseudo-record to the Additional section and
// increments ARCOUNT, the same way AppendAdditionalRecord does for an
// ordinary record (spec §4.5/§4.8 treat OPT as additional-only).
func (p *Packet) AppendEDNS(opt domain.OPTRecord) *CodecError {
	if err := p.AppendOPT(opt); err != nil {
		return err
	}
	p.setARCount(p.ARCount() + 1)
	return nil
}
