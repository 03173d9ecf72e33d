package wire

import "github.com/packetforge/dns-codec/internal/dns/domain"

// Extract walks the question and resource-record sections declared by the
// header, populating Questions/Answers/Authority/Additional/OPT (spec §4.8).
// It is idempotent: every call rewinds to HeaderSize and re-derives the
// section lists from scratch, so calling it twice on an unmodified packet
// yields identical results. rindex is always restored to wherever it was
// when Extract was called, on both success and failure; only on success are
// the section fields updated.
func (p *Packet) Extract() *CodecError {
	startRindex := p.rindex
	defer func() { p.rindex = startRindex }()

	p.rindex = HeaderSize

	qdcount := int(p.QDCount())
	questions := make([]domain.Question, 0, qdcount)
	for i := 0; i < qdcount; i++ {
		qOffset := p.rindex
		key, flush, err := p.ReadKey()
		if err != nil {
			p.logMalformed(err, qOffset)
			return err
		}
		if flush {
			cerr := formatError("Extract", "cache-flush bit set on a question")
			p.logMalformed(cerr, qOffset)
			return cerr
		}
		if !key.Type.IsValidQueryType() {
			cerr := formatError("Extract", "question carries non-query type %v", key.Type)
			p.logMalformed(cerr, qOffset)
			return cerr
		}
		questions = append(questions, key)
	}

	var answer, authority, additional []domain.ResourceRecord
	var opt *domain.ResourceRecord

	readInto := func(count int, section string) *CodecError {
		for i := 0; i < count; i++ {
			rrOffset := p.rindex
			rr, flush, err := p.ReadRecord()
			if err != nil {
				return err
			}
			if rr.Type == domain.RRTypeOPT {
				if section != "additional" {
					cerr := formatError("Extract", "OPT record found outside the Additional section")
					p.logMalformed(cerr, rrOffset)
					return cerr
				}
				if rr.Name != "." {
					cerr := formatError("Extract", "OPT record owner name must be root, got %q", rr.Name)
					p.logMalformed(cerr, rrOffset)
					return cerr
				}
				if opt != nil {
					cerr := formatError("Extract", "more than one OPT record present")
					p.logMalformed(cerr, rrOffset)
					return cerr
				}
				rrCopy := rr
				opt = &rrCopy
				continue
			}
			rr.Cacheable = section == "answer"
			rr.SharedOwner = p.proto == ProtoMDNS && !flush
			switch section {
			case "answer":
				answer = append(answer, rr)
			case "authority":
				authority = append(authority, rr)
			case "additional":
				additional = append(additional, rr)
			}
		}
		return nil
	}

	if err := readInto(int(p.ANCount()), "answer"); err != nil {
		return err
	}
	if err := readInto(int(p.NSCount()), "authority"); err != nil {
		return err
	}
	if err := readInto(int(p.ARCount()), "additional"); err != nil {
		return err
	}

	p.questions = questions
	p.answer = answer
	p.authority = authority
	p.additional = additional
	p.opt = opt
	p.extracted = true
	return nil
}
