package wire

import (
	"encoding/binary"

	"github.com/packetforge/dns-codec/internal/dns/domain"
)

// AppendRecord writes a full resource record: key, TTL, a reserved RDLENGTH
// slot, then type-dispatched rdata, finally patching RDLENGTH in place
// (spec §4.5). On any failure the packet is rolled back to its pre-call size.
func (p *Packet) AppendRecord(rr domain.ResourceRecord) *CodecError {
	start := p.size
	if err := p.AppendKey(rr.ResourceKey); err != nil {
		p.truncate(start)
		return err
	}
	if err := p.AppendU32(rr.TTL); err != nil {
		p.truncate(start)
		return err
	}
	rdlenOff, err := p.extend(2)
	if err != nil {
		p.truncate(start)
		return err
	}
	rdataStart := p.size

	var encErr *CodecError
	if rr.Unparseable {
		encErr = p.AppendBlob(rr.Raw)
	} else {
		encErr = p.encodeRData(rr.Type, rr.RData)
	}
	if encErr != nil {
		p.truncate(start)
		return encErr
	}

	rdlen := p.size - rdataStart
	if rdlen > 0xFFFF {
		p.truncate(start)
		return tooLarge("AppendRecord", "rdlength %d exceeds 0xFFFF", rdlen)
	}
	binary.BigEndian.PutUint16(p.buf[rdlenOff:rdlenOff+2], uint16(rdlen))
	return nil
}

// ReadRecord reads one resource record, verifying RDLENGTH is exactly
// consumed by the type-specific decoder (spec §4.5). cacheFlush reports the
// key's mDNS cache-flush bit, extracted the same way ReadKey does.
func (p *Packet) ReadRecord() (rr domain.ResourceRecord, cacheFlush bool, cerr *CodecError) {
	startRindex := p.rindex

	key, flush, err := p.ReadKey()
	if err != nil {
		return domain.ResourceRecord{}, false, err
	}
	ttl, err := p.ReadU32()
	if err != nil {
		p.rindex = startRindex
		return domain.ResourceRecord{}, false, err
	}
	rdlen, err := p.ReadU16()
	if err != nil {
		p.rindex = startRindex
		return domain.ResourceRecord{}, false, err
	}
	if p.rindex+int(rdlen) > p.size {
		p.rindex = startRindex
		return domain.ResourceRecord{}, false, outOfBounds("ReadRecord", "rdlength %d exceeds remaining buffer", rdlen)
	}
	offset := p.rindex
	limit := offset + int(rdlen)

	rdata, raw, unparseable, derr := p.decodeRData(key.Type, offset, limit)
	if derr != nil {
		p.rindex = startRindex
		p.logMalformed(derr, offset)
		return domain.ResourceRecord{}, false, derr
	}
	if p.rindex != limit {
		p.rindex = startRindex
		cerr := formatError("ReadRecord", "rdata decoder consumed %d of %d declared bytes", p.rindex-offset, rdlen)
		p.logMalformed(cerr, offset)
		return domain.ResourceRecord{}, false, cerr
	}

	rr = domain.ResourceRecord{
		ResourceKey: key,
		TTL:         ttl,
		RData:       rdata,
		Unparseable: unparseable,
		Raw:         raw,
	}
	return rr, flush, nil
}

// encodeRData dispatches on type to the per-type wire encoder (spec §4.5,
// "Do not use dynamic dispatch; a match/switch over the tag is exhaustive").
func (p *Packet) encodeRData(t domain.RRType, rdata domain.RData) *CodecError {
	switch v := rdata.(type) {
	case domain.ARecord:
		return encodeA(p, v)
	case domain.AAAARecord:
		return encodeAAAA(p, v)
	case domain.NameTarget:
		return encodeNameTarget(p, v)
	case domain.SOARecord:
		return encodeSOA(p, v)
	case domain.MXRecord:
		return encodeMX(p, v)
	case domain.SRVRecord:
		return encodeSRV(p, v)
	case domain.HINFORecord:
		return encodeHINFO(p, v)
	case domain.TXTRecord:
		return encodeTXT(p, v)
	case domain.LOCRecord:
		return encodeLOC(p, v)
	case domain.DSRecord:
		return encodeDS(p, v)
	case domain.SSHFPRecord:
		return encodeSSHFP(p, v)
	case domain.DNSKEYRecord:
		return encodeDNSKEY(p, v)
	case domain.RRSIGRecord:
		return encodeRRSIG(p, v)
	case domain.NSECRecord:
		return encodeNSEC(p, v)
	case domain.NSEC3Record:
		return encodeNSEC3(p, v)
	case domain.RawRData:
		return p.AppendBlob(v.Data)
	default:
		return formatError("encodeRData", "no wire encoder for type %v", t)
	}
}

// decodeRData dispatches on type to the per-type wire decoder. Types outside
// the supported table, OPT (handled by the extractor, not the generic
// record path), and a LOC record with a non-zero version all fall back to
// verbatim raw preservation with unparseable=true.
func (p *Packet) decodeRData(t domain.RRType, offset, limit int) (rdata domain.RData, raw []byte, unparseable bool, cerr *CodecError) {
	switch t {
	case domain.RRTypeA:
		v, err := decodeA(p)
		return v, nil, false, err
	case domain.RRTypeAAAA:
		v, err := decodeAAAA(p)
		return v, nil, false, err
	case domain.RRTypeNS, domain.RRTypeCNAME, domain.RRTypeDNAME, domain.RRTypePTR:
		v, err := decodeNameTarget(p, t)
		return v, nil, false, err
	case domain.RRTypeSOA:
		v, err := decodeSOA(p)
		return v, nil, false, err
	case domain.RRTypeMX:
		v, err := decodeMX(p)
		return v, nil, false, err
	case domain.RRTypeSRV:
		v, err := decodeSRV(p)
		return v, nil, false, err
	case domain.RRTypeHINFO:
		v, err := decodeHINFO(p)
		return v, nil, false, err
	case domain.RRTypeTXT, domain.RRTypeSPF:
		v, err := decodeTXT(p, t, limit)
		return v, nil, false, err
	case domain.RRTypeLOC:
		return p.decodeLOCOrRaw(offset, limit)
	case domain.RRTypeDS:
		v, err := decodeDS(p, limit)
		return v, nil, false, err
	case domain.RRTypeSSHFP:
		v, err := decodeSSHFP(p, limit)
		return v, nil, false, err
	case domain.RRTypeDNSKEY:
		v, err := decodeDNSKEY(p, limit)
		return v, nil, false, err
	case domain.RRTypeRRSIG:
		v, err := decodeRRSIG(p, limit)
		return v, nil, false, err
	case domain.RRTypeNSEC:
		v, err := decodeNSEC(p, limit)
		return v, nil, false, err
	case domain.RRTypeNSEC3:
		v, err := decodeNSEC3(p, limit)
		return v, nil, false, err
	default:
		// OPT and every type outside the table: preserved verbatim.
		body, err := p.ReadRemaining(limit)
		return nil, body, true, err
	}
}
