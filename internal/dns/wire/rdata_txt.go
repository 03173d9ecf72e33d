package wire

import "github.com/packetforge/dns-codec/internal/dns/domain"

// encodeTXT writes TXT/SPF rdata as a sequence of length-prefixed strings.
// An empty Strings slice still needs one byte on the wire, so it serializes
// as a single zero-length string (spec §4.5).
func encodeTXT(p *Packet, v domain.TXTRecord) *CodecError {
	if len(v.Strings) == 0 {
		return p.AppendString(nil)
	}
	for _, s := range v.Strings {
		if err := p.AppendString(s); err != nil {
			return err
		}
	}
	return nil
}

func decodeTXT(p *Packet, t domain.RRType, limit int) (domain.TXTRecord, *CodecError) {
	if p.rindex == limit {
		// RDLENGTH 0: no length-prefixed strings at all. Synthesize the
		// single zero-length item RFC 6763 §6.1 calls for (spec §4.5).
		strs := [][]byte{{}}
		if t == domain.RRTypeSPF {
			return domain.NewSPFRecord(strs), nil
		}
		return domain.NewTXTRecord(strs), nil
	}

	var strs [][]byte
	for p.rindex < limit {
		s, err := p.ReadString()
		if err != nil {
			return domain.TXTRecord{}, err
		}
		if p.rindex > limit {
			return domain.TXTRecord{}, formatError("decodeTXT", "string extends past declared rdata region")
		}
		strs = append(strs, s)
	}
	if t == domain.RRTypeSPF {
		return domain.NewSPFRecord(strs), nil
	}
	return domain.NewTXTRecord(strs), nil
}
