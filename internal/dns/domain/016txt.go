package domain

// TXTRecord is the rdata shared by TXT and SPF records (RFC 6763 §6.1,
// RFC 7208): a sequence of length-prefixed character-strings. An empty slice
// is a valid value; the wire codec serializes it as one zero-length item.
type TXTRecord struct {
	Strings [][]byte
	Type    RRType // RRTypeTXT or RRTypeSPF
}

// RRType implements RData.
func (t TXTRecord) RRType() RRType { return t.Type }

// NewTXTRecord constructs a TXTRecord. Each string must fit in 255 bytes; the
// wire codec enforces that bound at encode time.
func NewTXTRecord(strs [][]byte) TXTRecord {
	return TXTRecord{Strings: strs, Type: RRTypeTXT}
}

// NewSPFRecord constructs an SPF-typed TXTRecord.
func NewSPFRecord(strs [][]byte) TXTRecord {
	return TXTRecord{Strings: strs, Type: RRTypeSPF}
}
