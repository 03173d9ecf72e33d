package domain

// RawRData carries rdata verbatim for the encoder, which writes its Data
// as-is. The decoder never produces it: a record of a type the codec does
// not model, and a LOC record with a non-zero version, both decode with
// ResourceRecord.Unparseable set, RData nil and the bytes in
// ResourceRecord.Raw, so the two cases are not distinguished.
type RawRData struct {
	Type RRType
	Data []byte
}

// RRType implements RData.
func (r RawRData) RRType() RRType { return r.Type }
