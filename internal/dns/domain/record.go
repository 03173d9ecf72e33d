package domain

import "fmt"

// ResourceRecord is a fully decoded (or, for types outside the codec's
// table, raw) resource record: a ResourceKey plus TTL and payload.
//
// When Unparseable is true, RData is nil and Raw holds the verbatim rdata
// bytes exactly as read — either because the type is outside the table in
// §4.3, or because a type-specific validation rule rejected the rdata and
// the codec fell back to raw preservation (the LOC non-zero-version case).
// Lossless reserialization depends on Raw being exact in both cases.
type ResourceRecord struct {
	ResourceKey
	TTL         uint32
	RData       RData
	Unparseable bool
	Raw         []byte

	// Cacheable and SharedOwner are populated by the extractor (spec §4.8)
	// and have no meaning on a record under construction for encoding.
	Cacheable   bool
	SharedOwner bool
}

// NewResourceRecord constructs a decoded ResourceRecord from a key, TTL, and
// typed rdata. The rdata's RRType must match the key's type.
func NewResourceRecord(key ResourceKey, ttl uint32, rdata RData) (ResourceRecord, error) {
	if err := key.Validate(); err != nil {
		return ResourceRecord{}, err
	}
	if rdata == nil {
		return ResourceRecord{}, fmt.Errorf("resource record rdata must not be nil")
	}
	if rdata.RRType() != key.Type {
		return ResourceRecord{}, fmt.Errorf("rdata type %v does not match key type %v", rdata.RRType(), key.Type)
	}
	return ResourceRecord{ResourceKey: key, TTL: ttl, RData: rdata}, nil
}

// NewUnparseableResourceRecord constructs a ResourceRecord whose rdata the
// codec preserves verbatim instead of decoding.
func NewUnparseableResourceRecord(key ResourceKey, ttl uint32, raw []byte) (ResourceRecord, error) {
	if err := key.Validate(); err != nil {
		return ResourceRecord{}, err
	}
	return ResourceRecord{ResourceKey: key, TTL: ttl, Unparseable: true, Raw: raw}, nil
}
