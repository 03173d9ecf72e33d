package domain

import "fmt"

// RRSIGRecord is the rdata of a resource record signature (RFC 4034 §3).
// Signer is canonical-form candidate but compression on it is forbidden on
// the wire, regardless of protocol.
type RRSIGRecord struct {
	TypeCovered RRType
	Algorithm   uint8
	Labels      uint8
	OriginalTTL uint32
	Expiration  uint32
	Inception   uint32
	KeyTag      uint16
	Signer      string
	Signature   []byte
}

// RRType implements RData.
func (RRSIGRecord) RRType() RRType { return RRTypeRRSIG }

// NewRRSIGRecord validates and constructs an RRSIGRecord.
func NewRRSIGRecord(typeCovered RRType, algorithm, labels uint8, originalTTL, expiration, inception uint32, keyTag uint16, signer string, signature []byte) (RRSIGRecord, error) {
	if signer == "" {
		return RRSIGRecord{}, fmt.Errorf("RRSIG record signer must not be empty")
	}
	if len(signature) == 0 {
		return RRSIGRecord{}, fmt.Errorf("RRSIG record signature must not be empty")
	}
	return RRSIGRecord{
		TypeCovered: typeCovered,
		Algorithm:   algorithm,
		Labels:      labels,
		OriginalTTL: originalTTL,
		Expiration:  expiration,
		Inception:   inception,
		KeyTag:      keyTag,
		Signer:      signer,
		Signature:   signature,
	}, nil
}
