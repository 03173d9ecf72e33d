package domain

import "fmt"

// DNSKEYRecord is the rdata of a DNSKEY record (RFC 4034 §2): a public key
// used to verify RRSIGs in the zone.
type DNSKEYRecord struct {
	Flags     uint16
	Protocol  uint8
	Algorithm uint8
	Key       []byte
}

// RRType implements RData.
func (DNSKEYRecord) RRType() RRType { return RRTypeDNSKEY }

// NewDNSKEYRecord validates and constructs a DNSKEYRecord.
func NewDNSKEYRecord(flags uint16, protocol, algorithm uint8, key []byte) (DNSKEYRecord, error) {
	if len(key) == 0 {
		return DNSKEYRecord{}, fmt.Errorf("DNSKEY record key must not be empty")
	}
	return DNSKEYRecord{Flags: flags, Protocol: protocol, Algorithm: algorithm, Key: key}, nil
}
