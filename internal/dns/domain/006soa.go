package domain

import "fmt"

// SOARecord is the rdata of a zone's Start of Authority record.
type SOARecord struct {
	MName   string // primary master name server
	RName   string // mailbox of the zone administrator, dot-encoded
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32 // negative-caching TTL, RFC 2308
}

// RRType implements RData.
func (SOARecord) RRType() RRType { return RRTypeSOA }

// NewSOARecord validates and constructs an SOARecord.
func NewSOARecord(mname, rname string, serial, refresh, retry, expire, minimum uint32) (SOARecord, error) {
	if mname == "" {
		return SOARecord{}, fmt.Errorf("SOA record MNAME must not be empty")
	}
	if rname == "" {
		return SOARecord{}, fmt.Errorf("SOA record RNAME must not be empty")
	}
	return SOARecord{
		MName:   mname,
		RName:   rname,
		Serial:  serial,
		Refresh: refresh,
		Retry:   retry,
		Expire:  expire,
		Minimum: minimum,
	}, nil
}
