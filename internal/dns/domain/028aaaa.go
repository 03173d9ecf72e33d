package domain

import (
	"fmt"
	"net"
)

// AAAARecord is the rdata of an AAAA record: a 16-byte IPv6 address.
type AAAARecord struct {
	Address net.IP
}

// RRType implements RData.
func (AAAARecord) RRType() RRType { return RRTypeAAAA }

// NewAAAARecord validates and constructs an AAAARecord.
func NewAAAARecord(addr string) (AAAARecord, error) {
	ip := net.ParseIP(addr)
	if ip == nil || ip.To4() != nil {
		return AAAARecord{}, fmt.Errorf("invalid AAAA record address: %q", addr)
	}
	return AAAARecord{Address: ip.To16()}, nil
}
