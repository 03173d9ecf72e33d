package domain

import "fmt"

// HINFORecord is the rdata of a host information record: two character-strings
// naming the CPU and OS.
type HINFORecord struct {
	CPU string
	OS  string
}

// RRType implements RData.
func (HINFORecord) RRType() RRType { return RRTypeHINFO }

// NewHINFORecord validates and constructs an HINFORecord. Each field is a DNS
// character-string and must fit in 255 bytes.
func NewHINFORecord(cpu, os string) (HINFORecord, error) {
	if len(cpu) > 255 {
		return HINFORecord{}, fmt.Errorf("HINFO CPU field exceeds 255 bytes")
	}
	if len(os) > 255 {
		return HINFORecord{}, fmt.Errorf("HINFO OS field exceeds 255 bytes")
	}
	return HINFORecord{CPU: cpu, OS: os}, nil
}
