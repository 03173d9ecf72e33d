package domain

import "fmt"

// MXRecord is the rdata of a mail exchange record.
type MXRecord struct {
	Preference uint16
	Exchange   string
}

// RRType implements RData.
func (MXRecord) RRType() RRType { return RRTypeMX }

// NewMXRecord validates and constructs an MXRecord.
func NewMXRecord(preference uint16, exchange string) (MXRecord, error) {
	if exchange == "" {
		return MXRecord{}, fmt.Errorf("MX record exchange must not be empty")
	}
	return MXRecord{Preference: preference, Exchange: exchange}, nil
}
