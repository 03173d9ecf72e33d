package domain

import "fmt"

// LOCRecord is the rdata of a location record (RFC 1876). Size, HorizPre,
// and VertPre are packed mantissa/exponent byte pairs on the wire; here they
// are kept decoded for ease of use by callers that don't care about the wire
// encoding.
type LOCRecord struct {
	Version   uint8 // NewLOCRecord always sets 0; a non-zero version on the wire decodes as an unparseable raw record
	Size      LOCPrecision
	HorizPre  LOCPrecision
	VertPre   LOCPrecision
	Latitude  uint32
	Longitude uint32
	Altitude  uint32
}

// LOCPrecision is a base-8 mantissa/exponent pair as packed into a single
// byte on the wire: mantissa in the high nibble, exponent in the low nibble.
type LOCPrecision struct {
	Mantissa uint8
	Exponent uint8
}

// RRType implements RData.
func (LOCRecord) RRType() RRType { return RRTypeLOC }

func (p LOCPrecision) validate() error {
	if p.Mantissa > 9 {
		return fmt.Errorf("LOC mantissa %d exceeds 9", p.Mantissa)
	}
	if p.Exponent > 9 {
		return fmt.Errorf("LOC exponent %d exceeds 9", p.Exponent)
	}
	if p.Mantissa == 0 && p.Exponent != 0 {
		return fmt.Errorf("LOC mantissa 0 requires exponent 0")
	}
	return nil
}

// NewLOCRecord validates and constructs a LOCRecord. Version must be 0; any
// other value belongs on the wire as an unparseable raw record instead
// (spec §9 open question: LOC unparseable fallback).
func NewLOCRecord(size, horizPre, vertPre LOCPrecision, latitude, longitude, altitude uint32) (LOCRecord, error) {
	for _, p := range []LOCPrecision{size, horizPre, vertPre} {
		if err := p.validate(); err != nil {
			return LOCRecord{}, err
		}
	}
	return LOCRecord{
		Version:   0,
		Size:      size,
		HorizPre:  horizPre,
		VertPre:   vertPre,
		Latitude:  latitude,
		Longitude: longitude,
		Altitude:  altitude,
	}, nil
}
