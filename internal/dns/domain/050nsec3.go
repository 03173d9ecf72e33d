package domain

import "fmt"

// NSEC3Record is the rdata of an NSEC3 record (RFC 5155 §3): a hashed
// equivalent of NSEC that does not reveal owner names by zone walking.
type NSEC3Record struct {
	Algorithm      uint8
	Flags          uint8
	Iterations     uint16
	Salt           []byte // may be zero-length
	NextHashedName []byte
	Types          []RRType
}

// RRType implements RData.
func (NSEC3Record) RRType() RRType { return RRTypeNSEC3 }

// NewNSEC3Record validates and constructs an NSEC3Record.
func NewNSEC3Record(algorithm, flags uint8, iterations uint16, salt, nextHashedName []byte, types []RRType) (NSEC3Record, error) {
	if len(nextHashedName) == 0 {
		return NSEC3Record{}, fmt.Errorf("NSEC3 record next hashed name must not be empty")
	}
	return NSEC3Record{
		Algorithm:      algorithm,
		Flags:          flags,
		Iterations:     iterations,
		Salt:           salt,
		NextHashedName: nextHashedName,
		Types:          types,
	}, nil
}
