package domain

import "fmt"

// SSHFPRecord is the rdata of an SSH fingerprint record (RFC 4255).
type SSHFPRecord struct {
	Algorithm   uint8
	FPType      uint8
	Fingerprint []byte
}

// RRType implements RData.
func (SSHFPRecord) RRType() RRType { return RRTypeSSHFP }

// NewSSHFPRecord validates and constructs an SSHFPRecord.
func NewSSHFPRecord(algorithm, fpType uint8, fingerprint []byte) (SSHFPRecord, error) {
	if len(fingerprint) == 0 {
		return SSHFPRecord{}, fmt.Errorf("SSHFP record fingerprint must not be empty")
	}
	return SSHFPRecord{Algorithm: algorithm, FPType: fpType, Fingerprint: fingerprint}, nil
}
