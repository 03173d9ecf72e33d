package domain

import "fmt"

// NewCNAMERecord constructs the rdata of a CNAME record: the canonical name
// the owner name is an alias for.
func NewCNAMERecord(canonical string) (NameTarget, error) {
	if canonical == "" {
		return NameTarget{}, fmt.Errorf("CNAME record target must not be empty")
	}
	return NameTarget{Target: canonical, Type: RRTypeCNAME}, nil
}
