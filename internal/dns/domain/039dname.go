package domain

import "fmt"

// NewDNAMERecord constructs the rdata of a DNAME record: a redirect for an
// entire subtree of the namespace rooted at the owner name.
func NewDNAMERecord(target string) (NameTarget, error) {
	if target == "" {
		return NameTarget{}, fmt.Errorf("DNAME record target must not be empty")
	}
	return NameTarget{Target: target, Type: RRTypeDNAME}, nil
}
