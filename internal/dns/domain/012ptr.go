package domain

import "fmt"

// NewPTRRecord constructs the rdata of a PTR record: the domain name that
// the (usually in-addr.arpa or ip6.arpa) owner name points to.
func NewPTRRecord(target string) (NameTarget, error) {
	if target == "" {
		return NameTarget{}, fmt.Errorf("PTR record target must not be empty")
	}
	return NameTarget{Target: target, Type: RRTypePTR}, nil
}
