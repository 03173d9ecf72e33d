package domain

import "fmt"

// GenerateCacheKey returns a consistent identity key derived from a DNS
// name, type, and class. It is identity, not wire equality: two keys that
// compare equal may still have been encoded with different name casing.
func GenerateCacheKey(name string, t RRType, c RRClass) string {
	return fmt.Sprintf("%s:%d:%d", name, t, c)
}
