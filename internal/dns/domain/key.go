package domain

import "fmt"

// ResourceKey is the {owner name, type, class} triple shared by Questions and
// the leading fields of every ResourceRecord (spec §3, "ResourceKey").
type ResourceKey struct {
	Name  string
	Type  RRType
	Class RRClass
}

// NewResourceKey constructs a ResourceKey and validates its fields.
func NewResourceKey(name string, rrtype RRType, class RRClass) (ResourceKey, error) {
	k := ResourceKey{Name: name, Type: rrtype, Class: class}
	if err := k.Validate(); err != nil {
		return ResourceKey{}, err
	}
	return k, nil
}

// Validate checks whether the ResourceKey fields are structurally valid.
func (k ResourceKey) Validate() error {
	if k.Name == "" {
		return fmt.Errorf("owner name must not be empty")
	}
	if !k.Type.IsValid() {
		return fmt.Errorf("unsupported RRType: %d", k.Type)
	}
	// OPT repurposes the class field as the advertised UDP payload size.
	if k.Type != RRTypeOPT && !k.Class.WithoutCacheFlush().IsValid() {
		return fmt.Errorf("unsupported RRClass: %d", k.Class)
	}
	return nil
}

// CacheKey returns a string key derived from the triple, suitable for map
// lookups keyed on identity rather than wire equality.
func (k ResourceKey) CacheKey() string {
	return GenerateCacheKey(k.Name, k.Type, k.Class)
}

// Question is a single entry in a message's question section. The question
// section carries no TTL or rdata, so it is exactly a ResourceKey (spec §4.8
// step 1: "Read QDCOUNT keys into a question list").
type Question = ResourceKey
