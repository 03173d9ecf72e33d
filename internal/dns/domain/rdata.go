package domain

// RData is the tagged union of resource-record data payloads. Each concrete
// type is a plain value holder; the wire package switches on ResourceRecord.Type
// to decide which concrete RData to build or serialize. There is deliberately
// no Encode/Decode method here — spec §9 "Polymorphism over record types"
// calls for a match/switch over the type tag, not dynamic dispatch, and the
// switch lives in the wire codec, next to the Packet it reads and writes.
type RData interface {
	// RRType reports the record type this payload belongs to.
	RRType() RRType
}
