package domain

import "fmt"

// RRType represents a DNS resource record type (e.g. A, AAAA, MX).
// See IANA DNS Parameters for assigned codes.
type RRType uint16

// DNS Resource Record Type constants. This is the closed set of types the
// codec knows how to interpret structurally; anything else still round-trips
// through the wire but is carried as an opaque, unparseable blob.
const (
	RRTypeA      RRType = 1   // A - IPv4 address
	RRTypeNS     RRType = 2   // NS - Name server
	RRTypeCNAME  RRType = 5   // CNAME - Canonical name
	RRTypeSOA    RRType = 6   // SOA - Start of authority
	RRTypePTR    RRType = 12  // PTR - Pointer
	RRTypeHINFO  RRType = 13  // HINFO - Host information
	RRTypeMX     RRType = 15  // MX - Mail exchange
	RRTypeTXT    RRType = 16  // TXT - Text
	RRTypeAAAA   RRType = 28  // AAAA - IPv6 address
	RRTypeLOC    RRType = 29  // LOC - Location
	RRTypeSRV    RRType = 33  // SRV - Service
	RRTypeNAPTR  RRType = 35  // NAPTR - Naming authority pointer
	RRTypeDNAME  RRType = 39  // DNAME - Delegation name
	RRTypeOPT    RRType = 41  // OPT - EDNS(0) pseudo-record
	RRTypeDS     RRType = 43  // DS - Delegation signer
	RRTypeSSHFP  RRType = 44  // SSHFP - SSH key fingerprint
	RRTypeRRSIG  RRType = 46  // RRSIG - Resource record signature
	RRTypeNSEC   RRType = 47  // NSEC - Next secure
	RRTypeDNSKEY RRType = 48  // DNSKEY - DNS key
	RRTypeNSEC3  RRType = 50  // NSEC3 - Next secure, hashed
	RRTypeSPF    RRType = 99  // SPF - Sender Policy Framework (TXT-compatible rdata)
	RRTypeANY    RRType = 255 // ANY - Any type (query only)
)

// IsValid returns true if the RRType is one of the constants above. Key
// validation and query-type checks use it; the wire codec's rdata dispatch
// does not, so types outside this set are preserved verbatim and flagged
// Unparseable, and so are NAPTR and OPT, which are in the set but have no
// typed rdata decoder.
func (t RRType) IsValid() bool {
	switch t {
	case RRTypeA, RRTypeNS, RRTypeCNAME, RRTypeSOA, RRTypePTR, RRTypeHINFO, RRTypeMX,
		RRTypeTXT, RRTypeAAAA, RRTypeLOC, RRTypeSRV, RRTypeNAPTR, RRTypeDNAME, RRTypeOPT,
		RRTypeDS, RRTypeSSHFP, RRTypeRRSIG, RRTypeNSEC, RRTypeDNSKEY, RRTypeNSEC3,
		RRTypeSPF, RRTypeANY:
		return true
	default:
		return false
	}
}

// IsValidQueryType returns true if t is a type a Question may legally carry.
// ANY is valid in a query but never appears as an answer's type; OPT never
// appears as a question type at all (it rides in the Additional section).
func (t RRType) IsValidQueryType() bool {
	if t == RRTypeOPT {
		return false
	}
	return t.IsValid()
}

// String returns the textual representation of the RRType.
// For unknown types, it returns "UNKNOWN(<value>)".
func (t RRType) String() string {
	switch t {
	case RRTypeA:
		return "A"
	case RRTypeNS:
		return "NS"
	case RRTypeCNAME:
		return "CNAME"
	case RRTypeSOA:
		return "SOA"
	case RRTypePTR:
		return "PTR"
	case RRTypeHINFO:
		return "HINFO"
	case RRTypeMX:
		return "MX"
	case RRTypeTXT:
		return "TXT"
	case RRTypeAAAA:
		return "AAAA"
	case RRTypeLOC:
		return "LOC"
	case RRTypeSRV:
		return "SRV"
	case RRTypeNAPTR:
		return "NAPTR"
	case RRTypeDNAME:
		return "DNAME"
	case RRTypeOPT:
		return "OPT"
	case RRTypeDS:
		return "DS"
	case RRTypeSSHFP:
		return "SSHFP"
	case RRTypeRRSIG:
		return "RRSIG"
	case RRTypeNSEC:
		return "NSEC"
	case RRTypeDNSKEY:
		return "DNSKEY"
	case RRTypeNSEC3:
		return "NSEC3"
	case RRTypeSPF:
		return "SPF"
	case RRTypeANY:
		return "ANY"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint16(t))
	}
}

// RRTypeFromString converts a record type string to its corresponding RRType value.
func RRTypeFromString(s string) RRType {
	switch s {
	case "A":
		return RRTypeA
	case "NS":
		return RRTypeNS
	case "CNAME":
		return RRTypeCNAME
	case "SOA":
		return RRTypeSOA
	case "PTR":
		return RRTypePTR
	case "HINFO":
		return RRTypeHINFO
	case "MX":
		return RRTypeMX
	case "TXT":
		return RRTypeTXT
	case "AAAA":
		return RRTypeAAAA
	case "LOC":
		return RRTypeLOC
	case "SRV":
		return RRTypeSRV
	case "NAPTR":
		return RRTypeNAPTR
	case "DNAME":
		return RRTypeDNAME
	case "OPT":
		return RRTypeOPT
	case "DS":
		return RRTypeDS
	case "SSHFP":
		return RRTypeSSHFP
	case "RRSIG":
		return RRTypeRRSIG
	case "NSEC":
		return RRTypeNSEC
	case "DNSKEY":
		return RRTypeDNSKEY
	case "NSEC3":
		return RRTypeNSEC3
	case "SPF":
		return RRTypeSPF
	case "ANY":
		return RRTypeANY
	default:
		return 0 // invalid/unknown
	}
}
