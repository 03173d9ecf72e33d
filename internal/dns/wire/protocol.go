package wire

// Protocol selects which protocol-specific validation and name-codec
// behavior applies to a Packet: conventional DNS, mDNS, or LLMNR (spec §1).
type Protocol int

const (
	ProtoDNS Protocol = iota
	ProtoMDNS
	ProtoLLMNR
)

func (p Protocol) String() string {
	switch p {
	case ProtoDNS:
		return "DNS"
	case ProtoMDNS:
		return "mDNS"
	case ProtoLLMNR:
		return "LLMNR"
	default:
		return "UNKNOWN"
	}
}

const (
	// HeaderSize is the fixed 12-byte RFC 1035 header.
	HeaderSize = 12
	// UDPHeaderSize is subtracted from a caller-supplied MTU to size the
	// initial packet buffer (spec §4.1).
	UDPHeaderSize = 8
	// UDPSizeMax is the conventional unicast UDP response size ceiling
	// absent EDNS(0) negotiation.
	UDPSizeMax = 512
	// PacketSizeMax is the hard cap on packet size (TCP-framed message body).
	PacketSizeMax = 65535
	// LabelMax is the maximum length of a single decoded (unescaped) label.
	LabelMax = 63
	// LabelEscapedMax bounds a label's length budget after RFC 1035 escaping.
	LabelEscapedMax = LabelMax * 4
	// CompressionPointerMax is the exclusive upper bound of the 14-bit
	// compression pointer address space.
	CompressionPointerMax = 0x4000
)

func clampInitialCapacity(mtu int) int {
	cap := mtu - UDPHeaderSize
	if cap < HeaderSize {
		cap = HeaderSize
	}
	if cap > PacketSizeMax {
		cap = PacketSizeMax
	}
	return nextPage(cap)
}

const pageSize = 512

func nextPage(n int) int {
	if n <= 0 {
		return pageSize
	}
	return ((n + pageSize - 1) / pageSize) * pageSize
}
