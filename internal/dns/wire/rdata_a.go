package wire

import (
	"net"

	"github.com/packetforge/dns-codec/internal/dns/domain"
)

func encodeA(p *Packet, v domain.ARecord) *CodecError {
	addr := v.Address.To4()
	if addr == nil {
		return formatError("encodeA", "address %v is not a valid IPv4 address", v.Address)
	}
	return p.AppendBlob(addr)
}

func decodeA(p *Packet) (domain.ARecord, *CodecError) {
	b, err := p.ReadBlob(4)
	if err != nil {
		return domain.ARecord{}, err
	}
	return domain.ARecord{Address: net.IP(b)}, nil
}
