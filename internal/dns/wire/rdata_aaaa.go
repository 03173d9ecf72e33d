package wire

import (
	"net"

	"github.com/packetforge/dns-codec/internal/dns/domain"
)

func encodeAAAA(p *Packet, v domain.AAAARecord) *CodecError {
	addr := v.Address.To16()
	if addr == nil {
		return formatError("encodeAAAA", "address %v is not a valid IPv6 address", v.Address)
	}
	return p.AppendBlob(addr)
}

func decodeAAAA(p *Packet) (domain.AAAARecord, *CodecError) {
	b, err := p.ReadBlob(16)
	if err != nil {
		return domain.AAAARecord{}, err
	}
	return domain.AAAARecord{Address: net.IP(b)}, nil
}
