package wire

import "github.com/packetforge/dns-codec/internal/dns/domain"

func encodeNSEC3(p *Packet, v domain.NSEC3Record) *CodecError {
	if err := p.AppendU8(v.Algorithm); err != nil {
		return err
	}
	if err := p.AppendU8(v.Flags); err != nil {
		return err
	}
	if err := p.AppendU16(v.Iterations); err != nil {
		return err
	}
	if len(v.Salt) > 255 {
		return tooLarge("encodeNSEC3", "salt of %d bytes exceeds 255", len(v.Salt))
	}
	if err := p.AppendU8(uint8(len(v.Salt))); err != nil {
		return err
	}
	if err := p.AppendBlob(v.Salt); err != nil {
		return err
	}
	if len(v.NextHashedName) > 255 {
		return tooLarge("encodeNSEC3", "next hashed name of %d bytes exceeds 255", len(v.NextHashedName))
	}
	if err := p.AppendU8(uint8(len(v.NextHashedName))); err != nil {
		return err
	}
	if err := p.AppendBlob(v.NextHashedName); err != nil {
		return err
	}
	return p.AppendBitmap(v.Types)
}

func decodeNSEC3(p *Packet, limit int) (domain.NSEC3Record, *CodecError) {
	algorithm, err := p.ReadU8()
	if err != nil {
		return domain.NSEC3Record{}, err
	}
	flags, err := p.ReadU8()
	if err != nil {
		return domain.NSEC3Record{}, err
	}
	iterations, err := p.ReadU16()
	if err != nil {
		return domain.NSEC3Record{}, err
	}
	saltLen, err := p.ReadU8()
	if err != nil {
		return domain.NSEC3Record{}, err
	}
	salt, err := p.ReadBlob(int(saltLen))
	if err != nil {
		return domain.NSEC3Record{}, err
	}
	hashLen, err := p.ReadU8()
	if err != nil {
		return domain.NSEC3Record{}, err
	}
	if hashLen == 0 {
		return domain.NSEC3Record{}, formatError("decodeNSEC3", "next hashed name length must not be zero")
	}
	nextHashedName, err := p.ReadBlob(int(hashLen))
	if err != nil {
		return domain.NSEC3Record{}, err
	}
	types, err := p.ReadBitmap(limit)
	if err != nil {
		return domain.NSEC3Record{}, err
	}
	rd, derr := domain.NewNSEC3Record(algorithm, flags, iterations, salt, nextHashedName, types)
	if derr != nil {
		return domain.NSEC3Record{}, formatError("decodeNSEC3", "%v", derr)
	}
	return rd, nil
}
