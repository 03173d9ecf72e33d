package wire

import "github.com/packetforge/dns-codec/internal/dns/domain"

func encodeSSHFP(p *Packet, v domain.SSHFPRecord) *CodecError {
	if err := p.AppendU8(v.Algorithm); err != nil {
		return err
	}
	if err := p.AppendU8(v.FPType); err != nil {
		return err
	}
	return p.AppendBlob(v.Fingerprint)
}

func decodeSSHFP(p *Packet, limit int) (domain.SSHFPRecord, *CodecError) {
	algorithm, err := p.ReadU8()
	if err != nil {
		return domain.SSHFPRecord{}, err
	}
	fpType, err := p.ReadU8()
	if err != nil {
		return domain.SSHFPRecord{}, err
	}
	fingerprint, err := p.ReadRemaining(limit)
	if err != nil {
		return domain.SSHFPRecord{}, err
	}
	rd, derr := domain.NewSSHFPRecord(algorithm, fpType, fingerprint)
	if derr != nil {
		return domain.SSHFPRecord{}, formatError("decodeSSHFP", "%v", derr)
	}
	return rd, nil
}
