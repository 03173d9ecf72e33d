package wire

import (
	"encoding/binary"
	"unicode/utf8"
)

// AppendU8 writes a single octet.
func (p *Packet) AppendU8(v uint8) *CodecError {
	off, err := p.extend(1)
	if err != nil {
		return err
	}
	p.buf[off] = v
	return nil
}

// AppendU16 writes a big-endian u16.
func (p *Packet) AppendU16(v uint16) *CodecError {
	off, err := p.extend(2)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint16(p.buf[off:off+2], v)
	return nil
}

// AppendU32 writes a big-endian u32.
func (p *Packet) AppendU32(v uint32) *CodecError {
	off, err := p.extend(4)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(p.buf[off:off+4], v)
	return nil
}

// AppendBlob writes raw bytes verbatim, with no length prefix.
func (p *Packet) AppendBlob(b []byte) *CodecError {
	off, err := p.extend(len(b))
	if err != nil {
		return err
	}
	copy(p.buf[off:off+len(b)], b)
	return nil
}

// AppendString writes a length-prefixed octet string (1-byte length, body
// up to 255 bytes) — a DNS character-string.
func (p *Packet) AppendString(b []byte) *CodecError {
	if len(b) > 255 {
		return tooLarge("AppendString", "character-string of %d bytes exceeds 255", len(b))
	}
	if err := p.AppendU8(uint8(len(b))); err != nil {
		return err
	}
	return p.AppendBlob(b)
}

func (p *Packet) remaining() int { return p.size - p.rindex }

// ReadU8 reads a single octet, advancing rindex.
func (p *Packet) ReadU8() (uint8, *CodecError) {
	if p.remaining() < 1 {
		return 0, outOfBounds("ReadU8", "need 1 byte, have %d", p.remaining())
	}
	v := p.buf[p.rindex]
	p.rindex++
	return v, nil
}

// ReadU16 reads a big-endian u16, advancing rindex.
func (p *Packet) ReadU16() (uint16, *CodecError) {
	if p.remaining() < 2 {
		return 0, outOfBounds("ReadU16", "need 2 bytes, have %d", p.remaining())
	}
	v := binary.BigEndian.Uint16(p.buf[p.rindex : p.rindex+2])
	p.rindex += 2
	return v, nil
}

// ReadU32 reads a big-endian u32, advancing rindex.
func (p *Packet) ReadU32() (uint32, *CodecError) {
	if p.remaining() < 4 {
		return 0, outOfBounds("ReadU32", "need 4 bytes, have %d", p.remaining())
	}
	v := binary.BigEndian.Uint32(p.buf[p.rindex : p.rindex+4])
	p.rindex += 4
	return v, nil
}

// ReadBlob reads n raw bytes, advancing rindex. The returned slice is a copy;
// it does not alias the packet's internal buffer.
func (p *Packet) ReadBlob(n int) ([]byte, *CodecError) {
	if n < 0 || p.remaining() < n {
		return nil, outOfBounds("ReadBlob", "need %d bytes, have %d", n, p.remaining())
	}
	out := make([]byte, n)
	copy(out, p.buf[p.rindex:p.rindex+n])
	p.rindex += n
	return out, nil
}

// ReadRemaining reads every byte left in the declared region up to limit
// (an absolute offset, typically an RDLENGTH boundary), advancing rindex to
// limit.
func (p *Packet) ReadRemaining(limit int) ([]byte, *CodecError) {
	if limit < p.rindex || limit > p.size {
		return nil, outOfBounds("ReadRemaining", "limit %d out of range [%d,%d]", limit, p.rindex, p.size)
	}
	return p.ReadBlob(limit - p.rindex)
}

// ReadString reads a length-prefixed octet string as raw bytes (no text
// validation).
func (p *Packet) ReadString() ([]byte, *CodecError) {
	n, err := p.ReadU8()
	if err != nil {
		return nil, err
	}
	return p.ReadBlob(int(n))
}

// ReadText reads a length-prefixed octet string and validates it as text:
// no embedded NUL, valid UTF-8. Used for HINFO's character-strings.
func (p *Packet) ReadText() (string, *CodecError) {
	b, err := p.ReadString()
	if err != nil {
		return "", err
	}
	for _, c := range b {
		if c == 0 {
			return "", formatError("ReadText", "embedded NUL in text string")
		}
	}
	if !utf8.Valid(b) {
		return "", formatError("ReadText", "invalid UTF-8 in text string")
	}
	return string(b), nil
}
