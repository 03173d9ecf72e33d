package wire

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/packetforge/dns-codec/internal/dns/common/utils"
)

// splitLabels splits a presentation-format name into its label texts,
// honoring backslash escapes so an escaped dot (`\.`) is not treated as a
// label separator. The trailing root dot, if present, is stripped first.
func splitLabels(name string) ([]string, error) {
	name = strings.TrimSuffix(name, ".")
	if name == "" {
		return nil, nil
	}
	var labels []string
	var cur strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '\\' {
			if i+1 >= len(name) {
				return nil, fmt.Errorf("trailing escape character in name %q", name)
			}
			cur.WriteByte(c)
			cur.WriteByte(name[i+1])
			i++
			continue
		}
		if c == '.' {
			labels = append(labels, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	labels = append(labels, cur.String())
	return labels, nil
}

func lowerASCII(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return out
}

// AppendName encodes name as a sequence of length-prefixed labels, using a
// compression pointer for the longest matching suffix already present in
// the packet when allowCompression is true (spec §4.3).
func (p *Packet) AppendName(name string, allowCompression, canonicalCandidate bool) *CodecError {
	start := p.size
	labels, err := splitLabels(name)
	if err != nil {
		return formatError("AppendName", "%v", err)
	}

	compressOK := allowCompression && !p.refuseCompression

	for i := 0; i < len(labels); i++ {
		suffixKey := strings.ToLower(strings.Join(labels[i:], "."))

		if compressOK {
			if off, ok := p.compression[suffixKey]; ok {
				if perr := p.AppendU16(uint16(0xC000 | off)); perr != nil {
					p.truncate(start)
					return perr
				}
				return nil
			}
			if p.size < CompressionPointerMax {
				p.compression[suffixKey] = p.size
			}
		}

		raw, uerr := utils.UnescapeLabel(labels[i])
		if uerr != nil {
			p.truncate(start)
			return formatError("AppendName", "%v", uerr)
		}
		text := string(raw)
		if p.proto == ProtoDNS {
			text = utils.ToASCII(text)
		} else {
			text = utils.ToUnicode(text)
		}
		encoded := []byte(text)
		if len(encoded) > LabelMax {
			p.truncate(start)
			return tooLarge("AppendName", "label %q exceeds %d bytes", labels[i], LabelMax)
		}
		if canonicalCandidate && p.canonicalForm {
			encoded = lowerASCII(encoded)
		}
		if perr := p.AppendU8(uint8(len(encoded))); perr != nil {
			p.truncate(start)
			return perr
		}
		if perr := p.AppendBlob(encoded); perr != nil {
			p.truncate(start)
			return perr
		}
	}

	if perr := p.AppendU8(0); perr != nil {
		p.truncate(start)
		return perr
	}
	return nil
}

// ReadName decodes a name starting at rindex, following at most one
// compression pointer chain, each link strictly decreasing in offset (the
// "jump barrier" rule, spec §4.3) to reject loops and forward jumps. On
// success rindex advances past the initial occurrence (the pointer, if one
// was taken) rather than past the followed target.
func (p *Packet) ReadName(allowCompression bool) (string, *CodecError) {
	startRindex := p.rindex
	var labels []string
	pos := p.rindex
	jumpBarrier := pos
	afterRindex := -1

	for {
		if pos < 0 || pos >= p.size {
			p.rindex = startRindex
			return "", outOfBounds("ReadName", "offset %d out of bounds", pos)
		}
		length := int(p.buf[pos])

		if length == 0 {
			pos++
			if afterRindex < 0 {
				afterRindex = pos
			}
			break
		}

		if length&0xC0 == 0xC0 {
			if !allowCompression {
				p.rindex = startRindex
				return "", formatError("ReadName", "compression pointer forbidden in this context")
			}
			if pos+1 >= p.size {
				p.rindex = startRindex
				return "", outOfBounds("ReadName", "truncated compression pointer at %d", pos)
			}
			ptr := int(binary.BigEndian.Uint16(p.buf[pos:pos+2]) &^ 0xC000)
			if afterRindex < 0 {
				afterRindex = pos + 2
			}
			if ptr < HeaderSize || ptr >= jumpBarrier {
				p.rindex = startRindex
				return "", formatError("ReadName", "forward or self-referential compression pointer to %d", ptr)
			}
			jumpBarrier = ptr
			pos = ptr
			continue
		}

		if length&0xC0 != 0 {
			p.rindex = startRindex
			return "", formatError("ReadName", "invalid label length byte 0x%02x", length)
		}
		if length > LabelMax {
			p.rindex = startRindex
			return "", formatError("ReadName", "label length %d exceeds %d", length, LabelMax)
		}
		pos++
		if pos+length > p.size {
			p.rindex = startRindex
			return "", outOfBounds("ReadName", "label of %d bytes exceeds buffer", length)
		}
		escaped := utils.EscapeLabel(p.buf[pos : pos+length])
		if len(escaped) > LabelEscapedMax {
			p.rindex = startRindex
			return "", formatError("ReadName", "escaped label length %d exceeds %d", len(escaped), LabelEscapedMax)
		}
		labels = append(labels, escaped)
		pos += length
	}

	p.rindex = afterRindex
	if len(labels) == 0 {
		return ".", nil
	}
	return strings.Join(labels, ".") + ".", nil
}
