package wire

import (
	"go.uber.org/multierr"

	"github.com/packetforge/dns-codec/internal/dns/common/log"
)

// Validate checks the structural bounds every packet must satisfy
// regardless of protocol or direction (spec §4.7).
func (p *Packet) Validate() *CodecError {
	if p.size < HeaderSize {
		return formatError("Validate", "packet shorter than header: %d bytes", p.size)
	}
	if p.size > PacketSizeMax {
		return tooLarge("Validate", "packet %d bytes exceeds PACKET_SIZE_MAX", p.size)
	}
	return nil
}

// ValidateQuery reports nil when p is a well-formed query for its protocol.
// It returns ErrNotApplicable-kind errors when the packet is structurally
// fine but is not a query at all (QR set), and FORMAT_ERROR-kind errors when
// it claims to be a query but violates its protocol's shape (spec §4.7: "0
// distinguishes not-of-this-kind from error/success").
func (p *Packet) ValidateQuery() *CodecError {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.QR() {
		return newErr(KindNotApplicable, "ValidateQuery", "QR bit set: packet is a reply, not a query")
	}
	if p.Opcode() != 0 {
		return formatError("ValidateQuery", "query opcode must be 0 (QUERY), got %d", p.Opcode())
	}
	if p.TC() {
		return formatError("ValidateQuery", "query must not set TC")
	}

	switch p.proto {
	case ProtoLLMNR:
		if p.QDCount() != 1 {
			return formatError("ValidateQuery", "LLMNR query must carry exactly one question, got %d", p.QDCount())
		}
		if p.ANCount() != 0 {
			return formatError("ValidateQuery", "LLMNR query must not carry answers, got %d", p.ANCount())
		}
		if p.NSCount() != 0 {
			return formatError("ValidateQuery", "LLMNR query must not carry authority records, got %d", p.NSCount())
		}
	case ProtoMDNS:
		if p.AA() || p.RD() || p.RA() || p.AD() || p.CD() {
			return formatError("ValidateQuery", "mDNS query must not set AA, RD, RA, AD, or CD")
		}
		if p.RCode() != 0 {
			return formatError("ValidateQuery", "mDNS query must carry RCODE 0, got %d", p.RCode())
		}
	}
	return nil
}

// ValidateReply reports nil when p is a well-formed reply for its protocol,
// mirroring ValidateQuery's NOT_APPLICABLE/FORMAT_ERROR split.
func (p *Packet) ValidateReply() *CodecError {
	if err := p.Validate(); err != nil {
		return err
	}
	if !p.QR() {
		return newErr(KindNotApplicable, "ValidateReply", "QR bit clear: packet is a query, not a reply")
	}
	if p.Opcode() != 0 {
		return formatError("ValidateReply", "reply opcode must be 0 (QUERY), got %d", p.Opcode())
	}

	switch p.proto {
	case ProtoLLMNR:
		if p.QDCount() != 1 {
			return formatError("ValidateReply", "LLMNR reply must echo exactly one question, got %d", p.QDCount())
		}
	case ProtoMDNS:
		if p.RCode() != 0 {
			return formatError("ValidateReply", "mDNS reply must carry RCODE 0, got %d", p.RCode())
		}
	}
	return nil
}

// Diagnose runs the header bounds check, the LLMNR single-question rule, the
// mDNS opcode rule and, once Extract has succeeded, the OPT owner-name rule,
// and aggregates every failure found rather than stopping at the first. It
// does not apply the direction-specific flag checks of ValidateQuery and
// ValidateReply.
func (p *Packet) Diagnose() error {
	var errs error
	if err := p.Validate(); err != nil {
		errs = multierr.Append(errs, err)
	}
	if p.proto == ProtoLLMNR && p.QDCount() != 1 {
		errs = multierr.Append(errs, formatError("Diagnose", "LLMNR packet must carry exactly one question, got %d", p.QDCount()))
	}
	if p.proto == ProtoMDNS && p.Opcode() != 0 {
		errs = multierr.Append(errs, formatError("Diagnose", "mDNS packet must use opcode 0, got %d", p.Opcode()))
	}
	if p.extracted && p.opt != nil {
		if p.opt.Name != "." {
			errs = multierr.Append(errs, formatError("Diagnose", "OPT record owner name must be root, got %q", p.opt.Name))
		}
	}
	if errs != nil {
		log.Warn(map[string]any{"proto": p.proto.String(), "error": errs.Error()}, "packet diagnostics found issues")
	}
	return errs
}
