package wire

import (
	"fmt"

	"github.com/packetforge/dns-codec/internal/dns/common/log"
)

// Kind distinguishes error taxonomies (spec §7). It is not a type per error,
// just an integer tag so callers can branch on category without string
// matching.
type Kind int

const (
	// KindOutOfBounds covers SHORT_READ: a read requested bytes past size.
	KindOutOfBounds Kind = iota + 1
	// KindFormatError covers structurally invalid input.
	KindFormatError
	// KindTooLarge covers a write exceeding PACKET_SIZE_MAX or RDLENGTH > 0xFFFF.
	KindTooLarge
	// KindNotApplicable is returned by validators when the packet is
	// well-formed but not of the asked kind (e.g. asked for reply, got query).
	KindNotApplicable
)

func (k Kind) String() string {
	switch k {
	case KindOutOfBounds:
		return "OUT_OF_BOUNDS"
	case KindFormatError:
		return "FORMAT_ERROR"
	case KindTooLarge:
		return "TOO_LARGE"
	case KindNotApplicable:
		return "NOT_APPLICABLE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(k))
	}
}

// CodecError is the error type returned by every operation in this package.
// Op names the failing operation (e.g. "ReadName", "AppendRecord") so logs
// and tests can pinpoint the failure without parsing the message.
type CodecError struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *CodecError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *CodecError) Unwrap() error { return e.Err }

// Is reports whether e matches target; every KindNotApplicable error matches
// the ErrNotApplicable sentinel.
func (e *CodecError) Is(target error) bool {
	return target == ErrNotApplicable && e.Kind == KindNotApplicable
}

// ErrNotApplicable is the sentinel a caller can compare against (via
// errors.Is) to distinguish "not of this kind" from a genuine failure.
var ErrNotApplicable = &CodecError{Kind: KindNotApplicable, Op: "Validate"}

func newErr(kind Kind, op string, format string, args ...any) *CodecError {
	return &CodecError{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

func outOfBounds(op, format string, args ...any) *CodecError {
	return newErr(KindOutOfBounds, op, format, args...)
}

func formatError(op, format string, args ...any) *CodecError {
	return newErr(KindFormatError, op, format, args...)
}

func tooLarge(op, format string, args ...any) *CodecError {
	return newErr(KindTooLarge, op, format, args...)
}

// logMalformed records a decode failure at Debug level: these are expected
// outcomes of attacker-controlled or simply corrupt input, not operational
// anomalies, so they never log above Debug.
func (p *Packet) logMalformed(err *CodecError, offset int) {
	log.Debug(map[string]any{
		"offset": offset,
		"kind":   err.Kind.String(),
		"op":     err.Op,
		"proto":  p.proto.String(),
	}, "malformed record")
}
