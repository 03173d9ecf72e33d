package domain

import "testing"

func TestNewLOCRecord(t *testing.T) {
	valid := LOCPrecision{Mantissa: 1, Exponent: 2}
	if _, err := NewLOCRecord(valid, valid, valid, 1, 2, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tooBigMantissa := LOCPrecision{Mantissa: 10, Exponent: 0}
	if _, err := NewLOCRecord(tooBigMantissa, valid, valid, 0, 0, 0); err == nil {
		t.Error("expected error for mantissa > 9")
	}

	zeroMantissaNonZeroExp := LOCPrecision{Mantissa: 0, Exponent: 1}
	if _, err := NewLOCRecord(zeroMantissaNonZeroExp, valid, valid, 0, 0, 0); err == nil {
		t.Error("expected error for mantissa=0 with nonzero exponent")
	}

	zeroBoth := LOCPrecision{Mantissa: 0, Exponent: 0}
	loc, err := NewLOCRecord(zeroBoth, zeroBoth, zeroBoth, 0, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error for all-zero precision: %v", err)
	}
	if loc.RRType() != RRTypeLOC {
		t.Errorf("RRType() = %v, want RRTypeLOC", loc.RRType())
	}
}
