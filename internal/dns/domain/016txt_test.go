package domain

import "testing"

func TestNewTXTRecord(t *testing.T) {
	txt := NewTXTRecord([][]byte{[]byte("v=spf1 -all")})
	if txt.RRType() != RRTypeTXT {
		t.Errorf("RRType() = %v, want RRTypeTXT", txt.RRType())
	}

	spf := NewSPFRecord([][]byte{[]byte("v=spf1 -all")})
	if spf.RRType() != RRTypeSPF {
		t.Errorf("RRType() = %v, want RRTypeSPF", spf.RRType())
	}
}

func TestNewTXTRecord_Empty(t *testing.T) {
	txt := NewTXTRecord(nil)
	if txt.Strings != nil {
		t.Errorf("expected nil Strings, got %v", txt.Strings)
	}
}
