package domain

import "testing"

func TestNewAAAARecord(t *testing.T) {
	if _, err := NewAAAARecord("not-an-ip"); err == nil {
		t.Error("expected error for invalid address")
	}
	if _, err := NewAAAARecord("192.0.2.1"); err == nil {
		t.Error("expected error for IPv4 address passed to AAAA")
	}
	aaaa, err := NewAAAARecord("2001:db8::1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if aaaa.RRType() != RRTypeAAAA {
		t.Errorf("RRType() = %v, want RRTypeAAAA", aaaa.RRType())
	}
}
