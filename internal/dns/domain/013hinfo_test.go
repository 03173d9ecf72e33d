package domain

import (
	"strings"
	"testing"
)

func TestNewHINFORecord(t *testing.T) {
	if _, err := NewHINFORecord(strings.Repeat("x", 256), "linux"); err == nil {
		t.Error("expected error for oversized CPU field")
	}
	if _, err := NewHINFORecord("amd64", strings.Repeat("x", 256)); err == nil {
		t.Error("expected error for oversized OS field")
	}
	hi, err := NewHINFORecord("amd64", "linux")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hi.RRType() != RRTypeHINFO {
		t.Errorf("RRType() = %v, want RRTypeHINFO", hi.RRType())
	}
}
