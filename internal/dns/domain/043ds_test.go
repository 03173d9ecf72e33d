package domain

import "testing"

func TestNewDSRecord(t *testing.T) {
	if _, err := NewDSRecord(1, 8, 2, nil); err == nil {
		t.Error("expected error for empty digest")
	}
	ds, err := NewDSRecord(1, 8, 2, []byte{0x01, 0x02})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.RRType() != RRTypeDS {
		t.Errorf("RRType() = %v, want RRTypeDS", ds.RRType())
	}
}

func TestNewSSHFPRecord(t *testing.T) {
	if _, err := NewSSHFPRecord(1, 2, nil); err == nil {
		t.Error("expected error for empty fingerprint")
	}
	sshfp, err := NewSSHFPRecord(1, 2, []byte{0xaa})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sshfp.RRType() != RRTypeSSHFP {
		t.Errorf("RRType() = %v, want RRTypeSSHFP", sshfp.RRType())
	}
}

func TestNewDNSKEYRecord(t *testing.T) {
	if _, err := NewDNSKEYRecord(256, 3, 8, nil); err == nil {
		t.Error("expected error for empty key")
	}
	dk, err := NewDNSKEYRecord(256, 3, 8, []byte{0x01})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dk.RRType() != RRTypeDNSKEY {
		t.Errorf("RRType() = %v, want RRTypeDNSKEY", dk.RRType())
	}
}

func TestNewRRSIGRecord(t *testing.T) {
	if _, err := NewRRSIGRecord(RRTypeA, 8, 2, 3600, 0, 0, 1, "", []byte{0x01}); err == nil {
		t.Error("expected error for empty signer")
	}
	if _, err := NewRRSIGRecord(RRTypeA, 8, 2, 3600, 0, 0, 1, "example.com.", nil); err == nil {
		t.Error("expected error for empty signature")
	}
	sig, err := NewRRSIGRecord(RRTypeA, 8, 2, 3600, 0, 0, 1, "example.com.", []byte{0x01})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig.RRType() != RRTypeRRSIG {
		t.Errorf("RRType() = %v, want RRTypeRRSIG", sig.RRType())
	}
}

func TestNewNSECRecord(t *testing.T) {
	if _, err := NewNSECRecord("", nil); err == nil {
		t.Error("expected error for empty next domain name")
	}
	n, err := NewNSECRecord("next.example.com.", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.RRType() != RRTypeNSEC {
		t.Errorf("RRType() = %v, want RRTypeNSEC", n.RRType())
	}
	if n.Types != nil {
		t.Errorf("expected nil Types for empty bitmap, got %v", n.Types)
	}
}

func TestNewNSEC3Record(t *testing.T) {
	if _, err := NewNSEC3Record(1, 0, 0, nil, nil, nil); err == nil {
		t.Error("expected error for empty next hashed name")
	}
	n, err := NewNSEC3Record(1, 0, 0, nil, []byte{0x01, 0x02}, []RRType{RRTypeA})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.RRType() != RRTypeNSEC3 {
		t.Errorf("RRType() = %v, want RRTypeNSEC3", n.RRType())
	}
	if n.Salt != nil {
		t.Errorf("expected nil salt to be preserved, got %v", n.Salt)
	}
}

func TestOPTRecord(t *testing.T) {
	opt := NewOPTRecord(4096, true)
	if opt.RRType() != RRTypeOPT {
		t.Errorf("RRType() = %v, want RRTypeOPT", opt.RRType())
	}
	if !opt.DNSSECOK {
		t.Error("expected DNSSECOK to be true")
	}
	if opt.UDPSize != 4096 {
		t.Errorf("UDPSize = %d, want 4096", opt.UDPSize)
	}
}

func TestRawRData(t *testing.T) {
	const unknownType RRType = 257 // CAA, not modeled by this codec
	raw := RawRData{Type: unknownType, Data: []byte{0x01, 0x02}}
	if raw.RRType() != unknownType {
		t.Errorf("RRType() = %v, want %v", raw.RRType(), unknownType)
	}
}
