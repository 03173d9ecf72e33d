package domain

import "testing"

func TestNewSOARecord(t *testing.T) {
	tests := []struct {
		name        string
		mname       string
		rname       string
		expectError bool
	}{
		{name: "valid", mname: "ns1.example.com.", rname: "hostmaster.example.com.", expectError: false},
		{name: "empty mname", mname: "", rname: "hostmaster.example.com.", expectError: true},
		{name: "empty rname", mname: "ns1.example.com.", rname: "", expectError: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			soa, err := NewSOARecord(tc.mname, tc.rname, 2024010100, 3600, 600, 1209600, 300)
			if (err != nil) != tc.expectError {
				t.Fatalf("error = %v, expectError %v", err, tc.expectError)
			}
			if tc.expectError {
				return
			}
			if soa.RRType() != RRTypeSOA {
				t.Errorf("RRType() = %v, want RRTypeSOA", soa.RRType())
			}
		})
	}
}
