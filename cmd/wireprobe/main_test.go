package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packetforge/dns-codec/internal/dns/repos/fixtures"
	"github.com/packetforge/dns-codec/internal/dns/wire"
)

func TestParseProtocol(t *testing.T) {
	tests := []struct {
		in      string
		want    wire.Protocol
		wantErr bool
	}{
		{"dns", wire.ProtoDNS, false},
		{"mDNS", wire.ProtoMDNS, false},
		{"LLMNR", wire.ProtoLLMNR, false},
		{"bogus", 0, true},
	}
	for _, tt := range tests {
		got, err := parseProtocol(tt.in)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestBuildQuery_RoundTrips(t *testing.T) {
	raw, err := buildQuery(wire.ProtoDNS, 1500, "example.com.", "A")
	require.NoError(t, err)

	p := wire.New(wire.ProtoDNS, 1500)
	require.NoError(t, p.Ingest(raw))
	require.Nil(t, p.ValidateQuery())
	require.Nil(t, p.Extract())
	require.Len(t, p.Questions(), 1)
	assert.Equal(t, "example.com.", p.Questions()[0].Name)
}

func TestBuildQuery_RejectsUnknownType(t *testing.T) {
	_, err := buildQuery(wire.ProtoDNS, 1500, "example.com.", "NOTAREALTYPE")
	assert.Error(t, err)
}

func TestBuildQuery_LLMNRSingleQuestion(t *testing.T) {
	raw, err := buildQuery(wire.ProtoLLMNR, 1500, "host.", "A")
	require.NoError(t, err)

	p := wire.New(wire.ProtoLLMNR, 1500)
	require.NoError(t, p.Ingest(raw))
	assert.Nil(t, p.ValidateQuery())
}

func TestFixturesRoundTripThroughStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "captures.db")

	raw, err := buildQuery(wire.ProtoMDNS, 1500, "host.local.", "AAAA")
	require.NoError(t, err)

	store, err := fixtures.New(dbPath)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save("mdns-aaaa", wire.ProtoMDNS, raw))
	proto, loaded, err := store.Load("mdns-aaaa")
	require.NoError(t, err)
	assert.Equal(t, wire.ProtoMDNS, proto)
	assert.Equal(t, raw, loaded)
}
