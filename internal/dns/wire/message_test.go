package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packetforge/dns-codec/internal/dns/domain"
)

func TestAppendQuestion_IncrementsQDCount(t *testing.T) {
	p := New(ProtoDNS, 1500)
	q := domain.Question{Name: "example.com.", Type: domain.RRTypeA, Class: domain.RRClassIN}
	require.Nil(t, p.AppendQuestion(q))
	require.Nil(t, p.AppendQuestion(q))
	assert.Equal(t, uint16(2), p.QDCount())
}

func TestAppendAnswerAuthorityAdditional_IncrementCounts(t *testing.T) {
	p := New(ProtoDNS, 1500)
	rdata, err := domain.NewARecord("192.0.2.1")
	require.NoError(t, err)
	key, err := domain.NewResourceKey("example.com.", domain.RRTypeA, domain.RRClassIN)
	require.NoError(t, err)
	rr, err := domain.NewResourceRecord(key, 300, rdata)
	require.NoError(t, err)

	require.Nil(t, p.AppendAnswer(rr))
	require.Nil(t, p.AppendAuthorityRecord(rr))
	require.Nil(t, p.AppendAdditionalRecord(rr))

	assert.Equal(t, uint16(1), p.ANCount())
	assert.Equal(t, uint16(1), p.NSCount())
	assert.Equal(t, uint16(1), p.ARCount())
}

func TestAppendEDNS_IncrementsARCount(t *testing.T) {
	p := New(ProtoDNS, 1500)
	opt := domain.NewOPTRecord(4096, true)
	require.Nil(t, p.AppendEDNS(opt))
	assert.Equal(t, uint16(1), p.ARCount())
}
