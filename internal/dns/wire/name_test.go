package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendReadName_RoundTrip(t *testing.T) {
	p := New(ProtoDNS, 1500)
	require.Nil(t, p.AppendName("www.example.com.", true, false))

	p.SetRindex(HeaderSize)
	name, err := p.ReadName(true)
	require.Nil(t, err)
	assert.Equal(t, "www.example.com.", name)
}

func TestAppendName_Compression(t *testing.T) {
	p := New(ProtoDNS, 1500)
	require.Nil(t, p.AppendName("www.example.com.", true, false))
	firstEnd := p.Size()

	require.Nil(t, p.AppendName("mail.example.com.", true, false))
	secondSize := p.Size() - firstEnd

	// "example.com." was already present, and "mail" is a new label (5
	// bytes len+text) followed by a 2-byte pointer: much less than the
	// fully spelled-out name would cost.
	assert.Less(t, secondSize, len("mail.example.com.")+1)

	p.SetRindex(firstEnd)
	name, err := p.ReadName(true)
	require.Nil(t, err)
	assert.Equal(t, "mail.example.com.", name)
}

func TestReadName_RejectsForwardPointer(t *testing.T) {
	p := New(ProtoDNS, 1500)
	// A pointer to an offset at or beyond the pointer's own position must
	// be rejected to prevent loops (spec §4.3 jump-barrier rule).
	off, cerr := p.extend(2)
	require.Nil(t, cerr)
	p.buf[off] = 0xC0
	p.buf[off+1] = byte(off + 10)

	p.SetRindex(off)
	_, err := p.ReadName(true)
	require.NotNil(t, err)
	assert.Equal(t, KindFormatError, err.Kind)
}

func TestReadName_RejectsCompressionWhenForbidden(t *testing.T) {
	p := New(ProtoDNS, 1500)
	require.Nil(t, p.AppendName("a.example.", true, false))
	startOfSecond := p.Size()
	require.Nil(t, p.AppendName("b.example.", true, false))

	p.SetRindex(startOfSecond)
	_, err := p.ReadName(false)
	require.NotNil(t, err)
	assert.Equal(t, KindFormatError, err.Kind)
}

func TestAppendName_EscapedLabel(t *testing.T) {
	p := New(ProtoDNS, 1500)
	require.Nil(t, p.AppendName(`a\.b.example.`, true, false))

	p.SetRindex(HeaderSize)
	name, err := p.ReadName(true)
	require.Nil(t, err)
	assert.Equal(t, `a\.b.example.`, name)
}

func TestAppendName_LabelTooLong(t *testing.T) {
	p := New(ProtoDNS, 1500)
	long := make([]byte, LabelMax+1)
	for i := range long {
		long[i] = 'a'
	}
	err := p.AppendName(string(long)+".", true, false)
	require.NotNil(t, err)
	assert.Equal(t, KindTooLarge, err.Kind)
}

func TestAppendName_RootName(t *testing.T) {
	p := New(ProtoDNS, 1500)
	require.Nil(t, p.AppendName(".", true, false))
	p.SetRindex(HeaderSize)
	name, err := p.ReadName(true)
	require.Nil(t, err)
	assert.Equal(t, ".", name)
}
