package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitives_RoundTrip(t *testing.T) {
	p := New(ProtoDNS, 1500)
	require.Nil(t, p.AppendU8(0x42))
	require.Nil(t, p.AppendU16(0xBEEF))
	require.Nil(t, p.AppendU32(0xDEADBEEF))
	require.Nil(t, p.AppendBlob([]byte{1, 2, 3}))
	require.Nil(t, p.AppendString([]byte("hello")))

	p.SetRindex(HeaderSize)
	u8, err := p.ReadU8()
	require.Nil(t, err)
	assert.Equal(t, uint8(0x42), u8)

	u16, err := p.ReadU16()
	require.Nil(t, err)
	assert.Equal(t, uint16(0xBEEF), u16)

	u32, err := p.ReadU32()
	require.Nil(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), u32)

	blob, err := p.ReadBlob(3)
	require.Nil(t, err)
	assert.Equal(t, []byte{1, 2, 3}, blob)

	str, err := p.ReadString()
	require.Nil(t, err)
	assert.Equal(t, []byte("hello"), str)
}

func TestReadU8_OutOfBounds(t *testing.T) {
	p := New(ProtoDNS, 1500)
	p.SetRindex(p.Size())
	_, err := p.ReadU8()
	require.NotNil(t, err)
	assert.Equal(t, KindOutOfBounds, err.Kind)
}

func TestAppendString_TooLong(t *testing.T) {
	p := New(ProtoDNS, 1500)
	err := p.AppendString(make([]byte, 256))
	require.NotNil(t, err)
	assert.Equal(t, KindTooLarge, err.Kind)
}

func TestReadText_RejectsEmbeddedNUL(t *testing.T) {
	p := New(ProtoDNS, 1500)
	require.Nil(t, p.AppendString([]byte{'a', 0x00, 'b'}))
	p.SetRindex(HeaderSize)
	_, err := p.ReadText()
	require.NotNil(t, err)
	assert.Equal(t, KindFormatError, err.Kind)
}

func TestReadRemaining_ReadsToLimit(t *testing.T) {
	p := New(ProtoDNS, 1500)
	require.Nil(t, p.AppendBlob([]byte{1, 2, 3, 4}))
	p.SetRindex(HeaderSize)
	b, err := p.ReadRemaining(p.Size())
	require.Nil(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, b)
	assert.Equal(t, p.Size(), p.Rindex())
}
