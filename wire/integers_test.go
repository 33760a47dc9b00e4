package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint16RoundTrip(t *testing.T) {
	for _, v := range []uint16{0, 1, 255, 256, 65535} {
		buf := EncodeUint16(nil, v)
		require.Len(t, buf, 2)
		got, n, err := DecodeUint16(buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, 2, n)
	}
}

func TestUint32RoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 65536, 4294967295} {
		buf := EncodeUint32(nil, v)
		require.Len(t, buf, 4)
		got, n, err := DecodeUint32(buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, 4, n)
	}
}

func TestDecodeUint8ShortInput(t *testing.T) {
	_, _, err := DecodeUint8(nil)
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestDecodeUint16ShortInput(t *testing.T) {
	_, _, err := DecodeUint16([]byte{0x01})
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestDecodeUint32ShortInput(t *testing.T) {
	_, _, err := DecodeUint32([]byte{0x01, 0x02})
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}
