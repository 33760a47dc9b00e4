package fixedheader

import (
	"bytes"
	"context"
	"testing"

	"github.com/axmq/mqttcodec5/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEncodeRoundTrip(t *testing.T) {
	headers := []FixedHeader{
		{Type: CONNECT, RemainingLength: 12},
		{Type: CONNACK, RemainingLength: 3},
		{Type: PUBLISH, QoS: QoS1, RemainingLength: 200},
		{Type: PUBLISH, Dup: true, QoS: QoS2, Retain: true, RemainingLength: 16384},
		{Type: PUBREL, RemainingLength: 2},
		{Type: SUBSCRIBE, RemainingLength: 9},
		{Type: UNSUBSCRIBE, RemainingLength: 7},
		{Type: PINGREQ, RemainingLength: 0},
		{Type: PINGRESP, RemainingLength: 0},
		{Type: DISCONNECT, RemainingLength: 0},
		{Type: AUTH, RemainingLength: 0},
	}

	for _, h := range headers {
		buf, err := Encode(nil, h)
		require.NoError(t, err)
		assert.Equal(t, Size(h), len(buf))

		got, n, err := Parse(bytes.NewReader(buf))
		require.NoError(t, err)
		assert.Equal(t, h, got)
		assert.Equal(t, len(buf), n)

		got2, n2, err := ParseFromBytes(buf)
		require.NoError(t, err)
		assert.Equal(t, h, got2)
		assert.Equal(t, len(buf), n2)
	}
}

func TestParseRejectsReservedType(t *testing.T) {
	_, _, err := ParseFromBytes([]byte{0x00, 0x00})
	require.ErrorIs(t, err, ErrReservedPacketType)
}

func TestParseRejectsUnknownFlagsOnFixedNibblePackets(t *testing.T) {
	// PUBREL demands the 0010 nibble.
	_, _, err := ParseFromBytes([]byte{byte(PUBREL)<<4 | 0x0, 0x00})
	require.ErrorIs(t, err, ErrInvalidFlags)
}

func TestParsePublishRejectsQoS3(t *testing.T) {
	b := byte(PUBLISH)<<4 | 0x06 // QoS bits = 11
	_, _, err := ParseFromBytes([]byte{b, 0x00})
	require.ErrorIs(t, err, ErrInvalidQoS)
}

func TestParsePublishRejectsDupWithQoS0(t *testing.T) {
	b := byte(PUBLISH)<<4 | 0x08 // DUP set, QoS 0
	_, _, err := ParseFromBytes([]byte{b, 0x00})
	require.ErrorIs(t, err, ErrDupWithQoS0)
}

func TestEncodeRejectsInvalidQoS(t *testing.T) {
	_, err := Encode(nil, FixedHeader{Type: PUBLISH, QoS: 3})
	require.ErrorIs(t, err, ErrInvalidQoS)
}

func TestParseStream(t *testing.T) {
	h := FixedHeader{Type: PUBLISH, QoS: QoS1, RemainingLength: 16384}
	buf, err := Encode(nil, h)
	require.NoError(t, err)

	pos := 0
	recv := func(_ context.Context, out []byte) (int, error) {
		if pos >= len(buf) {
			return 0, nil
		}
		n := copy(out, buf[pos:pos+1])
		pos += n
		return n, nil
	}

	got, n, err := ParseStream(context.Background(), wire.ByteReader(recv))
	require.NoError(t, err)
	assert.Equal(t, h, got)
	assert.Equal(t, len(buf), n)
}

func TestPacketTypeIsInbound(t *testing.T) {
	assert.True(t, CONNACK.IsInbound())
	assert.True(t, PUBLISH.IsInbound())
	assert.False(t, CONNECT.IsInbound())
	assert.False(t, SUBSCRIBE.IsInbound())
}

func TestQoSIsValid(t *testing.T) {
	assert.True(t, QoS0.IsValid())
	assert.True(t, QoS2.IsValid())
	assert.False(t, QoS(3).IsValid())
}
