package packet

import (
	"testing"

	"github.com/axmq/mqttcodec5/wire"
	"github.com/stretchr/testify/require"
)

func subackBody(t *testing.T, reasonCodes ...byte) []byte {
	t.Helper()
	buf := wire.EncodeUint16(nil, 1)
	buf = append(buf, 0x00) // empty property section
	buf = append(buf, reasonCodes...)
	return buf
}

func TestDeserializeSubackAcceptsGrantedQoS(t *testing.T) {
	s, err := DeserializeSuback(subackBody(t, 0x00, 0x01, 0x02))
	require.NoError(t, err)
	require.Equal(t, []ReasonCode{ReasonGrantedQoS0, ReasonGrantedQoS1, ReasonGrantedQoS2}, s.ReasonCodes)
}

func TestDeserializeSubackRejectsUnknownReasonCode(t *testing.T) {
	_, err := DeserializeSuback(subackBody(t, 0x11))
	require.ErrorIs(t, err, ErrUnknownReasonCode)
}

func TestDeserializeSubackReportsServerRefused(t *testing.T) {
	s, err := DeserializeSuback(subackBody(t, 0x00, 0x80))
	require.ErrorIs(t, err, ErrServerRefused)
	require.NotNil(t, s)
	require.Equal(t, []ReasonCode{ReasonGrantedQoS0, ReasonUnspecifiedError}, s.ReasonCodes)
}
