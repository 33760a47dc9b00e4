package props

import (
	"testing"

	"github.com/axmq/mqttcodec5/fixedheader"
	"github.com/axmq/mqttcodec5/proptab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAllRejectsDuplicate(t *testing.T) {
	b := NewBuilder(nil)
	require.NoError(t, b.AddSessionExpiryInterval(3600, fixedheader.CONNECT))
	data := append([]byte{}, b.Bytes()...)
	data = append(data, byte(proptab.SessionExpiryInterval), 0, 0, 0, 1)

	_, err := DecodeAll(data, fixedheader.CONNECT, false)
	require.ErrorIs(t, err, ErrDuplicateProperty)
}

func TestDecodeAllRejectsDisallowedProperty(t *testing.T) {
	b := NewBuilder(nil)
	require.NoError(t, b.AddMaximumQoS(1, fixedheader.CONNACK))

	_, err := DecodeAll(b.Bytes(), fixedheader.PUBLISH, false)
	require.ErrorIs(t, err, ErrNotAllowed)
}

func TestDecodeAllRejectsUnknownID(t *testing.T) {
	_, err := DecodeAll([]byte{0x7E, 0x01}, fixedheader.CONNECT, false)
	require.ErrorIs(t, err, ErrUnknownPropertyID)
}

func TestDecodeAllEnforcesResponseInfoCrossCheck(t *testing.T) {
	b := NewBuilder(nil)
	require.NoError(t, b.AddResponseInformation("responses/", fixedheader.CONNACK))

	_, err := DecodeAll(b.Bytes(), fixedheader.CONNACK, false)
	require.ErrorIs(t, err, ErrInconsistentResponseInfo)

	_, err = DecodeAll(b.Bytes(), fixedheader.CONNACK, true)
	require.NoError(t, err)
}

func TestDecodeAllPreservesOrder(t *testing.T) {
	b := NewBuilder(nil)
	require.NoError(t, b.AddReceiveMaximum(10, fixedheader.CONNECT))
	require.NoError(t, b.AddSessionExpiryInterval(20, fixedheader.CONNECT))
	require.NoError(t, b.AddUserProperty("a", "b", fixedheader.CONNECT))

	decoded, err := DecodeAll(b.Bytes(), fixedheader.CONNECT, false)
	require.NoError(t, err)
	require.Len(t, decoded.Entries, 3)
	assert.Equal(t, proptab.ReceiveMaximum, decoded.Entries[0].ID)
	assert.Equal(t, proptab.SessionExpiryInterval, decoded.Entries[1].ID)
	assert.Equal(t, proptab.UserProperty, decoded.Entries[2].ID)
}

func TestReaderPeekAndGet(t *testing.T) {
	b := NewBuilder(nil)
	require.NoError(t, b.AddReceiveMaximum(50, fixedheader.CONNECT))
	require.NoError(t, b.AddSessionExpiryInterval(99, fixedheader.CONNECT))

	r := NewReader(b.Bytes())
	idx := 0

	id, err := r.PeekNextPropertyType(&idx)
	require.NoError(t, err)
	assert.Equal(t, proptab.ReceiveMaximum, id)

	v, err := r.GetUint16(&idx, proptab.ReceiveMaximum)
	require.NoError(t, err)
	assert.Equal(t, uint16(50), v)

	id, err = r.PeekNextPropertyType(&idx)
	require.NoError(t, err)
	assert.Equal(t, proptab.SessionExpiryInterval, id)

	v2, err := r.GetUint32(&idx, proptab.SessionExpiryInterval)
	require.NoError(t, err)
	assert.Equal(t, uint32(99), v2)

	_, err = r.PeekNextPropertyType(&idx)
	require.ErrorIs(t, err, ErrNoDataAvailable)
}

func TestReaderGetWrongIDRejected(t *testing.T) {
	b := NewBuilder(nil)
	require.NoError(t, b.AddReceiveMaximum(50, fixedheader.CONNECT))

	r := NewReader(b.Bytes())
	idx := 0
	_, err := r.GetUint32(&idx, proptab.SessionExpiryInterval)
	require.ErrorIs(t, err, ErrUnexpectedPropertyID)
}

func TestReaderUserProperty(t *testing.T) {
	b := NewBuilder(nil)
	require.NoError(t, b.AddUserProperty("hello", "world", fixedheader.CONNECT))

	r := NewReader(b.Bytes())
	idx := 0
	k, v, err := r.GetUserProperty(&idx)
	require.NoError(t, err)
	assert.Equal(t, "hello", k)
	assert.Equal(t, "world", v)
}
