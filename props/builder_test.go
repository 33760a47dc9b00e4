package props

import (
	"testing"

	"github.com/axmq/mqttcodec5/fixedheader"
	"github.com/axmq/mqttcodec5/proptab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderAddRejectsDisallowedPacketType(t *testing.T) {
	b := NewBuilder(nil)
	err := b.AddAssignedClientIdentifier("client-1", fixedheader.CONNECT)
	require.ErrorIs(t, err, ErrNotAllowed)
}

func TestBuilderRejectsSecondOccurrence(t *testing.T) {
	b := NewBuilder(nil)
	require.NoError(t, b.AddSessionExpiryInterval(10, fixedheader.CONNECT))
	err := b.AddSessionExpiryInterval(20, fixedheader.CONNECT)
	require.ErrorIs(t, err, ErrAlreadySet)
}

func TestBuilderRejectsZeroValues(t *testing.T) {
	b := NewBuilder(nil)
	require.ErrorIs(t, b.AddReceiveMaximum(0, fixedheader.CONNECT), ErrZeroValue)
	require.ErrorIs(t, b.AddMaximumPacketSize(0, fixedheader.CONNECT), ErrZeroValue)
	require.ErrorIs(t, b.AddTopicAlias(0, fixedheader.PUBLISH), ErrZeroValue)
	require.ErrorIs(t, b.AddSubscriptionIdentifier(0, fixedheader.PUBLISH), ErrZeroValue)
}

func TestBuilderRejectsWildcardResponseTopic(t *testing.T) {
	b := NewBuilder(nil)
	require.ErrorIs(t, b.AddResponseTopic("a/+/b", fixedheader.PUBLISH), ErrWildcardInResponseTopic)
	require.ErrorIs(t, b.AddResponseTopic("a/#", fixedheader.PUBLISH), ErrWildcardInResponseTopic)
	require.NoError(t, b.AddResponseTopic("a/b/c", fixedheader.PUBLISH))
}

func TestBuilderAuthDataRequiresAuthMethodFirst(t *testing.T) {
	b := NewBuilder(nil)
	err := b.AddAuthenticationData([]byte{1, 2, 3}, fixedheader.AUTH)
	require.ErrorIs(t, err, ErrAuthDataBeforeAuthMethod)

	require.NoError(t, b.AddAuthenticationMethod("SCRAM-SHA-1", fixedheader.AUTH))
	require.NoError(t, b.AddAuthenticationData([]byte{1, 2, 3}, fixedheader.AUTH))
}

func TestBuilderAuthOrderingCanBeDisabled(t *testing.T) {
	b := NewBuilder(nil)
	b.StrictAuthOrdering = false
	require.NoError(t, b.AddAuthenticationData([]byte{1}, fixedheader.AUTH))
}

func TestBuilderUserPropertyMultiOccurrence(t *testing.T) {
	b := NewBuilder(nil)
	require.NoError(t, b.AddUserProperty("k1", "v1", fixedheader.CONNECT))
	require.NoError(t, b.AddUserProperty("k1", "v2", fixedheader.CONNECT))
	require.NoError(t, b.AddUserProperty("k2", "v3", fixedheader.CONNECT))

	decoded, err := DecodeAll(b.Bytes(), fixedheader.CONNECT, false)
	require.NoError(t, err)
	assert.Len(t, decoded.UserProperties, 3)
}

func TestBuilderUserPropertyRejectsEmpty(t *testing.T) {
	b := NewBuilder(nil)
	require.ErrorIs(t, b.AddUserProperty("", "v", fixedheader.CONNECT), ErrEmptyString)
	require.ErrorIs(t, b.AddUserProperty("k", "", fixedheader.CONNECT), ErrEmptyString)
}

func TestBuilderRejectsEmptyStrings(t *testing.T) {
	b := NewBuilder(nil)
	require.ErrorIs(t, b.AddContentType("", fixedheader.PUBLISH), ErrEmptyString)
}

func TestBuilderRoundTripConnect(t *testing.T) {
	b := NewBuilder(nil)
	require.NoError(t, b.AddSessionExpiryInterval(3600, fixedheader.CONNECT))
	require.NoError(t, b.AddReceiveMaximum(100, fixedheader.CONNECT))
	require.NoError(t, b.AddMaximumPacketSize(65536, fixedheader.CONNECT))
	require.NoError(t, b.AddUserProperty("env", "prod", fixedheader.CONNECT))

	decoded, err := DecodeAll(b.Bytes(), fixedheader.CONNECT, false)
	require.NoError(t, err)

	sei, ok := decoded.Uint32(proptab.SessionExpiryInterval)
	require.True(t, ok)
	assert.Equal(t, uint32(3600), sei)

	rm, ok := decoded.Uint16(proptab.ReceiveMaximum)
	require.True(t, ok)
	assert.Equal(t, uint16(100), rm)

	require.Len(t, decoded.UserProperties, 1)
	assert.Equal(t, "env", decoded.UserProperties[0].Key)
}

func TestBuilderReset(t *testing.T) {
	b := NewBuilder(nil)
	require.NoError(t, b.AddSessionExpiryInterval(3600, fixedheader.CONNECT))
	assert.Positive(t, b.Len())
	b.Reset()
	assert.Equal(t, 0, b.Len())
	require.NoError(t, b.AddSessionExpiryInterval(10, fixedheader.CONNECT))
}
