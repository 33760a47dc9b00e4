package packet

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestDeserializeConnackRejectsReservedAckFlags(t *testing.T) {
	// bit 1 of the acknowledge-flags byte is reserved and must be zero.
	body := []byte{0x02, byte(ReasonSuccess), 0x00}
	_, err := DeserializeConnack(body, false)
	require.ErrorIs(t, err, ErrReservedAckFlags)
	require.ErrorIs(t, err, ErrBadResponse)
}

func TestDeserializeConnackRejectsUnknownReasonCode(t *testing.T) {
	body := []byte{0x00, 0x7E, 0x00}
	_, err := DeserializeConnack(body, false)
	require.ErrorIs(t, err, ErrUnknownReasonCode)
	require.ErrorIs(t, err, ErrBadResponse)
}

func TestDeserializeConnackRejectsSessionPresentWithFailure(t *testing.T) {
	body := []byte{0x01, byte(ReasonNotAuthorized), 0x00}
	_, err := DeserializeConnack(body, false)
	require.ErrorIs(t, err, ErrSessionPresentWithFailure)
	require.ErrorIs(t, err, ErrBadResponse)
}

func TestDeserializeConnackReportsServerRefused(t *testing.T) {
	body := []byte{0x00, byte(ReasonNotAuthorized), 0x00}
	c, err := DeserializeConnack(body, false)
	require.ErrorIs(t, err, ErrServerRefused)
	require.False(t, errors.Is(err, ErrBadResponse))
	require.NotNil(t, c)
	require.Equal(t, ReasonNotAuthorized, c.ReasonCode)
}

func TestDeserializeConnackSuccessNoError(t *testing.T) {
	body := []byte{0x01, byte(ReasonSuccess), 0x00}
	c, err := DeserializeConnack(body, false)
	require.NoError(t, err)
	require.True(t, c.SessionPresent)
	require.Equal(t, ReasonSuccess, c.ReasonCode)
}
