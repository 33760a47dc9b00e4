package fixedheader

import "github.com/cockroachdb/errors"

var (
	// ErrReservedPacketType indicates a fixed header named the reserved
	// type 0.
	ErrReservedPacketType = errors.New("reserved packet type")

	// ErrUnknownPacketType indicates a fixed header named a type value
	// outside 1..15.
	ErrUnknownPacketType = errors.New("unknown packet type")

	// ErrInvalidFlags indicates the low nibble of the first fixed-header
	// byte did not match the fixed pattern a packet type requires.
	ErrInvalidFlags = errors.New("invalid fixed header flags")

	// ErrInvalidQoS indicates a PUBLISH packet's flags encoded QoS 3,
	// which MQTT v5 never defines.
	ErrInvalidQoS = errors.New("invalid QoS level")

	// ErrDupWithQoS0 indicates a PUBLISH packet set the DUP flag on a
	// QoS 0 message, which is never meaningful.
	ErrDupWithQoS0 = errors.New("DUP flag set on QoS 0 PUBLISH")

	// ErrRemainingLengthTooLarge indicates a fixed header's Remaining
	// Length exceeded the protocol maximum (268,435,455).
	ErrRemainingLengthTooLarge = errors.New("remaining length exceeds protocol maximum")
)
