package packet

import "github.com/cockroachdb/errors"

var (
	// ErrUnsupportedProtocolVersion indicates a CONNECT packet named a
	// protocol version other than 5.
	ErrUnsupportedProtocolVersion = errors.New("unsupported protocol version")

	// ErrMalformedProtocolName indicates a CONNECT packet's protocol
	// name was not the literal string "MQTT".
	ErrMalformedProtocolName = errors.New("malformed protocol name")

	// ErrWillFlagsInconsistent indicates WillQoS or WillRetain were set
	// without WillFlag, or WillQoS was 3.
	ErrWillFlagsInconsistent = errors.New("will flags inconsistent with will flag")

	// ErrPasswordWithoutUsername indicates the password flag was set
	// without the username flag, which MQTT v5 forbids.
	ErrPasswordWithoutUsername = errors.New("password flag set without username flag")

	// ErrMissingPacketID indicates a packet type that requires a packet
	// identifier (PUBLISH at QoS>0, PUBACK, PUBREC, PUBREL, PUBCOMP,
	// SUBSCRIBE, SUBACK, UNSUBSCRIBE, UNSUBACK) had none.
	ErrMissingPacketID = errors.New("missing packet identifier")

	// ErrZeroPacketID indicates a packet identifier of 0, which MQTT
	// never permits.
	ErrZeroPacketID = errors.New("packet identifier must not be zero")

	// ErrEmptySubscriptionList indicates a SUBSCRIBE or UNSUBSCRIBE
	// packet carried no topic filters.
	ErrEmptySubscriptionList = errors.New("subscribe/unsubscribe packet has no topic filters")

	// ErrInvalidRetainHandling indicates a subscription options byte
	// carried a Retain Handling value other than 0, 1, or 2, or a QoS
	// of 3.
	ErrInvalidRetainHandling = errors.New("invalid retain handling value")

	// ErrUnsupportedPacketType indicates GetSize/Serialize/Deserialize
	// was asked to handle a fixedheader.PacketType with no corresponding
	// concrete Packet type (Reserved, or an AUTH-only/CONNACK-only id
	// appearing in the wrong slot).
	ErrUnsupportedPacketType = errors.New("unsupported packet type")

	// ErrBadResponse is the base sentinel for an inbound acknowledgement
	// packet that violates a semantic rule serious enough to close the
	// connection over: reserved bits set where the protocol requires
	// zero, a reason code outside the known v5 set for its packet type,
	// or a field combination the protocol forbids. The more specific
	// errors below wrap it, so callers can test with
	// errors.Is(err, ErrBadResponse) without enumerating every cause.
	ErrBadResponse = errors.New("bad response")

	// ErrReservedAckFlags indicates a CONNACK's acknowledge-flags byte
	// set one of its seven reserved bits.
	ErrReservedAckFlags = errors.Wrap(ErrBadResponse, "connack acknowledge flags reserved bits set")

	// ErrUnknownReasonCode indicates a reason code byte outside the
	// known v5 set for the packet type it was decoded from.
	ErrUnknownReasonCode = errors.Wrap(ErrBadResponse, "reason code outside known v5 set")

	// ErrSessionPresentWithFailure indicates a CONNACK set
	// session-present alongside a nonzero reason code, a combination
	// MQTT v5 forbids: a session can only be present on success.
	ErrSessionPresentWithFailure = errors.Wrap(ErrBadResponse, "connack session-present set with nonzero reason code")

	// ErrServerRefused indicates a CONNACK or SUBACK decoded correctly
	// but reports a refusal: its reason code(s) are well-formed and in
	// the known set, just nonzero/non-granting. It is distinct from
	// ErrBadResponse — the packet itself is valid — and the caller's
	// struct is still fully populated alongside this error so it can
	// inspect what was refused.
	ErrServerRefused = errors.New("server refused")
)
