package props

import "github.com/cockroachdb/errors"

var (
	// ErrAlreadySet indicates a single-occurrence property was appended
	// twice to the same builder.
	ErrAlreadySet = errors.New("property already set")

	// ErrNotAllowed indicates the property is not legal on the supplied
	// packet type per the proptab matrix.
	ErrNotAllowed = errors.New("property not allowed for packet type")

	// ErrZeroValue indicates a property whose protocol value must be
	// non-zero was given zero (Receive Maximum, Maximum Packet Size,
	// Topic Alias, Subscription Identifier).
	ErrZeroValue = errors.New("property value must be non-zero")

	// ErrInvalidBooleanValue indicates a single-byte boolean-style
	// property (Payload Format Indicator, Request Problem/Response
	// Information, Maximum QoS, Retain Available, the three *Available
	// flags) carried a value other than 0 or 1.
	ErrInvalidBooleanValue = errors.New("property byte value must be 0 or 1")

	// ErrEmptyString indicates a UTF-8 string or key/value property was
	// given a zero-length component where the protocol requires length
	// >= 1.
	ErrEmptyString = errors.New("property string must not be empty")

	// ErrWildcardInResponseTopic indicates a Response Topic contained a
	// '+' or '#' wildcard character, which a response topic may never
	// use.
	ErrWildcardInResponseTopic = errors.New("response topic must not contain wildcards")

	// ErrAuthDataBeforeAuthMethod indicates Authentication Data was
	// appended to a builder before Authentication Method. MQTT does not
	// strictly require this ordering; this codec enforces it as a
	// hygiene rule, configurable via Builder.StrictAuthOrdering.
	ErrAuthDataBeforeAuthMethod = errors.New("authentication data appended before authentication method")

	// ErrNoMemory indicates the builder's property section had already
	// reached the protocol's maximum remaining length (268,435,455 bytes)
	// when an Add call was made. The size of the property being added is
	// not counted, the builder's buffer grows as needed, and
	// AddUserProperty does not make this check.
	ErrNoMemory = errors.New("insufficient buffer capacity for property")

	// ErrNoDataAvailable indicates a reader's cursor has reached the end
	// of the property region.
	ErrNoDataAvailable = errors.New("no property data available")

	// ErrUnexpectedPropertyID indicates a typed getter was called but the
	// next property in the region has a different id.
	ErrUnexpectedPropertyID = errors.New("unexpected property id")

	// ErrUnknownPropertyID indicates a property id the codec does not
	// recognize at all.
	ErrUnknownPropertyID = errors.New("unknown property id")

	// ErrDuplicateProperty indicates a single-occurrence property
	// appeared twice while bulk-decoding a property region.
	ErrDuplicateProperty = errors.New("duplicate property in region")

	// ErrInconsistentResponseInfo indicates Response Information was
	// present without the client having set Request Response
	// Information on the corresponding CONNECT.
	ErrInconsistentResponseInfo = errors.New("response information present without request response information")
)
