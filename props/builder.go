// Package props implements the MQTT v5 property subsystem: the builder
// used to assemble a packet's property section and the reader used to
// walk one back apart, plus the bulk decode path that produces a
// validated, typed view of a property region.
package props

import (
	"github.com/axmq/mqttcodec5/fixedheader"
	"github.com/axmq/mqttcodec5/proptab"
	"github.com/axmq/mqttcodec5/wire"
)

// Builder assembles an MQTT property section into a caller-supplied (or
// grown) byte buffer, enforcing at-most-once occurrence, property/packet
// legality, and per-property value constraints as each Add call is made.
type Builder struct {
	buffer    []byte
	fieldSet  uint32
	fieldSet2 uint32 // bits 32..63, since uint32 only covers 0..31

	// StrictAuthOrdering requires AddAuthenticationMethod to have been
	// called before AddAuthenticationData. MQTT v5 does not require this
	// wire-level ordering; it is enforced here as a hygiene rule and can
	// be disabled for callers that build properties out of order and
	// re-derive legality some other way.
	StrictAuthOrdering bool
}

// NewBuilder returns a Builder with strict auth-data ordering enabled,
// writing into buf (which may be empty; it grows as needed).
func NewBuilder(buf []byte) *Builder {
	return &Builder{buffer: buf[:0], StrictAuthOrdering: true}
}

// Reset clears the builder's cursor and occurrence bitmap, retaining the
// backing array for reuse.
func (b *Builder) Reset() {
	b.buffer = b.buffer[:0]
	b.fieldSet = 0
	b.fieldSet2 = 0
}

// Bytes returns the property section built so far, not including its
// length prefix.
func (b *Builder) Bytes() []byte {
	return b.buffer
}

// Len returns the number of property-section bytes written so far.
func (b *Builder) Len() int {
	return len(b.buffer)
}

func (b *Builder) setBit(bit uint) {
	if bit < 32 {
		b.fieldSet |= 1 << bit
	} else {
		b.fieldSet2 |= 1 << (bit - 32)
	}
}

func (b *Builder) bitSet(bit uint) bool {
	if bit < 32 {
		return b.fieldSet&(1<<bit) != 0
	}
	return b.fieldSet2&(1<<(bit-32)) != 0
}

// checkOnce enforces at-most-once occurrence for id and, when pt is
// non-nil, legality against proptab.
func (b *Builder) checkOnce(id proptab.ID, pt *fixedheader.PacketType) error {
	if len(b.buffer) >= int(wire.MaxVBI) {
		return ErrNoMemory
	}
	if pt != nil && !proptab.Allowed(*pt, id) {
		return ErrNotAllowed
	}
	bit, ok := bitFor(id)
	if !ok {
		return ErrUnknownPropertyID
	}
	if b.bitSet(bit) {
		return ErrAlreadySet
	}
	return nil
}

func (b *Builder) commit(id proptab.ID) {
	if bit, ok := bitFor(id); ok {
		b.setBit(bit)
	}
}

func (b *Builder) appendByte(id proptab.ID, v byte) {
	b.buffer = append(b.buffer, byte(id), v)
}

func (b *Builder) appendUint16(id proptab.ID, v uint16) {
	b.buffer = append(b.buffer, byte(id))
	b.buffer = wire.EncodeUint16(b.buffer, v)
}

func (b *Builder) appendUint32(id proptab.ID, v uint32) {
	b.buffer = append(b.buffer, byte(id))
	b.buffer = wire.EncodeUint32(b.buffer, v)
}

func (b *Builder) appendVBI(id proptab.ID, v uint32) error {
	enc, err := wire.EncodeVBI(v)
	if err != nil {
		return err
	}
	b.buffer = append(b.buffer, byte(id))
	b.buffer = append(b.buffer, enc...)
	return nil
}

func (b *Builder) appendString(id proptab.ID, s string) error {
	if len(s) == 0 {
		return ErrEmptyString
	}
	b.buffer = append(b.buffer, byte(id))
	b.buffer = wire.EncodeUTF8String(b.buffer, s)
	return nil
}

func (b *Builder) appendBinary(id proptab.ID, v []byte) error {
	b.buffer = append(b.buffer, byte(id))
	b.buffer = wire.EncodeBinary(b.buffer, v)
	return nil
}

// AddPayloadFormatIndicator appends id 0x01. v must be 0 or 1.
func (b *Builder) AddPayloadFormatIndicator(v byte, pt fixedheader.PacketType) error {
	if v > 1 {
		return ErrInvalidBooleanValue
	}
	if err := b.checkOnce(proptab.PayloadFormatIndicator, &pt); err != nil {
		return err
	}
	b.appendByte(proptab.PayloadFormatIndicator, v)
	b.commit(proptab.PayloadFormatIndicator)
	return nil
}

// AddMessageExpiryInterval appends id 0x02.
func (b *Builder) AddMessageExpiryInterval(v uint32, pt fixedheader.PacketType) error {
	if err := b.checkOnce(proptab.MessageExpiryInterval, &pt); err != nil {
		return err
	}
	b.appendUint32(proptab.MessageExpiryInterval, v)
	b.commit(proptab.MessageExpiryInterval)
	return nil
}

// AddContentType appends id 0x03.
func (b *Builder) AddContentType(v string, pt fixedheader.PacketType) error {
	if err := b.checkOnce(proptab.ContentType, &pt); err != nil {
		return err
	}
	if err := b.appendString(proptab.ContentType, v); err != nil {
		return err
	}
	b.commit(proptab.ContentType)
	return nil
}

// AddResponseTopic appends id 0x08. v must not contain '+' or '#'.
func (b *Builder) AddResponseTopic(v string, pt fixedheader.PacketType) error {
	if err := b.checkOnce(proptab.ResponseTopic, &pt); err != nil {
		return err
	}
	for _, r := range v {
		if r == '+' || r == '#' {
			return ErrWildcardInResponseTopic
		}
	}
	if err := b.appendString(proptab.ResponseTopic, v); err != nil {
		return err
	}
	b.commit(proptab.ResponseTopic)
	return nil
}

// AddCorrelationData appends id 0x09.
func (b *Builder) AddCorrelationData(v []byte, pt fixedheader.PacketType) error {
	if err := b.checkOnce(proptab.CorrelationData, &pt); err != nil {
		return err
	}
	if err := b.appendBinary(proptab.CorrelationData, v); err != nil {
		return err
	}
	b.commit(proptab.CorrelationData)
	return nil
}

// AddSubscriptionIdentifier appends id 0x0B. v must be > 0.
func (b *Builder) AddSubscriptionIdentifier(v uint32, pt fixedheader.PacketType) error {
	if v == 0 {
		return ErrZeroValue
	}
	if err := b.checkOnce(proptab.SubscriptionIdentifier, &pt); err != nil {
		return err
	}
	if err := b.appendVBI(proptab.SubscriptionIdentifier, v); err != nil {
		return err
	}
	b.commit(proptab.SubscriptionIdentifier)
	return nil
}

// AddSessionExpiryInterval appends id 0x11.
func (b *Builder) AddSessionExpiryInterval(v uint32, pt fixedheader.PacketType) error {
	if err := b.checkOnce(proptab.SessionExpiryInterval, &pt); err != nil {
		return err
	}
	b.appendUint32(proptab.SessionExpiryInterval, v)
	b.commit(proptab.SessionExpiryInterval)
	return nil
}

// AddAssignedClientIdentifier appends id 0x12.
func (b *Builder) AddAssignedClientIdentifier(v string, pt fixedheader.PacketType) error {
	if err := b.checkOnce(proptab.AssignedClientIdentifier, &pt); err != nil {
		return err
	}
	if err := b.appendString(proptab.AssignedClientIdentifier, v); err != nil {
		return err
	}
	b.commit(proptab.AssignedClientIdentifier)
	return nil
}

// AddServerKeepAlive appends id 0x13.
func (b *Builder) AddServerKeepAlive(v uint16, pt fixedheader.PacketType) error {
	if err := b.checkOnce(proptab.ServerKeepAlive, &pt); err != nil {
		return err
	}
	b.appendUint16(proptab.ServerKeepAlive, v)
	b.commit(proptab.ServerKeepAlive)
	return nil
}

// AddAuthenticationMethod appends id 0x15.
func (b *Builder) AddAuthenticationMethod(v string, pt fixedheader.PacketType) error {
	if err := b.checkOnce(proptab.AuthenticationMethod, &pt); err != nil {
		return err
	}
	if err := b.appendString(proptab.AuthenticationMethod, v); err != nil {
		return err
	}
	b.commit(proptab.AuthenticationMethod)
	return nil
}

// AddAuthenticationData appends id 0x16. When StrictAuthOrdering is set,
// AddAuthenticationMethod must have been called first.
func (b *Builder) AddAuthenticationData(v []byte, pt fixedheader.PacketType) error {
	if b.StrictAuthOrdering {
		bit, _ := bitFor(proptab.AuthenticationMethod)
		if !b.bitSet(bit) {
			return ErrAuthDataBeforeAuthMethod
		}
	}
	if err := b.checkOnce(proptab.AuthenticationData, &pt); err != nil {
		return err
	}
	if err := b.appendBinary(proptab.AuthenticationData, v); err != nil {
		return err
	}
	b.commit(proptab.AuthenticationData)
	return nil
}

// AddRequestProblemInformation appends id 0x17. v must be 0 or 1.
func (b *Builder) AddRequestProblemInformation(v byte, pt fixedheader.PacketType) error {
	if v > 1 {
		return ErrInvalidBooleanValue
	}
	if err := b.checkOnce(proptab.RequestProblemInformation, &pt); err != nil {
		return err
	}
	b.appendByte(proptab.RequestProblemInformation, v)
	b.commit(proptab.RequestProblemInformation)
	return nil
}

// AddWillDelayInterval appends id 0x18.
func (b *Builder) AddWillDelayInterval(v uint32, pt fixedheader.PacketType) error {
	if err := b.checkOnce(proptab.WillDelayInterval, &pt); err != nil {
		return err
	}
	b.appendUint32(proptab.WillDelayInterval, v)
	b.commit(proptab.WillDelayInterval)
	return nil
}

// AddRequestResponseInformation appends id 0x19. v must be 0 or 1.
func (b *Builder) AddRequestResponseInformation(v byte, pt fixedheader.PacketType) error {
	if v > 1 {
		return ErrInvalidBooleanValue
	}
	if err := b.checkOnce(proptab.RequestResponseInformation, &pt); err != nil {
		return err
	}
	b.appendByte(proptab.RequestResponseInformation, v)
	b.commit(proptab.RequestResponseInformation)
	return nil
}

// AddResponseInformation appends id 0x1A.
func (b *Builder) AddResponseInformation(v string, pt fixedheader.PacketType) error {
	if err := b.checkOnce(proptab.ResponseInformation, &pt); err != nil {
		return err
	}
	if err := b.appendString(proptab.ResponseInformation, v); err != nil {
		return err
	}
	b.commit(proptab.ResponseInformation)
	return nil
}

// AddServerReference appends id 0x1C.
func (b *Builder) AddServerReference(v string, pt fixedheader.PacketType) error {
	if err := b.checkOnce(proptab.ServerReference, &pt); err != nil {
		return err
	}
	if err := b.appendString(proptab.ServerReference, v); err != nil {
		return err
	}
	b.commit(proptab.ServerReference)
	return nil
}

// AddReasonString appends id 0x1F.
func (b *Builder) AddReasonString(v string, pt fixedheader.PacketType) error {
	if err := b.checkOnce(proptab.ReasonString, &pt); err != nil {
		return err
	}
	if err := b.appendString(proptab.ReasonString, v); err != nil {
		return err
	}
	b.commit(proptab.ReasonString)
	return nil
}

// AddReceiveMaximum appends id 0x21. v must be > 0.
func (b *Builder) AddReceiveMaximum(v uint16, pt fixedheader.PacketType) error {
	if v == 0 {
		return ErrZeroValue
	}
	if err := b.checkOnce(proptab.ReceiveMaximum, &pt); err != nil {
		return err
	}
	b.appendUint16(proptab.ReceiveMaximum, v)
	b.commit(proptab.ReceiveMaximum)
	return nil
}

// AddTopicAliasMaximum appends id 0x22.
func (b *Builder) AddTopicAliasMaximum(v uint16, pt fixedheader.PacketType) error {
	if err := b.checkOnce(proptab.TopicAliasMaximum, &pt); err != nil {
		return err
	}
	b.appendUint16(proptab.TopicAliasMaximum, v)
	b.commit(proptab.TopicAliasMaximum)
	return nil
}

// AddTopicAlias appends id 0x23. v must be > 0.
func (b *Builder) AddTopicAlias(v uint16, pt fixedheader.PacketType) error {
	if v == 0 {
		return ErrZeroValue
	}
	if err := b.checkOnce(proptab.TopicAlias, &pt); err != nil {
		return err
	}
	b.appendUint16(proptab.TopicAlias, v)
	b.commit(proptab.TopicAlias)
	return nil
}

// AddMaximumQoS appends id 0x24. v must be 0 or 1.
func (b *Builder) AddMaximumQoS(v byte, pt fixedheader.PacketType) error {
	if v > 1 {
		return ErrInvalidBooleanValue
	}
	if err := b.checkOnce(proptab.MaximumQoS, &pt); err != nil {
		return err
	}
	b.appendByte(proptab.MaximumQoS, v)
	b.commit(proptab.MaximumQoS)
	return nil
}

// AddRetainAvailable appends id 0x25. v must be 0 or 1.
func (b *Builder) AddRetainAvailable(v byte, pt fixedheader.PacketType) error {
	if v > 1 {
		return ErrInvalidBooleanValue
	}
	if err := b.checkOnce(proptab.RetainAvailable, &pt); err != nil {
		return err
	}
	b.appendByte(proptab.RetainAvailable, v)
	b.commit(proptab.RetainAvailable)
	return nil
}

// AddUserProperty appends id 0x26. May be called any number of times;
// does not touch the occurrence bitmap. Both key and value must be
// non-empty.
func (b *Builder) AddUserProperty(key, value string, pt fixedheader.PacketType) error {
	if !proptab.Allowed(pt, proptab.UserProperty) {
		return ErrNotAllowed
	}
	if len(key) == 0 || len(value) == 0 {
		return ErrEmptyString
	}
	b.buffer = append(b.buffer, byte(proptab.UserProperty))
	b.buffer = wire.EncodeUTF8String(b.buffer, key)
	b.buffer = wire.EncodeUTF8String(b.buffer, value)
	return nil
}

// AddMaximumPacketSize appends id 0x27. v must be > 0.
func (b *Builder) AddMaximumPacketSize(v uint32, pt fixedheader.PacketType) error {
	if v == 0 {
		return ErrZeroValue
	}
	if err := b.checkOnce(proptab.MaximumPacketSize, &pt); err != nil {
		return err
	}
	b.appendUint32(proptab.MaximumPacketSize, v)
	b.commit(proptab.MaximumPacketSize)
	return nil
}

// AddWildcardSubscriptionAvailable appends id 0x28. v must be 0 or 1.
func (b *Builder) AddWildcardSubscriptionAvailable(v byte, pt fixedheader.PacketType) error {
	if v > 1 {
		return ErrInvalidBooleanValue
	}
	if err := b.checkOnce(proptab.WildcardSubscriptionAvail, &pt); err != nil {
		return err
	}
	b.appendByte(proptab.WildcardSubscriptionAvail, v)
	b.commit(proptab.WildcardSubscriptionAvail)
	return nil
}

// AddSubscriptionIdentifierAvailable appends id 0x29. v must be 0 or 1.
func (b *Builder) AddSubscriptionIdentifierAvailable(v byte, pt fixedheader.PacketType) error {
	if v > 1 {
		return ErrInvalidBooleanValue
	}
	if err := b.checkOnce(proptab.SubscriptionIdAvailable, &pt); err != nil {
		return err
	}
	b.appendByte(proptab.SubscriptionIdAvailable, v)
	b.commit(proptab.SubscriptionIdAvailable)
	return nil
}

// AddSharedSubscriptionAvailable appends id 0x2A. v must be 0 or 1.
func (b *Builder) AddSharedSubscriptionAvailable(v byte, pt fixedheader.PacketType) error {
	if v > 1 {
		return ErrInvalidBooleanValue
	}
	if err := b.checkOnce(proptab.SharedSubscriptionAvail, &pt); err != nil {
		return err
	}
	b.appendByte(proptab.SharedSubscriptionAvail, v)
	b.commit(proptab.SharedSubscriptionAvail)
	return nil
}
