package packet

import (
	"github.com/axmq/mqttcodec5/fixedheader"
	"github.com/axmq/mqttcodec5/proptab"
	"github.com/axmq/mqttcodec5/props"
	"github.com/axmq/mqttcodec5/wire"
)

func buildConnackProperties(c *Connack) []byte {
	b := props.NewBuilder(nil)
	caps := c.Capabilities
	def := DefaultConnackCapabilities()

	if caps.SessionExpiryInterval != def.SessionExpiryInterval {
		_ = b.AddSessionExpiryInterval(caps.SessionExpiryInterval, fixedheader.CONNACK)
	}
	if caps.ReceiveMaximum != def.ReceiveMaximum {
		_ = b.AddReceiveMaximum(caps.ReceiveMaximum, fixedheader.CONNACK)
	}
	if caps.MaximumQoS != def.MaximumQoS {
		_ = b.AddMaximumQoS(caps.MaximumQoS, fixedheader.CONNACK)
	}
	if !caps.RetainAvailable {
		_ = b.AddRetainAvailable(0, fixedheader.CONNACK)
	}
	if caps.MaximumPacketSize != def.MaximumPacketSize {
		_ = b.AddMaximumPacketSize(caps.MaximumPacketSize, fixedheader.CONNACK)
	}
	if caps.AssignedClientID != "" {
		_ = b.AddAssignedClientIdentifier(caps.AssignedClientID, fixedheader.CONNACK)
	}
	if caps.TopicAliasMaximum != def.TopicAliasMaximum {
		_ = b.AddTopicAliasMaximum(caps.TopicAliasMaximum, fixedheader.CONNACK)
	}
	if caps.ReasonString != "" {
		_ = b.AddReasonString(caps.ReasonString, fixedheader.CONNACK)
	}
	if !caps.WildcardSubAvailable {
		_ = b.AddWildcardSubscriptionAvailable(0, fixedheader.CONNACK)
	}
	if !caps.SubIDAvailable {
		_ = b.AddSubscriptionIdentifierAvailable(0, fixedheader.CONNACK)
	}
	if !caps.SharedSubAvailable {
		_ = b.AddSharedSubscriptionAvailable(0, fixedheader.CONNACK)
	}
	if caps.ServerKeepAlive != def.ServerKeepAlive {
		_ = b.AddServerKeepAlive(caps.ServerKeepAlive, fixedheader.CONNACK)
	}
	if caps.ResponseInformation != "" {
		_ = b.AddResponseInformation(caps.ResponseInformation, fixedheader.CONNACK)
	}
	if caps.ServerReference != "" {
		_ = b.AddServerReference(caps.ServerReference, fixedheader.CONNACK)
	}
	if caps.AuthenticationMethod != "" {
		_ = b.AddAuthenticationMethod(caps.AuthenticationMethod, fixedheader.CONNACK)
	}
	if caps.AuthenticationData != nil {
		_ = b.AddAuthenticationData(caps.AuthenticationData, fixedheader.CONNACK)
	}
	for _, up := range caps.UserProperties {
		_ = b.AddUserProperty(up.Key, up.Value, fixedheader.CONNACK)
	}
	return b.Bytes()
}

// SerializeConnack writes c's CONNACK body to buf.
func SerializeConnack(buf []byte, c *Connack) ([]byte, error) {
	var ackFlags byte
	if c.SessionPresent {
		ackFlags = 0x01
	}
	buf = append(buf, ackFlags, byte(c.ReasonCode))

	propBuf := buildConnackProperties(c)
	rl, err := wire.EncodeVBI(uint32(len(propBuf)))
	if err != nil {
		return nil, err
	}
	buf = append(buf, rl...)
	buf = append(buf, propBuf...)
	return buf, nil
}

// connackReasonCodes is the set of reason code values MQTT v5 actually
// defines for CONNACK; anything else is a protocol violation, not
// merely an unrecognized refusal reason.
var connackReasonCodes = map[ReasonCode]bool{
	ReasonSuccess:                     true,
	ReasonUnspecifiedError:            true,
	ReasonMalformedPacket:             true,
	ReasonProtocolError:               true,
	ReasonImplementationSpecificError: true,
	ReasonUnsupportedProtocolVersion:  true,
	ReasonClientIdentifierNotValid:    true,
	ReasonBadUsernameOrPassword:       true,
	ReasonNotAuthorized:               true,
	ReasonServerUnavailable:           true,
	ReasonServerBusy:                  true,
	ReasonBanned:                      true,
	ReasonBadAuthenticationMethod:     true,
	ReasonTopicNameInvalid:            true,
	ReasonPacketTooLarge:              true,
	ReasonQuotaExceeded:               true,
	ReasonPayloadFormatInvalid:        true,
	ReasonRetainNotSupported:          true,
	ReasonQoSNotSupported:             true,
	ReasonUseAnotherServer:            true,
	ReasonServerMoved:                 true,
	ReasonConnectionRateExceeded:      true,
}

// DeserializeConnack decodes a CONNACK packet body, seeding Capabilities
// with the MQTT v5 defaults before any property in the wire form is
// examined: absence of a property means "use the default or the value
// the client proposed in CONNECT." A well-formed but nonzero reason
// code is reported as ErrServerRefused alongside the fully populated
// *Connack, not nil'd out, so the caller can still inspect what was
// refused.
func DeserializeConnack(body []byte, requestedResponseInfo bool) (*Connack, error) {
	ackFlags, n, err := wire.DecodeUint8(body)
	if err != nil {
		return nil, err
	}
	if ackFlags&0xFE != 0 {
		return nil, ErrReservedAckFlags
	}
	offset := n
	reasonCode, n, err := wire.DecodeUint8(body[offset:])
	if err != nil {
		return nil, err
	}
	offset += n
	rc := ReasonCode(reasonCode)
	if !connackReasonCodes[rc] {
		return nil, ErrUnknownReasonCode
	}
	sessionPresent := ackFlags&0x01 != 0
	if sessionPresent && rc != ReasonSuccess {
		return nil, ErrSessionPresentWithFailure
	}

	propLen, n, err := wire.DecodeVBIFromBytes(body[offset:])
	if err != nil {
		return nil, err
	}
	offset += n
	if offset+int(propLen) > len(body) {
		return nil, wire.ErrUnexpectedEOF
	}
	decoded, err := props.DecodeAll(body[offset:offset+int(propLen)], fixedheader.CONNACK, requestedResponseInfo)
	if err != nil {
		return nil, err
	}

	caps := DefaultConnackCapabilities()
	if v, ok := decoded.Uint32(proptab.SessionExpiryInterval); ok {
		caps.SessionExpiryInterval = v
	}
	if v, ok := decoded.Uint16(proptab.ReceiveMaximum); ok {
		caps.ReceiveMaximum = v
	}
	if v, ok := decoded.Byte(proptab.MaximumQoS); ok {
		caps.MaximumQoS = v
	}
	if v, ok := decoded.Byte(proptab.RetainAvailable); ok {
		caps.RetainAvailable = v != 0
	}
	if v, ok := decoded.Uint32(proptab.MaximumPacketSize); ok {
		caps.MaximumPacketSize = v
	}
	if v, ok := decoded.String(proptab.AssignedClientIdentifier); ok {
		caps.AssignedClientID = v
	}
	if v, ok := decoded.Uint16(proptab.TopicAliasMaximum); ok {
		caps.TopicAliasMaximum = v
	}
	if v, ok := decoded.String(proptab.ReasonString); ok {
		caps.ReasonString = v
	}
	if v, ok := decoded.Byte(proptab.WildcardSubscriptionAvail); ok {
		caps.WildcardSubAvailable = v != 0
	}
	if v, ok := decoded.Byte(proptab.SubscriptionIdAvailable); ok {
		caps.SubIDAvailable = v != 0
	}
	if v, ok := decoded.Byte(proptab.SharedSubscriptionAvail); ok {
		caps.SharedSubAvailable = v != 0
	}
	if v, ok := decoded.Uint16(proptab.ServerKeepAlive); ok {
		caps.ServerKeepAlive = v
	}
	if v, ok := decoded.String(proptab.ResponseInformation); ok {
		caps.ResponseInformation = v
	}
	if v, ok := decoded.String(proptab.ServerReference); ok {
		caps.ServerReference = v
	}
	if v, ok := decoded.String(proptab.AuthenticationMethod); ok {
		caps.AuthenticationMethod = v
	}
	if v, ok := decoded.Binary(proptab.AuthenticationData); ok {
		caps.AuthenticationData = v
	}
	caps.UserProperties = decoded.UserProperties

	c := &Connack{
		SessionPresent: sessionPresent,
		ReasonCode:     rc,
		Capabilities:   caps,
	}
	if rc != ReasonSuccess {
		return c, ErrServerRefused
	}
	return c, nil
}
