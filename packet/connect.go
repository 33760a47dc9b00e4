package packet

import (
	"github.com/axmq/mqttcodec5/fixedheader"
	"github.com/axmq/mqttcodec5/proptab"
	"github.com/axmq/mqttcodec5/props"
	"github.com/axmq/mqttcodec5/wire"
)

const protocolName = "MQTT"

// ProtocolVersion identifies the MQTT protocol revision named in a
// CONNECT packet. This codec only ever accepts 5.
type ProtocolVersion byte

const ProtocolVersion5 ProtocolVersion = 5

func connectFlags(c *Connect) byte {
	var f byte
	if c.CleanStart {
		f |= 0x02
	}
	if c.Will != nil {
		f |= 0x04
		f |= byte(c.Will.QoS) << 3
		if c.Will.Retain {
			f |= 0x20
		}
	}
	if c.HasPassword {
		f |= 0x40
	}
	if c.HasUsername {
		f |= 0x80
	}
	return f
}

func sizeConnect(c *Connect) (int, error) {
	n := len(wire.EncodeUTF8String(nil, protocolName)) + 1 /* version */ + 1 /* flags */ + 2 /* keepalive */

	propBuf, err := buildConnectProperties(c)
	if err != nil {
		return 0, err
	}
	n += wire.SizeVBI(uint32(len(propBuf))) + len(propBuf)
	n += len(wire.EncodeUTF8String(nil, c.ClientID))

	if c.Will != nil {
		willPropBuf, err := buildWillProperties(c.Will)
		if err != nil {
			return 0, err
		}
		n += wire.SizeVBI(uint32(len(willPropBuf))) + len(willPropBuf)
		n += len(wire.EncodeUTF8String(nil, c.Will.Topic))
		n += len(wire.EncodeBinary(nil, c.Will.Payload))
	}
	if c.HasUsername {
		n += len(wire.EncodeUTF8String(nil, c.Username))
	}
	if c.HasPassword {
		n += len(wire.EncodeBinary(nil, c.Password))
	}
	return n, nil
}

func buildConnectProperties(c *Connect) ([]byte, error) {
	b := props.NewBuilder(nil)
	if c.SessionExpiryInterval != nil {
		if err := b.AddSessionExpiryInterval(*c.SessionExpiryInterval, fixedheader.CONNECT); err != nil {
			return nil, err
		}
	}
	if c.ReceiveMaximum != nil {
		if err := b.AddReceiveMaximum(*c.ReceiveMaximum, fixedheader.CONNECT); err != nil {
			return nil, err
		}
	}
	if c.MaximumPacketSize != nil {
		if err := b.AddMaximumPacketSize(*c.MaximumPacketSize, fixedheader.CONNECT); err != nil {
			return nil, err
		}
	}
	if c.TopicAliasMaximum != nil {
		if err := b.AddTopicAliasMaximum(*c.TopicAliasMaximum, fixedheader.CONNECT); err != nil {
			return nil, err
		}
	}
	if c.RequestResponseInformation != nil {
		if err := b.AddRequestResponseInformation(*c.RequestResponseInformation, fixedheader.CONNECT); err != nil {
			return nil, err
		}
	}
	if c.RequestProblemInformation != nil {
		if err := b.AddRequestProblemInformation(*c.RequestProblemInformation, fixedheader.CONNECT); err != nil {
			return nil, err
		}
	}
	if c.AuthenticationMethod != nil {
		if err := b.AddAuthenticationMethod(*c.AuthenticationMethod, fixedheader.CONNECT); err != nil {
			return nil, err
		}
	}
	if c.AuthenticationData != nil {
		if err := b.AddAuthenticationData(c.AuthenticationData, fixedheader.CONNECT); err != nil {
			return nil, err
		}
	}
	for _, up := range c.UserProperties {
		if err := b.AddUserProperty(up.Key, up.Value, fixedheader.CONNECT); err != nil {
			return nil, err
		}
	}
	return b.Bytes(), nil
}

func buildWillProperties(w *Will) ([]byte, error) {
	b := props.NewBuilder(nil)
	if w.DelayInterval != nil {
		if err := b.AddWillDelayInterval(*w.DelayInterval, fixedheader.Will); err != nil {
			return nil, err
		}
	}
	if w.PayloadFormatIndicator != nil {
		if err := b.AddPayloadFormatIndicator(*w.PayloadFormatIndicator, fixedheader.Will); err != nil {
			return nil, err
		}
	}
	if w.MessageExpiryInterval != nil {
		if err := b.AddMessageExpiryInterval(*w.MessageExpiryInterval, fixedheader.Will); err != nil {
			return nil, err
		}
	}
	if w.ContentType != nil {
		if err := b.AddContentType(*w.ContentType, fixedheader.Will); err != nil {
			return nil, err
		}
	}
	if w.ResponseTopic != nil {
		if err := b.AddResponseTopic(*w.ResponseTopic, fixedheader.Will); err != nil {
			return nil, err
		}
	}
	if w.CorrelationData != nil {
		if err := b.AddCorrelationData(w.CorrelationData, fixedheader.Will); err != nil {
			return nil, err
		}
	}
	for _, up := range w.UserProperties {
		if err := b.AddUserProperty(up.Key, up.Value, fixedheader.Will); err != nil {
			return nil, err
		}
	}
	return b.Bytes(), nil
}

// SerializeConnect writes c's CONNECT body (everything after the fixed
// header) to buf.
func SerializeConnect(buf []byte, c *Connect) ([]byte, error) {
	if err := validateConnect(c); err != nil {
		return nil, err
	}
	buf = wire.EncodeUTF8String(buf, protocolName)
	buf = append(buf, byte(ProtocolVersion5))
	buf = append(buf, connectFlags(c))
	buf = wire.EncodeUint16(buf, c.KeepAlive)

	propBuf, err := buildConnectProperties(c)
	if err != nil {
		return nil, err
	}
	rl, err := wire.EncodeVBI(uint32(len(propBuf)))
	if err != nil {
		return nil, err
	}
	buf = append(buf, rl...)
	buf = append(buf, propBuf...)

	buf = wire.EncodeUTF8String(buf, c.ClientID)

	if c.Will != nil {
		willPropBuf, err := buildWillProperties(c.Will)
		if err != nil {
			return nil, err
		}
		wrl, err := wire.EncodeVBI(uint32(len(willPropBuf)))
		if err != nil {
			return nil, err
		}
		buf = append(buf, wrl...)
		buf = append(buf, willPropBuf...)
		buf = wire.EncodeUTF8String(buf, c.Will.Topic)
		buf = wire.EncodeBinary(buf, c.Will.Payload)
	}
	if c.HasUsername {
		buf = wire.EncodeUTF8String(buf, c.Username)
	}
	if c.HasPassword {
		buf = wire.EncodeBinary(buf, c.Password)
	}
	return buf, nil
}

func validateConnect(c *Connect) error {
	if c.Will != nil && !c.Will.QoS.IsValid() {
		return ErrWillFlagsInconsistent
	}
	if c.HasPassword && !c.HasUsername {
		return ErrPasswordWithoutUsername
	}
	return nil
}

// DeserializeConnect decodes a CONNECT packet body.
func DeserializeConnect(body []byte) (*Connect, error) {
	name, n, err := wire.DecodeUTF8String(body)
	if err != nil {
		return nil, err
	}
	if name != protocolName {
		return nil, ErrMalformedProtocolName
	}
	offset := n

	version, n, err := wire.DecodeUint8(body[offset:])
	if err != nil {
		return nil, err
	}
	offset += n
	if ProtocolVersion(version) != ProtocolVersion5 {
		return nil, ErrUnsupportedProtocolVersion
	}

	flags, n, err := wire.DecodeUint8(body[offset:])
	if err != nil {
		return nil, err
	}
	offset += n

	cleanStart := flags&0x02 != 0
	willFlag := flags&0x04 != 0
	willQoS := fixedheader.QoS((flags & 0x18) >> 3)
	willRetain := flags&0x20 != 0
	passwordFlag := flags&0x40 != 0
	usernameFlag := flags&0x80 != 0
	if willFlag && !willQoS.IsValid() {
		return nil, ErrWillFlagsInconsistent
	}
	if !willFlag && (willQoS != 0 || willRetain) {
		return nil, ErrWillFlagsInconsistent
	}
	if passwordFlag && !usernameFlag {
		return nil, ErrPasswordWithoutUsername
	}

	keepAlive, n, err := wire.DecodeUint16(body[offset:])
	if err != nil {
		return nil, err
	}
	offset += n

	propLen, n, err := wire.DecodeVBIFromBytes(body[offset:])
	if err != nil {
		return nil, err
	}
	offset += n
	if offset+int(propLen) > len(body) {
		return nil, wire.ErrUnexpectedEOF
	}
	decoded, err := props.DecodeAll(body[offset:offset+int(propLen)], fixedheader.CONNECT, false)
	if err != nil {
		return nil, err
	}
	offset += int(propLen)

	c := &Connect{
		CleanStart:     cleanStart,
		KeepAlive:      keepAlive,
		HasUsername:    usernameFlag,
		HasPassword:    passwordFlag,
		UserProperties: decoded.UserProperties,
	}
	if v, ok := decoded.Uint32(proptab.SessionExpiryInterval); ok {
		c.SessionExpiryInterval = &v
	}
	if v, ok := decoded.Uint16(proptab.ReceiveMaximum); ok {
		c.ReceiveMaximum = &v
	}
	if v, ok := decoded.Uint32(proptab.MaximumPacketSize); ok {
		c.MaximumPacketSize = &v
	}
	if v, ok := decoded.Uint16(proptab.TopicAliasMaximum); ok {
		c.TopicAliasMaximum = &v
	}
	if v, ok := decoded.Byte(proptab.RequestResponseInformation); ok {
		c.RequestResponseInformation = &v
	}
	if v, ok := decoded.Byte(proptab.RequestProblemInformation); ok {
		c.RequestProblemInformation = &v
	}
	if v, ok := decoded.String(proptab.AuthenticationMethod); ok {
		c.AuthenticationMethod = &v
	}
	if v, ok := decoded.Binary(proptab.AuthenticationData); ok {
		c.AuthenticationData = v
	}

	clientID, n, err := wire.DecodeUTF8String(body[offset:])
	if err != nil {
		return nil, err
	}
	offset += n
	c.ClientID = clientID

	if willFlag {
		will, consumed, err := deserializeWill(body[offset:], willQoS, willRetain)
		if err != nil {
			return nil, err
		}
		offset += consumed
		c.Will = will
	}

	if usernameFlag {
		username, n, err := wire.DecodeUTF8String(body[offset:])
		if err != nil {
			return nil, err
		}
		offset += n
		c.Username = username
	}
	if passwordFlag {
		password, n, err := wire.DecodeBinary(body[offset:])
		if err != nil {
			return nil, err
		}
		offset += n
		c.Password = password
	}

	return c, nil
}

func deserializeWill(data []byte, qos fixedheader.QoS, retain bool) (*Will, int, error) {
	offset := 0
	propLen, n, err := wire.DecodeVBIFromBytes(data)
	if err != nil {
		return nil, 0, err
	}
	offset += n
	if offset+int(propLen) > len(data) {
		return nil, 0, wire.ErrUnexpectedEOF
	}
	decoded, err := props.DecodeAll(data[offset:offset+int(propLen)], fixedheader.Will, false)
	if err != nil {
		return nil, 0, err
	}
	offset += int(propLen)

	w := &Will{QoS: qos, Retain: retain, UserProperties: decoded.UserProperties}
	if v, ok := decoded.Uint32(proptab.WillDelayInterval); ok {
		w.DelayInterval = &v
	}
	if v, ok := decoded.Byte(proptab.PayloadFormatIndicator); ok {
		w.PayloadFormatIndicator = &v
	}
	if v, ok := decoded.Uint32(proptab.MessageExpiryInterval); ok {
		w.MessageExpiryInterval = &v
	}
	if v, ok := decoded.String(proptab.ContentType); ok {
		w.ContentType = &v
	}
	if v, ok := decoded.String(proptab.ResponseTopic); ok {
		w.ResponseTopic = &v
	}
	if v, ok := decoded.Binary(proptab.CorrelationData); ok {
		w.CorrelationData = v
	}

	topic, n, err := wire.DecodeUTF8String(data[offset:])
	if err != nil {
		return nil, 0, err
	}
	offset += n
	w.Topic = topic

	payload, n, err := wire.DecodeBinary(data[offset:])
	if err != nil {
		return nil, 0, err
	}
	offset += n
	w.Payload = payload

	return w, offset, nil
}
