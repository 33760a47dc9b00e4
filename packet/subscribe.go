package packet

import (
	"github.com/axmq/mqttcodec5/fixedheader"
	"github.com/axmq/mqttcodec5/proptab"
	"github.com/axmq/mqttcodec5/props"
	"github.com/axmq/mqttcodec5/wire"
)

func subscriptionOptionsByte(s Subscription) (byte, error) {
	if !s.QoS.IsValid() {
		return 0, ErrInvalidRetainHandling
	}
	if s.RetainHandling > 2 {
		return 0, ErrInvalidRetainHandling
	}
	var b byte
	b |= byte(s.QoS)
	if s.NoLocal {
		b |= 0x04
	}
	if s.RetainAsPublished {
		b |= 0x08
	}
	b |= s.RetainHandling << 4
	return b, nil
}

// SerializeSubscribe writes s's SUBSCRIBE body to buf.
func SerializeSubscribe(buf []byte, s *Subscribe) ([]byte, error) {
	if s.PacketID == 0 {
		return nil, ErrZeroPacketID
	}
	if len(s.Subscriptions) == 0 {
		return nil, ErrEmptySubscriptionList
	}
	buf = wire.EncodeUint16(buf, s.PacketID)

	b := props.NewBuilder(nil)
	for _, sub := range s.Subscriptions {
		if sub.SubscriptionIdentifier != 0 {
			if err := b.AddSubscriptionIdentifier(sub.SubscriptionIdentifier, fixedheader.SUBSCRIBE); err != nil {
				return nil, err
			}
			break
		}
	}
	for _, up := range s.UserProperties {
		if err := b.AddUserProperty(up.Key, up.Value, fixedheader.SUBSCRIBE); err != nil {
			return nil, err
		}
	}
	propBuf := b.Bytes()
	rl, err := wire.EncodeVBI(uint32(len(propBuf)))
	if err != nil {
		return nil, err
	}
	buf = append(buf, rl...)
	buf = append(buf, propBuf...)

	for _, sub := range s.Subscriptions {
		buf = wire.EncodeUTF8String(buf, sub.TopicFilter)
		opts, err := subscriptionOptionsByte(sub)
		if err != nil {
			return nil, err
		}
		buf = append(buf, opts)
	}
	return buf, nil
}

// DeserializeSubscribe decodes a SUBSCRIBE packet body.
func DeserializeSubscribe(body []byte) (*Subscribe, error) {
	id, n, err := wire.DecodeUint16(body)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, ErrZeroPacketID
	}
	offset := n

	propLen, n, err := wire.DecodeVBIFromBytes(body[offset:])
	if err != nil {
		return nil, err
	}
	offset += n
	if offset+int(propLen) > len(body) {
		return nil, wire.ErrUnexpectedEOF
	}
	decoded, err := props.DecodeAll(body[offset:offset+int(propLen)], fixedheader.SUBSCRIBE, false)
	if err != nil {
		return nil, err
	}
	offset += int(propLen)

	var subID uint32
	if v, ok := decoded.VarInt(proptab.SubscriptionIdentifier); ok {
		subID = v
	}

	s := &Subscribe{PacketID: id, UserProperties: decoded.UserProperties}
	for offset < len(body) {
		filter, n, err := wire.DecodeUTF8String(body[offset:])
		if err != nil {
			return nil, err
		}
		offset += n
		opts, n, err := wire.DecodeUint8(body[offset:])
		if err != nil {
			return nil, err
		}
		offset += n

		retainHandling := (opts >> 4) & 0x03
		if retainHandling > 2 {
			return nil, ErrInvalidRetainHandling
		}
		sub := Subscription{
			TopicFilter:            filter,
			QoS:                    fixedheader.QoS(opts & 0x03),
			NoLocal:                opts&0x04 != 0,
			RetainAsPublished:      opts&0x08 != 0,
			RetainHandling:         retainHandling,
			SubscriptionIdentifier: subID,
		}
		if !sub.QoS.IsValid() {
			return nil, ErrInvalidRetainHandling
		}
		s.Subscriptions = append(s.Subscriptions, sub)
	}
	if len(s.Subscriptions) == 0 {
		return nil, ErrEmptySubscriptionList
	}
	return s, nil
}
