package packet

import (
	"github.com/axmq/mqttcodec5/fixedheader"
	"github.com/axmq/mqttcodec5/proptab"
	"github.com/axmq/mqttcodec5/props"
	"github.com/axmq/mqttcodec5/wire"
)

// SerializeUnsubscribe writes u's UNSUBSCRIBE body to buf.
func SerializeUnsubscribe(buf []byte, u *Unsubscribe) ([]byte, error) {
	if u.PacketID == 0 {
		return nil, ErrZeroPacketID
	}
	if len(u.TopicFilters) == 0 {
		return nil, ErrEmptySubscriptionList
	}
	buf = wire.EncodeUint16(buf, u.PacketID)

	b := props.NewBuilder(nil)
	for _, up := range u.UserProperties {
		if err := b.AddUserProperty(up.Key, up.Value, fixedheader.UNSUBSCRIBE); err != nil {
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

	for _, filter := range u.TopicFilters {
		buf = wire.EncodeUTF8String(buf, filter)
	}
	return buf, nil
}

// DeserializeUnsubscribe decodes an UNSUBSCRIBE packet body.
func DeserializeUnsubscribe(body []byte) (*Unsubscribe, error) {
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
	decoded, err := props.DecodeAll(body[offset:offset+int(propLen)], fixedheader.UNSUBSCRIBE, false)
	if err != nil {
		return nil, err
	}
	offset += int(propLen)

	u := &Unsubscribe{PacketID: id, UserProperties: decoded.UserProperties}
	for offset < len(body) {
		filter, n, err := wire.DecodeUTF8String(body[offset:])
		if err != nil {
			return nil, err
		}
		offset += n
		u.TopicFilters = append(u.TopicFilters, filter)
	}
	if len(u.TopicFilters) == 0 {
		return nil, ErrEmptySubscriptionList
	}
	return u, nil
}

// SerializeUnsuback writes u's UNSUBACK body to buf.
func SerializeUnsuback(buf []byte, u *Unsuback) ([]byte, error) {
	if u.PacketID == 0 {
		return nil, ErrZeroPacketID
	}
	buf = wire.EncodeUint16(buf, u.PacketID)

	propBuf, err := buildAckPropsWithReasonString(u.ReasonString, u.UserProperties, fixedheader.UNSUBACK)
	if err != nil {
		return nil, err
	}
	rl, err := wire.EncodeVBI(uint32(len(propBuf)))
	if err != nil {
		return nil, err
	}
	buf = append(buf, rl...)
	buf = append(buf, propBuf...)

	for _, rc := range u.ReasonCodes {
		buf = append(buf, byte(rc))
	}
	return buf, nil
}

// DeserializeUnsuback decodes an UNSUBACK packet body.
func DeserializeUnsuback(body []byte) (*Unsuback, error) {
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
	decoded, err := props.DecodeAll(body[offset:offset+int(propLen)], fixedheader.UNSUBACK, false)
	if err != nil {
		return nil, err
	}
	offset += int(propLen)

	u := &Unsuback{PacketID: id, UserProperties: decoded.UserProperties}
	if v, ok := decoded.String(proptab.ReasonString); ok {
		u.ReasonString = v
	}
	for _, b := range body[offset:] {
		u.ReasonCodes = append(u.ReasonCodes, ReasonCode(b))
	}
	return u, nil
}
