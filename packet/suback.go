package packet

import (
	"github.com/axmq/mqttcodec5/fixedheader"
	"github.com/axmq/mqttcodec5/proptab"
	"github.com/axmq/mqttcodec5/props"
	"github.com/axmq/mqttcodec5/wire"
)

func buildAckPropsWithReasonString(reasonString string, userProps []props.UserProperty, pt fixedheader.PacketType) ([]byte, error) {
	b := props.NewBuilder(nil)
	if reasonString != "" {
		if err := b.AddReasonString(reasonString, pt); err != nil {
			return nil, err
		}
	}
	for _, up := range userProps {
		if err := b.AddUserProperty(up.Key, up.Value, pt); err != nil {
			return nil, err
		}
	}
	return b.Bytes(), nil
}

// SerializeSuback writes s's SUBACK body to buf.
func SerializeSuback(buf []byte, s *Suback) ([]byte, error) {
	if s.PacketID == 0 {
		return nil, ErrZeroPacketID
	}
	buf = wire.EncodeUint16(buf, s.PacketID)

	propBuf, err := buildAckPropsWithReasonString(s.ReasonString, s.UserProperties, fixedheader.SUBACK)
	if err != nil {
		return nil, err
	}
	rl, err := wire.EncodeVBI(uint32(len(propBuf)))
	if err != nil {
		return nil, err
	}
	buf = append(buf, rl...)
	buf = append(buf, propBuf...)

	for _, rc := range s.ReasonCodes {
		buf = append(buf, byte(rc))
	}
	return buf, nil
}

// validateSubackReasonCode reports whether rc is one of the legal
// per-filter SUBACK reason codes: granted QoS 0/1/2, or outright
// refusal. Anything else is a protocol violation.
func validateSubackReasonCode(rc ReasonCode) error {
	switch rc {
	case ReasonGrantedQoS0, ReasonGrantedQoS1, ReasonGrantedQoS2, ReasonUnspecifiedError:
		return nil
	default:
		return ErrUnknownReasonCode
	}
}

// DeserializeSuback decodes a SUBACK packet body. If any per-filter
// reason code is a refusal, the returned error is ErrServerRefused and
// s is still fully populated with every reason code the server sent.
func DeserializeSuback(body []byte) (*Suback, error) {
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
	decoded, err := props.DecodeAll(body[offset:offset+int(propLen)], fixedheader.SUBACK, false)
	if err != nil {
		return nil, err
	}
	offset += int(propLen)

	s := &Suback{PacketID: id, UserProperties: decoded.UserProperties}
	if v, ok := decoded.String(proptab.ReasonString); ok {
		s.ReasonString = v
	}
	refused := false
	for _, b := range body[offset:] {
		rc := ReasonCode(b)
		if err := validateSubackReasonCode(rc); err != nil {
			return nil, err
		}
		if rc == ReasonUnspecifiedError {
			refused = true
		}
		s.ReasonCodes = append(s.ReasonCodes, rc)
	}
	if refused {
		return s, ErrServerRefused
	}
	return s, nil
}
