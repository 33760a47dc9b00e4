package packet

import (
	"github.com/axmq/mqttcodec5/fixedheader"
)

// Serialize appends p's wire body (everything after the fixed header) to
// buf and returns the result.
func Serialize(buf []byte, p Packet) ([]byte, error) {
	switch v := p.(type) {
	case *Connect:
		return SerializeConnect(buf, v)
	case *Connack:
		return SerializeConnack(buf, v)
	case *Publish:
		return SerializePublish(buf, v)
	case *Puback:
		return SerializePuback(buf, v)
	case *Pubrec:
		return SerializePubrec(buf, v)
	case *Pubrel:
		return SerializePubrel(buf, v)
	case *Pubcomp:
		return SerializePubcomp(buf, v)
	case *Subscribe:
		return SerializeSubscribe(buf, v)
	case *Suback:
		return SerializeSuback(buf, v)
	case *Unsubscribe:
		return SerializeUnsubscribe(buf, v)
	case *Unsuback:
		return SerializeUnsuback(buf, v)
	case *Pingreq:
		return SerializePingreq(buf, v)
	case *Pingresp:
		return SerializePingresp(buf, v)
	case *Disconnect:
		return SerializeDisconnect(buf, v)
	case *Auth:
		return SerializeAuth(buf, v)
	default:
		return nil, ErrUnsupportedPacketType
	}
}

// GetSize returns the Remaining Length (the serialized body's size) and
// the total on-wire size (fixed header included) for p.
func GetSize(p Packet) (remaining, total int, err error) {
	body, err := Serialize(nil, p)
	if err != nil {
		return 0, 0, err
	}
	fh := fixedheader.FixedHeader{Type: p.Type(), RemainingLength: uint32(len(body))}
	switch v := p.(type) {
	case *Publish:
		fh.Dup, fh.QoS, fh.Retain = v.Dup, v.QoS, v.Retain
	}
	return len(body), fixedheader.Size(fh) + len(body), nil
}

// Deserialize decodes body (the bytes following fh) into the concrete
// Packet type matching fh.Type.
//
// CONNACK's Response Information property is legal on the wire only if
// the client's CONNECT requested it, a fact this stateless, single-packet
// entry point has no way to know. It decodes CONNACK permissively
// (as if the request flag were set); callers tracking that session
// state should call DeserializeConnack directly with the real flag.
func Deserialize(fh fixedheader.FixedHeader, body []byte) (Packet, error) {
	switch fh.Type {
	case fixedheader.CONNECT:
		return DeserializeConnect(body)
	case fixedheader.CONNACK:
		return DeserializeConnack(body, true)
	case fixedheader.PUBLISH:
		return DeserializePublish(fh, body)
	case fixedheader.PUBACK:
		return DeserializePuback(body)
	case fixedheader.PUBREC:
		return DeserializePubrec(body)
	case fixedheader.PUBREL:
		return DeserializePubrel(body)
	case fixedheader.PUBCOMP:
		return DeserializePubcomp(body)
	case fixedheader.SUBSCRIBE:
		return DeserializeSubscribe(body)
	case fixedheader.SUBACK:
		return DeserializeSuback(body)
	case fixedheader.UNSUBSCRIBE:
		return DeserializeUnsubscribe(body)
	case fixedheader.UNSUBACK:
		return DeserializeUnsuback(body)
	case fixedheader.PINGREQ:
		return DeserializePingreq(body)
	case fixedheader.PINGRESP:
		return DeserializePingresp(body)
	case fixedheader.DISCONNECT:
		return DeserializeDisconnect(body)
	case fixedheader.AUTH:
		return DeserializeAuth(body)
	default:
		return nil, ErrUnsupportedPacketType
	}
}
