package packet

import (
	"github.com/axmq/mqttcodec5/fixedheader"
	"github.com/axmq/mqttcodec5/proptab"
	"github.com/axmq/mqttcodec5/props"
	"github.com/axmq/mqttcodec5/wire"
)

// serializeSimpleAck writes the short form (just a packet identifier)
// when the reason code is Success and there is nothing else to say, or
// the long form (packet id, reason code, properties) otherwise.
func serializeSimpleAck(buf []byte, a simpleAck, pt fixedheader.PacketType) ([]byte, error) {
	buf = wire.EncodeUint16(buf, a.PacketID)
	if a.ReasonCode == ReasonSuccess && a.ReasonString == "" && len(a.UserProperties) == 0 {
		return buf, nil
	}

	buf = append(buf, byte(a.ReasonCode))
	b := props.NewBuilder(nil)
	if a.ReasonString != "" {
		if err := b.AddReasonString(a.ReasonString, pt); err != nil {
			return nil, err
		}
	}
	for _, up := range a.UserProperties {
		if err := b.AddUserProperty(up.Key, up.Value, pt); err != nil {
			return nil, err
		}
	}
	propBuf := b.Bytes()
	rl, err := wire.EncodeVBI(uint32(len(propBuf)))
	if err != nil {
		return nil, err
	}
	buf = append(buf, rl...)
	return append(buf, propBuf...), nil
}

func deserializeSimpleAck(body []byte, pt fixedheader.PacketType) (simpleAck, error) {
	id, n, err := wire.DecodeUint16(body)
	if err != nil {
		return simpleAck{}, err
	}
	if id == 0 {
		return simpleAck{}, ErrZeroPacketID
	}
	a := simpleAck{PacketID: id, ReasonCode: ReasonSuccess}
	offset := n
	if offset >= len(body) {
		return a, nil
	}

	rc, n, err := wire.DecodeUint8(body[offset:])
	if err != nil {
		return simpleAck{}, err
	}
	a.ReasonCode = ReasonCode(rc)
	offset += n
	if offset >= len(body) {
		return a, nil
	}

	propLen, n, err := wire.DecodeVBIFromBytes(body[offset:])
	if err != nil {
		return simpleAck{}, err
	}
	offset += n
	if offset+int(propLen) > len(body) {
		return simpleAck{}, wire.ErrUnexpectedEOF
	}
	decoded, err := props.DecodeAll(body[offset:offset+int(propLen)], pt, false)
	if err != nil {
		return simpleAck{}, err
	}
	if v, ok := decoded.String(proptab.ReasonString); ok {
		a.ReasonString = v
	}
	a.UserProperties = decoded.UserProperties
	return a, nil
}

func SerializePuback(buf []byte, p *Puback) ([]byte, error) {
	return serializeSimpleAck(buf, p.simpleAck, fixedheader.PUBACK)
}

func DeserializePuback(body []byte) (*Puback, error) {
	a, err := deserializeSimpleAck(body, fixedheader.PUBACK)
	if err != nil {
		return nil, err
	}
	return &Puback{simpleAck: a}, nil
}

func SerializePubrec(buf []byte, p *Pubrec) ([]byte, error) {
	return serializeSimpleAck(buf, p.simpleAck, fixedheader.PUBREC)
}

func DeserializePubrec(body []byte) (*Pubrec, error) {
	a, err := deserializeSimpleAck(body, fixedheader.PUBREC)
	if err != nil {
		return nil, err
	}
	return &Pubrec{simpleAck: a}, nil
}

func SerializePubrel(buf []byte, p *Pubrel) ([]byte, error) {
	return serializeSimpleAck(buf, p.simpleAck, fixedheader.PUBREL)
}

func DeserializePubrel(body []byte) (*Pubrel, error) {
	a, err := deserializeSimpleAck(body, fixedheader.PUBREL)
	if err != nil {
		return nil, err
	}
	return &Pubrel{simpleAck: a}, nil
}

func SerializePubcomp(buf []byte, p *Pubcomp) ([]byte, error) {
	return serializeSimpleAck(buf, p.simpleAck, fixedheader.PUBCOMP)
}

func DeserializePubcomp(body []byte) (*Pubcomp, error) {
	a, err := deserializeSimpleAck(body, fixedheader.PUBCOMP)
	if err != nil {
		return nil, err
	}
	return &Pubcomp{simpleAck: a}, nil
}
