package packet

import (
	"github.com/axmq/mqttcodec5/fixedheader"
	"github.com/axmq/mqttcodec5/proptab"
	"github.com/axmq/mqttcodec5/props"
	"github.com/axmq/mqttcodec5/wire"
)

func buildPublishProperties(p *Publish) ([]byte, error) {
	b := props.NewBuilder(nil)
	if p.PayloadFormatIndicator != nil {
		if err := b.AddPayloadFormatIndicator(*p.PayloadFormatIndicator, fixedheader.PUBLISH); err != nil {
			return nil, err
		}
	}
	if p.MessageExpiryInterval != nil {
		if err := b.AddMessageExpiryInterval(*p.MessageExpiryInterval, fixedheader.PUBLISH); err != nil {
			return nil, err
		}
	}
	if p.ContentType != nil {
		if err := b.AddContentType(*p.ContentType, fixedheader.PUBLISH); err != nil {
			return nil, err
		}
	}
	if p.ResponseTopic != nil {
		if err := b.AddResponseTopic(*p.ResponseTopic, fixedheader.PUBLISH); err != nil {
			return nil, err
		}
	}
	if p.CorrelationData != nil {
		if err := b.AddCorrelationData(p.CorrelationData, fixedheader.PUBLISH); err != nil {
			return nil, err
		}
	}
	if p.TopicAlias != nil {
		if err := b.AddTopicAlias(*p.TopicAlias, fixedheader.PUBLISH); err != nil {
			return nil, err
		}
	}
	for _, id := range p.SubscriptionIDs {
		if err := b.AddSubscriptionIdentifier(id, fixedheader.PUBLISH); err != nil {
			return nil, err
		}
	}
	for _, up := range p.UserProperties {
		if err := b.AddUserProperty(up.Key, up.Value, fixedheader.PUBLISH); err != nil {
			return nil, err
		}
	}
	return b.Bytes(), nil
}

// publishHeader writes the topic name, packet id (if QoS>0), and property
// section shared by both Serialize and SerializeHeaderOnly.
func publishHeader(buf []byte, p *Publish) ([]byte, error) {
	buf = wire.EncodeUTF8String(buf, p.Topic)
	if p.QoS != fixedheader.QoS0 {
		if p.PacketID == 0 {
			return nil, ErrZeroPacketID
		}
		buf = wire.EncodeUint16(buf, p.PacketID)
	}
	propBuf, err := buildPublishProperties(p)
	if err != nil {
		return nil, err
	}
	rl, err := wire.EncodeVBI(uint32(len(propBuf)))
	if err != nil {
		return nil, err
	}
	buf = append(buf, rl...)
	buf = append(buf, propBuf...)
	return buf, nil
}

// SerializePublish writes p's full PUBLISH body, including payload, to
// buf.
func SerializePublish(buf []byte, p *Publish) ([]byte, error) {
	buf, err := publishHeader(buf, p)
	if err != nil {
		return nil, err
	}
	return append(buf, p.Payload...), nil
}

// SerializeHeaderOnly writes p's PUBLISH body up to but not including the
// payload, for callers that stream the payload separately.
func SerializeHeaderOnly(buf []byte, p *Publish) ([]byte, error) {
	return publishHeader(buf, p)
}

// DeserializePublish decodes a PUBLISH packet body. fh supplies the
// DUP/QoS/RETAIN flags already decoded from the fixed header.
func DeserializePublish(fh fixedheader.FixedHeader, body []byte) (*Publish, error) {
	topic, n, err := wire.DecodeUTF8String(body)
	if err != nil {
		return nil, err
	}
	offset := n

	p := &Publish{Dup: fh.Dup, QoS: fh.QoS, Retain: fh.Retain, Topic: topic}

	if fh.QoS != fixedheader.QoS0 {
		id, n, err := wire.DecodeUint16(body[offset:])
		if err != nil {
			return nil, err
		}
		if id == 0 {
			return nil, ErrZeroPacketID
		}
		offset += n
		p.PacketID = id
	}

	propLen, n, err := wire.DecodeVBIFromBytes(body[offset:])
	if err != nil {
		return nil, err
	}
	offset += n
	if offset+int(propLen) > len(body) {
		return nil, wire.ErrUnexpectedEOF
	}
	decoded, err := props.DecodeAll(body[offset:offset+int(propLen)], fixedheader.PUBLISH, false)
	if err != nil {
		return nil, err
	}
	offset += int(propLen)

	if v, ok := decoded.Byte(proptab.PayloadFormatIndicator); ok {
		p.PayloadFormatIndicator = &v
	}
	if v, ok := decoded.Uint32(proptab.MessageExpiryInterval); ok {
		p.MessageExpiryInterval = &v
	}
	if v, ok := decoded.String(proptab.ContentType); ok {
		p.ContentType = &v
	}
	if v, ok := decoded.String(proptab.ResponseTopic); ok {
		p.ResponseTopic = &v
	}
	if v, ok := decoded.Binary(proptab.CorrelationData); ok {
		p.CorrelationData = v
	}
	if v, ok := decoded.Uint16(proptab.TopicAlias); ok {
		p.TopicAlias = &v
	}
	p.UserProperties = decoded.UserProperties
	for _, e := range decoded.Entries {
		if e.ID == proptab.SubscriptionIdentifier {
			p.SubscriptionIDs = append(p.SubscriptionIDs, e.Value.(uint32))
		}
	}

	p.Payload = body[offset:]
	return p, nil
}
