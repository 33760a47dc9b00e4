package packet

import (
	"github.com/axmq/mqttcodec5/fixedheader"
	"github.com/axmq/mqttcodec5/proptab"
	"github.com/axmq/mqttcodec5/props"
	"github.com/axmq/mqttcodec5/wire"
)

// SerializeDisconnect writes d's DISCONNECT body to buf. A DISCONNECT
// with Success and nothing else to report may omit the reason code and
// property section entirely; this codec always emits them for
// simplicity and symmetry with the other ACK types.
func SerializeDisconnect(buf []byte, d *Disconnect) ([]byte, error) {
	buf = append(buf, byte(d.ReasonCode))

	b := props.NewBuilder(nil)
	if d.SessionExpiryInterval != nil {
		if err := b.AddSessionExpiryInterval(*d.SessionExpiryInterval, fixedheader.DISCONNECT); err != nil {
			return nil, err
		}
	}
	if d.ServerReference != nil {
		if err := b.AddServerReference(*d.ServerReference, fixedheader.DISCONNECT); err != nil {
			return nil, err
		}
	}
	if d.ReasonString != "" {
		if err := b.AddReasonString(d.ReasonString, fixedheader.DISCONNECT); err != nil {
			return nil, err
		}
	}
	for _, up := range d.UserProperties {
		if err := b.AddUserProperty(up.Key, up.Value, fixedheader.DISCONNECT); err != nil {
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

// DeserializeDisconnect decodes a DISCONNECT packet body. An empty body
// is a well-formed DISCONNECT with Success and no properties.
func DeserializeDisconnect(body []byte) (*Disconnect, error) {
	if len(body) == 0 {
		return &Disconnect{ReasonCode: ReasonSuccess}, nil
	}
	rc, n, err := wire.DecodeUint8(body)
	if err != nil {
		return nil, err
	}
	d := &Disconnect{ReasonCode: ReasonCode(rc)}
	offset := n
	if offset >= len(body) {
		return d, nil
	}

	propLen, n, err := wire.DecodeVBIFromBytes(body[offset:])
	if err != nil {
		return nil, err
	}
	offset += n
	if offset+int(propLen) > len(body) {
		return nil, wire.ErrUnexpectedEOF
	}
	decoded, err := props.DecodeAll(body[offset:offset+int(propLen)], fixedheader.DISCONNECT, false)
	if err != nil {
		return nil, err
	}

	if v, ok := decoded.Uint32(proptab.SessionExpiryInterval); ok {
		d.SessionExpiryInterval = &v
	}
	if v, ok := decoded.String(proptab.ServerReference); ok {
		d.ServerReference = &v
	}
	if v, ok := decoded.String(proptab.ReasonString); ok {
		d.ReasonString = v
	}
	d.UserProperties = decoded.UserProperties
	return d, nil
}
