package packet

import (
	"github.com/axmq/mqttcodec5/fixedheader"
	"github.com/axmq/mqttcodec5/proptab"
	"github.com/axmq/mqttcodec5/props"
	"github.com/axmq/mqttcodec5/wire"
)

// SerializeAuth writes a's AUTH body to buf.
func SerializeAuth(buf []byte, a *Auth) ([]byte, error) {
	buf = append(buf, byte(a.ReasonCode))

	b := props.NewBuilder(nil)
	if a.AuthenticationMethod != nil {
		if err := b.AddAuthenticationMethod(*a.AuthenticationMethod, fixedheader.AUTH); err != nil {
			return nil, err
		}
	}
	if a.AuthenticationData != nil {
		if err := b.AddAuthenticationData(a.AuthenticationData, fixedheader.AUTH); err != nil {
			return nil, err
		}
	}
	if a.ReasonString != "" {
		if err := b.AddReasonString(a.ReasonString, fixedheader.AUTH); err != nil {
			return nil, err
		}
	}
	for _, up := range a.UserProperties {
		if err := b.AddUserProperty(up.Key, up.Value, fixedheader.AUTH); err != nil {
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

// DeserializeAuth decodes an AUTH packet body.
func DeserializeAuth(body []byte) (*Auth, error) {
	rc, n, err := wire.DecodeUint8(body)
	if err != nil {
		return nil, err
	}
	a := &Auth{ReasonCode: ReasonCode(rc)}
	offset := n
	if offset >= len(body) {
		return a, nil
	}

	propLen, n, err := wire.DecodeVBIFromBytes(body[offset:])
	if err != nil {
		return nil, err
	}
	offset += n
	if offset+int(propLen) > len(body) {
		return nil, wire.ErrUnexpectedEOF
	}
	decoded, err := props.DecodeAll(body[offset:offset+int(propLen)], fixedheader.AUTH, false)
	if err != nil {
		return nil, err
	}

	if v, ok := decoded.String(proptab.AuthenticationMethod); ok {
		a.AuthenticationMethod = &v
	}
	if v, ok := decoded.Binary(proptab.AuthenticationData); ok {
		a.AuthenticationData = v
	}
	if v, ok := decoded.String(proptab.ReasonString); ok {
		a.ReasonString = v
	}
	a.UserProperties = decoded.UserProperties
	return a, nil
}
