package props

import (
	"github.com/axmq/mqttcodec5/proptab"
	"github.com/axmq/mqttcodec5/wire"
)

// Reader walks a decoded property region (the bytes following the
// property length VBI, not including it) one entry at a time.
type Reader struct {
	data []byte
}

// NewReader wraps data, the raw bytes of a property region.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// PeekNextPropertyType validates and returns the id of the next property
// at *index without consuming its payload.
func (r *Reader) PeekNextPropertyType(index *int) (proptab.ID, error) {
	if *index >= len(r.data) {
		return 0, ErrNoDataAvailable
	}
	id := proptab.ID(r.data[*index])
	if _, ok := kindOf(id); !ok {
		return 0, ErrUnknownPropertyID
	}
	return id, nil
}

func (r *Reader) expect(index *int, want proptab.ID) error {
	if *index >= len(r.data) {
		return ErrNoDataAvailable
	}
	got := proptab.ID(r.data[*index])
	if got != want {
		return ErrUnexpectedPropertyID
	}
	return nil
}

// GetByte reads a single-byte property (Payload Format Indicator,
// Request Problem Information, Request Response Information, Maximum
// QoS, Retain Available, the three *Available flags).
func (r *Reader) GetByte(index *int, id proptab.ID) (byte, error) {
	if err := r.expect(index, id); err != nil {
		return 0, err
	}
	v, n, err := wire.DecodeUint8(r.data[*index+1:])
	if err != nil {
		return 0, err
	}
	*index += 1 + n
	return v, nil
}

// GetUint16 reads a two-byte-integer property.
func (r *Reader) GetUint16(index *int, id proptab.ID) (uint16, error) {
	if err := r.expect(index, id); err != nil {
		return 0, err
	}
	v, n, err := wire.DecodeUint16(r.data[*index+1:])
	if err != nil {
		return 0, err
	}
	*index += 1 + n
	return v, nil
}

// GetUint32 reads a four-byte-integer property.
func (r *Reader) GetUint32(index *int, id proptab.ID) (uint32, error) {
	if err := r.expect(index, id); err != nil {
		return 0, err
	}
	v, n, err := wire.DecodeUint32(r.data[*index+1:])
	if err != nil {
		return 0, err
	}
	*index += 1 + n
	return v, nil
}

// GetVarInt reads a Variable Byte Integer property (Subscription
// Identifier).
func (r *Reader) GetVarInt(index *int, id proptab.ID) (uint32, error) {
	if err := r.expect(index, id); err != nil {
		return 0, err
	}
	v, n, err := wire.DecodeVBIFromBytes(r.data[*index+1:])
	if err != nil {
		return 0, err
	}
	*index += 1 + n
	return v, nil
}

// GetString reads a UTF-8 string property, returning a copy of its
// bytes as a string.
func (r *Reader) GetString(index *int, id proptab.ID) (string, error) {
	if err := r.expect(index, id); err != nil {
		return "", err
	}
	v, n, err := wire.DecodeUTF8String(r.data[*index+1:])
	if err != nil {
		return "", err
	}
	*index += 1 + n
	return v, nil
}

// GetBinary reads a binary-data property, returning a slice borrowed
// from the Reader's backing data.
func (r *Reader) GetBinary(index *int, id proptab.ID) ([]byte, error) {
	if err := r.expect(index, id); err != nil {
		return nil, err
	}
	v, n, err := wire.DecodeBinary(r.data[*index+1:])
	if err != nil {
		return nil, err
	}
	*index += 1 + n
	return v, nil
}

// GetUserProperty reads a User Property (key, value) pair.
func (r *Reader) GetUserProperty(index *int) (key, value string, err error) {
	if err := r.expect(index, proptab.UserProperty); err != nil {
		return "", "", err
	}
	rest := r.data[*index+1:]
	k, n1, err := wire.DecodeUTF8String(rest)
	if err != nil {
		return "", "", err
	}
	v, n2, err := wire.DecodeUTF8String(rest[n1:])
	if err != nil {
		return "", "", err
	}
	*index += 1 + n1 + n2
	return k, v, nil
}
