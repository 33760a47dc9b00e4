package wire

// EncodeUTF8String appends a two-byte length prefix followed by s to buf.
// The caller is responsible for ensuring len(s) <= 65535.
func EncodeUTF8String(buf []byte, s string) []byte {
	buf = EncodeUint16(buf, uint16(len(s)))
	return append(buf, s...)
}

// DecodeUTF8String reads a two-byte length prefix followed by that many
// bytes from data, validates them as an MQTT UTF-8 Encoded String, and
// returns a string view and the number of bytes consumed. The returned
// string aliases data's backing array only in the sense that Go strings
// are immutable copies-on-conversion; callers that need a true zero-copy
// view should use DecodeUTF8Bytes instead.
func DecodeUTF8String(data []byte) (string, int, error) {
	raw, n, err := DecodeUTF8Bytes(data)
	if err != nil {
		return "", 0, err
	}
	return string(raw), n, nil
}

// DecodeUTF8Bytes reads a two-byte length prefix followed by that many
// bytes from data, validates them as an MQTT UTF-8 Encoded String, and
// returns a slice borrowed from data (valid only as long as data is) and
// the number of bytes consumed.
func DecodeUTF8Bytes(data []byte) ([]byte, int, error) {
	length, n, err := DecodeUint16(data)
	if err != nil {
		return nil, 0, err
	}
	if len(data[n:]) < int(length) {
		return nil, 0, ErrUnexpectedEOF
	}
	raw := data[n : n+int(length)]
	if err := ValidateUTF8(raw); err != nil {
		return nil, 0, err
	}
	return raw, n + int(length), nil
}

// EncodeBinary appends a two-byte length prefix followed by v to buf.
// The caller is responsible for ensuring len(v) <= 65535.
func EncodeBinary(buf []byte, v []byte) []byte {
	buf = EncodeUint16(buf, uint16(len(v)))
	return append(buf, v...)
}

// DecodeBinary reads a two-byte length prefix followed by that many bytes
// from data. The returned slice is borrowed from data.
func DecodeBinary(data []byte) ([]byte, int, error) {
	length, n, err := DecodeUint16(data)
	if err != nil {
		return nil, 0, err
	}
	if len(data[n:]) < int(length) {
		return nil, 0, ErrUnexpectedEOF
	}
	return data[n : n+int(length)], n + int(length), nil
}
