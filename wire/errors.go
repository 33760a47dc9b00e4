// Package wire implements the MQTT v5 primitive wire encodings: the
// Variable Byte Integer, fixed-width big-endian integers, and the
// length-prefixed UTF-8 string / binary data shapes everything else in
// this module is built from.
package wire

import "github.com/cockroachdb/errors"

var (
	// ErrVBITooLarge indicates the value exceeds the maximum encodable
	// Variable Byte Integer value (268,435,455).
	ErrVBITooLarge = errors.New("variable byte integer value exceeds maximum (268,435,455)")

	// ErrMalformedVBI indicates a Variable Byte Integer used more bytes
	// than its value required (a non-canonical encoding) or never
	// terminated within 4 bytes.
	ErrMalformedVBI = errors.New("malformed variable byte integer")

	// ErrUnexpectedEOF indicates the input ended before a value could be
	// fully decoded.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrBufferTooSmall indicates the destination buffer cannot hold the
	// encoded output.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrInvalidUTF8 indicates the bytes are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 encoding")

	// ErrNullCharacter indicates a U+0000 code point, which MQTT forbids
	// in every UTF-8 Encoded String.
	ErrNullCharacter = errors.New("null character (U+0000) not allowed in UTF-8 string")

	// ErrSurrogateCodePoint indicates a UTF-16 surrogate code point
	// (U+D800-U+DFFF), which cannot occur in well-formed UTF-8.
	ErrSurrogateCodePoint = errors.New("UTF-16 surrogate code points (U+D800 to U+DFFF) not allowed")

	// ErrNonCharacterCodePoint indicates one of the Unicode non-character
	// code points (U+FFFE, U+FFFF, and the per-plane equivalents).
	ErrNonCharacterCodePoint = errors.New("non-character code points not allowed")

	// ErrNoDataAvailable indicates the transport reported zero bytes on
	// the very first read of a decode attempt.
	ErrNoDataAvailable = errors.New("no data available")

	// ErrRecvFailed indicates the transport's recv callback returned an
	// error, or a short read past the first byte of a decode attempt.
	ErrRecvFailed = errors.New("transport recv failed")

	// ErrNeedMoreBytes indicates a buffered incremental decode ran out of
	// input before it could complete; the caller should retry once more
	// bytes have arrived.
	ErrNeedMoreBytes = errors.New("need more bytes")
)
