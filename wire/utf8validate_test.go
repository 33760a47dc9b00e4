package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateUTF8Valid(t *testing.T) {
	require.NoError(t, ValidateUTF8([]byte("hello")))
	require.NoError(t, ValidateUTF8([]byte("日本語")))
	require.NoError(t, ValidateUTF8([]byte{}))
}

func TestValidateUTF8Null(t *testing.T) {
	require.ErrorIs(t, ValidateUTF8([]byte{'a', 0x00, 'b'}), ErrNullCharacter)
}

func TestValidateUTF8Surrogate(t *testing.T) {
	// U+D800 encoded directly as UTF-8 bytes. These bytes are ill-formed,
	// so utf8.Valid rejects them before the rune-level surrogate check
	// runs; the test only asserts that they are rejected.
	require.Error(t, ValidateUTF8([]byte{0xED, 0xA0, 0x80}))
}

func TestValidateUTF8NonCharacter(t *testing.T) {
	// U+FFFE encoded in UTF-8.
	require.ErrorIs(t, ValidateUTF8([]byte{0xEF, 0xBF, 0xBE}), ErrNonCharacterCodePoint)
}

func TestValidateUTF8InvalidBytes(t *testing.T) {
	require.ErrorIs(t, ValidateUTF8([]byte{0xFF, 0xFE}), ErrInvalidUTF8)
}
