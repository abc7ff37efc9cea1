package domain

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/tokenvault/tokenvault/internal/errors"
)

func validBlob() CipherBlob {
	return CipherBlob{
		Salt:       bytes.Repeat([]byte{0x01}, SaltSize),
		Nonce:      bytes.Repeat([]byte{0x02}, NonceSize),
		Tag:        bytes.Repeat([]byte{0x03}, TagSize),
		Ciphertext: []byte{0xaa, 0xbb, 0xcc},
	}
}

func TestCipherBlob_Encode(t *testing.T) {
	blob := validBlob()
	encoded := blob.Encode()

	// Header is 96 bytes = 192 hex chars, plus 3 ciphertext bytes.
	assert.Len(t, encoded, MinBlobHexLength+6)

	raw, err := hex.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, blob.Salt, raw[0:64])
	assert.Equal(t, blob.Nonce, raw[64:80])
	assert.Equal(t, blob.Tag, raw[80:96])
	assert.Equal(t, blob.Ciphertext, raw[96:])
}

func TestDecodeCipherBlob(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		original := validBlob()
		decoded, err := DecodeCipherBlob(original.Encode())
		require.NoError(t, err)
		assert.Equal(t, original, decoded)
	})

	t.Run("header-only blob has empty ciphertext", func(t *testing.T) {
		original := validBlob()
		original.Ciphertext = nil
		decoded, err := DecodeCipherBlob(original.Encode())
		require.NoError(t, err)
		assert.Empty(t, decoded.Ciphertext)
	})

	t.Run("empty blob is an input error", func(t *testing.T) {
		_, err := DecodeCipherBlob("")
		assert.ErrorIs(t, err, ErrBlobTooShort)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("blob shorter than header is an input error", func(t *testing.T) {
		_, err := DecodeCipherBlob(strings.Repeat("ab", 95))
		assert.ErrorIs(t, err, ErrBlobTooShort)
	})

	t.Run("corrupt hex fails closed as authentication error", func(t *testing.T) {
		blob := validBlob().Encode()
		corrupted := "zz" + blob[2:]
		_, err := DecodeCipherBlob(corrupted)
		assert.ErrorIs(t, err, apperrors.ErrAuthenticationFailed)
	})

	t.Run("odd-length hex fails closed as authentication error", func(t *testing.T) {
		blob := validBlob().Encode()
		_, err := DecodeCipherBlob(blob + "a")
		assert.ErrorIs(t, err, apperrors.ErrAuthenticationFailed)
	})
}
