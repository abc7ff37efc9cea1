package domain

import (
	"encoding/hex"
)

// CipherBlob represents the decoded components of an encrypted token blob.
//
// The wire format is the hex encoding of the concatenation
// salt ‖ nonce ‖ tag ‖ ciphertext with fixed byte offsets:
//
//	[0,64)   salt        (key derivation)
//	[64,80)  nonce       (GCM IV)
//	[80,96)  tag         (GCM authentication tag)
//	[96,len) ciphertext
//
// There is no embedded version or key-id byte. The invariant for any blob
// that decrypts successfully: the salt and nonce it carries are exactly those
// used at encryption time, so the rederived key is bit-identical to the one
// that produced the tag.
type CipherBlob struct {
	Salt       []byte
	Nonce      []byte
	Tag        []byte
	Ciphertext []byte
}

// Encode serializes the blob to its hex wire form.
func (b CipherBlob) Encode() string {
	raw := make([]byte, 0, ciphertextOffset+len(b.Ciphertext))
	raw = append(raw, b.Salt...)
	raw = append(raw, b.Nonce...)
	raw = append(raw, b.Tag...)
	raw = append(raw, b.Ciphertext...)
	return hex.EncodeToString(raw)
}

// DecodeCipherBlob parses a hex-encoded blob string into its components.
//
// Returns ErrBlobTooShort if the string is empty or shorter than the fixed
// header length (an input error the caller can correct), and
// ErrDecryptionFailed if the hex itself is corrupt: a malformed encoding is
// indistinguishable from tampering and must fail closed.
func DecodeCipherBlob(blob string) (CipherBlob, error) {
	if len(blob) < MinBlobHexLength {
		return CipherBlob{}, ErrBlobTooShort
	}

	raw, err := hex.DecodeString(blob)
	if err != nil {
		return CipherBlob{}, ErrDecryptionFailed
	}

	return CipherBlob{
		Salt:       raw[saltOffset:nonceOffset],
		Nonce:      raw[nonceOffset:tagOffset],
		Tag:        raw[tagOffset:ciphertextOffset],
		Ciphertext: raw[ciphertextOffset:],
	}, nil
}
