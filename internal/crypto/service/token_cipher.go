package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	cryptoDomain "github.com/tokenvault/tokenvault/internal/crypto/domain"
)

// TokenCipherService implements TokenCipher using AES-256-GCM with a
// per-operation PBKDF2-derived key.
//
// Every encrypt call draws a fresh 64-byte salt and 16-byte nonce from
// crypto/rand and derives a new 32-byte key from the master key and salt.
// Because each call encrypts under its own derived key, key+nonce reuse is
// practically impossible even under high call volume.
//
// Thread safety: the service holds only the immutable master key and a
// stateless deriver, so it is safe for concurrent use from multiple
// goroutines without external synchronization.
type TokenCipherService struct {
	masterKey *cryptoDomain.MasterKey
	deriver   KeyDeriver
}

// NewTokenCipher creates a TokenCipherService bound to the given master key.
//
// The master key is loaded and validated once at startup (see the app
// container); the cipher is then passed by reference to every caller instead
// of each caller reading process configuration.
func NewTokenCipher(masterKey *cryptoDomain.MasterKey, deriver KeyDeriver) *TokenCipherService {
	return &TokenCipherService{
		masterKey: masterKey,
		deriver:   deriver,
	}
}

// Encrypt encrypts a non-empty UTF-8 plaintext string.
//
// Returns a hex-encoded blob in the fixed salt‖nonce‖tag‖ciphertext layout.
// The only side effect is consuming entropy from crypto/rand. Fails with
// ErrEmptyPlaintext (an input error) on empty input.
func (s *TokenCipherService) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", cryptoDomain.ErrEmptyPlaintext
	}

	salt := make([]byte, cryptoDomain.SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, cryptoDomain.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	key := s.deriver.DeriveKey(s.masterKey.Bytes(), salt)
	defer cryptoDomain.Zero(key)

	aead, err := newGCM(key)
	if err != nil {
		return "", err
	}

	// Seal appends the 16-byte tag after the ciphertext; the blob layout
	// stores the tag before the ciphertext, so split and reorder here.
	sealed := aead.Seal(nil, nonce, []byte(plaintext), nil)
	tagStart := len(sealed) - cryptoDomain.TagSize

	blob := cryptoDomain.CipherBlob{
		Salt:       salt,
		Nonce:      nonce,
		Tag:        sealed[tagStart:],
		Ciphertext: sealed[:tagStart],
	}

	return blob.Encode(), nil
}

// Decrypt authenticates and decrypts a blob produced by Encrypt.
//
// The derived key is reconstructed from the currently configured master key
// and the salt embedded in the blob; if the master key has changed since
// encryption, derivation silently produces a different key and tag
// verification fails. Any integrity violation (tampering, wrong master key,
// truncated or corrupted input) returns ErrDecryptionFailed and never any
// partial plaintext. GCM tag comparison is constant-time, so the error is
// not usable as a timing oracle.
func (s *TokenCipherService) Decrypt(blob string) (string, error) {
	decoded, err := cryptoDomain.DecodeCipherBlob(blob)
	if err != nil {
		return "", err
	}

	key := s.deriver.DeriveKey(s.masterKey.Bytes(), decoded.Salt)
	defer cryptoDomain.Zero(key)

	aead, err := newGCM(key)
	if err != nil {
		return "", err
	}

	// Open expects ciphertext‖tag; rebuild it from the blob layout.
	sealed := make([]byte, 0, len(decoded.Ciphertext)+cryptoDomain.TagSize)
	sealed = append(sealed, decoded.Ciphertext...)
	sealed = append(sealed, decoded.Tag...)

	plaintext, err := aead.Open(nil, decoded.Nonce, sealed, nil)
	if err != nil {
		return "", cryptoDomain.ErrDecryptionFailed
	}

	return string(plaintext), nil
}

// newGCM builds an AES-256-GCM cipher with the blob format's 16-byte nonce.
func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, cryptoDomain.NonceSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return aead, nil
}
