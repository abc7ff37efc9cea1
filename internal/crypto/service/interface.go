// Package service implements the token encryption subsystem: per-operation
// key derivation (PBKDF2-HMAC-SHA512), authenticated encryption
// (AES-256-GCM), and the one-way SHA-256 digest utility.
package service

// TokenCipher performs authenticated encryption and decryption of token
// strings using per-operation derived keys.
//
// Implementations are stateless apart from the immutable master key and are
// safe for concurrent use: every call owns its own buffers and draws fresh
// randomness independently.
type TokenCipher interface {
	// Encrypt encrypts a non-empty plaintext and returns an opaque
	// hex-encoded blob safe for storage.
	Encrypt(plaintext string) (string, error)

	// Decrypt authenticates and decrypts a blob produced by Encrypt,
	// returning the original plaintext. It fails closed on any integrity
	// violation.
	Decrypt(blob string) (string, error)
}

// KeyDeriver stretches the master key into a per-operation encryption key.
type KeyDeriver interface {
	// DeriveKey derives a 32-byte key from the master key and salt.
	// Deterministic and pure given identical inputs.
	DeriveKey(masterKey, salt []byte) []byte
}

// Hasher provides one-way hashing for non-reversible fingerprinting.
type Hasher interface {
	Hash(value string) string
}
