package service

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"

	cryptoDomain "github.com/tokenvault/tokenvault/internal/crypto/domain"
)

// PBKDF2KeyDeriver implements KeyDeriver using PBKDF2-HMAC-SHA512 with
// 100000 iterations and a 32-byte output.
//
// Derivation is deterministic given (masterKey, salt), which is what allows
// decrypt to reconstruct the exact key used at encryption time from the salt
// embedded in the blob. The iteration count makes the work CPU-bound with
// bounded, predictable latency; no cancellation is needed because the
// operation always terminates.
type PBKDF2KeyDeriver struct{}

// NewPBKDF2KeyDeriver creates a new PBKDF2-HMAC-SHA512 key deriver.
func NewPBKDF2KeyDeriver() *PBKDF2KeyDeriver {
	return &PBKDF2KeyDeriver{}
}

// DeriveKey derives a 32-byte key from the master key and salt.
func (d *PBKDF2KeyDeriver) DeriveKey(masterKey, salt []byte) []byte {
	return pbkdf2.Key(
		masterKey,
		salt,
		cryptoDomain.PBKDF2Iterations,
		cryptoDomain.DerivedKeySize,
		sha512.New,
	)
}
