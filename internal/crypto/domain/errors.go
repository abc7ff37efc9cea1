package domain

import (
	"github.com/tokenvault/tokenvault/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors so
// callers can match on kind with errors.Is. All errors are mapped to
// appropriate HTTP status codes by the error handling layer.
var (
	// ErrMasterKeyNotSet indicates the OAUTH_ENCRYPTION_KEY environment value
	// is absent. This is a fatal configuration error detected on first use.
	//
	// HTTP Status: 500 Internal Server Error
	ErrMasterKeyNotSet = errors.Wrap(errors.ErrInvalidConfig, "encryption key not set")

	// ErrInvalidMasterKeyFormat indicates the configured master key is not
	// exactly 64 hexadecimal characters (32 raw bytes).
	//
	// HTTP Status: 500 Internal Server Error
	ErrInvalidMasterKeyFormat = errors.Wrap(
		errors.ErrInvalidConfig,
		"encryption key must be 64 hexadecimal characters",
	)

	// ErrEmptyPlaintext indicates an empty string was passed to encrypt.
	// Caller-correctable, surfaced immediately.
	//
	// HTTP Status: 422 Unprocessable Entity
	ErrEmptyPlaintext = errors.Wrap(errors.ErrInvalidInput, "plaintext cannot be empty")

	// ErrBlobTooShort indicates the blob passed to decrypt is empty or shorter
	// than the fixed header (salt + nonce + tag) in hex characters.
	//
	// HTTP Status: 422 Unprocessable Entity
	ErrBlobTooShort = errors.Wrap(errors.ErrInvalidInput, "encrypted blob is too short")

	// ErrDecryptionFailed indicates the GCM tag verification failed.
	//
	// This error covers:
	//   - Ciphertext or tag tampered with
	//   - Decryption attempted under a different master key
	//   - Truncated or corrupted hex input
	//
	// The specific cause is deliberately not disclosed, and no partial
	// plaintext is ever returned. Tag comparison inside GCM is constant-time,
	// so the failure cannot be used as a timing oracle.
	//
	// HTTP Status: 422 Unprocessable Entity
	ErrDecryptionFailed = errors.Wrap(errors.ErrAuthenticationFailed, "decryption failed")
)
