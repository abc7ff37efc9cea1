// Package domain defines the core types and binary layout for the token
// encryption subsystem: the master key, the cipher blob format, and the
// error taxonomy shared by all cryptographic operations.
package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
)

// masterKeyHexPattern matches exactly 64 hexadecimal characters, the textual
// form of a 32-byte key.
var masterKeyHexPattern = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

// MasterKey holds the 32-byte process master key used as the PBKDF2 input
// for every per-operation derived key.
//
// The key is immutable for the process lifetime: it is decoded once from the
// configured hex value at startup and passed by reference to the token
// cipher. It is never regenerated or rotated by this subsystem; rotating the
// configured value invalidates every previously produced blob.
type MasterKey struct {
	key []byte
}

// NewMasterKey decodes a 64-hex-character candidate into a MasterKey.
//
// Returns ErrMasterKeyNotSet if the candidate is empty, or
// ErrInvalidMasterKeyFormat if the length or charset is wrong. Both wrap
// errors.ErrInvalidConfig: a malformed key is a fatal configuration error,
// not a caller mistake.
func NewMasterKey(candidate string) (*MasterKey, error) {
	if candidate == "" {
		return nil, ErrMasterKeyNotSet
	}
	if !ValidateMasterKeyFormat(candidate) {
		return nil, ErrInvalidMasterKeyFormat
	}

	key, err := hex.DecodeString(candidate)
	if err != nil {
		// Unreachable after the format check.
		return nil, ErrInvalidMasterKeyFormat
	}

	return &MasterKey{key: key}, nil
}

// Bytes returns the raw 32-byte key material.
//
// Callers must treat the returned slice as read-only; it is shared with the
// MasterKey for the process lifetime.
func (m *MasterKey) Bytes() []byte {
	return m.key
}

// GenerateMasterKey produces 32 cryptographically secure random bytes,
// hex-encoded to the 64-character form expected by OAUTH_ENCRYPTION_KEY.
//
// This is an operator bootstrap utility (exposed via the CLI); encrypt and
// decrypt never invoke it.
func GenerateMasterKey() (string, error) {
	key := make([]byte, MasterKeySize)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("failed to generate master key: %w", err)
	}
	defer Zero(key)

	return hex.EncodeToString(key), nil
}

// ValidateMasterKeyFormat reports whether candidate is exactly 64 characters,
// all in [0-9a-fA-F]. Pure predicate with no side effects.
func ValidateMasterKeyFormat(candidate string) bool {
	return masterKeyHexPattern.MatchString(candidate)
}
