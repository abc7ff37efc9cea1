package service

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hasher implements Hasher using unsalted SHA-256 with hex output.
//
// Intended for non-secret fingerprinting and log correlation (e.g. matching
// a stored token record without decrypting it). The digest is deterministic
// and unsalted, so it must not be used anywhere a verifiable secret hash is
// required; API credentials go through Argon2id instead.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA-256 hash service.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// Hash computes the SHA-256 hash of the value and returns it as a
// 64-character hex string.
func (s *SHA256Hasher) Hash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
