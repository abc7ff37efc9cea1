package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/allisson/go-pwdhash"
)

// RunCreateAPIKey generates a random API key and its Argon2id hash.
//
// The plaintext key is shown exactly once and handed to the API caller; only
// the hash is configured on the server via API_KEY_HASH. The server can then
// verify callers without ever storing the plaintext key.
func RunCreateAPIKey(out io.Writer) error {
	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Errorf("failed to generate api key: %w", err)
	}

	plainKey := base64.URLEncoding.EncodeToString(randomBytes)

	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyModerate))
	if err != nil {
		return fmt.Errorf("failed to create password hasher: %w", err)
	}

	hash, err := hasher.Hash([]byte(plainKey))
	if err != nil {
		return fmt.Errorf("failed to hash api key: %w", err)
	}

	fmt.Fprintln(out, "# API key configuration")
	fmt.Fprintln(out, "# Give the API key to the caller; configure only the hash on the server.")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "API_KEY=\"%s\"\n", plainKey)
	fmt.Fprintf(out, "API_KEY_HASH=\"%s\"\n", hash)

	return nil
}
