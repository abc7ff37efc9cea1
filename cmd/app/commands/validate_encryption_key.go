package commands

import (
	"fmt"
	"io"

	cryptoDomain "github.com/tokenvault/tokenvault/internal/crypto/domain"
)

// RunValidateEncryptionKey checks that the given key candidate is usable as
// the token encryption master key (64 hexadecimal characters). The candidate
// is typically the current OAUTH_ENCRYPTION_KEY value.
//
// The key material itself is never echoed back.
func RunValidateEncryptionKey(out io.Writer, candidate string) error {
	if _, err := cryptoDomain.NewMasterKey(candidate); err != nil {
		return fmt.Errorf("encryption key is not valid: %w", err)
	}

	fmt.Fprintln(out, "encryption key is valid")
	return nil
}
