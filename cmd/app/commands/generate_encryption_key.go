package commands

import (
	"fmt"
	"io"

	cryptoDomain "github.com/tokenvault/tokenvault/internal/crypto/domain"
)

// RunGenerateEncryptionKey generates a new 32-byte master encryption key and
// prints it in the form expected by OAUTH_ENCRYPTION_KEY.
//
// The key is printed exactly once and never persisted by this command; the
// operator is responsible for storing it in a secrets manager. Rotating the
// key makes every previously encrypted token unreadable.
func RunGenerateEncryptionKey(out io.Writer) error {
	key, err := cryptoDomain.GenerateMasterKey()
	if err != nil {
		return fmt.Errorf("failed to generate encryption key: %w", err)
	}

	fmt.Fprintln(out, "# Token encryption key configuration")
	fmt.Fprintln(out, "# Copy this environment variable to your .env file or secrets manager.")
	fmt.Fprintln(out, "# WARNING: rotating this key invalidates all previously encrypted tokens.")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "OAUTH_ENCRYPTION_KEY=\"%s\"\n", key)

	return nil
}
