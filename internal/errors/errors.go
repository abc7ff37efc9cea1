// Package errors provides standardized domain errors that express business intent
// rather than infrastructure details. These errors should be used by use cases
// and mapped to appropriate HTTP status codes by handlers.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors that can be used across all domain modules.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a conflict with existing data (e.g., duplicate key).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig indicates required configuration is missing or malformed.
	// Configuration errors are fatal and surfaced immediately; there is no retry.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrAuthenticationFailed indicates an integrity check failed during an
	// authenticated decryption. It deliberately does not distinguish between
	// tampering, a wrong key, and corrupted input.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrUnauthorized indicates the request lacks valid authentication credentials.
	ErrUnauthorized = errors.New("unauthorized")
)

// New creates an error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap adds context to err while keeping the sentinel reachable through
// errors.Is. Each layer wraps once; handlers match on the sentinel kind.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
