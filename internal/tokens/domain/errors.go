package domain

import (
	"github.com/tokenvault/tokenvault/internal/errors"
)

// Token storage error definitions.
var (
	// ErrTokenNotFound indicates no token record exists for the given
	// provider and provider user ID.
	//
	// HTTP Status: 404 Not Found
	ErrTokenNotFound = errors.Wrap(errors.ErrNotFound, "oauth token not found")

	// ErrEmptyAccessToken indicates an upsert was attempted with an empty
	// access token.
	//
	// HTTP Status: 422 Unprocessable Entity
	ErrEmptyAccessToken = errors.Wrap(errors.ErrInvalidInput, "access token cannot be empty")
)
