// Package usecase implements business logic orchestration for OAuth token
// storage. It coordinates the token cipher, the digest utility, and the
// repositories so that plaintext tokens never reach the persistence layer.
package usecase

import (
	"context"
	"time"

	tokensDomain "github.com/tokenvault/tokenvault/internal/tokens/domain"
)

// TokenRepository defines persistence operations for OAuth token records.
type TokenRepository interface {
	// Upsert inserts a token record or replaces the existing record for the
	// same (provider, provider_user_id) pair.
	Upsert(ctx context.Context, token *tokensDomain.OAuthToken) error

	// Get retrieves a token record by provider and provider user ID.
	// Returns errors.ErrNotFound (wrapped) when no record exists.
	Get(ctx context.Context, provider, providerUserID string) (*tokensDomain.OAuthToken, error)

	// List retrieves token records ordered by provider and user, paginated.
	// Encrypted blobs are included; plaintext fields are never populated here.
	List(ctx context.Context, offset, limit int) ([]*tokensDomain.OAuthToken, error)

	// Delete removes a token record. Returns errors.ErrNotFound (wrapped)
	// when no record exists.
	Delete(ctx context.Context, provider, providerUserID string) error
}

// TokenUseCase defines the application operations over stored OAuth tokens.
type TokenUseCase interface {
	// Upsert encrypts and stores an access/refresh token pair for a user at
	// a provider, replacing any previous pair.
	Upsert(
		ctx context.Context,
		provider, providerUserID, accessToken, refreshToken string,
		expiresAt *time.Time,
	) (*tokensDomain.OAuthToken, error)

	// Get retrieves and decrypts the token pair for a user at a provider.
	Get(ctx context.Context, provider, providerUserID string) (*tokensDomain.OAuthToken, error)

	// List retrieves token metadata (no plaintext, no blobs decrypted).
	List(ctx context.Context, offset, limit int) ([]*tokensDomain.OAuthToken, error)

	// Delete removes the stored token pair for a user at a provider.
	Delete(ctx context.Context, provider, providerUserID string) error
}
