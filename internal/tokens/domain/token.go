// Package domain defines the core domain model for OAuth token storage.
// Tokens are encrypted at rest with the token cipher; the database only ever
// sees opaque hex blobs plus a SHA-256 fingerprint for correlation.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// OAuthToken represents a stored OAuth credential pair for one user at one provider.
type OAuthToken struct {
	// ID is the unique identifier for this token record.
	ID uuid.UUID
	// Provider is the OAuth provider slug (e.g., "google", "github").
	Provider string
	// ProviderUserID is the user identifier at the provider.
	ProviderUserID string
	// AccessToken holds the decrypted access token in memory only; never persisted.
	AccessToken string `json:"-"`
	// RefreshToken holds the decrypted refresh token in memory only (may be empty).
	RefreshToken string `json:"-"`
	// EncryptedAccessToken is the hex cipher blob stored in the database.
	EncryptedAccessToken string
	// EncryptedRefreshToken is the hex cipher blob for the refresh token ("" if none).
	EncryptedRefreshToken string
	// Fingerprint is the unsalted SHA-256 hex digest of the access token,
	// used for log correlation and change detection without decryption.
	// It is not a secure secret hash.
	Fingerprint string
	// ExpiresAt is when the access token expires at the provider (nil if unknown).
	ExpiresAt *time.Time
	// CreatedAt is the UTC timestamp when this record was first stored.
	CreatedAt time.Time
	// UpdatedAt is the UTC timestamp of the last upsert.
	UpdatedAt time.Time
}
