package dto

import (
	"time"

	tokensDomain "github.com/tokenvault/tokenvault/internal/tokens/domain"
)

// TokenResponse represents an OAuth token record in API responses.
// SECURITY: AccessToken and RefreshToken contain plaintext and are only
// included in GET responses. Must be transmitted over HTTPS in production.
type TokenResponse struct {
	ID             string     `json:"id"`
	Provider       string     `json:"provider"`
	ProviderUserID string     `json:"provider_user_id"`
	AccessToken    string     `json:"access_token,omitempty"`  // Only included in GET responses
	RefreshToken   string     `json:"refresh_token,omitempty"` // Only included in GET responses
	Fingerprint    string     `json:"fingerprint"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// MapTokenToUpsertResponse converts a domain token to an API response for PUT operations.
// The plaintext values are excluded for security (only metadata is returned on storage).
func MapTokenToUpsertResponse(token *tokensDomain.OAuthToken) TokenResponse {
	return TokenResponse{
		ID:             token.ID.String(),
		Provider:       token.Provider,
		ProviderUserID: token.ProviderUserID,
		Fingerprint:    token.Fingerprint,
		ExpiresAt:      token.ExpiresAt,
		CreatedAt:      token.CreatedAt,
		UpdatedAt:      token.UpdatedAt,
	}
}

// MapTokenToGetResponse converts a domain token to an API response for GET operations.
// The decrypted token values are included in the response.
func MapTokenToGetResponse(token *tokensDomain.OAuthToken) TokenResponse {
	return TokenResponse{
		ID:             token.ID.String(),
		Provider:       token.Provider,
		ProviderUserID: token.ProviderUserID,
		AccessToken:    token.AccessToken,
		RefreshToken:   token.RefreshToken,
		Fingerprint:    token.Fingerprint,
		ExpiresAt:      token.ExpiresAt,
		CreatedAt:      token.CreatedAt,
		UpdatedAt:      token.UpdatedAt,
	}
}
