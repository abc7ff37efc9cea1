package dto

import (
	tokensDomain "github.com/tokenvault/tokenvault/internal/tokens/domain"
)

// ListTokensResponse represents a paginated list of token records in API responses.
type ListTokensResponse struct {
	Data []TokenResponse `json:"data"`
}

// MapTokensToListResponse converts a slice of domain tokens to a list response.
// Plaintext values are never included in list responses.
func MapTokensToListResponse(tokens []*tokensDomain.OAuthToken) ListTokensResponse {
	data := make([]TokenResponse, 0, len(tokens))
	for _, token := range tokens {
		data = append(data, MapTokenToUpsertResponse(token))
	}

	return ListTokensResponse{
		Data: data,
	}
}
