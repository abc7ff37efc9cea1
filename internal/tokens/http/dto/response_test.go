package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokensDomain "github.com/tokenvault/tokenvault/internal/tokens/domain"
)

func sampleToken() *tokensDomain.OAuthToken {
	now := time.Now().UTC()
	return &tokensDomain.OAuthToken{
		ID:             uuid.Must(uuid.NewV7()),
		Provider:       "google",
		ProviderUserID: "user-1",
		AccessToken:    "access-secret",
		RefreshToken:   "refresh-secret",
		Fingerprint:    "abc123",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestMapTokenToUpsertResponse(t *testing.T) {
	token := sampleToken()
	response := MapTokenToUpsertResponse(token)

	assert.Equal(t, token.ID.String(), response.ID)
	assert.Equal(t, token.Fingerprint, response.Fingerprint)
	assert.Empty(t, response.AccessToken)
	assert.Empty(t, response.RefreshToken)

	// Plaintext fields must also be absent from the serialized form.
	body, err := json.Marshal(response)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "access-secret")
	assert.NotContains(t, string(body), "refresh-secret")
}

func TestMapTokenToGetResponse(t *testing.T) {
	token := sampleToken()
	response := MapTokenToGetResponse(token)

	assert.Equal(t, "access-secret", response.AccessToken)
	assert.Equal(t, "refresh-secret", response.RefreshToken)
}

func TestMapTokensToListResponse(t *testing.T) {
	response := MapTokensToListResponse([]*tokensDomain.OAuthToken{sampleToken(), sampleToken()})

	assert.Len(t, response.Data, 2)
	for _, item := range response.Data {
		assert.Empty(t, item.AccessToken)
	}
}

func TestMapTokensToListResponse_Empty(t *testing.T) {
	response := MapTokensToListResponse(nil)

	body, err := json.Marshal(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[]}`, string(body))
}
