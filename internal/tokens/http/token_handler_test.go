package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "github.com/tokenvault/tokenvault/internal/errors"
	tokensDomain "github.com/tokenvault/tokenvault/internal/tokens/domain"
	"github.com/tokenvault/tokenvault/internal/tokens/http/dto"
	"github.com/tokenvault/tokenvault/internal/tokens/usecase/mocks"
)

// setupTestHandler creates a test handler with mocked dependencies.
func setupTestHandler(t *testing.T) (*TokenHandler, *mocks.MockTokenUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockTokenUseCase := &mocks.MockTokenUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewTokenHandler(mockTokenUseCase, logger)

	return handler, mockTokenUseCase
}

func identityParams(provider, userID string) gin.Params {
	return gin.Params{
		{Key: "provider", Value: provider},
		{Key: "user_id", Value: userID},
	}
}

func TestTokenHandler_UpsertHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		tokenID := uuid.Must(uuid.NewV7())
		now := time.Now().UTC()

		request := dto.UpsertTokenRequest{
			AccessToken:  "access-secret",
			RefreshToken: "refresh-secret",
		}

		expectedToken := &tokensDomain.OAuthToken{
			ID:             tokenID,
			Provider:       "google",
			ProviderUserID: "user-1",
			Fingerprint:    "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		mockUseCase.
			On("Upsert", mock.Anything, "google", "user-1", "access-secret", "refresh-secret", (*time.Time)(nil)).
			Return(expectedToken, nil).
			Once()

		c, w := createTestContext(http.MethodPut, "/v1/tokens/google/user-1", request)
		c.Params = identityParams("google", "user-1")

		handler.UpsertHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.TokenResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, tokenID.String(), response.ID)
		assert.Equal(t, "google", response.Provider)
		assert.Equal(t, expectedToken.Fingerprint, response.Fingerprint)
		assert.Empty(t, response.AccessToken)  // Plaintext never returned on upsert
		assert.Empty(t, response.RefreshToken) // Plaintext never returned on upsert
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPut, "/v1/tokens/google/user-1", nil)
		c.Params = identityParams("google", "user-1")
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("invalid json")))

		handler.UpsertHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "bad_request", response["error"])
	})

	t.Run("Error_EmptyAccessToken", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		request := dto.UpsertTokenRequest{
			AccessToken: "",
		}

		c, w := createTestContext(http.MethodPut, "/v1/tokens/google/user-1", request)
		c.Params = identityParams("google", "user-1")

		handler.UpsertHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "validation_error", response["error"])
	})

	t.Run("Error_InvalidProvider", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		request := dto.UpsertTokenRequest{
			AccessToken: "access-secret",
		}

		c, w := createTestContext(http.MethodPut, "/v1/tokens/Google!/user-1", request)
		c.Params = identityParams("Google!", "user-1")

		handler.UpsertHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "validation_error", response["error"])
		assert.Contains(t, response["message"], "invalid provider")
	})

	t.Run("Error_UseCaseError", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		request := dto.UpsertTokenRequest{
			AccessToken: "access-secret",
		}

		mockUseCase.
			On("Upsert", mock.Anything, "google", "user-1", "access-secret", "", (*time.Time)(nil)).
			Return(nil, apperrors.New("use case error")).
			Once()

		c, w := createTestContext(http.MethodPut, "/v1/tokens/google/user-1", request)
		c.Params = identityParams("google", "user-1")

		handler.UpsertHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "internal_error", response["error"])
	})
}

func TestTokenHandler_GetHandler(t *testing.T) {
	t.Run("Success_ReturnsDecryptedValues", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		tokenID := uuid.Must(uuid.NewV7())
		now := time.Now().UTC()

		expectedToken := &tokensDomain.OAuthToken{
			ID:             tokenID,
			Provider:       "google",
			ProviderUserID: "user-1",
			AccessToken:    "access-secret",
			RefreshToken:   "refresh-secret",
			Fingerprint:    "abc123",
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		mockUseCase.
			On("Get", mock.Anything, "google", "user-1").
			Return(expectedToken, nil).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/tokens/google/user-1", nil)
		c.Params = identityParams("google", "user-1")

		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.TokenResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "access-secret", response.AccessToken)
		assert.Equal(t, "refresh-secret", response.RefreshToken)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.
			On("Get", mock.Anything, "google", "missing").
			Return(nil, tokensDomain.ErrTokenNotFound).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/tokens/google/missing", nil)
		c.Params = identityParams("google", "missing")

		handler.GetHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "not_found", response["error"])
	})

	t.Run("Error_TamperedBlob", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.
			On("Get", mock.Anything, "google", "user-1").
			Return(nil, apperrors.ErrAuthenticationFailed).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/tokens/google/user-1", nil)
		c.Params = identityParams("google", "user-1")

		handler.GetHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "authentication_failed", response["error"])
	})

	t.Run("Error_EmptyUserID", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/tokens/google/", nil)
		c.Params = identityParams("google", "")

		handler.GetHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "validation_error", response["error"])
		assert.Contains(t, response["message"], "user_id cannot be empty")
	})
}

func TestTokenHandler_DeleteHandler(t *testing.T) {
	t.Run("Success_DeleteToken", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.
			On("Delete", mock.Anything, "google", "user-1").
			Return(nil).
			Once()

		c, w := createTestContext(http.MethodDelete, "/v1/tokens/google/user-1", nil)
		c.Params = identityParams("google", "user-1")

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.
			On("Delete", mock.Anything, "google", "missing").
			Return(tokensDomain.ErrTokenNotFound).
			Once()

		c, w := createTestContext(http.MethodDelete, "/v1/tokens/google/missing", nil)
		c.Params = identityParams("google", "missing")

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTokenHandler_ListHandler(t *testing.T) {
	t.Run("Success_ListTokens", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		now := time.Now().UTC()
		tokens := []*tokensDomain.OAuthToken{
			{
				ID:             uuid.Must(uuid.NewV7()),
				Provider:       "google",
				ProviderUserID: "user-1",
				AccessToken:    "should-never-appear",
				Fingerprint:    "abc",
				CreatedAt:      now,
				UpdatedAt:      now,
			},
		}

		mockUseCase.
			On("List", mock.Anything, 0, 50).
			Return(tokens, nil).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/tokens", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListTokensResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Len(t, response.Data, 1)
		assert.Empty(t, response.Data[0].AccessToken)
		assert.NotContains(t, w.Body.String(), "should-never-appear")
	})

	t.Run("Error_InvalidPagination", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/tokens?offset=-1", nil)
		c.Request.URL.RawQuery = "offset=-1"

		handler.ListHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
