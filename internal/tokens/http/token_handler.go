// Package http provides HTTP handlers for OAuth token storage operations.
// Token values are encrypted before they reach the repository and decrypted
// only for single-record reads.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/jellydator/validation"

	"github.com/tokenvault/tokenvault/internal/httputil"
	"github.com/tokenvault/tokenvault/internal/tokens/http/dto"
	tokensUseCase "github.com/tokenvault/tokenvault/internal/tokens/usecase"
	customValidation "github.com/tokenvault/tokenvault/internal/validation"
)

// TokenHandler handles HTTP requests for OAuth token storage operations.
type TokenHandler struct {
	tokenUseCase tokensUseCase.TokenUseCase
	logger       *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(tokenUseCase tokensUseCase.TokenUseCase, logger *slog.Logger) *TokenHandler {
	return &TokenHandler{
		tokenUseCase: tokenUseCase,
		logger:       logger,
	}
}

// parseIdentity extracts and validates the provider and provider user ID URL parameters.
func parseIdentity(c *gin.Context) (string, string, error) {
	provider := c.Param("provider")
	if err := validation.Validate(provider, validation.Required, customValidation.ProviderSlug); err != nil {
		return "", "", fmt.Errorf("invalid provider: %w", err)
	}

	providerUserID := c.Param("user_id")
	if providerUserID == "" {
		return "", "", fmt.Errorf("user_id cannot be empty")
	}

	return provider, providerUserID, nil
}

// UpsertHandler stores or replaces the token pair for a provider and user.
// PUT /v1/tokens/:provider/:user_id
// Returns 200 OK with token metadata (excludes plaintext values for security).
func (h *TokenHandler) UpsertHandler(c *gin.Context) {
	provider, providerUserID, err := parseIdentity(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpsertTokenRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	token, err := h.tokenUseCase.Upsert(
		c.Request.Context(),
		provider,
		providerUserID,
		req.AccessToken,
		req.RefreshToken,
		req.ExpiresAt,
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return response with metadata only (no plaintext)
	response := dto.MapTokenToUpsertResponse(token)
	c.JSON(http.StatusOK, response)
}

// GetHandler retrieves and decrypts the token pair for a provider and user.
// GET /v1/tokens/:provider/:user_id
// Returns 200 OK with plaintext values. Must be served over HTTPS in production.
func (h *TokenHandler) GetHandler(c *gin.Context) {
	provider, providerUserID, err := parseIdentity(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	token, err := h.tokenUseCase.Get(c.Request.Context(), provider, providerUserID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapTokenToGetResponse(token)
	c.JSON(http.StatusOK, response)
}

// DeleteHandler removes the stored token pair for a provider and user.
// DELETE /v1/tokens/:provider/:user_id
// Returns 204 No Content.
func (h *TokenHandler) DeleteHandler(c *gin.Context) {
	provider, providerUserID, err := parseIdentity(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.tokenUseCase.Delete(c.Request.Context(), provider, providerUserID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// ListHandler retrieves token records with pagination support.
// GET /v1/tokens?offset=0&limit=50
// Returns 200 OK with token metadata (never decrypts stored values).
func (h *TokenHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	tokens, err := h.tokenUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapTokensToListResponse(tokens)
	c.JSON(http.StatusOK, response)
}
