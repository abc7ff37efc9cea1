package http

import (
	"log/slog"
	"strings"

	"github.com/allisson/go-pwdhash"
	"github.com/gin-gonic/gin"

	apperrors "github.com/tokenvault/tokenvault/internal/errors"
	"github.com/tokenvault/tokenvault/internal/httputil"
)

// APIKeyAuthMiddleware enforces bearer API-key authentication.
//
// Callers must present the plaintext API key as "Authorization: Bearer <key>".
// The key is verified against an Argon2id hash so the plaintext key is never
// stored on the server side. An empty hash disables authentication entirely;
// this is intended for local development only and is logged loudly.
func APIKeyAuthMiddleware(apiKeyHash string, logger *slog.Logger) gin.HandlerFunc {
	if apiKeyHash == "" {
		logger.Warn("API key authentication is DISABLED - set API_KEY_HASH in production")
		return func(c *gin.Context) {
			c.Next()
		}
	}

	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyModerate))
	if err != nil {
		// Only possible with an invalid policy constant.
		panic(err)
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		ok, err := hasher.Verify([]byte(parts[1]), apiKeyHash)
		if err != nil || !ok {
			logger.Debug("api key verification failed", slog.String("client_ip", c.ClientIP()))
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
