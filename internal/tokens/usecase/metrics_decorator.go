package usecase

import (
	"context"
	"time"

	"github.com/tokenvault/tokenvault/internal/metrics"
	tokensDomain "github.com/tokenvault/tokenvault/internal/tokens/domain"
)

// tokenUseCaseWithMetrics decorates TokenUseCase with metrics instrumentation.
type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase with metrics recording.
func NewTokenUseCaseWithMetrics(useCase TokenUseCase, m metrics.BusinessMetrics) TokenUseCase {
	return &tokenUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Upsert records metrics for token upsert operations.
func (t *tokenUseCaseWithMetrics) Upsert(
	ctx context.Context,
	provider, providerUserID, accessToken, refreshToken string,
	expiresAt *time.Time,
) (*tokensDomain.OAuthToken, error) {
	start := time.Now()
	token, err := t.next.Upsert(ctx, provider, providerUserID, accessToken, refreshToken, expiresAt)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "tokens", "token_upsert", status)
	t.metrics.RecordDuration(ctx, "tokens", "token_upsert", time.Since(start), status)

	return token, err
}

// Get records metrics for token retrieval operations.
func (t *tokenUseCaseWithMetrics) Get(
	ctx context.Context,
	provider, providerUserID string,
) (*tokensDomain.OAuthToken, error) {
	start := time.Now()
	token, err := t.next.Get(ctx, provider, providerUserID)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "tokens", "token_get", status)
	t.metrics.RecordDuration(ctx, "tokens", "token_get", time.Since(start), status)

	return token, err
}

// List records metrics for token listing operations.
func (t *tokenUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*tokensDomain.OAuthToken, error) {
	start := time.Now()
	tokens, err := t.next.List(ctx, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "tokens", "token_list", status)
	t.metrics.RecordDuration(ctx, "tokens", "token_list", time.Since(start), status)

	return tokens, err
}

// Delete records metrics for token deletion operations.
func (t *tokenUseCaseWithMetrics) Delete(ctx context.Context, provider, providerUserID string) error {
	start := time.Now()
	err := t.next.Delete(ctx, provider, providerUserID)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "tokens", "token_delete", status)
	t.metrics.RecordDuration(ctx, "tokens", "token_delete", time.Since(start), status)

	return err
}
