// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	tokensDomain "github.com/tokenvault/tokenvault/internal/tokens/domain"
)

// MockTokenUseCase is a mock implementation of TokenUseCase for testing.
type MockTokenUseCase struct {
	mock.Mock
}

// Upsert mocks the Upsert method of TokenUseCase.
func (m *MockTokenUseCase) Upsert(
	ctx context.Context,
	provider, providerUserID, accessToken, refreshToken string,
	expiresAt *time.Time,
) (*tokensDomain.OAuthToken, error) {
	args := m.Called(ctx, provider, providerUserID, accessToken, refreshToken, expiresAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokensDomain.OAuthToken), args.Error(1)
}

// Get mocks the Get method of TokenUseCase.
func (m *MockTokenUseCase) Get(
	ctx context.Context,
	provider, providerUserID string,
) (*tokensDomain.OAuthToken, error) {
	args := m.Called(ctx, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokensDomain.OAuthToken), args.Error(1)
}

// List mocks the List method of TokenUseCase.
func (m *MockTokenUseCase) List(
	ctx context.Context,
	offset, limit int,
) ([]*tokensDomain.OAuthToken, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tokensDomain.OAuthToken), args.Error(1)
}

// Delete mocks the Delete method of TokenUseCase.
func (m *MockTokenUseCase) Delete(ctx context.Context, provider, providerUserID string) error {
	args := m.Called(ctx, provider, providerUserID)
	return args.Error(0)
}
