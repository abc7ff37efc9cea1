package usecase

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/tokenvault/tokenvault/internal/crypto/domain"
	cryptoService "github.com/tokenvault/tokenvault/internal/crypto/service"
	apperrors "github.com/tokenvault/tokenvault/internal/errors"
	tokensDomain "github.com/tokenvault/tokenvault/internal/tokens/domain"
)

// fakeTxManager executes the function directly without a real transaction.
type fakeTxManager struct{}

func (f *fakeTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeTokenRepository is an in-memory TokenRepository keyed by provider and user.
type fakeTokenRepository struct {
	mu     sync.Mutex
	tokens map[string]*tokensDomain.OAuthToken
}

func newFakeTokenRepository() *fakeTokenRepository {
	return &fakeTokenRepository{tokens: make(map[string]*tokensDomain.OAuthToken)}
}

func (f *fakeTokenRepository) key(provider, providerUserID string) string {
	return provider + "/" + providerUserID
}

func (f *fakeTokenRepository) Upsert(ctx context.Context, token *tokensDomain.OAuthToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *token
	f.tokens[f.key(token.Provider, token.ProviderUserID)] = &copied
	return nil
}

func (f *fakeTokenRepository) Get(
	ctx context.Context,
	provider, providerUserID string,
) (*tokensDomain.OAuthToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	token, ok := f.tokens[f.key(provider, providerUserID)]
	if !ok {
		return nil, tokensDomain.ErrTokenNotFound
	}
	copied := *token
	return &copied, nil
}

func (f *fakeTokenRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*tokensDomain.OAuthToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]*tokensDomain.OAuthToken, 0, len(f.tokens))
	for _, token := range f.tokens {
		copied := *token
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeTokenRepository) Delete(ctx context.Context, provider, providerUserID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := f.key(provider, providerUserID)
	if _, ok := f.tokens[key]; !ok {
		return tokensDomain.ErrTokenNotFound
	}
	delete(f.tokens, key)
	return nil
}

func newTestUseCase(t *testing.T, keyHex string) (TokenUseCase, *fakeTokenRepository) {
	t.Helper()
	masterKey, err := cryptoDomain.NewMasterKey(keyHex)
	require.NoError(t, err)

	cipher := cryptoService.NewTokenCipher(masterKey, cryptoService.NewPBKDF2KeyDeriver())
	hasher := cryptoService.NewSHA256Hasher()
	repo := newFakeTokenRepository()

	return NewTokenUseCase(&fakeTxManager{}, repo, cipher, hasher), repo
}

func TestTokenUseCase_Upsert(t *testing.T) {
	useCase, repo := newTestUseCase(t, strings.Repeat("ab", 32))
	ctx := context.Background()

	t.Run("stores encrypted blobs, never plaintext", func(t *testing.T) {
		expiry := time.Now().UTC().Add(time.Hour)
		token, err := useCase.Upsert(ctx, "google", "user-1", "access-secret", "refresh-secret", &expiry)
		require.NoError(t, err)

		stored, err := repo.Get(ctx, "google", "user-1")
		require.NoError(t, err)

		assert.NotEmpty(t, stored.EncryptedAccessToken)
		assert.NotEmpty(t, stored.EncryptedRefreshToken)
		assert.NotContains(t, stored.EncryptedAccessToken, "access-secret")
		assert.Empty(t, stored.AccessToken)
		assert.Empty(t, stored.RefreshToken)
		assert.Equal(t, token.Fingerprint, stored.Fingerprint)
		assert.Len(t, stored.Fingerprint, 64)
	})

	t.Run("empty access token is rejected", func(t *testing.T) {
		token, err := useCase.Upsert(ctx, "google", "user-2", "", "refresh", nil)
		assert.Nil(t, token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("refresh token is optional", func(t *testing.T) {
		token, err := useCase.Upsert(ctx, "github", "user-3", "access-only", "", nil)
		require.NoError(t, err)
		assert.Empty(t, token.EncryptedRefreshToken)
	})

	t.Run("replaces previous pair for same provider and user", func(t *testing.T) {
		_, err := useCase.Upsert(ctx, "google", "user-4", "first", "", nil)
		require.NoError(t, err)
		_, err = useCase.Upsert(ctx, "google", "user-4", "second", "", nil)
		require.NoError(t, err)

		token, err := useCase.Get(ctx, "google", "user-4")
		require.NoError(t, err)
		assert.Equal(t, "second", token.AccessToken)
	})
}

func TestTokenUseCase_Get(t *testing.T) {
	useCase, repo := newTestUseCase(t, strings.Repeat("ab", 32))
	ctx := context.Background()

	t.Run("round trips both tokens", func(t *testing.T) {
		_, err := useCase.Upsert(ctx, "google", "user-1", "access-secret", "refresh-secret", nil)
		require.NoError(t, err)

		token, err := useCase.Get(ctx, "google", "user-1")
		require.NoError(t, err)
		assert.Equal(t, "access-secret", token.AccessToken)
		assert.Equal(t, "refresh-secret", token.RefreshToken)
	})

	t.Run("missing record is not found", func(t *testing.T) {
		token, err := useCase.Get(ctx, "google", "nobody")
		assert.Nil(t, token)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("tampered blob fails closed", func(t *testing.T) {
		_, err := useCase.Upsert(ctx, "github", "user-2", "access-secret", "", nil)
		require.NoError(t, err)

		stored := repo.tokens[repo.key("github", "user-2")]
		blob := stored.EncryptedAccessToken
		flipped := "0"
		if blob[len(blob)-1] == '0' {
			flipped = "1"
		}
		stored.EncryptedAccessToken = blob[:len(blob)-1] + flipped

		token, err := useCase.Get(ctx, "github", "user-2")
		assert.Nil(t, token)
		assert.ErrorIs(t, err, apperrors.ErrAuthenticationFailed)
	})

	t.Run("blob from a different master key fails closed", func(t *testing.T) {
		otherUseCase, otherRepo := newTestUseCase(t, strings.Repeat("cd", 32))
		_, err := otherUseCase.Upsert(ctx, "google", "user-5", "secret", "", nil)
		require.NoError(t, err)

		// Move the record to a use case configured with a different key.
		repo.tokens[repo.key("google", "user-5")] = otherRepo.tokens[otherRepo.key("google", "user-5")]

		token, err := useCase.Get(ctx, "google", "user-5")
		assert.Nil(t, token)
		assert.ErrorIs(t, err, apperrors.ErrAuthenticationFailed)
	})
}

func TestTokenUseCase_Delete(t *testing.T) {
	useCase, _ := newTestUseCase(t, strings.Repeat("ab", 32))
	ctx := context.Background()

	_, err := useCase.Upsert(ctx, "google", "user-1", "access", "", nil)
	require.NoError(t, err)

	require.NoError(t, useCase.Delete(ctx, "google", "user-1"))

	_, err = useCase.Get(ctx, "google", "user-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = useCase.Delete(ctx, "google", "user-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTokenUseCase_List(t *testing.T) {
	useCase, _ := newTestUseCase(t, strings.Repeat("ab", 32))
	ctx := context.Background()

	_, err := useCase.Upsert(ctx, "google", "user-1", "a", "", nil)
	require.NoError(t, err)
	_, err = useCase.Upsert(ctx, "github", "user-2", "b", "", nil)
	require.NoError(t, err)

	tokens, err := useCase.List(ctx, 0, 50)
	require.NoError(t, err)
	assert.Len(t, tokens, 2)
	for _, token := range tokens {
		assert.Empty(t, token.AccessToken, "list must not decrypt")
	}
}
