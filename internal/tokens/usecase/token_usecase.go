package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	cryptoService "github.com/tokenvault/tokenvault/internal/crypto/service"
	"github.com/tokenvault/tokenvault/internal/database"
	tokensDomain "github.com/tokenvault/tokenvault/internal/tokens/domain"
)

// tokenUseCase implements the TokenUseCase interface for managing OAuth tokens.
type tokenUseCase struct {
	txManager database.TxManager
	tokenRepo TokenRepository
	cipher    cryptoService.TokenCipher
	hasher    cryptoService.Hasher
}

// NewTokenUseCase creates a new token use case instance with the provided dependencies.
func NewTokenUseCase(
	txManager database.TxManager,
	tokenRepo TokenRepository,
	cipher cryptoService.TokenCipher,
	hasher cryptoService.Hasher,
) TokenUseCase {
	return &tokenUseCase{
		txManager: txManager,
		tokenRepo: tokenRepo,
		cipher:    cipher,
		hasher:    hasher,
	}
}

// Upsert encrypts and stores an access/refresh token pair.
//
// Both tokens are encrypted independently, each under its own fresh salt and
// nonce. The fingerprint is the SHA-256 digest of the plaintext access token,
// stored so callers can correlate records in logs without decrypting.
func (t *tokenUseCase) Upsert(
	ctx context.Context,
	provider, providerUserID, accessToken, refreshToken string,
	expiresAt *time.Time,
) (*tokensDomain.OAuthToken, error) {
	if accessToken == "" {
		return nil, tokensDomain.ErrEmptyAccessToken
	}

	encryptedAccess, err := t.cipher.Encrypt(accessToken)
	if err != nil {
		return nil, err
	}

	var encryptedRefresh string
	if refreshToken != "" {
		encryptedRefresh, err = t.cipher.Encrypt(refreshToken)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	token := &tokensDomain.OAuthToken{
		ID:                    uuid.Must(uuid.NewV7()),
		Provider:              provider,
		ProviderUserID:        providerUserID,
		EncryptedAccessToken:  encryptedAccess,
		EncryptedRefreshToken: encryptedRefresh,
		Fingerprint:           t.hasher.Hash(accessToken),
		ExpiresAt:             expiresAt,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	err = t.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return t.tokenRepo.Upsert(txCtx, token)
	})
	if err != nil {
		return nil, err
	}

	return token, nil
}

// Get retrieves and decrypts the stored token pair.
//
// Decryption failures propagate unchanged: an authentication error means the
// stored blob was tampered with or was produced under a different master key,
// and the caller must never receive partial plaintext.
func (t *tokenUseCase) Get(
	ctx context.Context,
	provider, providerUserID string,
) (*tokensDomain.OAuthToken, error) {
	token, err := t.tokenRepo.Get(ctx, provider, providerUserID)
	if err != nil {
		return nil, err
	}

	token.AccessToken, err = t.cipher.Decrypt(token.EncryptedAccessToken)
	if err != nil {
		return nil, err
	}

	if token.EncryptedRefreshToken != "" {
		token.RefreshToken, err = t.cipher.Decrypt(token.EncryptedRefreshToken)
		if err != nil {
			return nil, err
		}
	}

	return token, nil
}

// List retrieves token metadata ordered by provider and user, paginated.
// No decryption is performed.
func (t *tokenUseCase) List(
	ctx context.Context,
	offset, limit int,
) ([]*tokensDomain.OAuthToken, error) {
	return t.tokenRepo.List(ctx, offset, limit)
}

// Delete removes the stored token pair for a user at a provider.
func (t *tokenUseCase) Delete(ctx context.Context, provider, providerUserID string) error {
	return t.tokenRepo.Delete(ctx, provider, providerUserID)
}
