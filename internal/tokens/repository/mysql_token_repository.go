package repository

import (
	"context"
	"database/sql"

	"github.com/tokenvault/tokenvault/internal/database"
	apperrors "github.com/tokenvault/tokenvault/internal/errors"
	tokensDomain "github.com/tokenvault/tokenvault/internal/tokens/domain"
)

// MySQLTokenRepository implements OAuthToken persistence for MySQL databases.
type MySQLTokenRepository struct {
	db *sql.DB
}

// NewMySQLTokenRepository creates a new MySQL token repository.
func NewMySQLTokenRepository(db *sql.DB) *MySQLTokenRepository {
	return &MySQLTokenRepository{db: db}
}

// Upsert inserts a token record or replaces the existing record for the same
// (provider, provider_user_id) pair, preserving the original created_at.
func (m *MySQLTokenRepository) Upsert(ctx context.Context, token *tokensDomain.OAuthToken) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO oauth_tokens
			  (id, provider, provider_user_id, access_token, refresh_token, fingerprint, expires_at, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			  ON DUPLICATE KEY UPDATE
			  access_token = VALUES(access_token),
			  refresh_token = VALUES(refresh_token),
			  fingerprint = VALUES(fingerprint),
			  expires_at = VALUES(expires_at),
			  updated_at = VALUES(updated_at)`

	_, err := querier.ExecContext(
		ctx,
		query,
		token.ID.String(),
		token.Provider,
		token.ProviderUserID,
		token.EncryptedAccessToken,
		token.EncryptedRefreshToken,
		token.Fingerprint,
		token.ExpiresAt,
		token.CreatedAt,
		token.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to upsert oauth token")
	}
	return nil
}

// Get retrieves a token record by provider and provider user ID.
func (m *MySQLTokenRepository) Get(
	ctx context.Context,
	provider, providerUserID string,
) (*tokensDomain.OAuthToken, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, provider, provider_user_id, access_token, refresh_token, fingerprint, expires_at, created_at, updated_at
			  FROM oauth_tokens
			  WHERE provider = ? AND provider_user_id = ?`

	var token tokensDomain.OAuthToken
	err := querier.QueryRowContext(ctx, query, provider, providerUserID).Scan(
		&token.ID,
		&token.Provider,
		&token.ProviderUserID,
		&token.EncryptedAccessToken,
		&token.EncryptedRefreshToken,
		&token.Fingerprint,
		&token.ExpiresAt,
		&token.CreatedAt,
		&token.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, tokensDomain.ErrTokenNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get oauth token")
	}

	return &token, nil
}

// List retrieves token records ordered by provider and user, paginated.
func (m *MySQLTokenRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*tokensDomain.OAuthToken, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, provider, provider_user_id, access_token, refresh_token, fingerprint, expires_at, created_at, updated_at
			  FROM oauth_tokens
			  ORDER BY provider, provider_user_id
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list oauth tokens")
	}
	defer func() { _ = rows.Close() }()

	var tokens []*tokensDomain.OAuthToken
	for rows.Next() {
		var token tokensDomain.OAuthToken
		err := rows.Scan(
			&token.ID,
			&token.Provider,
			&token.ProviderUserID,
			&token.EncryptedAccessToken,
			&token.EncryptedRefreshToken,
			&token.Fingerprint,
			&token.ExpiresAt,
			&token.CreatedAt,
			&token.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan oauth token")
		}
		tokens = append(tokens, &token)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate oauth tokens")
	}

	return tokens, nil
}

// Delete removes a token record by provider and provider user ID.
func (m *MySQLTokenRepository) Delete(ctx context.Context, provider, providerUserID string) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM oauth_tokens WHERE provider = ? AND provider_user_id = ?`

	result, err := querier.ExecContext(ctx, query, provider, providerUserID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete oauth token")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check deleted rows")
	}
	if affected == 0 {
		return tokensDomain.ErrTokenNotFound
	}

	return nil
}
