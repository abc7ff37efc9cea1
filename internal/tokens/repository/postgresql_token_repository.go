// Package repository implements data persistence for OAuth token records.
// Repositories support both PostgreSQL and MySQL; only encrypted blobs and
// fingerprints ever reach the database.
package repository

import (
	"context"
	"database/sql"

	"github.com/tokenvault/tokenvault/internal/database"
	apperrors "github.com/tokenvault/tokenvault/internal/errors"
	tokensDomain "github.com/tokenvault/tokenvault/internal/tokens/domain"
)

// PostgreSQLTokenRepository implements OAuthToken persistence for PostgreSQL databases.
type PostgreSQLTokenRepository struct {
	db *sql.DB
}

// NewPostgreSQLTokenRepository creates a new PostgreSQL token repository.
func NewPostgreSQLTokenRepository(db *sql.DB) *PostgreSQLTokenRepository {
	return &PostgreSQLTokenRepository{db: db}
}

// Upsert inserts a token record or replaces the existing record for the same
// (provider, provider_user_id) pair, preserving the original created_at.
func (p *PostgreSQLTokenRepository) Upsert(
	ctx context.Context,
	token *tokensDomain.OAuthToken,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO oauth_tokens
			  (id, provider, provider_user_id, access_token, refresh_token, fingerprint, expires_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  ON CONFLICT (provider, provider_user_id) DO UPDATE SET
			  access_token = EXCLUDED.access_token,
			  refresh_token = EXCLUDED.refresh_token,
			  fingerprint = EXCLUDED.fingerprint,
			  expires_at = EXCLUDED.expires_at,
			  updated_at = EXCLUDED.updated_at`

	_, err := querier.ExecContext(
		ctx,
		query,
		token.ID,
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
func (p *PostgreSQLTokenRepository) Get(
	ctx context.Context,
	provider, providerUserID string,
) (*tokensDomain.OAuthToken, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, provider, provider_user_id, access_token, refresh_token, fingerprint, expires_at, created_at, updated_at
			  FROM oauth_tokens
			  WHERE provider = $1 AND provider_user_id = $2`

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
func (p *PostgreSQLTokenRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*tokensDomain.OAuthToken, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, provider, provider_user_id, access_token, refresh_token, fingerprint, expires_at, created_at, updated_at
			  FROM oauth_tokens
			  ORDER BY provider, provider_user_id
			  OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
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
func (p *PostgreSQLTokenRepository) Delete(
	ctx context.Context,
	provider, providerUserID string,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM oauth_tokens WHERE provider = $1 AND provider_user_id = $2`

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
