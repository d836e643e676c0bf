package sqlite

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/auth"
)

type tokenRepositoryImpl struct {
	db *sql.DB
}

// NewTokenRepository creates a new instance of auth.TokenRepository.
func NewTokenRepository(db *sql.DB) auth.TokenRepository {
	return &tokenRepositoryImpl{db: db}
}

func hashToken(input string) string {
	hash := sha256.Sum256([]byte(input))
	return base64.StdEncoding.EncodeToString(hash[:])
}

func (t *tokenRepositoryImpl) CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, session auth.SessionTrackingRequest) error {
	q := getQuerier(ctx, t.db)

	_, err := q.ExecContext(ctx, `
		INSERT INTO refresh_tokens (user_id, token_hash, expires_at, user_agent, ip_address, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, userID, hashToken(token), time.Unix(expiresAt, 0).UTC(), session.UserAgent, session.IPAddress, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (t *tokenRepositoryImpl) IsRefreshTokenRevoked(ctx context.Context, token string) (string, bool, error) {
	q := getQuerier(ctx, t.db)

	var (
		userID    string
		revokedAt sql.NullTime
		expiresAt time.Time
	)
	err := q.QueryRowContext(ctx, `
		SELECT user_id, revoked_at, expires_at
		FROM refresh_tokens
		WHERE token_hash = ?
		ORDER BY expires_at DESC
		LIMIT 1
	`, hashToken(token)).Scan(&userID, &revokedAt, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", true, nil
		}
		return "", false, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	if revokedAt.Valid || !expiresAt.After(time.Now()) {
		return userID, true, nil
	}
	return userID, false, nil
}

func (t *tokenRepositoryImpl) RevokeRefreshToken(ctx context.Context, token string) error {
	q := getQuerier(ctx, t.db)

	_, err := q.ExecContext(ctx, `
		UPDATE refresh_tokens
		SET revoked_at = ?
		WHERE token_hash = ? AND revoked_at IS NULL
	`, time.Now().UTC(), hashToken(token))
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (t *tokenRepositoryImpl) PurgeRefreshTokens(ctx context.Context, cutoff time.Time) (int64, error) {
	q := getQuerier(ctx, t.db)

	res, err := q.ExecContext(ctx, `
		DELETE FROM refresh_tokens
		WHERE expires_at < ? OR revoked_at IS NOT NULL
	`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to purge refresh tokens: %w", err)
	}
	return res.RowsAffected()
}
