package auth

import (
	"context"
	"time"
)

// TokenRepository persists refresh tokens by hash.
type TokenRepository interface {
	CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, session SessionTrackingRequest) error
	// IsRefreshTokenRevoked returns the owner and whether the token is revoked
	// or expired. Unknown tokens count as revoked.
	IsRefreshTokenRevoked(ctx context.Context, token string) (userID string, revoked bool, err error)
	RevokeRefreshToken(ctx context.Context, token string) error
	// PurgeRefreshTokens deletes tokens that expired before cutoff and every
	// revoked token, returning how many rows went.
	PurgeRefreshTokens(ctx context.Context, cutoff time.Time) (int64, error)
}
