package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/auth"
)

type TokenJobs struct {
	tokenRepo auth.TokenRepository
	now       func() time.Time
}

func NewTokenJobs(tokenRepo auth.TokenRepository) *TokenJobs {
	return &TokenJobs{tokenRepo: tokenRepo, now: time.Now}
}

func (j *TokenJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("purge_refresh_tokens", interval, j.PurgeRefreshTokens)
}

// PurgeRefreshTokens drops expired and revoked refresh tokens. Lookups treat
// unknown tokens as revoked, so nothing a client holds becomes valid again.
func (j *TokenJobs) PurgeRefreshTokens(ctx context.Context) error {
	purged, err := j.tokenRepo.PurgeRefreshTokens(ctx, j.now())
	if err != nil {
		return err
	}
	if purged > 0 {
		slog.Info("Cron: purged refresh tokens", "count", purged)
	}
	return nil
}
